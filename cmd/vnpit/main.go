package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nvquang/vnpit/internal/config"
	"github.com/nvquang/vnpit/internal/domain"
	"github.com/nvquang/vnpit/internal/logging"
	"github.com/nvquang/vnpit/internal/output"
	"github.com/nvquang/vnpit/internal/rules"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "vnpit",
	Short: "Vietnamese personal income tax calculator",
	Long: "Calculators for Vietnamese personal income tax: salary, household business,\n" +
		"investment and transfer income, VAT, treatment comparison and mortgage planning.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		cfg := logging.DefaultConfig()
		cfg.Verbose = verbose
		return logging.Initialize(cfg)
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "vnpit %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// ruleSet resolves the effective rule set from the --law and --rules flags.
func ruleSet(cmd *cobra.Command) (rules.RuleSet, error) {
	law, _ := cmd.Flags().GetString("law")
	path, _ := cmd.Flags().GetString("rules")

	rs, err := config.LoadRules(path, rules.LawVersion(law))
	if err != nil {
		return rules.RuleSet{}, err
	}
	if err := config.ValidateRules(rs); err != nil {
		return rules.RuleSet{}, fmt.Errorf("rule set rejected: %w", err)
	}
	logging.Sugar.Debugw("rule set resolved", "law", rs.Version, "overlay", path)
	return rs, nil
}

// emit prints either the rendered text report or indented JSON, per --format.
func emit(cmd *cobra.Command, text string, value any) error {
	format, _ := cmd.Flags().GetString("format")
	if strings.EqualFold(format, "json") {
		data, err := output.ToJSON(value)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// amount parses a VND amount flag. Underscores and commas are accepted as
// grouping for readability.
func amount(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	cleaned := strings.NewReplacer("_", "", ",", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount for --%s: %q", name, raw)
	}
	return d, nil
}

// parseListAmount parses one element of a repeatable amount flag.
func parseListAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("_", "", ",", "").Replace(strings.TrimSpace(raw))
	return decimal.NewFromString(cleaned)
}

// ratePercent parses a percentage flag into a fraction, e.g. 10.5 -> 0.105.
func ratePercent(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "%")
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate for --%s: %q", name, raw)
	}
	return d.Div(decimal.NewFromInt(100)), nil
}

func regionFlag(cmd *cobra.Command) (domain.Region, error) {
	n, _ := cmd.Flags().GetInt("region")
	r := domain.Region(n)
	if !r.Valid() {
		return 0, fmt.Errorf("invalid --region %d: must be 1 to 4", n)
	}
	return r, nil
}

func main() {
	rootCmd.PersistentFlags().String("law", "", "law version: 2025 or 2026 (default 2026)")
	rootCmd.PersistentFlags().String("rules", "", "path to a YAML rules overlay file")
	rootCmd.PersistentFlags().String("format", "text", "output format: text or json")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(salaryCmd())
	rootCmd.AddCommand(grossUpCmd())
	rootCmd.AddCommand(multiSourceCmd())
	rootCmd.AddCommand(severanceCmd())
	rootCmd.AddCommand(rentalCmd())
	rootCmd.AddCommand(businessCmd())
	rootCmd.AddCommand(creatorCmd())
	rootCmd.AddCommand(withholdingCmd())
	rootCmd.AddCommand(flatIncomeCmds()...)
	rootCmd.AddCommand(vatCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(breakEvenCmd())
	rootCmd.AddCommand(mortgageCmd())
	rootCmd.AddCommand(snapshotCmd())
	rootCmd.AddCommand(tuiCmd())

	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
