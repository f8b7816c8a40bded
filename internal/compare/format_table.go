package compare

import (
	"fmt"
	"strings"

	"github.com/nvquang/vnpit/internal/output"
)

// TableFormatter renders a comparison set as a console table.
type TableFormatter struct{}

// Format generates the table.
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TAX TREATMENT COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 84) + "\n")
	sb.WriteString(fmt.Sprintf("Monthly gross: %s   Region: %s   Dependents: %d\n\n",
		output.FormatCurrency(set.Input.MonthlyGross), set.Input.Region, set.Input.Dependents))

	nameWidth := 20
	numWidth := 18
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %8s\n",
		nameWidth, "Treatment",
		numWidth, "Monthly tax",
		numWidth, "Monthly net",
		numWidth, "Annual net",
		"Rate"))
	sb.WriteString(strings.Repeat("-", 84) + "\n")

	for _, o := range set.Options {
		marker := "  "
		if o.Treatment == set.Winner {
			marker = "* "
		}
		sb.WriteString(fmt.Sprintf("%s%-*s %*s %*s %*s %8s\n",
			marker, nameWidth-2, o.Treatment,
			numWidth, output.FormatNumber(o.MonthlyTax),
			numWidth, output.FormatNumber(o.MonthlyNet),
			numWidth, output.FormatNumber(o.AnnualNet),
			output.FormatPercent(o.EffectiveRate)))
	}
	sb.WriteString(strings.Repeat("=", 84) + "\n")

	if set.BreakEven != nil {
		sb.WriteString(fmt.Sprintf("\nBreak-even gross income: %s (%s after %d iterations)\n",
			output.FormatCurrency(set.BreakEven.Gross), set.BreakEven.Method, set.BreakEven.Iterations))
	}

	if len(set.Recommendations) > 0 {
		sb.WriteString("\nNOTES\n")
		sb.WriteString(strings.Repeat("-", 84) + "\n")
		for _, rec := range set.Recommendations {
			sb.WriteString("- " + rec + "\n")
		}
	}
	return sb.String()
}
