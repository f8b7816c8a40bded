package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nvquang/vnpit/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive salary and mortgage explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := ruleSet(cmd)
			if err != nil {
				return err
			}
			p := tea.NewProgram(tui.NewModel(rs), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui failed: %w", err)
			}
			return nil
		},
	}
}
