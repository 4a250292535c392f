package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/bounty-board-cli/internal/tui"
)

func newBrowseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the bounty board interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := tea.NewProgram(
				tui.New(app.service),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)

			_, err := p.Run()
			return err
		},
	}
}
