package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

func newAnalyzeCmd(app *app) *cobra.Command {
	var text string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Suggest a bounty title, price and tags from issue text",
		Long:  "analyze sends free-form issue text to the analysis helper and prints the suggested title, summary, price, difficulty and tags. Without an API key (or on any failure) it falls back to a fixed suggestion instead of erroring.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			issueText := text
			if issueText == "-" || issueText == "" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read issue text from stdin: %w", err)
				}
				issueText = string(raw)
			}

			analysis, err := analyzeIssue(cmd, app, issueText)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, analysis)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "title:      %s\n", analysis.Title)
			_, _ = fmt.Fprintf(out, "summary:    %s\n", analysis.Summary)
			_, _ = fmt.Fprintf(out, "price:      $%d USDC\n", analysis.SuggestedPrice)
			_, _ = fmt.Fprintf(out, "difficulty: %s\n", analysis.Difficulty)
			_, _ = fmt.Fprintf(out, "tags:       %s\n", strings.Join(analysis.Tags, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Issue text to analyze (reads stdin when empty or \"-\")")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func analyzeIssue(cmd *cobra.Command, app *app, issueText string) (domain.IssueAnalysis, error) {
	var analysis domain.IssueAnalysis

	run := func(ctx context.Context) error {
		result, err := app.service.AnalyzeIssue(ctx, issueText)
		if err != nil {
			return err
		}
		analysis = result
		return nil
	}

	if err := runTaskSpinner(cmd.Context(), cmd.ErrOrStderr(), "Analyzing issue...", run); err != nil {
		return domain.IssueAnalysis{}, fmt.Errorf("analyze issue: %w", err)
	}

	return analysis, nil
}
