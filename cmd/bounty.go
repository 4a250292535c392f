package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	boardadapter "github.com/bnema/bounty-board-cli/internal/adapters/render/board"
	"github.com/bnema/bounty-board-cli/internal/application"
	"github.com/bnema/bounty-board-cli/internal/domain"
)

func newBountyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounty",
		Short: "Create and manage bounties",
	}

	cmd.AddCommand(
		newBountyListCmd(app),
		newBountyShowCmd(app),
		newBountyCreateCmd(app),
		newBountyClaimCmd(app),
		newBountyReleaseCmd(app),
	)

	return cmd
}

func newBountyListCmd(app *app) *cobra.Command {
	var filter string
	var asJSON bool
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bounties on the board, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bounties, err := app.service.FilterBounties(cmd.Context(), filter)
			if err != nil {
				return err
			}

			return writeBountiesOutput(cmd, app, bounties, outputMode{json: asJSON, toml: asTOML})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only bounties whose title or tags contain this text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&asTOML, "toml", false, "Render TOML output")

	return cmd
}

func newBountyShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one bounty in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBountyID(args[0])
			if err != nil {
				return err
			}

			bounty, err := app.service.SelectBounty(cmd.Context(), id)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, bounty)
			}

			rendered, err := app.boardRenderer([]domain.Bounty{bounty}, boardadapter.RenderOptions{
				Now:      app.now(),
				Session:  app.service.Session(),
				Detailed: true,
			})
			if err != nil {
				return fmt.Errorf("render bounty: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newBountyCreateCmd(app *app) *cobra.Command {
	var issueURL string
	var title string
	var description string
	var rawAmount string
	var tags []string
	var connect bool
	var analyze bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Fund a new bounty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if connect {
				if err := connectWallet(cmd, app); err != nil {
					return err
				}
			}

			amount := decimal.Zero
			if rawAmount != "" {
				parsed, err := decimal.NewFromString(rawAmount)
				if err != nil {
					return fmt.Errorf("parse amount %q: %w", rawAmount, err)
				}
				amount = parsed
			}

			if analyze {
				analysis, err := analyzeIssue(cmd, app, description)
				if err != nil {
					return err
				}
				// Suggestions only fill what the caller left blank.
				if title == "" {
					title = analysis.Title
				}
				if rawAmount == "" {
					amount = decimal.NewFromInt(int64(analysis.SuggestedPrice))
				}
				if len(tags) == 0 {
					tags = analysis.Tags
				}
			}

			receipt, err := app.service.CreateBounty(cmd.Context(), application.CreateBountyCommand{
				GitHubIssueURL: issueURL,
				Title:          title,
				Description:    description,
				AmountUSDC:     amount,
				Tags:           tags,
			})
			if err != nil {
				return err
			}

			return writeReceipt(cmd, "created", receipt)
		},
	}

	cmd.Flags().StringVar(&issueURL, "url", "", "GitHub issue URL")
	cmd.Flags().StringVar(&title, "title", "", "Bounty title (defaulted when empty)")
	cmd.Flags().StringVar(&description, "description", "", "Issue description")
	cmd.Flags().StringVar(&rawAmount, "amount", "", "Reward amount in USDC")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().BoolVar(&connect, "connect", false, "Connect the simulated wallet first")
	cmd.Flags().BoolVar(&analyze, "analyze", false, "Prefill title/amount/tags from issue analysis")

	return cmd
}

func newBountyClaimCmd(app *app) *cobra.Command {
	var connect bool

	cmd := &cobra.Command{
		Use:   "claim <id>",
		Short: "Claim an open bounty as the connected wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBountyID(args[0])
			if err != nil {
				return err
			}

			if connect {
				if err := connectWallet(cmd, app); err != nil {
					return err
				}
			}

			receipt, err := app.service.ClaimBounty(cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeReceipt(cmd, "claimed", receipt)
		},
	}

	cmd.Flags().BoolVar(&connect, "connect", false, "Connect the simulated wallet first")

	return cmd
}

func newBountyReleaseCmd(app *app) *cobra.Command {
	var connect bool

	cmd := &cobra.Command{
		Use:   "release <id>",
		Short: "Release escrow for a completed bounty (maintainer only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseBountyID(args[0])
			if err != nil {
				return err
			}

			if connect {
				if err := connectWallet(cmd, app); err != nil {
					return err
				}
			}

			receipt, err := app.service.ReleaseBounty(cmd.Context(), id)
			if err != nil {
				return err
			}

			return writeReceipt(cmd, "released", receipt)
		},
	}

	cmd.Flags().BoolVar(&connect, "connect", false, "Connect the simulated wallet first")

	return cmd
}

type outputMode struct {
	json bool
	toml bool
}

func writeBountiesOutput(cmd *cobra.Command, app *app, bounties []domain.Bounty, mode outputMode) error {
	switch {
	case mode.json:
		return writeJSON(cmd, bounties)
	case mode.toml:
		return writeTOML(cmd, bounties)
	}

	rendered, err := app.boardRenderer(bounties, boardadapter.RenderOptions{
		Now:     app.now(),
		Session: app.service.Session(),
	})
	if err != nil {
		return fmt.Errorf("render board: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// boardSchema is the explicit TOML output layout; domain types stay free of
// serialization tags.
type boardSchema struct {
	Bounties []bountySchema `toml:"bounties"`
}

type bountySchema struct {
	ID             int      `toml:"id"`
	GitHubIssueURL string   `toml:"github_issue_url,omitempty"`
	Title          string   `toml:"title"`
	Description    string   `toml:"description,omitempty"`
	AmountUSDC     string   `toml:"amount_usdc"`
	Status         string   `toml:"status"`
	Maintainer     string   `toml:"maintainer_address"`
	Worker         string   `toml:"worker_address,omitempty"`
	Tags           []string `toml:"tags"`
	CreatedAt      string   `toml:"created_at"`
}

func writeTOML(cmd *cobra.Command, bounties []domain.Bounty) error {
	out := boardSchema{Bounties: make([]bountySchema, 0, len(bounties))}
	for _, b := range bounties {
		out.Bounties = append(out.Bounties, bountySchema{
			ID:             int(b.ID),
			GitHubIssueURL: b.GitHubIssueURL,
			Title:          b.Title,
			Description:    b.Description,
			AmountUSDC:     b.AmountUSDC.String(),
			Status:         string(b.Status),
			Maintainer:     b.MaintainerAddress,
			Worker:         b.WorkerAddress,
			Tags:           b.Tags,
			CreatedAt:      b.CreatedAt.Format(time.RFC3339),
		})
	}

	encoded, err := toml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode board as toml: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(encoded)
	return err
}

func writeReceipt(cmd *cobra.Command, verb string, receipt application.Receipt) error {
	b := receipt.Bounty
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s bounty #%d %q [%s] $%s USDC\nescrow tx: %s\n",
		verb, b.ID, b.Title, b.Status, b.AmountUSDC.StringFixed(0), receipt.TxRef)
	if err != nil {
		return err
	}

	if b.Claimed() {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "worker: %s\n", b.WorkerAddress)
	}
	return err
}

func parseBountyID(raw string) (domain.BountyID, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse bounty id %q: %w", raw, err)
	}

	return domain.BountyID(id), nil
}
