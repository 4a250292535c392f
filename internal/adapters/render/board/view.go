package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

func renderView(bounties []domain.Bounty, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Bounty Board"),
		s.header.Render(headerLine(len(bounties), opts.Session)),
	}

	if len(bounties) == 0 {
		lines = append(lines, s.empty.Render("No bounties found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, bounty := range bounties {
		lines = append(lines, s.section.Render(renderBounty(bounty, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(count int, session domain.WalletSession) string {
	wallet := "wallet: disconnected"
	if session.Connected() {
		wallet = fmt.Sprintf("wallet: %s (%s USDC)", session.Address, session.BalanceUSDC.StringFixed(0))
	}

	return fmt.Sprintf("bounties: %d · %s", count, wallet)
}

func renderBounty(bounty domain.Bounty, opts RenderOptions, s styles) string {
	badge := s.status(string(bounty.Status)).Render(statusLabel(bounty.Status))
	headline := lipgloss.JoinHorizontal(
		lipgloss.Top,
		badge,
		" ",
		s.bounty.Render(bounty.Title),
		" ",
		s.amount.Render(fmt.Sprintf("$%s USDC", bounty.AmountUSDC.StringFixed(0))),
	)

	parts := []string{
		headline,
		s.meta.Render(fmt.Sprintf("#%d · created %s", bounty.ID, formatCreated(bounty.CreatedAt, opts.Now))),
		s.tag.Render("tags: " + strings.Join(bounty.Tags, ", ")),
	}

	if opts.Detailed {
		parts = append(parts, s.detail.Render("maintainer: "+bounty.MaintainerAddress))
		if bounty.Claimed() {
			parts = append(parts, s.detail.Render("worker:     "+bounty.WorkerAddress))
		}
		if bounty.GitHubIssueURL != "" {
			parts = append(parts, s.meta.Render("issue: "+bounty.GitHubIssueURL))
		}
		if bounty.Description != "" {
			parts = append(parts, s.detail.Render(bounty.Description))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func statusLabel(status domain.BountyStatus) string {
	return "[" + strings.ReplaceAll(string(status), "_", " ") + "]"
}

func formatCreated(createdAt, now time.Time) string {
	if now.IsZero() || createdAt.After(now) {
		return createdAt.Format("2006-01-02")
	}

	age := now.Sub(createdAt)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 48*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
