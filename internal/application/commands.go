package application

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

// CreateBountyCommand is the typed creation draft. Defaulting rules live in
// normalize: an empty title becomes domain.DefaultBountyTitle, an empty tag
// list becomes [domain.DefaultBountyTag], surrounding whitespace is dropped.
// A negative amount is rejected by the service, never defaulted.
type CreateBountyCommand struct {
	GitHubIssueURL string
	Title          string
	Description    string
	AmountUSDC     decimal.Decimal
	Tags           []string
}

func (c CreateBountyCommand) normalize() CreateBountyCommand {
	c.GitHubIssueURL = strings.TrimSpace(c.GitHubIssueURL)
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		c.Title = domain.DefaultBountyTitle
	}

	tags := make([]string, 0, len(c.Tags))
	for _, tag := range c.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	if len(tags) == 0 {
		tags = []string{domain.DefaultBountyTag}
	}
	c.Tags = tags

	return c
}
