package ports

import (
	"context"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

// IssueAnalyzer turns free-form issue text into a structured suggestion.
// Implementations must degrade to a usable default record instead of failing:
// an error return is reserved for context cancellation.
type IssueAnalyzer interface {
	Analyze(ctx context.Context, issueText string) (domain.IssueAnalysis, error)
}
