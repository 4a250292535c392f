package ports

import (
	"context"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

// BountyRepository is the authoritative bounty collection. List returns
// bounties newest-first; Insert assigns the next never-reused ID and places
// the bounty at the front of that ordering.
type BountyRepository interface {
	GetByID(ctx context.Context, id domain.BountyID) (domain.Bounty, error)
	List(ctx context.Context) ([]domain.Bounty, error)
	Insert(ctx context.Context, bounty domain.Bounty) (domain.Bounty, error)
	Update(ctx context.Context, bounty domain.Bounty) error
}
