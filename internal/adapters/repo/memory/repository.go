package memory

import (
	"context"
	"sync"

	"github.com/bnema/bounty-board-cli/internal/domain"
	"github.com/bnema/bounty-board-cli/internal/ports"
)

// Repository holds the authoritative bounty collection for the lifetime of
// the process. Nothing is persisted: the whole marketplace is a simulation.
type Repository struct {
	mu       sync.RWMutex
	bounties []domain.Bounty // newest-first
	nextID   domain.BountyID
}

var _ ports.BountyRepository = (*Repository)(nil)

func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

// NewSeededRepository preloads the demo board so the claim and release flows
// have something to act on from a cold start.
func NewSeededRepository(clock ports.Clock) *Repository {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	repo := NewRepository()
	for _, bounty := range seedBounties(clock.Now()) {
		bounty.ID = repo.nextID
		repo.nextID++
		repo.bounties = append([]domain.Bounty{bounty}, repo.bounties...)
	}

	return repo
}

func (r *Repository) GetByID(ctx context.Context, id domain.BountyID) (domain.Bounty, error) {
	if err := ctx.Err(); err != nil {
		return domain.Bounty{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, bounty := range r.bounties {
		if bounty.ID == id {
			return cloneBounty(bounty), nil
		}
	}

	return domain.Bounty{}, domain.ErrBountyNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Bounty, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bounties := make([]domain.Bounty, 0, len(r.bounties))
	for _, bounty := range r.bounties {
		bounties = append(bounties, cloneBounty(bounty))
	}

	return bounties, nil
}

// Insert assigns the next ID and prepends, keeping the newest-first order.
func (r *Repository) Insert(ctx context.Context, bounty domain.Bounty) (domain.Bounty, error) {
	if err := ctx.Err(); err != nil {
		return domain.Bounty{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bounty.ID = r.nextID
	r.nextID++

	r.bounties = append([]domain.Bounty{cloneBounty(bounty)}, r.bounties...)

	return bounty, nil
}

func (r *Repository) Update(ctx context.Context, bounty domain.Bounty) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.bounties {
		if r.bounties[i].ID == bounty.ID {
			r.bounties[i] = cloneBounty(bounty)
			return nil
		}
	}

	return domain.ErrBountyNotFound
}

// cloneBounty copies the tag slice so callers cannot alias repository state.
func cloneBounty(bounty domain.Bounty) domain.Bounty {
	if len(bounty.Tags) > 0 {
		tags := make([]string, len(bounty.Tags))
		copy(tags, bounty.Tags)
		bounty.Tags = tags
	}

	return bounty
}
