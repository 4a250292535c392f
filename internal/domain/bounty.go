package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type BountyID int

type BountyStatus string

const (
	BountyStatusOpen       BountyStatus = "OPEN"
	BountyStatusInProgress BountyStatus = "IN_PROGRESS"
	BountyStatusCompleted  BountyStatus = "COMPLETED"
	// BountyStatusCancelled exists in the escrow contract's state enum but no
	// client operation reaches it yet.
	BountyStatusCancelled BountyStatus = "CANCELLED"
)

const (
	// DefaultBountyTitle replaces an empty title at creation.
	DefaultBountyTitle = "New Bounty"
	// DefaultBountyTag replaces an empty tag list at creation.
	DefaultBountyTag = "Manual"
	// UnauthenticatedMaintainer is recorded when a bounty is created without
	// a connected wallet.
	UnauthenticatedMaintainer = "0xSimulatedUser"
)

func (s BountyStatus) Valid() bool {
	switch s {
	case BountyStatusOpen, BountyStatusInProgress, BountyStatusCompleted, BountyStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may advance to next. Statuses
// only move forward through OPEN → IN_PROGRESS → COMPLETED; nothing regresses
// and nothing reaches CANCELLED.
func (s BountyStatus) CanTransitionTo(next BountyStatus) bool {
	switch s {
	case BountyStatusOpen:
		return next == BountyStatusInProgress
	case BountyStatusInProgress:
		return next == BountyStatusCompleted
	default:
		return false
	}
}

// Bounty is one funded task: a GitHub issue with a USDC reward attached,
// tracked from creation to release.
type Bounty struct {
	ID                BountyID
	GitHubIssueURL    string
	Title             string
	Description       string
	AmountUSDC        decimal.Decimal
	Status            BountyStatus
	MaintainerAddress string
	WorkerAddress     string
	Tags              []string
	CreatedAt         time.Time
}

// Claimed reports whether a worker identity is attached. It holds exactly
// when the status is IN_PROGRESS or COMPLETED.
func (b Bounty) Claimed() bool {
	return b.WorkerAddress != ""
}

// Matches reports whether the bounty's title or any tag contains query as a
// case-insensitive substring. An empty query matches everything.
func (b Bounty) Matches(query string) bool {
	query = strings.ToLower(query)
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(b.Title), query) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}
