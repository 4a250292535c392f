package board

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

func testNow() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func TestRenderEmptyBoard(t *testing.T) {
	output, err := Render(nil, RenderOptions{Now: testNow()})
	require.NoError(t, err)

	assert.Contains(t, output, "Bounty Board")
	assert.Contains(t, output, "bounties: 0")
	assert.Contains(t, output, "wallet: disconnected")
	assert.Contains(t, output, "No bounties found.")
}

func TestRenderBoardRows(t *testing.T) {
	bounties := []domain.Bounty{
		{
			ID:                2,
			Title:             "Fix login bug",
			AmountUSDC:        decimal.NewFromInt(300),
			Status:            domain.BountyStatusInProgress,
			MaintainerAddress: "0x71C...9A21",
			WorkerAddress:     "0xdA4...f83c",
			Tags:              []string{"bug", "auth"},
			CreatedAt:         testNow().Add(-3 * time.Hour),
		},
		{
			ID:                1,
			Title:             "Dark mode",
			AmountUSDC:        decimal.NewFromInt(150),
			Status:            domain.BountyStatusOpen,
			MaintainerAddress: domain.UnauthenticatedMaintainer,
			Tags:              []string{"frontend"},
			CreatedAt:         testNow().Add(-5 * 24 * time.Hour),
		},
	}

	output, err := Render(bounties, RenderOptions{
		Now: testNow(),
		Session: domain.WalletSession{
			Address:     "0x71C...9A21",
			BalanceUSDC: decimal.NewFromInt(5000),
		},
	})
	require.NoError(t, err)

	assert.Contains(t, output, "bounties: 2")
	assert.Contains(t, output, "wallet: 0x71C...9A21 (5000 USDC)")
	assert.Contains(t, output, "[IN PROGRESS]")
	assert.Contains(t, output, "[OPEN]")
	assert.Contains(t, output, "Fix login bug")
	assert.Contains(t, output, "$300 USDC")
	assert.Contains(t, output, "#2 · created 3h ago")
	assert.Contains(t, output, "#1 · created 5d ago")
	assert.Contains(t, output, "tags: bug, auth")

	// The board view stays compact: no maintainer or worker rows.
	assert.NotContains(t, output, "maintainer:")
	assert.NotContains(t, output, "worker:")
}

func TestRenderDetailedBounty(t *testing.T) {
	bounty := domain.Bounty{
		ID:                3,
		GitHubIssueURL:    "https://github.com/owner/repo/issues/7",
		Title:             "Batch release",
		Description:       "Release several escrows in one transaction.",
		AmountUSDC:        decimal.NewFromInt(800),
		Status:            domain.BountyStatusInProgress,
		MaintainerAddress: "0x71C...9A21",
		WorkerAddress:     "0xdA4...f83c",
		Tags:              []string{"solidity"},
		CreatedAt:         testNow().Add(-30 * time.Second),
	}

	output, err := Render([]domain.Bounty{bounty}, RenderOptions{Now: testNow(), Detailed: true})
	require.NoError(t, err)

	assert.Contains(t, output, "created just now")
	assert.Contains(t, output, "maintainer: 0x71C...9A21")
	assert.Contains(t, output, "worker:     0xdA4...f83c")
	assert.Contains(t, output, "issue: https://github.com/owner/repo/issues/7")
	assert.Contains(t, output, "Release several escrows in one transaction.")
}
