package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

// SimulatedMaintainer owns one seed bounty so the release flow can be
// exercised against a cold board. It matches the address the simulated
// wallet provider resolves.
const SimulatedMaintainer = "0x71C...9A21"

// seedBounties returns the demo board oldest-first; the seeding loop
// prepends them so the freshest entry ends up on top.
func seedBounties(now time.Time) []domain.Bounty {
	return []domain.Bounty{
		{
			GitHubIssueURL:    "https://github.com/base-bounties/indexer/issues/87",
			Title:             "Indexer drops events during chain reorgs",
			Description:       "Deep reorgs on Base testnet cause the escrow event indexer to skip BountyReleased logs. Needs a rewind-and-replay strategy keyed on block hashes.",
			AmountUSDC:        decimal.NewFromInt(1200),
			Status:            domain.BountyStatusCompleted,
			MaintainerAddress: "0xeF3...77dD",
			WorkerAddress:     "0xdA4...f83c",
			Tags:              []string{"indexer", "reorg", "hard"},
			CreatedAt:         now.Add(-96 * time.Hour),
		},
		{
			GitHubIssueURL:    "https://github.com/base-bounties/webapp/issues/214",
			Title:             "Wallet modal stuck on pending after rejected signature",
			Description:       "Rejecting the signature request in the wallet leaves the connect modal spinning forever. The pending state should clear and surface a retry.",
			AmountUSDC:        decimal.NewFromInt(350),
			Status:            domain.BountyStatusInProgress,
			MaintainerAddress: SimulatedMaintainer,
			WorkerAddress:     "0xdA4...f83c",
			Tags:              []string{"frontend", "wallet", "bug"},
			CreatedAt:         now.Add(-48 * time.Hour),
		},
		{
			GitHubIssueURL:    "https://github.com/base-bounties/contracts/issues/42",
			Title:             "Add batch release to the escrow contract",
			Description:       "Maintainers funding many small bounties pay a full transaction per release. Add a releaseBatch(uint256[] ids) entrypoint with a single reentrancy guard.",
			AmountUSDC:        decimal.NewFromInt(800),
			Status:            domain.BountyStatusOpen,
			MaintainerAddress: "0xB09...4E2a",
			Tags:              []string{"solidity", "escrow", "gas"},
			CreatedAt:         now.Add(-12 * time.Hour),
		},
	}
}
