package ports

import (
	"context"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

// WalletProvider resolves a wallet identity for the local user and mints
// references for simulated escrow transactions. Connect may take an
// observable amount of time; callers surface an in-flight state meanwhile.
type WalletProvider interface {
	Connect(ctx context.Context) (domain.WalletIdentity, error)
	EscrowTxRef() string
}
