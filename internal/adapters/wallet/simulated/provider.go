package simulated

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bnema/bounty-board-cli/internal/domain"
	"github.com/bnema/bounty-board-cli/internal/ports"
)

const (
	DefaultAddress = "0x71C...9A21"
	DefaultDelay   = 800 * time.Millisecond
)

// DefaultBalanceUSDC is the display balance granted on connect. It is never
// debited; escrow deposits are asserted, not modeled.
var DefaultBalanceUSDC = decimal.NewFromInt(5000)

// Provider stands in for a real wallet integration. Connect resolves a fixed
// identity after a fixed delay, and escrow transactions are opaque
// references minted locally.
type Provider struct {
	identity domain.WalletIdentity
	delay    time.Duration
}

var _ ports.WalletProvider = (*Provider)(nil)

func NewProvider(address string, balance decimal.Decimal, delay time.Duration) *Provider {
	if address == "" {
		address = DefaultAddress
	}

	return &Provider{
		identity: domain.WalletIdentity{Address: address, BalanceUSDC: balance},
		delay:    delay,
	}
}

func NewDefaultProvider() *Provider {
	return NewProvider(DefaultAddress, DefaultBalanceUSDC, DefaultDelay)
}

func (p *Provider) Connect(ctx context.Context) (domain.WalletIdentity, error) {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return domain.WalletIdentity{}, ctx.Err()
		case <-timer.C:
		}
	}

	return p.identity, nil
}

func (p *Provider) EscrowTxRef() string {
	return "0xsim-" + uuid.NewString()
}
