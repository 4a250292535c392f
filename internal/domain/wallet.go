package domain

import "github.com/shopspring/decimal"

// WalletIdentity is what the (simulated) wallet provider resolves during a
// connect flow.
type WalletIdentity struct {
	Address     string
	BalanceUSDC decimal.Decimal
}

// WalletSession is the single local user's wallet state. The balance is set
// once on connect and never debited: funds movement is asserted by the demo,
// not modeled.
type WalletSession struct {
	Address     string
	BalanceUSDC decimal.Decimal
}

func (s WalletSession) Connected() bool {
	return s.Address != ""
}
