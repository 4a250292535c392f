package simulated

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectResolvesFixedIdentity(t *testing.T) {
	provider := NewProvider("", decimal.NewFromInt(5000), 0)

	identity, err := provider.Connect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, identity.Address)
	assert.True(t, identity.BalanceUSDC.Equal(decimal.NewFromInt(5000)))
}

func TestConnectHonoursCancellation(t *testing.T) {
	provider := NewProvider(DefaultAddress, DefaultBalanceUSDC, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := provider.Connect(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEscrowTxRefsAreUnique(t *testing.T) {
	provider := NewDefaultProvider()

	first := provider.EscrowTxRef()
	second := provider.EscrowTxRef()

	assert.True(t, strings.HasPrefix(first, "0xsim-"))
	assert.True(t, strings.HasPrefix(second, "0xsim-"))
	assert.NotEqual(t, first, second)
}
