package application

import (
	"time"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

type ViewState string

const (
	ViewHome    ViewState = "HOME"
	ViewCreate  ViewState = "CREATE"
	ViewDetails ViewState = "DETAILS"
)

// View is the presentation state the service last steered to. SelectedID is
// meaningful only in the DETAILS state.
type View struct {
	State      ViewState
	SelectedID domain.BountyID
}

// Receipt is the result of a state-changing bounty operation. TxRef is the
// simulated escrow transaction reference; no funds actually move.
type Receipt struct {
	Bounty domain.Bounty
	TxRef  string
	At     time.Time
}
