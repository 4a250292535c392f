package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/bounty-board-cli/internal/domain"
	"github.com/bnema/bounty-board-cli/internal/ports"
)

// Service is the bounty lifecycle controller. It is the sole mutator of the
// bounty collection and the wallet session, and it tracks which view the
// presentation layer should be showing based on the last operation invoked.
type Service struct {
	bounties ports.BountyRepository
	wallet   ports.WalletProvider
	analyzer ports.IssueAnalyzer
	clock    ports.Clock

	mu      sync.Mutex
	session domain.WalletSession
	view    View
}

func NewService(bounties ports.BountyRepository, wallet ports.WalletProvider, analyzer ports.IssueAnalyzer, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		bounties: bounties,
		wallet:   wallet,
		analyzer: analyzer,
		clock:    clock,
		view:     View{State: ViewHome},
	}
}

// ConnectWallet resolves the simulated identity and populates the session.
// Concurrent connects are not deduplicated; the last one to resolve wins.
func (s *Service) ConnectWallet(ctx context.Context) (domain.WalletSession, error) {
	identity, err := s.wallet.Connect(ctx)
	if err != nil {
		return domain.WalletSession{}, fmt.Errorf("connect wallet: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.WalletSession{
		Address:     identity.Address,
		BalanceUSDC: identity.BalanceUSDC,
	}

	return s.session, nil
}

func (s *Service) Session() domain.WalletSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session
}

func (s *Service) CurrentView() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view
}

func (s *Service) OpenCreateForm() {
	s.setView(View{State: ViewCreate})
}

func (s *Service) CloseCreateForm() {
	s.setView(View{State: ViewHome})
}

func (s *Service) ShowBoard() {
	s.setView(View{State: ViewHome})
}

func (s *Service) setView(view View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = view
}

// AnalyzeIssue runs the analysis collaborator over the issue text. Empty
// text never reaches the analyzer. Analyzer failures degrade to the fallback
// suggestion so the creation flow is never blocked.
func (s *Service) AnalyzeIssue(ctx context.Context, issueText string) (domain.IssueAnalysis, error) {
	if strings.TrimSpace(issueText) == "" {
		return domain.IssueAnalysis{}, domain.ErrEmptyIssueText
	}

	analysis, err := s.analyzer.Analyze(ctx, issueText)
	if err != nil {
		if ctx.Err() != nil {
			return domain.IssueAnalysis{}, fmt.Errorf("analyze issue: %w", err)
		}
		return domain.FallbackAnalysis(), nil
	}

	return analysis, nil
}

// CreateBounty funds a new bounty from the draft. The maintainer is the
// connected wallet address, or the unauthenticated sentinel when no wallet
// is connected. The new bounty lands at the front of the board and the
// current view switches back to it.
func (s *Service) CreateBounty(ctx context.Context, cmd CreateBountyCommand) (Receipt, error) {
	if cmd.AmountUSDC.IsNegative() {
		return Receipt{}, domain.ErrInvalidAmount
	}
	cmd = cmd.normalize()

	maintainer := s.Session().Address
	if maintainer == "" {
		maintainer = domain.UnauthenticatedMaintainer
	}

	bounty := domain.Bounty{
		GitHubIssueURL:    cmd.GitHubIssueURL,
		Title:             cmd.Title,
		Description:       cmd.Description,
		AmountUSDC:        cmd.AmountUSDC,
		Status:            domain.BountyStatusOpen,
		MaintainerAddress: maintainer,
		Tags:              cmd.Tags,
		CreatedAt:         s.clock.Now(),
	}

	inserted, err := s.bounties.Insert(ctx, bounty)
	if err != nil {
		return Receipt{}, fmt.Errorf("insert bounty: %w", err)
	}

	s.setView(View{State: ViewHome})

	return s.receipt(inserted), nil
}

// ClaimBounty assigns the connected wallet as the bounty's worker and moves
// it to IN_PROGRESS. Claiming a bounty already claimed by the same address
// is an idempotent success; any other non-OPEN claim is rejected.
func (s *Service) ClaimBounty(ctx context.Context, id domain.BountyID) (Receipt, error) {
	session := s.Session()
	if !session.Connected() {
		return Receipt{}, domain.ErrWalletNotConnected
	}

	bounty, err := s.bounties.GetByID(ctx, id)
	if err != nil {
		return Receipt{}, fmt.Errorf("get bounty by id: %w", err)
	}

	if bounty.Claimed() && bounty.WorkerAddress == session.Address && bounty.Status == domain.BountyStatusInProgress {
		return s.receipt(bounty), nil
	}
	if !bounty.Status.CanTransitionTo(domain.BountyStatusInProgress) {
		return Receipt{}, fmt.Errorf("claim bounty %d from %s: %w", id, bounty.Status, domain.ErrInvalidTransition)
	}

	bounty.Status = domain.BountyStatusInProgress
	bounty.WorkerAddress = session.Address

	if err := s.bounties.Update(ctx, bounty); err != nil {
		return Receipt{}, fmt.Errorf("save claimed bounty: %w", err)
	}

	return s.receipt(bounty), nil
}

// ReleaseBounty marks the bounty COMPLETED, standing in for the escrow
// payout. Only the maintainer may release, and only from IN_PROGRESS; the
// worker address survives completion.
func (s *Service) ReleaseBounty(ctx context.Context, id domain.BountyID) (Receipt, error) {
	session := s.Session()
	if !session.Connected() {
		return Receipt{}, domain.ErrWalletNotConnected
	}

	bounty, err := s.bounties.GetByID(ctx, id)
	if err != nil {
		return Receipt{}, fmt.Errorf("get bounty by id: %w", err)
	}

	if bounty.MaintainerAddress != session.Address {
		return Receipt{}, domain.ErrNotMaintainer
	}
	if !bounty.Status.CanTransitionTo(domain.BountyStatusCompleted) {
		return Receipt{}, fmt.Errorf("release bounty %d from %s: %w", id, bounty.Status, domain.ErrInvalidTransition)
	}

	bounty.Status = domain.BountyStatusCompleted

	if err := s.bounties.Update(ctx, bounty); err != nil {
		return Receipt{}, fmt.Errorf("save released bounty: %w", err)
	}

	return s.receipt(bounty), nil
}

// ListBounties returns the board newest-first.
func (s *Service) ListBounties(ctx context.Context) ([]domain.Bounty, error) {
	bounties, err := s.bounties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bounties: %w", err)
	}

	return bounties, nil
}

// FilterBounties returns the subset whose title or tags contain query,
// case-insensitively, preserving the board's newest-first order. It never
// mutates anything.
func (s *Service) FilterBounties(ctx context.Context, query string) ([]domain.Bounty, error) {
	bounties, err := s.bounties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bounties: %w", err)
	}

	filtered := make([]domain.Bounty, 0, len(bounties))
	for _, bounty := range bounties {
		if bounty.Matches(query) {
			filtered = append(filtered, bounty)
		}
	}

	return filtered, nil
}

// SelectBounty looks up a bounty and steers the current view to its detail
// record.
func (s *Service) SelectBounty(ctx context.Context, id domain.BountyID) (domain.Bounty, error) {
	bounty, err := s.bounties.GetByID(ctx, id)
	if err != nil {
		return domain.Bounty{}, fmt.Errorf("get bounty by id: %w", err)
	}

	s.setView(View{State: ViewDetails, SelectedID: id})

	return bounty, nil
}

func (s *Service) receipt(bounty domain.Bounty) Receipt {
	return Receipt{
		Bounty: bounty,
		TxRef:  s.wallet.EscrowTxRef(),
		At:     s.clock.Now(),
	}
}
