package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/bnema/bounty-board-cli/internal/application"
	"github.com/bnema/bounty-board-cli/internal/domain"
)

type appState int

const (
	stateBoard appState = iota
	stateDetails
	stateFilter
	stateCreate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginLeft(2)

	dimStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle  = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	labelStyle = lipgloss.NewStyle().Faint(true)

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(2)

	detailHeadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 3).
			Width(64)
)

type bountiesLoadedMsg struct {
	bounties []domain.Bounty
	err      error
}

type walletConnectedMsg struct {
	session domain.WalletSession
	err     error
}

type analysisDoneMsg struct {
	analysis domain.IssueAnalysis
	err      error
}

type mutationDoneMsg struct {
	verb    string
	receipt application.Receipt
	err     error
}

type detailLoadedMsg struct {
	bounty domain.Bounty
	err    error
}

type bountyItem struct {
	b domain.Bounty
}

func (i bountyItem) Title() string {
	return fmt.Sprintf("%s %s", statusGlyph(i.b.Status), i.b.Title)
}

func (i bountyItem) Description() string {
	return fmt.Sprintf("$%s USDC · %s", i.b.AmountUSDC.StringFixed(0), strings.Join(i.b.Tags, ", "))
}

func (i bountyItem) FilterValue() string { return i.b.Title }

func statusGlyph(status domain.BountyStatus) string {
	switch status {
	case domain.BountyStatusOpen:
		return okStyle.Render("●")
	case domain.BountyStatusInProgress:
		return warnStyle.Render("◐")
	case domain.BountyStatusCompleted:
		return dimStyle.Render("✓")
	default:
		return dimStyle.Render("·")
	}
}

const createFieldCount = 5

const (
	fieldIssueURL = iota
	fieldDescription
	fieldTitle
	fieldAmount
	fieldTags
)

// createForm is the modal creation view. Analysis may prefill title, amount
// and tags; the user can still edit everything before submitting.
type createForm struct {
	inputs    [createFieldCount]textinput.Model
	focused   int
	analyzing bool
	analysis  *domain.IssueAnalysis
	errMsg    string
}

func newCreateForm() createForm {
	var f createForm

	labels := [createFieldCount]string{
		"https://github.com/owner/repo/issues/123",
		"Paste the GitHub issue description here",
		"Bounty title",
		"0",
		"bug, auth",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 500
		f.inputs[i] = ti
	}
	f.inputs[fieldIssueURL].Focus()

	return f
}

func (f *createForm) focus(i int) tea.Cmd {
	f.inputs[f.focused].Blur()
	f.focused = (i + createFieldCount) % createFieldCount
	f.inputs[f.focused].Focus()
	return textinput.Blink
}

type Model struct {
	svc *application.Service

	list     list.Model
	bounties []domain.Bounty
	width    int
	height   int
	loading  bool
	err      error

	state       appState
	filterInput textinput.Model
	query       string
	form        createForm
	detail      domain.Bounty

	spin       spinner.Model
	connecting bool
	flash      string
	flashIsErr bool
}

func New(svc *application.Service) Model {
	delegate := list.NewDefaultDelegate()

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Bounties"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = titleStyle

	fi := textinput.New()
	fi.Placeholder = "Search bounties by title or tag..."
	fi.CharLimit = 100

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		svc:         svc,
		list:        l,
		loading:     true,
		filterInput: fi,
		spin:        sp,
	}
}

func loadBountiesCmd(svc *application.Service, query string) tea.Cmd {
	return func() tea.Msg {
		bounties, err := svc.FilterBounties(context.Background(), query)
		return bountiesLoadedMsg{bounties: bounties, err: err}
	}
}

func connectWalletCmd(svc *application.Service) tea.Cmd {
	return func() tea.Msg {
		session, err := svc.ConnectWallet(context.Background())
		return walletConnectedMsg{session: session, err: err}
	}
}

func analyzeCmd(svc *application.Service, issueText string) tea.Cmd {
	return func() tea.Msg {
		analysis, err := svc.AnalyzeIssue(context.Background(), issueText)
		return analysisDoneMsg{analysis: analysis, err: err}
	}
}

func createBountyCmd(svc *application.Service, cmd application.CreateBountyCommand) tea.Cmd {
	return func() tea.Msg {
		receipt, err := svc.CreateBounty(context.Background(), cmd)
		return mutationDoneMsg{verb: "created", receipt: receipt, err: err}
	}
}

func claimBountyCmd(svc *application.Service, id domain.BountyID) tea.Cmd {
	return func() tea.Msg {
		receipt, err := svc.ClaimBounty(context.Background(), id)
		return mutationDoneMsg{verb: "claimed", receipt: receipt, err: err}
	}
}

func releaseBountyCmd(svc *application.Service, id domain.BountyID) tea.Cmd {
	return func() tea.Msg {
		receipt, err := svc.ReleaseBounty(context.Background(), id)
		return mutationDoneMsg{verb: "released", receipt: receipt, err: err}
	}
}

func selectBountyCmd(svc *application.Service, id domain.BountyID) tea.Cmd {
	return func() tea.Msg {
		bounty, err := svc.SelectBounty(context.Background(), id)
		return detailLoadedMsg{bounty: bounty, err: err}
	}
}

func (m *Model) buildItems() {
	items := make([]list.Item, len(m.bounties))
	for i, b := range m.bounties {
		items[i] = bountyItem{b: b}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadBountiesCmd(m.svc, ""), m.spin.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lw, lh := m.listDimensions()
		m.list.SetSize(lw, lh)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case bountiesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.bounties = msg.bounties
		m.buildItems()
		return m, nil

	case walletConnectedMsg:
		m.connecting = false
		if msg.err != nil {
			return m.withFlash("connect failed: "+msg.err.Error(), true), nil
		}
		return m.withFlash(fmt.Sprintf("wallet connected: %s (%s USDC)", msg.session.Address, msg.session.BalanceUSDC.StringFixed(0)), false), nil

	case analysisDoneMsg:
		m.form.analyzing = false
		if msg.err != nil {
			m.form.errMsg = msg.err.Error()
			return m, nil
		}
		analysis := msg.analysis
		m.form.analysis = &analysis
		m.form.inputs[fieldTitle].SetValue(analysis.Title)
		m.form.inputs[fieldAmount].SetValue(fmt.Sprintf("%d", analysis.SuggestedPrice))
		m.form.inputs[fieldTags].SetValue(strings.Join(analysis.Tags, ", "))
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			if m.state == stateCreate {
				m.form.errMsg = msg.err.Error()
				return m, nil
			}
			return m.withFlash(msg.err.Error(), true), nil
		}
		if m.state == stateCreate {
			m.state = stateBoard
			m.svc.CloseCreateForm()
		}
		if m.state == stateDetails && msg.receipt.Bounty.ID == m.detail.ID {
			m.detail = msg.receipt.Bounty
		}
		m.loading = true
		next := m.withFlash(fmt.Sprintf("%s #%d · escrow tx %s", msg.verb, msg.receipt.Bounty.ID, msg.receipt.TxRef), false)
		return next, loadBountiesCmd(m.svc, m.query)

	case detailLoadedMsg:
		if msg.err != nil {
			return m.withFlash(msg.err.Error(), true), nil
		}
		m.detail = msg.bounty
		m.state = stateDetails
		return m, nil
	}

	switch m.state {
	case stateFilter:
		return m.updateFilter(msg)
	case stateCreate:
		return m.updateCreate(msg)
	case stateDetails:
		return m.updateDetails(msg)
	default:
		return m.updateBoard(msg)
	}
}

func (m Model) withFlash(text string, isErr bool) Model {
	m.flash = text
	m.flashIsErr = isErr
	return m
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.flash = ""
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "w":
			if m.connecting {
				return m, nil
			}
			m.connecting = true
			return m, connectWalletCmd(m.svc)
		case "/":
			m.state = stateFilter
			m.filterInput.SetValue(m.query)
			m.filterInput.Focus()
			return m, textinput.Blink
		case "n":
			m.state = stateCreate
			m.form = newCreateForm()
			m.svc.OpenCreateForm()
			return m, textinput.Blink
		case "c":
			if b := m.selectedBounty(); b != nil {
				return m, claimBountyCmd(m.svc, b.ID)
			}
			return m, nil
		case "r":
			if b := m.selectedBounty(); b != nil {
				return m, releaseBountyCmd(m.svc, b.ID)
			}
			return m, nil
		case "enter":
			if b := m.selectedBounty(); b != nil {
				return m, selectBountyCmd(m.svc, b.ID)
			}
			return m, nil
		case "esc":
			if m.query != "" {
				m.query = ""
				m.loading = true
				return m, loadBountiesCmd(m.svc, "")
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.state = stateBoard
			m.query = ""
			m.filterInput.Blur()
			m.loading = true
			return m, loadBountiesCmd(m.svc, "")
		case "enter":
			m.state = stateBoard
			m.filterInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)

	if query := m.filterInput.Value(); query != m.query {
		m.query = query
		return m, tea.Batch(cmd, loadBountiesCmd(m.svc, query))
	}

	return m, cmd
}

func (m Model) updateDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.flash = ""
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "b":
			m.state = stateBoard
			m.svc.ShowBoard()
			return m, nil
		case "c":
			return m, claimBountyCmd(m.svc, m.detail.ID)
		case "r":
			return m, releaseBountyCmd(m.svc, m.detail.ID)
		}
	}
	return m, nil
}

func (m Model) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.state = stateBoard
			m.svc.CloseCreateForm()
			return m, nil
		case "tab", "down":
			return m, m.form.focus(m.form.focused + 1)
		case "shift+tab", "up":
			return m, m.form.focus(m.form.focused - 1)
		case "ctrl+a":
			// One analysis call at a time; the form gates on non-empty text.
			if m.form.analyzing {
				return m, nil
			}
			issueText := strings.TrimSpace(m.form.inputs[fieldDescription].Value())
			if issueText == "" {
				m.form.errMsg = "paste an issue description before analyzing"
				return m, nil
			}
			m.form.analyzing = true
			m.form.errMsg = ""
			return m, analyzeCmd(m.svc, issueText)
		case "enter":
			return m.submitCreate()
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focused], cmd = m.form.inputs[m.form.focused].Update(msg)
	return m, cmd
}

func (m Model) submitCreate() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.form.inputs[fieldTitle].Value())
	rawAmount := strings.TrimSpace(m.form.inputs[fieldAmount].Value())
	if title == "" || rawAmount == "" {
		m.form.errMsg = "title and amount are required"
		return m, nil
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		m.form.errMsg = "amount must be a number"
		return m, nil
	}

	var tags []string
	for _, tag := range strings.Split(m.form.inputs[fieldTags].Value(), ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}

	m.form.errMsg = ""
	return m, createBountyCmd(m.svc, application.CreateBountyCommand{
		GitHubIssueURL: strings.TrimSpace(m.form.inputs[fieldIssueURL].Value()),
		Title:          title,
		Description:    m.form.inputs[fieldDescription].Value(),
		AmountUSDC:     amount,
		Tags:           tags,
	})
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(1, 2).Render(m.spin.View() + " Loading bounties…")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err),
		)
	}

	if m.state == stateDetails {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderDetails(), m.renderHelp())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.renderSidebar())
	base := lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(), body, m.renderHelp())

	if m.state == stateCreate {
		return m.renderCreateModalOver(base)
	}
	return base
}

func (m Model) listDimensions() (width, height int) {
	return m.width / 2, m.height - 4
}

func (m Model) renderTopBar() string {
	session := m.svc.Session()

	wallet := dimStyle.Render("wallet: disconnected · press w to connect")
	switch {
	case m.connecting:
		wallet = warnStyle.Render(m.spin.View() + " connecting wallet…")
	case session.Connected():
		wallet = okStyle.Render(fmt.Sprintf("wallet: %s · %s USDC", session.Address, session.BalanceUSDC.StringFixed(0)))
	}

	var search string
	if m.state == stateFilter {
		search = "  " + m.filterInput.View()
	} else if m.query != "" {
		search = "  " + dimStyle.Render("filter: "+m.query)
	}

	line := "  " + wallet + search
	if m.flash != "" {
		style := okStyle
		if m.flashIsErr {
			style = errStyle
		}
		line += "  " + style.Render(m.flash)
	}

	return line
}

func (m Model) renderSidebar() string {
	lw, _ := m.listDimensions()
	dw := m.width - lw
	dh := m.height - 4

	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		PaddingLeft(3).
		PaddingRight(2).
		Width(dw - 1).
		Height(dh)

	b := m.selectedBounty()
	if b == nil {
		return style.Render(dimStyle.Render("No bounties match"))
	}

	return style.Render(renderBountyDetail(*b, m.svc.Session(), (dw-1)-5))
}

func (m Model) renderDetails() string {
	style := lipgloss.NewStyle().
		Padding(1, 3).
		Width(m.width - 2).
		Height(m.height - 2)

	return style.Render(renderBountyDetail(m.detail, m.svc.Session(), m.width-8))
}

func renderBountyDetail(b domain.Bounty, session domain.WalletSession, contentWidth int) string {
	row := func(lbl, val string) string {
		return labelStyle.Render(lbl) + val + "\n"
	}

	var statusVal string
	switch b.Status {
	case domain.BountyStatusOpen:
		statusVal = okStyle.Render("open for claims")
	case domain.BountyStatusInProgress:
		statusVal = warnStyle.Render("in progress")
	case domain.BountyStatusCompleted:
		statusVal = boldStyle.Render("completed")
	default:
		statusVal = dimStyle.Render(strings.ToLower(string(b.Status)))
	}

	worker := dimStyle.Render("unclaimed")
	if b.Claimed() {
		worker = b.WorkerAddress
		if session.Connected() && session.Address == b.WorkerAddress {
			worker += okStyle.Render(" (you)")
		}
	}

	maintainer := b.MaintainerAddress
	if session.Connected() && session.Address == b.MaintainerAddress {
		maintainer += okStyle.Render(" (you)")
	}

	if contentWidth < 10 {
		contentWidth = 10
	}
	sep := dimStyle.Render(strings.Repeat("─", contentWidth))

	var sb strings.Builder
	sb.WriteString(detailHeadStyle.Render(b.Title) + "\n\n")
	sb.WriteString(row("Reward     ", boldStyle.Render(fmt.Sprintf("$%s USDC", b.AmountUSDC.StringFixed(0)))+dimStyle.Render(" · held in escrow")))
	sb.WriteString(row("Status     ", statusVal))
	sb.WriteString(row("Maintainer ", maintainer))
	sb.WriteString(row("Worker     ", worker))
	sb.WriteString(row("Tags       ", strings.Join(b.Tags, ", ")))
	sb.WriteString(row("Created    ", b.CreatedAt.Format("2006-01-02 15:04")))
	if b.GitHubIssueURL != "" {
		sb.WriteString(row("Issue      ", b.GitHubIssueURL))
	}
	sb.WriteString("\n" + sep + "\n\n")

	if b.Description != "" {
		sb.WriteString(b.Description + "\n")
	} else {
		sb.WriteString(dimStyle.Render("No description provided.") + "\n")
	}

	return sb.String()
}

func (m Model) renderCreateModalOver(string) string {
	f := m.form

	fieldLabels := [createFieldCount]string{
		"GitHub issue URL",
		"Issue description",
		"Title",
		"Amount (USDC)",
		"Tags (comma separated)",
	}

	var b strings.Builder
	b.WriteString(boldStyle.Render("Create New Bounty") + "\n\n")
	for i, input := range f.inputs {
		b.WriteString(fieldLabels[i] + "\n")
		b.WriteString(input.View() + "\n")
	}

	b.WriteString("\n")
	switch {
	case f.analyzing:
		b.WriteString(warnStyle.Render(m.spin.View()+" Analyzing issue…") + "\n")
	case f.analysis != nil:
		b.WriteString(okStyle.Render(fmt.Sprintf("AI suggestion · %s · $%d USDC", f.analysis.Difficulty, f.analysis.SuggestedPrice)) + "\n")
		if f.analysis.Summary != "" {
			b.WriteString(dimStyle.Render(f.analysis.Summary) + "\n")
		}
	}

	if f.errMsg != "" {
		b.WriteString("\n" + errStyle.Render(f.errMsg) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("Ctrl+A analyze · Tab next field · Enter deposit & create · Esc cancel"))

	modal := modalStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceBackground(lipgloss.Color("0")),
	)
}

func (m Model) renderHelp() string {
	var text string
	switch m.state {
	case stateFilter:
		text = "type to filter   Enter keep   Esc clear"
	case stateCreate:
		text = "Ctrl+A analyze   Tab/Shift+Tab fields   Enter create   Esc cancel"
	case stateDetails:
		text = "c claim   r release   Esc back   q quit"
	default:
		text = "↑/↓ navigate   Enter details   w wallet   n new   c claim   r release   / filter   q quit"
	}
	sep := dimStyle.Render(strings.Repeat("─", max(m.width, 1)))
	return sep + "\n" + helpStyle.Render(text)
}

func (m Model) selectedBounty() *domain.Bounty {
	if len(m.bounties) == 0 {
		return nil
	}
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.bounties) {
		return nil
	}
	return &m.bounties[idx]
}
