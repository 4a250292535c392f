package board

import (
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/bounty-board-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type RenderOptions struct {
	Now     time.Time
	Session domain.WalletSession
	// Detailed renders the full record per bounty instead of the board row.
	Detailed bool
}

type renderReadyMsg struct{}

type model struct {
	bounties []domain.Bounty
	opts     RenderOptions
	styles   styles
	output   string
}

func newModel(bounties []domain.Bounty, opts RenderOptions) model {
	return model{
		bounties: bounties,
		opts:     opts,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.bounties, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(bounties []domain.Bounty, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(bounties, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
