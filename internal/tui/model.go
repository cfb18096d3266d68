package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vitos/cryptopeek/internal/domain"
	"github.com/vitos/cryptopeek/internal/usecase"
	"go.uber.org/zap"
)

// FetchFunc resolves a controller request into FetchSucceeded or FetchFailed.
type FetchFunc func(ctx context.Context, req usecase.Request) usecase.Event

// fetchResultMsg carries a finished fetch back into Update.
type fetchResultMsg struct {
	event usecase.Event
}

// Model is the Bubble Tea front end over usecase.State. All state changes go
// through usecase.Reduce; the model only adds widgets.
type Model struct {
	state   usecase.State
	pending *usecase.Request

	fetch  FetchFunc
	logger *zap.Logger

	keys    keyMap
	spinner spinner.Model
	search  textinput.Model
}

func New(fetch FetchFunc, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	ti := textinput.New()
	ti.Prompt = "search> "
	ti.Placeholder = "Search coin..."
	ti.CharLimit = 64

	m := Model{
		fetch:   fetch,
		logger:  logger,
		keys:    defaultKeys(),
		spinner: sp,
		search:  ti,
	}
	m.state, m.pending = usecase.Reduce(usecase.InitialState(), usecase.Mount{})
	return m
}

// State exposes the current controller state.
func (m Model) State() usecase.State { return m.state }

func (m Model) Init() tea.Cmd {
	if m.pending == nil {
		return nil
	}
	return tea.Batch(m.fetchCmd(*m.pending), m.spinner.Tick)
}

func (m Model) fetchCmd(req usecase.Request) tea.Cmd {
	fetch := m.fetch
	logger := m.logger
	return func() tea.Msg {
		logger.Debug("Fetching",
			zap.String("tab", req.Tab.Key()),
			zap.String("path", req.Path),
			zap.String("query", req.RawQuery),
			zap.Uint64("seq", req.Seq),
		)
		return fetchResultMsg{event: fetch(context.Background(), req)}
	}
}

// apply runs one event through the reducer and schedules the fetch it asks for.
func (m Model) apply(ev usecase.Event) (Model, tea.Cmd) {
	next, req := usecase.Reduce(m.state, ev)
	m.state = next
	m.pending = nil
	if req == nil {
		return m, nil
	}
	return m, tea.Batch(m.fetchCmd(*req), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state.Status != usecase.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchResultMsg:
		m.logResult(msg.event)
		return m.apply(msg.event)

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) logResult(ev usecase.Event) {
	switch e := ev.(type) {
	case usecase.FetchSucceeded:
		if e.Seq != m.state.Seq {
			m.logger.Debug("Dropping stale response", zap.Uint64("seq", e.Seq), zap.Uint64("current", m.state.Seq))
			return
		}
		m.logger.Info("Fetch complete", zap.Uint64("seq", e.Seq), zap.Int("items", len(e.Items)))
	case usecase.FetchFailed:
		if e.Seq != m.state.Seq {
			m.logger.Debug("Dropping stale failure", zap.Uint64("seq", e.Seq), zap.Error(e.Err))
			return
		}
		m.logger.Error("Error loading data", zap.Uint64("seq", e.Seq), zap.Error(e.Err))
	}
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur) {
		m.search.Blur()
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var inputCmd tea.Cmd
	m.search, inputCmd = m.search.Update(msg)

	m, fetchCmd := m.apply(usecase.SetQuery{Query: m.search.Value()})
	return m, tea.Batch(inputCmd, fetchCmd)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextTab):
		return m.apply(usecase.SelectTab{Tab: m.state.Tab.Next()})

	case key.Matches(msg, m.keys.PrevTab):
		return m.apply(usecase.SelectTab{Tab: m.state.Tab.Prev()})

	case key.Matches(msg, m.keys.JumpTab):
		n := int(msg.String()[0] - '1')
		return m.apply(usecase.SelectTab{Tab: domain.Tab(n)})

	case key.Matches(msg, m.keys.Currency):
		if m.state.Tab != domain.TabPrices {
			return m, nil
		}
		return m.apply(usecase.SelectCurrency{Currency: m.state.Currency.Next()})

	case key.Matches(msg, m.keys.Search):
		if m.state.Tab != domain.TabSearch {
			return m, nil
		}
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextPage):
		return m.apply(usecase.NextPage{})

	case key.Matches(msg, m.keys.PrevPage):
		return m.apply(usecase.PrevPage{})

	case key.Matches(msg, m.keys.ShowAll):
		return m.apply(usecase.ShowAll{})
	}

	return m, nil
}
