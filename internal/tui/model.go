package tui

import (
	"log/slog"
	"time"

	"github.com/abacus-calc/abacus/internal/calc"
	"github.com/abacus-calc/abacus/internal/messages"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is the calculator screen: a display over the keypad. It renders
// whatever the engine reports after each press.
type RootModel struct {
	engine *calc.Engine
	layout Layout
	keys   keyMap
	help   help.Model
	log    *slog.Logger

	// Focused key
	focusRow int
	focusIdx int

	// Highlighted key after a press, cleared by FlashExpiredMsg
	flashID  string
	flashSeq int

	replay []string

	width  int
	height int
}

type Option func(*RootModel)

func WithLogger(l *slog.Logger) Option {
	return func(m *RootModel) {
		if l != nil {
			m.log = l
		}
	}
}

// WithReplay queues button identifiers to press one by one once the program starts.
func WithReplay(ids []string) Option {
	return func(m *RootModel) {
		m.replay = append([]string(nil), ids...)
	}
}

func NewRootModel(engine *calc.Engine, opts ...Option) RootModel {
	m := RootModel{
		engine: engine,
		layout: DefaultLayout(),
		keys:   defaultKeyMap,
		help:   help.New(),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m RootModel) Init() tea.Cmd {
	if len(m.replay) > 0 {
		return replayCmd()
	}
	return nil
}

// Focused returns the key under the focus cursor.
func (m RootModel) Focused() Cell {
	return m.layout.Cell(m.focusRow, m.focusIdx)
}

func (m RootModel) Display() string {
	return m.engine.Display()
}

func replayCmd() tea.Cmd {
	return tea.Tick(ReplayInterval, func(time.Time) tea.Msg {
		return messages.ReplayStepMsg{}
	})
}

func flashCmd(seq int) tea.Cmd {
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return messages.FlashExpiredMsg{Seq: seq}
	})
}
