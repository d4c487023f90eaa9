package tui

import (
	"github.com/abacus-calc/abacus/internal/calc"
	"github.com/abacus-calc/abacus/internal/messages"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case messages.ButtonPressedMsg:
		b, err := calc.ParseButton(msg.ID)
		if err != nil {
			m.log.Warn("ignoring button", "id", msg.ID, "error", err)
			return m, nil
		}
		return m.press(b)

	case messages.ReplayStepMsg:
		if len(m.replay) == 0 {
			return m, nil
		}
		id := m.replay[0]
		m.replay = m.replay[1:]
		next, cmd := m.Update(messages.ButtonPressedMsg{ID: id})
		if len(m.replay) > 0 {
			cmd = tea.Batch(cmd, replayCmd())
		}
		return next, cmd

	case messages.FlashExpiredMsg:
		if msg.Seq == m.flashSeq {
			m.flashID = ""
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		c, ok := m.layout.CellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.focusRow, m.focusIdx = c.Row, indexOf(m.layout, c)
		return m.pressCell(c)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.focusRow, m.focusIdx = m.layout.Move(m.focusRow, m.focusIdx, -1, 0)
		case key.Matches(msg, m.keys.Down):
			m.focusRow, m.focusIdx = m.layout.Move(m.focusRow, m.focusIdx, 1, 0)
		case key.Matches(msg, m.keys.Left):
			m.focusRow, m.focusIdx = m.layout.Move(m.focusRow, m.focusIdx, 0, -1)
		case key.Matches(msg, m.keys.Right):
			m.focusRow, m.focusIdx = m.layout.Move(m.focusRow, m.focusIdx, 0, 1)
		case key.Matches(msg, m.keys.Press):
			return m.pressCell(m.Focused())
		}
	}

	return m, nil
}

// pressCell presses the key c. The clear key sends whatever its current
// label says.
func (m RootModel) pressCell(c Cell) (tea.Model, tea.Cmd) {
	b, err := calc.ParseButton(c.ID)
	if err != nil {
		m.log.Warn("keypad cell has no button", "id", c.ID, "error", err)
		return m, nil
	}
	if b.Kind == calc.KindClear {
		b = m.engine.ClearButton()
	}
	return m.press(b)
}

func (m RootModel) press(b calc.Button) (tea.Model, tea.Cmd) {
	display := m.engine.Press(b)
	m.log.Debug("key pressed", "button", b, "display", display)

	m.flashID = cellID(b)
	m.flashSeq++
	return m, flashCmd(m.flashSeq)
}

// cellID maps a button to the keypad cell that shows it.
func cellID(b calc.Button) string {
	if b.Kind == calc.KindClearEntry {
		return calc.Clear.ID()
	}
	return b.ID()
}

func indexOf(l Layout, c Cell) int {
	for i, rc := range l.Rows[c.Row] {
		if rc.ID == c.ID {
			return i
		}
	}
	return 0
}
