package tui

import (
	"strings"
	"testing"

	"github.com/abacus-calc/abacus/internal/calc"
	"github.com/abacus-calc/abacus/internal/messages"

	tea "github.com/charmbracelet/bubbletea"
)

func update(t *testing.T, m RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(RootModel)
	if !ok {
		t.Fatalf("Update returned %T, want RootModel", next)
	}
	return rm, cmd
}

func pressIDs(t *testing.T, m RootModel, ids ...string) RootModel {
	t.Helper()
	for _, id := range ids {
		m, _ = update(t, m, messages.ButtonPressedMsg{ID: id})
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_ButtonPressed(t *testing.T) {
	m := NewRootModel(calc.New())
	m = pressIDs(t, m, "7", "8", "+", "2", "2", "=")
	if got := m.Display(); got != "100" {
		t.Errorf("display = %q, want 100", got)
	}
	if !strings.Contains(m.View(), "100") {
		t.Errorf("view does not show result:\n%s", m.View())
	}
}

func TestUpdate_UnknownButtonIgnored(t *testing.T) {
	m := NewRootModel(calc.New())
	m = pressIDs(t, m, "4")
	m, cmd := update(t, m, messages.ButtonPressedMsg{ID: "sqrt"})
	if cmd != nil {
		t.Error("unknown button returned a command")
	}
	if m.Display() != "4" {
		t.Errorf("display = %q, want 4", m.Display())
	}
}

func TestUpdate_FlashExpires(t *testing.T) {
	m := NewRootModel(calc.New())
	m, cmd := update(t, m, messages.ButtonPressedMsg{ID: "5"})
	if cmd == nil {
		t.Fatal("press did not schedule flash expiry")
	}
	if m.flashID != "5" {
		t.Fatalf("flashID = %q, want 5", m.flashID)
	}
	first := m.flashSeq

	m, _ = update(t, m, messages.ButtonPressedMsg{ID: "C"})
	if m.flashID != "AC" {
		t.Errorf("clear entry flashes %q, want AC", m.flashID)
	}

	m, _ = update(t, m, messages.FlashExpiredMsg{Seq: first})
	if m.flashID == "" {
		t.Error("stale expiry cleared the current flash")
	}
	m, _ = update(t, m, messages.FlashExpiredMsg{Seq: m.flashSeq})
	if m.flashID != "" {
		t.Errorf("flashID = %q after expiry, want empty", m.flashID)
	}
}

func TestUpdate_KeyboardFocus(t *testing.T) {
	m := NewRootModel(calc.New())
	if got := m.Focused().ID; got != "AC" {
		t.Fatalf("initial focus = %q, want AC", got)
	}

	// AC -> 7 -> 4 -> 5, press; 5 -> 2 -> 0 (wide), press
	for _, k := range []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyRight}} {
		m, _ = update(t, m, k)
	}
	if got := m.Focused().ID; got != "5" {
		t.Fatalf("focus = %q, want 5", got)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, keyRunes("j"))
	m, _ = update(t, m, keyRunes("j"))
	if got := m.Focused().ID; got != "0" {
		t.Fatalf("focus = %q, want 0", got)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if got := m.Display(); got != "50" {
		t.Errorf("display = %q, want 50", got)
	}
}

func TestUpdate_DigitKeysNotBound(t *testing.T) {
	m := NewRootModel(calc.New())
	m, cmd := update(t, m, keyRunes("7"))
	if cmd != nil || m.Display() != "0" {
		t.Errorf("typing 7 changed display to %q", m.Display())
	}
}

func TestUpdate_ClearKeyFollowsLabel(t *testing.T) {
	m := NewRootModel(calc.New())
	m = pressIDs(t, m, "1", "2", "+", "3")
	if !strings.Contains(m.View(), " C ") {
		t.Errorf("clear key should read C:\n%s", m.View())
	}

	// Focus starts on the clear key.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	s := m.engine.State()
	if s.PendingOperator != calc.Add || s.PreviousInput != "12" {
		t.Fatalf("clear entry dropped the pending operation: %+v", s)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.engine.State().Cleared() {
		t.Errorf("second clear should reset everything: %+v", m.engine.State())
	}
}

func TestUpdate_MouseClick(t *testing.T) {
	m := NewRootModel(calc.New())
	click := func(id string) {
		for _, row := range m.layout.Rows {
			for _, c := range row {
				if c.ID != id {
					continue
				}
				x, y, _, _ := m.layout.Rect(c)
				m, _ = update(t, m, tea.MouseMsg{
					X:      x + 1,
					Y:      y + 1,
					Action: tea.MouseActionPress,
					Button: tea.MouseButtonLeft,
				})
				return
			}
		}
		t.Fatalf("no key %q", id)
	}

	for _, id := range []string{"9", "x", "9", "="} {
		click(id)
	}
	if got := m.Display(); got != "81" {
		t.Errorf("display = %q, want 81", got)
	}
	if got := m.Focused().ID; got != "=" {
		t.Errorf("focus = %q, want =", got)
	}

	m, cmd := update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd != nil {
		t.Error("click outside keypad returned a command")
	}
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Display() != "81" {
		t.Errorf("display = %q, want 81", m.Display())
	}
}

func TestUpdate_Replay(t *testing.T) {
	m := NewRootModel(calc.New(), WithReplay([]string{"5", "÷", "0", "="}))
	if m.Init() == nil {
		t.Fatal("Init with replay returned no command")
	}
	for i := 0; i < 4; i++ {
		m, _ = update(t, m, messages.ReplayStepMsg{})
	}
	if got := m.Display(); got != calc.ErrorText {
		t.Errorf("display = %q, want %q", got, calc.ErrorText)
	}
	if len(m.replay) != 0 {
		t.Errorf("replay queue = %v, want empty", m.replay)
	}
	if _, cmd := update(t, m, messages.ReplayStepMsg{}); cmd != nil {
		t.Error("empty replay returned a command")
	}
	if NewRootModel(calc.New()).Init() != nil {
		t.Error("Init without replay should return nil")
	}
}

func TestUpdate_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyRunes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, NewRootModel(calc.New()), k)
		if cmd == nil {
			t.Fatalf("%s returned no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", k)
		}
	}
}

func TestUpdate_HelpToggle(t *testing.T) {
	m := NewRootModel(calc.New())
	m, _ = update(t, m, keyRunes("?"))
	if !m.help.ShowAll {
		t.Fatal("? did not expand help")
	}
	if !strings.Contains(m.View(), "down") {
		t.Errorf("full help missing navigation keys:\n%s", m.View())
	}
}

func TestView_LongDisplayKeepsRightmost(t *testing.T) {
	m := NewRootModel(calc.New())
	for i := 0; i < 30; i++ {
		m = pressIDs(t, m, "9")
	}
	m = pressIDs(t, m, "1")

	full := calc.Format(strings.Repeat("9", 30) + "1")
	width := m.layout.Width()
	if len(full) <= width {
		t.Fatalf("test display %q fits in %d columns", full, width)
	}
	display := m.renderDisplay()
	if !strings.Contains(display, full[len(full)-width:]) {
		t.Errorf("display lost its tail:\n%s", display)
	}
	if strings.Contains(display, full) {
		t.Errorf("display not truncated:\n%s", display)
	}
}
