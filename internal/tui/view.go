package tui

import (
	"strings"

	"github.com/abacus-calc/abacus/internal/calc"

	"github.com/charmbracelet/lipgloss"
)

func (m RootModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderDisplay())
	b.WriteString(strings.Repeat("\n", DisplayGap+1))
	b.WriteString(m.renderKeypad())
	b.WriteString(strings.Repeat("\n", HelpGap+1))
	b.WriteString(m.help.View(m.keys))
	return appStyle.Render(b.String())
}

// renderDisplay shows the display text right-aligned. Text wider than the
// keypad keeps its rightmost characters.
func (m RootModel) renderDisplay() string {
	width := m.layout.Width()
	text := m.engine.Display()
	if r := []rune(text); len(r) > width {
		text = string(r[len(r)-width:])
	}
	return displayStyle.Width(width).Render(text)
}

func (m RootModel) renderKeypad() string {
	rows := make([]string, 0, len(m.layout.Rows))
	gap := strings.Repeat(" ", ButtonGap)
	focused := m.Focused()

	for _, row := range m.layout.Rows {
		parts := make([]string, 0, 2*len(row))
		for i, c := range row {
			if i > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, m.renderKey(c, c == focused))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return strings.Join(rows, strings.Repeat("\n", ButtonGap+1))
}

func (m RootModel) renderKey(c Cell, focused bool) string {
	b, err := calc.ParseButton(c.ID)
	if err != nil {
		return keyStyle.Width(spanWidth(c.Span)).Render(c.ID)
	}

	label := b.Label()
	style := digitKeyStyle
	switch b.Kind {
	case calc.KindClear:
		label = m.engine.ClearLabel()
		style = functionKeyStyle
	case calc.KindSign, calc.KindPercent:
		style = functionKeyStyle
	case calc.KindOperator, calc.KindEquals:
		style = operatorKeyStyle
		s := m.engine.State()
		if b.Kind == calc.KindOperator && s.Mode() == calc.ModeNormal &&
			s.Phase() == calc.AwaitingOperand && s.PendingOperator == b.Op {
			style = pendingKeyStyle
		}
	}

	if focused {
		style = style.Bold(true).Underline(true)
	}
	if c.ID == m.flashID {
		style = style.Reverse(true)
	}
	return style.Width(spanWidth(c.Span)).Render(label)
}
