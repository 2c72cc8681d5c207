package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("scanbridge — server connection"))
	b.WriteString("\n\n")

	switch m.state {
	case stateForm:
		b.WriteString(m.renderForm())
		b.WriteString(helpStyle.Render("tab/shift+tab: move  enter: next/connect  esc: quit"))
	case stateConnecting:
		b.WriteString("Connecting to " + strings.TrimSpace(m.formInputs[0]) + " ...\n")
	case stateDone:
		if m.messageType == "success" {
			b.WriteString(successStyle.Render("✓ " + m.message))
		} else {
			b.WriteString(errorStyle.Render("✗ " + m.message))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r: edit again  q: quit"))
	}

	return baseStyle.Render(b.String())
}

func (m Model) renderForm() string {
	var b strings.Builder

	for i, label := range m.formLabels {
		style := labelStyle
		cursor := "  "
		if i == m.formCursor {
			style = focusedLabelStyle
			cursor = "> "
		}

		value := m.formInputs[i]
		if label == "Password" {
			value = strings.Repeat("*", len(value))
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, style.Render(label), value))
	}

	b.WriteString("\n")
	return b.String()
}
