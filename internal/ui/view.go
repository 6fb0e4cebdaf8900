//go:build linux
// +build linux

package ui

import (
	"fmt"
	"strings"
	"time"

	"lazyufw/internal/rules"
	"lazyufw/internal/ufw"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	inactiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	statusStyle   = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("250")).Padding(0, 1)
	focusStyle    = lipgloss.NewStyle().Reverse(true)
	fieldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	dangerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Padding(0, 1)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

const (
	colNum     = 5
	colTo      = 17
	colAction  = 12
	colFrom    = 15
	colService = 18
)

func (m Model) View() string {
	var body string
	switch m.mode {
	case modeForm:
		body = renderForm(m)
	case modePanic:
		body = renderPanic()
	default:
		body = renderTable(m)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m),
		body,
		renderStatus(m),
	)
}

func renderHeader(m Model) string {
	title := titleStyle.Render("LazyUFW")

	state := strings.ToUpper(m.state)
	styled := inactiveStyle.Render("Status: " + state)
	if m.state == "active" {
		styled = activeStyle.Render("Status: " + state)
	}

	parts := []string{title, styled}
	if m.dryRun {
		parts = append(parts, noticeStyle.Render("[dry-run]"))
	}
	if m.loading {
		parts = append(parts, m.spinner.View()+" Loading...")
	}
	parts = append(parts, dimStyle.Render(time.Now().Format("15:04:05")))
	return strings.Join(parts, "  ")
}

func renderTable(m Model) string {
	var b strings.Builder

	if m.state == ufw.StateError {
		b.WriteString(errorStyle.Render("Could not get ufw status. Is it installed?"))
		return panelStyle.Render(b.String())
	}

	header := fmt.Sprintf("%s %s %s %s %s %s",
		pad("[#]", colNum),
		pad("TO", colTo),
		pad("ACTION", colAction),
		pad("FROM/TO", colFrom),
		pad("SERVICE", colService),
		"NOTE",
	)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.rules) == 0 {
		b.WriteString(dimStyle.Render("No rules to display."))
		return panelStyle.Render(b.String())
	}

	rows := m.visibleRows()
	end := m.scroll + rows
	if end > len(m.rules) {
		end = len(m.rules)
	}

	for i := m.scroll; i < end; i++ {
		line := m.renderRuleRow(m.rules[i])
		if i == m.selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if end < len(m.rules) {
		b.WriteString(dimStyle.Render("... more below ..."))
		b.WriteString("\n")
	}

	if m.mode == modeConfirmDelete {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render(fmt.Sprintf("Delete rule #%d? (y/N)", m.pendingDelete)))
	}

	return panelStyle.Render(b.String())
}

func (m Model) renderRuleRow(rule ufw.Rule) string {
	to, action, from := rules.DisplayColumns(rule.Description)

	service, _ := m.serviceStore.Get(rule.Index)
	noteFlag := "No"
	if _, ok := m.noteStore.Get(rule.Index); ok {
		noteFlag = "Yes"
	}

	return fmt.Sprintf("%s %s %s %s %s %s",
		pad(fmt.Sprintf("[%d]", rule.Index), colNum),
		pad(to, colTo),
		pad(action, colAction),
		pad(from, colFrom),
		pad(service, colService),
		noteFlag,
	)
}

func renderForm(m Model) string {
	var b strings.Builder

	title := "Add Rule"
	if m.form.editing {
		title = fmt.Sprintf("Edit Rule #%d", m.form.ruleIndex)
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	for field := fieldAction; field < fieldCount; field++ {
		label := pad(fieldLabels[field], 10) + ":"
		if field == m.form.focus {
			label = focusStyle.Render(label)
		}

		var value string
		switch field {
		case fieldAction:
			value = enumDisplay(rules.Actions[m.form.actionIdx])
		case fieldDirection:
			value = enumDisplay(rules.Directions[m.form.directionIdx])
		case fieldProtocol:
			value = enumDisplay(rules.Protocols[m.form.protocolIdx])
		default:
			value = m.form.inputs[field].View()
		}

		b.WriteString(label)
		b.WriteString(" ")
		b.WriteString(fieldStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ fields · ←/→ options · Enter save · Esc cancel"))
	return panelStyle.Render(b.String())
}

func renderPanic() string {
	var b strings.Builder
	b.WriteString(dangerStyle.Render("!!! PANIC MODE !!!"))
	b.WriteString("\n\n")
	b.WriteString("This will RESET the firewall to defaults,\n")
	b.WriteString("dropping every rule. Only use if something went wrong.\n\n")
	b.WriteString(headerStyle.Render("Enter"))
	b.WriteString(" to continue · ")
	b.WriteString(headerStyle.Render("Esc"))
	b.WriteString(" to abort")
	return panelStyle.Render(b.String())
}

func renderStatus(m Model) string {
	legend := "j/k: move  a: add  enter: edit  d: delete  r: reload  P: panic reset  q: quit"

	var parts []string
	if m.err != nil {
		parts = append(parts, errorStyle.Render("Error: "+m.err.Error()))
	} else if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, statusStyle.Render(legend))
	return strings.Join(parts, "\n")
}

func enumDisplay(value string) string {
	return "< " + value + " >"
}

// pad fits s into exactly width cells, truncating when too long.
func pad(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
