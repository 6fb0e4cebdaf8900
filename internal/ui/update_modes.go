//go:build linux
// +build linux

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleFormMode(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.mode != modeForm {
		return m, nil, false
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		m.mode = modeList
		m.notice = "Edit cancelled."
		return m, nil, true
	case "enter":
		cmd := m.submitForm()
		return m, cmd, true
	case "up", "shift+tab":
		m.form.prev()
		return m, nil, true
	case "down", "tab":
		m.form.next()
		return m, nil, true
	case "left":
		if m.form.isEnum(m.form.focus) {
			m.form.cycle(-1)
			return m, nil, true
		}
	case "right":
		if m.form.isEnum(m.form.focus) {
			m.form.cycle(1)
			return m, nil, true
		}
	}

	cmd := m.form.updateInput(key)
	return m, cmd, true
}

func (m Model) handleConfirmDelete(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.mode != modeConfirmDelete {
		return m, nil, false
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "y", "Y":
		m.mode = modeList
		cmd := m.startDelete(m.pendingDelete)
		return m, cmd, true
	default:
		// Anything but an explicit yes cancels.
		m.mode = modeList
		m.pendingDelete = 0
		m.notice = "Delete cancelled."
		return m, nil, true
	}
}

func (m Model) handlePanicMode(msg tea.Msg) (Model, tea.Cmd, bool) {
	if m.mode != modePanic {
		return m, nil, false
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "enter":
		m.mode = modeList
		cmd := m.startReset()
		return m, cmd, true
	case "esc":
		m.mode = modeList
		m.notice = "Panic mode aborted."
		return m, nil, true
	default:
		return m, nil, true
	}
}
