//go:build linux
// +build linux

package ui

import (
	"lazyufw/internal/ufw"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		fetchSnapshotCmd(m.client),
		loadStoresCmd(m.servicePath, m.notePath),
	}
	if m.refreshEvery > 0 {
		cmds = append(cmds, refreshTickCmd(m.refreshEvery))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if next, cmd, handled := m.handleFormMode(msg); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handleConfirmDelete(msg); handled {
		return next, cmd
	}
	if next, cmd, handled := m.handlePanicMode(msg); handled {
		return next, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleListKey(msg)

	case snapshotMsg:
		m.applySnapshot(msg.snap, msg.err)
		return m, nil

	case storesMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.serviceStore = msg.services
		m.noteStore = msg.notes
		return m, nil

	case addDoneMsg:
		cmd := m.finishAdd(msg)
		return m, cmd

	case editDoneMsg:
		cmd := m.finishEdit(msg)
		return m, cmd

	case deleteDoneMsg:
		cmd := m.finishDelete(msg)
		return m, cmd

	case actionDoneMsg:
		cmd := m.finishAction(msg)
		return m, cmd

	case refreshTickMsg:
		if m.refreshEvery <= 0 {
			return m, nil
		}
		next := refreshTickCmd(m.refreshEvery)
		if m.mode != modeList || m.loading {
			return m, next
		}
		return m, tea.Batch(
			next,
			fetchSnapshotCmd(m.client),
			loadStoresCmd(m.servicePath, m.notePath),
		)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.moveSelection(-1)
		return m, nil
	case "down", "j":
		m.moveSelection(1)
		return m, nil
	case "r":
		cmd := m.startReload()
		return m, cmd
	case "a":
		m.startAddForm()
		return m, nil
	case "enter":
		m.startEditForm()
		return m, nil
	case "d":
		cmd := m.requestDelete()
		return m, cmd
	case "P":
		m.mode = modePanic
		return m, nil
	}
	return m, nil
}

func (m *Model) applySnapshot(snap ufw.Snapshot, err error) {
	m.loading = false
	if err != nil {
		m.err = err
		m.state = snap.State
		m.rules = nil
		m.notice = "Error fetching ufw status. Is it installed and enabled?"
		m.clampSelection()
		return
	}
	m.err = nil
	m.state = snap.State
	m.rules = snap.Rules
	if len(m.rules) == 0 && m.state == "active" {
		m.notice = "ufw is active, but no rules are configured."
	}
	m.clampSelection()
}
