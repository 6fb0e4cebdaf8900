//go:build linux
// +build linux

package ui

import (
	"fmt"
	"log/slog"
	"os"

	"lazyufw/internal/backup"
	"lazyufw/internal/notes"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) setDryRunNotice(action string) {
	m.err = nil
	m.notice = "DRY RUN: would " + action
}

func (m *Model) startAddForm() {
	m.err = nil
	m.form = newRuleForm()
	m.form.setFocus(fieldAction)
	m.mode = modeForm
}

func (m *Model) startEditForm() {
	rule, ok := m.selectedRule()
	if !ok {
		m.notice = "No rule selected to edit."
		return
	}
	m.err = nil
	service, _ := m.serviceStore.Get(rule.Index)
	note, _ := m.noteStore.Get(rule.Index)
	m.form = formForRule(rule, service, note)
	m.form.setFocus(fieldAction)
	m.mode = modeForm
}

// submitForm validates and commits the open form. A validation failure keeps
// the form open with the bad value still editable; the external tool is
// never invoked with a partial command.
func (m *Model) submitForm() tea.Cmd {
	fields, spec, err := m.form.commit()
	if err != nil {
		m.err = err
		return nil
	}

	m.mode = modeList
	if m.dryRun {
		if m.form.editing {
			m.setDryRunNotice(fmt.Sprintf("replace rule %d with %q", m.form.ruleIndex, spec))
		} else {
			m.setDryRunNotice(fmt.Sprintf("run ufw %s", spec))
		}
		return nil
	}

	m.err = nil
	m.loading = true
	if m.form.editing {
		return editRuleCmd(m.client, m.form.ruleIndex, spec, fields.Service, fields.Note)
	}
	return addRuleCmd(m.client, spec, m.rules, fields.Service, fields.Note)
}

func (m *Model) requestDelete() tea.Cmd {
	rule, ok := m.selectedRule()
	if !ok {
		m.notice = "No rule selected to delete."
		return nil
	}
	if m.confirmDelete {
		m.pendingDelete = rule.Index
		m.mode = modeConfirmDelete
		return nil
	}
	return m.startDelete(rule.Index)
}

func (m *Model) startDelete(index int) tea.Cmd {
	if m.dryRun {
		m.setDryRunNotice(fmt.Sprintf("delete rule %d", index))
		return nil
	}
	m.err = nil
	m.loading = true
	return deleteRuleCmd(m.client, index)
}

func (m *Model) startReload() tea.Cmd {
	if m.dryRun {
		m.setDryRunNotice("reload the firewall")
		return nil
	}
	m.err = nil
	m.loading = true
	return reloadCmd(m.client)
}

func (m *Model) startReset() tea.Cmd {
	if m.dryRun {
		m.setDryRunNotice("reset the firewall to defaults")
		return nil
	}
	m.err = nil
	m.loading = true
	return resetCmd(m.client)
}

func (m *Model) finishAdd(msg addDoneMsg) tea.Cmd {
	if msg.err != nil {
		return m.recoverMutation(msg.err)
	}
	m.applySnapshot(msg.snap, nil)

	// The diff names the appended rule; with no diff the rule exists but
	// stays unannotated, which still counts as success.
	if len(msg.added) > 0 {
		index := msg.added[0].Index
		if msg.service != "" {
			m.serviceStore.Set(index, msg.service)
		}
		if msg.note != "" {
			m.noteStore.Set(index, msg.note)
		}
		m.persistStores()
		m.notice = "Rule applied successfully."
	} else {
		m.notice = "Rule applied; no new rule detected to annotate."
	}
	return nil
}

func (m *Model) finishEdit(msg editDoneMsg) tea.Cmd {
	if msg.err != nil {
		return m.recoverMutation(msg.err)
	}
	if msg.service != "" {
		m.serviceStore.Set(msg.index, msg.service)
	} else {
		m.serviceStore.Remove(msg.index)
	}
	if msg.note != "" {
		m.noteStore.Set(msg.index, msg.note)
	} else {
		m.noteStore.Remove(msg.index)
	}
	m.persistStores()
	m.applySnapshot(msg.snap, nil)
	m.notice = "Rule applied successfully."
	return nil
}

func (m *Model) finishDelete(msg deleteDoneMsg) tea.Cmd {
	if msg.err != nil {
		return m.recoverMutation(msg.err)
	}

	// The external delete renumbered everything above the gap; both stores
	// must pass through the same shift before any index is trusted again.
	m.serviceStore = notes.ReindexAfterDelete(m.serviceStore, msg.index)
	m.noteStore = notes.ReindexAfterDelete(m.noteStore, msg.index)
	m.persistStores()

	m.applySnapshot(msg.snap, nil)
	if m.selected > 0 {
		m.selected--
		m.adjustScroll()
	}
	m.notice = fmt.Sprintf("Rule %d deleted successfully.", msg.index)
	return nil
}

func (m *Model) finishAction(msg actionDoneMsg) tea.Cmd {
	if msg.err != nil {
		return m.recoverMutation(msg.err)
	}
	m.applySnapshot(msg.snap, nil)
	m.notice = msg.notice
	return nil
}

// recoverMutation surfaces a failed external invocation and re-fetches so
// the table reflects whatever state ufw is actually in. Never fatal.
func (m *Model) recoverMutation(err error) tea.Cmd {
	m.err = err
	m.loading = true
	return fetchSnapshotCmd(m.client)
}

// persistStores rewrites both annotation files, taking a backup of each
// first. A failed write is surfaced but the in-memory stores are kept.
func (m *Model) persistStores() {
	targets := []struct {
		path  string
		store notes.Store
	}{
		{m.servicePath, m.serviceStore},
		{m.notePath, m.noteStore},
	}
	for _, t := range targets {
		if t.path == "" {
			continue
		}
		if _, err := backup.Create(t.path); err != nil && !os.IsNotExist(err) {
			slog.Warn("annotation backup failed", "path", t.path, "error", err)
		}
		if err := notes.Save(t.path, t.store); err != nil {
			slog.Error("annotation save failed", "path", t.path, "error", err)
			m.err = err
		}
	}
}
