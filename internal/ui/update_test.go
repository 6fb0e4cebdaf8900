//go:build linux
// +build linux

package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"lazyufw/internal/notes"
	"lazyufw/internal/rules"
	"lazyufw/internal/ufw"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testModel(t *testing.T) Model {
	t.Helper()
	t.Setenv("SUDO_USER", "")
	t.Setenv("HOME", t.TempDir())

	m := NewModel(nil, Options{ConfirmDelete: true})
	m.loading = false
	m.servicePath = ""
	m.notePath = ""
	return m
}

func sampleRules(n int) []ufw.Rule {
	out := make([]ufw.Rule, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, ufw.Rule{Index: i, Description: "22/tcp ALLOW IN Anywhere"})
	}
	return out
}

func TestUpdate_NavigationClamps(t *testing.T) {
	m := testModel(t)
	m.state = "active"
	m.rules = sampleRules(3)

	var model tea.Model = m
	for i := 0; i < 5; i++ {
		model, _ = model.Update(keyRune('j'))
	}
	if got := model.(Model).selected; got != 2 {
		t.Fatalf("selected after moving past end = %d, want 2", got)
	}

	for i := 0; i < 5; i++ {
		model, _ = model.Update(keyRune('k'))
	}
	if got := model.(Model).selected; got != 0 {
		t.Fatalf("selected after moving past start = %d, want 0", got)
	}
}

func TestUpdate_SnapshotError(t *testing.T) {
	m := testModel(t)
	m.rules = sampleRules(2)

	updated, _ := m.Update(snapshotMsg{
		snap: ufw.Snapshot{State: ufw.StateError},
		err:  errors.New("ufw status: command not found"),
	})
	got := updated.(Model)

	if got.state != ufw.StateError {
		t.Fatalf("state = %q, want %q", got.state, ufw.StateError)
	}
	if got.rules != nil {
		t.Fatalf("rules = %v, want nil", got.rules)
	}
	if got.err == nil {
		t.Fatal("err not surfaced")
	}
	if !strings.Contains(got.notice, "Is it installed") {
		t.Fatalf("notice = %q", got.notice)
	}
}

func TestUpdate_ActiveWithoutRulesNotice(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(snapshotMsg{snap: ufw.Snapshot{State: "active"}})
	got := updated.(Model)

	if got.notice != "ufw is active, but no rules are configured." {
		t.Fatalf("notice = %q", got.notice)
	}
}

func TestUpdate_ConfirmDeleteFlow(t *testing.T) {
	m := testModel(t)
	m.state = "active"
	m.rules = sampleRules(2)
	m.selected = 1

	updated, _ := m.Update(keyRune('d'))
	got := updated.(Model)
	if got.mode != modeConfirmDelete || got.pendingDelete != 2 {
		t.Fatalf("mode = %d, pendingDelete = %d", got.mode, got.pendingDelete)
	}

	updated, _ = got.Update(keyRune('n'))
	got = updated.(Model)
	if got.mode != modeList {
		t.Fatalf("mode after decline = %d, want list", got.mode)
	}
	if got.notice != "Delete cancelled." {
		t.Fatalf("notice = %q", got.notice)
	}
}

func TestUpdate_ConfirmDeleteAcceptDryRun(t *testing.T) {
	m := testModel(t)
	m.state = "active"
	m.rules = sampleRules(1)
	m.dryRun = true

	updated, _ := m.Update(keyRune('d'))
	updated, cmd := updated.(Model).Update(keyRune('y'))
	got := updated.(Model)

	if cmd != nil {
		t.Fatal("dry run must not schedule a command")
	}
	if !strings.HasPrefix(got.notice, "DRY RUN:") {
		t.Fatalf("notice = %q", got.notice)
	}
}

func TestUpdate_DeleteReindexesBothStores(t *testing.T) {
	m := testModel(t)
	dir := t.TempDir()
	m.servicePath = filepath.Join(dir, "services.txt")
	m.notePath = filepath.Join(dir, "notes.txt")

	m.state = "active"
	m.rules = sampleRules(3)
	m.serviceStore = notes.Store{1: "ssh", 2: "web"}
	m.noteStore = notes.Store{2: "needs review"}

	snap := ufw.Snapshot{State: "active", Rules: sampleRules(2)}
	updated, _ := m.Update(deleteDoneMsg{snap: snap, index: 1})
	got := updated.(Model)

	if len(got.serviceStore) != 1 {
		t.Fatalf("serviceStore = %v", got.serviceStore)
	}
	if v, ok := got.serviceStore.Get(1); !ok || v != "web" {
		t.Fatalf("serviceStore[1] = %q, %v", v, ok)
	}
	if v, ok := got.noteStore.Get(1); !ok || v != "needs review" {
		t.Fatalf("noteStore[1] = %q, %v", v, ok)
	}
	if got.notice != "Rule 1 deleted successfully." {
		t.Fatalf("notice = %q", got.notice)
	}

	// Both files must already reflect the shift.
	onDisk, err := notes.Load(m.servicePath)
	if err != nil {
		t.Fatalf("reload services: %v", err)
	}
	if v, ok := onDisk.Get(1); !ok || v != "web" {
		t.Fatalf("persisted services = %v", onDisk)
	}
	onDisk, err = notes.Load(m.notePath)
	if err != nil {
		t.Fatalf("reload notes: %v", err)
	}
	if v, ok := onDisk.Get(1); !ok || v != "needs review" {
		t.Fatalf("persisted notes = %v", onDisk)
	}
}

func TestUpdate_DeleteMovesSelectionUp(t *testing.T) {
	m := testModel(t)
	m.state = "active"
	m.rules = sampleRules(3)
	m.selected = 2

	snap := ufw.Snapshot{State: "active", Rules: sampleRules(2)}
	updated, _ := m.Update(deleteDoneMsg{snap: snap, index: 3})
	got := updated.(Model)

	if got.selected != 1 {
		t.Fatalf("selected = %d, want 1", got.selected)
	}
}

func TestUpdate_AddDoneAnnotatesNewRule(t *testing.T) {
	m := testModel(t)
	m.state = "active"
	m.rules = sampleRules(1)

	snap := ufw.Snapshot{State: "active", Rules: sampleRules(2)}
	updated, _ := m.Update(addDoneMsg{
		snap:    snap,
		added:   []ufw.Rule{snap.Rules[1]},
		service: "web",
		note:    "staging box",
	})
	got := updated.(Model)

	if v, ok := got.serviceStore.Get(2); !ok || v != "web" {
		t.Fatalf("serviceStore[2] = %q, %v", v, ok)
	}
	if v, ok := got.noteStore.Get(2); !ok || v != "staging box" {
		t.Fatalf("noteStore[2] = %q, %v", v, ok)
	}
	if got.notice != "Rule applied successfully." {
		t.Fatalf("notice = %q", got.notice)
	}
}

func TestUpdate_AddDoneWithoutDiff(t *testing.T) {
	m := testModel(t)
	m.state = "active"
	m.rules = sampleRules(1)

	snap := ufw.Snapshot{State: "active", Rules: sampleRules(1)}
	updated, _ := m.Update(addDoneMsg{snap: snap, service: "web"})
	got := updated.(Model)

	if len(got.serviceStore) != 0 {
		t.Fatalf("serviceStore = %v, want empty", got.serviceStore)
	}
	if got.notice != "Rule applied; no new rule detected to annotate." {
		t.Fatalf("notice = %q", got.notice)
	}
}

func TestUpdate_EditDoneReplacesAnnotations(t *testing.T) {
	m := testModel(t)
	m.state = "active"
	m.rules = sampleRules(2)
	m.serviceStore = notes.Store{2: "old"}
	m.noteStore = notes.Store{2: "old note"}

	snap := ufw.Snapshot{State: "active", Rules: sampleRules(2)}
	updated, _ := m.Update(editDoneMsg{snap: snap, index: 2, service: "new"})
	got := updated.(Model)

	if v, ok := got.serviceStore.Get(2); !ok || v != "new" {
		t.Fatalf("serviceStore[2] = %q, %v", v, ok)
	}
	if _, ok := got.noteStore.Get(2); ok {
		t.Fatal("empty note must clear the stored one")
	}
}

func TestUpdate_InvalidPortKeepsFormOpen(t *testing.T) {
	m := testModel(t)
	m.mode = modeForm
	m.form = newRuleForm()
	m.form.setFocus(fieldPort)
	m.form.setValue(fieldPort, "abc")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	if cmd != nil {
		t.Fatal("invalid form must not schedule a command")
	}
	if got.mode != modeForm {
		t.Fatalf("mode = %d, want form", got.mode)
	}
	if !errors.Is(got.err, rules.ErrInvalidPort) {
		t.Fatalf("err = %v, want ErrInvalidPort", got.err)
	}
	if got.form.value(fieldPort) != "abc" {
		t.Fatalf("port = %q, want the rejected value kept", got.form.value(fieldPort))
	}
}

func TestUpdate_FormEscapeCancels(t *testing.T) {
	m := testModel(t)
	m.mode = modeForm
	m.form = newRuleForm()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	got := updated.(Model)

	if got.mode != modeList {
		t.Fatalf("mode = %d, want list", got.mode)
	}
	if got.notice != "Edit cancelled." {
		t.Fatalf("notice = %q", got.notice)
	}
}

func TestUpdate_PanicMode(t *testing.T) {
	m := testModel(t)
	m.state = "active"
	m.dryRun = true

	updated, _ := m.Update(keyRune('P'))
	got := updated.(Model)
	if got.mode != modePanic {
		t.Fatalf("mode = %d, want panic", got.mode)
	}

	updated, _ = got.Update(tea.KeyMsg{Type: tea.KeyEscape})
	got = updated.(Model)
	if got.mode != modeList || got.notice != "Panic mode aborted." {
		t.Fatalf("mode = %d, notice = %q", got.mode, got.notice)
	}

	updated, _ = got.Update(keyRune('P'))
	updated, cmd := updated.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	got = updated.(Model)
	if cmd != nil {
		t.Fatal("dry run reset must not schedule a command")
	}
	if !strings.HasPrefix(got.notice, "DRY RUN:") {
		t.Fatalf("notice = %q", got.notice)
	}
}

func TestUpdate_EditWithNoSelection(t *testing.T) {
	m := testModel(t)
	m.state = "active"

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	if cmd != nil {
		t.Fatal("no command expected")
	}
	if got.mode != modeList {
		t.Fatalf("mode = %d, want list", got.mode)
	}
	if got.notice != "No rule selected to edit." {
		t.Fatalf("notice = %q", got.notice)
	}
}
