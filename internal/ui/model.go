//go:build linux
// +build linux

package ui

import (
	"time"

	"lazyufw/internal/notes"
	"lazyufw/internal/ufw"

	"github.com/charmbracelet/bubbles/spinner"
)

type sessionMode int

const (
	modeList sessionMode = iota
	modeForm
	modeConfirmDelete
	modePanic
)

type Model struct {
	client *ufw.Client

	state    string
	rules    []ufw.Rule
	selected int
	scroll   int

	serviceStore notes.Store
	noteStore    notes.Store
	servicePath  string
	notePath     string

	mode          sessionMode
	form          ruleForm
	pendingDelete int

	dryRun        bool
	confirmDelete bool
	refreshEvery  time.Duration

	loading bool
	err     error
	notice  string

	width   int
	height  int
	spinner spinner.Model
}

func NewModel(client *ufw.Client, opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Line

	m := Model{
		client:        client,
		state:         "inactive",
		serviceStore:  notes.Store{},
		noteStore:     notes.Store{},
		mode:          modeList,
		dryRun:        opts.DryRun,
		confirmDelete: opts.ConfirmDelete,
		loading:       true,
		notice:        "Welcome to LazyUFW!",
		spinner:       sp,
	}
	if opts.AutoRefreshSecs > 0 {
		m.refreshEvery = time.Duration(opts.AutoRefreshSecs) * time.Second
	}
	if path, err := notes.ServicesPath(); err == nil {
		m.servicePath = path
	}
	if path, err := notes.NotesPath(); err == nil {
		m.notePath = path
	}
	return m
}

func (m *Model) selectedRule() (ufw.Rule, bool) {
	if len(m.rules) == 0 || m.selected < 0 || m.selected >= len(m.rules) {
		return ufw.Rule{}, false
	}
	return m.rules[m.selected], true
}

func (m *Model) moveSelection(delta int) {
	if len(m.rules) == 0 {
		return
	}
	next := m.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(m.rules) {
		next = len(m.rules) - 1
	}
	m.selected = next
	m.adjustScroll()
}

func (m *Model) clampSelection() {
	if len(m.rules) == 0 {
		m.selected = 0
		m.scroll = 0
		return
	}
	if m.selected >= len(m.rules) {
		m.selected = len(m.rules) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.adjustScroll()
}

// visibleRows is how many rule rows fit between the header block and the
// status bar at the current terminal height.
func (m *Model) visibleRows() int {
	rows := m.height - 7
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *Model) adjustScroll() {
	rows := m.visibleRows()
	if m.selected < m.scroll {
		m.scroll = m.selected
	}
	if m.selected >= m.scroll+rows {
		m.scroll = m.selected - rows + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
