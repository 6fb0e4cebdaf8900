//go:build linux
// +build linux

package ui

import (
	"context"
	"time"

	"lazyufw/internal/notes"
	"lazyufw/internal/ufw"

	tea "github.com/charmbracelet/bubbletea"
)

type snapshotMsg struct {
	snap ufw.Snapshot
	err  error
}

type storesMsg struct {
	services notes.Store
	notes    notes.Store
	err      error
}

type addDoneMsg struct {
	snap    ufw.Snapshot
	added   []ufw.Rule
	service string
	note    string
	err     error
}

type editDoneMsg struct {
	snap    ufw.Snapshot
	index   int
	service string
	note    string
	err     error
}

type deleteDoneMsg struct {
	snap  ufw.Snapshot
	index int
	err   error
}

type actionDoneMsg struct {
	snap   ufw.Snapshot
	notice string
	err    error
}

type refreshTickMsg time.Time

func fetchSnapshotCmd(client *ufw.Client) tea.Cmd {
	return func() tea.Msg {
		snap, err := client.Status(context.Background())
		return snapshotMsg{snap: snap, err: err}
	}
}

func loadStoresCmd(servicePath, notePath string) tea.Cmd {
	return func() tea.Msg {
		services, err := notes.Load(servicePath)
		if err != nil {
			return storesMsg{err: err}
		}
		noteStore, err := notes.Load(notePath)
		if err != nil {
			return storesMsg{err: err}
		}
		return storesMsg{services: services, notes: noteStore}
	}
}

// addRuleCmd issues an append-style add. The new rule's number is unknown
// until after the re-fetch, so the command carries the before-snapshot and
// returns the set difference for annotation.
func addRuleCmd(client *ufw.Client, spec string, before []ufw.Rule, service, note string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := client.AddRule(ctx, spec); err != nil {
			return addDoneMsg{err: err}
		}
		snap, err := client.Status(ctx)
		if err != nil {
			return addDoneMsg{err: err}
		}
		return addDoneMsg{
			snap:    snap,
			added:   ufw.Added(before, snap.Rules),
			service: service,
			note:    note,
		}
	}
}

// editRuleCmd replaces the rule at index in place: delete, then insert at
// the same position. No other rule's number moves, so annotations elsewhere
// stay valid by construction.
func editRuleCmd(client *ufw.Client, index int, spec, service, note string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := client.DeleteRule(ctx, index); err != nil {
			return editDoneMsg{err: err}
		}
		if err := client.InsertRule(ctx, index, spec); err != nil {
			return editDoneMsg{err: err}
		}
		snap, err := client.Status(ctx)
		if err != nil {
			return editDoneMsg{err: err}
		}
		return editDoneMsg{snap: snap, index: index, service: service, note: note}
	}
}

func deleteRuleCmd(client *ufw.Client, index int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := client.DeleteRule(ctx, index); err != nil {
			return deleteDoneMsg{err: err}
		}
		snap, err := client.Status(ctx)
		if err != nil {
			return deleteDoneMsg{err: err}
		}
		return deleteDoneMsg{snap: snap, index: index}
	}
}

func reloadCmd(client *ufw.Client) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := client.Reload(ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		snap, err := client.Status(ctx)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{snap: snap, notice: "Firewall reloaded successfully."}
	}
}

func resetCmd(client *ufw.Client) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := client.Reset(ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		snap, err := client.Status(ctx)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{snap: snap, notice: "Firewall has been reset to defaults."}
	}
}

func refreshTickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}
