//go:build linux
// +build linux

package ui

import (
	"context"

	"lazyufw/internal/ufw"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Options struct {
	DryRun          bool
	NoColor         bool
	ConfirmDelete   bool
	AutoRefreshSecs int
}

func RunWithContext(ctx context.Context, client *ufw.Client, opts Options) error {
	if opts.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	model := NewModel(client, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func Run(client *ufw.Client, opts Options) error {
	return RunWithContext(context.Background(), client, opts)
}
