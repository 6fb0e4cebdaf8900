//go:build linux
// +build linux

package ufw

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// Client drives the ufw binary. ufw owns rule identity: it numbers rules
// itself and renumbers them on every insert or delete, so every mutation here
// must be followed by a fresh Status fetch before rule indices are trusted
// again.
type Client struct {
	runner Runner
	path   string
	sudo   bool
}

type ClientOptions struct {
	// Path is the ufw binary name or absolute path. Defaults to "ufw".
	Path string
	// Sudo prefixes every invocation with sudo.
	Sudo bool
	// Runner overrides the command executor. Defaults to ExecRunner.
	Runner Runner
}

func NewClient(opts ClientOptions) (*Client, error) {
	path := opts.Path
	if path == "" {
		path = "ufw"
	}
	runner := opts.Runner
	if runner == nil {
		runner = NewExecRunner()
		if _, err := exec.LookPath(path); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotInstalled, path)
		}
		if opts.Sudo {
			if _, err := exec.LookPath("sudo"); err != nil {
				return nil, fmt.Errorf("sudo requested but not found: %w", err)
			}
		}
	}

	return &Client{runner: runner, path: path, sudo: opts.Sudo}, nil
}

// Status fetches the current rule snapshot. On invocation failure the
// returned snapshot carries the error sentinel state and no rules; the
// session treats that as recoverable.
func (c *Client) Status(ctx context.Context) (Snapshot, error) {
	out, _, err := c.run(ctx, "status", "numbered")
	if err != nil {
		return Snapshot{State: StateError}, err
	}
	snap := parseStatus(out)
	slog.Debug("status fetched", "state", snap.State, "rules", len(snap.Rules))
	return snap, nil
}

// AddRule appends a rule. spec is a builder-produced token string such as
// "allow in to any port 22 proto tcp"; it is split on whitespace, never
// passed to a shell.
func (c *Client) AddRule(ctx context.Context, spec string) error {
	_, _, err := c.run(ctx, strings.Fields(spec)...)
	return err
}

// DeleteRule removes the rule at index. ufw prompts for confirmation on
// delete; --force answers it non-interactively instead of piping "y".
func (c *Client) DeleteRule(ctx context.Context, index int) error {
	_, _, err := c.run(ctx, "--force", "delete", strconv.Itoa(index))
	return err
}

// InsertRule places a rule at index, shifting the rules at and above it up
// by one. Inserting back at a just-deleted index leaves every other rule's
// number unchanged, which is what edit-in-place relies on.
func (c *Client) InsertRule(ctx context.Context, index int, spec string) error {
	args := append([]string{"insert", strconv.Itoa(index)}, strings.Fields(spec)...)
	_, _, err := c.run(ctx, args...)
	return err
}

func (c *Client) Reload(ctx context.Context) error {
	_, _, err := c.run(ctx, "reload")
	return err
}

// Reset restores ufw to factory defaults, dropping every rule.
func (c *Client) Reset(ctx context.Context) error {
	_, _, err := c.run(ctx, "--force", "reset")
	return err
}

func (c *Client) run(ctx context.Context, args ...string) (string, string, error) {
	name := c.path
	argv := args
	if c.sudo {
		name = "sudo"
		argv = append([]string{"-n", c.path}, args...)
	}

	stdout, stderr, err := c.runner.Run(ctx, name, argv...)
	if err != nil {
		if detail := strings.TrimSpace(stderr); detail != "" {
			return stdout, stderr, fmt.Errorf("ufw %s: %s", firstArg(args), detail)
		}
		return stdout, stderr, fmt.Errorf("ufw %s: %w", firstArg(args), err)
	}
	return stdout, stderr, nil
}

func firstArg(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	if len(args) > 0 {
		return args[0]
	}
	return "?"
}
