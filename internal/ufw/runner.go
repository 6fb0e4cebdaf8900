//go:build linux
// +build linux

package ufw

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"
)

// Runner executes one external command and returns its output. Commands are
// argv vectors, never shell strings, so no value interpolated into a rule can
// be interpreted by a shell.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs commands through os/exec with a per-call deadline.
// A hung ufw invocation must not wedge the whole session.
type ExecRunner struct {
	Timeout time.Duration
}

const defaultTimeout = 15 * time.Second

func NewExecRunner() ExecRunner {
	return ExecRunner{Timeout: defaultTimeout}
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slog.Debug("exec", "name", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		slog.Error("exec timed out", "name", name, "args", args)
		return outBuf.String(), errBuf.String(), ErrTimeout
	}
	if err != nil {
		slog.Error("exec failed", "name", name, "args", args, "stderr", errBuf.String(), "error", err)
		return outBuf.String(), errBuf.String(), err
	}
	return outBuf.String(), errBuf.String(), nil
}
