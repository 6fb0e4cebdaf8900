//go:build linux
// +build linux

package ufw

import "errors"

// Rule is one numbered entry from the firewall's status listing. Index is
// assigned by ufw itself and is renumbered on every insert or delete.
type Rule struct {
	Index       int
	Description string
}

// Snapshot is one fetched copy of the rule list at a point in time,
// in ufw's own ordering.
type Snapshot struct {
	State string
	Rules []Rule
}

const (
	// StateError is the sentinel state reported when the status query fails.
	StateError = "error"

	stateInactive = "inactive"
)

var (
	ErrNotInstalled = errors.New("ufw binary not found in PATH")
	ErrTimeout      = errors.New("ufw command timed out")
)
