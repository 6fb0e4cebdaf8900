package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidPort    = errors.New("port must be a number")
	ErrInvalidAddress = errors.New("address must be a single token")
)

var allDigitsRe = regexp.MustCompile(`^\d+$`)

// Build assembles the mutation command string for ufw from structured
// fields, always in the same token order:
//
//	<action> <direction> [from <address>] to any port <port> [proto <protocol>]
//
// The from clause is omitted for the neutral address and the proto clause for
// protocol "any". Validation is hard: a bad field rejects the whole form and
// no partial command is ever produced.
func Build(f Fields) (string, error) {
	if !allDigitsRe.MatchString(f.Port) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPort, f.Port)
	}
	if !contains(Actions, f.Action) {
		return "", fmt.Errorf("invalid action %q", f.Action)
	}
	if !contains(Directions, f.Direction) {
		return "", fmt.Errorf("invalid direction %q", f.Direction)
	}
	if !contains(Protocols, f.Protocol) {
		return "", fmt.Errorf("invalid protocol %q", f.Protocol)
	}
	if strings.ContainsAny(f.Address, " \t\n") || f.Address == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, f.Address)
	}

	var b strings.Builder
	b.WriteString(f.Action)
	b.WriteString(" ")
	b.WriteString(f.Direction)
	if !strings.EqualFold(f.Address, AnyAddress) {
		b.WriteString(" from ")
		b.WriteString(f.Address)
	}
	b.WriteString(" to any port ")
	b.WriteString(f.Port)
	if !strings.EqualFold(f.Protocol, "any") {
		b.WriteString(" proto ")
		b.WriteString(f.Protocol)
	}
	return b.String(), nil
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
