//go:build linux
// +build linux

package ufw

import (
	"regexp"
	"strconv"
	"strings"
)

// ufw prints numbered rules as "[ 1] 22/tcp  ALLOW IN  Anywhere".
var ruleLineRe = regexp.MustCompile(`^\[\s*(\d+)\]\s+(.*)$`)

// parseStatus decodes the output of "ufw status numbered". The overall state
// comes from the "Status:" line and falls back to inactive when the line is
// missing. Rule order is ufw's own and is preserved.
func parseStatus(out string) Snapshot {
	snap := Snapshot{State: stateInactive}

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "Status:") {
			if _, after, ok := strings.Cut(line, ":"); ok {
				snap.State = strings.TrimSpace(after)
			}
			continue
		}
		m := ruleLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		index, err := strconv.Atoi(m[1])
		if err != nil || index < 1 {
			continue
		}
		snap.Rules = append(snap.Rules, Rule{
			Index:       index,
			Description: strings.TrimSpace(m[2]),
		})
	}

	return snap
}
