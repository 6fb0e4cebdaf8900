package rules

import (
	"regexp"
	"strings"
)

var (
	actionPhraseRe = regexp.MustCompile(`(?i)\b(allow|deny|reject|limit)\b(?:\s+(in|out))?`)
	digitsRe       = regexp.MustCompile(`\d+`)
)

// ParseDescription decodes ufw's free-text rule description into structured
// fields, best effort. The text is written for humans, not round-tripping:
// anything unrecoverable keeps its default. The protocol qualifier is never
// recovered from free text, so it always comes back "any" and the user
// re-selects it when editing. The port is the first run of digits in the
// description, which is ambiguous when several numeric tokens appear; the
// form shows the guess for correction rather than failing.
func ParseDescription(desc string) Fields {
	f := DefaultFields()
	lower := strings.ToLower(desc)

	loc := actionPhraseRe.FindStringSubmatchIndex(lower)
	if loc != nil {
		f.Action = lower[loc[2]:loc[3]]
		if loc[4] >= 0 {
			f.Direction = lower[loc[4]:loc[5]]
		}
		// The token right after the action phrase is the remote address.
		rest := strings.Fields(lower[loc[1]:])
		if len(rest) > 0 && rest[0] != "anywhere" {
			f.Address = rest[0]
		}
	}

	if port := digitsRe.FindString(lower); port != "" {
		f.Port = port
	}

	return f
}

// DisplayColumns splits a description into the to/action/from columns of the
// rule table. Descriptions without a recognizable action phrase land whole
// in the to column.
func DisplayColumns(desc string) (to, action, from string) {
	loc := actionPhraseRe.FindStringIndex(desc)
	if loc == nil {
		return strings.TrimSpace(desc), "", ""
	}

	to = strings.TrimSpace(desc[:loc[0]])
	action = strings.TrimSpace(desc[loc[0]:loc[1]])
	if rest := strings.Fields(desc[loc[1]:]); len(rest) > 0 {
		from = rest[0]
	}
	return to, action, from
}
