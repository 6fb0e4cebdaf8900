package rules

// Enumerated vocabularies for rule composition, in the order the form
// cycles through them.
var (
	Actions    = []string{"allow", "deny", "reject", "limit"}
	Directions = []string{"in", "out"}
	Protocols  = []string{"tcp", "udp", "any"}
)

// AnyAddress is the neutral remote-address value. ufw prints "Anywhere" for
// unrestricted rules; this system normalizes that to "any".
const AnyAddress = "any"

// Per-field input length limits.
const (
	MaxPortLen    = 5
	MaxAddressLen = 15
	MaxServiceLen = 18
	MaxNoteLen    = 43
)

// Fields holds one form's worth of structured rule input. Service and Note
// never become part of the command line; they are persisted separately.
type Fields struct {
	Action    string
	Direction string
	Protocol  string
	Port      string
	Address   string
	Service   string
	Note      string
}

// DefaultFields returns the values a fresh add form starts from.
func DefaultFields() Fields {
	return Fields{
		Action:    Actions[0],
		Direction: Directions[0],
		Protocol:  "any",
		Address:   AnyAddress,
	}
}
