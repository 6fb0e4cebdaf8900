package validation

import (
	"errors"
	"net/netip"
	"strings"
)

var (
	ErrAddressEmpty   = errors.New("address cannot be empty")
	ErrAddressInvalid = errors.New(`address must be "any", an IP, or a CIDR`)
)

// IsValidRemoteAddress validates a remote-address form value before it can
// reach a command line. Only the neutral "any", a bare IP, or a CIDR prefix
// are accepted.
func IsValidRemoteAddress(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ErrAddressEmpty
	}
	if strings.EqualFold(addr, "any") {
		return nil
	}
	if _, err := netip.ParseAddr(addr); err == nil {
		return nil
	}
	if _, err := netip.ParsePrefix(addr); err == nil {
		return nil
	}
	return ErrAddressInvalid
}
