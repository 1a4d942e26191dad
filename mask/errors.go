package mask

import (
	"fmt"

	gmerr "github.com/masktools/getmask/errors"
)

var (
	ErrUnrecognizedFormat = gmerr.Error("unrecognized mask format")
	ErrOutOfRangePrefix   = gmerr.Error("prefix length must be between 0 and 32")
	ErrNonContiguousMask  = gmerr.Error("mask bits are not contiguous")
	ErrInvalidOctet       = gmerr.Error("octet must be a decimal integer between 0 and 255")
)

// AddrError reports that the address side of an IP/mask token failed
// to parse, so callers can word the message for the address rather
// than the mask.
type AddrError struct {
	Text string
	Err  error
}

func (e AddrError) Error() string {
	return fmt.Sprintf("Parsing address '%s': %s", e.Text, e.Err.Error())
}

func (e AddrError) Unwrap() error { return e.Err }

// SuggestedPrefix is the fixed prefix used in the corrective hint when
// a bare IP address is supplied where a mask was expected.
const SuggestedPrefix = PrefixLength(24)

// BareIPError reports that the input was a structurally valid IPv4
// address rather than a mask. It carries the offending address so the
// caller can suggest the corrected IP/mask form.
type BareIPError struct {
	IP Addr
}

func (e BareIPError) Error() string {
	return fmt.Sprintf("input %s looks like an IP address, not a netmask", e.IP)
}

// Hint returns the corrected example form, e.g. "239.0.0.1/24".
func (e BareIPError) Hint() string {
	return fmt.Sprintf("%s%s", e.IP, SuggestedPrefix)
}
