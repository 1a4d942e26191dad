package mask

import (
	"math/bits"
	"strconv"
	"strings"

	gmerr "github.com/masktools/getmask/errors"
)

// Kind tags which textual shape an input token was classified as.
type Kind int

const (
	KindCIDR Kind = iota
	KindNetmask
	KindWildcard
	KindHex
)

func (k Kind) String() string {
	switch k {
	case KindCIDR:
		return "cidr"
	case KindNetmask:
		return "netmask"
	case KindWildcard:
		return "wildcard"
	case KindHex:
		return "hex"
	}
	return "unknown"
}

// Input is the canonical result of classifying one token of text:
// a prefix length plus, for IP/mask tokens, the base address.
type Input struct {
	Prefix  PrefixLength
	Kind    Kind
	Base    Addr
	HasBase bool
}

// Parse classifies a token into one of the accepted shapes and reduces
// it to a canonical prefix length.
//
// Accepted shapes, in precedence order: "/N" CIDR, "A.B.C.D" dotted
// netmask or wildcard, "0x"-prefixed hex netmask, bare decimal prefix,
// and any of those preceded by "IP/". A bare IP address is rejected
// with a BareIPError carrying the corrective IP/mask hint.
func Parse(text string) (Input, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Input{}, ErrUnrecognizedFormat
	}

	if strings.HasPrefix(text, "/") {
		return parseCIDR(text[1:])
	}

	if idx := strings.Index(text, "/"); idx >= 0 {
		base, err := ParseAddr(text[:idx])
		if err != nil {
			return Input{}, AddrError{Text: text[:idx], Err: err}
		}

		input, err := parseMaskSpec(text[idx+1:])
		if err != nil {
			return Input{}, err
		}

		input.Base = base
		input.HasBase = true
		return input, nil
	}

	if strings.Contains(text, ".") {
		return parseDotted(text, true)
	}

	return parseMaskSpec(text)
}

// parseMaskSpec handles the mask position of an IP/mask token, where a
// stray IP address no longer deserves the bare-IP hint.
func parseMaskSpec(s string) (Input, error) {
	switch {
	case s == "":
		return Input{}, ErrUnrecognizedFormat
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		return parseHex(s)
	case strings.Contains(s, "."):
		return parseDotted(s, false)
	default:
		return parseCIDR(s)
	}
}

func parseCIDR(digits string) (Input, error) {
	if len(digits) < 1 || len(digits) > 2 {
		return Input{}, gmerr.WrapErrorf(ErrUnrecognizedFormat, "Parsing prefix '/%s'", digits)
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return Input{}, gmerr.WrapErrorf(ErrUnrecognizedFormat, "Parsing prefix '/%s'", digits)
	}

	if n < 0 || n > 32 {
		return Input{}, gmerr.WrapErrorf(ErrOutOfRangePrefix, "Parsing prefix '/%d'", n)
	}

	return Input{Prefix: PrefixLength(n), Kind: KindCIDR}, nil
}

func parseDotted(s string, allowBareIPHint bool) (Input, error) {
	addr, err := ParseAddr(s)
	if err != nil {
		return Input{}, gmerr.WrapErrorf(err, "Parsing dotted mask '%s'", s)
	}

	v := uint32(addr)

	switch {
	case isNetmask(v):
		return Input{Prefix: PrefixLength(bits.OnesCount32(v)), Kind: KindNetmask}, nil
	case isWildcard(v):
		return Input{Prefix: PrefixLength(32 - bits.OnesCount32(v)), Kind: KindWildcard}, nil
	case allowBareIPHint && !maskShaped(v):
		return Input{}, BareIPError{IP: addr}
	default:
		return Input{}, gmerr.WrapErrorf(ErrNonContiguousMask, "Parsing dotted mask '%s'", s)
	}
}

func parseHex(s string) (Input, error) {
	digits := s[2:]
	if len(digits) < 1 || len(digits) > 8 {
		return Input{}, gmerr.WrapErrorf(ErrUnrecognizedFormat, "Parsing hex mask '%s'", s)
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Input{}, gmerr.WrapErrorf(ErrUnrecognizedFormat, "Parsing hex mask '%s'", s)
	}

	if !isNetmask(uint32(n)) {
		return Input{}, gmerr.WrapErrorf(ErrNonContiguousMask, "Parsing hex mask '%s'", s)
	}

	return Input{Prefix: PrefixLength(bits.OnesCount32(uint32(n))), Kind: KindHex}, nil
}

// maskShaped reports whether every octet of v is a value that can occur
// in a contiguous netmask or wildcard. Values like 255.0.255.0 are
// mask-shaped but non-contiguous; values like 239.0.0.1 are ordinary
// addresses and get the bare-IP treatment instead.
func maskShaped(v uint32) bool {
	for shift := 24; shift >= 0; shift -= 8 {
		octet := byte(v >> uint(shift))
		if !isNetmask(uint32(octet)<<24) && !isWildcard(uint32(octet)) {
			return false
		}
	}
	return true
}
