package mask

import "fmt"

// PrefixLength is the canonical mask representation: the count of
// leading network bits, always in [0, 32]. Every other mask form is
// derived from it on demand.
type PrefixLength int

func (p PrefixLength) Netmask() Addr {
	if p <= 0 {
		return 0
	}
	return Addr(0xFFFFFFFF << (32 - uint(p)))
}

func (p PrefixLength) Wildcard() Addr {
	return ^p.Netmask()
}

// HexString renders the netmask as 0x-prefixed 8-digit lowercase hex.
func (p PrefixLength) HexString() string {
	return fmt.Sprintf("0x%08x", uint32(p.Netmask()))
}

func (p PrefixLength) String() string {
	return fmt.Sprintf("/%d", int(p))
}

// isNetmask reports whether v is a contiguous run of 1-bits followed
// only by 0-bits. The complement of such a value is all 1-bits in the
// low positions, so adding one clears it entirely.
func isNetmask(v uint32) bool {
	return ^v&(^v+1) == 0
}

// isWildcard reports the inverse shape: 0-bits followed only by 1-bits.
func isWildcard(v uint32) bool {
	return v&(v+1) == 0
}
