package subnet

import (
	"go4.org/netipx"

	"github.com/masktools/getmask/mask"
)

// Class distinguishes ordinary subnets from the two degenerate
// prefixes that change the usable-host policy.
type Class int

const (
	ClassNormal Class = iota
	ClassPointToPoint
	ClassHostRoute
)

func (c Class) String() string {
	switch c {
	case ClassPointToPoint:
		return "point-to-point"
	case ClassHostRoute:
		return "host route"
	}
	return "normal"
}

// Warning returns the human-readable rationale for degenerate
// prefixes, empty for normal subnets.
func (c Class) Warning() string {
	switch c {
	case ClassPointToPoint:
		return "/31 subnet — only 2 IPs (point-to-point link)"
	case ClassHostRoute:
		return "/32 subnet — single host address"
	}
	return ""
}

// Info holds every quantity derived from a prefix length and an
// optional base address. Immutable once built.
type Info struct {
	Prefix  mask.PrefixLength
	Base    mask.Addr
	HasBase bool

	Netmask  mask.Addr
	Wildcard mask.Addr

	Network   mask.Addr
	Broadcast mask.Addr

	FirstUsable mask.Addr
	LastUsable  mask.Addr
	UsableHosts uint64

	Class Class
}

// Calculate derives subnet quantities in mask-only mode; the network
// defaults to 0.0.0.0 for display purposes.
func Calculate(prefix mask.PrefixLength) Info {
	return derive(prefix, 0, false)
}

// CalculateForAddr derives subnet quantities for a base address:
// network = base AND netmask, broadcast = network OR wildcard.
func CalculateForAddr(prefix mask.PrefixLength, base mask.Addr) Info {
	return derive(prefix, base, true)
}

func derive(prefix mask.PrefixLength, base mask.Addr, hasBase bool) Info {
	netmask := prefix.Netmask()
	wildcard := prefix.Wildcard()

	network := base & netmask
	broadcast := network | wildcard

	info := Info{
		Prefix:    prefix,
		Base:      base,
		HasBase:   hasBase,
		Netmask:   netmask,
		Wildcard:  wildcard,
		Network:   network,
		Broadcast: broadcast,
	}

	// Each degenerate prefix gets its policy spelled out; no generic
	// formula silently applied across the boundary.
	switch {
	case prefix <= 30:
		info.UsableHosts = (uint64(1) << (32 - uint(prefix))) - 2
		info.FirstUsable = network + 1
		info.LastUsable = broadcast - 1
		info.Class = ClassNormal
	case prefix == 31:
		// RFC 3021: both addresses usable, no broadcast carved out
		info.UsableHosts = 2
		info.FirstUsable = network
		info.LastUsable = broadcast
		info.Class = ClassPointToPoint
	default:
		info.UsableHosts = 1
		info.FirstUsable = network
		info.LastUsable = network
		info.Class = ClassHostRoute
	}

	return info
}

// HostRange returns the usable host addresses as an IP range.
func (i Info) HostRange() netipx.IPRange {
	return netipx.IPRangeFrom(i.FirstUsable.Netip(), i.LastUsable.Netip())
}
