package mask

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Addr is an IPv4 address held as a big-endian 32-bit integer; the
// most significant byte is the first dotted octet.
type Addr uint32

func ParseAddr(s string) (Addr, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, ErrUnrecognizedFormat
	}

	var addr Addr
	for _, part := range parts {
		octet, err := parseOctet(part)
		if err != nil {
			return 0, err
		}
		addr = addr<<8 | Addr(octet)
	}

	return addr, nil
}

func parseOctet(s string) (uint32, error) {
	if len(s) == 0 || len(s) > 3 {
		return 0, ErrInvalidOctet
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n > 255 {
		return 0, ErrInvalidOctet
	}

	return uint32(n), nil
}

func (a Addr) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

func (a Addr) Netip() netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(a))
	return netip.AddrFrom4(b)
}
