package whois

import (
	gmerr "github.com/masktools/getmask/errors"
	"github.com/masktools/getmask/mask"
)

// ErrUnavailable is the single failure mode exposed by a Client:
// lookup errors, timeouts and empty responses all collapse into it so
// enrichment can never abort a subnet computation.
var ErrUnavailable = gmerr.Error("ownership data unavailable")

// Ownership holds the organizational fields extracted from a WHOIS
// response. The zero value means no usable data.
type Ownership struct {
	Organization string
	Country      string
}

func (o Ownership) Empty() bool {
	return o.Organization == "" && o.Country == ""
}

type Client interface {
	Lookup(ip mask.Addr) (Ownership, error)
}
