package format

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/masktools/getmask/mask"
	"github.com/masktools/getmask/subnet"
	"github.com/masktools/getmask/whois"
)

const (
	separator  = "------------------------------------------------"
	warnSymbol = "⚠️"
	fieldWidth = 25
)

var (
	headerStyle = pterm.NewStyle(pterm.FgLightBlue)
	titleStyle  = pterm.NewStyle(pterm.Bold)
	warnStyle   = pterm.NewStyle(pterm.FgLightYellow)
)

// Printer renders subnet results. It never computes anything; every
// value comes off the subnet.Info it is handed.
type Printer struct {
	out io.Writer
	num *message.Printer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out: out,
		num: message.NewPrinter(language.English),
	}
}

// MaskEquivalents renders the mask-only table of equivalent forms.
func (p *Printer) MaskEquivalents(info subnet.Info) {
	p.title("TCP/IP SUBNET MASK EQUIVALENTS")
	p.maskFields(info)
	p.field("Usable IP Addresses", p.commas(info.UsableHosts))
	p.subnetWarning(info)
}

// NetworkInfo renders the full network breakdown for an IP/mask input.
func (p *Printer) NetworkInfo(info subnet.Info) {
	p.title("TCP/IP NETWORK INFORMATION")
	p.field("IP Entered", info.Base.String())
	p.maskFields(info)
	p.line(headerStyle.Sprint(separator))
	p.field("Network Address", info.Network.String())
	p.field("Broadcast Address", info.Broadcast.String())
	p.field("Usable IP Addresses", p.commas(info.UsableHosts))
	if info.UsableHosts >= 2 {
		p.field("First Usable IP", info.FirstUsable.String())
		p.field("Last Usable IP", info.LastUsable.String())
	}
	p.subnetWarning(info)
}

// Brief renders the single-line form. The range endpoints come off the
// usable host range rather than the raw first/last fields.
func (p *Printer) Brief(info subnet.Info) {
	r := info.HostRange()
	fmt.Fprintf(p.out, "CIDR: %s | Network: %s | Broadcast: %s | Range: %s-%s\n",
		info.Prefix, info.Network, info.Broadcast, r.From(), r.To())
}

// Ownership renders the WHOIS section; empty fields show as N/A.
func (p *Printer) Ownership(ownership whois.Ownership) {
	p.title("WHOIS INFORMATION")
	p.field("Organization", orNA(ownership.Organization))
	p.field("Country", orNA(ownership.Country))
}

// BareIPGuidance renders the corrective hint for an IP supplied where
// a mask was expected.
func (p *Printer) BareIPGuidance(err mask.BareIPError) {
	p.Warning(fmt.Sprintf("Input %s looks like an IP address, not a netmask.", err.IP))
	p.Warning(fmt.Sprintf("Hint: Use IP/mask format like %s", err.Hint()))
}

func (p *Printer) Warning(msg string) {
	p.line(warnStyle.Sprint(msg))
}

func (p *Printer) maskFields(info subnet.Info) {
	p.field("CIDR", info.Prefix.String())
	p.field("Netmask", info.Netmask.String())
	p.field("Netmask (hex)", info.Prefix.HexString())
	p.field("Wildcard Bits", info.Wildcard.String())
}

func (p *Printer) subnetWarning(info subnet.Info) {
	if w := info.Class.Warning(); w != "" {
		p.Warning(fmt.Sprintf("%s Warning: %s", warnSymbol, w))
	}
}

func (p *Printer) title(text string) {
	p.line(headerStyle.Sprint(separator))
	p.line(titleStyle.Sprintf("%*s", (len(separator)+len(text))/2, text))
	p.line(headerStyle.Sprint(separator))
}

func (p *Printer) field(name, value string) {
	fmt.Fprintf(p.out, "%-*s: %s\n", fieldWidth, name, value)
}

func (p *Printer) line(s string) {
	fmt.Fprintln(p.out, s)
}

func (p *Printer) commas(n uint64) string {
	return p.num.Sprintf("%d", n)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
