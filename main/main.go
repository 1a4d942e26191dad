package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/clock"
	flags "github.com/jessevdk/go-flags"
	"github.com/pterm/pterm"

	"github.com/masktools/getmask/format"
	gmlog "github.com/masktools/getmask/logger"
	"github.com/masktools/getmask/mask"
	"github.com/masktools/getmask/subnet"
	gmsys "github.com/masktools/getmask/system"
	"github.com/masktools/getmask/whois"
)

const mainLogTag = "main"

type options struct {
	Brief   bool `long:"brief" description:"Print the single-line summary (IP/mask inputs only)"`
	Whois   bool `long:"whois" description:"Look up WHOIS ownership data (IP/mask inputs only)"`
	NoColor bool `long:"no-color" description:"Disable terminal colors"`
	Debug   bool `long:"debug" description:"Enable debug logging"`

	Args struct {
		Input   string `positional-arg-name:"mask|ip/mask"`
		Netmask string `positional-arg-name:"netmask"`
	} `positional-args:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out, errOut io.Writer) int {
	var opts options

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[--brief] [--whois] <mask|ip/mask> [netmask]"

	_, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			parser.WriteHelp(out)
			return 0
		}
		fmt.Fprintln(errOut, err.Error())
		return 1
	}

	if opts.NoColor {
		pterm.DisableColor()
	}

	var logger gmlog.Logger
	if opts.Debug {
		logger = gmlog.NewAsyncWriterLogger(gmlog.LevelDebug, errOut)
	} else {
		logger = gmlog.NewLogger(gmlog.LevelError)
	}
	defer logger.Flush() //nolint:errcheck
	defer logger.HandlePanic(mainLogTag)

	input := opts.Args.Input
	if input == "" {
		fmt.Fprintln(errOut, "Usage: getmask [--brief] [--whois] <mask|ip/mask> [netmask]")
		return 1
	}

	// two positionals are the classic "IP NETMASK" form
	if opts.Args.Netmask != "" {
		input = input + "/" + opts.Args.Netmask
	}

	printer := format.NewPrinter(out)
	warnPrinter := format.NewPrinter(errOut)

	parsed, err := mask.Parse(input)
	if err != nil {
		var bareIP mask.BareIPError
		if errors.As(err, &bareIP) {
			warnPrinter.BareIPGuidance(bareIP)
			return 1
		}

		logger.Debug(mainLogTag, "Parsing input '%s': %s", input, err.Error())
		fmt.Fprintln(errOut, errorMessage(err))
		return 1
	}

	if (opts.Brief || opts.Whois) && !parsed.HasBase {
		fmt.Fprintln(errOut, "Brief and WHOIS modes are only available for IP/mask inputs.")
		return 1
	}

	var info subnet.Info
	if parsed.HasBase {
		info = subnet.CalculateForAddr(parsed.Prefix, parsed.Base)
	} else {
		info = subnet.Calculate(parsed.Prefix)
	}

	if opts.Brief {
		printer.Brief(info)
		return 0
	}

	if parsed.HasBase {
		printer.NetworkInfo(info)
	} else {
		printer.MaskEquivalents(info)
	}

	if opts.Whois {
		runner := gmsys.NewExecCmdRunner(logger)
		client := whois.NewSystemClient(runner, clock.NewClock(), logger)

		ownership, err := client.Lookup(parsed.Base)
		if err != nil {
			logger.Debug(mainLogTag, "WHOIS enrichment for %s: %s", parsed.Base, err.Error())
		}
		printer.Ownership(ownership)
	}

	return 0
}

func errorMessage(err error) string {
	var addrErr mask.AddrError

	switch {
	case errors.As(err, &addrErr):
		if errors.Is(err, mask.ErrInvalidOctet) {
			return "Invalid address: each octet must be a decimal integer between 0 and 255."
		}
		return "Invalid address format."
	case errors.Is(err, mask.ErrOutOfRangePrefix):
		return "Invalid mask: prefix length must be between 0 and 32."
	case errors.Is(err, mask.ErrNonContiguousMask):
		return "Invalid mask: bits are not contiguous."
	case errors.Is(err, mask.ErrInvalidOctet):
		return "Invalid mask: each octet must be a decimal integer between 0 and 255."
	default:
		return "Invalid mask format."
	}
}
