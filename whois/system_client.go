package whois

import (
	"regexp"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/jpillora/backoff"

	gmerr "github.com/masktools/getmask/errors"
	gmlog "github.com/masktools/getmask/logger"
	"github.com/masktools/getmask/mask"
	gmsys "github.com/masktools/getmask/system"
)

const (
	systemClientLogTag = "SystemWhoisClient"

	whoisCmd = "whois"

	defaultTimeout  = 10 * time.Second
	defaultAttempts = 3

	killGracePeriod = 1 * time.Second
)

// Registries disagree on field names; first match wins.
var orgPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)OrgName:\s*(.*)`),
	regexp.MustCompile(`(?i)organisation:\s*(.*)`),
	regexp.MustCompile(`(?i)Org-name:\s*(.*)`),
	regexp.MustCompile(`(?i)descr:\s*(.*)`),
	regexp.MustCompile(`(?i)netname:\s*(.*)`),
}

var countryPattern = regexp.MustCompile(`(?i)Country:\s*(.*)`)

type systemClient struct {
	runner   gmsys.CmdRunner
	clk      clock.Clock
	timeout  time.Duration
	attempts int
	logger   gmlog.Logger
}

// NewSystemClient returns a Client backed by the system whois binary.
// Queries are bounded by a timeout and retried on transient failure.
func NewSystemClient(runner gmsys.CmdRunner, clk clock.Clock, logger gmlog.Logger) Client {
	return systemClient{
		runner:   runner,
		clk:      clk,
		timeout:  defaultTimeout,
		attempts: defaultAttempts,
		logger:   logger,
	}
}

func NewSystemClientWithTimeout(runner gmsys.CmdRunner, clk clock.Clock, timeout time.Duration, logger gmlog.Logger) Client {
	return systemClient{
		runner:   runner,
		clk:      clk,
		timeout:  timeout,
		attempts: defaultAttempts,
		logger:   logger,
	}
}

func (c systemClient) Lookup(ip mask.Addr) (Ownership, error) {
	if !c.runner.CommandExists(whoisCmd) {
		c.logger.Warn(systemClientLogTag, "System 'whois' command not found. Install with 'apt install whois' or 'brew install whois'.")
		return Ownership{}, ErrUnavailable
	}

	b := &backoff.Backoff{
		Min:    500 * time.Millisecond,
		Max:    5 * time.Second,
		Factor: 2,
	}

	var lastErr error
	for attempt := 0; attempt < c.attempts; attempt++ {
		if attempt > 0 {
			c.clk.Sleep(b.Duration())
		}

		output, err := c.query(ip)
		if err != nil {
			c.logger.Debug(systemClientLogTag, "WHOIS attempt %d for %s failed: %s", attempt+1, ip, err.Error())
			lastErr = err
			continue
		}

		ownership := extractOwnership(output)
		if ownership.Empty() {
			// a complete response without known fields will not improve on retry
			c.logger.Debug(systemClientLogTag, "No ownership fields in WHOIS output for %s", ip)
			return Ownership{}, ErrUnavailable
		}

		return ownership, nil
	}

	c.logger.Warn(systemClientLogTag, "WHOIS lookup for %s failed: %s", ip, lastErr.Error())
	return Ownership{}, ErrUnavailable
}

func (c systemClient) query(ip mask.Addr) (string, error) {
	process, err := c.runner.RunComplexCommandAsync(gmsys.Command{
		Name:  whoisCmd,
		Args:  []string{ip.String()},
		Quiet: true,
	})
	if err != nil {
		return "", gmerr.WrapError(err, "Starting whois")
	}

	timer := c.clk.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case result := <-process.Wait():
		if result.Error != nil {
			return "", result.Error
		}
		return result.Stdout, nil
	case <-timer.C():
		if err := process.TerminateNicely(killGracePeriod); err != nil {
			c.logger.Debug(systemClientLogTag, "Terminating whois: %s", err.Error())
		}
		return "", gmerr.Errorf("WHOIS query for %s timed out after %s", ip, c.timeout)
	}
}

func extractOwnership(output string) Ownership {
	var ownership Ownership

	for _, pattern := range orgPatterns {
		if m := pattern.FindStringSubmatch(output); m != nil {
			ownership.Organization = strings.TrimSpace(m[1])
			break
		}
	}

	if m := countryPattern.FindStringSubmatch(output); m != nil {
		ownership.Country = strings.TrimSpace(m[1])
	}

	return ownership
}
