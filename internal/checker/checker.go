// Package checker diagnoses why the site scheduler may not run,
// reporting its findings as notices on a board.
package checker

import (
	"context"
	"net/netip"
	"net/url"
	"time"

	"github.com/qdm12/debug-cron/internal/ipcheck"
	"github.com/qdm12/debug-cron/internal/notice"
	"github.com/qdm12/debug-cron/internal/probe"
)

type Settings struct {
	// SiteURL is the canonical base URL of the site.
	SiteURL string
	// CronDisabled is true if the built-in scheduler is disabled.
	CronDisabled bool
	DNS          ARecordLookuper
	Resolver     HostResolver
	Prober       Prober
	Logger       Logger
	TimeNow      func() time.Time
}

type Checker struct {
	board        *notice.Board
	siteURL      string
	cronDisabled bool
	dns          ARecordLookuper
	resolver     HostResolver
	prober       Prober
	logger       Logger
	timeNow      func() time.Time
}

func New(board *notice.Board, settings Settings) *Checker {
	timeNow := settings.TimeNow
	if timeNow == nil {
		timeNow = time.Now
	}

	return &Checker{
		board:        board,
		siteURL:      settings.SiteURL,
		cronDisabled: settings.CronDisabled,
		dns:          settings.DNS,
		resolver:     settings.Resolver,
		prober:       settings.Prober,
		logger:       settings.Logger,
		timeNow:      timeNow,
	}
}

// Run runs all the checks and adds their results to the board.
// It never fails: every problem found becomes a message.
func (c *Checker) Run(ctx context.Context) {
	host := hostFromURL(c.siteURL)

	var dnsIP netip.Addr
	var observed string
	if host != "" {
		dnsIP = c.lookupDNS(ctx, host)
		observed = c.resolve(ctx, host)
	}
	observedIP, observedValid := ipcheck.ParsePublic(observed)

	cronURL, urlErr := probe.CronURL(c.siteURL, c.timeNow())
	var response probe.Response
	var probeErr error
	if urlErr == nil {
		response, probeErr = c.prober.Post(ctx, cronURL)
	}

	if c.cronDisabled {
		c.board.AddInfo(cronDisabledMessage())
	}

	if urlErr != nil {
		c.board.AddError(urlErr)
	} else {
		c.checkReachability(cronURL, response, probeErr)
	}

	c.checkDNS(host, dnsIP, observed, observedIP, observedValid)
}

func hostFromURL(rawURL string) (host string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// lookupDNS returns the first IP address of the host A records,
// or the zero address if the lookup fails.
func (c *Checker) lookupDNS(ctx context.Context, host string) (ip netip.Addr) {
	ips, err := c.dns.LookupA(ctx, host)
	if err != nil {
		c.logger.Debug("DNS A record lookup for " + host + " failed: " + err.Error())
		return ip
	} else if len(ips) == 0 {
		return ip
	}
	c.logger.Debug("DNS A record for " + host + " is " + ips[0].String())
	return ips[0]
}

// resolve returns the IPv4 address the host resolves to with the
// standard resolution, or the host itself if it cannot be resolved.
func (c *Checker) resolve(ctx context.Context, host string) (observed string) {
	ip, err := c.resolver.LookupIPv4(ctx, host)
	if err != nil {
		c.logger.Debug("resolving " + host + " failed: " + err.Error())
		return host
	}
	c.logger.Debug(host + " resolves to " + ip.String())
	return ip.String()
}
