package checker

import (
	"errors"
	"net/http"
	"net/netip"

	"github.com/qdm12/debug-cron/internal/probe"
	"github.com/qdm12/debug-cron/internal/wperror"
)

func (c *Checker) checkReachability(cronURL string,
	response probe.Response, err error) {
	switch {
	case err != nil:
		c.board.AddErrorText(unreachableMessage(cronURL))
		var codedErr *wperror.Error
		if !errors.As(err, &codedErr) {
			c.board.AddError(err)
			return
		}
		messages := codedErr.Messages()
		for i, code := range codedErr.Codes() {
			c.board.AddError(wperror.New(code, messages[i]))
		}
	case response.StatusCode == http.StatusOK:
		c.board.AddInfo(reachableMessage(cronURL))
	case response.StatusCode != 0:
		c.board.AddErrorText(badStatusMessage(cronURL, response.StatusCode))
	default:
		c.board.AddInfo(noStatusMessage(cronURL, response.String()))
	}
}

// checkDNS compares the IP address found in DNS with the one the
// host resolves to on this machine. The first matching case wins
// and, without conflicting evidence, no issue is reported.
func (c *Checker) checkDNS(host string, dnsIP netip.Addr,
	observed string, observedIP netip.Addr, observedValid bool) {
	switch {
	case !observedValid:
		c.board.AddErrorText(privateIPMessage(host, observed))
	case dnsIP.IsValid() && observedIP.IsValid() && dnsIP != observedIP:
		c.board.AddErrorText(mismatchMessage(host, observedIP, dnsIP))
	default:
		c.board.AddInfo(noDNSIssueMessage(host))
	}
}
