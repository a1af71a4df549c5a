package checker

import (
	"errors"
	"net/http"
	"net/netip"
	"testing"

	"github.com/qdm12/debug-cron/internal/ipcheck"
	"github.com/qdm12/debug-cron/internal/notice"
	"github.com/qdm12/debug-cron/internal/probe"
	"github.com/qdm12/debug-cron/internal/wperror"
	"github.com/stretchr/testify/assert"
)

func Test_Checker_checkDNS(t *testing.T) {
	t.Parallel()

	const host = "example.com"

	testCases := map[string]struct {
		dnsIP    netip.Addr
		observed string
		messages []notice.Message
	}{
		"same public IP": {
			dnsIP:    netip.MustParseAddr("203.0.113.5"),
			observed: "203.0.113.5",
			messages: []notice.Message{
				{Severity: notice.Info, Text: noDNSIssueMessage(host)},
			},
		},
		"private observed IP": {
			dnsIP:    netip.MustParseAddr("203.0.113.5"),
			observed: "10.0.0.5",
			messages: []notice.Message{
				{Severity: notice.Error, Text: privateIPMessage(host, "10.0.0.5")},
			},
		},
		"private observed IP without DNS record": {
			observed: "10.0.0.5",
			messages: []notice.Message{
				{Severity: notice.Error, Text: privateIPMessage(host, "10.0.0.5")},
			},
		},
		"unresolved host": {
			dnsIP:    netip.MustParseAddr("203.0.113.5"),
			observed: host,
			messages: []notice.Message{
				{Severity: notice.Error, Text: privateIPMessage(host, host)},
			},
		},
		"mismatch": {
			dnsIP:    netip.MustParseAddr("203.0.113.5"),
			observed: "198.51.100.9",
			messages: []notice.Message{
				{Severity: notice.Error, Text: mismatchMessage(host,
					netip.MustParseAddr("198.51.100.9"), netip.MustParseAddr("203.0.113.5"))},
			},
		},
		"DNS lookup failed": {
			observed: "198.51.100.9",
			messages: []notice.Message{
				{Severity: notice.Info, Text: noDNSIssueMessage(host)},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			board := notice.NewBoard()
			checker := New(board, Settings{})
			observedIP, observedValid := ipcheck.ParsePublic(testCase.observed)

			checker.checkDNS(host, testCase.dnsIP, testCase.observed,
				observedIP, observedValid)

			assert.Equal(t, testCase.messages, board.Messages())
		})
	}
}

func Test_Checker_checkReachability(t *testing.T) {
	t.Parallel()

	const cronURL = "http://example.com/wp-cron.php?doing_wp_cron=1"

	twoCodesErr := wperror.New(probe.CodeRequestFailed, "dial tcp: connection refused")
	twoCodesErr.Add(probe.CodeConnectionRefused, "connection refused by the server")

	testCases := map[string]struct {
		response probe.Response
		err      error
		messages []notice.Message
	}{
		"coded error with two codes": {
			err: twoCodesErr,
			messages: []notice.Message{
				{Severity: notice.Error, Text: unreachableMessage(cronURL)},
				{Severity: notice.Error, Text: "http_request_failed: dial tcp: connection refused"},
				{Severity: notice.Error, Text: "connection_refused: connection refused by the server"},
			},
		},
		"plain error": {
			err: errors.New("test <error>"),
			messages: []notice.Message{
				{Severity: notice.Error, Text: unreachableMessage(cronURL)},
				{Severity: notice.Error, Text: "test &lt;error&gt;"},
			},
		},
		"status OK": {
			response: probe.Response{Sent: true, StatusCode: http.StatusOK, Status: "200 OK"},
			messages: []notice.Message{
				{Severity: notice.Info, Text: reachableMessage(cronURL)},
			},
		},
		"status not found": {
			response: probe.Response{Sent: true, StatusCode: http.StatusNotFound, Status: "404 Not Found"},
			messages: []notice.Message{
				{Severity: notice.Error, Text: badStatusMessage(cronURL, http.StatusNotFound)},
			},
		},
		"no status code": {
			response: probe.Response{Sent: true},
			messages: []notice.Message{
				{Severity: notice.Info, Text: noStatusMessage(cronURL, probe.Response{Sent: true}.String())},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			board := notice.NewBoard()
			checker := New(board, Settings{})

			checker.checkReachability(cronURL, testCase.response, testCase.err)

			assert.Equal(t, testCase.messages, board.Messages())
		})
	}
}

func Test_messages_escaping(t *testing.T) {
	t.Parallel()

	text := badStatusMessage(`http://example.com/?a=1&b="2"`, http.StatusForbidden)

	assert.Equal(t, "Your server cannot reach <strong>http://example.com/?a=1&amp;b=&#34;2&#34;</strong> "+
		"correctly, it responded with status code <strong>403</strong>.", string(text))
}
