package checker

import (
	"fmt"
	"html/template"
	"net/netip"
)

func escape(s string) string {
	return template.HTMLEscapeString(s)
}

func cronDisabledMessage() template.HTML {
	return "The built-in scheduler <code>wp_cron</code> is not used since " +
		"<code>DISABLE_WP_CRON</code> is set to true. " +
		"Make sure cron jobs are configured on your server to trigger it."
}

func unreachableMessage(cronURL string) template.HTML {
	return template.HTML(fmt.Sprintf( //nolint:gosec
		`Your server cannot reach <strong><a href="%[1]s" target="_blank">%[1]s</a></strong>.`,
		escape(cronURL)))
}

func reachableMessage(cronURL string) template.HTML {
	return template.HTML(fmt.Sprintf( //nolint:gosec
		"Your server reaches <strong>%s</strong> without any problem.",
		escape(cronURL)))
}

func badStatusMessage(cronURL string, statusCode int) template.HTML {
	return template.HTML(fmt.Sprintf( //nolint:gosec
		"Your server cannot reach <strong>%s</strong> correctly, "+
			"it responded with status code <strong>%d</strong>.",
		escape(cronURL), statusCode))
}

func noStatusMessage(cronURL, responseDump string) template.HTML {
	return template.HTML(fmt.Sprintf( //nolint:gosec
		"Your server may have a problem reaching <strong>%s</strong>, "+
			"no status code was received. <pre>%s</pre>",
		escape(cronURL), escape(responseDump)))
}

func privateIPMessage(host, observed string) template.HTML {
	return template.HTML(fmt.Sprintf( //nolint:gosec
		"Your server resolves <strong>%s</strong> to <strong>%s</strong>, "+
			"which is a private or reserved IP address.<br />"+
			"Please check your virtual host configuration to make sure "+
			"this is not a problem.",
		escape(host), escape(observed)))
}

func mismatchMessage(host string, observedIP, dnsIP netip.Addr) template.HTML {
	return template.HTML(fmt.Sprintf( //nolint:gosec
		"Your server resolves <strong>%s</strong> to <strong>%s</strong>, "+
			"but its DNS A record is <strong>%s</strong>.<br />"+
			"Please check your virtual host configuration and the hosts "+
			"file of your server to make sure this is not a problem.",
		escape(host), observedIP, dnsIP))
}

func noDNSIssueMessage(host string) template.HTML {
	return template.HTML(fmt.Sprintf( //nolint:gosec
		"Your server has no DNS or hosts file issue for <strong>%s</strong>.",
		escape(host)))
}
