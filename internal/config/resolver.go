package config

import (
	"net"

	"github.com/qdm12/debug-cron/internal/resolver"
	"github.com/qdm12/gosettings/reader"
)

func readResolver(r *reader.Reader, settings *resolver.Settings) (err error) {
	settings.Address = r.Get("RESOLVER_ADDRESS")
	if settings.Address != nil && *settings.Address != "" {
		// conveniently add port 53 if not specified
		_, _, err := net.SplitHostPort(*settings.Address)
		if err != nil {
			*settings.Address = net.JoinHostPort(*settings.Address, "53")
		}
	}
	settings.Timeout, err = r.Duration("RESOLVER_TIMEOUT")
	return err
}
