package dnsrecord

import (
	"net"

	"github.com/miekg/dns"
)

const fallbackNameserver = "1.1.1.1:53"

// SystemNameserver returns the first nameserver address found in
// the resolv.conf file given, or 1.1.1.1:53 if none can be found.
func SystemNameserver(resolvConfPath string) (address string) {
	config, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(config.Servers) == 0 {
		return fallbackNameserver
	}

	port := config.Port
	if port == "" {
		port = "53"
	}
	return net.JoinHostPort(config.Servers[0], port)
}
