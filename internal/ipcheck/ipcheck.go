// Package ipcheck validates IP addresses, rejecting
// addresses from private and reserved ranges.
package ipcheck

import (
	"net/netip"
)

//nolint:gochecknoglobals
var (
	privatePrefixes = []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("172.16.0.0/12"),
		netip.MustParsePrefix("192.168.0.0/16"),
		netip.MustParsePrefix("fc00::/7"),
	}
	reservedPrefixes = []netip.Prefix{
		netip.MustParsePrefix("0.0.0.0/8"),
		netip.MustParsePrefix("127.0.0.0/8"),
		netip.MustParsePrefix("169.254.0.0/16"),
		netip.MustParsePrefix("240.0.0.0/4"),
		netip.MustParsePrefix("::/128"),
		netip.MustParsePrefix("::1/128"),
		netip.MustParsePrefix("::ffff:0:0/96"),
		netip.MustParsePrefix("fe80::/10"),
	}
)

// IsPublic returns true if the IP address is valid and is
// in neither a private nor a reserved range.
func IsPublic(ip netip.Addr) bool {
	if !ip.IsValid() {
		return false
	}

	ip = ip.Unmap()
	for _, prefix := range privatePrefixes {
		if prefix.Contains(ip) {
			return false
		}
	}
	for _, prefix := range reservedPrefixes {
		if prefix.Contains(ip) {
			return false
		}
	}
	return true
}

// ParsePublic parses s as an IP address and returns it together
// with whether it is a valid public address. The returned address
// is the zero value if s is not an IP address.
func ParsePublic(s string) (ip netip.Addr, ok bool) {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return ip, IsPublic(ip)
}
