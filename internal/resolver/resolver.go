package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
)

// Resolver resolves host names the way the system does,
// including the hosts file, unless a nameserver address
// is set in its settings.
type Resolver struct {
	resolver *net.Resolver
}

func New(settings Settings) (resolver *Resolver, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	if *settings.Address == "" {
		return &Resolver{resolver: net.DefaultResolver}, nil
	}

	dialer := net.Dialer{Timeout: settings.Timeout}
	return &Resolver{
		resolver: &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
				const protocol = "udp"
				return dialer.DialContext(ctx, protocol, *settings.Address)
			},
		},
	}, nil
}

var ErrNoIPv4Found = errors.New("no IPv4 address found")

// LookupIPv4 returns the first IPv4 address the host resolves to.
func (r *Resolver) LookupIPv4(ctx context.Context, host string) (
	ip netip.Addr, err error) {
	ips, err := r.resolver.LookupNetIP(ctx, "ip4", host)
	if err != nil {
		return ip, err
	}

	for _, candidate := range ips {
		candidate = candidate.Unmap()
		if candidate.Is4() {
			return candidate, nil
		}
	}

	return ip, fmt.Errorf("%w: for %s", ErrNoIPv4Found, host)
}
