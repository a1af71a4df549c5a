// Package dnsrecord queries a DNS nameserver directly for
// the A records of a host, bypassing the hosts file and the
// system resolver.
package dnsrecord

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/miekg/dns"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Client

// Client is the DNS client used in the implementation in this package.
type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, a string) (r *dns.Msg, rtt time.Duration, err error)
}

type Lookuper struct {
	client     Client
	nameserver string
}

// New creates a Lookuper querying the nameserver address, in the
// form host:port, over UDP with the given timeout.
func New(nameserver string, timeout time.Duration) *Lookuper {
	return &Lookuper{
		client: &dns.Client{
			Net:     "udp",
			Timeout: timeout,
		},
		nameserver: nameserver,
	}
}

var (
	ErrResponseCode = errors.New("response code is not success")
	ErrNoARecord    = errors.New("no A record found")
)

// LookupA returns the IPv4 addresses found in the A records of
// the host, in the order they were received.
func (l *Lookuper) LookupA(ctx context.Context, host string) (
	ips []netip.Addr, err error) {
	request := new(dns.Msg)
	request.SetQuestion(dns.Fqdn(host), dns.TypeA)

	response, _, err := l.client.ExchangeContext(ctx, request, l.nameserver)
	if err != nil {
		return nil, fmt.Errorf("exchanging with %s: %w", l.nameserver, err)
	}

	if response.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("%w: %s", ErrResponseCode, dns.RcodeToString[response.Rcode])
	}

	for _, answer := range response.Answer {
		record, ok := answer.(*dns.A)
		if !ok { // CNAME records for example
			continue
		}
		ip, ok := netip.AddrFromSlice(record.A)
		if !ok {
			continue
		}
		ips = append(ips, ip.Unmap())
	}

	if len(ips) == 0 {
		return nil, fmt.Errorf("%w: for %s", ErrNoARecord, host)
	}

	return ips, nil
}
