package checker

import (
	"context"
	"net/netip"

	"github.com/qdm12/debug-cron/internal/probe"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . ARecordLookuper,HostResolver,Prober,Logger

type ARecordLookuper interface {
	LookupA(ctx context.Context, host string) (ips []netip.Addr, err error)
}

type HostResolver interface {
	LookupIPv4(ctx context.Context, host string) (ip netip.Addr, err error)
}

type Prober interface {
	Post(ctx context.Context, url string) (response probe.Response, err error)
}

type Logger interface {
	Debug(s string)
}
