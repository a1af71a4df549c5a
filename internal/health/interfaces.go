package health

import (
	"context"
	"net/netip"
)

type HostResolver interface {
	LookupIPv4(ctx context.Context, host string) (ip netip.Addr, err error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
