package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/qdm12/debug-cron/internal/dnsrecord"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// DNS holds the settings to query the host A records.
type DNS struct {
	// Nameserver is the address of the nameserver to query.
	// It defaults to the first nameserver of /etc/resolv.conf.
	Nameserver string
	Timeout    time.Duration
}

func (d *DNS) setDefaults() {
	if d.Nameserver == "" {
		d.Nameserver = dnsrecord.SystemNameserver("/etc/resolv.conf")
	}
	const defaultTimeout = 3 * time.Second
	d.Timeout = gosettings.DefaultComparable(d.Timeout, defaultTimeout)
}

var (
	ErrNameserverHostEmpty = errors.New("nameserver host is empty")
	ErrNameserverPortEmpty = errors.New("nameserver port is empty")
	ErrDNSTimeoutTooLow    = errors.New("DNS timeout is too low")
)

func (d DNS) Validate() (err error) {
	host, port, err := net.SplitHostPort(d.Nameserver)
	if err != nil {
		return fmt.Errorf("splitting host and port from nameserver: %w", err)
	}

	switch {
	case host == "":
		return fmt.Errorf("%w: in %s", ErrNameserverHostEmpty, d.Nameserver)
	case port == "":
		return fmt.Errorf("%w: in %s", ErrNameserverPortEmpty, d.Nameserver)
	}

	const minTimeout = 10 * time.Millisecond
	if d.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrDNSTimeoutTooLow, d.Timeout, minTimeout)
	}

	return nil
}

func (d DNS) String() string {
	return d.toLinesNode().String()
}

func (d DNS) toLinesNode() *gotree.Node {
	node := gotree.New("DNS records lookup")
	node.Appendf("Nameserver: %s", d.Nameserver)
	node.Appendf("Timeout: %s", d.Timeout)
	return node
}

func (d *DNS) read(r *reader.Reader) (err error) {
	d.Nameserver = r.String("DNS_NAMESERVER")
	if d.Nameserver != "" { // conveniently add port 53 if not specified
		_, _, err := net.SplitHostPort(d.Nameserver)
		if err != nil {
			d.Nameserver = net.JoinHostPort(d.Nameserver, "53")
		}
	}
	d.Timeout, err = r.Duration("DNS_TIMEOUT")
	return err
}
