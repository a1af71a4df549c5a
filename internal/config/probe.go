package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Probe struct {
	Timeout   time.Duration
	Blocking  *bool
	SSLVerify *bool
}

func (p *Probe) setDefaults() {
	const defaultTimeout = 10 * time.Millisecond
	p.Timeout = gosettings.DefaultComparable(p.Timeout, defaultTimeout)
	p.Blocking = gosettings.DefaultPointer(p.Blocking, false)
	p.SSLVerify = gosettings.DefaultPointer(p.SSLVerify, false)
}

var (
	ErrProbeTimeoutTooLow = errors.New("probe timeout is too low")
)

func (p Probe) Validate() (err error) {
	const minTimeout = time.Millisecond
	if p.Timeout < minTimeout {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrProbeTimeoutTooLow, p.Timeout, minTimeout)
	}
	return nil
}

func (p Probe) String() string {
	return p.toLinesNode().String()
}

func (p Probe) toLinesNode() *gotree.Node {
	node := gotree.New("Cron probe")
	node.Appendf("Timeout: %s", p.Timeout)
	node.Appendf("Wait for response: %s", gosettings.BoolToYesNo(p.Blocking))
	node.Appendf("TLS verification: %s", gosettings.BoolToYesNo(p.SSLVerify))
	return node
}

func (p *Probe) read(r *reader.Reader) (err error) {
	p.Timeout, err = r.Duration("PROBE_TIMEOUT")
	if err != nil {
		return err
	}

	p.Blocking, err = r.BoolPtr("PROBE_BLOCKING")
	if err != nil {
		return err
	}

	p.SSLVerify, err = r.BoolPtr("PROBE_SSL_VERIFY")
	return err
}
