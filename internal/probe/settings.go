package probe

import (
	"time"

	"github.com/qdm12/gosettings"
)

type Settings struct {
	// Timeout is the maximum time to wait for the request
	// to be sent and, if possible, for a response.
	Timeout time.Duration
	// Blocking makes the client treat a missing response
	// before the timeout as a failure.
	Blocking *bool
	// SSLVerify enables the verification of the server
	// TLS certificate.
	SSLVerify *bool
	Logger    DebugLogger
}

func (s *Settings) SetDefaults() {
	const defaultTimeout = 10 * time.Millisecond
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
	s.Blocking = gosettings.DefaultPointer(s.Blocking, false)
	s.SSLVerify = gosettings.DefaultPointer(s.SSLVerify, false)
	if s.Logger == nil {
		s.Logger = &noopLogger{}
	}
}

type noopLogger struct{}

func (noopLogger) Debug(_ string) {}
