package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"syscall"

	"github.com/qdm12/debug-cron/internal/wperror"
)

const (
	CodeRequestFailed     = "http_request_failed"
	CodeTimeout           = "timeout"
	CodeDNSFailed         = "dns_failed"
	CodeConnectionRefused = "connection_refused"
	CodeTLSFailed         = "tls_failed"
)

// toCodedError converts a request error to a coded error with
// the generic request failure code first, followed by a more
// specific code if the cause is recognized.
func toCodedError(err error) *wperror.Error {
	codedErr := wperror.New(CodeRequestFailed, err.Error())

	var dnsErr *net.DNSError
	var certificateErr *tls.CertificateVerificationError
	var unknownAuthorityErr x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var recordHeaderErr tls.RecordHeaderError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		codedErr.Add(CodeTimeout, "operation timed out")
	case errors.As(err, &dnsErr):
		codedErr.Add(CodeDNSFailed, dnsErr.Error())
	case errors.Is(err, syscall.ECONNREFUSED):
		codedErr.Add(CodeConnectionRefused, "connection refused by the server")
	case errors.As(err, &certificateErr),
		errors.As(err, &unknownAuthorityErr),
		errors.As(err, &hostnameErr),
		errors.As(err, &recordHeaderErr):
		codedErr.Add(CodeTLSFailed, "TLS handshake failed, "+
			"you may want to disable the TLS verification of the probe")
	}

	return codedErr
}
