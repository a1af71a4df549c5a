package probe

import (
	"net/http"
	"sort"
	"strings"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . DebugLogger

type DebugLogger interface {
	Debug(s string)
}

type loggingRoundTripper struct {
	proxied http.RoundTripper
	logger  DebugLogger
}

func (lrt *loggingRoundTripper) RoundTrip(request *http.Request) (
	response *http.Response, err error) {
	lrt.logger.Debug(requestToString(request))

	response, err = lrt.proxied.RoundTrip(request)
	if err != nil {
		lrt.logger.Debug(request.Method + " " + request.URL.String() + " failed: " + err.Error())
		return response, err
	}

	lrt.logger.Debug(responseToString(response))

	return response, nil
}

func requestToString(request *http.Request) (s string) {
	s = request.Method + " " + request.URL.String()
	if len(request.Header) > 0 {
		s += " | headers: " + headerToString(request.Header)
	}
	return s
}

// responseToString does not read the body so the
// response can still be dropped without waiting for it.
func responseToString(response *http.Response) (s string) {
	s = response.Status
	if len(response.Header) > 0 {
		s += " | headers: " + headerToString(response.Header)
	}
	return s
}

func headerToString(header http.Header) (s string) {
	headers := make([]string, 0, len(header))
	for key, values := range header {
		headerString := key + ": " + strings.Join(values, ",")
		headers = append(headers, headerString)
	}
	sort.Strings(headers)
	return strings.Join(headers, "; ")
}
