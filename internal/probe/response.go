package probe

import (
	"net/http"
	"sort"
	"strings"

	"github.com/qdm12/gotree"
)

// Response is what is known about the probe response once the
// client returns. StatusCode is zero if no response was received.
type Response struct {
	Sent       bool
	StatusCode int
	Status     string
	Header     http.Header
}

func (r Response) String() string {
	return r.toLinesNode().String()
}

func (r Response) toLinesNode() *gotree.Node {
	node := gotree.New("Response")
	sent := "no"
	if r.Sent {
		sent = "yes"
	}
	node.Appendf("Sent: %s", sent)

	if r.StatusCode == 0 {
		node.Appendf("Status: none received")
	} else {
		node.Appendf("Status: %s", r.Status)
	}

	if len(r.Header) == 0 {
		node.Appendf("Headers: none")
		return node
	}

	keys := make([]string, 0, len(r.Header))
	for key := range r.Header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headersNode := node.Appendf("Headers")
	for _, key := range keys {
		headersNode.Appendf("%s: %s", key, strings.Join(r.Header[key], ","))
	}
	return node
}
