package ipcheck

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParsePublic(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s  string
		ip netip.Addr
		ok bool
	}{
		"not an ip": {
			s: "example.com",
		},
		"empty": {},
		"public ipv4": {
			s:  "203.0.113.5",
			ip: netip.MustParseAddr("203.0.113.5"),
			ok: true,
		},
		"private 10": {
			s:  "10.0.0.5",
			ip: netip.MustParseAddr("10.0.0.5"),
		},
		"private 172.16": {
			s:  "172.20.1.1",
			ip: netip.MustParseAddr("172.20.1.1"),
		},
		"private 192.168": {
			s:  "192.168.1.10",
			ip: netip.MustParseAddr("192.168.1.10"),
		},
		"loopback": {
			s:  "127.0.0.1",
			ip: netip.MustParseAddr("127.0.0.1"),
		},
		"unspecified": {
			s:  "0.0.0.0",
			ip: netip.MustParseAddr("0.0.0.0"),
		},
		"link local": {
			s:  "169.254.10.10",
			ip: netip.MustParseAddr("169.254.10.10"),
		},
		"class E": {
			s:  "250.1.2.3",
			ip: netip.MustParseAddr("250.1.2.3"),
		},
		"outside 172.16/12": {
			s:  "172.32.0.1",
			ip: netip.MustParseAddr("172.32.0.1"),
			ok: true,
		},
		"ipv6 loopback": {
			s:  "::1",
			ip: netip.MustParseAddr("::1"),
		},
		"ipv6 unique local": {
			s:  "fd00::1",
			ip: netip.MustParseAddr("fd00::1"),
		},
		"ipv6 public": {
			s:  "2606:4700:4700::1111",
			ip: netip.MustParseAddr("2606:4700:4700::1111"),
			ok: true,
		},
		"ipv4 mapped private": {
			s:  "::ffff:10.0.0.1",
			ip: netip.MustParseAddr("::ffff:10.0.0.1"),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ip, ok := ParsePublic(testCase.s)

			assert.Equal(t, testCase.ip, ip)
			assert.Equal(t, testCase.ok, ok)
		})
	}
}

func Test_IsPublic_zero(t *testing.T) {
	t.Parallel()

	assert.False(t, IsPublic(netip.Addr{}))
}
