package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildInformation_VersionString(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		buildInfo BuildInformation
		version   string
	}{
		"release": {
			buildInfo: BuildInformation{Version: "v1.2.0", Commit: "abcdef0123"},
			version:   "v1.2.0",
		},
		"latest with commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: "abcdef0123"},
			version:   "latest-abcdef0",
		},
		"latest with short commit": {
			buildInfo: BuildInformation{Version: "latest", Commit: "abc"},
			version:   "latest",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			version := testCase.buildInfo.VersionString()

			assert.Equal(t, testCase.version, version)
		})
	}
}
