package models

type BuildInformation struct {
	Version string
	Commit  string
	Date    string
}

// VersionString returns the version, suffixed with the short
// commit hash for builds of the latest branch.
func (b BuildInformation) VersionString() string {
	if b.Version != "latest" {
		return b.Version
	}
	const commitShortHashLength = 7
	if len(b.Commit) < commitShortHashLength {
		return b.Version
	}
	return b.Version + "-" + b.Commit[:commitShortHashLength]
}
