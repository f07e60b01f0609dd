package models

import (
	"fmt"
	"strings"
)

// BuildInformation is set at build time using ldflags.
type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

const shortCommitLength = 7

// VersionString returns the release version, or for builds of
// the latest branch, the short commit hash appended to it.
func (b BuildInformation) VersionString() string {
	if b.Version != "latest" {
		return b.Version
	}
	commit := b.ShortCommit()
	if commit == "" {
		return b.Version
	}
	return b.Version + "-" + commit
}

// ShortCommit returns the first characters of the commit hash,
// or an empty string if the commit is not a hexadecimal hash.
func (b BuildInformation) ShortCommit() string {
	if len(b.Commit) < shortCommitLength || !isHex(b.Commit) {
		return ""
	}
	return b.Commit[:shortCommitLength]
}

// String is printed by the version subcommand.
func (b BuildInformation) String() string {
	s := "gdomains-updater " + b.VersionString()
	if commit := b.ShortCommit(); commit != "" {
		s += fmt.Sprintf(" (commit %s)", commit)
	}
	return s + " built on " + b.Date
}

func isHex(s string) bool {
	return strings.Trim(strings.ToLower(s), "0123456789abcdef") == ""
}
