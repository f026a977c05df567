// Package rheia carries the release version shared by the editor binary and
// its library packages.
package rheia

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var versionFile string

// SemVer 2.0.0 without the leading "v".
var semver = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?` +
	`(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the release from the VERSION file, e.g. "0.1.0".
func Version() string { return strings.TrimSpace(versionFile) }

// VersionTag is Version as a git tag, e.g. "v0.1.0".
func VersionTag() string { return "v" + Version() }

func IsSemver(v string) bool { return semver.MatchString(strings.TrimSpace(v)) }

func VersionIsSemver() bool { return IsSemver(Version()) }
