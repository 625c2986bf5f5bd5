// Package version normalizes user-supplied version strings.
// Versions are opaque: relgate never orders or range-matches them,
// it only compares them for equality.
package version

// Normalize strips a single leading "v" from a version string, so that
// a git tag like v1.2.3 can be passed directly as a target version.
// Anything else is returned unchanged.
func Normalize(s string) string {
	if len(s) > 1 && s[0] == 'v' {
		return s[1:]
	}
	return s
}
