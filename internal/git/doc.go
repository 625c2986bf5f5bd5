// Package git provides the minimal Git CLI access relgate needs: resolving
// the latest tag so it can serve as the default target version.
package git
