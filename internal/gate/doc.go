// Package gate implements the release-gate consistency algorithm: checking
// that every package and every pinned internal dependency in a workspace
// declares one target version, and rewriting them to that version.
package gate
