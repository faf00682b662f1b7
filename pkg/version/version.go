// Package version exposes the tool version reported by sixpair -version.
package version

// Current is the sixpair version. Overridden at build time via
// -ldflags "-X github.com/sixpair/sixpair-go/pkg/version.Current=...".
var Current = "1.0.0"
