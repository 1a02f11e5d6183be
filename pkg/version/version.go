// Package version exposes the service identity reported by the version
// endpoint.
package version

// Overridable at build time:
//
//	go build -ldflags "-X api-template/pkg/version.Version=1.2.3"
var (
	Name    = "api-template"
	Version = "0.1.0"
)
