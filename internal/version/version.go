// Package version exposes build metadata injected at link time.
package version

// Version is overridden via -ldflags "-X .../internal/version.Version=v1.2.3".
var Version = "dev"
