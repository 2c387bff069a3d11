// Package version exposes build information for logs and the User-Agent
// header on outgoing API requests.
//
// The version string is injected at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/swapkit/version.Version=1.0.0"
//
// Commit details come from the embedded module build info.
package version
