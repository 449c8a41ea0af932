// Package version provides build version information for the tradekit
// SDK and derives the User-Agent string sent with every API request.
//
// Version, git commit, and build time are set at compile time via
// -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/tradekit/version.Version=1.0.0"
package version
