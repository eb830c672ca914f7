// Package version records the build version stamped in at link time.
package version

import "fmt"

// Version is overridden via:
//
//	go build -ldflags "-X github.com/Kush-Singh-26/isoserve/internal/version.Version=v1.2.3"
var Version = "dev"

// String returns the version string.
func String() string {
	return Version
}

// Print writes the version line for the version command.
func Print() {
	fmt.Printf("isoserve %s\n", String())
}
