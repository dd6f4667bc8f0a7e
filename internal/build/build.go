// Package build holds values stamped in at link time.
package build

// Version of genart. Set with -ldflags "-X github.com/gogpu/genart/internal/build.Version=..." during release.
var Version = "0.0.0"
