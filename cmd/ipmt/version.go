package main

import (
	"fmt"
	"runtime"
)

var (
	version = "dev"
	commit  = "unknown"
)

// versionString is shown in the help header.
func versionString() string {
	return fmt.Sprintf("v%s (commit %s, %s %s/%s)", version, commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
