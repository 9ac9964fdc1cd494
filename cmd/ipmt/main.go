package main

import (
	"errors"
	"fmt"
	"os"
)

// exitStatus carries a non-zero exit status for an outcome that has already
// been reported to the user.
type exitStatus int

const (
	statusNoMatch exitStatus = 1
	statusTrouble exitStatus = 2
)

func (s exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(s))
}

// exitCode maps a run error to a grep-style exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var s exitStatus
	if errors.As(err, &s) {
		return int(s)
	}
	return int(statusTrouble)
}

func main() {
	err := Execute()
	var s exitStatus
	if err != nil && !errors.As(err, &s) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
	}
	os.Exit(exitCode(err))
}
