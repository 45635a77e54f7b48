//go:build !windows

package main

import (
	"os"
	"syscall"
)

// stopSignals end a build, or a watch session, cleanly.
var stopSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
