//go:build windows

package main

import "os"

// stopSignals end a build, or a watch session, cleanly.
// SIGTERM is not delivered on Windows.
var stopSignals = []os.Signal{os.Interrupt}
