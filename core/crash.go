package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// CrashHandler receives the recovered value from a crashed goroutine
// The main binary installs one that resets the terminal before printing
type CrashHandler func(r any)

var crashHandler atomic.Pointer[CrashHandler]

// SetCrashHandler installs the process-wide crash handler used by Go
// Safe to call before any goroutine is spawned; later calls replace it
func SetCrashHandler(h CrashHandler) {
	crashHandler.Store(&h)
}

// HandleCrash invokes the installed crash handler, or prints the panic
// and stack to stderr and exits when none is installed
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if h := crashHandler.Load(); h != nil {
		(*h)(r)
		return
	}
	fmt.Fprintf(os.Stderr, "crash: %v\n", r)
	fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword so a crashed background task
// still restores the terminal before the process dies.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// Guard runs fn and converts a panic into an error instead of unwinding
// further. It is the isolation boundary for scheduler steps and per-entity
// updates: the caller logs the error and carries on with the next step or
// entity. A nil return means fn completed normally.
func Guard(name string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", name, r)
		}
	}()
	fn()
	return nil
}
