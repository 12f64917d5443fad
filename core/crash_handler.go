package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu   sync.Mutex
	crashHook func()
	// exit is replaceable for tests
	exit = os.Exit
)

// SetCrashHook registers terminal cleanup run before the stack trace is printed
func SetCrashHook(fn func()) {
	crashMu.Lock()
	crashHook = fn
	crashMu.Unlock()
}

// HandleCrash restores the terminal, logs the panic and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	hook := crashHook
	crashHook = nil
	crashMu.Unlock()

	if hook != nil {
		hook()
	}

	stack := debug.Stack()
	Log.WithField("panic", fmt.Sprint(r)).Error("crash detected")

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
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

// Recover wraps fn so a panic inside it is routed through HandleCrash
// Intended for callbacks handed to other goroutines, such as timer functions
func Recover(fn func()) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}
}
