package core

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores an output device on crash (tcell.Screen satisfies it)
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	exitFunc      = os.Exit
)

// SetCrashTerminal registers the screen to restore before printing a crash report
// Pass nil once the screen has been finalized normally
func SetCrashTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
// Usage: defer func() { core.HandleCrash(recover()) }()
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	if t != nil {
		t.Fini()
	}

	stack := debug.Stack()
	log.Printf("[crash] %v\n%s", r, stack)

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)

	exitFunc(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so the terminal is restored on crash
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
