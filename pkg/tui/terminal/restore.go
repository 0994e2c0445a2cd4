// ABOUTME: Shutdown paths that leave the terminal usable: Teardown, RestoreOnPanic, RecoverGoroutine.
// ABOUTME: Every unrecoverable error funnels through Teardown before the process exits.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mauromedda/xim/pkg/tui/ansi"
)

// Teardown is the shutdown routine for fatal errors. It clears the
// screen, homes the cursor and restores the original terminal mode,
// ignoring any further errors. The caller prints the diagnostic and
// picks the exit status.
func Teardown(t Terminal) {
	_, _ = t.Write([]byte(ansi.ClearScreen + ansi.CursorHome))
	_ = t.ExitRawMode()
}

// RestoreOnPanic should be deferred at the top of main. On panic it
// shows the cursor, exits raw mode, prints the panic value and stack
// trace, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort: show cursor and exit raw mode.
	_, _ = t.Write([]byte(ansi.ShowCursor))
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine should be deferred at the top of background goroutines
// that run while the terminal is in raw mode. Unlike RestoreOnPanic it
// does NOT call os.Exit, allowing the main goroutine to handle shutdown.
func RecoverGoroutine(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort: show cursor and exit raw mode.
	_, _ = t.Write([]byte(ansi.ShowCursor))
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
}
