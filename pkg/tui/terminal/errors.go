// ABOUTME: Error kinds for unrecoverable terminal failures.
// ABOUTME: Callers wrap causes with the failing operation and test kinds with errors.Is.

package terminal

import (
	"errors"
	"fmt"
)

var (
	// ErrTerminalMode reports a failure to capture or apply terminal attributes.
	ErrTerminalMode = errors.New("terminal mode")

	// ErrIO reports a read or write failure other than a read timeout.
	ErrIO = errors.New("terminal i/o")

	// ErrGeometryUnavailable reports that no method yielded a usable window size.
	ErrGeometryUnavailable = errors.New("window size unavailable")

	// ErrMalformedReply reports an unparsable cursor position report.
	// It is a kind of ErrGeometryUnavailable.
	ErrMalformedReply = fmt.Errorf("%w: malformed cursor position reply", ErrGeometryUnavailable)
)
