// ABOUTME: ProbeGeometry discovers the viewport size once at startup.
// ABOUTME: Primary window-size query with a cursor-position-report fallback; raw mode must be active.

package terminal

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/mauromedda/xim/pkg/tui/ansi"
)

// maxReplyLen bounds the cursor position report read.
const maxReplyLen = 32

// ProbeGeometry returns the viewport size of t. When the direct query
// fails or reports zero columns it moves the cursor to the bottom-right
// corner and asks the terminal where the cursor ended up.
func ProbeGeometry(t Terminal) (Geometry, error) {
	cols, rows, err := t.Size()
	if err == nil && cols != 0 {
		g := Geometry{Rows: rows, Cols: cols}
		if !g.Valid() {
			return Geometry{}, fmt.Errorf("%w: window size query reported %dx%d", ErrGeometryUnavailable, cols, rows)
		}
		return g, nil
	}

	if _, err := t.Write([]byte(ansi.CursorFarCorner)); err != nil {
		return Geometry{}, fmt.Errorf("moving cursor to corner: %w", err)
	}
	return CursorPosition(t)
}

// CursorPosition requests a cursor position report and parses the reply.
// The reply's 1-based row and column equal the viewport size when the
// cursor sits in the bottom-right corner.
func CursorPosition(t Terminal) (Geometry, error) {
	if _, err := t.Write([]byte(ansi.ReportCursor)); err != nil {
		return Geometry{}, fmt.Errorf("requesting cursor position: %w", err)
	}

	var buf [maxReplyLen]byte
	n := 0
	for n < len(buf)-1 {
		b, ok, err := t.PollByte()
		if err != nil {
			return Geometry{}, fmt.Errorf("reading cursor position: %w", err)
		}
		if !ok || b == 'R' {
			break
		}
		buf[n] = b
		n++
	}
	return parseCursorReply(buf[:n])
}

// parseCursorReply parses "ESC [ rows ; cols" (the trailing R already stripped).
func parseCursorReply(reply []byte) (Geometry, error) {
	body, ok := bytes.CutPrefix(reply, []byte("\x1b["))
	if !ok {
		return Geometry{}, fmt.Errorf("%w: %q", ErrMalformedReply, reply)
	}
	rowPart, colPart, ok := bytes.Cut(body, []byte(";"))
	if !ok {
		return Geometry{}, fmt.Errorf("%w: %q", ErrMalformedReply, reply)
	}

	rows, err := strconv.Atoi(string(rowPart))
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: rows %q", ErrMalformedReply, rowPart)
	}
	cols, err := strconv.Atoi(string(colPart))
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: cols %q", ErrMalformedReply, colPart)
	}

	g := Geometry{Rows: rows, Cols: cols}
	if !g.Valid() {
		return Geometry{}, fmt.Errorf("%w: cursor reported at %d;%d", ErrGeometryUnavailable, rows, cols)
	}
	return g, nil
}
