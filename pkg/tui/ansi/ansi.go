// ABOUTME: VT100 escape sequences emitted by the editor front-end.
// ABOUTME: Leaf package shared by the renderer, the terminal controller, and the dispatcher.

package ansi

import "strconv"

const (
	HideCursor   = "\x1b[?25l"
	ShowCursor   = "\x1b[?25h"
	CursorHome   = "\x1b[H"
	EraseLine    = "\x1b[K"  // erase from cursor to end of line
	ClearScreen  = "\x1b[2J" // used only on quit and fatal shutdown
	ReportCursor = "\x1b[6n" // reply: ESC [ rows ; cols R

	// CursorFarCorner moves right and down by more than any real terminal
	// has; the terminal clamps the cursor to its last row and column.
	CursorFarCorner = "\x1b[999C\x1b[999B"
)

// AppendCursorTo appends ESC[row;colH for the 0-based position (row, col).
func AppendCursorTo(dst []byte, row, col int) []byte {
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row+1), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col+1), 10)
	return append(dst, 'H')
}
