// ABOUTME: Defines the Terminal interface for raw mode, size queries, timed reads and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, output writing and timed single-byte input.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (cols, rows int, err error)
	Write(p []byte) (n int, err error)

	// PollByte reads at most one byte. ok is false with a nil error when
	// the read timeout elapsed before any byte arrived.
	PollByte() (b byte, ok bool, err error)
}

// Geometry is the viewport size in character cells.
type Geometry struct {
	Rows int
	Cols int
}

// Valid reports whether both dimensions are positive.
func (g Geometry) Valid() bool {
	return g.Rows > 0 && g.Cols > 0
}
