// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Replays scripted input with timeouts, captures output and tracks raw-mode transitions.

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// pollTimeout marks a scripted read that elapses without data.
const pollTimeout = -1

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	cols       int
	rows       int
	sizeErr    error
	enterErr   error
	exitErr    error
	writeErr   error
	rawMode    bool
	enterCount int
	exitCount  int
	writeCount int
	input      []int
	pos        int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(cols, rows int) *VirtualTerminal {
	return &VirtualTerminal{
		cols: cols,
		rows: rows,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return v.enterErr
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitCount++
	if v.exitErr != nil {
		return v.exitErr
	}
	v.rawMode = false
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (cols, rows int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.cols, v.rows, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeCount++
	if v.writeErr != nil {
		return 0, v.writeErr
	}
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// PollByte returns the next scripted byte or timeout. Once the script
// is exhausted it fails with ErrIO so loops under test terminate.
func (v *VirtualTerminal) PollByte() (byte, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.pos >= len(v.input) {
		return 0, false, fmt.Errorf("%w: virtual input exhausted", ErrIO)
	}
	c := v.input[v.pos]
	v.pos++
	if c == pollTimeout {
		return 0, false, nil
	}
	return byte(c), true, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed appends bytes to the scripted input.
func (v *VirtualTerminal) Feed(p ...byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, b := range p {
		v.input = append(v.input, int(b))
	}
}

// FeedString appends the bytes of s to the scripted input.
func (v *VirtualTerminal) FeedString(s string) {
	v.Feed([]byte(s)...)
}

// FeedTimeout appends one read that elapses without data.
func (v *VirtualTerminal) FeedTimeout() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, pollTimeout)
}

// Pending returns the number of scripted reads not yet consumed.
func (v *VirtualTerminal) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.input) - v.pos
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer and write counter.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writeCount = 0
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// WriteCount returns how many times Write was called.
func (v *VirtualTerminal) WriteCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writeCount
}

// SetSize updates the dimensions reported by Size.
func (v *VirtualTerminal) SetSize(cols, rows int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cols = cols
	v.rows = rows
}

// FailSize makes Size return err.
func (v *VirtualTerminal) FailSize(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// FailEnter makes EnterRawMode return err.
func (v *VirtualTerminal) FailEnter(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// FailExit makes ExitRawMode return err.
func (v *VirtualTerminal) FailExit(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitErr = err
}

// FailWrite makes Write return err.
func (v *VirtualTerminal) FailWrite(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}
