// ABOUTME: ProcessTerminal implements Terminal on the controlling tty with x/sys/unix termios.
// ABOUTME: Owns the captured original attributes and is the only writer of terminal mode.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by tty file descriptors.
type ProcessTerminal struct {
	mu    sync.Mutex
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	orig  *unix.Termios
}

// NewProcessTerminal returns a ProcessTerminal reading from in and writing to out.
// Typically in is os.Stdin and out is os.Stdout.
func NewProcessTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: int(out.Fd()),
	}
}

// EnterRawMode captures the current attributes and applies MakeRaw to them.
// Calling it again while raw mode is active is a no-op.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.orig != nil {
		return nil
	}
	if !term.IsTerminal(t.inFd) {
		return fmt.Errorf("%w: %s is not a terminal", ErrTerminalMode, t.in.Name())
	}

	orig, err := unix.IoctlGetTermios(t.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("%w: tcgetattr: %w", ErrTerminalMode, err)
	}

	raw := MakeRaw(*orig)
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("%w: tcsetattr: %w", ErrTerminalMode, err)
	}
	t.orig = orig
	return nil
}

// ExitRawMode reapplies the attributes captured by EnterRawMode.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.orig == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, t.orig); err != nil {
		return fmt.Errorf("%w: tcsetattr restore: %w", ErrTerminalMode, err)
	}
	t.orig = nil
	return nil
}

// Size asks the output device for its window size.
func (t *ProcessTerminal) Size() (cols, rows int, err error) {
	w, h, err := term.GetSize(t.outFd)
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends p to the output device in a single call.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: write: %w", ErrIO, err)
	}
	return n, nil
}

// PollByte performs one read(2) of at most one byte. With raw mode
// active the kernel returns zero bytes after the VTIME timeout.
func (t *ProcessTerminal) PollByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(t.inFd, buf[:])
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("%w: read: %w", ErrIO, err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}
