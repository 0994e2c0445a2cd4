// ABOUTME: MakeRaw derives the editor's raw-mode attributes from a captured termios.
// ABOUTME: Reads return after one byte or a 100ms timeout (VMIN=0, VTIME=1).

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

// MakeRaw returns a copy of t with echo, canonical input, signal keys,
// extended input, flow control, CR-to-NL translation, break signaling,
// parity checking, 8th-bit stripping and output post-processing disabled,
// 8-bit characters, and a 100ms read timeout.
func MakeRaw(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag &^= unix.CSIZE
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	return t
}
