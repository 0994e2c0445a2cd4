// ABOUTME: Session is the scoped raw-mode guard: Open enters raw mode, Close restores it once.
// ABOUTME: Close is safe to call from defers, signal handlers and fatal paths alike.

package terminal

import "sync"

// Session holds a Terminal in raw mode until Close.
type Session struct {
	t    Terminal
	once sync.Once
	err  error
}

// Open puts t into raw mode and returns the guard that restores it.
func Open(t Terminal) (*Session, error) {
	if err := t.EnterRawMode(); err != nil {
		return nil, err
	}
	return &Session{t: t}, nil
}

// Terminal returns the guarded terminal.
func (s *Session) Terminal() Terminal {
	return s.t
}

// Close restores the original terminal attributes. Only the first call
// touches the terminal; later calls return the first result.
func (s *Session) Close() error {
	s.once.Do(func() {
		s.err = s.t.ExitRawMode()
	})
	return s.err
}
