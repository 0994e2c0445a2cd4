// ABOUTME: Editor holds cursor and viewport state and drives the render/read/dispatch loop
// ABOUTME: Only the dispatcher mutates the cursor; quit clears the screen and ends Run cleanly

package editor

import (
	"fmt"

	"github.com/mauromedda/xim/internal/log"
	"github.com/mauromedda/xim/pkg/tui"
	"github.com/mauromedda/xim/pkg/tui/ansi"
	"github.com/mauromedda/xim/pkg/tui/key"
	"github.com/mauromedda/xim/pkg/tui/terminal"
)

// DefaultQuitKey is Ctrl+Q.
var DefaultQuitKey = key.Ctrl('q')

// Editor is the EditorState plus InputDispatcher.
type Editor struct {
	term    terminal.Terminal
	keys    *key.Decoder
	screen  *tui.Screen
	rows    tui.RowSource
	geo     terminal.Geometry
	cursor  tui.CursorPos
	quitKey byte
}

// Option configures an Editor.
type Option func(*Editor)

// WithRows sets the row content collaborator. The default draws
// placeholder rows only.
func WithRows(rows tui.RowSource) Option {
	return func(e *Editor) { e.rows = rows }
}

// WithQuitKey sets the control byte that ends the session.
func WithQuitKey(b byte) Option {
	return func(e *Editor) { e.quitKey = b }
}

// WithScreen replaces the default renderer.
func WithScreen(s *tui.Screen) Option {
	return func(e *Editor) { e.screen = s }
}

// WithCursor sets the starting cursor position. It is clamped to the viewport.
func WithCursor(c tui.CursorPos) Option {
	return func(e *Editor) { e.cursor = c }
}

// New creates an Editor over a terminal already in raw mode, with the
// geometry probed at startup. The cursor starts at (0, 0).
func New(t terminal.Terminal, geo terminal.Geometry, opts ...Option) (*Editor, error) {
	if !geo.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", terminal.ErrGeometryUnavailable, geo.Cols, geo.Rows)
	}

	e := &Editor{
		term:    t,
		keys:    key.NewDecoder(t),
		rows:    tui.Placeholder{},
		geo:     geo,
		quitKey: DefaultQuitKey,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.screen == nil {
		e.screen = tui.NewScreen(t, "Xim editor", "~")
	}
	e.cursor = e.clamp(e.cursor)
	return e, nil
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() tui.CursorPos {
	return e.cursor
}

// Geometry returns the viewport size the editor was created with.
func (e *Editor) Geometry() terminal.Geometry {
	return e.geo
}

// Run loops render, read key, dispatch until the quit key arrives
// (returns nil) or a render or read fails (returns the error).
func (e *Editor) Run() error {
	for {
		if err := e.Refresh(); err != nil {
			return err
		}

		k, err := e.keys.ReadKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		log.Debug("key %v", k)

		if !e.Dispatch(k) {
			return e.quit()
		}
	}
}

// Refresh renders the current state as one frame.
func (e *Editor) Refresh() error {
	return e.screen.Render(e.cursor, e.geo, e.rows)
}

// Dispatch applies one key to the editor state. It returns false when
// the key requests quitting.
func (e *Editor) Dispatch(k key.Key) bool {
	k = k.Normalize()

	switch k.Type {
	case key.KeyCtrl:
		if k.Byte == e.quitKey {
			return false
		}
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight:
		e.moveCursor(k.Type)
	case key.KeyHome:
		e.cursor.Col = 0
	case key.KeyEnd:
		e.cursor.Col = e.geo.Cols - 1
	case key.KeyPageUp, key.KeyPageDown:
		dir := key.KeyUp
		if k.Type == key.KeyPageDown {
			dir = key.KeyDown
		}
		for range e.geo.Rows {
			e.moveCursor(dir)
		}
	}
	// Characters, Delete and Escape are reserved for editing operations.
	return true
}

// moveCursor moves one cell in the arrow's direction; moves past an
// edge are ignored.
func (e *Editor) moveCursor(dir key.KeyType) {
	switch dir {
	case key.KeyLeft:
		if e.cursor.Col > 0 {
			e.cursor.Col--
		}
	case key.KeyRight:
		if e.cursor.Col < e.geo.Cols-1 {
			e.cursor.Col++
		}
	case key.KeyUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
		}
	case key.KeyDown:
		if e.cursor.Row < e.geo.Rows-1 {
			e.cursor.Row++
		}
	}
}

func (e *Editor) clamp(c tui.CursorPos) tui.CursorPos {
	c.Row = max(0, min(c.Row, e.geo.Rows-1))
	c.Col = max(0, min(c.Col, e.geo.Cols-1))
	return c
}

// quit clears the screen and homes the cursor, bypassing the renderer.
func (e *Editor) quit() error {
	if _, err := e.term.Write([]byte(ansi.ClearScreen + ansi.CursorHome)); err != nil {
		return fmt.Errorf("clearing screen on quit: %w", err)
	}
	log.Info("quit")
	return nil
}
