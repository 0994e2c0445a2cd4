// ABOUTME: Screen renders full frames: placeholder rows, centered banner, cursor placement
// ABOUTME: Each Render composes off-screen and issues exactly one Write to avoid flicker

package tui

import (
	"fmt"

	"github.com/mauromedda/xim/pkg/tui/ansi"
	"github.com/mauromedda/xim/pkg/tui/terminal"
	"github.com/mauromedda/xim/pkg/tui/width"
)

// Writer is the minimal interface for terminal output.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// Screen is the renderer. It is the only component writing frames to
// the terminal.
type Screen struct {
	writer      Writer
	banner      string
	placeholder string
}

// NewScreen creates a Screen writing to w. banner is centered on the
// row at one third of the viewport height; placeholder marks rows
// without content.
func NewScreen(w Writer, banner, placeholder string) *Screen {
	return &Screen{
		writer:      w,
		banner:      banner,
		placeholder: placeholder,
	}
}

// Render draws one frame for the given cursor and geometry. rows may
// be nil, in which case every row is a placeholder row.
func (s *Screen) Render(cursor CursorPos, geo terminal.Geometry, rows RowSource) error {
	if rows == nil {
		rows = Placeholder{}
	}

	frame := AcquireFrame()
	defer ReleaseFrame(frame)

	frame.AppendString(ansi.HideCursor)
	frame.AppendString(ansi.CursorHome)
	s.drawRows(frame, geo, rows)
	frame.AppendCursorTo(cursor.Row, cursor.Col)
	frame.AppendString(ansi.ShowCursor)

	if _, err := s.writer.Write(frame.Bytes()); err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	return nil
}

// drawRows appends every visible row, each erased to end of line and
// all but the last followed by CRLF.
func (s *Screen) drawRows(frame *FrameBuffer, geo terminal.Geometry, rows RowSource) {
	bannerRow := geo.Rows / 3

	for y := range geo.Rows {
		if content, ok := rows.ContentForRow(y); ok {
			frame.Append(clip(content, geo.Cols))
		} else if y == bannerRow {
			s.drawBanner(frame, geo.Cols)
		} else {
			frame.AppendString(width.Truncate(s.placeholder, geo.Cols))
		}

		frame.AppendString(ansi.EraseLine)
		if y < geo.Rows-1 {
			frame.AppendString("\r\n")
		}
	}
}

// drawBanner appends the banner centered in cols, led by the
// placeholder marker when there is room for it. Widths are measured in
// terminal columns.
func (s *Screen) drawBanner(frame *FrameBuffer, cols int) {
	banner := width.Truncate(s.banner, cols)

	padding := (cols - width.Of(banner)) / 2
	if mark := width.Of(s.placeholder); padding > 0 && padding >= mark {
		frame.AppendString(s.placeholder)
		padding -= mark
	}
	for ; padding > 0; padding-- {
		frame.AppendByte(' ')
	}
	frame.AppendString(banner)
}

func clip(p []byte, n int) []byte {
	if len(p) > n {
		return p[:n]
	}
	return p
}
