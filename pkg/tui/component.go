// ABOUTME: Core render-side types: CursorPos and the RowSource collaborator interface
// ABOUTME: A document model supplies per-row bytes; absent rows render as placeholders

package tui

// CursorPos represents the cursor position in the viewport.
type CursorPos struct {
	Row int // 0-indexed row (cy)
	Col int // 0-indexed column (cx)
}

// RowSource supplies the bytes to draw for a visible row. ContentForRow
// is called once per visible row per frame; ok is false when the row
// has no content and the placeholder marker should be drawn instead.
type RowSource interface {
	ContentForRow(index int) (content []byte, ok bool)
}

// Placeholder is the RowSource used until a document model exists:
// every row is absent.
type Placeholder struct{}

// ContentForRow always reports the row as absent.
func (Placeholder) ContentForRow(int) ([]byte, bool) {
	return nil, false
}

// RowFunc adapts an ordinary function to the RowSource interface.
type RowFunc func(index int) ([]byte, bool)

// ContentForRow calls f(index).
func (f RowFunc) ContentForRow(index int) ([]byte, bool) {
	return f(index)
}
