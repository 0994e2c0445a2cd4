// ABOUTME: Pooled append-only frame buffer for one screen update; recycled via sync.Pool
// ABOUTME: The Screen composes a whole frame here and flushes it with a single write

package tui

import (
	"sync"

	"github.com/mauromedda/xim/pkg/tui/ansi"
)

// maxPooledFrame caps the capacity kept in the pool so one huge frame
// does not pin memory for the rest of the session.
const maxPooledFrame = 64 << 10

var framePool = sync.Pool{
	New: func() any {
		return &FrameBuffer{
			buf: make([]byte, 0, 4096),
		}
	},
}

// AcquireFrame gets an empty FrameBuffer from the pool.
func AcquireFrame() *FrameBuffer {
	f := framePool.Get().(*FrameBuffer)
	f.Reset()
	return f
}

// ReleaseFrame returns a FrameBuffer to the pool. Its content is
// discarded; only the capacity is reused.
func ReleaseFrame(f *FrameBuffer) {
	if f == nil || cap(f.buf) > maxPooledFrame {
		return
	}
	f.Reset()
	framePool.Put(f)
}

// FrameBuffer is a growable byte sequence holding one composed frame.
type FrameBuffer struct {
	buf []byte
}

// Append appends p to the frame.
func (f *FrameBuffer) Append(p []byte) {
	f.buf = append(f.buf, p...)
}

// AppendString appends s to the frame.
func (f *FrameBuffer) AppendString(s string) {
	f.buf = append(f.buf, s...)
}

// AppendByte appends a single byte to the frame.
func (f *FrameBuffer) AppendByte(b byte) {
	f.buf = append(f.buf, b)
}

// AppendCursorTo appends the sequence placing the cursor at the
// 0-based (row, col).
func (f *FrameBuffer) AppendCursorTo(row, col int) {
	f.buf = ansi.AppendCursorTo(f.buf, row, col)
}

// Bytes returns the composed frame. The slice is only valid until the
// next mutation or ReleaseFrame.
func (f *FrameBuffer) Bytes() []byte {
	return f.buf
}

// Len returns the number of bytes in the frame.
func (f *FrameBuffer) Len() int {
	return len(f.buf)
}

// Reset empties the frame for reuse without deallocating.
func (f *FrameBuffer) Reset() {
	f.buf = f.buf[:0]
}
