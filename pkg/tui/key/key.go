// ABOUTME: Defines the Key type: the closed set of logical keys the editor reacts to.
// ABOUTME: Control-range characters are reclassified by Normalize before dispatch.

package key

import "fmt"

// Key represents a decoded keyboard input event.
type Key struct {
	Type KeyType
	Byte byte // For KeyChar and KeyCtrl
}

// KeyType enumerates the kinds of logical keys.
type KeyType int

const (
	KeyChar     KeyType = iota // Single input byte
	KeyCtrl                    // Control-range byte (0x00..0x1F, 0x7F)
	KeyUp                      // Arrow up
	KeyDown                    // Arrow down
	KeyLeft                    // Arrow left
	KeyRight                   // Arrow right
	KeyHome                    // Home
	KeyEnd                     // End
	KeyDelete                  // Delete key
	KeyPageUp                  // Page Up
	KeyPageDown                // Page Down
	KeyEscape                  // Bare, incomplete or unrecognized escape
)

// escByte starts every escape sequence.
const escByte = 0x1b

// Ctrl returns the control byte produced by holding Ctrl with c.
func Ctrl(c byte) byte {
	return c & 0x1f
}

// Char returns the Key for a plain input byte.
func Char(b byte) Key {
	return Key{Type: KeyChar, Byte: b}
}

// IsControl reports whether b falls in the ASCII control range.
func IsControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// Normalize reinterprets a control-range KeyChar as KeyCtrl.
// All other keys are returned unchanged.
func (k Key) Normalize() Key {
	if k.Type == KeyChar && IsControl(k.Byte) {
		return Key{Type: KeyCtrl, Byte: k.Byte}
	}
	return k
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyDelete:   "Delete",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyEscape:   "Escape",
}

// String returns a human-readable representation of the Key for debug logs.
func (k Key) String() string {
	switch k.Type {
	case KeyChar:
		if IsControl(k.Byte) {
			return fmt.Sprintf("0x%02x", k.Byte)
		}
		return string(rune(k.Byte))
	case KeyCtrl:
		if k.Byte == 0x7f {
			return "Ctrl+?"
		}
		return fmt.Sprintf("Ctrl+%c", k.Byte|0x60)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}
