// ABOUTME: Table-driven tests for Key classification and debug names.
// ABOUTME: Validates Ctrl, Normalize and String for characters, control bytes and navigation keys.

package key

import "testing"

func TestCtrl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    byte
		want byte
	}{
		{c: 'q', want: 0x11},
		{c: 'Q', want: 0x11},
		{c: 'a', want: 0x01},
		{c: 'z', want: 0x1a},
		{c: '[', want: 0x1b},
	}

	for _, tt := range tests {
		if got := Ctrl(tt.c); got != tt.want {
			t.Errorf("Ctrl(%q) = 0x%02x, want 0x%02x", tt.c, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Key
		want Key
	}{
		{name: "printable stays char", in: Char('a'), want: Key{Type: KeyChar, Byte: 'a'}},
		{name: "space stays char", in: Char(' '), want: Key{Type: KeyChar, Byte: ' '}},
		{name: "ctrl+q", in: Char(0x11), want: Key{Type: KeyCtrl, Byte: 0x11}},
		{name: "carriage return", in: Char('\r'), want: Key{Type: KeyCtrl, Byte: '\r'}},
		{name: "nul", in: Char(0x00), want: Key{Type: KeyCtrl, Byte: 0x00}},
		{name: "del byte", in: Char(0x7f), want: Key{Type: KeyCtrl, Byte: 0x7f}},
		{name: "high byte stays char", in: Char(0xc3), want: Key{Type: KeyChar, Byte: 0xc3}},
		{name: "arrow unchanged", in: Key{Type: KeyUp}, want: Key{Type: KeyUp}},
		{name: "escape unchanged", in: Key{Type: KeyEscape}, want: Key{Type: KeyEscape}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("%v.Normalize() = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{name: "char a", key: Char('a'), want: "a"},
		{name: "raw control char", key: Char(0x11), want: "0x11"},
		{name: "ctrl+q", key: Key{Type: KeyCtrl, Byte: 0x11}, want: "Ctrl+q"},
		{name: "ctrl+del", key: Key{Type: KeyCtrl, Byte: 0x7f}, want: "Ctrl+?"},
		{name: "arrow up", key: Key{Type: KeyUp}, want: "Up"},
		{name: "page down", key: Key{Type: KeyPageDown}, want: "PageDown"},
		{name: "escape", key: Key{Type: KeyEscape}, want: "Escape"},
		{name: "unknown", key: Key{Type: KeyType(99)}, want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
