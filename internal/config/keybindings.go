// ABOUTME: Parses key names from config into control bytes
// ABOUTME: Accepts "ctrl+<letter>" and caret notation "^<letter>"

package config

import (
	"fmt"
	"strings"

	"github.com/mauromedda/xim/pkg/tui/key"
)

// ParseCtrlKey converts "ctrl+q", "Ctrl+Q" or "^Q" to the control byte
// the terminal sends for that chord (0x11 for q).
func ParseCtrlKey(name string) (byte, error) {
	s := strings.ToLower(strings.TrimSpace(name))

	var letter string
	switch {
	case strings.HasPrefix(s, "ctrl+"):
		letter = strings.TrimPrefix(s, "ctrl+")
	case strings.HasPrefix(s, "^"):
		letter = strings.TrimPrefix(s, "^")
	default:
		return 0, fmt.Errorf("unsupported key %q: want ctrl+<letter>", name)
	}

	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return 0, fmt.Errorf("unsupported key %q: want ctrl+<letter>", name)
	}
	return key.Ctrl(letter[0]), nil
}
