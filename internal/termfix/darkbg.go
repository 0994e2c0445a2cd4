// ABOUTME: Pins the lipgloss default renderer to stderr with a fixed dark background
// ABOUTME: Import with _ from main so styled diagnostics never query the terminal

package termfix

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// Diagnostics go to stderr. Fixing the background up front keeps
	// lipgloss from sending OSC 11 to a terminal that may still be in
	// raw mode, where the reply would land in the key stream.
	r := lipgloss.NewRenderer(os.Stderr)
	r.SetHasDarkBackground(true)
	lipgloss.SetDefaultRenderer(r)
}
