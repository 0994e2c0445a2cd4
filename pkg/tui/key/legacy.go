// ABOUTME: VT100 escape sequence tables for CSI and SS3 navigation keys.
// ABOUTME: Keyed by the bytes that follow ESC; the Decoder never looks further than these.

package key

// finalSequences maps the two bytes after ESC to a key for the
// three-byte forms ESC [ X and ESC O X.
var finalSequences = map[[2]byte]KeyType{
	// CSI sequences
	{'[', 'A'}: KeyUp,
	{'[', 'B'}: KeyDown,
	{'[', 'C'}: KeyRight,
	{'[', 'D'}: KeyLeft,
	{'[', 'H'}: KeyHome,
	{'[', 'F'}: KeyEnd,

	// SS3 variants (sent by some terminals in application mode)
	{'O', 'H'}: KeyHome,
	{'O', 'F'}: KeyEnd,
}

// tildeSequences maps the digit of ESC [ <digit> ~ to a key.
// 4 and 8 are folded into Home along with 1 and 7.
var tildeSequences = map[byte]KeyType{
	'1': KeyHome,
	'3': KeyDelete,
	'4': KeyHome,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'7': KeyHome,
	'8': KeyHome,
}
