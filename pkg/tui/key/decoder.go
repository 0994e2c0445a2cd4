// ABOUTME: Decoder turns a timed raw byte stream into logical keys.
// ABOUTME: Bounded lookahead: at most three bytes after ESC, incomplete input decodes to Escape.

package key

// ByteSource is a timed, unbuffered byte reader. PollByte returns
// ok == false with a nil error when the read timeout elapsed without data.
type ByteSource interface {
	PollByte() (b byte, ok bool, err error)
}

// Decoder reads logical keys from a ByteSource.
type Decoder struct {
	src ByteSource
}

// NewDecoder returns a Decoder reading from src.
func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// ReadKey blocks until one logical key is available. Timeouts while
// waiting for the first byte are retried; any read error is returned.
// The returned KeyChar is not normalized; callers reclassify control
// bytes with Key.Normalize.
func (d *Decoder) ReadKey() (Key, error) {
	var b byte
	for {
		c, ok, err := d.src.PollByte()
		if err != nil {
			return Key{}, err
		}
		if ok {
			b = c
			break
		}
	}

	if b != escByte {
		return Char(b), nil
	}
	return d.readEscape()
}

// readEscape decodes the bytes following ESC.
func (d *Decoder) readEscape() (Key, error) {
	var seq [2]byte

	for i := range 2 {
		c, ok, err := d.src.PollByte()
		if err != nil {
			return Key{}, err
		}
		if !ok {
			return Key{Type: KeyEscape}, nil
		}
		seq[i] = c
	}

	if seq[0] == '[' && seq[1] >= '0' && seq[1] <= '9' {
		c, ok, err := d.src.PollByte()
		if err != nil {
			return Key{}, err
		}
		if !ok || c != '~' {
			return Key{Type: KeyEscape}, nil
		}
		if t, found := tildeSequences[seq[1]]; found {
			return Key{Type: t}, nil
		}
		return Key{Type: KeyEscape}, nil
	}

	if t, found := finalSequences[[2]byte{seq[0], seq[1]}]; found {
		return Key{Type: t}, nil
	}
	return Key{Type: KeyEscape}, nil
}
