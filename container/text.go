package container

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/storekit/storage"
)

// Text is a growable UTF-8 text buffer backed by a Storage, composed over
// Vec[byte]. The stored bytes form valid UTF-8 at all times: any mutation
// that would break that is rejected with ErrInvalidEncoding or
// ErrNotCharBoundary before a single byte is committed.
type Text struct {
	vec Vec[byte]
}

// NewText constructs an empty text buffer over s.
func NewText(s storage.Storage[byte]) *Text {
	return &Text{vec: Vec[byte]{store: s}}
}

// NewTextFromString constructs a text buffer over s holding str.
func NewTextFromString(s storage.Storage[byte], str string) (*Text, error) {
	t := NewText(s)
	if err := t.PushString(str); err != nil {
		return nil, err
	}
	return t, nil
}

// Len returns the length in bytes (not runes).
func (t *Text) Len() int {
	return t.vec.Len()
}

// Cap returns the reservation's byte capacity.
func (t *Text) Cap() int {
	return t.vec.Cap()
}

// IsEmpty reports whether the buffer holds no bytes.
func (t *Text) IsEmpty() bool {
	return t.vec.Len() == 0
}

// String returns a copy of the contents.
func (t *Text) String() string {
	return string(t.vec.Slice())
}

// Bytes returns a live view of the contents. Callers must not mutate the
// view into invalid UTF-8; the view is invalidated by any growing mutation.
func (t *Text) Bytes() []byte {
	return t.vec.Slice()
}

// PushString appends str. Go strings are not guaranteed to hold valid
// UTF-8, so the input is validated first; on any failure the buffer is
// unchanged.
func (t *Text) PushString(str string) error {
	if !utf8.ValidString(str) {
		return ErrInvalidEncoding
	}
	return t.vec.Append([]byte(str)...)
}

// PushRune appends a single codepoint.
func (t *Text) PushRune(r rune) error {
	if !utf8.ValidRune(r) {
		return ErrInvalidEncoding
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	return t.vec.Append(enc[:n]...)
}

// AppendBytes appends b after validating it is well-formed UTF-8 on its
// own. On any failure the buffer is unchanged.
func (t *Text) AppendBytes(b []byte) error {
	if !utf8.Valid(b) {
		return ErrInvalidEncoding
	}
	return t.vec.Append(b...)
}

// AppendUTF16LE transcodes UTF-16 little-endian input to UTF-8 and appends
// it. Unpaired surrogates decode to U+FFFD; an odd-length input fails with
// ErrInvalidEncoding. The buffer is unchanged on failure.
func (t *Text) AppendUTF16LE(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if len(b)%2 != 0 {
		return fmt.Errorf("%w: utf-16 input has odd length %d", ErrInvalidEncoding, len(b))
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	decoded, err := dec.Bytes(b)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return t.vec.Append(decoded...)
}

// AppendWindows1252 transcodes Windows-1252 (Latin-1) input to UTF-8 and
// appends it. The buffer is unchanged on failure.
func (t *Text) AppendWindows1252(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	// Fast path: ASCII is identical in Windows-1252 and UTF-8.
	if isASCII(b) {
		return t.vec.Append(b...)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return t.vec.Append(decoded...)
}

// InsertString inserts str at byte position pos, which must lie on a
// codepoint boundary. On any failure the buffer is unchanged.
func (t *Text) InsertString(pos int, str string) error {
	if pos < 0 || pos > t.vec.Len() {
		return ErrIndexRange
	}
	if !t.isCharBoundary(pos) {
		return ErrNotCharBoundary
	}
	if !utf8.ValidString(str) {
		return ErrInvalidEncoding
	}
	if str == "" {
		return nil
	}
	if err := t.vec.ensure(len(str)); err != nil {
		return err
	}
	region := t.vec.region()
	copy(region[pos+len(str):t.vec.length+len(str)], region[pos:t.vec.length])
	copy(region[pos:], str)
	t.vec.length += len(str)
	return nil
}

// PopRune removes and returns the last codepoint.
func (t *Text) PopRune() (rune, bool) {
	region := t.vec.Slice()
	if len(region) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(region)
	t.vec.Truncate(len(region) - size)
	return r, true
}

// Truncate drops bytes from the end until Len is at most n. n must lie on a
// codepoint boundary; capacity is unchanged.
func (t *Text) Truncate(n int) error {
	if n >= t.vec.Len() {
		return nil
	}
	if n < 0 {
		n = 0
	}
	if !t.isCharBoundary(n) {
		return ErrNotCharBoundary
	}
	t.vec.Truncate(n)
	return nil
}

// Clear drops all bytes, keeping the reservation.
func (t *Text) Clear() {
	t.vec.Clear()
}

// Reserve makes room for at least extra more bytes using the geometric
// growth policy.
func (t *Text) Reserve(extra int) error {
	return t.vec.Reserve(extra)
}

// ReserveExact makes room for exactly Len+extra bytes.
func (t *Text) ReserveExact(extra int) error {
	return t.vec.ReserveExact(extra)
}

// ShrinkToFit trims the reservation to exactly Len bytes.
func (t *Text) ShrinkToFit() error {
	return t.vec.ShrinkToFit()
}

// Close releases the reservation back to the Storage. The Text is empty and
// reusable afterwards; calling Close twice is safe.
func (t *Text) Close() {
	t.vec.Close()
}

// isCharBoundary reports whether byte position pos does not split a
// multi-byte codepoint. Positions 0 and Len always qualify.
func (t *Text) isCharBoundary(pos int) bool {
	if pos == 0 || pos == t.vec.Len() {
		return true
	}
	return utf8.RuneStart(t.vec.Slice()[pos])
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
