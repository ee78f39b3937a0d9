package buffer

import "errors"

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer is a mutable, growable character sequence.
// All positions are rune offsets.
type Buffer struct {
	runes []rune
}

// New creates a new empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromString creates a buffer with initial content.
func FromString(s string) *Buffer {
	return &Buffer{runes: []rune(s)}
}

// String returns the full buffer content.
func (b *Buffer) String() string {
	return string(b.runes)
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	return len(b.runes) == 0
}

// CheckOffset validates an insertion offset.
// Valid offsets are 0 through Len() inclusive.
func (b *Buffer) CheckOffset(offset int) error {
	if offset < 0 || offset > len(b.runes) {
		return ErrOffsetOutOfRange
	}
	return nil
}

// CheckRange validates a half-open range [start, end).
func (b *Buffer) CheckRange(start, end int) error {
	if start < 0 || start > end || end > len(b.runes) {
		return ErrRangeInvalid
	}
	return nil
}

// Append appends text to the end of the buffer.
func (b *Buffer) Append(text string) {
	b.runes = append(b.runes, []rune(text)...)
}

// Insert inserts text at the given rune offset.
func (b *Buffer) Insert(offset int, text string) error {
	if err := b.CheckOffset(offset); err != nil {
		return err
	}

	ins := []rune(text)
	b.runes = append(b.runes[:offset], append(ins, b.runes[offset:]...)...)
	return nil
}

// Delete removes the runes in [start, end).
func (b *Buffer) Delete(start, end int) error {
	if err := b.CheckRange(start, end); err != nil {
		return err
	}

	b.runes = append(b.runes[:start], b.runes[end:]...)
	return nil
}

// Replace removes the runes in [start, end) and inserts text at start.
func (b *Buffer) Replace(start, end int, text string) error {
	if err := b.CheckRange(start, end); err != nil {
		return err
	}

	ins := []rune(text)
	b.runes = append(b.runes[:start], append(ins, b.runes[end:]...)...)
	return nil
}

// SetString replaces the entire buffer content.
// Used to restore a previously captured state.
func (b *Buffer) SetString(s string) {
	b.runes = []rune(s)
}
