package document

import (
	"github.com/google/uuid"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/history"
)

// Document is a mutable text with a linear undo history.
// It is the sole owner of its buffer and its history.
type Document struct {
	id  string
	buf *buffer.Buffer

	history      *history.Stack
	historyLimit int

	noopSnapshots bool
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		id:            uuid.NewString(),
		buf:           buffer.New(),
		noopSnapshots: true,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.historyLimit > 0 {
		d.history = history.NewStackWithLimit(d.historyLimit)
	} else {
		d.history = history.NewStack()
	}

	return d
}

// FromString creates a document with initial content.
// Initial content records no snapshot.
func FromString(text string, opts ...Option) *Document {
	return New(append([]Option{WithText(text)}, opts...)...)
}

// ID returns the document's unique identifier.
func (d *Document) ID() string {
	return d.id
}

// Text returns the current document content.
func (d *Document) Text() string {
	return d.buf.String()
}

// Len returns the document length in runes.
func (d *Document) Len() int {
	return d.buf.Len()
}

// HistoryLen returns the number of undoable states.
func (d *Document) HistoryLen() int {
	return d.history.Len()
}

// CanUndo returns true if there is anything to undo.
func (d *Document) CanUndo() bool {
	return !d.history.IsEmpty()
}

// snapshot records the current text onto history.
// Called after validation and before every edit. noop marks edits that
// cannot change the text; those are skipped when no-op snapshots are
// disabled.
func (d *Document) snapshot(noop bool) {
	if noop && !d.noopSnapshots {
		return
	}
	d.history.Push(history.NewSnapshot(d.buf.String()))
}

// Append appends text to the end of the document.
func (d *Document) Append(text string) *Document {
	d.snapshot(text == "")
	d.buf.Append(text)
	return d
}

// Insert inserts text at the given rune offset.
// Valid offsets are 0 through Len() inclusive; anything else returns
// buffer.ErrOffsetOutOfRange with buffer and history unchanged.
func (d *Document) Insert(offset int, text string) (*Document, error) {
	if err := d.buf.CheckOffset(offset); err != nil {
		return d, err
	}

	d.snapshot(text == "")
	if err := d.buf.Insert(offset, text); err != nil {
		return d, err
	}
	return d, nil
}

// Delete removes the runes in [start, end).
// An invalid range returns buffer.ErrRangeInvalid with buffer and
// history unchanged.
func (d *Document) Delete(start, end int) (*Document, error) {
	if err := d.buf.CheckRange(start, end); err != nil {
		return d, err
	}

	d.snapshot(start == end)
	if err := d.buf.Delete(start, end); err != nil {
		return d, err
	}
	return d, nil
}

// Replace removes the runes in [start, end) and inserts text at start.
// An invalid range returns buffer.ErrRangeInvalid with buffer and
// history unchanged.
func (d *Document) Replace(start, end int, text string) (*Document, error) {
	if err := d.buf.CheckRange(start, end); err != nil {
		return d, err
	}

	d.snapshot(start == end && text == "")
	if err := d.buf.Replace(start, end, text); err != nil {
		return d, err
	}
	return d, nil
}

// Undo restores the most recent snapshot and discards it.
// Returns false if there is nothing to undo; the text is unchanged.
func (d *Document) Undo() bool {
	snap, ok := d.history.Pop()
	if !ok {
		return false
	}

	d.buf.SetString(snap.State())
	return true
}

// ClearHistory drops all undoable states.
func (d *Document) ClearHistory() {
	d.history.Clear()
}
