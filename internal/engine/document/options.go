package document

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithText sets the document's initial content.
// Initial content is not an edit; it records no snapshot.
func WithText(text string) Option {
	return func(d *Document) {
		d.buf.SetString(text)
	}
}

// WithHistoryLimit caps the number of retained snapshots, discarding
// the oldest first. A limit of 0 or less means unbounded.
func WithHistoryLimit(maxEntries int) Option {
	return func(d *Document) {
		d.historyLimit = maxEntries
	}
}

// WithNoopSnapshots controls whether edits that cannot change the text
// (empty append, empty-range delete) still record a snapshot.
// Defaults to true: every mutating call consumes a history slot.
func WithNoopSnapshots(enabled bool) Option {
	return func(d *Document) {
		d.noopSnapshots = enabled
	}
}
