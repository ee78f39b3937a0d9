// Package document provides an editable text document with linear undo.
//
// A Document owns a character buffer and a history stack. Every
// mutating operation follows the same two-step contract: capture a
// snapshot of the current text onto history, then apply the edit.
// Undo pops the most recent snapshot and restores it; the popped
// snapshot is discarded (no redo).
//
// Mutators return the document so edits chain:
//
//	doc := document.New()
//	doc.Append("Привет").Append(", мир!")
//	doc.Text() // "Привет, мир!"
//	doc.Undo()
//	doc.Text() // "Привет"
//
// Insert, Delete and Replace validate their offsets before touching
// history, so a rejected edit leaves both the text and the history
// length unchanged:
//
//	if _, err := doc.Insert(3, "abc"); err != nil {
//	    // buffer and history untouched
//	}
//
// Undo past the bottom of history is a reported no-op, not an error:
// Undo returns false and the text is unchanged.
//
// By default every mutating call records a snapshot, including edits
// that cannot change the text (Append(""), Delete(i, i)). Pass
// WithNoopSnapshots(false) to suppress those entries.
//
// A Document is exclusively owned: not safe for concurrent use without
// external synchronization. Use one document per logical text.
package document
