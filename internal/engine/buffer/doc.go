// Package buffer provides the growable character sequence underlying a
// document. Offsets are rune positions, not byte positions, so edits
// address whole characters in multi-byte text ("Привет", emoji).
//
// Basic usage:
//
//	buf := buffer.FromString("Hello World")
//	buf.Insert(5, ",")    // "Hello, World"
//	buf.Delete(5, 6)      // "Hello World"
//	buf.Append("!")       // "Hello World!"
//
// Validation:
//
// CheckOffset and CheckRange expose the precondition checks used by the
// write operations, so callers that must do work before mutating (for
// example capturing an undo snapshot) can reject bad arguments first.
// A failed check means the corresponding write operation would fail
// without modifying the buffer.
//
// Buffer is not safe for concurrent use. An instance belongs to one
// document; callers that share one must serialize access externally.
package buffer
