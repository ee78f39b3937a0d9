// Package history provides snapshot-based undo storage for the document
// engine.
//
// A Snapshot is an immutable capture of the full document text at one
// point in time. The Stack stores snapshots in strict LIFO order:
//
//	stack := history.NewStack()
//	stack.Push(history.NewSnapshot(doc.Text()))
//	// ... edit ...
//	if snap, ok := stack.Pop(); ok {
//	    restore(snap.State())
//	}
//
// Pop reports emptiness through its second return value rather than an
// error; callers branch on the bool instead of treating an empty stack
// as a failure. A popped snapshot leaves the stack permanently; there
// is no redo.
//
// The stack is unbounded by default. NewStackWithLimit caps the number
// of retained snapshots, discarding the oldest entries first, and Clear
// drops all history at once. Long edit sessions on large text should
// use one of the two, since each snapshot holds a full copy of the
// text.
package history
