package history

// Stack stores snapshots in LIFO order.
// It is owned by a single document and is not safe for concurrent use.
type Stack struct {
	entries []Snapshot

	// maxEntries caps retained snapshots; 0 means unbounded.
	maxEntries int
}

// NewStack creates an empty, unbounded stack.
func NewStack() *Stack {
	return &Stack{}
}

// NewStackWithLimit creates a stack that retains at most maxEntries
// snapshots, discarding the oldest first. A limit of 0 or less means
// unbounded.
func NewStackWithLimit(maxEntries int) *Stack {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &Stack{maxEntries: maxEntries}
}

// Push adds a snapshot to the top of the stack.
func (s *Stack) Push(snap Snapshot) {
	s.entries = append(s.entries, snap)

	if s.maxEntries > 0 && len(s.entries) > s.maxEntries {
		excess := len(s.entries) - s.maxEntries
		s.entries = s.entries[excess:]
	}
}

// Pop removes and returns the most recently pushed snapshot.
// The second return value is false if the stack is empty.
func (s *Stack) Pop() (Snapshot, bool) {
	if len(s.entries) == 0 {
		return Snapshot{}, false
	}

	snap := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return snap, true
}

// IsEmpty returns true if the stack holds no snapshots.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of snapshots on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all snapshots.
func (s *Stack) Clear() {
	s.entries = nil
}

// MaxEntries returns the configured cap, 0 if unbounded.
func (s *Stack) MaxEntries() int {
	return s.maxEntries
}
