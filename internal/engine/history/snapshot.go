package history

import "time"

// Snapshot is an immutable capture of the full document text at one
// point in time. The zero value is a snapshot of empty text.
type Snapshot struct {
	state   string
	takenAt time.Time
}

// NewSnapshot captures the given text as a snapshot.
func NewSnapshot(state string) Snapshot {
	return Snapshot{
		state:   state,
		takenAt: time.Now(),
	}
}

// State returns the captured text.
func (s Snapshot) State() string {
	return s.state
}

// TakenAt returns when the snapshot was captured.
func (s Snapshot) TakenAt() time.Time {
	return s.takenAt
}
