package speech

// Priority orders sequences in the downstream playback queue.
type Priority int

const (
	// PriorityNormal queues after all other speech.
	PriorityNormal Priority = iota
	// PriorityNext queues after the current utterance.
	PriorityNext
	// PriorityNow interrupts the current utterance.
	PriorityNow
)

// String returns the priority name.
func (p Priority) String() string {
	switch p {
	case PriorityNormal:
		return "normal"
	case PriorityNext:
		return "next"
	case PriorityNow:
		return "now"
	}
	return "unknown"
}

// Output is the playback collaborator. Cancellation of in-flight speech is
// entirely its responsibility; the engine keeps no cancellation state.
type Output interface {
	Speak(seq Sequence, priority Priority)
	Cancel()
}
