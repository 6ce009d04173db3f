package speech

import (
	"reflect"
	"testing"
)

// mockOutput records every sequence handed to the playback collaborator.
type mockOutput struct {
	spoken     []Sequence
	priorities []Priority
	cancels    int
}

func (m *mockOutput) Speak(seq Sequence, priority Priority) {
	m.spoken = append(m.spoken, seq)
	m.priorities = append(m.priorities, priority)
}

func (m *mockOutput) Cancel() { m.cancels++ }

func newTestEngine(t *testing.T, cfg Config, opts ...Option) (*Engine, *mockOutput) {
	t.Helper()
	out := &mockOutput{}
	return New(cfg, out, opts...), out
}

func assertSequence(t *testing.T, got, want Sequence) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %s, want %s", got.String(), want.String())
	}
}
