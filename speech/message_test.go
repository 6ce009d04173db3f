package speech

import (
	"strings"
	"testing"

	"github.com/voxhollow/descant/speech/document"
)

// spanPosition is an offset range over a fixed document string.
type spanPosition struct {
	doc        string
	start, end int
}

func (p *spanPosition) TextWithFields() []document.Token {
	return []document.Token{document.TextToken(p.Text())}
}

func (p *spanPosition) Text() string { return p.doc[p.start:p.end] }

func (p *spanPosition) IsCollapsed() bool { return p.start == p.end }

func (p *spanPosition) CompareEndpoints(other document.Position, which document.EndpointPair) int {
	o := other.(*spanPosition)
	switch which {
	case document.StartToStart:
		return p.start - o.start
	case document.StartToEnd:
		return p.start - o.end
	case document.EndToStart:
		return p.end - o.start
	default:
		return p.end - o.end
	}
}

func (p *spanPosition) Copy() document.Position {
	c := *p
	return &c
}

func (p *spanPosition) SetEndpoint(other document.Position, which document.EndpointPair) {
	o := other.(*spanPosition)
	switch which {
	case document.StartToStart:
		p.start = o.start
	case document.StartToEnd:
		p.start = o.end
	case document.EndToStart:
		p.end = o.start
	default:
		p.end = o.end
	}
}

// TestMessageSpeech tests plain message formatting.
func TestMessageSpeech(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Sequence
	}{
		{"plain", "hello", Sequence{Text("hello")}},
		{"blank", " \n", Sequence{Text("blank")}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSequence(t, MessageSpeech(tt.text), tt.expected)
		})
	}
}

// TestSelectionMessageSpeech tests the literal-versus-count threshold.
func TestSelectionMessageSpeech(t *testing.T) {
	atLimit := strings.Repeat("a", 512)
	seq := SelectionMessageSpeech("%s selected", atLimit)
	assertSequence(t, seq, Sequence{Text(atLimit + " selected")})

	overLimit := strings.Repeat("a", 513)
	seq = SelectionMessageSpeech("%s selected", overLimit)
	assertSequence(t, seq, Sequence{Text("513 characters selected")})
}

// TestSpeakSelectionChange tests endpoint diffing between two selection
// snapshots.
func TestSpeakSelectionChange(t *testing.T) {
	const doc = "hello world"
	opts := SelectionChangeOptions{SpeakSelected: true, SpeakUnselected: true}

	spokenText := func(out *mockOutput) []string {
		var texts []string
		for _, seq := range out.spoken {
			var b strings.Builder
			for _, item := range seq {
				if t, ok := item.(Text); ok {
					b.WriteString(strings.TrimSpace(string(t)))
				}
			}
			texts = append(texts, b.String())
		}
		return texts
	}

	t.Run("extend speaks the delta", func(t *testing.T) {
		e, out := newTestEngine(t, DefaultConfig())
		oldPos := &spanPosition{doc: doc, start: 0, end: 5}
		newPos := &spanPosition{doc: doc, start: 0, end: 11}
		if err := e.SpeakSelectionChange(oldPos, newPos, opts); err != nil {
			t.Fatalf("SpeakSelectionChange() error = %v", err)
		}
		want := []string{"world selected"}
		if got := spokenText(out); !equalStrings(got, want) {
			t.Errorf("spoken = %v, want %v", got, want)
		}
	})

	t.Run("shrink speaks the unselected delta", func(t *testing.T) {
		e, out := newTestEngine(t, DefaultConfig())
		oldPos := &spanPosition{doc: doc, start: 0, end: 11}
		newPos := &spanPosition{doc: doc, start: 0, end: 5}
		if err := e.SpeakSelectionChange(oldPos, newPos, opts); err != nil {
			t.Fatalf("SpeakSelectionChange() error = %v", err)
		}
		want := []string{"world unselected"}
		if got := spokenText(out); !equalStrings(got, want) {
			t.Errorf("spoken = %v, want %v", got, want)
		}
	})

	t.Run("disjoint speaks both ranges", func(t *testing.T) {
		e, out := newTestEngine(t, DefaultConfig())
		oldPos := &spanPosition{doc: doc, start: 0, end: 5}
		newPos := &spanPosition{doc: doc, start: 6, end: 11}
		if err := e.SpeakSelectionChange(oldPos, newPos, opts); err != nil {
			t.Fatalf("SpeakSelectionChange() error = %v", err)
		}
		want := []string{"world selected", "hello unselected"}
		if got := spokenText(out); !equalStrings(got, want) {
			t.Errorf("spoken = %v, want %v", got, want)
		}
	})

	t.Run("collapse with generalize reports removal", func(t *testing.T) {
		e, out := newTestEngine(t, DefaultConfig())
		genOpts := opts
		genOpts.Generalize = true
		oldPos := &spanPosition{doc: doc, start: 0, end: 5}
		newPos := &spanPosition{doc: doc, start: 3, end: 3}
		if err := e.SpeakSelectionChange(oldPos, newPos, genOpts); err != nil {
			t.Fatalf("SpeakSelectionChange() error = %v", err)
		}
		want := []string{"selection removed"}
		if got := spokenText(out); !equalStrings(got, want) {
			t.Errorf("spoken = %v, want %v", got, want)
		}
	})

	t.Run("both collapsed is silent", func(t *testing.T) {
		e, out := newTestEngine(t, DefaultConfig())
		oldPos := &spanPosition{doc: doc, start: 3, end: 3}
		newPos := &spanPosition{doc: doc, start: 4, end: 4}
		if err := e.SpeakSelectionChange(oldPos, newPos, opts); err != nil {
			t.Fatalf("SpeakSelectionChange() error = %v", err)
		}
		if len(out.spoken) != 0 {
			t.Errorf("spoken count = %d, want 0", len(out.spoken))
		}
	})

	t.Run("single punctuation speaks its symbol", func(t *testing.T) {
		e, out := newTestEngine(t, DefaultConfig())
		oldPos := &spanPosition{doc: "a.b", start: 1, end: 1}
		newPos := &spanPosition{doc: "a.b", start: 1, end: 2}
		if err := e.SpeakSelectionChange(oldPos, newPos, opts); err != nil {
			t.Fatalf("SpeakSelectionChange() error = %v", err)
		}
		want := []string{"dot selected"}
		if got := spokenText(out); !equalStrings(got, want) {
			t.Errorf("spoken = %v, want %v", got, want)
		}
	})
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
