package main

import (
	"strings"
	"testing"

	"github.com/voxhollow/descant/speech"
	"github.com/voxhollow/descant/speech/characters"
)

// TestParseSymbolLevel checks name and numeric forms of the symbols flag.
func TestParseSymbolLevel(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    characters.SymbolLevel
		wantErr bool
	}{
		{name: "none", in: "none", want: characters.LevelNone},
		{name: "some", in: "some", want: characters.LevelSome},
		{name: "most", in: "most", want: characters.LevelMost},
		{name: "all", in: "all", want: characters.LevelAll},
		{name: "character", in: "character", want: characters.LevelChar},
		{name: "empty defaults to some", in: "", want: characters.LevelSome},
		{name: "mixed case", in: "All", want: characters.LevelAll},
		{name: "numeric", in: "200", want: characters.LevelMost},
		{name: "unknown word", in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSymbolLevel(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseSymbolLevel(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSymbolLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseSymbolLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestRendererSpeak checks that text is printed and commands are hidden
// unless requested.
func TestRendererSpeak(t *testing.T) {
	seq := speech.Sequence{
		speech.LangChangeCommand{Lang: "en"},
		speech.Text("hello world"),
	}

	t.Run("text only", func(t *testing.T) {
		var buf strings.Builder
		r := newRenderer(&buf, 0, false)
		r.Speak(seq, speech.PriorityNormal)

		out := buf.String()
		if !strings.Contains(out, "hello world") {
			t.Errorf("Speak output = %q, want text %q", out, "hello world")
		}
		if strings.Contains(out, "LangChange") {
			t.Errorf("Speak output = %q, commands should be hidden", out)
		}
	})

	t.Run("with commands", func(t *testing.T) {
		var buf strings.Builder
		r := newRenderer(&buf, 0, true)
		r.Speak(seq, speech.PriorityNormal)

		if out := buf.String(); !strings.Contains(out, "LangChange(en)") {
			t.Errorf("Speak output = %q, want command %q", out, "LangChange(en)")
		}
	})

	t.Run("empty sequence is silent", func(t *testing.T) {
		var buf strings.Builder
		r := newRenderer(&buf, 0, false)
		r.Speak(speech.Sequence{speech.LangChangeCommand{Lang: "en"}}, speech.PriorityNormal)

		if out := buf.String(); out != "" {
			t.Errorf("Speak output = %q, want empty", out)
		}
	})

	t.Run("priority tag", func(t *testing.T) {
		var buf strings.Builder
		r := newRenderer(&buf, 0, false)
		r.Speak(seq, speech.PriorityNow)

		if out := buf.String(); !strings.Contains(out, "(now)") {
			t.Errorf("Speak output = %q, want priority tag %q", out, "(now)")
		}
	})
}
