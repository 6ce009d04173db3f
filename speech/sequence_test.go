package speech

import (
	"errors"
	"testing"
)

// TestIsBlankText tests blank detection over the blank character set.
func TestIsBlankText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"empty", "", true},
		{"space", " ", true},
		{"newlines", "\r\n", true},
		{"nul", "\x00", true},
		{"non breaking space", " ", true},
		{"mixed blanks", " \n\r  ", true},
		{"word", "hello", false},
		{"word with padding", "  hi  ", false},
		{"tab is not blank", "\t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsBlankText(tt.text); result != tt.expected {
				t.Errorf("IsBlankText(%q) = %v, want %v", tt.text, result, tt.expected)
			}
		})
	}
}

// TestValidate tests sequence shape validation.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		seq     Sequence
		wantErr error
	}{
		{"empty", Sequence{}, nil},
		{"text and commands", Sequence{Text("hi"), LangChangeCommand{Lang: "fr"}, EndUtteranceCommand{}}, nil},
		{"nil item", Sequence{Text("hi"), nil}, ErrNilSequenceItem},
		{"foreign item", Sequence{foreignItem{}}, ErrBadSequenceItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.seq)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

type foreignItem struct{}

func (foreignItem) isItem() {}

// TestSequenceHasText tests the text presence predicates.
func TestSequenceHasText(t *testing.T) {
	commands := Sequence{LangChangeCommand{}, BeepCommand{Hz: 440}}
	if commands.HasText() {
		t.Error("HasText() = true for command-only sequence")
	}
	blank := Sequence{Text(" ")}
	if !blank.HasText() {
		t.Error("HasText() = false for blank text chunk")
	}
}
