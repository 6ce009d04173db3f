package speech

import (
	"fmt"
	"strings"
)

// Sequence is an ordered run of text chunks and commands destined for the
// playback collaborator.
type Sequence []Item

// blankChunkChars are the characters a chunk may consist of and still be
// considered blank.
const blankChunkChars = " \n\r\x00 "

// IsBlankText reports whether text should be reported as blank.
func IsBlankText(text string) bool {
	return strings.Trim(text, blankChunkChars) == ""
}

// Validate checks the shape of a sequence before it leaves the engine.
// A failure here is a programming error, never user input: the item set is
// closed, so the only representable violations are nil entries.
func Validate(seq Sequence) error {
	for i, item := range seq {
		if item == nil {
			return fmt.Errorf("%w: index %d", ErrNilSequenceItem, i)
		}
		switch item.(type) {
		case Text, LangChangeCommand, PitchCommand, BeepCommand,
			BreakCommand, CharacterModeCommand, EndUtteranceCommand,
			SuppressNormalizationCommand:
		default:
			return fmt.Errorf("%w: index %d is %T", ErrBadSequenceItem, i, item)
		}
	}
	return nil
}

// HasText reports whether the sequence contains any text chunk at all.
func (s Sequence) HasText() bool {
	for _, item := range s {
		if _, ok := item.(Text); ok {
			return true
		}
	}
	return false
}

// appendText adds a phrase to the sequence, skipping empty strings.
func (s Sequence) appendText(text string) Sequence {
	if text == "" {
		return s
	}
	return append(s, Text(text))
}

// String renders the sequence for logs and the CLI viewer.
func (s Sequence) String() string {
	parts := make([]string, 0, len(s))
	for _, item := range s {
		switch v := item.(type) {
		case Text:
			parts = append(parts, fmt.Sprintf("%q", string(v)))
		case fmt.Stringer:
			parts = append(parts, v.String())
		default:
			parts = append(parts, fmt.Sprintf("%v", item))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
