// Package speech turns structured document content into ordered sequences
// of speakable text chunks and embedded commands, describing only what
// changed since the same subject was last described. Playback, the document
// model and symbol dictionaries are external collaborators.
package speech

import (
	"fmt"
	"time"
)

// Item is one element of a speech sequence: either a Text chunk or one of
// the command types. The set of implementations is closed; the validator
// treats anything else as a contract violation.
type Item interface {
	isItem()
}

// Text is a chunk of speakable text.
type Text string

func (Text) isItem() {}

// Command is a non-text directive embedded in a sequence.
type Command interface {
	Item
	isCommand()
}

// LangChangeCommand switches the spoken language for following text. An
// empty Lang returns to the default language.
type LangChangeCommand struct {
	Lang string
}

func (LangChangeCommand) isItem()    {}
func (LangChangeCommand) isCommand() {}

// String implements fmt.Stringer for logging.
func (c LangChangeCommand) String() string {
	if c.Lang == "" {
		return "LangChange(default)"
	}
	return fmt.Sprintf("LangChange(%s)", c.Lang)
}

// PitchCommand offsets the synthesizer pitch. A zero offset resets pitch to
// its configured base.
type PitchCommand struct {
	Offset int
}

func (PitchCommand) isItem()    {}
func (PitchCommand) isCommand() {}

// String implements fmt.Stringer for logging.
func (c PitchCommand) String() string {
	if c.Offset == 0 {
		return "Pitch(reset)"
	}
	return fmt.Sprintf("Pitch(%+d)", c.Offset)
}

// BeepCommand plays a tone.
type BeepCommand struct {
	Hz       float64
	Duration time.Duration
}

func (BeepCommand) isItem()    {}
func (BeepCommand) isCommand() {}

// String implements fmt.Stringer for logging.
func (c BeepCommand) String() string {
	return fmt.Sprintf("Beep(%.0fhz %s)", c.Hz, c.Duration)
}

// BreakCommand inserts a pause.
type BreakCommand struct {
	Duration time.Duration
}

func (BreakCommand) isItem()    {}
func (BreakCommand) isCommand() {}

// String implements fmt.Stringer for logging.
func (c BreakCommand) String() string {
	return fmt.Sprintf("Break(%s)", c.Duration)
}

// CharacterModeCommand toggles isolated per-character pronunciation.
type CharacterModeCommand struct {
	Enabled bool
}

func (CharacterModeCommand) isItem()    {}
func (CharacterModeCommand) isCommand() {}

// String implements fmt.Stringer for logging.
func (c CharacterModeCommand) String() string {
	return fmt.Sprintf("CharacterMode(%t)", c.Enabled)
}

// EndUtteranceCommand forces an utterance boundary.
type EndUtteranceCommand struct{}

func (EndUtteranceCommand) isItem()    {}
func (EndUtteranceCommand) isCommand() {}

// String implements fmt.Stringer for logging.
func (EndUtteranceCommand) String() string { return "EndUtterance" }

// SuppressNormalizationCommand toggles Unicode normalization of following
// text within the final pass. Sequences that normalize themselves bracket
// their output with this to avoid double normalization.
type SuppressNormalizationCommand struct {
	Suppress bool
}

func (SuppressNormalizationCommand) isItem()    {}
func (SuppressNormalizationCommand) isCommand() {}

// String implements fmt.Stringer for logging.
func (c SuppressNormalizationCommand) String() string {
	return fmt.Sprintf("SuppressNormalization(%t)", c.Suppress)
}
