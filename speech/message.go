package speech

import (
	"fmt"

	"github.com/voxhollow/descant/speech/document"
)

// maxSelectionReportLength is the longest selection spoken literally.
// Anything longer is reported as a character count.
const maxSelectionReportLength = 512

// MessageSpeech returns the sequence for a plain message, substituting
// "blank" for blank text.
func MessageSpeech(text string) Sequence {
	if text == "" {
		return nil
	}
	if IsBlankText(text) {
		return Sequence{Text("blank")}
	}
	return Sequence{Text(text)}
}

// SpeakMessage speaks a plain message.
func (e *Engine) SpeakMessage(text string, priority Priority) error {
	seq := MessageSpeech(text)
	if len(seq) == 0 {
		return nil
	}
	return e.Speak(seq, priority)
}

// SelectionMessageSpeech formats a selection announcement. Text at or below
// the reporting threshold is spoken literally; longer selections report a
// character count instead.
func SelectionMessageSpeech(format, text string) Sequence {
	length := len([]rune(text))
	if length <= maxSelectionReportLength {
		return MessageSpeech(fmt.Sprintf(format, text))
	}
	counted := fmt.Sprintf("%d characters", length)
	if length == 1 {
		counted = "1 character"
	}
	return MessageSpeech(fmt.Sprintf(format, counted))
}

// SpeakSelectionMessage speaks a formatted selection announcement.
func (e *Engine) SpeakSelectionMessage(format, text string, priority Priority) error {
	seq := SelectionMessageSpeech(format, text)
	if len(seq) == 0 {
		return nil
	}
	return e.Speak(seq, priority)
}

// speakTextSelected announces newly selected text.
func (e *Engine) speakTextSelected(text string, priority Priority) error {
	return e.SpeakSelectionMessage("%s selected", text, priority)
}

// SelectionChangeOptions tunes SpeakSelectionChange.
type SelectionChangeOptions struct {
	// SpeakSelected announces text that became selected.
	SpeakSelected bool
	// SpeakUnselected announces text that became unselected.
	SpeakUnselected bool
	// Generalize is set when the text may have changed between the two
	// snapshots, so deltas cannot be trusted and the whole selection is
	// described instead.
	Generalize bool
	Priority   Priority
}

// SpeakSelectionChange compares an old and a new selection range and
// announces what was selected or unselected.
func (e *Engine) SpeakSelectionChange(oldPos, newPos document.Position, opts SelectionChangeOptions) error {
	if oldPos.IsCollapsed() && newPos.IsCollapsed() {
		return nil
	}
	var selected, unselected []string

	startToStart := newPos.CompareEndpoints(oldPos, document.StartToStart)
	startToEnd := newPos.CompareEndpoints(oldPos, document.StartToEnd)
	endToStart := newPos.CompareEndpoints(oldPos, document.EndToStart)
	endToEnd := newPos.CompareEndpoints(oldPos, document.EndToEnd)

	switch {
	case opts.SpeakSelected && oldPos.IsCollapsed():
		selected = append(selected, newPos.Text())
	case opts.SpeakUnselected && newPos.IsCollapsed():
		unselected = append(unselected, oldPos.Text())
	case startToEnd > 0 || endToStart < 0:
		// Disjoint ranges: the whole old selection went away and the
		// whole new one appeared.
		if opts.SpeakSelected && !newPos.IsCollapsed() {
			selected = append(selected, newPos.Text())
		}
		if opts.SpeakUnselected && !oldPos.IsCollapsed() {
			unselected = append(unselected, oldPos.Text())
		}
	default:
		if opts.SpeakSelected && startToStart < 0 && !newPos.IsCollapsed() {
			tmp := newPos.Copy()
			tmp.SetEndpoint(oldPos, document.EndToStart)
			selected = append(selected, tmp.Text())
		}
		if opts.SpeakSelected && endToEnd > 0 && !newPos.IsCollapsed() {
			tmp := newPos.Copy()
			tmp.SetEndpoint(oldPos, document.StartToEnd)
			selected = append(selected, tmp.Text())
		}
		if startToStart > 0 && !oldPos.IsCollapsed() {
			tmp := oldPos.Copy()
			tmp.SetEndpoint(newPos, document.EndToStart)
			unselected = append(unselected, tmp.Text())
		}
		if endToEnd < 0 && !oldPos.IsCollapsed() {
			tmp := oldPos.Copy()
			tmp.SetEndpoint(newPos, document.StartToEnd)
			unselected = append(unselected, tmp.Text())
		}
	}

	if opts.SpeakSelected {
		if !opts.Generalize {
			for _, text := range selected {
				if err := e.speakTextSelected(e.symbolizeSingleChar(text), opts.Priority); err != nil {
					return err
				}
			}
		} else if len(selected) > 0 {
			if err := e.speakTextSelected(e.symbolizeSingleChar(newPos.Text()), opts.Priority); err != nil {
				return err
			}
		}
	}
	if opts.SpeakUnselected {
		if !opts.Generalize {
			for _, text := range unselected {
				if err := e.SpeakSelectionMessage("%s unselected", e.symbolizeSingleChar(text), opts.Priority); err != nil {
					return err
				}
			}
		} else if len(unselected) > 0 {
			if !newPos.IsCollapsed() {
				if err := e.SpeakSelectionMessage("%s selected instead", e.symbolizeSingleChar(newPos.Text()), opts.Priority); err != nil {
					return err
				}
			} else if err := e.SpeakMessage("selection removed", opts.Priority); err != nil {
				return err
			}
		}
	}
	return nil
}

// symbolizeSingleChar replaces a one-character string with its spoken
// symbol so selecting punctuation stays audible.
func (e *Engine) symbolizeSingleChar(text string) string {
	if len([]rune(text)) != 1 {
		return text
	}
	if symbol, ok := e.symbols.Symbol(e.Locale(), text); ok {
		return symbol
	}
	return text
}
