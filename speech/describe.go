package speech

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/voxhollow/descant/speech/document"
)

// PositionOptions configures one position description.
type PositionOptions struct {
	// Subject keys the cached snapshot the position is diffed against.
	// Empty disables caching: the position is described from scratch and
	// nothing is remembered.
	Subject string

	// Reason is why the position is being described.
	Reason Reason

	// Unit is the granularity the position was expanded to.
	Unit document.Unit

	// SuppressBlanks silences the "blank" announcement for empty content.
	SuppressBlanks bool

	// OnlyInitialFields stops after the enclosing boundary and format
	// announcements, skipping the content itself.
	OnlyInitialFields bool
}

// PositionSpeech describes a position relative to the subject's cached
// snapshot. The utterances come back as a finite stream supporting early
// stop; the second result reports whether the position's own content
// produced speech. The snapshot is committed before the stream is handed
// out, so stopping early never loses state; an error leaves it untouched.
func (e *Engine) PositionSpeech(pos document.Position, opts PositionOptions) (iter.Seq[Sequence], bool, error) {
	utterances, spoken, err := e.describePosition(pos, opts)
	if err != nil {
		e.logger.Error("describe failed", "subject", opts.Subject, "err", err)
		return nil, false, err
	}
	stream := func(yield func(Sequence) bool) {
		for _, seq := range utterances {
			if !yield(seq) {
				return
			}
		}
	}
	return stream, spoken, nil
}

// SpeakPosition describes a position and hands every resulting utterance to
// the playback collaborator.
func (e *Engine) SpeakPosition(pos document.Position, opts PositionOptions, priority Priority) (bool, error) {
	stream, spoken, err := e.PositionSpeech(pos, opts)
	if err != nil {
		return false, err
	}
	for seq := range stream {
		seq, err := e.validated(seq)
		if err != nil {
			return spoken, err
		}
		if err := e.Speak(seq, priority); err != nil {
			return spoken, err
		}
	}
	return spoken, nil
}

func (e *Engine) describePosition(pos document.Position, opts PositionOptions) ([]Sequence, bool, error) {
	reason := opts.Reason
	unit := opts.Unit
	extraDetail := unit == document.UnitCharacter || unit == document.UnitWord
	reportIndentation := unit == document.UnitLine && e.cfg.ReportLineIndentation != IndentOff
	useCache := opts.Subject != ""

	state := &SubjectState{}
	if useCache {
		state = e.subjects.lookup(opts.Subject)
	}
	oldStack := state.ControlFieldStack
	formatCache := state.FormatField
	indentCache := state.Indentation

	fmtCtx := formatContext{
		reason:      reason,
		unit:        unit,
		extraDetail: extraDetail,
		suppressSpellingErrors: reason == ReasonCaret &&
			(unit == document.UnitParagraph || unit == document.UnitCell),
	}

	tokens := pos.TextWithFields()
	for _, tok := range tokens {
		switch t := tok.(type) {
		case document.TextToken:
		case document.FieldToken:
			switch t.Kind {
			case document.ControlStart:
				if t.Control == nil {
					return nil, false, fmt.Errorf("%w: boundary start without a field", ErrBadFieldCommand)
				}
			case document.FormatChange:
				if t.Format == nil {
					return nil, false, fmt.Errorf("%w: format change without attributes", ErrBadFieldCommand)
				}
			case document.ControlEnd:
			default:
				return nil, false, fmt.Errorf("%w: %s", ErrBadFieldCommand, t.Kind)
			}
		default:
			return nil, false, fmt.Errorf("%w: %T", ErrBadFieldCommand, tok)
		}
	}

	// Leading boundary starts and format changes describe what already
	// encloses the range.
	var newStack []*document.ControlField
	newFormat := &document.FormatField{}
	initial := 0
	for _, tok := range tokens {
		ft, ok := tok.(document.FieldToken)
		if !ok || ft.Kind == document.ControlEnd {
			break
		}
		if ft.Kind == document.ControlStart {
			newStack = append(newStack, ft.Control)
		} else {
			newFormat.Merge(ft.Format)
		}
		initial++
	}
	body := tokens[initial:]
	// Trailing boundary ends belong to boundaries that extend past the
	// range; the stack comparison of the next call handles them.
	for len(body) > 0 {
		ft, ok := body[len(body)-1].(document.FieldToken)
		if !ok || ft.Kind != document.ControlEnd {
			break
		}
		body = body[:len(body)-1]
	}

	commonFieldCount := 0
	for commonFieldCount < len(newStack) && commonFieldCount < len(oldStack) {
		if !newStack[commonFieldCount].Equal(oldStack[commonFieldCount]) {
			break
		}
		commonFieldCount++
	}

	var seq Sequence
	// Exit announcements are useless noise when tabbing or using quick
	// navigation.
	if reason != ReasonFocus && reason != ReasonQuickNav {
		endingBlock := false
		for count := len(oldStack) - 1; count >= commonFieldCount; count-- {
			seq = append(seq, e.controlFieldSpeech(
				oldStack[count], oldStack[:count], endRemovedFromStack, extraDetail, reason)...)
			if !endingBlock && reason == ReasonSayAll {
				endingBlock = oldStack[count].IsBlock
			}
		}
		if endingBlock {
			seq = append(seq, EndUtteranceCommand{})
		}
	}
	// The position counts as blank when it only exits boundaries and holds
	// no text of its own.
	contentSpoken := false

	if !extraDetail {
		for count := 0; count < commonFieldCount; count++ {
			fieldSeq := e.controlFieldSpeech(
				newStack[count], newStack[:count], startInStack, extraDetail, reason)
			if len(fieldSeq) > 0 {
				seq = append(seq, fieldSeq...)
				contentSpoken = true
			}
		}
	}

	inClickable := false
	for count := commonFieldCount; count < len(newStack); count++ {
		field := newStack[count]
		var clickSeq Sequence
		clickSeq, inClickable = e.clickableSpeech(field, newStack[:count], inClickable, extraDetail, reason)
		if len(clickSeq) > 0 {
			seq = append(seq, clickSeq...)
			contentSpoken = true
		}
		fieldSeq := e.controlFieldSpeech(
			field, newStack[:count], startAddedToStack, extraDetail, reason)
		if len(fieldSeq) > 0 {
			seq = append(seq, fieldSeq...)
			contentSpoken = true
		}
		commonFieldCount++
	}

	initialCtx := fmtCtx
	initialCtx.initialFormat = true
	seq = append(seq, e.formatFieldSpeech(newFormat, formatCache, initialCtx)...)
	formatCache = newFormat.Clone()

	language := ""
	lastLanguage := ""
	if e.shouldSwitchLanguage() {
		language = newFormat.Language
		seq = append(seq, LangChangeCommand{Lang: language})
		lastLanguage = language
	}

	commit := func() {
		if !useCache {
			return
		}
		e.subjects.commit(opts.Subject, &SubjectState{
			ControlFieldStack: newStack,
			FormatField:       formatCache,
			Indentation:       indentCache,
		})
	}

	// A position holding a single spoken character at character or word
	// granularity is spelled instead of read as text.
	if singleChar, ok := singleCharContent(body, extraDetail); opts.OnlyInitialFields || ok {
		var out []Sequence
		if reason != ReasonOnlyCache {
			if len(seq) > 0 && (opts.OnlyInitialFields || seq.HasText()) {
				out = append(out, seq)
			}
			if !opts.OnlyInitialFields {
				out = append(out, e.SpellingSpeech(singleChar, language, false))
				if reason == ReasonCaret && unit == document.UnitCharacter && e.cfg.DelayedCharacterDesc {
					if desc := e.SingleCharDescription(singleChar, language); len(desc) > 0 {
						out = append(out, desc)
					}
				}
			}
		}
		commit()
		return out, false, nil
	}

	// Exiting the innermost clickable lets the next run announce again.
	inClickable = false
	var relative Sequence
	inTextChunk := false
	allIndentation := ""
	indentationDone := false
	lineNotBlank := false

	for _, tok := range body {
		switch cmd := tok.(type) {
		case document.TextToken:
			// Text breaks a run of clickables.
			inClickable = false
			text := string(cmd)
			if hasContentChars(text) {
				lineNotBlank = true
			}
			if reportIndentation && !indentationDone {
				var indentation string
				indentation, text = SplitIndentation(text)
				allIndentation += indentation
				if text != "" {
					indentationDone = true
				}
			}
			if text != "" {
				if inTextChunk {
					last := relative[len(relative)-1].(Text)
					relative[len(relative)-1] = last + Text(text)
				} else {
					relative = append(relative, Text(text))
					inTextChunk = true
				}
			}
		case document.FieldToken:
			var fieldSeq Sequence
			newLanguage := ""
			switch cmd.Kind {
			case document.ControlStart:
				// Boundaries always start a new chunk, even without field
				// text.
				inTextChunk = false
				var clickSeq Sequence
				clickSeq, inClickable = e.clickableSpeech(cmd.Control, newStack, inClickable, extraDetail, reason)
				fieldSeq = append(clickSeq, e.controlFieldSpeech(
					cmd.Control, newStack, startRelative, extraDetail, reason)...)
				newStack = append(newStack, cmd.Control)
			case document.ControlEnd:
				inClickable = false
				inTextChunk = false
				if len(newStack) == 0 {
					return nil, false, fmt.Errorf("%w: boundary end with no open boundary", ErrBadFieldCommand)
				}
				fieldSeq = e.controlFieldSpeech(
					newStack[len(newStack)-1], newStack[:len(newStack)-1], endRelative, extraDetail, reason)
				newStack = newStack[:len(newStack)-1]
				if commonFieldCount > len(newStack) {
					commonFieldCount = len(newStack)
				}
			case document.FormatChange:
				fieldSeq = e.formatFieldSpeech(cmd.Format, formatCache, fmtCtx)
				formatCache = cmd.Format.Clone()
				if len(fieldSeq) > 0 {
					inTextChunk = false
				}
				if e.shouldSwitchLanguage() {
					newLanguage = cmd.Format.Language
					if newLanguage != lastLanguage {
						inTextChunk = false
					}
				}
			}
			if !inTextChunk {
				if len(fieldSeq) > 0 {
					if e.shouldSwitchLanguage() && lastLanguage != "" {
						// Field phrases speak in the default language.
						relative = append(relative, LangChangeCommand{})
						lastLanguage = ""
					}
					relative = append(relative, fieldSeq...)
				}
				if e.shouldSwitchLanguage() && newLanguage != lastLanguage {
					relative = append(relative, LangChangeCommand{Lang: newLanguage})
					lastLanguage = newLanguage
				}
			}
		}
	}

	if reportIndentation && useCache && allIndentation != state.Indentation &&
		(!e.cfg.IgnoreBlankLinesForIndentation || lineNotBlank) {
		indentSeq := e.IndentationSpeech(allIndentation)
		appended := false
		if n := len(seq); e.shouldSwitchLanguage() && n > 0 {
			if lang, isLang := seq[n-1].(LangChangeCommand); isLang && lang.Lang != "" {
				// Indentation speaks in the default language; keep it ahead
				// of the content's language switch.
				seq = append(seq[:n-1], indentSeq...)
				seq = append(seq, lang)
				appended = true
			}
		}
		if !appended {
			seq = append(seq, indentSeq...)
		}
		indentCache = allIndentation
	}

	relativeBlank := true
	for _, item := range relative {
		if txt, ok := item.(Text); ok && !IsBlankText(string(txt)) {
			relativeBlank = false
			break
		}
	}
	if !relativeBlank {
		seq = append(seq, relative...)
		contentSpoken = true
	}

	if e.shouldSwitchLanguage() && lastLanguage != "" {
		seq = append(seq, LangChangeCommand{})
	}

	// Close boundaries still shared with the previous description.
	if !extraDetail {
		closing := commonFieldCount
		if len(newStack) < closing {
			closing = len(newStack)
		}
		for count := closing - 1; count >= 0; count-- {
			fieldSeq := e.controlFieldSpeech(
				newStack[count], newStack[:count], endInStack, extraDetail, reason)
			if len(fieldSeq) > 0 {
				seq = append(seq, fieldSeq...)
				contentSpoken = true
			}
		}
	}

	if !opts.SuppressBlanks && reason != ReasonSayAll && !contentSpoken {
		seq = seq.appendText("blank")
	}

	commit()

	if reason == ReasonOnlyCache || len(seq) == 0 {
		return nil, false, nil
	}
	return []Sequence{seq}, true, nil
}

// singleCharContent reports whether the body of a character or word sized
// position boils down to one spoken character, returning the raw text run.
// Composition may fold a decomposed pair into that single character.
func singleCharContent(body []document.Token, extraDetail bool) (string, bool) {
	if !extraDetail || len(body) != 1 {
		return "", false
	}
	txt, ok := body[0].(document.TextToken)
	if !ok {
		return "", false
	}
	candidate := string(txt)
	if trimmed := strings.TrimSpace(candidate); trimmed != "" {
		candidate = trimmed
	}
	if len([]rune(candidate)) == 1 || len([]rune(norm.NFKC.String(candidate))) == 1 {
		return string(txt), true
	}
	return "", false
}

// clickableSpeech announces the outermost boundary of a clickable run. It
// only speaks when the boundary has nothing else interesting to say for
// itself.
func (e *Engine) clickableSpeech(
	field *document.ControlField,
	ancestors []*document.ControlField,
	inClickable bool,
	extraDetail bool,
	reason Reason,
) (Sequence, bool) {
	if inClickable || !e.cfg.ReportClickable {
		return nil, inClickable
	}
	if !field.States.Has(document.StateClickable) {
		return nil, false
	}
	var seq Sequence
	presCat := field.PresentationCategory(ancestors, e.presentationOptions(extraDetail), reason)
	if presCat == document.PresentationLayout {
		seq = Sequence{Text(document.StateClickable.String())}
	}
	return seq, true
}

func hasContentChars(s string) bool {
	for _, r := range s {
		if r != '\r' && r != '\n' {
			return true
		}
	}
	return false
}
