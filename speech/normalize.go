package speech

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/voxhollow/descant/speech/characters"
)

// chunkSeparator joins adjacent chunks of one utterance. Two spaces, so
// numbers from adjacent chunks are not read as a single number in locales
// that use space as a thousands separator.
const chunkSeparator = "  "

// Speak runs a raw sequence through the final normalization pass and hands
// the result to the playback collaborator. Empty results are dropped
// silently; shape violations surface as errors.
func (e *Engine) Speak(seq Sequence, priority Priority) error {
	normalized, err := e.Normalize(seq, e.cfg.SymbolLevel)
	if err != nil {
		return err
	}
	if len(normalized) == 0 {
		return nil
	}
	if e.out == nil {
		return ErrNoOutput
	}
	e.out.Speak(normalized, priority)
	return nil
}

// Cancel asks the playback collaborator to stop in-flight speech.
func (e *Engine) Cancel() {
	if e.out != nil {
		e.out.Cancel()
	}
}

// Normalize is the single final pass over a raw mixed sequence: the
// external filter hook, language-change collapsing, suppress-normalization
// elision, locale-aware text post-processing and chunk separation.
func (e *Engine) Normalize(seq Sequence, symbolLevel characters.SymbolLevel) (Sequence, error) {
	if e.filter != nil {
		seq = e.filter(seq)
	}
	if _, err := e.validated(seq); err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, nil
	}

	defaultLocale := e.Locale()
	defaultRoot := characters.LocaleRoot(defaultLocale)
	globalNormalization := e.cfg.UnicodeNormalization

	// First pass: collapse language changes. A language-change command is
	// never emitted on its own; one is inserted immediately before a text
	// chunk whenever the active locale differs from the last emitted one.
	curLocale := defaultLocale
	prevLocale := ""
	out := make(Sequence, 0, len(seq))
	for _, item := range seq {
		switch v := item.(type) {
		case LangChangeCommand:
			if !e.shouldSwitchLanguage() {
				continue
			}
			curLocale = v.Lang
			if curLocale == "" || (!e.cfg.AutoDialectSwitching &&
				characters.LocaleRoot(curLocale) == defaultRoot) {
				curLocale = defaultLocale
			}
		case SuppressNormalizationCommand:
			if !globalNormalization {
				continue
			}
			out = append(out, v)
		case Text:
			if v == "" {
				continue
			}
			if e.shouldSwitchLanguage() && curLocale != prevLocale {
				out = append(out, LangChangeCommand{Lang: curLocale})
				prevLocale = curLocale
			}
			out = append(out, v)
		default:
			out = append(out, item)
		}
	}
	if !out.HasText() && !hasAudibleCommand(out) {
		// Nothing left to speak after normalization.
		return nil, nil
	}

	// Second pass: post-process surviving text chunks in their locale and
	// separate them, except inside character-mode brackets where isolated
	// pronunciation must be preserved.
	curLocale = defaultLocale
	normalize := globalNormalization
	inCharacterMode := false
	for i, item := range out {
		switch v := item.(type) {
		case CharacterModeCommand:
			inCharacterMode = v.Enabled
		case LangChangeCommand:
			if e.shouldSwitchLanguage() {
				curLocale = v.Lang
			}
		case SuppressNormalizationCommand:
			normalize = globalNormalization && !v.Suppress
		case Text:
			text := e.processText(curLocale, string(v), symbolLevel, normalize)
			if !inCharacterMode {
				text += chunkSeparator
			}
			out[i] = Text(text)
		}
	}
	return out, nil
}

// processText applies dictionary substitution, symbol pronunciation,
// whitespace canonicalization and optional Unicode normalization to one
// chunk.
func (e *Engine) processText(locale, text string, symbolLevel characters.SymbolLevel, normalize bool) string {
	text = e.dictionary.Apply(text)
	text = e.symbols.ProcessText(locale, text, symbolLevel)
	text = canonicalizeWhitespace(text)
	if normalize {
		text = norm.NFKC.String(text)
		// Keep leading space so a "normalized" annotation stays separate.
		return strings.TrimRight(text, " ")
	}
	return strings.TrimSpace(text)
}

func canonicalizeWhitespace(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\x00', '\r', '\n':
			return ' '
		}
		return r
	}, text)
}

// hasAudibleCommand reports whether the sequence contains a command with an
// audible effect of its own, such as a beep or pause.
func hasAudibleCommand(seq Sequence) bool {
	for _, item := range seq {
		switch item.(type) {
		case BeepCommand, BreakCommand:
			return true
		}
	}
	return false
}
