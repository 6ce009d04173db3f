package speech

import (
	"strings"
	"time"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/voxhollow/descant/speech/characters"
)

// Variants of a character description for one input are joined with the
// ideographic comma when the whole input is a single unit.
const ideographicComma = "、"

// capBeep is the tone announcing an uppercase character.
var capBeep = BeepCommand{Hz: 2000, Duration: 50 * time.Millisecond}

// singleCharDescriptionDelay is how long to pause before a delayed
// character description.
const singleCharDescriptionDelay = time.Second

// spellingOptions carries the per-call flags of the spelling builder.
type spellingOptions struct {
	useDescriptions   bool
	sayCapForCapitals bool
	capPitchChange    int
	beepForCapitals   bool
	fallbackToChar    bool
	normalize         bool
	reportNormalized  bool
}

// SpellingSpeech turns a string into a per-unit spelling sequence: one unit
// per grapheme cluster (or per conjunct match in conjunct-script locales),
// each annotated with capitalization and normalization markers. The result
// is bracketed with suppress-normalization commands because it normalizes
// its own text.
func (e *Engine) SpellingSpeech(text, locale string, useDescriptions bool) Sequence {
	opts := spellingOptions{
		useDescriptions:   useDescriptions,
		sayCapForCapitals: e.cfg.SayCapForCapitals,
		capPitchChange:    e.cfg.CapPitchChange,
		beepForCapitals:   e.cfg.BeepForCapitals,
		fallbackToChar:    true,
		normalize:         !useDescriptions && e.cfg.UnicodeNormalization,
		reportNormalized:  e.cfg.ReportNormalizedForCharNav,
	}
	seq := e.spellingWithoutCharMode(text, locale, opts)
	if e.cfg.UseSpellingFunctionality {
		seq = addCharacterMode(seq)
	}
	out := make(Sequence, 0, len(seq)+2)
	out = append(out, SuppressNormalizationCommand{Suppress: true})
	out = append(out, seq...)
	out = append(out, SuppressNormalizationCommand{Suppress: false})
	return out
}

// SpeakSpelling builds the spelling sequence for text and hands it to the
// playback collaborator.
func (e *Engine) SpeakSpelling(text, locale string, useDescriptions bool, priority Priority) error {
	seq, err := e.validated(e.SpellingSpeech(text, locale, useDescriptions))
	if err != nil {
		return err
	}
	return e.Speak(seq, priority)
}

// SingleCharDescription returns a pause followed by the description of a
// single character, used for delayed descriptions during character
// navigation. The pitch bracket is kept for capitals; the beep and "cap"
// are not repeated since navigation already announced them.
func (e *Engine) SingleCharDescription(text, locale string) Sequence {
	if len([]rune(text)) != 1 {
		return nil
	}
	capPitch := 0
	if isUpper(text) {
		capPitch = e.cfg.CapPitchChange
	}
	opts := spellingOptions{
		useDescriptions: true,
		capPitchChange:  capPitch,
	}
	inner := e.spellingWithoutCharMode(text, locale, opts)
	if len(inner) == 0 {
		return nil
	}
	seq := Sequence{BreakCommand{Duration: singleCharDescriptionDelay}}
	return append(seq, inner...)
}

// spellingUnit is one spellable unit with an optional description.
type spellingUnit struct {
	text        string
	description []string
}

func (e *Engine) spellingWithoutCharMode(text, locale string, opts spellingOptions) Sequence {
	locale = e.effectiveLocale(locale)

	if text == "" || strings.TrimSpace(text) == "" {
		return Sequence{Text("blank")}
	}
	text = strings.TrimRight(text, " \t\r\n ")

	unitCount := len([]rune(text))
	textIsNormalized := false
	if opts.normalize && unitCount > 1 {
		if composed := norm.NFKC.String(text); len([]rune(composed)) == 1 {
			// A multi-code-point input composed into one character.
			text = composed
			textIsNormalized = true
		}
	}

	var units []spellingUnit
	switch {
	case characters.HasConjuncts(locale):
		units = e.conjunctUnits(text, locale)
	default:
		gr := uniseg.NewGraphemes(text)
		for gr.Next() {
			units = append(units, spellingUnit{text: gr.Str()})
		}
	}

	var seq Sequence
	for _, unit := range units {
		speakAs := unit.text
		description := unit.description
		if description == nil && opts.useDescriptions {
			if variants, ok := e.describe(locale, strings.ToLower(speakAs)); ok {
				description = variants
			}
		}
		unitIsNormalized := textIsNormalized
		uppercase := isUpper(speakAs)

		switch {
		case opts.useDescriptions && len(description) > 0:
			if unitCount > 1 {
				speakAs = description[0]
			} else {
				speakAs = strings.Join(description, ideographicComma)
			}
		case opts.useDescriptions && !opts.fallbackToChar:
			return seq
		default:
			if symbol, ok := e.symbols.Symbol(locale, speakAs); ok && symbol != speakAs {
				speakAs = symbol
			} else if !textIsNormalized && opts.normalize {
				if normalized := norm.NFKC.String(speakAs); normalized != speakAs {
					parts := make([]string, 0, len(normalized))
					for _, r := range normalized {
						part := string(r)
						if symbol, ok := e.symbols.Symbol(locale, part); ok {
							part = symbol
						}
						parts = append(parts, part)
					}
					speakAs = strings.Join(parts, " ")
					unitIsNormalized = true
				}
			}
		}

		if e.shouldSwitchLanguage() {
			seq = append(seq, LangChangeCommand{Lang: locale})
		}
		capPitch := 0
		if uppercase {
			capPitch = opts.capPitchChange
		}
		seq = append(seq, capNotification(
			speakAs,
			uppercase && opts.sayCapForCapitals,
			capPitch,
			uppercase && opts.beepForCapitals,
			unitIsNormalized && opts.reportNormalized,
		)...)
		seq = append(seq, EndUtteranceCommand{})
	}
	return seq
}

// capNotification wraps one spelled unit with its uppercase and normalized
// annotations in a fixed order: pitch bracket, beep, "cap", text,
// "normalized", pitch reset.
func capNotification(speakAs string, sayCap bool, capPitch int, beep, reportNormalized bool) Sequence {
	var seq Sequence
	if capPitch != 0 {
		seq = append(seq, PitchCommand{Offset: capPitch})
	}
	if beep {
		seq = append(seq, capBeep)
	}
	if sayCap {
		seq = append(seq, Text("cap "))
	}
	seq = append(seq, Text(speakAs))
	if reportNormalized {
		seq = append(seq, Text(" normalized"))
	}
	if capPitch != 0 {
		seq = append(seq, PitchCommand{})
	}
	return seq
}

// conjunctUnits performs longest-match scanning against the description
// collaborator: try the whole remaining string, shrinking one code point at
// a time until a description is found or a single character remains. A
// single character with no description gets a case-folded retry.
func (e *Engine) conjunctUnits(text, locale string) []spellingUnit {
	var units []spellingUnit
	remaining := []rune(text)
	for len(remaining) > 0 {
		matched := false
		for i := len(remaining); i >= 1; i-- {
			sub := string(remaining[:i])
			variants, ok := e.describe(locale, sub)
			if !ok && i == 1 {
				variants, ok = e.describe(locale, strings.ToLower(sub))
			}
			if ok || i == 1 {
				units = append(units, spellingUnit{text: sub, description: variants})
				remaining = remaining[i:]
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	return units
}

// describe consults the character-description collaborator, tolerating its
// absence.
func (e *Engine) describe(locale, text string) ([]string, bool) {
	if e.descriptions == nil {
		return nil, false
	}
	return e.descriptions.Description(locale, text)
}

// addCharacterMode wraps runs of single-character text chunks in
// character-mode brackets so the playback engine pronounces them in
// isolation.
func addCharacterMode(seq Sequence) Sequence {
	var out Sequence
	charMode := false
	for _, item := range seq {
		if t, ok := item.(Text); ok {
			if len([]rune(string(t))) == 1 {
				if !charMode {
					out = append(out, CharacterModeCommand{Enabled: true})
					charMode = true
				}
			} else if charMode {
				out = append(out, CharacterModeCommand{Enabled: false})
				charMode = false
			}
		}
		out = append(out, item)
	}
	return out
}

// isUpper reports whether s contains at least one cased character and every
// cased character is uppercase.
func isUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasCased = true
		}
	}
	return hasCased
}
