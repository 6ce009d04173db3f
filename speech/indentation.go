package speech

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Indentation tone parameters. The base frequency is one octave below
// middle A; depth is measured in quarter tones, 24 per octave.
const (
	indentBaseFrequency = 220.0
	indentToneDuration  = 80 * time.Millisecond
	indentMaxWeight     = 72
	quarterTonesPerTab  = 4
)

// SplitIndentation separates leading whitespace from the rest of a line.
func SplitIndentation(text string) (indentation, content string) {
	for i, r := range text {
		switch r {
		case '\r', '\n', '\f', '\v':
			return text[:i], text[i:]
		}
		if r != ' ' && r != '\t' && r != ' ' && !isOtherSpace(r) {
			return text[:i], text[i:]
		}
	}
	return text, ""
}

func isOtherSpace(r rune) bool {
	return r == ' ' || r == '　' || r == '​'
}

// IndentationSpeech converts a string of leading whitespace into its spoken
// or tonal form according to the configured mode. Runs of identical
// characters collapse into "{count} {symbol}" phrases; the tonal form sums
// a tab-weighted depth and renders one beep, unless the depth exceeds the
// ceiling, in which case speech is forced to spare the listener's ears.
func (e *Engine) IndentationSpeech(indentation string) Sequence {
	speakIndent := e.cfg.ReportLineIndentation == IndentSpeech ||
		e.cfg.ReportLineIndentation == IndentSpeechAndTones
	toneIndent := e.cfg.ReportLineIndentation == IndentTones ||
		e.cfg.ReportLineIndentation == IndentSpeechAndTones

	var seq Sequence
	if indentation == "" {
		if toneIndent {
			seq = append(seq, BeepCommand{Hz: indentBaseFrequency, Duration: indentToneDuration})
		}
		if speakIndent {
			seq = append(seq, Text("no indent"))
		}
		return seq
	}

	// The non-breaking space is semantically a space.
	indentation = strings.ReplaceAll(indentation, " ", " ")

	var phrases []string
	quarterTones := 0
	for _, run := range collapseRuns(indentation) {
		symbol, ok := e.symbols.Symbol(e.Locale(), string(run.char))
		count := run.count
		switch {
		case !ok:
			phrases = append(phrases, strings.Repeat(string(run.char), count))
		case count == 1:
			phrases = append(phrases, symbol)
		default:
			phrases = append(phrases, fmt.Sprintf("%d %s", count, symbol))
		}
		if run.char == '\t' {
			quarterTones += count * quarterTonesPerTab
		} else {
			quarterTones += count
		}
	}

	speak := speakIndent
	if toneIndent {
		if quarterTones <= indentMaxWeight {
			pitch := indentBaseFrequency * math.Pow(2, float64(quarterTones)/24.0)
			seq = append(seq, BeepCommand{Hz: pitch, Duration: indentToneDuration})
		} else {
			speak = true
		}
	}
	if speak {
		for _, phrase := range phrases {
			seq = append(seq, Text(phrase))
		}
	}
	return seq
}

type charRun struct {
	char  rune
	count int
}

// collapseRuns splits a string into runs of identical characters.
func collapseRuns(s string) []charRun {
	var runs []charRun
	for _, r := range s {
		if n := len(runs); n > 0 && runs[n-1].char == r {
			runs[n-1].count++
			continue
		}
		runs = append(runs, charRun{char: r, count: 1})
	}
	return runs
}
