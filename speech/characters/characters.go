// Package characters defines the symbol-pronunciation collaborators the
// speech engine consults: per-locale character descriptions, symbol
// replacement and speech dictionaries. The real dictionaries live outside
// this module; the built-in tables here cover whitespace and a handful of
// punctuation so the engine remains usable without them.
package characters

import "strings"

// SymbolLevel controls how much punctuation is pronounced.
type SymbolLevel int

const (
	// LevelNone pronounces no symbols.
	LevelNone SymbolLevel = 0
	// LevelSome pronounces the most important symbols.
	LevelSome SymbolLevel = 100
	// LevelMost pronounces most symbols.
	LevelMost SymbolLevel = 200
	// LevelAll pronounces every known symbol.
	LevelAll SymbolLevel = 300
	// LevelChar is used when speaking individual characters.
	LevelChar SymbolLevel = 1000
)

// Describer resolves spoken descriptions for characters, such as "alpha"
// for "a". Multi-character lookups serve conjunct scripts where a glyph
// cluster has a single description.
type Describer interface {
	// Description returns the description variants for text in the given
	// locale, and whether any were found.
	Description(locale, text string) ([]string, bool)
}

// SymbolMap resolves the spoken replacement of individual symbols and
// processes whole chunks of text for symbol pronunciation.
type SymbolMap interface {
	// Symbol returns the replacement for a single symbol, and whether
	// one exists.
	Symbol(locale, text string) (string, bool)

	// ProcessText replaces symbols within text according to level.
	ProcessText(locale, text string, level SymbolLevel) string
}

// Dictionary applies user speech-dictionary substitutions to a chunk.
type Dictionary interface {
	Apply(text string) string
}

// conjunctLocales lists language roots whose scripts build conjunct
// characters from several code points, requiring longest-match description
// lookups instead of per-cluster spelling.
var conjunctLocales = map[string]struct{}{
	"hi": {}, "as": {}, "bn": {}, "gu": {}, "kn": {}, "kok": {},
	"ml": {}, "mni": {}, "mr": {}, "pa": {}, "te": {}, "ur": {}, "ta": {},
}

// HasConjuncts reports whether the locale's script uses conjunct characters.
func HasConjuncts(locale string) bool {
	_, ok := conjunctLocales[LocaleRoot(locale)]
	return ok
}

// LocaleRoot strips any region or script suffix from a locale tag, so both
// "en_US" and "en-US" yield "en".
func LocaleRoot(locale string) string {
	if i := strings.IndexAny(locale, "_-"); i >= 0 {
		return locale[:i]
	}
	return locale
}

// Symbols is a map-backed SymbolMap. The zero value is unusable; construct
// with NewSymbols.
type Symbols struct {
	byLocale map[string]map[string]string
}

// NewSymbols returns a SymbolMap preloaded with locale-neutral whitespace
// and punctuation entries.
func NewSymbols() *Symbols {
	s := &Symbols{byLocale: make(map[string]map[string]string)}
	for sym, name := range map[string]string{
		" ":  "space",
		" ":  "space",
		"\t": "tab",
		"\n": "line feed",
		"\r": "carriage return",
		"\f": "page break",
		".":  "dot",
		",":  "comma",
		"!":  "bang",
		"?":  "question",
		";":  "semi",
		":":  "colon",
		"-":  "dash",
		"_":  "underline",
	} {
		s.Add("", sym, name)
	}
	return s
}

// Add registers a replacement for a symbol. An empty locale registers a
// fallback used by every locale.
func (s *Symbols) Add(locale, symbol, replacement string) {
	root := LocaleRoot(locale)
	m, ok := s.byLocale[root]
	if !ok {
		m = make(map[string]string)
		s.byLocale[root] = m
	}
	m[symbol] = replacement
}

// Symbol resolves a single symbol, trying the locale first and the
// locale-neutral fallback table second.
func (s *Symbols) Symbol(locale, text string) (string, bool) {
	if m, ok := s.byLocale[LocaleRoot(locale)]; ok {
		if repl, ok := m[text]; ok {
			return repl, true
		}
	}
	if m, ok := s.byLocale[""]; ok {
		if repl, ok := m[text]; ok {
			return repl, true
		}
	}
	return "", false
}

// ProcessText replaces each known symbol in text with its spoken name,
// padded with spaces so adjacent words stay separate. LevelNone returns the
// text untouched.
func (s *Symbols) ProcessText(locale, text string, level SymbolLevel) string {
	if level == LevelNone {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		ch := string(r)
		if ch == " " {
			b.WriteString(ch)
			continue
		}
		if repl, ok := s.Symbol(locale, ch); ok {
			b.WriteString(" ")
			b.WriteString(repl)
			b.WriteString(" ")
			continue
		}
		b.WriteString(ch)
	}
	return b.String()
}

// StaticDescriber is a map-backed Describer keyed by locale root, then by
// the exact character or cluster.
type StaticDescriber map[string]map[string][]string

// Description resolves variants for text, trying the locale root first and
// the empty-locale fallback second.
func (d StaticDescriber) Description(locale, text string) ([]string, bool) {
	if m, ok := d[LocaleRoot(locale)]; ok {
		if variants, ok := m[text]; ok && len(variants) > 0 {
			return variants, true
		}
	}
	if m, ok := d[""]; ok {
		if variants, ok := m[text]; ok && len(variants) > 0 {
			return variants, true
		}
	}
	return nil, false
}

// NopDictionary applies no substitutions.
type NopDictionary struct{}

// Apply returns text unchanged.
func (NopDictionary) Apply(text string) string { return text }
