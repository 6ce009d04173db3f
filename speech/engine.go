package speech

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/voxhollow/descant/speech/characters"
	"github.com/voxhollow/descant/speech/document"
)

// Reason aliases the document package's navigation reason for callers that
// only import this package.
type Reason = document.Reason

// Re-exported reasons.
const (
	ReasonQuery        = document.ReasonQuery
	ReasonFocus        = document.ReasonFocus
	ReasonFocusEntered = document.ReasonFocusEntered
	ReasonCaret        = document.ReasonCaret
	ReasonSayAll       = document.ReasonSayAll
	ReasonQuickNav     = document.ReasonQuickNav
	ReasonChange       = document.ReasonChange
	ReasonMessage      = document.ReasonMessage
	ReasonMouse        = document.ReasonMouse
	ReasonOnlyCache    = document.ReasonOnlyCache
)

// FilterFunc is the external hook applied to every sequence before the
// final normalization pass.
type FilterFunc func(Sequence) Sequence

// fallbackLocale is spoken when no voice locale is available or trusted.
const fallbackLocale = "en"

// Engine holds everything one describe call needs: configuration, the
// active locale, per-subject snapshots, table continuity memory and the
// collaborator hooks. It is constructed once at startup and passed to every
// entry point; all calls are assumed sequential.
type Engine struct {
	cfg    Config
	logger *log.Logger
	out    Output

	symbols      characters.SymbolMap
	descriptions characters.Describer
	dictionary   characters.Dictionary
	filter       FilterFunc

	locale   string
	tables   tableMemory
	subjects *subjectRegistry
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithSymbols sets the symbol-pronunciation collaborator.
func WithSymbols(symbols characters.SymbolMap) Option {
	return func(e *Engine) { e.symbols = symbols }
}

// WithDescriber sets the character-description collaborator.
func WithDescriber(d characters.Describer) Option {
	return func(e *Engine) { e.descriptions = d }
}

// WithDictionary sets the speech-dictionary collaborator.
func WithDictionary(d characters.Dictionary) Option {
	return func(e *Engine) { e.dictionary = d }
}

// WithFilter sets the pre-normalization filter hook.
func WithFilter(f FilterFunc) Option {
	return func(e *Engine) { e.filter = f }
}

// WithLocale sets the active spoken locale, e.g. "en_US".
func WithLocale(locale string) Option {
	return func(e *Engine) { e.locale = locale }
}

// New creates an Engine speaking to the given output.
func New(cfg Config, out Output, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		logger:   log.NewWithOptions(os.Stderr, log.Options{Prefix: "speech"}),
		out:      out,
		symbols:  characters.NewSymbols(),
		locale:   fallbackLocale,
		subjects: newSubjectRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.dictionary == nil {
		e.dictionary = characters.NopDictionary{}
	}
	e.logger.Debug("engine created", "locale", e.locale)
	return e
}

// Config returns the engine's configuration snapshot.
func (e *Engine) Config() Config { return e.cfg }

// Locale returns the active spoken locale. The voice-reported locale only
// applies while it is trusted; otherwise the engine default stands in.
func (e *Engine) Locale() string {
	if !e.cfg.TrustVoiceLanguage {
		return fallbackLocale
	}
	return e.locale
}

// SetLocale changes the active spoken locale, canonicalizing the tag when
// possible.
func (e *Engine) SetLocale(locale string) {
	if tag, err := language.Parse(locale); err == nil {
		canonical := tag.String()
		// Keep the caller's underscore convention.
		if hasUnderscore(locale) {
			canonical = underscoreTag(canonical)
		}
		locale = canonical
	}
	e.locale = locale
}

// InvalidateSubject drops the cached snapshot of a disposed subject. The
// document model calls this from its lifecycle events.
func (e *Engine) InvalidateSubject(subject string) {
	e.subjects.invalidate(subject)
}

// shouldSwitchLanguage reports whether language-change commands are
// produced at all.
func (e *Engine) shouldSwitchLanguage() bool {
	return e.cfg.AutoLanguageSwitching
}

// effectiveLocale resolves a requested locale against the active one: an
// absent locale, or one sharing a root with the active locale while dialect
// switching is off, falls back to the active locale.
func (e *Engine) effectiveLocale(locale string) string {
	active := e.Locale()
	if locale == "" {
		return active
	}
	if !e.cfg.AutoDialectSwitching &&
		characters.LocaleRoot(locale) == characters.LocaleRoot(active) {
		return active
	}
	return locale
}

// validated runs the shape validator over a sequence, logging and
// surfacing violations instead of silently dropping them.
func (e *Engine) validated(seq Sequence) (Sequence, error) {
	if err := Validate(seq); err != nil {
		e.logger.Error("bad speech sequence", "err", err, "seq", seq.String())
		return nil, err
	}
	return seq, nil
}

func hasUnderscore(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			return true
		}
	}
	return false
}

func underscoreTag(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '-' {
			b[i] = '_'
		}
	}
	return string(b)
}
