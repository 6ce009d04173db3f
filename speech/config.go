package speech

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/voxhollow/descant/speech/characters"
)

// LineIndentation selects how leading whitespace is reported.
type LineIndentation int

const (
	// IndentOff reports nothing.
	IndentOff LineIndentation = iota
	// IndentSpeech speaks the indentation.
	IndentSpeech
	// IndentTones encodes the indentation as a tone.
	IndentTones
	// IndentSpeechAndTones does both.
	IndentSpeechAndTones
)

// String returns the mode name.
func (l LineIndentation) String() string {
	switch l {
	case IndentOff:
		return "off"
	case IndentSpeech:
		return "speech"
	case IndentTones:
		return "tones"
	case IndentSpeechAndTones:
		return "both"
	}
	return "unknown"
}

// UnmarshalText parses a mode name from config files and env vars.
func (l *LineIndentation) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "off", "":
		*l = IndentOff
	case "speech":
		*l = IndentSpeech
	case "tones":
		*l = IndentTones
	case "both", "speechandtones":
		*l = IndentSpeechAndTones
	default:
		return fmt.Errorf("%w: %q", ErrInvalidIndentMode, text)
	}
	return nil
}

// TableHeaders selects which table headers are announced on cell entry.
type TableHeaders int

const (
	// HeadersOff announces no headers.
	HeadersOff TableHeaders = iota
	// HeadersRows announces row headers only.
	HeadersRows
	// HeadersColumns announces column headers only.
	HeadersColumns
	// HeadersRowsAndColumns announces both.
	HeadersRowsAndColumns
)

// UnmarshalText parses a header mode name.
func (t *TableHeaders) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "off":
		*t = HeadersOff
	case "rows":
		*t = HeadersRows
	case "columns":
		*t = HeadersColumns
	case "both", "rowsandcolumns", "":
		*t = HeadersRowsAndColumns
	default:
		return fmt.Errorf("%w: table headers %q", ErrInvalidConfig, text)
	}
	return nil
}

// Rows reports whether row headers are announced.
func (t TableHeaders) Rows() bool {
	return t == HeadersRows || t == HeadersRowsAndColumns
}

// Columns reports whether column headers are announced.
func (t TableHeaders) Columns() bool {
	return t == HeadersColumns || t == HeadersRowsAndColumns
}

// Config is an immutable snapshot of the engine's recognized flags. It is
// consulted read-only during a describe call and never mutated by the
// engine.
type Config struct {
	// Document formatting
	ReportTables                    bool            `yaml:"report_tables" env:"DESCANT_REPORT_TABLES" envDefault:"true"`
	ReportTableHeaders              TableHeaders    `yaml:"report_table_headers" env:"DESCANT_REPORT_TABLE_HEADERS" envDefault:"both"`
	ReportTableCellCoords           bool            `yaml:"report_table_cell_coords" env:"DESCANT_REPORT_TABLE_CELL_COORDS" envDefault:"true"`
	ReportPage                      bool            `yaml:"report_page" env:"DESCANT_REPORT_PAGE" envDefault:"true"`
	ReportHeadings                  bool            `yaml:"report_headings" env:"DESCANT_REPORT_HEADINGS" envDefault:"true"`
	ReportStyle                     bool            `yaml:"report_style" env:"DESCANT_REPORT_STYLE" envDefault:"false"`
	ReportCellBorders               bool            `yaml:"report_cell_borders" env:"DESCANT_REPORT_CELL_BORDERS" envDefault:"false"`
	ReportFontName                  bool            `yaml:"report_font_name" env:"DESCANT_REPORT_FONT_NAME" envDefault:"false"`
	ReportFontSize                  bool            `yaml:"report_font_size" env:"DESCANT_REPORT_FONT_SIZE" envDefault:"false"`
	ReportColor                     bool            `yaml:"report_color" env:"DESCANT_REPORT_COLOR" envDefault:"false"`
	ReportLineNumber                bool            `yaml:"report_line_number" env:"DESCANT_REPORT_LINE_NUMBER" envDefault:"false"`
	ReportRevisions                 bool            `yaml:"report_revisions" env:"DESCANT_REPORT_REVISIONS" envDefault:"true"`
	ReportHighlight                 bool            `yaml:"report_highlight" env:"DESCANT_REPORT_HIGHLIGHT" envDefault:"true"`
	ReportEmphasis                  bool            `yaml:"report_emphasis" env:"DESCANT_REPORT_EMPHASIS" envDefault:"false"`
	FontAttributeReporting          bool            `yaml:"font_attribute_reporting" env:"DESCANT_FONT_ATTRIBUTE_REPORTING" envDefault:"false"`
	ReportSuperscriptsAndSubscripts bool            `yaml:"report_superscripts_and_subscripts" env:"DESCANT_REPORT_SUPERSCRIPTS" envDefault:"false"`
	ReportAlignment                 bool            `yaml:"report_alignment" env:"DESCANT_REPORT_ALIGNMENT" envDefault:"false"`
	ReportParagraphIndentation      bool            `yaml:"report_paragraph_indentation" env:"DESCANT_REPORT_PARAGRAPH_INDENTATION" envDefault:"false"`
	ReportLineSpacing               bool            `yaml:"report_line_spacing" env:"DESCANT_REPORT_LINE_SPACING" envDefault:"false"`
	ReportLinks                     bool            `yaml:"report_links" env:"DESCANT_REPORT_LINKS" envDefault:"true"`
	ReportComments                  bool            `yaml:"report_comments" env:"DESCANT_REPORT_COMMENTS" envDefault:"true"`
	ReportBookmarks                 bool            `yaml:"report_bookmarks" env:"DESCANT_REPORT_BOOKMARKS" envDefault:"true"`
	ReportSpellingErrors            bool            `yaml:"report_spelling_errors" env:"DESCANT_REPORT_SPELLING_ERRORS" envDefault:"true"`
	ReportClickable                 bool            `yaml:"report_clickable" env:"DESCANT_REPORT_CLICKABLE" envDefault:"true"`
	ReportLineIndentation           LineIndentation `yaml:"report_line_indentation" env:"DESCANT_REPORT_LINE_INDENTATION" envDefault:"off"`
	IgnoreBlankLinesForIndentation  bool            `yaml:"ignore_blank_lines_for_indentation" env:"DESCANT_IGNORE_BLANK_LINES_FOR_INDENTATION" envDefault:"true"`
	ReportLandmarks                 bool            `yaml:"report_landmarks" env:"DESCANT_REPORT_LANDMARKS" envDefault:"true"`

	// Presentation
	ReportObjectDescriptions bool `yaml:"report_object_descriptions" env:"DESCANT_REPORT_OBJECT_DESCRIPTIONS" envDefault:"true"`
	ReportKeyboardShortcuts  bool `yaml:"report_keyboard_shortcuts" env:"DESCANT_REPORT_KEYBOARD_SHORTCUTS" envDefault:"true"`
	ReportDetails            bool `yaml:"report_details" env:"DESCANT_REPORT_DETAILS" envDefault:"true"`
	ReportAriaDescription    bool `yaml:"report_aria_description" env:"DESCANT_REPORT_ARIA_DESCRIPTION" envDefault:"true"`
	ReportPosition           bool `yaml:"report_position" env:"DESCANT_REPORT_POSITION" envDefault:"true"`

	// Language handling
	AutoLanguageSwitching bool `yaml:"auto_language_switching" env:"DESCANT_AUTO_LANGUAGE_SWITCHING" envDefault:"true"`
	AutoDialectSwitching  bool `yaml:"auto_dialect_switching" env:"DESCANT_AUTO_DIALECT_SWITCHING" envDefault:"false"`
	TrustVoiceLanguage    bool `yaml:"trust_voice_language" env:"DESCANT_TRUST_VOICE_LANGUAGE" envDefault:"true"`

	// Character handling
	UnicodeNormalization       bool                   `yaml:"unicode_normalization" env:"DESCANT_UNICODE_NORMALIZATION" envDefault:"false"`
	ReportNormalizedForCharNav bool                   `yaml:"report_normalized_for_char_nav" env:"DESCANT_REPORT_NORMALIZED_FOR_CHAR_NAV" envDefault:"false"`
	SymbolLevel                characters.SymbolLevel `yaml:"symbol_level" env:"DESCANT_SYMBOL_LEVEL" envDefault:"100"`
	SayCapForCapitals          bool                   `yaml:"say_cap_for_capitals" env:"DESCANT_SAY_CAP_FOR_CAPITALS" envDefault:"false"`
	CapPitchChange             int                    `yaml:"cap_pitch_change" env:"DESCANT_CAP_PITCH_CHANGE" envDefault:"30"`
	BeepForCapitals            bool                   `yaml:"beep_for_capitals" env:"DESCANT_BEEP_FOR_CAPITALS" envDefault:"false"`
	UseSpellingFunctionality   bool                   `yaml:"use_spelling_functionality" env:"DESCANT_USE_SPELLING_FUNCTIONALITY" envDefault:"true"`
	DelayedCharacterDesc       bool                   `yaml:"delayed_character_descriptions" env:"DESCANT_DELAYED_CHARACTER_DESCRIPTIONS" envDefault:"false"`
}

// DefaultConfig returns a Config with the defaults from the struct tags.
func DefaultConfig() Config {
	return Config{
		ReportTables:          true,
		ReportTableHeaders:    HeadersRowsAndColumns,
		ReportTableCellCoords: true,
		ReportPage:            true,
		ReportHeadings:        true,
		ReportRevisions:       true,
		ReportHighlight:       true,
		ReportLinks:           true,
		ReportComments:        true,
		ReportBookmarks:       true,
		ReportSpellingErrors:  true,
		ReportClickable:       true,
		ReportLandmarks:       true,

		ReportObjectDescriptions: true,
		ReportKeyboardShortcuts:  true,
		ReportDetails:            true,
		ReportAriaDescription:    true,
		ReportPosition:           true,

		AutoLanguageSwitching: true,
		TrustVoiceLanguage:    true,

		IgnoreBlankLinesForIndentation: true,
		SymbolLevel:                    characters.LevelSome,
		CapPitchChange:                 30,
		UseSpellingFunctionality:       true,
	}
}

// ConfigFromEnv returns the default config with environment overrides
// applied.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment config: %w", err)
	}
	return cfg, nil
}

// Validate checks values that have constrained ranges.
func (c *Config) Validate() error {
	switch c.SymbolLevel {
	case characters.LevelNone, characters.LevelSome, characters.LevelMost,
		characters.LevelAll, characters.LevelChar:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidSymbolLevel, c.SymbolLevel)
	}
	if c.ReportLineIndentation < IndentOff || c.ReportLineIndentation > IndentSpeechAndTones {
		return fmt.Errorf("%w: %d", ErrInvalidIndentMode, c.ReportLineIndentation)
	}
	return nil
}
