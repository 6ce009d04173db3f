package speech

import (
	"testing"

	"github.com/voxhollow/descant/speech/document"
)

// verboseFormatConfig enables every formatting report toggle.
func verboseFormatConfig() Config {
	cfg := DefaultConfig()
	cfg.ReportStyle = true
	cfg.ReportCellBorders = true
	cfg.ReportFontName = true
	cfg.ReportFontSize = true
	cfg.ReportColor = true
	cfg.ReportLineNumber = true
	cfg.ReportEmphasis = true
	cfg.FontAttributeReporting = true
	cfg.ReportSuperscriptsAndSubscripts = true
	cfg.ReportAlignment = true
	cfg.ReportParagraphIndentation = true
	cfg.ReportLineSpacing = true
	return cfg
}

// TestFormatFieldSpeechSelfDiff tests that unchanged attributes stay quiet
// even with everything enabled.
func TestFormatFieldSpeechSelfDiff(t *testing.T) {
	e, _ := newTestEngine(t, verboseFormatConfig())

	attrs := &document.FormatField{
		FontName:     "Arial",
		FontSize:     "12 pt",
		Color:        "red",
		Bold:         true,
		HeadingLevel: 2,
		Link:         true,
		Table:        &document.TableInfo{ID: "t1", RowNumber: 1, ColumnNumber: 1},
	}
	cache := attrs.Clone()
	ctx := formatContext{reason: ReasonCaret, unit: document.UnitLine}
	if seq := e.formatFieldSpeech(attrs, cache, ctx); seq != nil {
		t.Errorf("sequence = %s, want nil for unchanged attributes", seq.String())
	}
}

// TestFormatFieldSpeechInitial tests a first description with no cached
// baseline.
func TestFormatFieldSpeechInitial(t *testing.T) {
	e, _ := newTestEngine(t, verboseFormatConfig())

	attrs := &document.FormatField{
		FontName: "Arial",
		Bold:     true,
		Link:     true,
	}
	ctx := formatContext{reason: ReasonCaret, unit: document.UnitLine}
	seq := e.formatFieldSpeech(attrs, nil, ctx)
	want := Sequence{Text("Arial"), Text("bold"), Text("link")}
	assertSequence(t, seq, want)
}

// TestFormatFieldSpeechBoolFlips tests positive and negative wording for
// binary attributes.
func TestFormatFieldSpeechBoolFlips(t *testing.T) {
	e, _ := newTestEngine(t, verboseFormatConfig())
	ctx := formatContext{reason: ReasonCaret, unit: document.UnitWord, extraDetail: true}

	tests := []struct {
		name     string
		attrs    *document.FormatField
		cache    *document.FormatField
		expected Sequence
	}{
		{
			name:     "bold on",
			attrs:    &document.FormatField{Bold: true},
			cache:    &document.FormatField{},
			expected: Sequence{Text("bold")},
		},
		{
			name:     "bold off",
			attrs:    &document.FormatField{},
			cache:    &document.FormatField{Bold: true},
			expected: Sequence{Text("no bold")},
		},
		{
			name:     "unset without baseline is quiet",
			attrs:    &document.FormatField{},
			cache:    nil,
			expected: nil,
		},
		{
			name:     "double strikethrough",
			attrs:    &document.FormatField{Strikethrough: "double"},
			cache:    &document.FormatField{},
			expected: Sequence{Text("double strikethrough")},
		},
		{
			name:     "strikethrough removed",
			attrs:    &document.FormatField{},
			cache:    &document.FormatField{Strikethrough: "single"},
			expected: Sequence{Text("no strikethrough")},
		},
		{
			name:     "out of link",
			attrs:    &document.FormatField{},
			cache:    &document.FormatField{Link: true},
			expected: Sequence{Text("out of link")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSequence(t, e.formatFieldSpeech(tt.attrs, tt.cache, ctx), tt.expected)
		})
	}
}

// TestColorSpeech tests the paired color wording.
func TestColorSpeech(t *testing.T) {
	tests := []struct {
		name     string
		attrs    *document.FormatField
		old      *document.FormatField
		expected Sequence
	}{
		{
			name:     "both changed",
			attrs:    &document.FormatField{Color: "red", BackgroundColor: "white"},
			old:      &document.FormatField{},
			expected: Sequence{Text("red on white")},
		},
		{
			name:     "foreground only",
			attrs:    &document.FormatField{Color: "blue", BackgroundColor: "white"},
			old:      &document.FormatField{Color: "red", BackgroundColor: "white"},
			expected: Sequence{Text("blue")},
		},
		{
			name:     "background only",
			attrs:    &document.FormatField{Color: "red", BackgroundColor: "black"},
			old:      &document.FormatField{Color: "red", BackgroundColor: "white"},
			expected: Sequence{Text("black background")},
		},
		{
			name: "gradient background",
			attrs: &document.FormatField{
				Color: "red", BackgroundColor: "white", BackgroundColor2: "blue",
			},
			old:      &document.FormatField{},
			expected: Sequence{Text("red on white to blue")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertSequence(t, colorSpeech(tt.attrs, tt.old), tt.expected)
		})
	}
}

// TestTableInfoSpeech tests table entry, movement and exit wording.
func TestTableInfoSpeech(t *testing.T) {
	inside := &document.TableInfo{
		ID: "t1", RowCount: 2, ColumnCount: 3, RowNumber: 1, ColumnNumber: 1,
	}

	t.Run("enter", func(t *testing.T) {
		seq := tableInfoSpeech(inside, nil)
		want := Sequence{
			Text("table with 3 columns and 2 rows"),
			Text("column 1"),
			Text("row 1"),
		}
		assertSequence(t, seq, want)
	})

	t.Run("move within", func(t *testing.T) {
		moved := *inside
		moved.RowNumber = 2
		assertSequence(t, tableInfoSpeech(&moved, inside), Sequence{Text("row 2")})
	})

	t.Run("exit", func(t *testing.T) {
		assertSequence(t, tableInfoSpeech(nil, inside), Sequence{Text("out of table")})
	})

	t.Run("outside throughout", func(t *testing.T) {
		if seq := tableInfoSpeech(nil, nil); seq != nil {
			t.Errorf("sequence = %s, want nil", seq.String())
		}
	})

	t.Run("different table re-announces", func(t *testing.T) {
		other := &document.TableInfo{
			ID: "t2", RowCount: 4, ColumnCount: 1, RowNumber: 1, ColumnNumber: 1,
		}
		seq := tableInfoSpeech(other, inside)
		assertSequence(t, seq, Sequence{Text("table with 1 column and 4 rows")})
	})
}

// TestFormatFieldSpeechHeadings tests boundary re-announcement of heading
// levels.
func TestFormatFieldSpeechHeadings(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())

	attrs := &document.FormatField{HeadingLevel: 2}
	cache := attrs.Clone()

	boundary := formatContext{
		reason: ReasonCaret, unit: document.UnitLine, initialFormat: true,
	}
	seq := e.formatFieldSpeech(attrs, cache, boundary)
	assertSequence(t, seq, Sequence{Text("heading level 2")})

	// Mid-range format changes only speak an actual level change.
	within := formatContext{reason: ReasonCaret, unit: document.UnitLine}
	if seq := e.formatFieldSpeech(attrs, cache, within); seq != nil {
		t.Errorf("sequence = %s, want nil for unchanged level", seq.String())
	}

	// Character review does not re-announce either.
	charNav := formatContext{
		reason: ReasonCaret, unit: document.UnitCharacter, initialFormat: true,
	}
	if seq := e.formatFieldSpeech(attrs, cache, charNav); seq != nil {
		t.Errorf("sequence = %s, want nil for character unit", seq.String())
	}
}

// TestFormatFieldSpeechTextColumns tests single-column suppression on the
// first description.
func TestFormatFieldSpeechTextColumns(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())
	ctx := formatContext{reason: ReasonCaret, unit: document.UnitLine}

	attrs := &document.FormatField{TextColumnCount: 1, TextColumnNumber: 1}
	if seq := e.formatFieldSpeech(attrs, nil, ctx); seq != nil {
		t.Errorf("sequence = %s, want nil for initial single column", seq.String())
	}

	attrs = &document.FormatField{TextColumnCount: 2, TextColumnNumber: 1}
	seq := e.formatFieldSpeech(attrs, nil, ctx)
	assertSequence(t, seq, Sequence{Text("column 1 of 2")})
}

// TestFormatFieldSpeechComments tests comment markers and their exit
// wording.
func TestFormatFieldSpeechComments(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())

	attrs := &document.FormatField{Comment: document.CommentDraft}
	ctx := formatContext{reason: ReasonCaret, unit: document.UnitLine}
	seq := e.formatFieldSpeech(attrs, nil, ctx)
	assertSequence(t, seq, Sequence{Text("has draft comment")})

	left := &document.FormatField{}
	cache := &document.FormatField{Comment: document.CommentGeneric}
	if seq := e.formatFieldSpeech(left, cache, ctx); seq != nil {
		t.Errorf("sequence = %s, want nil without extra detail", seq.String())
	}
	detail := ctx
	detail.extraDetail = true
	assertSequence(t, e.formatFieldSpeech(left, cache, detail),
		Sequence{Text("out of comment")})
}

// TestFormatFieldSpeechSpellingErrors tests the spelling marker and its
// paragraph-navigation suppression.
func TestFormatFieldSpeechSpellingErrors(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())

	attrs := &document.FormatField{InvalidSpelling: true}
	ctx := formatContext{reason: ReasonCaret, unit: document.UnitLine}
	assertSequence(t, e.formatFieldSpeech(attrs, nil, ctx),
		Sequence{Text("spelling error")})

	suppressed := ctx
	suppressed.suppressSpellingErrors = true
	if seq := e.formatFieldSpeech(attrs, nil, suppressed); seq != nil {
		t.Errorf("sequence = %s, want nil when suppressed", seq.String())
	}
}

// TestFormatFieldSpeechLinePrefix tests the unit gate on list bullets.
func TestFormatFieldSpeechLinePrefix(t *testing.T) {
	e, _ := newTestEngine(t, DefaultConfig())

	attrs := &document.FormatField{LinePrefix: "1."}
	lineCtx := formatContext{reason: ReasonCaret, unit: document.UnitLine}
	assertSequence(t, e.formatFieldSpeech(attrs, nil, lineCtx), Sequence{Text("1.")})

	charCtx := formatContext{reason: ReasonCaret, unit: document.UnitCharacter}
	if seq := e.formatFieldSpeech(attrs, nil, charCtx); seq != nil {
		t.Errorf("sequence = %s, want nil below line granularity", seq.String())
	}

	attrs.LinePrefixSpeakAlways = true
	assertSequence(t, e.formatFieldSpeech(attrs, nil, charCtx), Sequence{Text("1.")})
}
