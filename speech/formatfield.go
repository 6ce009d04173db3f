package speech

import (
	"fmt"

	"github.com/voxhollow/descant/speech/document"
)

// formatContext carries the non-attribute inputs of a format diff.
type formatContext struct {
	reason        Reason
	unit          document.Unit
	extraDetail   bool
	initialFormat bool

	// Spelling errors are too expensive to report when moving by paragraph
	// or cell.
	suppressSpellingErrors bool
}

// announceAtBoundary reports whether boundary-style attributes (heading
// level, collapsed) re-announce at this position even without a change,
// mirroring how a control field would have been announced.
func (c formatContext) announceAtBoundary() bool {
	if !c.initialFormat {
		return false
	}
	return c.reason.IsNavigation() ||
		c.unit == document.UnitLine || c.unit == document.UnitParagraph
}

// formatFieldSpeech emits phrases for every formatting attribute that
// changed relative to the cached snapshot. A nil cache is the neutral
// baseline of a first description, not an error.
func (e *Engine) formatFieldSpeech(
	attrs *document.FormatField,
	cache *document.FormatField,
	ctx formatContext,
) Sequence {
	var seq Sequence
	hasOld := cache != nil
	old := cache
	if old == nil {
		old = &document.FormatField{}
	}

	if e.cfg.ReportTables {
		seq = append(seq, tableInfoSpeech(attrs.Table, old.Table)...)
	}

	if e.cfg.ReportPage {
		if attrs.PageNumber != 0 && attrs.PageNumber != old.PageNumber {
			seq = seq.appendText(fmt.Sprintf("page %d", attrs.PageNumber))
		}
		if attrs.SectionNumber != 0 && attrs.SectionNumber != old.SectionNumber {
			seq = seq.appendText(fmt.Sprintf("section %d", attrs.SectionNumber))
		}
		columnChanged := (attrs.TextColumnNumber != 0 && attrs.TextColumnNumber != old.TextColumnNumber) ||
			(attrs.TextColumnCount != 0 && attrs.TextColumnCount != old.TextColumnCount)
		// Opening a plain single-column document should not produce
		// column chatter.
		firstSingleColumn := attrs.TextColumnCount != 0 && attrs.TextColumnCount <= 1 && !hasOld
		if columnChanged && !firstSingleColumn {
			switch {
			case attrs.TextColumnNumber != 0 && attrs.TextColumnCount != 0:
				seq = seq.appendText(fmt.Sprintf("column %d of %d", attrs.TextColumnNumber, attrs.TextColumnCount))
			case attrs.TextColumnCount != 0:
				if attrs.TextColumnCount == 1 {
					seq = seq.appendText("1 column")
				} else {
					seq = seq.appendText(fmt.Sprintf("%d columns", attrs.TextColumnCount))
				}
			case attrs.TextColumnNumber != 0:
				seq = seq.appendText(fmt.Sprintf("column %d", attrs.TextColumnNumber))
			}
		}
	}

	if attrs.SectionBreak != "" {
		switch attrs.SectionBreak {
		case "continuous":
			seq = seq.appendText("continuous section break")
		case "newColumn":
			seq = seq.appendText("new column section break")
		case "newPage":
			seq = seq.appendText("new page section break")
		case "evenPages":
			seq = seq.appendText("even pages section break")
		case "oddPages":
			seq = seq.appendText("odd pages section break")
		}
	}
	if attrs.ColumnBreak {
		seq = seq.appendText("column break")
	}

	if e.cfg.ReportHeadings {
		if attrs.HeadingLevel != 0 &&
			(ctx.announceAtBoundary() || attrs.HeadingLevel != old.HeadingLevel) {
			seq = seq.appendText(fmt.Sprintf("heading level %d", attrs.HeadingLevel))
		}
	}
	if attrs.Collapsed && (ctx.announceAtBoundary() || attrs.Collapsed != old.Collapsed) {
		seq = seq.appendText(document.StateCollapsed.String())
	}

	if e.cfg.ReportStyle {
		if attrs.Style != old.Style || (!hasOld && attrs.Style != "") {
			if attrs.Style != "" {
				seq = seq.appendText("style " + attrs.Style)
			} else if hasOld {
				seq = seq.appendText("default style")
			}
		}
	}
	if e.cfg.ReportCellBorders {
		if changedStr(attrs.BorderStyle, old.BorderStyle, hasOld) {
			if attrs.BorderStyle != "" {
				seq = seq.appendText(attrs.BorderStyle)
			} else {
				seq = seq.appendText("no border lines")
			}
		}
	}
	if e.cfg.ReportFontName {
		if attrs.FontFamily != "" && attrs.FontFamily != old.FontFamily {
			seq = seq.appendText(attrs.FontFamily)
		}
		if attrs.FontName != "" && attrs.FontName != old.FontName {
			seq = seq.appendText(attrs.FontName)
		}
	}
	if e.cfg.ReportFontSize {
		if attrs.FontSize != "" && attrs.FontSize != old.FontSize {
			seq = seq.appendText(attrs.FontSize)
		}
	}
	if e.cfg.ReportColor {
		seq = append(seq, colorSpeech(attrs, old)...)
		if changedStr(attrs.BackgroundPattern, old.BackgroundPattern, hasOld) {
			pattern := attrs.BackgroundPattern
			if pattern == "" {
				pattern = "none"
			}
			seq = seq.appendText("background pattern " + pattern)
		}
	}
	if e.cfg.ReportLineNumber {
		if attrs.LineNumber != 0 && attrs.LineNumber != old.LineNumber {
			seq = seq.appendText(fmt.Sprintf("line %d", attrs.LineNumber))
		}
	}
	if e.cfg.ReportRevisions {
		if changedBool(attrs.RevisionInsertion, old.RevisionInsertion, hasOld) {
			seq = seq.appendText(pick(attrs.RevisionInsertion, "inserted", "not inserted"))
		}
		if changedBool(attrs.RevisionDeletion, old.RevisionDeletion, hasOld) {
			seq = seq.appendText(pick(attrs.RevisionDeletion, "deleted", "not deleted"))
		}
		if changedStr(attrs.Revision, old.Revision, hasOld) {
			if attrs.Revision != "" {
				seq = seq.appendText("revised " + attrs.Revision)
			} else {
				seq = seq.appendText("no revised " + old.Revision)
			}
		}
	}
	if e.cfg.ReportHighlight {
		if changedBool(attrs.Marked, old.Marked, hasOld) {
			seq = seq.appendText(pick(attrs.Marked, "marked", "not marked"))
		}
		if changedStr(attrs.HighlightColor, old.HighlightColor, hasOld) {
			if attrs.HighlightColor != "" {
				seq = seq.appendText("highlighted in " + attrs.HighlightColor)
			} else {
				seq = seq.appendText("not highlighted")
			}
		}
	}
	if e.cfg.ReportEmphasis {
		if changedBool(attrs.Strong, old.Strong, hasOld) {
			seq = seq.appendText(pick(attrs.Strong, "strong", "not strong"))
		}
		if changedBool(attrs.Emphasised, old.Emphasised, hasOld) {
			seq = seq.appendText(pick(attrs.Emphasised, "emphasised", "not emphasised"))
		}
	}
	if e.cfg.FontAttributeReporting {
		if changedBool(attrs.Bold, old.Bold, hasOld) {
			seq = seq.appendText(pick(attrs.Bold, "bold", "no bold"))
		}
		if changedBool(attrs.Italic, old.Italic, hasOld) {
			seq = seq.appendText(pick(attrs.Italic, "italic", "no italic"))
		}
		if changedStr(attrs.Strikethrough, old.Strikethrough, hasOld) {
			switch {
			case attrs.Strikethrough == "double":
				seq = seq.appendText("double strikethrough")
			case attrs.Strikethrough != "":
				seq = seq.appendText("strikethrough")
			default:
				seq = seq.appendText("no strikethrough")
			}
		}
		if changedBool(attrs.Underline, old.Underline, hasOld) {
			seq = seq.appendText(pick(attrs.Underline, "underlined", "not underlined"))
		}
		if changedBool(attrs.Hidden, old.Hidden, hasOld) {
			seq = seq.appendText(pick(attrs.Hidden, "hidden", "not hidden"))
		}
	}
	if e.cfg.ReportSuperscriptsAndSubscripts {
		if attrs.TextPosition != old.TextPosition {
			switch {
			case attrs.TextPosition == document.TextPositionSuperscript ||
				attrs.TextPosition == document.TextPositionSubscript:
				seq = seq.appendText(attrs.TextPosition.String())
			case attrs.TextPosition == document.TextPositionBaseline &&
				hasOld && old.TextPosition != document.TextPositionUndefined:
				seq = seq.appendText(attrs.TextPosition.String())
			}
		}
	}
	if e.cfg.ReportAlignment {
		if attrs.TextAlign != "" && attrs.TextAlign != old.TextAlign {
			seq = seq.appendText("align " + attrs.TextAlign)
		}
		if attrs.VerticalAlign != "" && attrs.VerticalAlign != old.VerticalAlign {
			seq = seq.appendText("vertical align " + attrs.VerticalAlign)
		}
	}
	if e.cfg.ReportParagraphIndentation {
		seq = appendIndentAttr(seq, "left indent", "no left indent", attrs.LeftIndent, old.LeftIndent, hasOld)
		seq = appendIndentAttr(seq, "right indent", "no right indent", attrs.RightIndent, old.RightIndent, hasOld)
		seq = appendIndentAttr(seq, "hanging indent", "no hanging indent", attrs.HangingIndent, old.HangingIndent, hasOld)
		seq = appendIndentAttr(seq, "first line indent", "no first line indent", attrs.FirstLineIndent, old.FirstLineIndent, hasOld)
	}
	if e.cfg.ReportLineSpacing {
		if changedStr(attrs.LineSpacing, old.LineSpacing, hasOld) {
			seq = seq.appendText("line spacing " + attrs.LineSpacing)
		}
	}
	if e.cfg.ReportLinks {
		if changedBool(attrs.Link, old.Link, hasOld) {
			seq = seq.appendText(pick(attrs.Link, "link", "out of link"))
		}
	}
	if e.cfg.ReportComments {
		if attrs.Comment != old.Comment && (attrs.Comment != document.CommentNone || hasOld) {
			switch attrs.Comment {
			case document.CommentDraft:
				seq = seq.appendText("has draft comment")
			case document.CommentResolved:
				seq = seq.appendText("has resolved comment")
			case document.CommentGeneric:
				seq = seq.appendText("has comment")
			case document.CommentNone:
				if ctx.extraDetail {
					seq = seq.appendText("out of comment")
				}
			}
		}
	}
	if e.cfg.ReportBookmarks {
		if changedBool(attrs.Bookmark, old.Bookmark, hasOld) {
			if attrs.Bookmark {
				seq = seq.appendText("bookmark")
			} else if ctx.extraDetail {
				seq = seq.appendText("out of bookmark")
			}
		}
	}
	if e.cfg.ReportSpellingErrors && !ctx.suppressSpellingErrors {
		if changedBool(attrs.InvalidSpelling, old.InvalidSpelling, hasOld) {
			if attrs.InvalidSpelling {
				seq = seq.appendText("spelling error")
			} else if ctx.extraDetail {
				seq = seq.appendText("out of spelling error")
			}
		}
		if changedBool(attrs.InvalidGrammar, old.InvalidGrammar, hasOld) {
			if attrs.InvalidGrammar {
				seq = seq.appendText("grammar error")
			} else if ctx.extraDetail {
				seq = seq.appendText("out of grammar error")
			}
		}
	}

	// A line prefix holds the bullet or number a list item displays
	// outside its text content. It repeats across runs within the item,
	// so it is unsafe below line granularity unless flagged otherwise.
	if attrs.LinePrefix != "" {
		if attrs.LinePrefixSpeakAlways ||
			ctx.unit == document.UnitLine || ctx.unit == document.UnitSentence ||
			ctx.unit == document.UnitParagraph || ctx.unit == document.UnitReadingChunk {
			seq = seq.appendText(attrs.LinePrefix)
		}
	}
	return seq
}

// colorSpeech renders foreground and background as a pair: both changed
// gives "X on Y", a lone foreground change gives "X", a lone background
// change gives "Y background".
func colorSpeech(attrs, old *document.FormatField) Sequence {
	var seq Sequence
	bgChanged := attrs.BackgroundColor != old.BackgroundColor ||
		attrs.BackgroundColor2 != old.BackgroundColor2
	bgText := attrs.BackgroundColor
	if attrs.BackgroundColor2 != "" {
		bgText = fmt.Sprintf("%s to %s", bgText, attrs.BackgroundColor2)
	}
	fgChanged := attrs.Color != old.Color
	switch {
	case attrs.Color != "" && attrs.BackgroundColor != "" && fgChanged && bgChanged:
		seq = seq.appendText(fmt.Sprintf("%s on %s", attrs.Color, bgText))
	case attrs.Color != "" && fgChanged:
		seq = seq.appendText(attrs.Color)
	case attrs.BackgroundColor != "" && bgChanged:
		seq = seq.appendText(bgText + " background")
	}
	return seq
}

// tableInfoSpeech announces entering, leaving and moving within a table.
// Continuity is judged by the table identity, never structurally.
func tableInfoSpeech(info, old *document.TableInfo) Sequence {
	if info == nil && old == nil {
		return nil
	}
	if info == nil {
		return Sequence{Text("out of table")}
	}
	var seq Sequence
	newTable := old == nil || info.ID != old.ID
	if newTable {
		seq = seq.appendText(fmt.Sprintf("table with %s and %s",
			columnCountText(info.ColumnCount), rowCountText(info.RowCount)))
	}
	oldColumn := 0
	oldRow := 0
	if old != nil {
		oldColumn = old.ColumnNumber
		oldRow = old.RowNumber
	}
	if info.ColumnNumber != oldColumn {
		seq = seq.appendText(fmt.Sprintf("column %d", info.ColumnNumber))
	}
	if info.RowNumber != oldRow {
		seq = seq.appendText(fmt.Sprintf("row %d", info.RowNumber))
	}
	return seq
}

// changedBool implements the report-on-change rule for binary attributes:
// with no cached baseline only a set attribute speaks; with one, any flip
// speaks.
func changedBool(newVal, oldVal, hasOld bool) bool {
	if !hasOld {
		return newVal
	}
	return newVal != oldVal
}

// changedStr is changedBool for string-valued attributes.
func changedStr(newVal, oldVal string, hasOld bool) bool {
	if !hasOld {
		return newVal != ""
	}
	return newVal != oldVal
}

func appendIndentAttr(seq Sequence, label, noLabel, newVal, oldVal string, hasOld bool) Sequence {
	if !changedStr(newVal, oldVal, hasOld) {
		return seq
	}
	if newVal != "" {
		return seq.appendText(label + " " + newVal)
	}
	return seq.appendText(noLabel)
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
