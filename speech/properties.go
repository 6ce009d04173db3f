package speech

import (
	"fmt"

	"github.com/voxhollow/descant/speech/document"
)

// Properties is the structured request for one subject's property speech.
// Optional fields left at zero are absent. SpeakRole distinguishes "speak
// the role" from "the role is context for other fields".
type Properties struct {
	Name string

	Role      document.Role
	SpeakRole bool
	RoleText  string

	Value string

	// States nil means states were not requested; an empty set means the
	// subject simply has none, which still allows negative states.
	States         document.StateSet
	RealStates     document.StateSet
	NegativeStates document.StateSet

	Description      string
	KeyboardShortcut string
	Placeholder      string
	ErrorMessage     string

	CellCoordsText         string
	RowNumber              int
	ColumnNumber           int
	RowSpan                int
	ColumnSpan             int
	RowHeaderText          string
	ColumnHeaderText       string
	IncludeTableCellCoords bool
	TableID                string
	RowCount               int
	ColumnCount            int

	Current      document.IsCurrent
	HasDetails   bool
	DetailsRoles []document.Role

	IndexInGroup        int
	SimilarItemsInGroup int
	Level               *int
}

// PropertiesSpeech assembles the final wording order for one subject:
// name, role, value, states, description, shortcut, table coordinates and
// spans, counts, current and details markers, position in group, level and
// error message. Table rows and columns repeat only when the table, number
// or span actually changed.
func (e *Engine) PropertiesSpeech(reason Reason, p *Properties) Sequence {
	var seq Sequence
	seq = seq.appendText(p.Name)

	role := p.Role
	speakRole := p.SpeakRole && role != document.RoleChartElement
	if speakRole && e.shouldSpeakRole(reason, p, role) {
		if p.RoleText != "" {
			seq = seq.appendText(p.RoleText)
		} else {
			seq = seq.appendText(role.String())
		}
	}

	if p.Value != "" && !role.SilentValue() {
		seq = seq.appendText(p.Value)
	}

	if p.States != nil || len(p.NegativeStates) > 0 {
		// The spoken states may be filtered down to what changed; the
		// real states still decide which negatives apply.
		real := p.RealStates
		if real == nil {
			real = p.States
		}
		for _, label := range labelStates(p.States, real, p.NegativeStates) {
			seq = seq.appendText(label)
		}
	}

	// A description that merely repeats the name is noise, unless the
	// value changed and the repetition is the news.
	if p.Description != "" && (p.Description != p.Name || reason == ReasonChange) {
		seq = seq.appendText(p.Description)
	}
	seq = seq.appendText(p.KeyboardShortcut)

	if p.IncludeTableCellCoords && p.CellCoordsText != "" {
		seq = seq.appendText(p.CellCoordsText)
	}
	if p.CellCoordsText != "" || p.RowNumber != 0 || p.ColumnNumber != 0 {
		seq = e.appendTableCoords(seq, p)
	}
	if text := rowAndColumnCountText(p.RowCount, p.ColumnCount); text != "" {
		seq = seq.appendText(text)
	}
	if p.RowCount != 0 || p.ColumnCount != 0 {
		// Entering a table: treat the next cell as belonging to a new
		// table even if the previous one had the same identity.
		e.tables.tableID = ""
	}

	if p.Current != document.CurrentNo {
		seq = seq.appendText(p.Current.String())
	}
	if p.HasDetails && e.cfg.ReportDetails {
		if len(p.DetailsRoles) > 0 {
			for _, r := range p.DetailsRoles {
				seq = seq.appendText(fmt.Sprintf("has %s", r.String()))
			}
		} else {
			seq = seq.appendText("has details")
		}
	}
	seq = seq.appendText(p.Placeholder)

	if e.cfg.ReportPosition && p.IndexInGroup > 0 && p.IndexInGroup <= p.SimilarItemsInGroup {
		seq = seq.appendText(fmt.Sprintf("%d of %d", p.IndexInGroup, p.SimilarItemsInGroup))
	}
	if p.Level != nil {
		levelText := fmt.Sprintf("level %d", *p.Level)
		if (role == document.RoleTreeViewItem || role == document.RoleListItem) &&
			*p.Level != e.tables.treeLevel {
			seq = append(Sequence{Text(levelText)}, seq...)
			e.tables.treeLevel = *p.Level
		} else {
			seq = seq.appendText(levelText)
		}
	}
	seq = seq.appendText(p.ErrorMessage)
	return seq
}

// shouldSpeakRole applies the silent-on-focus rule: during quiet navigation
// reasons, a role with nothing else to say about it stays quiet unless a
// role text was explicitly supplied.
func (e *Engine) shouldSpeakRole(reason Reason, p *Properties, role document.Role) bool {
	quiet := reason == ReasonSayAll || reason == ReasonCaret ||
		reason == ReasonFocus || reason == ReasonQuickNav
	if p.RoleText == "" && quiet &&
		(p.Name != "" || p.Value != "" || p.CellCoordsText != "" ||
			p.RowNumber != 0 || p.ColumnNumber != 0) &&
		role.SilentOnFocus() {
		return false
	}
	if role == document.RoleMath && (reason == ReasonCaret || reason == ReasonSayAll) {
		return false
	}
	return true
}

// appendTableCoords speaks row and column context, suppressing repeats of
// an unchanged row or column number within the same table. A differing
// table identity always re-announces both.
func (e *Engine) appendTableCoords(seq Sequence, p *Properties) Sequence {
	// A missing table identity always reads as a different table; the
	// memory is only updated when an identity was given.
	sameTable := p.TableID != "" && p.TableID == e.tables.tableID
	if p.TableID != "" && !sameTable {
		e.tables.tableID = p.TableID
	}
	rowSpan := p.RowSpan
	if rowSpan < 1 {
		rowSpan = 1
	}
	columnSpan := p.ColumnSpan
	if columnSpan < 1 {
		columnSpan = 1
	}
	if p.RowNumber != 0 && (!sameTable || p.RowNumber != e.tables.rowNumber || rowSpan != e.tables.rowSpan) {
		seq = seq.appendText(p.RowHeaderText)
		if p.IncludeTableCellCoords && p.CellCoordsText == "" {
			seq = seq.appendText(fmt.Sprintf("row %d", p.RowNumber))
			if rowSpan > 1 && columnSpan <= 1 {
				seq = seq.appendText(fmt.Sprintf("through %d", p.RowNumber+rowSpan-1))
			}
		}
		e.tables.rowNumber = p.RowNumber
		e.tables.rowSpan = rowSpan
	}
	if p.ColumnNumber != 0 && (!sameTable || p.ColumnNumber != e.tables.columnNumber || columnSpan != e.tables.columnSpan) {
		seq = seq.appendText(p.ColumnHeaderText)
		if p.IncludeTableCellCoords && p.CellCoordsText == "" {
			seq = seq.appendText(fmt.Sprintf("column %d", p.ColumnNumber))
			if columnSpan > 1 && rowSpan <= 1 {
				seq = seq.appendText(fmt.Sprintf("through %d", p.ColumnNumber+columnSpan-1))
			}
		}
		e.tables.columnNumber = p.ColumnNumber
		e.tables.columnSpan = columnSpan
	}
	if p.IncludeTableCellCoords && p.CellCoordsText == "" && rowSpan > 1 && columnSpan > 1 {
		seq = seq.appendText(fmt.Sprintf("through row %d column %d",
			p.RowNumber+rowSpan-1, p.ColumnNumber+columnSpan-1))
	}
	return seq
}

// labelStates renders positive states followed by removed states in their
// negative wording. Structural states stay silent, and a lost selection is
// only reported for a control whose real states show it can be selected.
func labelStates(states, real, negative document.StateSet) []string {
	var labels []string
	for _, s := range states.Sorted() {
		if s.Spoken() {
			labels = append(labels, s.String())
		}
	}
	for _, s := range negative.Sorted() {
		if !s.Spoken() {
			continue
		}
		if s == document.StateSelected && !real.Has(document.StateSelectable) {
			continue
		}
		labels = append(labels, s.NegativeString())
	}
	return labels
}

func rowAndColumnCountText(rowCount, columnCount int) string {
	switch {
	case rowCount != 0 && columnCount != 0:
		return fmt.Sprintf("with %s and %s", rowCountText(rowCount), columnCountText(columnCount))
	case columnCount != 0:
		return "with " + columnCountText(columnCount)
	case rowCount != 0:
		return "with " + rowCountText(rowCount)
	}
	return ""
}

func rowCountText(count int) string {
	if count == 1 {
		return "1 row"
	}
	return fmt.Sprintf("%d rows", count)
}

func columnCountText(count int) string {
	if count == 1 {
		return "1 column"
	}
	return fmt.Sprintf("%d columns", count)
}
