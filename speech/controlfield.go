package speech

import (
	"fmt"
	"strings"

	"github.com/voxhollow/descant/speech/document"
)

// fieldTransition describes how a describe call crossed a control field.
type fieldTransition int

const (
	// startAddedToStack: the boundary newly encloses the position.
	startAddedToStack fieldTransition = iota
	// startRelative: the boundary opens inside the described range.
	startRelative
	// startInStack: the boundary still encloses the position.
	startInStack
	// endRemovedFromStack: the boundary no longer encloses the position.
	endRemovedFromStack
	// endRelative: the boundary closes inside the described range.
	endRelative
	// endInStack: the range ends while the boundary remains open.
	endInStack
)

func (t fieldTransition) isStart() bool {
	return t == startAddedToStack || t == startRelative || t == startInStack
}

// presentationOptions builds the classification options from the engine
// configuration.
func (e *Engine) presentationOptions(extraDetail bool) document.PresentationOptions {
	return document.PresentationOptions{
		ReportLandmarks: e.cfg.ReportLandmarks,
		ExtraDetail:     extraDetail,
	}
}

// controlFieldSpeech produces the phrase for crossing one control field in
// the given direction. Hidden fields are silent.
func (e *Engine) controlFieldSpeech(
	field *document.ControlField,
	ancestors []*document.ControlField,
	transition fieldTransition,
	extraDetail bool,
	reason Reason,
) Sequence {
	if field == nil || field.IsHidden {
		return nil
	}
	presCat := field.PresentationCategory(ancestors, e.presentationOptions(extraDetail), reason)
	role := field.Role
	states := field.States

	name := ""
	if reason.IsNavigation() || field.AlwaysReportName {
		name = field.Name
	}
	var errorMessage string
	if states.Has(document.StateInvalidEntry) {
		errorMessage = field.ErrorMessage
	}

	reportDescriptionAsAnnotation := e.cfg.ReportAriaDescription &&
		!field.DescriptionIsContent && field.DescriptionFromAria &&
		(reason.IsNavigation() || reason == ReasonCaret || reason == ReasonSayAll)
	description := ""
	if (e.cfg.ReportObjectDescriptions && !field.DescriptionIsContent && reason.IsNavigation()) ||
		reportDescriptionAsAnnotation {
		description = field.Description
	}

	tableID := ""
	if presCat != document.PresentationLayout {
		tableID = field.TableID
	}

	var roleSeq Sequence
	switch {
	case field.RoleText != "":
		roleSeq = Sequence{Text(field.RoleText)}
	case role == document.RoleLandmark && field.Landmark != "":
		roleSeq = Sequence{Text(field.Landmark + " " + document.RoleLandmark.String())}
	case role != document.RoleChartElement:
		// The silencing decision needs the field's context even though
		// only the role itself is spoken here.
		roleCtx := &Properties{
			Name:         name,
			Value:        field.Value,
			RowNumber:    field.RowNumber,
			ColumnNumber: field.ColumnNumber,
		}
		if e.shouldSpeakRole(reason, roleCtx, role) {
			roleSeq = Sequence{Text(role.String())}
		}
	}
	stateSeq := e.PropertiesSpeech(reason, &Properties{Role: role, States: states})
	var shortcutSeq Sequence
	if e.cfg.ReportKeyboardShortcuts {
		shortcutSeq = e.PropertiesSpeech(reason, &Properties{KeyboardShortcut: field.KeyboardShortcut})
	}
	currentSeq := e.PropertiesSpeech(reason, &Properties{Current: field.Current})
	detailsSeq := e.PropertiesSpeech(reason, &Properties{HasDetails: field.HasDetails, DetailsRoles: field.DetailsRoles})
	placeholderSeq := e.PropertiesSpeech(reason, &Properties{Placeholder: field.Placeholder})
	errorSeq := e.PropertiesSpeech(reason, &Properties{ErrorMessage: errorMessage})
	nameSeq := e.PropertiesSpeech(reason, &Properties{Name: name})
	valueSeq := e.PropertiesSpeech(reason, &Properties{Value: field.Value, Role: role})
	var descriptionSeq Sequence
	if description != "" && (description != name || reason == ReasonChange) {
		descriptionSeq = e.PropertiesSpeech(reason, &Properties{Description: description})
	}
	var levelSeq Sequence
	if field.Level != 0 {
		level := field.Level
		levelSeq = e.PropertiesSpeech(reason, &Properties{Level: &level, Role: role})
	}

	// When this boundary should be spoken at all.
	speakEntry := false
	speakWithinForLine := false
	speakExitForLine := false
	speakExitForOther := false
	switch presCat {
	case document.PresentationSingleLine:
		speakEntry = true
		speakWithinForLine = true
		speakExitForOther = true
	case document.PresentationMarker, document.PresentationCell:
		speakEntry = true
	case document.PresentationContainer:
		speakEntry = true
		speakExitForLine = field.RoleText != "" || role != document.RoleLandmark
		speakExitForOther = true
	}

	speakContentFirst := shouldSpeakContentFirst(reason, role, presCat, tableID, states)
	speakStatesFirst := role == document.RoleLink

	// List items get their count announced along with the other entry
	// wording further down.
	containerContains := ""
	if field.ChildControlCount > 0 && transition == startAddedToStack &&
		role == document.RoleList && states.Has(document.StateReadOnly) {
		containerContains = fmt.Sprintf("with %d items", field.ChildControlCount)
		if field.ChildControlCount == 1 {
			containerContains = "with 1 item"
		}
	}

	switch {
	case transition == startAddedToStack && role == document.RoleTable && tableID != "":
		out := append(Sequence{}, nameSeq...)
		out = append(out, roleSeq...)
		out = append(out, stateSeq...)
		out = append(out, e.PropertiesSpeech(reason, &Properties{
			TableID:     tableID,
			RowCount:    field.RowCount,
			ColumnCount: field.ColumnCount,
		})...)
		out = append(out, levelSeq...)
		return out

	case len(nameSeq) > 0 && reason.IsNavigation() && transition == startAddedToStack &&
		(role == document.RoleGrouping || role == document.RolePropertyPage ||
			role == document.RoleLandmark || role == document.RoleRegion):
		out := append(Sequence{}, nameSeq...)
		if (role != document.RoleLandmark && role != document.RoleRegion) || e.cfg.ReportLandmarks {
			out = append(out, roleSeq...)
		}
		return out

	case (transition == startAddedToStack || transition == startRelative) && tableID != "" &&
		(role == document.RoleTableCell || role == document.RoleTableColumnHeader ||
			role == document.RoleTableRowHeader):
		props := &Properties{
			TableID:                tableID,
			RowNumber:              field.RowNumber,
			ColumnNumber:           field.ColumnNumber,
			RowSpan:                field.RowSpan,
			ColumnSpan:             field.ColumnSpan,
			IncludeTableCellCoords: e.cfg.ReportTableCellCoords,
		}
		if e.cfg.ReportTableHeaders.Rows() {
			props.RowHeaderText = field.RowHeaderText
		}
		if e.cfg.ReportTableHeaders.Columns() {
			props.ColumnHeaderText = field.ColumnHeaderText
		}
		out := e.PropertiesSpeech(reason, props)
		out = append(out, stateSeq...)
		out = append(out, currentSeq...)
		out = append(out, detailsSeq...)
		return out
	}

	entering := (speakEntry &&
		((speakContentFirst && (transition == endRelative || transition == endInStack)) ||
			(!speakContentFirst && (transition == startAddedToStack || transition == startRelative)))) ||
		(speakWithinForLine && !speakContentFirst && !extraDetail && transition == startInStack)

	switch {
	case entering:
		var out Sequence
		if field.Content != "" && speakContentFirst {
			out = out.appendText(field.Content)
		}
		if field.Placeholder != "" {
			valueSeq = placeholderSeq
		}
		// A control labelled by its own content would speak its name
		// twice; the content carries it.
		if !field.LabelledByContent {
			out = append(out, nameSeq...)
		}
		if speakStatesFirst {
			out = append(out, stateSeq...)
			out = append(out, roleSeq...)
		} else {
			out = append(out, roleSeq...)
			out = append(out, stateSeq...)
		}
		out = out.appendText(containerContains)
		out = append(out, currentSeq...)
		out = append(out, detailsSeq...)
		out = append(out, valueSeq...)
		out = append(out, descriptionSeq...)
		out = append(out, levelSeq...)
		out = append(out, shortcutSeq...)
		if field.Content != "" && !speakContentFirst {
			out = out.appendText(field.Content)
		}
		out = append(out, errorSeq...)
		return out

	case (transition == endRemovedFromStack || transition == endRelative) && len(roleSeq) > 0 &&
		((!extraDetail && speakExitForLine) || (extraDetail && speakExitForOther)):
		if joined, ok := joinTextOnly(roleSeq); ok {
			return Sequence{Text("out of " + joined)}
		}
		return roleSeq

	case !speakEntry && (transition == startAddedToStack || transition == startRelative):
		var out Sequence
		if field.Current != document.CurrentNo {
			out = append(out, currentSeq...)
		}
		if field.HasDetails {
			out = append(out, detailsSeq...)
		}
		if len(descriptionSeq) > 0 && reportDescriptionAsAnnotation {
			out = append(out, descriptionSeq...)
		}
		if role == document.RoleTreeViewItem {
			if states.Has(document.StateExpanded) {
				out = append(out, e.PropertiesSpeech(reason, &Properties{
					Role: role, States: document.NewStateSet(document.StateExpanded),
				})...)
			} else if states.Has(document.StateCollapsed) {
				out = append(out, e.PropertiesSpeech(reason, &Properties{
					Role: role, States: document.NewStateSet(document.StateCollapsed),
				})...)
			}
			out = append(out, levelSeq...)
		}
		if role == document.RoleGraphic && field.Content != "" {
			out = out.appendText(field.Content)
		}
		return out
	}
	return nil
}

// shouldSpeakContentFirst reports whether content is spoken before the
// boundary wording: focus-style navigation onto light, non-editable,
// non-table fields reads the content first.
func shouldSpeakContentFirst(
	reason Reason,
	role document.Role,
	presCat document.PresentationCategory,
	tableID string,
	states document.StateSet,
) bool {
	if !reason.IsNavigation() {
		return false
	}
	if presCat == document.PresentationContainer {
		return false
	}
	switch role {
	case document.RoleEditableText, document.RoleComboBox, document.RoleTreeView,
		document.RoleList, document.RoleLandmark, document.RoleRegion:
		return false
	}
	return tableID == "" && !states.Has(document.StateEditable)
}

// joinTextOnly joins a sequence consisting solely of text chunks.
func joinTextOnly(seq Sequence) (string, bool) {
	parts := make([]string, 0, len(seq))
	for _, item := range seq {
		t, ok := item.(Text)
		if !ok {
			return "", false
		}
		parts = append(parts, string(t))
	}
	return strings.Join(parts, " "), true
}
