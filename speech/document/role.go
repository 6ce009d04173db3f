package document

// Role identifies what kind of control a field represents.
type Role int

const (
	// RoleUnknown is used when the document model reports no role.
	RoleUnknown Role = iota
	RoleButton
	RoleCheckBox
	RoleChartElement
	RoleComboBox
	RoleDocument
	RoleEditableText
	RoleFrame
	RoleGraphic
	RoleGrouping
	RoleHeading
	RoleLandmark
	RoleLink
	RoleList
	RoleListItem
	RoleMath
	RoleMenuItem
	RolePane
	RoleParagraph
	RoleProgressBar
	RolePropertyPage
	RoleRadioButton
	RoleRegion
	RoleSection
	RoleTable
	RoleTableCell
	RoleTableColumnHeader
	RoleTableRowHeader
	RoleToggleButton
	RoleTreeView
	RoleTreeViewItem
)

var roleNames = map[Role]string{
	RoleUnknown:           "unknown",
	RoleButton:            "button",
	RoleCheckBox:          "check box",
	RoleChartElement:      "chart element",
	RoleComboBox:          "combo box",
	RoleDocument:          "document",
	RoleEditableText:      "edit",
	RoleFrame:             "frame",
	RoleGraphic:           "graphic",
	RoleGrouping:          "grouping",
	RoleHeading:           "heading",
	RoleLandmark:          "landmark",
	RoleLink:              "link",
	RoleList:              "list",
	RoleListItem:          "list item",
	RoleMath:              "math",
	RoleMenuItem:          "menu item",
	RolePane:              "pane",
	RoleParagraph:         "paragraph",
	RoleProgressBar:       "progress bar",
	RolePropertyPage:      "property page",
	RoleRadioButton:       "radio button",
	RoleRegion:            "region",
	RoleSection:           "section",
	RoleTable:             "table",
	RoleTableCell:         "cell",
	RoleTableColumnHeader: "column header",
	RoleTableRowHeader:    "row header",
	RoleToggleButton:      "toggle button",
	RoleTreeView:          "tree view",
	RoleTreeViewItem:      "tree view item",
}

// String returns the spoken name of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// SilentOnFocus reports whether this role is normally omitted when focus
// lands on it and nothing else about the control is worth saying.
func (r Role) SilentOnFocus() bool {
	switch r {
	case RoleListItem, RoleMenuItem, RoleTreeViewItem, RoleDocument,
		RolePane, RoleProgressBar, RoleEditableText, RoleUnknown:
		return true
	}
	return false
}

// SilentValue reports whether the control's value is withheld for this role.
// Check boxes and the like express their value through states instead.
func (r Role) SilentValue() bool {
	switch r {
	case RoleCheckBox, RoleRadioButton, RoleLink, RoleMenuItem, RoleToggleButton:
		return true
	}
	return false
}

// State is a single boolean condition a control can carry.
type State int

const (
	StateClickable State = iota
	StateChecked
	StateCollapsed
	StateEditable
	StateExpanded
	StateFocusable
	StateInvalidEntry
	StatePressed
	StateReadOnly
	StateSelectable
	StateSelected
	StateVisited
)

var stateNames = map[State]string{
	StateClickable:    "clickable",
	StateChecked:      "checked",
	StateCollapsed:    "collapsed",
	StateEditable:     "editable",
	StateExpanded:     "expanded",
	StateFocusable:    "focusable",
	StateInvalidEntry: "invalid entry",
	StatePressed:      "pressed",
	StateReadOnly:     "read only",
	StateSelectable:   "selectable",
	StateSelected:     "selected",
	StateVisited:      "visited",
}

// String returns the spoken name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown state"
}

// NegativeString returns the wording used when the state has been removed.
func (s State) NegativeString() string {
	switch s {
	case StateChecked:
		return "not checked"
	case StateSelected:
		return "not selected"
	case StatePressed:
		return "not pressed"
	}
	return "not " + s.String()
}

// Spoken reports whether the state is spoken at all. Structural states such
// as focusable and selectable carry no useful information on their own.
func (s State) Spoken() bool {
	switch s {
	case StateFocusable, StateSelectable, StateEditable, StateClickable:
		return false
	}
	return true
}

// StateSet is an unordered collection of states.
type StateSet map[State]struct{}

// NewStateSet builds a set from the given states.
func NewStateSet(states ...State) StateSet {
	set := make(StateSet, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}
	return set
}

// Has reports whether s is in the set.
func (ss StateSet) Has(s State) bool {
	_, ok := ss[s]
	return ok
}

// Equal reports whether both sets contain exactly the same states.
func (ss StateSet) Equal(other StateSet) bool {
	if len(ss) != len(other) {
		return false
	}
	for s := range ss {
		if !other.Has(s) {
			return false
		}
	}
	return true
}

// Diff returns the states present in ss but not in other.
func (ss StateSet) Diff(other StateSet) StateSet {
	out := make(StateSet)
	for s := range ss {
		if !other.Has(s) {
			out[s] = struct{}{}
		}
	}
	return out
}

// Copy returns an independent copy of the set.
func (ss StateSet) Copy() StateSet {
	out := make(StateSet, len(ss))
	for s := range ss {
		out[s] = struct{}{}
	}
	return out
}

// Sorted returns the states in a stable order for speech output.
func (ss StateSet) Sorted() []State {
	out := make([]State, 0, len(ss))
	for s := range ss {
		out = append(out, s)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// IsCurrent mirrors the aria-current notion of the item being the current
// one within a set of related items.
type IsCurrent int

const (
	CurrentNo IsCurrent = iota
	CurrentYes
	CurrentPage
	CurrentStep
)

// String returns the spoken form of the current marker.
func (c IsCurrent) String() string {
	switch c {
	case CurrentYes:
		return "current"
	case CurrentPage:
		return "current page"
	case CurrentStep:
		return "current step"
	}
	return ""
}

// PresentationCategory classifies a control field for announcement purposes.
type PresentationCategory int

const (
	// PresentationLayout fields are purely structural and stay silent.
	PresentationLayout PresentationCategory = iota
	// PresentationMarker fields are announced when entered, never exited.
	PresentationMarker
	// PresentationCell fields are table cells.
	PresentationCell
	// PresentationSingleLine fields fit on one line, such as links.
	PresentationSingleLine
	// PresentationContainer fields wrap multi-line content and report
	// both entry and exit.
	PresentationContainer
)

// String returns a debug name for the category.
func (p PresentationCategory) String() string {
	switch p {
	case PresentationLayout:
		return "layout"
	case PresentationMarker:
		return "marker"
	case PresentationCell:
		return "cell"
	case PresentationSingleLine:
		return "single-line"
	case PresentationContainer:
		return "container"
	}
	return "unknown"
}
