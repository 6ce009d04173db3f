package document

// Reason describes why a description was requested. It shapes which
// properties are spoken and whether exits are announced.
type Reason int

const (
	// ReasonQuery is an explicit request for information.
	ReasonQuery Reason = iota
	// ReasonFocus means system focus moved to the subject.
	ReasonFocus
	// ReasonFocusEntered means focus moved into a container.
	ReasonFocusEntered
	// ReasonCaret means the caret moved within the subject.
	ReasonCaret
	// ReasonSayAll is a continuous read of the whole document.
	ReasonSayAll
	// ReasonQuickNav is single-key navigation between elements.
	ReasonQuickNav
	// ReasonChange means a property of the subject changed.
	ReasonChange
	// ReasonMessage is an application message.
	ReasonMessage
	// ReasonMouse means the mouse pointer moved onto the subject.
	ReasonMouse
	// ReasonOnlyCache updates the cached snapshot without speaking.
	ReasonOnlyCache
)

// String returns a debug name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonQuery:
		return "query"
	case ReasonFocus:
		return "focus"
	case ReasonFocusEntered:
		return "focusEntered"
	case ReasonCaret:
		return "caret"
	case ReasonSayAll:
		return "sayAll"
	case ReasonQuickNav:
		return "quickNav"
	case ReasonChange:
		return "change"
	case ReasonMessage:
		return "message"
	case ReasonMouse:
		return "mouse"
	case ReasonOnlyCache:
		return "onlyCache"
	}
	return "unknown"
}

// IsNavigation reports whether the reason is one of the quiet navigation
// reasons during which exit commentary and silent-on-focus roles are
// suppressed.
func (r Reason) IsNavigation() bool {
	return r == ReasonFocus || r == ReasonQuickNav
}

// ControlField carries the attributes of one containment boundary active at
// a document position. Fields left at their zero value are absent.
type ControlField struct {
	// UniqueID is a stable identity key. When both sides of a comparison
	// carry one, identity wins over structural equality.
	UniqueID string

	Role     Role
	RoleText string
	Landmark string
	States   StateSet

	Name                 string
	Value                string
	Description          string
	DescriptionIsContent bool
	DescriptionFromAria  bool
	Placeholder          string
	KeyboardShortcut     string
	ErrorMessage         string
	Content              string

	Current      IsCurrent
	HasDetails   bool
	DetailsRoles []Role
	Level        int

	ChildControlCount int
	IsBlock           bool
	IsHidden          bool
	AlwaysReportName  bool
	LabelledByContent bool

	TableID          string
	RowCount         int
	ColumnCount      int
	RowNumber        int
	ColumnNumber     int
	RowSpan          int
	ColumnSpan       int
	RowHeaderText    string
	ColumnHeaderText string
}

// Equal reports whether two fields match. When either side carries a
// UniqueID, identity comparison decides; otherwise every attribute must
// match structurally.
func (f *ControlField) Equal(other *ControlField) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.UniqueID != "" || other.UniqueID != "" {
		return f.UniqueID == other.UniqueID
	}
	if f.Role != other.Role ||
		f.RoleText != other.RoleText ||
		f.Landmark != other.Landmark ||
		f.Name != other.Name ||
		f.Value != other.Value ||
		f.Description != other.Description ||
		f.DescriptionIsContent != other.DescriptionIsContent ||
		f.DescriptionFromAria != other.DescriptionFromAria ||
		f.Placeholder != other.Placeholder ||
		f.KeyboardShortcut != other.KeyboardShortcut ||
		f.ErrorMessage != other.ErrorMessage ||
		f.Content != other.Content ||
		f.Current != other.Current ||
		f.HasDetails != other.HasDetails ||
		f.Level != other.Level ||
		f.ChildControlCount != other.ChildControlCount ||
		f.IsBlock != other.IsBlock ||
		f.IsHidden != other.IsHidden ||
		f.AlwaysReportName != other.AlwaysReportName ||
		f.LabelledByContent != other.LabelledByContent ||
		f.TableID != other.TableID ||
		f.RowCount != other.RowCount ||
		f.ColumnCount != other.ColumnCount ||
		f.RowNumber != other.RowNumber ||
		f.ColumnNumber != other.ColumnNumber ||
		f.RowSpan != other.RowSpan ||
		f.ColumnSpan != other.ColumnSpan ||
		f.RowHeaderText != other.RowHeaderText ||
		f.ColumnHeaderText != other.ColumnHeaderText {
		return false
	}
	if !f.States.Equal(other.States) {
		return false
	}
	if len(f.DetailsRoles) != len(other.DetailsRoles) {
		return false
	}
	for i, r := range f.DetailsRoles {
		if other.DetailsRoles[i] != r {
			return false
		}
	}
	return true
}

// PresentationOptions tunes how a field is classified.
type PresentationOptions struct {
	// ReportLandmarks controls whether landmarks count as containers.
	ReportLandmarks bool
	// ExtraDetail is set when navigating by character or word.
	ExtraDetail bool
}

// PresentationCategory classifies the field given its enclosing fields,
// presentation options and the reason the description was requested.
func (f *ControlField) PresentationCategory(
	ancestors []*ControlField,
	opts PresentationOptions,
	reason Reason,
) PresentationCategory {
	switch f.Role {
	case RoleTableCell, RoleTableColumnHeader, RoleTableRowHeader:
		// A cell claiming a table that is not actually open around it
		// has nothing to anchor its coordinates to.
		if f.TableID != "" && tableEncloses(ancestors, f.TableID) {
			return PresentationCell
		}
		return PresentationLayout
	case RoleLink, RoleHeading, RoleButton, RoleCheckBox, RoleRadioButton,
		RoleComboBox, RoleToggleButton, RoleGraphic, RoleMenuItem, RoleMath:
		return PresentationSingleLine
	case RoleListItem, RoleTreeViewItem:
		return PresentationMarker
	case RoleLandmark, RoleRegion:
		if !opts.ReportLandmarks {
			return PresentationLayout
		}
		return PresentationContainer
	case RoleList, RoleTable, RoleTreeView, RoleGrouping, RolePropertyPage,
		RoleEditableText, RoleFrame, RoleDocument:
		return PresentationContainer
	case RoleParagraph, RoleSection, RoleUnknown, RolePane:
		if opts.ExtraDetail {
			return PresentationMarker
		}
		return PresentationLayout
	}
	if opts.ExtraDetail {
		return PresentationMarker
	}
	return PresentationLayout
}

// tableEncloses reports whether a boundary of the given table is among a
// field's enclosing fields.
func tableEncloses(ancestors []*ControlField, tableID string) bool {
	for _, a := range ancestors {
		if a != nil && a.TableID == tableID {
			return true
		}
	}
	return false
}

// TableInfo summarises a table a text run belongs to. Continuity between
// runs is judged by ID equality, never structurally.
type TableInfo struct {
	ID           string
	RowCount     int
	ColumnCount  int
	RowNumber    int
	ColumnNumber int
}

// CommentKind distinguishes the states a document comment can be in.
type CommentKind int

const (
	// CommentNone means no comment covers the run.
	CommentNone CommentKind = iota
	// CommentGeneric is an ordinary comment.
	CommentGeneric
	// CommentDraft is a comment still being written.
	CommentDraft
	// CommentResolved is a comment marked as handled.
	CommentResolved
)

// TextPosition describes vertical placement of a text run.
type TextPosition int

const (
	// TextPositionUndefined means the attribute was not reported.
	TextPositionUndefined TextPosition = iota
	// TextPositionBaseline is ordinary text.
	TextPositionBaseline
	// TextPositionSuperscript is raised text.
	TextPositionSuperscript
	// TextPositionSubscript is lowered text.
	TextPositionSubscript
)

// String returns the spoken form of the position.
func (p TextPosition) String() string {
	switch p {
	case TextPositionBaseline:
		return "baseline"
	case TextPositionSuperscript:
		return "superscript"
	case TextPositionSubscript:
		return "subscript"
	}
	return ""
}

// FormatField carries the flat formatting attributes of a text run. It is
// never nested; zero values mean the attribute is absent.
type FormatField struct {
	Language string

	Table            *TableInfo
	PageNumber       int
	SectionNumber    int
	TextColumnCount  int
	TextColumnNumber int
	SectionBreak     string
	ColumnBreak      bool

	HeadingLevel int
	Collapsed    bool
	Style        string
	BorderStyle  string

	FontFamily string
	FontName   string
	FontSize   string

	Color             string
	BackgroundColor   string
	BackgroundColor2  string
	BackgroundPattern string

	LineNumber int

	RevisionInsertion bool
	RevisionDeletion  bool
	Revision          string

	Marked         bool
	HighlightColor string
	Strong         bool
	Emphasised     bool

	Bold          bool
	Italic        bool
	Strikethrough string
	Underline     bool
	Hidden        bool

	TextPosition  TextPosition
	TextAlign     string
	VerticalAlign string

	LeftIndent      string
	RightIndent     string
	HangingIndent   string
	FirstLineIndent string
	LineSpacing     string

	Link            bool
	Comment         CommentKind
	Bookmark        bool
	InvalidSpelling bool
	InvalidGrammar  bool

	LinePrefix            string
	LinePrefixSpeakAlways bool
}

// Merge overlays the attributes present in other onto f. Zero values in
// other leave f untouched, mirroring a dictionary update.
func (f *FormatField) Merge(other *FormatField) {
	if other == nil {
		return
	}
	if other.Language != "" {
		f.Language = other.Language
	}
	if other.Table != nil {
		f.Table = other.Table
	}
	if other.PageNumber != 0 {
		f.PageNumber = other.PageNumber
	}
	if other.SectionNumber != 0 {
		f.SectionNumber = other.SectionNumber
	}
	if other.TextColumnCount != 0 {
		f.TextColumnCount = other.TextColumnCount
	}
	if other.TextColumnNumber != 0 {
		f.TextColumnNumber = other.TextColumnNumber
	}
	if other.SectionBreak != "" {
		f.SectionBreak = other.SectionBreak
	}
	if other.ColumnBreak {
		f.ColumnBreak = true
	}
	if other.HeadingLevel != 0 {
		f.HeadingLevel = other.HeadingLevel
	}
	if other.Collapsed {
		f.Collapsed = true
	}
	if other.Style != "" {
		f.Style = other.Style
	}
	if other.BorderStyle != "" {
		f.BorderStyle = other.BorderStyle
	}
	if other.FontFamily != "" {
		f.FontFamily = other.FontFamily
	}
	if other.FontName != "" {
		f.FontName = other.FontName
	}
	if other.FontSize != "" {
		f.FontSize = other.FontSize
	}
	if other.Color != "" {
		f.Color = other.Color
	}
	if other.BackgroundColor != "" {
		f.BackgroundColor = other.BackgroundColor
	}
	if other.BackgroundColor2 != "" {
		f.BackgroundColor2 = other.BackgroundColor2
	}
	if other.BackgroundPattern != "" {
		f.BackgroundPattern = other.BackgroundPattern
	}
	if other.LineNumber != 0 {
		f.LineNumber = other.LineNumber
	}
	if other.RevisionInsertion {
		f.RevisionInsertion = true
	}
	if other.RevisionDeletion {
		f.RevisionDeletion = true
	}
	if other.Revision != "" {
		f.Revision = other.Revision
	}
	if other.Marked {
		f.Marked = true
	}
	if other.HighlightColor != "" {
		f.HighlightColor = other.HighlightColor
	}
	if other.Strong {
		f.Strong = true
	}
	if other.Emphasised {
		f.Emphasised = true
	}
	if other.Bold {
		f.Bold = true
	}
	if other.Italic {
		f.Italic = true
	}
	if other.Strikethrough != "" {
		f.Strikethrough = other.Strikethrough
	}
	if other.Underline {
		f.Underline = true
	}
	if other.Hidden {
		f.Hidden = true
	}
	if other.TextPosition != TextPositionUndefined {
		f.TextPosition = other.TextPosition
	}
	if other.TextAlign != "" {
		f.TextAlign = other.TextAlign
	}
	if other.VerticalAlign != "" {
		f.VerticalAlign = other.VerticalAlign
	}
	if other.LeftIndent != "" {
		f.LeftIndent = other.LeftIndent
	}
	if other.RightIndent != "" {
		f.RightIndent = other.RightIndent
	}
	if other.HangingIndent != "" {
		f.HangingIndent = other.HangingIndent
	}
	if other.FirstLineIndent != "" {
		f.FirstLineIndent = other.FirstLineIndent
	}
	if other.LineSpacing != "" {
		f.LineSpacing = other.LineSpacing
	}
	if other.Link {
		f.Link = true
	}
	if other.Comment != CommentNone {
		f.Comment = other.Comment
	}
	if other.Bookmark {
		f.Bookmark = true
	}
	if other.InvalidSpelling {
		f.InvalidSpelling = true
	}
	if other.InvalidGrammar {
		f.InvalidGrammar = true
	}
	if other.LinePrefix != "" {
		f.LinePrefix = other.LinePrefix
	}
	if other.LinePrefixSpeakAlways {
		f.LinePrefixSpeakAlways = true
	}
}

// Clone returns an independent copy of the field.
func (f *FormatField) Clone() *FormatField {
	if f == nil {
		return nil
	}
	out := *f
	if f.Table != nil {
		t := *f.Table
		out.Table = &t
	}
	return &out
}
