// Package document defines the data the document-model collaborator feeds
// into the speech engine: control and format fields, the token stream a
// position expands to, and the position handle itself. The engine consumes
// these types read-only; producing them is the document model's job.
package document

// CommandKind tags a field command within a token stream.
type CommandKind int

const (
	// ControlStart opens a containment boundary.
	ControlStart CommandKind = iota + 1
	// ControlEnd closes the innermost open boundary.
	ControlEnd
	// FormatChange switches the formatting attributes of following text.
	FormatChange
)

// String returns a debug name for the kind.
func (k CommandKind) String() string {
	switch k {
	case ControlStart:
		return "controlStart"
	case ControlEnd:
		return "controlEnd"
	case FormatChange:
		return "formatChange"
	}
	return "unknown"
}

// Token is one element of the mixed stream a position expands to: either a
// run of raw text or a field command.
type Token interface {
	isToken()
}

// TextToken is a run of raw document text.
type TextToken string

func (TextToken) isToken() {}

// FieldToken is a boundary-start, boundary-end or attribute-change command.
// Control is set for ControlStart; Format for FormatChange; ControlEnd
// carries neither.
type FieldToken struct {
	Kind    CommandKind
	Control *ControlField
	Format  *FormatField
}

func (FieldToken) isToken() {}

// Unit is the granularity a position was expanded to.
type Unit int

const (
	// UnitCharacter is a single character.
	UnitCharacter Unit = iota + 1
	// UnitWord is one word.
	UnitWord
	// UnitLine is one visual line.
	UnitLine
	// UnitSentence is one sentence.
	UnitSentence
	// UnitParagraph is one paragraph.
	UnitParagraph
	// UnitCell is one table cell.
	UnitCell
	// UnitReadingChunk is the chunk size used during a full read.
	UnitReadingChunk
)

// EndpointPair selects which endpoints of two positions to compare.
type EndpointPair int

const (
	// StartToStart compares both start points.
	StartToStart EndpointPair = iota
	// StartToEnd compares this start with the other end.
	StartToEnd
	// EndToStart compares this end with the other start.
	EndToStart
	// EndToEnd compares both end points.
	EndToEnd
)

// Position is a range within a document, supplied by the document-model
// collaborator. Implementations are trusted to produce well-formed token
// streams; the engine fails fast on anything else.
type Position interface {
	// TextWithFields expands the range into an ordered stream of text
	// runs and field commands. Leading ControlStart/FormatChange tokens
	// describe the boundaries already enclosing the range.
	TextWithFields() []Token

	// Text returns the plain text of the range.
	Text() string

	// IsCollapsed reports whether the range is empty.
	IsCollapsed() bool

	// CompareEndpoints returns a negative, zero or positive number as the
	// selected endpoint of this range lies before, at or after the
	// selected endpoint of other.
	CompareEndpoints(other Position, which EndpointPair) int

	// Copy returns an independent range covering the same span.
	Copy() Position

	// SetEndpoint moves the selected endpoint of this range to the
	// selected endpoint of other.
	SetEndpoint(other Position, which EndpointPair)
}
