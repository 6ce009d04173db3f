package speech

import "errors"

// Common errors for the speech engine.
var (
	// Sequence errors
	ErrNilSequenceItem = errors.New("speech sequence contains a nil item")
	ErrBadSequenceItem = errors.New("speech sequence contains a foreign item")

	// Document model errors
	ErrBadFieldCommand = errors.New("unrecognized field command in token stream")

	// Engine errors
	ErrNoOutput = errors.New("no playback output configured")

	// Configuration errors
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrInvalidIndentMode  = errors.New("invalid line indentation mode")
	ErrInvalidSymbolLevel = errors.New("invalid symbol level")
)
