package types

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for the document index.
var (
	// ErrInvalidStopWord: a stop-word contains a control character.
	ErrInvalidStopWord = errors.New("invalid stop-word")

	// ErrInvalidWord: a document token contains a control character.
	ErrInvalidWord = errors.New("invalid word")

	// ErrInvalidQuery: a query token is empty after stripping, contains
	// a second leading '-', or contains a control character.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrDuplicateOrNegativeID: AddDocument called with id < 0 or an
	// id already present.
	ErrDuplicateOrNegativeID = errors.New("duplicate or negative document id")

	// ErrUnknownDocument: a lookup for a document id that is not live.
	ErrUnknownDocument = errors.New("unknown document")

	// ErrEmptyDocument: a document whose content is entirely stop-words
	// (or otherwise tokenizes to nothing). See DESIGN.md open-question
	// decisions for why this is rejected rather than accepted.
	ErrEmptyDocument = errors.New("document has no indexable tokens")
)

// Error wraps an error with operation context.
type Error struct {
	Op      string // Operation that failed
	Kind    error  // Category of error
	Err     error  // Underlying error
	Message string // Human-readable message
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Errorf creates a new Error with a formatted message.
func Errorf(op string, kind error, format string, args ...any) error {
	return &Error{
		Op:      op,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an error with operation context.
func WrapError(op string, kind error, err error) error {
	return &Error{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}
