package nfe

import "errors"

// Kind classifies extraction failures.
type Kind int

const (
	// KindMalformed covers XML that does not parse, required elements that
	// are absent at any depth, and numeric fields with non-numeric text.
	KindMalformed Kind = iota + 1

	// KindUnrecognizedStructure means the document parsed but the <NFe>
	// invoice root could not be located.
	KindUnrecognizedStructure
)

// Error is the single error type returned by Extract. The message is meant
// to be shown to the end user as-is, so it always describes what was
// expected in the document rather than an internal condition.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// IsMalformed reports whether err is an extraction error of kind
// KindMalformed.
func IsMalformed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindMalformed
}

// IsUnrecognizedStructure reports whether err is an extraction error of
// kind KindUnrecognizedStructure.
func IsUnrecognizedStructure(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnrecognizedStructure
}
