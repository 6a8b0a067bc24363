package model

// ErrorKind classifies validation and valuation failures.
type ErrorKind string

const (
	KindInvalidInputKind ErrorKind = "INVALID_INPUT_KIND"
	KindInvalidFieldType ErrorKind = "INVALID_FIELD_TYPE"
	KindLengthMismatch   ErrorKind = "LENGTH_MISMATCH"
	KindWeightSumError   ErrorKind = "WEIGHT_SUM_ERROR"
)

// Error is returned by the validation and calculator packages.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return e.Msg
}

// Is reports whether target is an Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is; they match any Error of the same kind.
var (
	ErrInvalidInputKind = &Error{Kind: KindInvalidInputKind}
	ErrInvalidFieldType = &Error{Kind: KindInvalidFieldType}
	ErrLengthMismatch   = &Error{Kind: KindLengthMismatch}
	ErrWeightSumError   = &Error{Kind: KindWeightSumError}
)

// NewError creates an Error of the given kind.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}
