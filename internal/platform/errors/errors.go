package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrNoRecords            = errors.New("no records")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrCorruptData          = errors.New("corrupt data")
	ErrIO                   = errors.New("i/o failure")
)

// ValidationError reports a field value the user can correct and resubmit.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// CorruptDataError identifies a persisted row that cannot be decoded.
// Row 0 refers to the header; data rows are numbered from 1.
type CorruptDataError struct {
	Path   string
	Row    int
	Line   int
	Reason string
}

func (e *CorruptDataError) Error() string {
	where := fmt.Sprintf("row %d", e.Row)
	if e.Row == 0 {
		where = "header"
	}
	if e.Line > 0 {
		where = fmt.Sprintf("%s (line %d)", where, e.Line)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, where, e.Reason)
}

func (e *CorruptDataError) Unwrap() error { return ErrCorruptData }

// IOError wraps a filesystem failure together with the operation and path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

func WrapIO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// UserMessage renders err as a single line suitable for a status bar or stderr.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var validation *ValidationError
	var corrupt *CorruptDataError
	var ioErr *IOError
	switch {
	case errors.As(err, &validation):
		return "invalid value for " + validation.Error()
	case errors.As(err, &corrupt):
		return "the symptom file is damaged at " + corrupt.Error() + "; fix or remove that row"
	case errors.Is(err, ErrNoRecords):
		return "there is no data to export yet; log at least one entry first"
	case errors.Is(err, ErrConfirmationRequired):
		return "both decongestants are still marked as not suspended; rerun with --yes to save anyway"
	case errors.As(err, &ioErr):
		return "could not " + ioErr.Op + " " + ioErr.Path + ": " + ioErr.Err.Error()
	default:
		return err.Error()
	}
}
