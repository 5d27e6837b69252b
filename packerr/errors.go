// Package packerr defines the error taxonomy shared by the parser, the packer
// and the command line front-end.
//
// Every failure is an *Error carrying a stable Code, so callers and tests
// match on the category with errors.Is instead of on message text:
//
//	if errors.Is(err, packerr.ErrMissingCurrencyMarker) { ... }
//
// Errors produced while reading a record also carry the raw record text and,
// when known, its 1-based line number.
package packerr

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies an error category.
type Code string

const (
	// InvalidNumberFormat: capacity, index, weight or cost is not a usable number.
	InvalidNumberFormat Code = "INVALID_NUMBER_FORMAT"
	// MissingCurrencyMarker: the cost token starts with a digit.
	MissingCurrencyMarker Code = "MISSING_CURRENCY_MARKER"
	// CapacityLimitExceeded: package capacity is above the configured limit.
	CapacityLimitExceeded Code = "CAPACITY_LIMIT_EXCEEDED"
	// WeightLimitExceeded: an item weight is above the configured limit.
	WeightLimitExceeded Code = "WEIGHT_LIMIT_EXCEEDED"
	// CostLimitExceeded: an item cost is above the configured limit.
	CostLimitExceeded Code = "COST_LIMIT_EXCEEDED"
	// ItemLimitExceeded: a record lists more items than allowed.
	ItemLimitExceeded Code = "ITEM_LIMIT_EXCEEDED"
	// MalformedRecord: the record has no capacity separator or no items.
	MalformedRecord Code = "MALFORMED_RECORD"
	// MalformedItem: an item token is not shaped like (index,weight,cost).
	MalformedItem Code = "MALFORMED_ITEM"
	// DuplicateIndex: an item index repeats within one record.
	DuplicateIndex Code = "DUPLICATE_INDEX"
	// UnreadableSource: the input stream could not be opened or read.
	UnreadableSource Code = "UNREADABLE_SOURCE"
	// Internal: a broken contract between components, never caused by input.
	Internal Code = "INTERNAL"
)

// Sentinels for errors.Is. They compare by Code only.
var (
	ErrInvalidNumberFormat   = &Error{Code: InvalidNumberFormat}
	ErrMissingCurrencyMarker = &Error{Code: MissingCurrencyMarker}
	ErrCapacityLimitExceeded = &Error{Code: CapacityLimitExceeded}
	ErrWeightLimitExceeded   = &Error{Code: WeightLimitExceeded}
	ErrCostLimitExceeded     = &Error{Code: CostLimitExceeded}
	ErrItemLimitExceeded     = &Error{Code: ItemLimitExceeded}
	ErrMalformedRecord       = &Error{Code: MalformedRecord}
	ErrMalformedItem         = &Error{Code: MalformedItem}
	ErrDuplicateIndex        = &Error{Code: DuplicateIndex}
	ErrUnreadableSource      = &Error{Code: UnreadableSource}
	ErrInternal              = &Error{Code: Internal}
)

// Error is a categorized failure.
type Error struct {
	Code    Code
	Message string
	// Line is the offending raw record, empty for source-level failures.
	Line string
	// LineNo is the 1-based position of Line in its source, 0 if unknown.
	LineNo  int
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(string(e.Code))
	b.WriteString("]")
	if e.Message != "" {
		b.WriteString(" ")
		b.WriteString(e.Message)
	}
	if e.Wrapped != nil {
		b.WriteString(": ")
		b.WriteString(e.Wrapped.Error())
	}
	switch {
	case e.LineNo > 0 && e.Line != "":
		fmt.Fprintf(&b, " (line %d: %q)", e.LineNo, e.Line)
	case e.Line != "":
		fmt.Fprintf(&b, " (line %q)", e.Line)
	case e.LineNo > 0:
		fmt.Fprintf(&b, " (line %d)", e.LineNo)
	}

	return b.String()
}

// Unwrap implements the errors.Unwrap interface.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}

	return false
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err under code. It returns nil when err is nil.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps err under code with a formatted message.
func Wrapf(err error, code Code, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}

	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// WithLine attaches the raw record text.
func (e *Error) WithLine(line string) *Error {
	e.Line = line
	return e
}

// WithLineNo attaches the 1-based line number.
func (e *Error) WithLineNo(n int) *Error {
	e.LineNo = n
	return e
}

// CodeOf returns the Code of the first *Error in err's chain, or Internal
// for errors outside the taxonomy. A nil err yields "".
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	return Internal
}
