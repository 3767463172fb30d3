package errs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Units used by capacity errors.
const (
	UnitKilogram  = "kg"
	UnitTonne     = "t"
	UnitContainer = "containers"
)

// Sentinel errors. Every typed error in this package unwraps to one of them,
// so callers can classify failures with errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrOverfill          = errors.New("overfill")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
)

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a parameter whose value breaks a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory parameter.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// OverfillError reports a load that would push a mass ceiling over its limit.
// Subject names whatever owns the ceiling: a container serial for cargo loads,
// a ship name for aggregate admission checks.
//
// The rejected operation never mutates state, so the error is always
// recoverable by the caller.
type OverfillError struct {
	Subject   string
	Requested float64
	Current   float64
	Limit     float64
	Unit      string
	Cause     error
}

func NewOverfillError(subject string, requested, current, limit float64, unit string) *OverfillError {
	return &OverfillError{Subject: subject, Requested: requested, Current: current, Limit: limit, Unit: unit}
}

func NewOverfillErrorWithCause(
	subject string,
	requested, current, limit float64,
	unit string,
	cause error,
) *OverfillError {
	return &OverfillError{
		Subject: subject, Requested: requested, Current: current, Limit: limit, Unit: unit, Cause: cause,
	}
}

func (e *OverfillError) Error() string {
	msg := fmt.Sprintf("%s: cannot load %s%s into %s, exceeds limit of %s%s (current %s%s)",
		ErrOverfill,
		FormatQuantity(e.Requested), e.Unit,
		e.Subject,
		FormatQuantity(e.Limit), e.Unit,
		FormatQuantity(e.Current), e.Unit,
	)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *OverfillError) Unwrap() error {
	return ErrOverfill
}

// CapacityExceededError reports an admission that would push a count ceiling
// over its limit.
type CapacityExceededError struct {
	Subject   string
	Requested int
	Max       int
	Cause     error
}

func NewCapacityExceededError(subject string, requested, maxCount int) *CapacityExceededError {
	return &CapacityExceededError{Subject: subject, Requested: requested, Max: maxCount}
}

func (e *CapacityExceededError) Error() string {
	msg := fmt.Sprintf("%s: %s holds at most %d %s, %d requested",
		ErrCapacityExceeded, e.Subject, e.Max, UnitContainer, e.Requested)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// FormatQuantity renders a mass without trailing zeros: 1500, 0.5, 13.3.
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}
