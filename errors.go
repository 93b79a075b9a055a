package framecheck

import (
	"fmt"
	"strings"

	"github.com/jeffamaxey/framecheck/frame"
)

// Constraint names for ContractError
const (
	ConstraintMissingColumn     = "missing_column"
	ConstraintDTypeMismatch     = "dtype_mismatch"
	ConstraintUnexpectedColumns = "unexpected_columns"
	ConstraintNotAFrame         = "not_a_frame"
	ConstraintParamResolution   = "param_resolution"
)

// ContractError represents a violation of a frame contract at a function
// boundary (missing column, wrong dtype, unexpected extras, non-frame value,
// unresolved parameter).
type ContractError struct {
	Func       string // wrapped function name (empty when checking directly)
	Column     string // column name (empty if frame-level violation)
	Constraint string // "missing_column", "dtype_mismatch", etc.
	Expected   string // expected dtype, type, or column set
	Actual     string // observed dtype, type, or frame shape
	Reason     string // human-readable explanation (optional)
}

func (e *ContractError) Error() string {
	var parts []string

	subject := "frame contract violation"
	if e.Func != "" {
		subject += " in " + e.Func
	}
	if e.Column != "" {
		subject += ", column " + e.Column
	}
	parts = append(parts, subject)

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Expected != "" {
		parts = append(parts, "expected "+e.Expected)
	}
	if e.Actual != "" {
		parts = append(parts, "got "+e.Actual)
	}

	return strings.Join(parts, " - ")
}

// NewMissingColumn reports a required column absent from the frame
func NewMissingColumn(funcName, column string, f frame.Frame) *ContractError {
	return &ContractError{
		Func:       funcName,
		Column:     column,
		Constraint: ConstraintMissingColumn,
		Reason:     "required column missing from frame",
		Actual:     frame.Describe(f, false),
	}
}

// NewDTypeMismatch reports a present column carrying the wrong dtype
func NewDTypeMismatch(funcName, column string, actual, expected frame.DType) *ContractError {
	return &ContractError{
		Func:       funcName,
		Column:     column,
		Constraint: ConstraintDTypeMismatch,
		Reason:     "column has wrong dtype",
		Expected:   string(expected),
		Actual:     string(actual),
	}
}

// NewUnexpectedColumns reports strict-mode extras beyond the declared set
func NewUnexpectedColumns(funcName string, extras []string, declared, actual int) *ContractError {
	reason := fmt.Sprintf("frame contained unexpected column(s): %s", strings.Join(extras, ", "))
	if len(extras) == 0 {
		reason = fmt.Sprintf("frame has %d columns, spec declares %d", actual, declared)
	}
	return &ContractError{
		Func:       funcName,
		Constraint: ConstraintUnexpectedColumns,
		Reason:     reason,
	}
}

// NewNotAFrame reports a value that was required to be a frame but is not
func NewNotAFrame(funcName string, v any) *ContractError {
	return &ContractError{
		Func:       funcName,
		Constraint: ConstraintNotAFrame,
		Reason:     "wrong value type",
		Expected:   "frame.Frame",
		Actual:     fmt.Sprintf("%T", v),
	}
}

// NewParamResolution reports a named parameter that could not be bound to an
// argument of the call
func NewParamResolution(funcName, param, reason string) *ContractError {
	return &ContractError{
		Func:       funcName,
		Constraint: ConstraintParamResolution,
		Reason:     fmt.Sprintf("parameter %q: %s", param, reason),
	}
}
