// Package frame defines the tabular structure consumed by the contract
// checks: an ordered set of named columns with a dtype each.
//
// The package ships an in-memory implementation (MemFrame) and adapters for
// external columnar schemas live in subpackages. Anything implementing Frame
// can be checked.
package frame

import (
	"fmt"
	"strings"
)

// Frame is the introspection surface the checks need from a tabular value.
// Columns returns names in declaration order. DType reports the element type
// of a column and whether the column exists.
type Frame interface {
	Columns() []string
	DType(col string) (DType, bool)
}

// Describe renders a frame's shape for error messages and log records,
// e.g. "columns: [id name]" or "columns: [id name] with dtypes [int64 string]"
func Describe(f Frame, includeDTypes bool) string {
	cols := f.Columns()
	var b strings.Builder
	fmt.Fprintf(&b, "columns: [%s]", strings.Join(cols, " "))
	if includeDTypes {
		dtypes := make([]string, len(cols))
		for i, col := range cols {
			dt, ok := f.DType(col)
			if !ok {
				dt = Invalid
			}
			dtypes[i] = string(dt)
		}
		fmt.Fprintf(&b, " with dtypes [%s]", strings.Join(dtypes, " "))
	}
	return b.String()
}

// Is reports whether v implements Frame
func Is(v any) (Frame, bool) {
	f, ok := v.(Frame)
	return f, ok
}
