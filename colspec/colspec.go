// Package colspec declares the column contract a frame is checked against:
// either a plain list of required column names, or names paired with the
// dtype each column must carry.
package colspec

import "github.com/jeffamaxey/framecheck/frame"

// TypedColumn pairs a required column name with its required dtype
type TypedColumn struct {
	Name  string
	DType frame.DType
}

// T is shorthand for building a TypedColumn
func T(name string, dtype frame.DType) TypedColumn {
	return TypedColumn{Name: name, DType: dtype}
}

// Spec is an immutable column specification. The zero value is empty and
// performs no checks. Declaration order is preserved for both forms.
type Spec struct {
	names  []string
	dtypes map[string]frame.DType
}

// Cols builds a list-form spec: the named columns must exist, dtypes are
// not checked. Duplicate names keep the first occurrence.
func Cols(names ...string) Spec {
	s := Spec{}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		s.names = append(s.names, name)
	}
	return s
}

// Typed builds a typed spec: the named columns must exist and carry the
// declared dtype. Duplicate names keep the first occurrence.
func Typed(cols ...TypedColumn) Spec {
	s := Spec{dtypes: make(map[string]frame.DType, len(cols))}
	for _, col := range cols {
		if _, seen := s.dtypes[col.Name]; seen {
			continue
		}
		s.dtypes[col.Name] = col.DType
		s.names = append(s.names, col.Name)
	}
	return s
}

// Names returns the declared column names in declaration order
func (s Spec) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Len returns the number of declared columns
func (s Spec) Len() int {
	return len(s.names)
}

// Empty reports whether the spec declares no columns
func (s Spec) Empty() bool {
	return len(s.names) == 0
}

// HasDTypes reports whether the spec is the typed form
func (s Spec) HasDTypes() bool {
	return s.dtypes != nil
}

// DType returns the declared dtype for a column. The second return is false
// for list-form specs and for undeclared columns.
func (s Spec) DType(name string) (frame.DType, bool) {
	if s.dtypes == nil {
		return frame.Invalid, false
	}
	dt, ok := s.dtypes[name]
	if !ok {
		return frame.Invalid, false
	}
	return dt, true
}

// Declares reports whether the spec names the column
func (s Spec) Declares(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}
