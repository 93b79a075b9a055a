package framecheck

import (
	"sort"

	"github.com/jeffamaxey/framecheck/colspec"
	"github.com/jeffamaxey/framecheck/frame"
)

// Check validates a frame against a column specification. Per declared
// column, membership is checked before dtype; strict runs as a final pass
// and rejects columns the spec does not declare.
//
// An empty spec performs no checks at all, strict or not: callers must
// declare at least one column for strict mode to mean anything.
func Check(f frame.Frame, spec colspec.Spec, strict bool) error {
	return checkColumns("", f, spec, strict)
}

// checkColumns is Check with the wrapped function's name attached to any
// violation. Guards call this; Check is the direct entry point.
func checkColumns(funcName string, f frame.Frame, spec colspec.Spec, strict bool) error {
	if spec.Empty() {
		return nil
	}

	present := make(map[string]bool)
	for _, col := range f.Columns() {
		present[col] = true
	}

	for _, name := range spec.Names() {
		if !present[name] {
			return NewMissingColumn(funcName, name, f)
		}
		want, declared := spec.DType(name)
		if !declared {
			continue
		}
		got, _ := f.DType(name)
		if got != want {
			return NewDTypeMismatch(funcName, name, got, want)
		}
	}

	if strict && len(present) != spec.Len() {
		var extras []string
		for col := range present {
			if !spec.Declares(col) {
				extras = append(extras, col)
			}
		}
		sort.Strings(extras)
		return NewUnexpectedColumns(funcName, extras, spec.Len(), len(present))
	}

	return nil
}
