package framecheck

import (
	"github.com/jeffamaxey/framecheck/colspec"
	"github.com/jeffamaxey/framecheck/frame"
)

// In guards a function's input. Before each call the located argument must
// be a frame.Frame and, for a non-empty spec, must satisfy it; on violation
// the wrapped body does not run. name selects the parameter to check; empty
// means the first positional argument. Arguments pass through unchanged.
func In(name string, columns colspec.Spec, strict bool) Wrapper {
	return func(fn Func) Func {
		inner := fn.Call
		fn.Call = func(args Args) (any, error) {
			val, _, err := locate(fn, name, args)
			if err != nil {
				return nil, err
			}
			f, ok := frame.Is(val)
			if !ok {
				return nil, NewNotAFrame(fn.Name, val)
			}
			if !columns.Empty() {
				if err := checkColumns(fn.Name, f, columns, strict); err != nil {
					return nil, err
				}
			}
			return inner(args)
		}
		return fn
	}
}

// Out guards a function's output. The wrapped call runs first; its own
// error propagates untouched, with no validation layered on top. A
// successful result must be a frame.Frame and, for a non-empty spec, must
// satisfy it. The result is returned unchanged.
func Out(columns colspec.Spec, strict bool) Wrapper {
	return func(fn Func) Func {
		inner := fn.Call
		fn.Call = func(args Args) (any, error) {
			result, err := inner(args)
			if err != nil {
				return result, err
			}
			f, ok := frame.Is(result)
			if !ok {
				return nil, NewNotAFrame(fn.Name, result)
			}
			if !columns.Empty() {
				if err := checkColumns(fn.Name, f, columns, strict); err != nil {
					return nil, err
				}
			}
			return result, nil
		}
		return fn
	}
}
