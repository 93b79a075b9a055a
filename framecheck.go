package framecheck

import "fmt"

// Args carries the actual arguments of one call: positional values in order,
// plus values supplied by parameter name. The same declared parameter may be
// bound either way; the locator reconstructs the bound value.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// Func is a callable together with its introspectable identity. Wrappers
// return a new Func with Name and Params preserved, so contract errors and
// log records always identify the original function.
type Func struct {
	Name   string
	Params []string // declared parameter order
	Call   func(Args) (any, error)
}

// Invoke calls the function with positional arguments only
func (fn Func) Invoke(positional ...any) (any, error) {
	return fn.Call(Args{Positional: positional})
}

// Wrapper transforms a Func into a guarded or instrumented Func
type Wrapper func(Func) Func

// Wrap applies wrappers left to right, so the first wrapper is innermost
// (closest to the function) and the last runs first on a call
func Wrap(fn Func, ws ...Wrapper) Func {
	for _, w := range ws {
		fn = w(fn)
	}
	return fn
}

// Adapt1 lifts a typed single-parameter function into a Func. The argument
// is resolved positionally or by the declared parameter name.
func Adapt1[A, R any](name, param string, f func(A) (R, error)) Func {
	return Func{
		Name:   name,
		Params: []string{param},
		Call: func(args Args) (any, error) {
			raw, ok := argAt(args, []string{param}, 0)
			if !ok {
				return nil, fmt.Errorf("%s: missing argument %q", name, param)
			}
			a, ok := raw.(A)
			if !ok {
				return nil, fmt.Errorf("%s: argument %q: unexpected type %T", name, param, raw)
			}
			return f(a)
		},
	}
}

// Adapt2 lifts a typed two-parameter function into a Func
func Adapt2[A, B, R any](name string, params [2]string, f func(A, B) (R, error)) Func {
	declared := []string{params[0], params[1]}
	return Func{
		Name:   name,
		Params: declared,
		Call: func(args Args) (any, error) {
			rawA, ok := argAt(args, declared, 0)
			if !ok {
				return nil, fmt.Errorf("%s: missing argument %q", name, params[0])
			}
			rawB, ok := argAt(args, declared, 1)
			if !ok {
				return nil, fmt.Errorf("%s: missing argument %q", name, params[1])
			}
			a, ok := rawA.(A)
			if !ok {
				return nil, fmt.Errorf("%s: argument %q: unexpected type %T", name, params[0], rawA)
			}
			b, ok := rawB.(B)
			if !ok {
				return nil, fmt.Errorf("%s: argument %q: unexpected type %T", name, params[1], rawB)
			}
			return f(a, b)
		},
	}
}

// argAt resolves the argument bound to declared parameter index i,
// preferring a keyword binding over the positional slot
func argAt(args Args, params []string, i int) (any, bool) {
	if v, ok := args.Keyword[params[i]]; ok {
		return v, true
	}
	if i < len(args.Positional) {
		return args.Positional[i], true
	}
	return nil, false
}
