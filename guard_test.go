package framecheck_test

import (
	"errors"
	"testing"

	"github.com/jeffamaxey/framecheck"
	"github.com/jeffamaxey/framecheck/colspec"
	"github.com/jeffamaxey/framecheck/frame"
	"github.com/jeffamaxey/framecheck/internal/testutil"
)

// passthrough builds a single-parameter Func recording whether its body ran
func passthrough(ran *bool) framecheck.Func {
	return framecheck.Func{
		Name:   "passthrough",
		Params: []string{"df"},
		Call: func(args framecheck.Args) (any, error) {
			*ran = true
			return args.Positional[0], nil
		},
	}
}

// TestIn_ValidFrame tests that a satisfied input contract is transparent
func TestIn_ValidFrame(t *testing.T) {
	ran := false
	fn := framecheck.Wrap(passthrough(&ran), framecheck.In("", colspec.Cols("a", "b"), false))

	result, err := fn.Invoke(abFrame())
	testutil.AssertNoError(t, err, "In with satisfied contract")
	if !ran {
		t.Error("wrapped body should have run")
	}
	if _, ok := result.(frame.Frame); !ok {
		t.Errorf("expected the frame back, got %T", result)
	}
}

// TestIn_NonFrameBlocksBody tests that the body observably does not run on a
// non-frame argument and the error names the actual type
func TestIn_NonFrameBlocksBody(t *testing.T) {
	ran := false
	fn := framecheck.Wrap(passthrough(&ran), framecheck.In("", colspec.Spec{}, false))

	_, err := fn.Invoke("not a frame")

	var cerr *framecheck.ContractError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ContractError, got %v", err)
	}
	if cerr.Constraint != framecheck.ConstraintNotAFrame {
		t.Errorf("expected not_a_frame, got %s", cerr.Constraint)
	}
	testutil.AssertErrorContains(t, err, "string", "not_a_frame names the runtime type")
	if ran {
		t.Error("wrapped body must not run after an input violation")
	}
}

// TestIn_ViolationBlocksBody tests that a column violation stops the call
func TestIn_ViolationBlocksBody(t *testing.T) {
	ran := false
	fn := framecheck.Wrap(passthrough(&ran), framecheck.In("", colspec.Cols("a", "b", "c"), false))

	_, err := fn.Invoke(abFrame())
	testutil.AssertErrorContains(t, err, "passthrough", "violation names the function")
	if ran {
		t.Error("wrapped body must not run after an input violation")
	}
}

// TestIn_NamedParameter tests locating the frame by declared parameter name
func TestIn_NamedParameter(t *testing.T) {
	ran := false
	fn := framecheck.Func{
		Name:   "merge",
		Params: []string{"left", "right"},
		Call: func(args framecheck.Args) (any, error) {
			ran = true
			return nil, nil
		},
	}
	wrapped := framecheck.Wrap(fn, framecheck.In("right", colspec.Cols("a"), false))

	// bound positionally at the declared index
	_, err := wrapped.Call(framecheck.Args{Positional: []any{"left value", abFrame()}})
	testutil.AssertNoError(t, err, "named parameter bound positionally")
	if !ran {
		t.Error("wrapped body should have run")
	}

	// bound by keyword
	_, err = wrapped.Call(framecheck.Args{
		Positional: []any{"left value"},
		Keyword:    map[string]any{"right": abFrame()},
	})
	testutil.AssertNoError(t, err, "named parameter bound by keyword")

	// not bound at all
	_, err = wrapped.Call(framecheck.Args{Positional: []any{"left value"}})
	var cerr *framecheck.ContractError
	if !errors.As(err, &cerr) || cerr.Constraint != framecheck.ConstraintParamResolution {
		t.Errorf("expected param_resolution, got %v", err)
	}
}

// TestIn_AbsentFirstPositional tests a no-argument call against an input guard
func TestIn_AbsentFirstPositional(t *testing.T) {
	ran := false
	fn := framecheck.Wrap(passthrough(&ran), framecheck.In("", colspec.Spec{}, false))

	_, err := fn.Invoke()

	var cerr *framecheck.ContractError
	if !errors.As(err, &cerr) || cerr.Constraint != framecheck.ConstraintNotAFrame {
		t.Errorf("expected not_a_frame for absent argument, got %v", err)
	}
	if ran {
		t.Error("wrapped body must not run")
	}
}

// TestOut_ValidFrame tests that a satisfied output contract is transparent
func TestOut_ValidFrame(t *testing.T) {
	ran := false
	fn := framecheck.Wrap(passthrough(&ran),
		framecheck.Out(colspec.Typed(colspec.T("a", frame.Int64), colspec.T("b", frame.Float64)), true))

	result, err := fn.Invoke(abFrame())
	testutil.AssertNoError(t, err, "Out with satisfied contract")
	if _, ok := result.(frame.Frame); !ok {
		t.Errorf("expected the frame back, got %T", result)
	}
}

// TestOut_NonFrameResult tests the type violation on a non-frame return
func TestOut_NonFrameResult(t *testing.T) {
	fn := framecheck.Func{
		Name:   "badproducer",
		Params: []string{"n"},
		Call: func(framecheck.Args) (any, error) {
			return 42, nil
		},
	}
	wrapped := framecheck.Wrap(fn, framecheck.Out(colspec.Spec{}, false))

	_, err := wrapped.Invoke(1)

	var cerr *framecheck.ContractError
	if !errors.As(err, &cerr) || cerr.Constraint != framecheck.ConstraintNotAFrame {
		t.Fatalf("expected not_a_frame, got %v", err)
	}
	testutil.AssertErrorContains(t, err, "int", "not_a_frame names the runtime type")
}

// TestOut_InnerErrorPropagates tests that a failing wrapped function
// surfaces its own error with no validation layered on top
func TestOut_InnerErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	fn := framecheck.Func{
		Name:   "failing",
		Params: []string{"df"},
		Call: func(framecheck.Args) (any, error) {
			return nil, boom
		},
	}
	wrapped := framecheck.Wrap(fn, framecheck.Out(colspec.Cols("a"), true))

	_, err := wrapped.Invoke(abFrame())
	if !errors.Is(err, boom) {
		t.Errorf("expected the inner error unchanged, got %v", err)
	}
	var cerr *framecheck.ContractError
	if errors.As(err, &cerr) {
		t.Errorf("no contract error expected, got %v", cerr)
	}
}

// TestWrap_PreservesIdentity tests that wrapping keeps name and parameters
func TestWrap_PreservesIdentity(t *testing.T) {
	ran := false
	fn := framecheck.Wrap(passthrough(&ran),
		framecheck.In("", colspec.Cols("a"), false),
		framecheck.Out(colspec.Cols("a"), false),
	)

	if fn.Name != "passthrough" {
		t.Errorf("expected name preserved, got %q", fn.Name)
	}
	testutil.AssertStringsEqual(t, fn.Params, []string{"df"}, "wrapped parameter list")
}

// TestAdapt1 tests lifting a typed function into the call model
func TestAdapt1(t *testing.T) {
	fn := framecheck.Adapt1("double", "n", func(n int) (int, error) {
		return n * 2, nil
	})

	result, err := fn.Invoke(21)
	testutil.AssertNoError(t, err, "Adapt1 positional call")
	if result != 42 {
		t.Errorf("expected 42, got %v", result)
	}

	result, err = fn.Call(framecheck.Args{Keyword: map[string]any{"n": 3}})
	testutil.AssertNoError(t, err, "Adapt1 keyword call")
	if result != 6 {
		t.Errorf("expected 6, got %v", result)
	}

	_, err = fn.Invoke()
	testutil.AssertError(t, err, "Adapt1 missing argument")
}

// TestAdapt2 tests the two-parameter adapter with mixed bindings
func TestAdapt2(t *testing.T) {
	fn := framecheck.Adapt2("concat", [2]string{"a", "b"}, func(a, b string) (string, error) {
		return a + b, nil
	})

	result, err := fn.Call(framecheck.Args{
		Positional: []any{"foo"},
		Keyword:    map[string]any{"b": "bar"},
	})
	testutil.AssertNoError(t, err, "Adapt2 mixed bindings")
	if result != "foobar" {
		t.Errorf("expected foobar, got %v", result)
	}
}
