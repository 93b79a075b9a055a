// Package framecheck adds runtime contract checks to functions that consume
// or produce dataframe-shaped values (frame.Frame): required columns exist,
// dtypes match, and optionally nothing unexpected rides along.
//
// A function is represented as a Func carrying its name, declared parameter
// order, and the callable itself. Wrappers compose around it:
//
//	clean := framecheck.Wrap(loadUsers,
//	    framecheck.In("raw", colspec.Cols("id", "name"), false),
//	    framecheck.Out(colspec.Typed(colspec.T("id", frame.Int64)), true),
//	    framecheck.Log(slog.LevelDebug, true),
//	)
//	result, err := clean.Invoke(rawFrame)
//
// In validates the located input argument before the body runs, Out
// validates the returned value after it, and Log emits one structured log
// record per frame crossing the boundary. Violations surface as
// *ContractError; the wrappers never swallow or retry the wrapped
// function's own errors.
//
// Checks are linear in the number of declared columns and keep no state
// between calls; wrapped functions stay as safe for concurrent use as they
// were before wrapping.
package framecheck
