package framecheck

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jeffamaxey/framecheck/frame"
)

// EventType tags which side of the call a shape event describes
type EventType string

const (
	EventParameters EventType = "parameters"
	EventReturned   EventType = "returned"
)

// Event describes the shape of a frame observed at a function boundary.
// Both events of one invocation share a CallID for correlation.
type Event struct {
	Type    EventType
	CallID  string
	Func    string
	Columns []string
	DTypes  []frame.DType // nil unless dtypes were requested
	Time    time.Time
}

// Observer receives shape events from logging wrappers
type Observer interface {
	OnEvent(Event)
}

// LogTo instruments a function with shape events: one for the first
// positional argument before the call, one for the result after, each only
// when the value is a frame. Non-frames are skipped silently; the wrapper
// never fails on shape and returns the inner result unchanged.
func LogTo(obs Observer, includeDTypes bool) Wrapper {
	return func(fn Func) Func {
		inner := fn.Call
		fn.Call = func(args Args) (any, error) {
			callID := uuid.New().String()

			if val, found, _ := locate(fn, "", args); found {
				if f, ok := frame.Is(val); ok {
					obs.OnEvent(newEvent(EventParameters, callID, fn.Name, f, includeDTypes))
				}
			}

			result, err := inner(args)
			if err != nil {
				return result, err
			}

			if f, ok := frame.Is(result); ok {
				obs.OnEvent(newEvent(EventReturned, callID, fn.Name, f, includeDTypes))
			}
			return result, nil
		}
		return fn
	}
}

// Log is LogTo with a LoggingObserver over slog.Default at the given level
func Log(level slog.Level, includeDTypes bool) Wrapper {
	return LogTo(NewLoggingObserver(nil, level), includeDTypes)
}

func newEvent(typ EventType, callID, funcName string, f frame.Frame, includeDTypes bool) Event {
	e := Event{
		Type:    typ,
		CallID:  callID,
		Func:    funcName,
		Columns: f.Columns(),
		Time:    time.Now(),
	}
	if includeDTypes {
		e.DTypes = make([]frame.DType, len(e.Columns))
		for i, col := range e.Columns {
			dt, ok := f.DType(col)
			if !ok {
				dt = frame.Invalid
			}
			e.DTypes[i] = dt
		}
	}
	return e
}

// LoggingObserver logs shape events with structured fields
type LoggingObserver struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLoggingObserver creates a logging observer. A nil logger means
// slog.Default is resolved at event time.
func NewLoggingObserver(logger *slog.Logger, level slog.Level) *LoggingObserver {
	return &LoggingObserver{logger: logger, level: level}
}

// OnEvent implements Observer
func (lo *LoggingObserver) OnEvent(e Event) {
	logger := lo.logger
	if logger == nil {
		logger = slog.Default()
	}

	msg := "function parameters contained a frame"
	if e.Type == EventReturned {
		msg = "function returned a frame"
	}

	attrs := []any{
		"func", e.Func,
		"call_id", e.CallID,
		"columns", e.Columns,
	}
	if e.DTypes != nil {
		dtypes := make([]string, len(e.DTypes))
		for i, dt := range e.DTypes {
			dtypes[i] = string(dt)
		}
		attrs = append(attrs, "dtypes", dtypes)
	}

	logger.Log(context.Background(), lo.level, msg, attrs...)
}
