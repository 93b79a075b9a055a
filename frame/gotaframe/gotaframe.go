// Package gotaframe exposes a gota dataframe as a frame.Frame
package gotaframe

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/jeffamaxey/framecheck/frame"
)

// DataFrame wraps a gota dataframe. It implements frame.Frame.
type DataFrame struct {
	df dataframe.DataFrame
}

// New wraps a gota dataframe
func New(df dataframe.DataFrame) DataFrame {
	return DataFrame{df: df}
}

// Columns implements frame.Frame
func (d DataFrame) Columns() []string {
	return d.df.Names()
}

// DType implements frame.Frame
func (d DataFrame) DType(col string) (frame.DType, bool) {
	names := d.df.Names()
	types := d.df.Types()
	for i, name := range names {
		if name == col {
			return dtypeOf(types[i]), true
		}
	}
	return frame.Invalid, false
}

func dtypeOf(t series.Type) frame.DType {
	switch t {
	case series.Int:
		return frame.Int64
	case series.Float:
		return frame.Float64
	case series.String:
		return frame.String
	case series.Bool:
		return frame.Bool
	default:
		return frame.Invalid
	}
}
