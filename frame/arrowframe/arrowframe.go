// Package arrowframe exposes an Apache Arrow schema as a frame.Frame, so
// contracts can be checked against Arrow record batches before any data is
// materialized.
package arrowframe

import (
	"github.com/apache/arrow/go/arrow"

	"github.com/jeffamaxey/framecheck/frame"
)

// Schema wraps an Arrow schema. It implements frame.Frame.
type Schema struct {
	schema *arrow.Schema
}

// New wraps an Arrow schema
func New(schema *arrow.Schema) Schema {
	return Schema{schema: schema}
}

// Columns implements frame.Frame
func (s Schema) Columns() []string {
	fields := s.schema.Fields()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}
	return cols
}

// DType implements frame.Frame
func (s Schema) DType(col string) (frame.DType, bool) {
	for _, f := range s.schema.Fields() {
		if f.Name == col {
			return dtypeOf(f.Type), true
		}
	}
	return frame.Invalid, false
}

// dtypeOf maps Arrow types onto frame dtypes. Integer widths collapse to
// Int64, floats to Float64, temporal types to Time.
func dtypeOf(t arrow.DataType) frame.DType {
	switch t.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return frame.Int64
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return frame.Float64
	case arrow.STRING:
		return frame.String
	case arrow.BOOL:
		return frame.Bool
	case arrow.DATE32, arrow.DATE64, arrow.TIMESTAMP, arrow.TIME32, arrow.TIME64:
		return frame.Time
	default:
		return frame.Invalid
	}
}
