package frame

import "time"

// DType identifies the element type of a frame column
type DType string

const (
	Int64   DType = "int64"
	Float64 DType = "float64"
	String  DType = "string"
	Bool    DType = "bool"
	Time    DType = "time"
	Invalid DType = "invalid"
)

// DTypeOf infers the column dtype for a single Go value
// Integer widths are normalized to Int64 for consistency
func DTypeOf(v any) DType {
	switch v.(type) {
	case int, int8, int16, int32, int64:
		return Int64
	case float32, float64:
		return Float64
	case string:
		return String
	case bool:
		return Bool
	case time.Time:
		return Time
	default:
		return Invalid
	}
}
