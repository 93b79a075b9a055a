package frame

import (
	"fmt"
	"sort"
)

// Column holds one named, typed column of values
type Column struct {
	Name   string `json:"name"`
	DType  DType  `json:"dtype"`
	Values []any  `json:"values,omitempty"`
}

// MemFrame is the in-memory Frame implementation. Column order is the
// declaration order. Zero value is an empty frame.
type MemFrame struct {
	names  []string
	byName map[string]Column
}

// NewMemFrame builds a frame from columns. A duplicate column name is an
// error, as is a column whose values disagree in length with the first column.
func NewMemFrame(columns []Column) (*MemFrame, error) {
	mf := &MemFrame{byName: make(map[string]Column, len(columns))}
	rows := -1
	for _, col := range columns {
		if _, exists := mf.byName[col.Name]; exists {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		if rows == -1 {
			rows = len(col.Values)
		} else if len(col.Values) != rows {
			return nil, fmt.Errorf("column %q has %d values, expected %d", col.Name, len(col.Values), rows)
		}
		mf.names = append(mf.names, col.Name)
		mf.byName[col.Name] = col
	}
	return mf, nil
}

// MustNewMemFrame is NewMemFrame panicking on error, for fixtures and tests
func MustNewMemFrame(columns []Column) *MemFrame {
	mf, err := NewMemFrame(columns)
	if err != nil {
		panic(err)
	}
	return mf
}

// FromRows builds a frame from row maps. Columns are accumulated row by row,
// in sorted name order within each row; the dtype of a column is inferred
// from its first non-nil value. Missing cells are stored as nil.
func FromRows(rows []map[string]any) *MemFrame {
	mf := &MemFrame{byName: make(map[string]Column)}
	for _, row := range rows {
		for _, name := range sortedKeys(row) {
			if _, exists := mf.byName[name]; exists {
				continue
			}
			mf.names = append(mf.names, name)
			mf.byName[name] = Column{Name: name, DType: Invalid}
		}
	}
	for _, name := range mf.names {
		col := mf.byName[name]
		for _, row := range rows {
			val := row[name]
			col.Values = append(col.Values, val)
			if col.DType == Invalid && val != nil {
				col.DType = DTypeOf(val)
			}
		}
		mf.byName[name] = col
	}
	return mf
}

// Columns implements Frame
func (mf *MemFrame) Columns() []string {
	cols := make([]string, len(mf.names))
	copy(cols, mf.names)
	return cols
}

// DType implements Frame
func (mf *MemFrame) DType(col string) (DType, bool) {
	c, ok := mf.byName[col]
	if !ok {
		return Invalid, false
	}
	return c.DType, true
}

// Column returns the named column and whether it exists
func (mf *MemFrame) Column(name string) (Column, bool) {
	c, ok := mf.byName[name]
	return c, ok
}

// Len returns the number of rows
func (mf *MemFrame) Len() int {
	if len(mf.names) == 0 {
		return 0
	}
	return len(mf.byName[mf.names[0]].Values)
}

// sortedKeys gives a stable iteration order within a single row map
func sortedKeys(row map[string]any) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
