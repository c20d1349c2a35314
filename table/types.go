// Package table implements the indexed table of §3/§4.3: a mapping from an
// index-column value to a row, where a row is a mapping from column name to
// string value under a declared column-type schema.
package table

import "github.com/lost-ferry/ferry-db/serial"

// ColumnType is the declared type of a table column. Recovered from
// original_source/include/IndexedTableDescription.h's ColumnType enum,
// which spec.md's distillation compresses to "declared column-type schema"
// without naming the concrete set of types.
type ColumnType int

const (
	// ColumnString is an unconstrained string column.
	ColumnString ColumnType = iota
	// ColumnInt requires the field to parse as a base-10 integer.
	ColumnInt
	// ColumnFloat requires the field to parse as a floating point number.
	ColumnFloat
	// ColumnBool requires the field to parse as "true" or "false".
	ColumnBool
)

func (c ColumnType) String() string {
	switch c {
	case ColumnString:
		return "string"
	case ColumnInt:
		return "int"
	case ColumnFloat:
		return "float"
	case ColumnBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Column is a single declared schema column.
type Column struct {
	Name string
	Type ColumnType
}

// Row is a single table row: column name -> string value.
type Row map[string]string

// row is the internal per-index storage unit.
type row[I Index] struct {
	index I
	raw   Row
}

// Index is the constraint table.Table's index type parameter must satisfy:
//	comparable, for map-key use. Converting an index supplied as a string (as
//	in S2's Insert("1", ...)) to the declared type is done by the parseIndex
//	function given to New, not by this constraint.
type Index interface {
	comparable
}

// Table is a mapping from an index-column value to a row, under a fixed
//	column schema, per §3. Index is the declared index type; indexCodec
//	parses/serializes it, and columns declares the schema column order and
//	types a row must conform to.
type Table[I Index] struct {
	indexCodec serial.ValueCodec[I]
	parseIndex func(raw string) (I, error)

	columns []Column

	rows map[I]*row[I]
}

// New constructs an empty Table over the given index codec, a function
//	parsing a raw index string into the declared index type (per §4.3, "
//	Index-column values must be convertible to the declared index type"),
//	and the initial column schema in declared order.
func New[I Index](indexCodec serial.ValueCodec[I], parseIndex func(raw string) (I, error), columns ...Column) *Table[I] {
	return &Table[I]{
		indexCodec: indexCodec,
		parseIndex: parseIndex,
		columns:    append([]Column(nil), columns...),
		rows:       make(map[I]*row[I]),
	}
}
