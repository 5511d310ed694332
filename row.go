package chtype

import (
	"github.com/pkg/errors"
)

// FieldDescription describes one column of a result set header: its name and
// ClickHouse type name, as carried by the two header rows of
// TSVWithNamesAndTypes.
type FieldDescription struct {
	Name     string
	TypeName string
}

// RowDecoder holds the column descriptors for one result set. Build it once
// from the header, then decode every row of the result with it.
type RowDecoder struct {
	m     *Map
	names []string
	types []*Type
	index map[string]int
}

// NewRowDecoder builds one descriptor per column. A single unknown column
// type invalidates the whole result set.
func (m *Map) NewRowDecoder(fields []FieldDescription) (*RowDecoder, error) {
	rd := &RowDecoder{
		m:     m,
		names: make([]string, len(fields)),
		types: make([]*Type, len(fields)),
		index: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		t, err := m.ParseType(f.TypeName)
		if err != nil {
			return nil, errors.Wrapf(err, "column %q", f.Name)
		}
		rd.names[i] = f.Name
		rd.types[i] = t
		rd.index[f.Name] = i
	}
	return rd, nil
}

// Types returns the column descriptors in header order.
func (rd *RowDecoder) Types() []*Type {
	return rd.types
}

// Decode converts one raw row. raw holds the still-escaped bytes of each
// field, one per column, with the transport's field and row delimiters
// already removed. An empty raw slice decodes to an empty row.
func (rd *RowDecoder) Decode(raw [][]byte) (Row, error) {
	if len(raw) == 0 {
		return Row{dec: rd}, nil
	}
	if len(raw) != len(rd.types) {
		return Row{}, errors.Errorf("chtype: row has %d fields, header has %d columns", len(raw), len(rd.types))
	}

	vals := make([]interface{}, len(raw))
	for i, f := range raw {
		v, err := rd.types[i].Decode(f)
		if err != nil {
			rd.m.log(LogLevelError, "cannot decode field", map[string]interface{}{
				"column":   rd.names[i],
				"typeName": rd.types[i].Name(),
				"err":      err,
			})
			return Row{}, errors.Wrapf(err, "column %q", rd.names[i])
		}
		vals[i] = v
	}
	return Row{dec: rd, values: vals}, nil
}

// Row is an ordered sequence of decoded values, one per column, addressable
// by position and by column name.
type Row struct {
	dec    *RowDecoder
	values []interface{}
}

func (r Row) Len() int {
	return len(r.values)
}

// Values returns the decoded values in column order.
func (r Row) Values() []interface{} {
	return r.values
}

// Value returns the decoded value at column position i.
func (r Row) Value(i int) interface{} {
	return r.values[i]
}

// Get returns the decoded value of the named column. The second return value
// is false when the result set has no such column.
func (r Row) Get(name string) (interface{}, bool) {
	if r.dec == nil {
		return nil, false
	}
	i, ok := r.dec.index[name]
	if !ok || i >= len(r.values) {
		return nil, false
	}
	return r.values[i], true
}
