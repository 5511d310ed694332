// Package chtype converts between ClickHouse HTTP text-format values and Go values.
/*
chtype implements the value codec used when talking to ClickHouse over its HTTP
interface with the TSVWithNamesAndTypes output format and VALUES insert bodies.
It is transport agnostic: the HTTP client hands it the column header (name and
type name per column) and the raw tab-separated fields of each row, and chtype
hands back decoded Go values. In the other direction it renders Go argument
tuples into the literal text spliced after INSERT ... VALUES.

The primary type is Map. ParseType parses a ClickHouse type name such as
"Array(Nullable(Tuple(Date, UInt8)))" into an immutable Type descriptor that
can decode and encode values of that column type. Descriptors are cached by
type name and are safe for concurrent use.

Row Decoding

NewRowDecoder builds the descriptors for one result set from its header:

	dec, err := m.NewRowDecoder([]chtype.FieldDescription{
		{Name: "id", TypeName: "UInt64"},
		{Name: "tags", TypeName: "Array(String)"},
	})
	...
	row, err := dec.Decode(rawFields)
	id := row.Value(0).(uint64)
	tags, _ := row.Get("tags")

Decoded values use a fixed vocabulary: sized integer and float types, string,
chtype.Date, time.Time, decimal.Decimal, uuid.UUID, net.IP, chtype.Tuple,
[]interface{} for arrays, and untyped nil for NULL.

Insert Encoding

EncodeRows renders argument tuples for a multi-row INSERT:

	body, err := chtype.EncodeRows(
		[]interface{}{1, chtype.Tuple{chtype.NewDate(2018, time.September, 7), nil}},
		[]interface{}{2, chtype.Tuple{chtype.NewDate(2018, time.September, 8), float32(3.14)}},
	)
	// body: (1,('2018-09-07',NULL)),(2,('2018-09-08',3.14))

Encoding dispatches on the exact Go type of each argument. There is no
reflection fallback: a value outside the supported vocabulary fails with
UnknownKindError before any bytes are produced.
*/
package chtype
