package chtype

// nullMarker is the two-character TSV NULL literal. The escape decoder keeps
// it intact, so it reaches ParseText as-is. Inside composite literals NULL is
// spelled out instead.
const nullMarker = `\N`

type nullableCodec struct {
	child *Type
}

func (c *nullableCodec) ParseText(s string) (interface{}, error) {
	if s == nullMarker || s == "NULL" {
		return nil, nil
	}
	return c.child.ParseText(s)
}

// Encode always emits the unquoted literal NULL, matching the historical wire
// behavior: inserts never select the Nullable wrapper for a non-nil value, it
// is inferred from context by the kind dispatch in encode.go.
func (c *nullableCodec) Encode(buf []byte, _ interface{}) ([]byte, error) {
	return append(buf, "NULL"...), nil
}

// lowCardinalityCodec delegates to the dictionary's value type. The text
// protocol never exposes dictionary indices.
type lowCardinalityCodec struct {
	child *Type
}

func (c *lowCardinalityCodec) ParseText(s string) (interface{}, error) {
	return c.child.ParseText(s)
}

func (c *lowCardinalityCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	return c.child.Encode(buf, v)
}

// nothingCodec serves the Nothing type, which only ever holds NULL.
type nothingCodec struct {
	typeName string
}

func (nothingCodec) ParseText(string) (interface{}, error) {
	return nil, nil
}

func (c nothingCodec) Encode([]byte, interface{}) ([]byte, error) {
	return nil, &UnknownKindError{Value: nil}
}
