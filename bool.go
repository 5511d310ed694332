package chtype

type boolCodec struct {
	typeName string
}

func (c *boolCodec) ParseText(s string) (interface{}, error) {
	// ClickHouse emits true/false for Bool columns; 1/0 is the legacy
	// UInt8-backed representation still produced by older servers.
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return nil, &ParseError{TypeName: c.typeName, Value: s}
}

func (c *boolCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, &UnknownKindError{Value: v}
	}
	return appendBool(buf, b), nil
}

// appendBool emits 1/0 rather than true/false; both are accepted for insert
// but 1/0 also works against servers without a native Bool type.
func appendBool(buf []byte, b bool) []byte {
	if b {
		return append(buf, '1')
	}
	return append(buf, '0')
}
