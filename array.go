package chtype

// arrayCodec serves Array(T) and the fixed-size FixedArray(T, n) variant.
// length is -1 for unbounded arrays.
type arrayCodec struct {
	typeName string
	elem     *Type
	length   int
}

func (c *arrayCodec) ParseText(s string) (interface{}, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, &ParseError{TypeName: c.typeName, Value: s}
	}

	parts := splitSequence(s[1 : len(s)-1])
	if c.length >= 0 && len(parts) != c.length {
		return nil, &ArityMismatchError{TypeName: c.typeName, Want: c.length, Got: len(parts)}
	}

	vals := make([]interface{}, len(parts))
	for i, p := range parts {
		v, err := c.elem.ParseText(p)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (c *arrayCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	vals, ok := v.([]interface{})
	if !ok {
		return nil, &UnknownKindError{Value: v}
	}
	if c.length >= 0 && len(vals) != c.length {
		return nil, &ArityMismatchError{TypeName: c.typeName, Want: c.length, Got: len(vals)}
	}

	var err error
	buf = append(buf, '[')
	for i, val := range vals {
		if i > 0 {
			buf = append(buf, ',')
		}
		if val == nil {
			buf = append(buf, "NULL"...)
			continue
		}
		buf, err = c.elem.Encode(buf, val)
		if err != nil {
			return nil, err
		}
	}
	return append(buf, ']'), nil
}
