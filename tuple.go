package chtype

// Tuple is the decoded form of a ClickHouse Tuple value: an ordered
// fixed-arity sequence of heterogeneously typed values. It is a distinct
// type so that the insert encoder can tell a tuple argument (rendered with
// parens) from an array argument (rendered with brackets).
type Tuple []interface{}

type tupleCodec struct {
	typeName string
	elems    []*Type
}

func (c *tupleCodec) ParseText(s string) (interface{}, error) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, &ParseError{TypeName: c.typeName, Value: s}
	}

	parts := splitSequence(s[1 : len(s)-1])
	if len(parts) != len(c.elems) {
		return nil, &ArityMismatchError{TypeName: c.typeName, Want: len(c.elems), Got: len(parts)}
	}

	vals := make(Tuple, len(parts))
	for i, p := range parts {
		v, err := c.elems[i].ParseText(p)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (c *tupleCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	var vals []interface{}
	switch v := v.(type) {
	case Tuple:
		vals = v
	case []interface{}:
		vals = v
	default:
		return nil, &UnknownKindError{Value: v}
	}
	if len(vals) != len(c.elems) {
		return nil, &ArityMismatchError{TypeName: c.typeName, Want: len(c.elems), Got: len(vals)}
	}

	var err error
	buf = append(buf, '(')
	for i, val := range vals {
		if i > 0 {
			buf = append(buf, ',')
		}
		if val == nil {
			buf = append(buf, "NULL"...)
			continue
		}
		buf, err = c.elems[i].Encode(buf, val)
		if err != nil {
			return nil, err
		}
	}
	return append(buf, ')'), nil
}
