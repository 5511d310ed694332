package chtype

type textCodec struct {
	typeName  string
	container bool
}

func (c *textCodec) ParseText(s string) (interface{}, error) {
	// Strings appearing inside a composite literal carry one extra layer of
	// apostrophes added by the server. Top-level TSV fields do not.
	if c.container && len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	return s, nil
}

func (c *textCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case string:
		return appendQuoted(buf, v), nil
	case []byte:
		return appendQuoted(buf, string(v)), nil
	}
	return nil, &UnknownKindError{Value: v}
}
