package chtype

import (
	"errors"
	"strconv"
)

type floatCodec struct {
	typeName string
	bitSize  int
}

func (c *floatCodec) ParseText(s string) (interface{}, error) {
	f, err := strconv.ParseFloat(s, c.bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, &RangeError{TypeName: c.typeName, Value: s}
		}
		return nil, &ParseError{TypeName: c.typeName, Value: s, Err: err}
	}
	if c.bitSize == 32 {
		return float32(f), nil
	}
	return f, nil
}

func (c *floatCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case float32:
		return strconv.AppendFloat(buf, float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.AppendFloat(buf, v, 'g', -1, c.bitSize), nil
	}
	return nil, &UnknownKindError{Value: v}
}
