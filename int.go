package chtype

import (
	"errors"
	"strconv"
)

type intCodec struct {
	typeName string
	bitSize  int
}

func (c *intCodec) ParseText(s string) (interface{}, error) {
	n, err := strconv.ParseInt(s, 10, c.bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, &RangeError{TypeName: c.typeName, Value: s}
		}
		return nil, &ParseError{TypeName: c.typeName, Value: s, Err: err}
	}

	switch c.bitSize {
	case 8:
		return int8(n), nil
	case 16:
		return int16(n), nil
	case 32:
		return int32(n), nil
	default:
		return n, nil
	}
}

func (c *intCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	n, ok := toInt64(v)
	if !ok {
		return nil, &UnknownKindError{Value: v}
	}
	if c.bitSize < 64 {
		max := int64(1)<<(c.bitSize-1) - 1
		if n > max || n < -max-1 {
			return nil, &RangeError{TypeName: c.typeName, Value: strconv.FormatInt(n, 10)}
		}
	}
	return strconv.AppendInt(buf, n, 10), nil
}

func toInt64(v interface{}) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

type uintCodec struct {
	typeName string
	bitSize  int
}

func (c *uintCodec) ParseText(s string) (interface{}, error) {
	n, err := strconv.ParseUint(s, 10, c.bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, &RangeError{TypeName: c.typeName, Value: s}
		}
		return nil, &ParseError{TypeName: c.typeName, Value: s, Err: err}
	}

	switch c.bitSize {
	case 8:
		return uint8(n), nil
	case 16:
		return uint16(n), nil
	case 32:
		return uint32(n), nil
	default:
		return n, nil
	}
}

func (c *uintCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	n, ok := toUint64(v)
	if !ok {
		s, ok := toInt64(v)
		if !ok {
			return nil, &UnknownKindError{Value: v}
		}
		if s < 0 {
			return nil, &RangeError{TypeName: c.typeName, Value: strconv.FormatInt(s, 10)}
		}
		n = uint64(s)
	}
	if c.bitSize < 64 && n > uint64(1)<<c.bitSize-1 {
		return nil, &RangeError{TypeName: c.typeName, Value: strconv.FormatUint(n, 10)}
	}
	return strconv.AppendUint(buf, n, 10), nil
}

func toUint64(v interface{}) (uint64, bool) {
	switch v := v.(type) {
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	}
	return 0, false
}
