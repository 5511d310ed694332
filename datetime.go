package chtype

import (
	"strings"
	"time"
)

const (
	dateTimeFormat   = "2006-01-02 15:04:05"
	dateTime64Format = "2006-01-02 15:04:05.999999999"
)

type dateTimeCodec struct {
	typeName string
}

func (c *dateTimeCodec) ParseText(s string) (interface{}, error) {
	s = strings.Trim(s, "'")
	if strings.HasPrefix(s, zeroDate) {
		return nil, nil
	}
	t, err := time.Parse(dateTimeFormat, s)
	if err != nil {
		return nil, &ParseError{TypeName: c.typeName, Value: s, Err: err}
	}
	return t, nil
}

// Encode truncates any sub-second component: the fractional part is dropped,
// not rounded, matching what the server does when storing into DateTime.
func (c *dateTimeCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, &UnknownKindError{Value: v}
	}
	return appendTimeLiteral(buf, t, dateTimeFormat), nil
}

type dateTime64Codec struct {
	typeName string
	scale    int
}

func (c *dateTime64Codec) ParseText(s string) (interface{}, error) {
	s = strings.Trim(s, "'")
	if strings.HasPrefix(s, zeroDate) {
		// Covers the all-zero sentinel with any fractional suffix.
		return nil, nil
	}
	t, err := time.Parse(dateTime64Format, s)
	if err != nil {
		return nil, &ParseError{TypeName: c.typeName, Value: s, Err: err}
	}
	return t, nil
}

// Encode preserves fractional seconds at the declared scale. Truncation to the
// scale is the server's own insert behavior, so emitting exactly scale digits
// round-trips.
func (c *dateTime64Codec) Encode(buf []byte, v interface{}) ([]byte, error) {
	t, ok := v.(time.Time)
	if !ok {
		return nil, &UnknownKindError{Value: v}
	}
	layout := dateTimeFormat
	if c.scale > 0 {
		layout += "." + strings.Repeat("0", c.scale)
	}
	return appendTimeLiteral(buf, t, layout), nil
}
