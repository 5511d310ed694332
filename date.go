package chtype

import (
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// zeroDate is the sentinel ClickHouse emits for an out-of-range or unset Date.
// It decodes to nil rather than failing.
const zeroDate = "0000-00-00"

// Date represents a ClickHouse Date value. It is distinct from time.Time so
// that the insert encoder can tell a Date argument from a DateTime argument.
type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Time.Format(dateFormat)
}

type dateCodec struct {
	typeName string
}

func (c *dateCodec) ParseText(s string) (interface{}, error) {
	s = strings.Trim(s, "'")
	if s == zeroDate {
		return nil, nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return nil, &ParseError{TypeName: c.typeName, Value: s, Err: err}
	}
	return Date{Time: t}, nil
}

func (c *dateCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	switch v := v.(type) {
	case Date:
		return appendTimeLiteral(buf, v.Time, dateFormat), nil
	case time.Time:
		return appendTimeLiteral(buf, v, dateFormat), nil
	}
	return nil, &UnknownKindError{Value: v}
}

func appendTimeLiteral(buf []byte, t time.Time, layout string) []byte {
	buf = append(buf, '\'')
	buf = t.AppendFormat(buf, layout)
	return append(buf, '\'')
}
