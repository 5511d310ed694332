package chtype

import (
	"net"
	"strconv"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// EncodeRows renders argument tuples into the literal text spliced after
// INSERT ... VALUES: comma-joined parenthesized rows. It fails before any
// bytes are returned if any value's Go type is not in the dispatch table.
func EncodeRows(rows ...[]interface{}) ([]byte, error) {
	var buf []byte
	var err error
	for i, row := range rows {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '(')
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf, err = AppendValue(buf, v)
			if err != nil {
				return nil, err
			}
		}
		buf = append(buf, ')')
	}
	return buf, nil
}

// EncodeParam renders a single value literal, as used for substituting
// parameters into a query string.
func EncodeParam(v interface{}) ([]byte, error) {
	return AppendValue(nil, v)
}

// AppendValue appends the wire literal for v to buf. Dispatch is a closed
// table over exact Go types; there is no interface or reflection fallback, so
// a wrapper type must be unwrapped by the caller before encoding.
func AppendValue(buf []byte, v interface{}) ([]byte, error) {
	var err error
	switch v := v.(type) {
	case nil:
		return append(buf, "NULL"...), nil
	case bool:
		return appendBool(buf, v), nil
	case string:
		return appendQuoted(buf, v), nil
	case int:
		return strconv.AppendInt(buf, int64(v), 10), nil
	case int8:
		return strconv.AppendInt(buf, int64(v), 10), nil
	case int16:
		return strconv.AppendInt(buf, int64(v), 10), nil
	case int32:
		return strconv.AppendInt(buf, int64(v), 10), nil
	case int64:
		return strconv.AppendInt(buf, v, 10), nil
	case uint:
		return strconv.AppendUint(buf, uint64(v), 10), nil
	case uint8:
		return strconv.AppendUint(buf, uint64(v), 10), nil
	case uint16:
		return strconv.AppendUint(buf, uint64(v), 10), nil
	case uint32:
		return strconv.AppendUint(buf, uint64(v), 10), nil
	case uint64:
		return strconv.AppendUint(buf, v, 10), nil
	case float32:
		return strconv.AppendFloat(buf, float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.AppendFloat(buf, v, 'g', -1, 64), nil
	case Date:
		return appendTimeLiteral(buf, v.Time, dateFormat), nil
	case time.Time:
		// A bare time.Time is a DateTime: sub-second precision is dropped,
		// not rounded.
		return appendTimeLiteral(buf, v, dateTimeFormat), nil
	case decimal.Decimal:
		return append(buf, v.String()...), nil
	case uuid.UUID:
		return appendQuoted(buf, v.String()), nil
	case net.IP:
		return appendQuoted(buf, v.String()), nil
	case Tuple:
		buf = append(buf, '(')
		for i, el := range v {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf, err = AppendValue(buf, el)
			if err != nil {
				return nil, err
			}
		}
		return append(buf, ')'), nil
	case []interface{}:
		buf = append(buf, '[')
		for i, el := range v {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf, err = AppendValue(buf, el)
			if err != nil {
				return nil, err
			}
		}
		return append(buf, ']'), nil
	}
	return nil, &UnknownKindError{Value: v}
}
