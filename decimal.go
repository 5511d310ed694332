package chtype

import (
	"github.com/shopspring/decimal"
)

// decimalCodec serves Decimal and the width-suffixed Decimal32/64/128
// variants. Precision and scale parameters affect server-side storage only;
// values round-trip through generic decimal text.
type decimalCodec struct {
	typeName string
}

func (c *decimalCodec) ParseText(s string) (interface{}, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, &ParseError{TypeName: c.typeName, Value: s, Err: err}
	}
	return d, nil
}

func (c *decimalCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	d, ok := v.(decimal.Decimal)
	if !ok {
		return nil, &UnknownKindError{Value: v}
	}
	return append(buf, d.String()...), nil
}
