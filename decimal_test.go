package chtype_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/maximdanilchenko/chtype"
)

func TestDecimalDecode(t *testing.T) {
	for _, typeName := range []string{"Decimal(9, 4)", "Decimal32(4)", "Decimal64(8)", "Decimal128(16)"} {
		typ := mustParseType(t, typeName)
		v, err := typ.Decode([]byte("123.4567"))
		require.NoError(t, err, typeName)
		require.True(t, decimal.RequireFromString("123.4567").Equal(v.(decimal.Decimal)), typeName)
	}
}

func TestDecimalDecodeMalformed(t *testing.T) {
	typ := mustParseType(t, "Decimal(9, 4)")
	_, err := typ.Decode([]byte("12.3.4"))
	var parseErr *chtype.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestDecimalEncode(t *testing.T) {
	typ := mustParseType(t, "Decimal(18, 6)")
	buf, err := typ.Encode(nil, decimal.RequireFromString("-0.000001"))
	require.NoError(t, err)
	require.Equal(t, "-0.000001", string(buf))
}
