package chtype_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maximdanilchenko/chtype"
)

func mustParseType(t *testing.T, name string) *chtype.Type {
	t.Helper()
	typ, err := chtype.NewMap().ParseType(name)
	require.NoError(t, err)
	return typ
}

func TestParseTypeScalars(t *testing.T) {
	m := chtype.NewMap()

	names := []string{
		"Bool",
		"Int8", "Int16", "Int32", "Int64",
		"UInt8", "UInt16", "UInt32", "UInt64",
		"Float32", "Float64",
		"String", "FixedString(32)",
		"Enum8('hello' = 1, 'world' = 2)", "Enum16('hello' = 1000, 'world' = 2000)",
		"Date", "DateTime", "DateTime('Europe/Moscow')", "DateTime64(6)",
		"Decimal(9, 4)", "Decimal32(4)", "Decimal64(8)", "Decimal128(16)",
		"UUID", "IPv4", "IPv6",
		"Nothing",
	}

	for _, name := range names {
		typ, err := m.ParseType(name)
		require.NoError(t, err, name)
		require.Equal(t, name, typ.Name())
	}
}

func TestParseTypeUnknown(t *testing.T) {
	m := chtype.NewMap()

	for _, name := range []string{"Whatever", "Array(Whatever)", "Nullable", "Array(Int32", ""} {
		_, err := m.ParseType(name)
		require.Error(t, err, name)
		var unknownErr *chtype.UnknownTypeError
		require.ErrorAs(t, err, &unknownErr, name)
	}
}

func TestParseTypeCachesDescriptors(t *testing.T) {
	m := chtype.NewMap()

	a, err := m.ParseType("Array(Nullable(String))")
	require.NoError(t, err)
	b, err := m.ParseType("Array(Nullable(String))")
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestParseTypeAggregateFunctionUnwrap(t *testing.T) {
	typ := mustParseType(t, "SimpleAggregateFunction(sum, UInt64)")
	v, err := typ.Decode([]byte("42"))
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)

	typ = mustParseType(t, "AggregateFunction(quantiles(0.5, 0.9), Float64)")
	v, err = typ.Decode([]byte("1.5"))
	require.NoError(t, err)
	require.Equal(t, 1.5, v)
}

func TestParseTypeNested(t *testing.T) {
	typ := mustParseType(t, "Array(Nullable(Tuple(Date, UInt8)))")

	v, err := typ.Decode([]byte(`[('2018-09-07',4),NULL]`))
	require.NoError(t, err)
	require.Equal(t, []interface{}{
		chtype.Tuple{chtype.NewDate(2018, time.September, 7), uint8(4)},
		nil,
	}, v)
}

func TestDecodeAgreesWithParseText(t *testing.T) {
	// Whenever the escape decoder is a no-op, both entry points agree.
	tests := []struct {
		typeName string
		input    string
	}{
		{"Int32", "-42"},
		{"String", "hello man"},
		{"Array(UInt8)", "[1,2,3,4]"},
		{"Tuple(UInt8, String)", "(4,'hello')"},
		{"Nullable(Int8)", "NULL"},
	}

	for i, tt := range tests {
		typ := mustParseType(t, tt.typeName)
		decoded, err := typ.Decode([]byte(tt.input))
		require.NoError(t, err, i)
		parsed, err := typ.ParseText(tt.input)
		require.NoError(t, err, i)
		require.Equal(t, decoded, parsed, i)
	}
}
