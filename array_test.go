package chtype_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maximdanilchenko/chtype"
)

func TestArrayDecode(t *testing.T) {
	typ := mustParseType(t, "Array(UInt8)")

	v, err := typ.Decode([]byte("[1,2,3,4]"))
	require.NoError(t, err)
	require.Equal(t, []interface{}{uint8(1), uint8(2), uint8(3), uint8(4)}, v)

	v, err = typ.Decode([]byte("[]"))
	require.NoError(t, err)
	require.Equal(t, []interface{}{}, v)
}

func TestArrayDecodeNested(t *testing.T) {
	typ := mustParseType(t, "Array(Array(Int32))")

	v, err := typ.Decode([]byte("[[1,2],[],[3]]"))
	require.NoError(t, err)
	require.Equal(t, []interface{}{
		[]interface{}{int32(1), int32(2)},
		[]interface{}{},
		[]interface{}{int32(3)},
	}, v)
}

func TestArrayDecodeNullableElements(t *testing.T) {
	typ := mustParseType(t, "Array(Nullable(String))")

	v, err := typ.Decode([]byte(`['a',NULL,'c']`))
	require.NoError(t, err)
	require.Equal(t, []interface{}{"a", nil, "c"}, v)
}

func TestArrayDecodeMalformed(t *testing.T) {
	typ := mustParseType(t, "Array(UInt8)")
	_, err := typ.Decode([]byte("1,2,3"))
	var parseErr *chtype.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFixedArrayDecode(t *testing.T) {
	typ := mustParseType(t, "FixedArray(Float32, 3)")

	v, err := typ.Decode([]byte("[0.5,1.5,2.5]"))
	require.NoError(t, err)
	require.Equal(t, []interface{}{float32(0.5), float32(1.5), float32(2.5)}, v)

	_, err = typ.Decode([]byte("[0.5,1.5]"))
	var arityErr *chtype.ArityMismatchError
	require.ErrorAs(t, err, &arityErr)
	require.Equal(t, 3, arityErr.Want)
	require.Equal(t, 2, arityErr.Got)
}

func TestArrayEncode(t *testing.T) {
	typ := mustParseType(t, "Array(String)")

	buf, err := typ.Encode(nil, []interface{}{"a", "b'c"})
	require.NoError(t, err)
	require.Equal(t, `['a','b\'c']`, string(buf))

	buf, err = typ.Encode(nil, []interface{}{})
	require.NoError(t, err)
	require.Equal(t, "[]", string(buf))
}

func TestTupleDecode(t *testing.T) {
	typ := mustParseType(t, "Tuple(UInt8, String)")

	v, err := typ.Decode([]byte("(4,'hello')"))
	require.NoError(t, err)
	require.Equal(t, chtype.Tuple{uint8(4), "hello"}, v)
}

func TestTupleDecodeWithNullable(t *testing.T) {
	typ := mustParseType(t, "Tuple(Date,Nullable(Float32))")

	v, err := typ.Decode([]byte("('2018-09-07',NULL)"))
	require.NoError(t, err)
	require.Equal(t, chtype.Tuple{chtype.NewDate(2018, time.September, 7), nil}, v)

	v, err = typ.Decode([]byte("('2018-09-08',3.14)"))
	require.NoError(t, err)
	require.Equal(t, chtype.Tuple{chtype.NewDate(2018, time.September, 8), float32(3.14)}, v)
}

func TestTupleDecodeArityMismatch(t *testing.T) {
	typ := mustParseType(t, "Tuple(UInt8, String)")

	_, err := typ.Decode([]byte("(4,'hello',5)"))
	var arityErr *chtype.ArityMismatchError
	require.ErrorAs(t, err, &arityErr)
	require.Equal(t, 2, arityErr.Want)
	require.Equal(t, 3, arityErr.Got)
}

func TestTupleEncode(t *testing.T) {
	typ := mustParseType(t, "Tuple(UInt8, String)")

	buf, err := typ.Encode(nil, chtype.Tuple{uint8(4), "hello"})
	require.NoError(t, err)
	require.Equal(t, "(4,'hello')", string(buf))
}

func TestNullableDecode(t *testing.T) {
	typ := mustParseType(t, "Nullable(Int32)")

	v, err := typ.Decode([]byte(`\N`))
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = typ.Decode([]byte("42"))
	require.NoError(t, err)
	require.Equal(t, int32(42), v)
}

func TestNullableEncodeIsAlwaysNull(t *testing.T) {
	// Encode direction never selects the Nullable wrapper for a value; when
	// it is selected it stands for NULL.
	typ := mustParseType(t, "Nullable(Int32)")

	buf, err := typ.Encode(nil, nil)
	require.NoError(t, err)
	require.Equal(t, "NULL", string(buf))
}

func TestLowCardinalityDelegates(t *testing.T) {
	typ := mustParseType(t, "LowCardinality(String)")

	v, err := typ.Decode([]byte("hello man"))
	require.NoError(t, err)
	require.Equal(t, "hello man", v)

	buf, err := typ.Encode(nil, "hello man")
	require.NoError(t, err)
	require.Equal(t, "'hello man'", string(buf))
}

func TestNothingDecode(t *testing.T) {
	typ := mustParseType(t, "Nullable(Nothing)")
	v, err := typ.Decode([]byte(`\N`))
	require.NoError(t, err)
	require.Nil(t, v)
}
