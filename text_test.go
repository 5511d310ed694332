package chtype_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maximdanilchenko/chtype"
)

func TestBoolDecode(t *testing.T) {
	typ := mustParseType(t, "Bool")

	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
	}
	for i, tt := range tests {
		v, err := typ.Decode([]byte(tt.input))
		require.NoError(t, err, i)
		require.Equal(t, tt.want, v, i)
	}

	_, err := typ.Decode([]byte("yes"))
	var parseErr *chtype.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestBoolEncode(t *testing.T) {
	typ := mustParseType(t, "Bool")

	buf, err := typ.Encode(nil, true)
	require.NoError(t, err)
	require.Equal(t, "1", string(buf))

	buf, err = typ.Encode(nil, false)
	require.NoError(t, err)
	require.Equal(t, "0", string(buf))
}

func TestStringDecodeTopLevel(t *testing.T) {
	typ := mustParseType(t, "String")

	// Top-level TSV fields are escaped but not quoted.
	v, err := typ.Decode([]byte(`'\b\f\r\n\t\\`))
	require.NoError(t, err)
	require.Equal(t, "'\b\f\r\n\t\\", v)

	v, err = typ.Decode([]byte("hello man"))
	require.NoError(t, err)
	require.Equal(t, "hello man", v)
}

func TestStringDecodeInsideContainer(t *testing.T) {
	// Inside a composite literal the server adds one layer of apostrophes.
	typ := mustParseType(t, "Array(String)")

	v, err := typ.Decode([]byte(`['a','b\'c']`))
	require.NoError(t, err)
	require.Equal(t, []interface{}{"a", "b'c"}, v)
}

func TestFixedStringPreservesPadding(t *testing.T) {
	typ := mustParseType(t, "FixedString(8)")
	v, err := typ.Decode([]byte("abc     "))
	require.NoError(t, err)
	require.Equal(t, "abc     ", v)
}

func TestEnumDecodesAsText(t *testing.T) {
	typ := mustParseType(t, "Enum8('hello' = 1, 'world' = 2)")
	v, err := typ.Decode([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, "hello", v)
}

func TestStringEncode(t *testing.T) {
	typ := mustParseType(t, "String")

	buf, err := typ.Encode(nil, `it's a \ backslash`)
	require.NoError(t, err)
	require.Equal(t, `'it\'s a \\ backslash'`, string(buf))

	buf, err = typ.Encode(nil, []byte("raw"))
	require.NoError(t, err)
	require.Equal(t, "'raw'", string(buf))

	_, err = typ.Encode(nil, 5)
	var kindErr *chtype.UnknownKindError
	require.ErrorAs(t, err, &kindErr)
}
