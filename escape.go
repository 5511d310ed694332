package chtype

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// unescape decodes the backslash escapes ClickHouse emits in TSV fields. The
// two-character NULL marker \N is not an escape and passes through intact so
// that Nullable converters can still recognize it. A backslash followed by any
// unlisted character is dropped and the character kept literally.
func unescape(src []byte) (string, error) {
	if !utf8.Valid(src) {
		return "", &EncodingError{Value: src}
	}
	if bytes.IndexByte(src, '\\') < 0 {
		return string(src), nil
	}

	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c != '\\' || i == len(src)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch src[i] {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(' ')
		case 'N':
			b.WriteString(`\N`)
		default:
			b.WriteByte(src[i])
		}
	}
	return b.String(), nil
}

// appendQuoted appends s as an apostrophe-quoted literal for an INSERT body.
// Only backslash and apostrophe need escaping inside quotes.
func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '\'' {
			buf = append(buf, '\\')
		}
		buf = append(buf, c)
	}
	return append(buf, '\'')
}
