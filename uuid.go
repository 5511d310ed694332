package chtype

import (
	"strings"

	"github.com/gofrs/uuid"
)

type uuidCodec struct {
	typeName string
}

func (c *uuidCodec) ParseText(s string) (interface{}, error) {
	s = strings.Trim(s, "'")
	u, err := uuid.FromString(s)
	if err != nil {
		return nil, &ParseError{TypeName: c.typeName, Value: s, Err: err}
	}
	return u, nil
}

func (c *uuidCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	u, ok := v.(uuid.UUID)
	if !ok {
		return nil, &UnknownKindError{Value: v}
	}
	return appendQuoted(buf, u.String()), nil
}
