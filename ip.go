package chtype

import (
	"net"
	"strings"
)

// ipCodec serves both IPv4 and IPv6 columns. The textual forms differ but
// net.ParseIP and net.IP.String cover both families.
type ipCodec struct {
	typeName string
}

func (c *ipCodec) ParseText(s string) (interface{}, error) {
	s = strings.Trim(s, "'")
	ip := net.ParseIP(s)
	if ip == nil {
		return nil, &ParseError{TypeName: c.typeName, Value: s}
	}
	return ip, nil
}

func (c *ipCodec) Encode(buf []byte, v interface{}) ([]byte, error) {
	ip, ok := v.(net.IP)
	if !ok {
		return nil, &UnknownKindError{Value: v}
	}
	return appendQuoted(buf, ip.String()), nil
}
