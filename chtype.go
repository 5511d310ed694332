package chtype

import (
	"strconv"
	"strings"
	"sync"
)

// Codec parses already-unescaped literal text into a Go value and renders Go
// values back into INSERT literal text for a single type kind. The set of
// ClickHouse wire types is fixed and small, so codecs form a closed set; they
// are not an extension point.
type Codec interface {
	ParseText(s string) (interface{}, error)
	Encode(buf []byte, v interface{}) ([]byte, error)
}

// Type is an immutable descriptor for one ClickHouse column type. It is built
// once from a type name, reused for every value of that column, and safe for
// concurrent use.
type Type struct {
	name  string
	codec Codec
}

// Name returns the canonical type name the descriptor was built from.
func (t *Type) Name() string { return t.name }

// Decode unescapes a raw TSV field and converts it to a Go value.
func (t *Type) Decode(src []byte) (interface{}, error) {
	s, err := unescape(src)
	if err != nil {
		return nil, err
	}
	return t.codec.ParseText(s)
}

// ParseText converts already-unescaped text to a Go value. Composite
// converters call this on tokenized sub-elements, which have passed through
// the single escape-decode pass done for the whole composite literal.
func (t *Type) ParseText(s string) (interface{}, error) {
	return t.codec.ParseText(s)
}

// Encode appends the INSERT literal text for v to buf and returns it.
func (t *Type) Encode(buf []byte, v interface{}) ([]byte, error) {
	return t.codec.Encode(buf, v)
}

// Map builds and caches Type descriptors from ClickHouse type names.
//
// Logger and LogLevel, if set, enable diagnostics for descriptor builds and
// row decode failures. They must be set before first use.
type Map struct {
	Logger   Logger
	LogLevel LogLevel

	// Cached descriptors are immutable, so concurrent duplicate builds of the
	// same type name are tolerated rather than locked out.
	cache sync.Map // type name -> *Type
}

func NewMap() *Map {
	return &Map{}
}

// ParseType parses a ClickHouse type name into a Type descriptor. It fails
// with UnknownTypeError when the leading type keyword is not recognized.
func (m *Map) ParseType(name string) (*Type, error) {
	if cached, ok := m.cache.Load(name); ok {
		return cached.(*Type), nil
	}

	t, err := m.parseType(name, false)
	if err != nil {
		m.log(LogLevelError, "cannot parse type name", map[string]interface{}{"typeName": name, "err": err})
		return nil, err
	}

	actual, loaded := m.cache.LoadOrStore(name, t)
	if !loaded {
		m.log(LogLevelDebug, "built type descriptor", map[string]interface{}{"typeName": name})
	}
	return actual.(*Type), nil
}

// parseType is the recursive descent over nested parametric type names.
// container reports whether the type sits inside a Tuple or Array and must
// expect an extra layer of quoting around string-like values.
func (m *Map) parseType(name string, container bool) (*Type, error) {
	name = strings.TrimSpace(name)

	base := name
	var args string
	hasArgs := false
	if i := strings.IndexByte(name, '('); i >= 0 {
		if !strings.HasSuffix(name, ")") {
			return nil, &UnknownTypeError{TypeName: name}
		}
		base = name[:i]
		args = name[i+1 : len(name)-1]
		hasArgs = true
	}

	switch base {
	case "AggregateFunction", "SimpleAggregateFunction":
		// Only the payload type matters for conversion; it is the last
		// embedded type argument.
		if !hasArgs {
			return nil, &UnknownTypeError{TypeName: name}
		}
		parts := splitSequence(args)
		if len(parts) < 2 {
			return nil, &UnknownTypeError{TypeName: name}
		}
		return m.parseType(parts[len(parts)-1], container)

	case "Nullable":
		if !hasArgs {
			return nil, &UnknownTypeError{TypeName: name}
		}
		child, err := m.parseType(args, container)
		if err != nil {
			return nil, err
		}
		return &Type{name: name, codec: &nullableCodec{child: child}}, nil

	case "LowCardinality":
		// Dictionary encoding is invisible at the text protocol level.
		if !hasArgs {
			return nil, &UnknownTypeError{TypeName: name}
		}
		child, err := m.parseType(args, container)
		if err != nil {
			return nil, err
		}
		return &Type{name: name, codec: &lowCardinalityCodec{child: child}}, nil

	case "Array":
		if !hasArgs {
			return nil, &UnknownTypeError{TypeName: name}
		}
		elem, err := m.parseType(args, true)
		if err != nil {
			return nil, err
		}
		return &Type{name: name, codec: &arrayCodec{typeName: name, elem: elem, length: -1}}, nil

	case "FixedArray":
		if !hasArgs {
			return nil, &UnknownTypeError{TypeName: name}
		}
		parts := splitSequence(args)
		if len(parts) != 2 {
			return nil, &UnknownTypeError{TypeName: name}
		}
		length, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || length < 0 {
			return nil, &UnknownTypeError{TypeName: name}
		}
		elem, err := m.parseType(parts[0], true)
		if err != nil {
			return nil, err
		}
		return &Type{name: name, codec: &arrayCodec{typeName: name, elem: elem, length: length}}, nil

	case "Tuple":
		if !hasArgs {
			return nil, &UnknownTypeError{TypeName: name}
		}
		parts := splitSequence(args)
		elems := make([]*Type, len(parts))
		for i, p := range parts {
			elem, err := m.parseType(p, true)
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return &Type{name: name, codec: &tupleCodec{typeName: name, elems: elems}}, nil
	}

	codec, err := m.scalarCodec(base, name, args, container)
	if err != nil {
		return nil, err
	}
	return &Type{name: name, codec: codec}, nil
}

// scalarCodec resolves non-composite keywords. Scalar type parameters
// (FixedString width, Enum value lists, Decimal precision and scale, DateTime
// timezone) are accepted syntactically but do not change conversion behavior.
func (m *Map) scalarCodec(base, name, args string, container bool) (Codec, error) {
	switch base {
	case "Bool":
		return &boolCodec{typeName: name}, nil
	case "Int8":
		return &intCodec{typeName: name, bitSize: 8}, nil
	case "Int16":
		return &intCodec{typeName: name, bitSize: 16}, nil
	case "Int32":
		return &intCodec{typeName: name, bitSize: 32}, nil
	case "Int64":
		return &intCodec{typeName: name, bitSize: 64}, nil
	case "UInt8":
		return &uintCodec{typeName: name, bitSize: 8}, nil
	case "UInt16":
		return &uintCodec{typeName: name, bitSize: 16}, nil
	case "UInt32":
		return &uintCodec{typeName: name, bitSize: 32}, nil
	case "UInt64":
		return &uintCodec{typeName: name, bitSize: 64}, nil
	case "Float32":
		return &floatCodec{typeName: name, bitSize: 32}, nil
	case "Float64":
		return &floatCodec{typeName: name, bitSize: 64}, nil
	case "String", "FixedString", "Enum8", "Enum16":
		return &textCodec{typeName: name, container: container}, nil
	case "Date":
		return &dateCodec{typeName: name}, nil
	case "DateTime":
		return &dateTimeCodec{typeName: name}, nil
	case "DateTime64":
		scale := 3
		if args != "" {
			parts := splitSequence(args)
			n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
			if err != nil || n < 0 || n > 9 {
				return nil, &UnknownTypeError{TypeName: name}
			}
			scale = n
		}
		return &dateTime64Codec{typeName: name, scale: scale}, nil
	case "Decimal", "Decimal32", "Decimal64", "Decimal128":
		return &decimalCodec{typeName: name}, nil
	case "UUID":
		return &uuidCodec{typeName: name}, nil
	case "IPv4", "IPv6":
		return &ipCodec{typeName: name}, nil
	case "Nothing":
		return nothingCodec{typeName: name}, nil
	}
	return nil, &UnknownTypeError{TypeName: name}
}
