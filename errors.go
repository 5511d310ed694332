package chtype

import (
	"fmt"
)

// UnknownTypeError occurs when a type name's leading keyword has no registered
// converter. One unknown column type invalidates the whole result set, so it
// is reported from descriptor building rather than per row.
type UnknownTypeError struct {
	TypeName string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("chtype: unknown type %q", e.TypeName)
}

// ParseError occurs when a field's text does not match its declared type's
// grammar.
type ParseError struct {
	TypeName string
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chtype: cannot parse %q as %s: %v", e.Value, e.TypeName, e.Err)
	}
	return fmt.Sprintf("chtype: cannot parse %q as %s", e.Value, e.TypeName)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RangeError occurs when a numeric value overflows its declared width.
type RangeError struct {
	TypeName string
	Value    string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("chtype: value %q out of range for %s", e.Value, e.TypeName)
}

// ArityMismatchError occurs when a composite literal's element count does not
// match its declared type.
type ArityMismatchError struct {
	TypeName string
	Want     int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("chtype: %s literal has %d elements, expected %d", e.TypeName, e.Got, e.Want)
}

// UnknownKindError occurs when an insert argument's Go type has no registered
// encoder. Dispatch is by exact type only.
type UnknownKindError struct {
	Value interface{}
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("chtype: no encoder for Go type %T", e.Value)
}

// EncodingError occurs when raw field bytes are not valid UTF-8.
type EncodingError struct {
	Value []byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("chtype: invalid UTF-8 in field %q", e.Value)
}
