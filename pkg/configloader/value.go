package configloader

import (
	"errors"
	"strconv"
	"strings"
)

// Kind identifies the type a raw value was coerced to.
type Kind int

const (
	// KindAbsent marks a key with nothing after the delimiter.
	KindAbsent Kind = iota
	// KindBool is a case-insensitive "true" or "false".
	KindBool
	// KindInt is a base-10 signed 64-bit integer.
	KindInt
	// KindFloat is a 64-bit floating point number.
	KindFloat
	// KindString is the trimmed raw text.
	KindString
)

// String returns the kind's name, such as "float".
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a coerced configuration value. The zero Value is absent.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// BoolValue builds a boolean Value, mostly useful when driving a Setter by hand.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue builds an integer Value.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue builds a floating point Value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// StringValue builds a string Value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// Kind reports which accessor holds the value.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the key had no value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Bool returns the boolean, or false for other kinds.
func (v Value) Bool() bool { return v.b }

// Int returns the integer, or 0 for other kinds.
func (v Value) Int() int64 { return v.i }

// Float returns the float, or 0 for other kinds.
func (v Value) Float() float64 { return v.f }

// Str returns the string, or "" for other kinds.
func (v Value) Str() string { return v.s }

// Interface returns the value as bool, int64, float64 or string, or nil when absent.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	default:
		return nil
	}
}

// String formats the value for logs; absent values print as <absent>.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return "<absent>"
	}
}

type coercionRule func(string) (Value, bool)

// coercionRules is evaluated in order; the first rule that accepts the
// trimmed input decides the kind. The string rule always accepts.
var coercionRules = []coercionRule{
	parseBool,
	parseInt,
	parseFloat,
	func(s string) (Value, bool) { return StringValue(s), true },
}

// Coerce converts a raw value into a typed Value. present=false yields an
// absent Value.
func Coerce(raw string, present bool) Value {
	if !present {
		return Value{}
	}
	trimmed := strings.TrimSpace(raw)
	for _, rule := range coercionRules {
		if v, ok := rule(trimmed); ok {
			return v
		}
	}
	return StringValue(trimmed)
}

func parseBool(s string) (Value, bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return BoolValue(true), true
	case strings.EqualFold(s, "false"):
		return BoolValue(false), true
	}
	return Value{}, false
}

func parseInt(s string) (Value, bool) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, false
	}
	return IntValue(i), true
}

// parseFloat accepts decimal and exponent literals plus the exact spellings
// NaN and [+-]Infinity. Digit separators and Go's inf/nan variants are left
// as strings. Out-of-range literals saturate to infinity or zero.
func parseFloat(s string) (Value, bool) {
	if s == "" || strings.ContainsRune(s, '_') {
		return Value{}, false
	}
	switch body := strings.TrimLeft(s, "+-"); strings.ToLower(body) {
	case "inf", "infinity":
		if body != "Infinity" {
			return Value{}, false
		}
	case "nan":
		if s != "NaN" {
			return Value{}, false
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, false
	}
	return FloatValue(f), true
}
