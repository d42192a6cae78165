package configloader

import (
	"fmt"
	"reflect"
)

func fieldSetter(field reflect.Value) Setter {
	return func(v Value) (func(), error) {
		converted, err := convertValue(v, field.Type())
		if err != nil {
			return nil, err
		}
		return func() { field.Set(converted) }, nil
	}
}

// convertValue produces a value of type t holding v. Absent values become
// the zero value of t, so pointers and interfaces end up nil.
func convertValue(v Value, t reflect.Type) (reflect.Value, error) {
	if v.IsAbsent() {
		return reflect.Zero(t), nil
	}

	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Interface:
		iv := reflect.ValueOf(v.Interface())
		if iv.Type().AssignableTo(t) {
			out.Set(iv)
			return out, nil
		}

	case reflect.Pointer:
		elem, err := convertValue(v, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil

	case reflect.Bool:
		if v.Kind() == KindBool {
			out.SetBool(v.Bool())
			return out, nil
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Kind() == KindInt {
			if out.OverflowInt(v.Int()) {
				return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrFieldBinding, v.Int(), t)
			}
			out.SetInt(v.Int())
			return out, nil
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Kind() == KindInt {
			if v.Int() < 0 || out.OverflowUint(uint64(v.Int())) {
				return reflect.Value{}, fmt.Errorf("%w: %d does not fit %s", ErrFieldBinding, v.Int(), t)
			}
			out.SetUint(uint64(v.Int()))
			return out, nil
		}

	case reflect.Float32, reflect.Float64:
		var f float64
		switch v.Kind() {
		case KindInt:
			f = float64(v.Int())
		case KindFloat:
			f = v.Float()
		default:
			return reflect.Value{}, incompatible(v, t)
		}
		if out.OverflowFloat(f) {
			return reflect.Value{}, fmt.Errorf("%w: %g overflows %s", ErrFieldBinding, f, t)
		}
		out.SetFloat(f)
		return out, nil

	case reflect.String:
		if v.Kind() == KindString {
			out.SetString(v.Str())
			return out, nil
		}
	}

	return reflect.Value{}, incompatible(v, t)
}

func incompatible(v Value, t reflect.Type) error {
	return fmt.Errorf("%w: %s value %q is not assignable to %s", ErrFieldBinding, v.Kind(), v.String(), t)
}
