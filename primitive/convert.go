package primitive

import (
	"math"
	"reflect"
)

// AsFloat widens any numeric value to float64.
func AsFloat(raw any) (float64, bool) {
	k := Of(raw)

	rv := reflect.ValueOf(raw)

	switch {
	case k.IsFloat():
		return rv.Float(), true
	case k.IsSigned():
		return float64(rv.Int()), true
	case k.IsUnsigned():
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// AsInt widens an integer value to int64. Floats are accepted only when
// they hold an integral value in range.
func AsInt(raw any) (int64, bool) {
	k := Of(raw)

	rv := reflect.ValueOf(raw)

	switch {
	case k.IsSigned():
		return rv.Int(), true
	case k.IsUnsigned():
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}

		return int64(u), true
	case k.IsFloat():
		f := rv.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}

		return int64(f), true
	default:
		return 0, false
	}
}

// AsUint widens a non-negative integer value to uint64.
func AsUint(raw any) (uint64, bool) {
	k := Of(raw)

	rv := reflect.ValueOf(raw)

	switch {
	case k.IsUnsigned():
		return rv.Uint(), true
	case k.IsSigned():
		i := rv.Int()
		if i < 0 {
			return 0, false
		}

		return uint64(i), true
	default:
		return 0, false
	}
}

// AsBool reads a boolean value.
func AsBool(raw any) (bool, bool) {
	if Of(raw) != KindBool {
		return false, false
	}

	return reflect.ValueOf(raw).Bool(), true
}

// AsString reads a string value.
func AsString(raw any) (string, bool) {
	if Of(raw) != KindString {
		return "", false
	}

	return reflect.ValueOf(raw).String(), true
}

// Convert converts raw to the Go representation of kind `to`
// (see KindEnum.GoType). The boolean is false when raw is nil or cannot
// be represented.
func Convert(to KindEnum, raw any) (any, bool) {
	switch {
	case to.IsFloat():
		return AsFloat(raw)
	case to.IsUnsigned():
		return AsUint(raw)
	case to.IsInteger():
		return AsInt(raw)
	case to == KindBool:
		return AsBool(raw)
	case to == KindString:
		return AsString(raw)
	default:
		return nil, false
	}
}

// Zero returns the value a getter of kind k reports for an absent field.
func Zero(k KindEnum) any {
	switch {
	case k.IsFloat():
		return float64(0)
	case k.IsUnsigned():
		return uint64(0)
	case k.IsInteger():
		return int64(0)
	case k == KindBool:
		return false
	case k == KindString:
		return ""
	default:
		return nil
	}
}
