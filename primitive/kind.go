package primitive

import (
	"math"
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies scalar values read from a foreign handle.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = map[KindEnum]string{
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindBool:    "bool",
	KindString:  "string",
}

// aliases accepted by ParseKind in addition to the canonical names.
var kindAliases = map[string]KindEnum{
	"float":   KindFloat64,
	"double":  KindFloat64,
	"single":  KindFloat32,
	"integer": KindInt64,
	"long":    KindInt64,
	"boolean": KindBool,
	"str":     KindString,
}

// ParseKind resolves a schema scalar type name such as "float" or "int32".
// It returns 0 for unknown names.
func ParseKind(name string) KindEnum {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := kindAliases[name]; ok {
		return k
	}

	for k, n := range kindNames {
		if n == name {
			return k
		}
	}

	return 0
}

// Name returns the canonical schema name of the kind ("float64", "string", ...).
func (k KindEnum) Name() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return ""
}

// GoType returns the Go type a proxy getter of this kind returns.
// All numbers widen to 64 bits.
func (k KindEnum) GoType() string {
	switch {
	case k.IsFloat():
		return "float64"
	case k.IsUnsigned():
		return "uint64"
	case k.IsInteger():
		return "int64"
	case k == KindBool:
		return "bool"
	case k == KindString:
		return "string"
	default:
		return "any"
	}
}

func (k KindEnum) IsValid() bool {
	return int(k) > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// FromReflectType classifies a Go type by its underlying kind, so named
// numeric types coming out of a bridge classify like their base type.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}

// Of classifies a raw value. It returns 0 for nil and non-scalar values.
func Of(v any) KindEnum {
	if v == nil {
		return 0
	}

	return FromReflectType(reflect.TypeOf(v))
}
