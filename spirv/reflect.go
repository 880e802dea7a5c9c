package spirv

import (
	"fmt"
	"reflect"
)

// ReflectType interns the SPIR-V type corresponding to the host Go type
// T, per spec §6's host-type mapping table: bool -> OpTypeBool, signed/
// unsigned N-bit integers -> OpTypeInt N sign, float32/float64 ->
// OpTypeFloat 32/64, struct -> OpTypeStruct (recursing over fields in
// declaration order), pointer -> OpTypePointer in StorageClassFunction,
// fixed-size array -> OpTypeArray with a matching OpConstant length.
//
// Vector and matrix types have no native Go analog, so they go through
// ReflectVector/ReflectMatrix instead, not through this function. Image
// and sampled-image types likewise have no host representation and stay
// fully explicit via NewTypeImage/NewTypeSampledImage (spec's Non-goal:
// compile-time type reflection is an external-collaborator concern, kept
// minimal here to just this mapping table).
func ReflectType[T any](m *Module) (TypeHandle, error) {
	var zero T
	return reflectGoType(m, reflect.TypeOf(zero))
}

func reflectGoType(m *Module, rt reflect.Type) (TypeHandle, error) {
	switch rt.Kind() {
	case reflect.Bool:
		return m.AddType(NewTypeBool()), nil
	case reflect.Int8:
		return m.AddType(NewTypeInt(8, true)), nil
	case reflect.Uint8:
		return m.AddType(NewTypeInt(8, false)), nil
	case reflect.Int16:
		return m.AddType(NewTypeInt(16, true)), nil
	case reflect.Uint16:
		return m.AddType(NewTypeInt(16, false)), nil
	case reflect.Int32, reflect.Int:
		return m.AddType(NewTypeInt(32, true)), nil
	case reflect.Uint32, reflect.Uint:
		return m.AddType(NewTypeInt(32, false)), nil
	case reflect.Int64:
		return m.AddType(NewTypeInt(64, true)), nil
	case reflect.Uint64:
		return m.AddType(NewTypeInt(64, false)), nil
	case reflect.Float32:
		return m.AddType(NewTypeFloat(32)), nil
	case reflect.Float64:
		return m.AddType(NewTypeFloat(64)), nil

	case reflect.Ptr:
		pointee, err := reflectGoType(m, rt.Elem())
		if err != nil {
			return 0, err
		}
		return m.AddType(NewTypePointer(StorageClassFunction, pointee)), nil

	case reflect.Array:
		elem, err := reflectGoType(m, rt.Elem())
		if err != nil {
			return 0, err
		}
		lengthType := m.AddType(NewTypeInt(32, false))
		length := m.AddConstant(NewConstantScalar(lengthType, uint32(rt.Len())))
		return m.AddType(NewTypeArray(elem, length)), nil

	case reflect.Struct:
		members := make([]TypeHandle, 0, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			field := rt.Field(i)
			member, err := reflectGoType(m, field.Type)
			if err != nil {
				return 0, err
			}
			members = append(members, member)
		}
		h := m.AddType(NewTypeStruct(members...))
		for i := 0; i < rt.NumField(); i++ {
			m.AddMemberName(h, uint32(i), rt.Field(i).Name)
		}
		return h, nil

	default:
		return 0, fmt.Errorf("spirv: reflecting kind %v: %w", rt.Kind(), ErrUnimplementedOpcode)
	}
}

// ReflectVector interns an OpTypeVector of count components of type T.
func ReflectVector[T any](m *Module, count uint32) (TypeHandle, error) {
	var zero T
	component, err := reflectGoType(m, reflect.TypeOf(zero))
	if err != nil {
		return 0, err
	}
	return m.AddType(NewTypeVector(component, count)), nil
}

// ReflectMatrix interns an OpTypeMatrix of cols columns, each a vector of
// rows components of type T.
func ReflectMatrix[T any](m *Module, cols, rows uint32) (TypeHandle, error) {
	column, err := ReflectVector[T](m, rows)
	if err != nil {
		return 0, err
	}
	return m.AddType(NewTypeMatrix(column, cols)), nil
}
