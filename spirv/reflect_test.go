package spirv

import "testing"

type lightUniform struct {
	Color     float32
	Intensity float32
}

func TestReflectType_Scalars(t *testing.T) {
	m := NewModule(DefaultOptions())

	boolType, err := ReflectType[bool](m)
	if err != nil {
		t.Fatalf("ReflectType[bool]: %v", err)
	}
	if spec, _ := m.GetTypeInfo(boolType); spec.Op != OpTypeBool {
		t.Fatalf("ReflectType[bool]: got opcode %v, want OpTypeBool", spec.Op)
	}

	i16Type, err := ReflectType[int16](m)
	if err != nil {
		t.Fatalf("ReflectType[int16]: %v", err)
	}
	spec, _ := m.GetTypeInfo(i16Type)
	if spec.Op != OpTypeInt || spec.Width != 16 || !spec.Signed {
		t.Fatalf("ReflectType[int16]: got %+v, want signed 16-bit int", spec)
	}

	f64Type, err := ReflectType[float64](m)
	if err != nil {
		t.Fatalf("ReflectType[float64]: %v", err)
	}
	spec, _ = m.GetTypeInfo(f64Type)
	if spec.Op != OpTypeFloat || spec.Width != 64 {
		t.Fatalf("ReflectType[float64]: got %+v, want 64-bit float", spec)
	}
}

func TestReflectType_Struct(t *testing.T) {
	m := NewModule(DefaultOptions())

	st, err := ReflectType[lightUniform](m)
	if err != nil {
		t.Fatalf("ReflectType[lightUniform]: %v", err)
	}
	spec, _ := m.GetTypeInfo(st)
	if spec.Op != OpTypeStruct || len(spec.Members) != 2 {
		t.Fatalf("ReflectType[lightUniform]: got %+v, want a 2-member struct", spec)
	}
}

func TestReflectVectorAndMatrix(t *testing.T) {
	m := NewModule(DefaultOptions())

	vec3, err := ReflectVector[float32](m, 3)
	if err != nil {
		t.Fatalf("ReflectVector[float32](3): %v", err)
	}
	spec, _ := m.GetTypeInfo(vec3)
	if spec.Op != OpTypeVector || spec.ComponentCount != 3 {
		t.Fatalf("ReflectVector: got %+v, want a 3-component vector", spec)
	}

	mat4x4, err := ReflectMatrix[float32](m, 4, 4)
	if err != nil {
		t.Fatalf("ReflectMatrix[float32](4,4): %v", err)
	}
	spec, _ = m.GetTypeInfo(mat4x4)
	if spec.Op != OpTypeMatrix || spec.ComponentCount != 4 {
		t.Fatalf("ReflectMatrix: got %+v, want 4 columns", spec)
	}
}
