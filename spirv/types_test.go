package spirv

import "testing"

func TestTypeSpec_EqualComparesWidthAndSignedness(t *testing.T) {
	a := NewTypeInt(32, true)
	b := NewTypeInt(32, true)
	if !a.Equal(b) {
		t.Fatalf("identical int specs should be Equal")
	}

	c := NewTypeInt(32, false)
	if a.Equal(c) {
		t.Fatalf("signed and unsigned int specs must not be Equal")
	}
}

func TestTypeSpec_StructMemberOrderMatters(t *testing.T) {
	m := NewModule(DefaultOptions())
	f32 := m.AddType(NewTypeFloat(32))
	i32 := m.AddType(NewTypeInt(32, true))

	a := NewTypeStruct(f32, i32)
	b := NewTypeStruct(i32, f32)
	if a.Equal(b) {
		t.Fatalf("struct specs with members in a different order must not be Equal")
	}
}

func TestConstantSpec_CompositeDedup(t *testing.T) {
	m := NewModule(DefaultOptions())
	f32 := m.AddType(NewTypeFloat(32))
	vec4 := m.AddType(NewTypeVector(f32, 4))

	one := m.AddConstant(NewConstantScalar(f32, 0x3f800000))
	c1 := m.AddConstant(NewConstantComposite(vec4, one, one, one, one))
	c2 := m.AddConstant(NewConstantComposite(vec4, one, one, one, one))
	if c1 != c2 {
		t.Fatalf("identical composite constants should intern to the same handle, got %d and %d", c1, c2)
	}

	zero := m.AddConstant(NewConstantScalar(f32, 0))
	c3 := m.AddConstant(NewConstantComposite(vec4, zero, one, one, one))
	if c1 == c3 {
		t.Fatalf("composites with different components must not alias")
	}
}

func TestModule_CompositeTypeNavigatesMembers(t *testing.T) {
	m := NewModule(DefaultOptions())
	f32 := m.AddType(NewTypeFloat(32))
	i32 := m.AddType(NewTypeInt(32, true))
	st := m.AddType(NewTypeStruct(f32, i32))

	member0, err := m.CompositeType(st, 0)
	if err != nil {
		t.Fatalf("CompositeType(0): %v", err)
	}
	if member0 != f32 {
		t.Fatalf("member 0: got %d, want the float type %d", member0, f32)
	}

	member1, err := m.CompositeType(st, 1)
	if err != nil {
		t.Fatalf("CompositeType(1): %v", err)
	}
	if member1 != i32 {
		t.Fatalf("member 1: got %d, want the int type %d", member1, i32)
	}

	vec4 := m.AddType(NewTypeVector(f32, 4))
	elem, err := m.CompositeType(vec4, 0)
	if err != nil {
		t.Fatalf("CompositeType(vector): %v", err)
	}
	if elem != f32 {
		t.Fatalf("vector component type: got %d, want %d", elem, f32)
	}
}

func TestModule_GetTypeInfoRoundTrips(t *testing.T) {
	m := NewModule(DefaultOptions())
	spec := NewTypeInt(16, false)
	h := m.AddType(spec)

	got, ok := m.GetTypeInfo(h)
	if !ok {
		t.Fatalf("GetTypeInfo: handle not found")
	}
	if !got.Equal(spec) {
		t.Fatalf("GetTypeInfo: got %+v, want %+v", got, spec)
	}
}
