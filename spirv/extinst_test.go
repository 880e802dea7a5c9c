package spirv

import "testing"

func TestExtInst_GLSLUnary(t *testing.T) {
	m := NewModule(DefaultOptions())
	f32 := m.AddType(NewTypeFloat(32))
	set := m.GetExtInstImport("GLSL.std.450")

	voidType := m.AddType(NewTypeVoid())
	f := m.NewFunction(voidType, FunctionControlNone)
	block := f.AddBlock()

	xInstr, x, _ := block.Emplace(OpUndef)
	xInstr.SetResultType(f32)

	h, err := block.GLSLUnary(set, "Sqrt", f32, x)
	if err != nil {
		t.Fatalf("GLSLUnary: %v", err)
	}
	instr := m.instructionAt(h)
	if instr.Opcode() != OpExtInst {
		t.Fatalf("opcode: got %v, want OpExtInst", instr.Opcode())
	}
	if len(instr.operands) != 3 {
		t.Fatalf("OpExtInst operands: got %d, want 3 (set, instruction, x)", len(instr.operands))
	}

	if _, err := block.GLSLUnary(set, "NotARealInstruction", f32, x); err == nil {
		t.Fatalf("GLSLUnary with an unknown name should return an error")
	}
}

func TestExtInst_GLSLTernary(t *testing.T) {
	m := NewModule(DefaultOptions())
	f32 := m.AddType(NewTypeFloat(32))
	set := m.GetExtInstImport("GLSL.std.450")
	voidType := m.AddType(NewTypeVoid())
	f := m.NewFunction(voidType, FunctionControlNone)
	block := f.AddBlock()

	xInstr, x, _ := block.Emplace(OpUndef)
	xInstr.SetResultType(f32)

	h, err := block.GLSLTernary(set, "FClamp", f32, x, x, x)
	if err != nil {
		t.Fatalf("GLSLTernary: %v", err)
	}
	if len(m.instructionAt(h).operands) != 5 {
		t.Fatalf("OpExtInst operands: got %d, want 5 (set, instruction, x, x, x)", len(m.instructionAt(h).operands))
	}
}
