package spirv

import (
	"encoding/binary"
	"testing"
)

func TestModule_MinimalModule(t *testing.T) {
	m := NewModule(DefaultOptions())
	m.AddCapability(CapabilityShader)
	m.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	w := NewSliceWriter(nil)
	if err := m.Write(w); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if len(w.Words) < 5 {
		t.Fatalf("module too small: got %d words, want at least 5", len(w.Words))
	}
	if w.Words[0] != MagicNumber {
		t.Errorf("magic number: got 0x%08X, want 0x%08X", w.Words[0], MagicNumber)
	}
	wantVersion := uint32(1<<16 | 3<<8)
	if w.Words[1] != wantVersion {
		t.Errorf("version: got 0x%08X, want 0x%08X", w.Words[1], wantVersion)
	}
	if w.Words[4] != 0 {
		t.Errorf("schema must be 0, got %d", w.Words[4])
	}

	t.Logf("module: %d words, bound %d", len(w.Words), w.Words[3])
}

func TestModule_TypeDeduplication(t *testing.T) {
	m := NewModule(DefaultOptions())

	f1 := m.AddType(NewTypeFloat(32))
	f2 := m.AddType(NewTypeFloat(32))
	if f1 != f2 {
		t.Fatalf("two OpTypeFloat(32) specs should intern to the same handle, got %d and %d", f1, f2)
	}

	i32 := m.AddType(NewTypeInt(32, true))
	u32 := m.AddType(NewTypeInt(32, false))
	if i32 == u32 {
		t.Fatalf("signed and unsigned 32-bit ints must not alias, both got %d", i32)
	}

	vecA := m.AddType(NewTypeVector(f1, 4))
	vecB := m.AddType(NewTypeVector(f2, 4))
	if vecA != vecB {
		t.Fatalf("structurally identical vector types should intern, got %d and %d", vecA, vecB)
	}
}

func TestModule_ConstantDeduplicationByType(t *testing.T) {
	m := NewModule(DefaultOptions())

	i32 := m.AddType(NewTypeInt(32, true))
	u32 := m.AddType(NewTypeInt(32, false))

	zeroI := m.AddConstant(NewConstantScalar(i32, 0))
	zeroI2 := m.AddConstant(NewConstantScalar(i32, 0))
	zeroU := m.AddConstant(NewConstantScalar(u32, 0))

	if zeroI != zeroI2 {
		t.Fatalf("same-type, same-value constants should intern, got %d and %d", zeroI, zeroI2)
	}
	if zeroI == zeroU {
		t.Fatalf("a 0 of type int and a 0 of type uint must not alias, both got %d", zeroI)
	}
}

func TestModule_EntryPointInterfaceBeforeAndAfter1_4(t *testing.T) {
	buildModule := func(version Version) *Module {
		m := NewModule(Options{Version: version})
		voidType := m.AddType(NewTypeVoid())
		floatType := m.AddType(NewTypeFloat(32))
		ptrOut := m.AddType(NewTypePointer(StorageClassOutput, floatType))
		ptrPrivate := m.AddType(NewTypePointer(StorageClassPrivate, floatType))

		outVar := m.Variable(ptrOut, StorageClassOutput, 0)
		privateVar := m.Variable(ptrPrivate, StorageClassPrivate, 0)

		ep := m.NewEntryPoint(ExecutionModelFragment, "main", voidType, FunctionControlNone)
		entry := ep.AddBlock()

		if _, err := entry.Load(floatType, outVar); err != nil {
			t.Fatalf("Load: %v", err)
		}
		if err := entry.Store(privateVar, outVar); err != nil {
			t.Fatalf("Store: %v", err)
		}
		if err := entry.Return(); err != nil {
			t.Fatalf("Return: %v", err)
		}

		if err := ep.finalizeInterface(m); err != nil {
			t.Fatalf("finalizeInterface: %v", err)
		}
		return m
	}

	m13 := buildModule(Version1_3)
	ep13 := m13.entryPoints[0]
	if len(ep13.interfaceVars) != 1 {
		t.Fatalf("SPIR-V 1.3: want 1 interface var (Output only), got %d", len(ep13.interfaceVars))
	}

	m14 := buildModule(Version1_4)
	ep14 := m14.entryPoints[0]
	if len(ep14.interfaceVars) != 2 {
		t.Fatalf("SPIR-V 1.4: want 2 interface vars (Output + Private), got %d", len(ep14.interfaceVars))
	}
}

func TestModule_EntryPointInterfaceTransitiveThroughFunctionCall(t *testing.T) {
	m := NewModule(Options{Version: Version1_3})
	voidType := m.AddType(NewTypeVoid())
	floatType := m.AddType(NewTypeFloat(32))
	ptrOut := m.AddType(NewTypePointer(StorageClassOutput, floatType))

	outVar := m.Variable(ptrOut, StorageClassOutput, 0)

	helper := m.NewFunction(voidType, FunctionControlNone)
	helperEntry := helper.AddBlock()
	zero := m.AddConstant(NewConstantScalar(floatType, 0))
	if err := helperEntry.Store(outVar, zero); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := helperEntry.Return(); err != nil {
		t.Fatalf("Return: %v", err)
	}

	ep := m.NewEntryPoint(ExecutionModelFragment, "main", voidType, FunctionControlNone)
	entry := ep.AddBlock()
	if _, err := entry.FunctionCall(voidType, helper.Handle()); err != nil {
		t.Fatalf("FunctionCall: %v", err)
	}
	if err := entry.Return(); err != nil {
		t.Fatalf("Return: %v", err)
	}

	if err := ep.finalizeInterface(m); err != nil {
		t.Fatalf("finalizeInterface: %v", err)
	}
	if len(ep.interfaceVars) != 1 || ep.interfaceVars[0] != outVar {
		t.Fatalf("expected the callee's Output variable to surface transitively through OpFunctionCall, got %v", ep.interfaceVars)
	}
}

func TestModule_ValidateRejectsUnterminatedBlock(t *testing.T) {
	m := NewModule(DefaultOptions())
	voidType := m.AddType(NewTypeVoid())
	f := m.NewFunction(voidType, FunctionControlNone)
	f.AddBlock()

	if err := m.Validate(); err != ErrUnterminatedBlock {
		t.Fatalf("Validate: got %v, want ErrUnterminatedBlock", err)
	}
}

func TestModule_WriteRejectsPoisonedModule(t *testing.T) {
	m := NewModule(DefaultOptions())
	m.logf(LogLevelFatal, "simulated unrecoverable condition")

	if !m.Poisoned() {
		t.Fatal("expected module to be poisoned after a fatal log")
	}

	w := NewSliceWriter(nil)
	if err := m.Write(w); err != ErrModulePoisoned {
		t.Fatalf("Write: got %v, want ErrModulePoisoned", err)
	}
}

func TestAppendLiterals_Encoding(t *testing.T) {
	instr := &Instruction{}
	AppendLiterals(instr, uint32(42))
	if len(instr.operands) != 1 {
		t.Fatalf("uint32 literal: want 1 word, got %d", len(instr.operands))
	}

	instr64 := &Instruction{}
	AppendLiterals(instr64, uint64(0x1122334455667788))
	if len(instr64.operands) != 2 {
		t.Fatalf("uint64 literal: want 2 words, got %d", len(instr64.operands))
	}
	low, _ := instr64.operands[0].resolve(nil)
	high, _ := instr64.operands[1].resolve(nil)
	if low != 0x55667788 || high != 0x11223344 {
		t.Fatalf("uint64 literal: got low=0x%08X high=0x%08X, want low-word-first", low, high)
	}

	instrStr := &Instruction{}
	AppendLiterals(instrStr, "ok")
	if len(instrStr.operands) != 1 {
		t.Fatalf(`"ok" (2 bytes + NUL, padded) should take exactly 1 word, got %d`, len(instrStr.operands))
	}
}

func wordsFromSliceWriter(t *testing.T, m *Module) []uint32 {
	t.Helper()
	w := NewSliceWriter(nil)
	if err := m.Write(w); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return w.Words
}

func TestModule_FragmentShaderEndToEnd(t *testing.T) {
	m := NewModule(DefaultOptions())
	m.AddCapability(CapabilityShader)
	m.SetMemoryModel(AddressingModelLogical, MemoryModelGLSL450)

	voidType := m.AddType(NewTypeVoid())
	floatType := m.AddType(NewTypeFloat(32))
	vec4Type := m.AddType(NewTypeVector(floatType, 4))
	ptrOut := m.AddType(NewTypePointer(StorageClassOutput, vec4Type))

	one := m.AddConstant(NewConstantScalar(floatType, binary.LittleEndian.Uint32([]byte{0, 0, 0x80, 0x3f})))
	color := m.AddConstant(NewConstantComposite(vec4Type, one, one, one, one))

	outColor := m.Variable(ptrOut, StorageClassOutput, 0)
	m.AddName(outColor, "outColor")

	ep := m.NewEntryPoint(ExecutionModelFragment, "main", voidType, FunctionControlNone)
	ep.SetExecutionMode(ExecutionModeOriginUpperLeft)
	entry := ep.AddBlock()
	if err := entry.Store(outColor, color); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := entry.Return(); err != nil {
		t.Fatalf("Return: %v", err)
	}

	words := wordsFromSliceWriter(t, m)
	if words[0] != MagicNumber {
		t.Fatalf("magic number missing from output")
	}
	if words[3] == 0 {
		t.Fatalf("bound should be nonzero")
	}
}
