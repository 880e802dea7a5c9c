package spirv

import "testing"

func TestIfBuilder_ElseLazilyPatchesBranch(t *testing.T) {
	m := NewModule(DefaultOptions())
	voidType := m.AddType(NewTypeVoid())
	boolType := m.AddType(NewTypeBool())
	f := m.NewFunction(voidType, FunctionControlNone)

	cond := f.AddBlock()
	condInstr, condHandle, err := cond.Emplace(OpLogicalNot)
	if err != nil {
		t.Fatalf("Emplace: %v", err)
	}
	condInstr.SetResultType(boolType)

	ib := f.If(cond, condHandle, SelectionControlNone)

	then := ib.Then()
	if err := then.Return(); err != nil {
		t.Fatalf("then.Return: %v", err)
	}

	elseBlock := ib.Else()
	if err := elseBlock.Return(); err != nil {
		t.Fatalf("else.Return: %v", err)
	}

	if !cond.IsTerminated() {
		t.Fatalf("condition block should be terminated by OpBranchConditional")
	}
	term := cond.Terminator()
	if term.Opcode() != OpBranchConditional {
		t.Fatalf("condition block terminator: got %v, want OpBranchConditional", term.Opcode())
	}

	falseTarget := term.operands[2]
	if falseTarget.kind != OperandBlock || falseTarget.block != elseBlock.Handle() {
		t.Fatalf("false target should have been patched to the else block once Else was called")
	}
}

func TestIfBuilder_NoElseBranchesToMerge(t *testing.T) {
	m := NewModule(DefaultOptions())
	voidType := m.AddType(NewTypeVoid())
	boolType := m.AddType(NewTypeBool())
	f := m.NewFunction(voidType, FunctionControlNone)

	cond := f.AddBlock()
	condInstr, condHandle, _ := cond.Emplace(OpLogicalNot)
	condInstr.SetResultType(boolType)

	ib := f.If(cond, condHandle, SelectionControlNone)
	if err := ib.Then().Return(); err != nil {
		t.Fatalf("then.Return: %v", err)
	}
	merge := ib.Merge()
	if err := merge.Return(); err != nil {
		t.Fatalf("merge.Return: %v", err)
	}

	term := cond.Terminator()
	if term.operands[2].kind != OperandBlock || term.operands[2].block != merge.Handle() {
		t.Fatalf("false target should be the merge block when Else is never called")
	}
}

func TestIfBuilder_UnterminatedThenAutoBranchesToMerge(t *testing.T) {
	m := NewModule(DefaultOptions())
	voidType := m.AddType(NewTypeVoid())
	boolType := m.AddType(NewTypeBool())
	f := m.NewFunction(voidType, FunctionControlNone)

	cond := f.AddBlock()
	condInstr, condHandle, _ := cond.Emplace(OpLogicalNot)
	condInstr.SetResultType(boolType)

	ib := f.If(cond, condHandle, SelectionControlNone)
	then := ib.Then()
	elseBlock := ib.Else()
	// Caller never terminates Then or Else explicitly; Merge must seal both.
	merge := ib.Merge()
	if err := merge.Return(); err != nil {
		t.Fatalf("merge.Return: %v", err)
	}

	if !then.IsTerminated() || then.Terminator().Opcode() != OpBranch {
		t.Fatalf("Then should have been auto-terminated with OpBranch to merge")
	}
	if !elseBlock.IsTerminated() || elseBlock.Terminator().Opcode() != OpBranch {
		t.Fatalf("Else should also have been auto-terminated with OpBranch to merge")
	}

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoopBuilder_StructuredShape(t *testing.T) {
	m := NewModule(DefaultOptions())
	voidType := m.AddType(NewTypeVoid())
	f := m.NewFunction(voidType, FunctionControlNone)

	header := f.AddBlock()
	lb := f.Loop(header, LoopControlNone)

	if err := lb.Body().Branch(lb.Continue().Handle()); err != nil {
		t.Fatalf("body.Branch: %v", err)
	}
	if err := lb.Continue().Branch(lb.Header().Handle()); err != nil {
		t.Fatalf("continue.Branch: %v", err)
	}
	if err := lb.Merge().Return(); err != nil {
		t.Fatalf("merge.Return: %v", err)
	}

	if !header.IsTerminated() {
		t.Fatalf("loop header should be terminated by OpBranch after OpLoopMerge")
	}
	instrs := header.Instructions()
	if len(instrs) != 2 {
		t.Fatalf("loop header should hold exactly OpLoopMerge+OpBranch, got %d instructions", len(instrs))
	}
	if m.instructionAt(instrs[0]).Opcode() != OpLoopMerge {
		t.Fatalf("second-to-last instruction should be OpLoopMerge, got %v", m.instructionAt(instrs[0]).Opcode())
	}
}

func TestLoopBuilder_UnterminatedBodyAndContinueAutoBranch(t *testing.T) {
	m := NewModule(DefaultOptions())
	voidType := m.AddType(NewTypeVoid())
	f := m.NewFunction(voidType, FunctionControlNone)

	header := f.AddBlock()
	lb := f.Loop(header, LoopControlNone)

	body := lb.Body()
	cont := lb.Continue()
	// Caller never terminates Body or Continue explicitly; Merge must seal both.
	merge := lb.Merge()
	if err := merge.Return(); err != nil {
		t.Fatalf("merge.Return: %v", err)
	}

	if !body.IsTerminated() || body.Terminator().Opcode() != OpBranch {
		t.Fatalf("Body should have been auto-terminated with OpBranch to Continue")
	}
	if body.Terminator().operands[0].block != cont.Handle() {
		t.Fatalf("Body's implied branch should target Continue")
	}
	if !cont.IsTerminated() || cont.Terminator().Opcode() != OpBranch {
		t.Fatalf("Continue should have been auto-terminated with OpBranch back to Header")
	}
	if cont.Terminator().operands[0].block != lb.Header().Handle() {
		t.Fatalf("Continue's implied branch should target Header")
	}

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSwitchBuilder_UnterminatedCasesAutoBranchToMerge(t *testing.T) {
	m := NewModule(DefaultOptions())
	voidType := m.AddType(NewTypeVoid())
	intType := m.AddType(NewTypeInt(32, true))
	f := m.NewFunction(voidType, FunctionControlNone)

	selBlock := f.AddBlock()
	selInstr, selHandle, _ := selBlock.Emplace(OpUndef)
	selInstr.SetResultType(intType)

	sb := f.Switch(selBlock, selHandle, SelectionControlNone)
	case0 := sb.Case(0)
	def := sb.Default()
	merge := sb.Merge()
	if err := merge.Return(); err != nil {
		t.Fatalf("merge.Return: %v", err)
	}

	// Caller never terminates case0/default explicitly; Build must seal them.
	sb.Build()

	if !case0.IsTerminated() || case0.Terminator().Opcode() != OpBranch {
		t.Fatalf("case0 should have been auto-terminated with OpBranch to merge")
	}
	if !def.IsTerminated() || def.Terminator().Opcode() != OpBranch {
		t.Fatalf("default should have been auto-terminated with OpBranch to merge")
	}

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSwitchBuilder_Build(t *testing.T) {
	m := NewModule(DefaultOptions())
	voidType := m.AddType(NewTypeVoid())
	intType := m.AddType(NewTypeInt(32, true))
	f := m.NewFunction(voidType, FunctionControlNone)

	selBlock := f.AddBlock()
	selInstr, selHandle, _ := selBlock.Emplace(OpUndef)
	selInstr.SetResultType(intType)

	sb := f.Switch(selBlock, selHandle, SelectionControlNone)
	case0 := sb.Case(0)
	case1 := sb.Case(1)
	def := sb.Default()
	merge := sb.Merge()

	for _, b := range []BasicBlock{case0, case1, def} {
		if err := b.Branch(merge.Handle()); err != nil {
			t.Fatalf("Branch: %v", err)
		}
	}
	if err := merge.Return(); err != nil {
		t.Fatalf("merge.Return: %v", err)
	}

	sb.Build()

	if !selBlock.IsTerminated() {
		t.Fatalf("selector block should be terminated by OpSwitch after Build")
	}
	if selBlock.Terminator().Opcode() != OpSwitch {
		t.Fatalf("terminator: got %v, want OpSwitch", selBlock.Terminator().Opcode())
	}
}
