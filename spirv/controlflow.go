package spirv

// This file builds structured control flow per spec §4.5, grounded in
// the teacher's emitIf/emitLoop lowering: OpSelectionMerge/OpLoopMerge is
// always the second-to-last instruction in its block, immediately
// followed by the terminal branch.
//
// Per spec §4.5's documented contract ("if it leaves thenBB unterminated,
// append OpBranch mergeBB"), a block the caller never explicitly
// terminates is auto-healed with the implied fallback branch rather than
// left to fail Validate/Write with ErrUnterminatedBlock. Each builder
// seals its own blocks once the caller asks for the block downstream of
// them (Merge, for If/Loop; Build, for Switch), by which point the
// caller has had its chance to populate and terminate them explicitly.

// sealFallthrough appends an unconditional OpBranch to target if b isn't
// already terminated, leaving an explicitly-terminated block untouched.
func sealFallthrough(b BasicBlock, target BlockHandle) {
	if b.IsTerminated() {
		return
	}
	_ = b.Branch(target) // IsTerminated just returned false, so this cannot fail
}

// IfBuilder assembles an if/else over a condition block, allocating a
// then-block and a shared merge block up front, and an else-block lazily
// only if Else is called.
type IfBuilder struct {
	m          *Module
	f          *Function
	branch     *Instruction
	thenBlock  BlockHandle
	elseBlock  BlockHandle
	mergeBlock BlockHandle
}

// If starts an if/else: cond must be a bool-typed instruction already
// emitted in condBlock. Returns a builder whose Then/Else/Merge blocks
// the caller populates and terminates.
func (f *Function) If(condBlock BasicBlock, cond InstructionHandle, control SelectionControl) *IfBuilder {
	merge := f.AddBlock()
	then := f.AddBlock()

	mergeInstr, _, _ := condBlock.Emplace(OpSelectionMerge)
	mergeInstr.AddOperandBlock(merge.h)
	mergeInstr.AddOperandLiteral(uint32(control))

	branch, _, _ := condBlock.Emplace(OpBranchConditional)
	branch.AddOperandInstruction(cond)
	branch.AddOperandBlock(then.h)
	branch.AddOperandBlock(merge.h) // no Else block yet: false falls straight to merge

	condBlock.SetMerge(merge.h, 0)

	return &IfBuilder{m: f.m, f: f, branch: branch, thenBlock: then.h, elseBlock: merge.h, mergeBlock: merge.h}
}

// Then returns the block taken when the condition is true.
func (ib *IfBuilder) Then() BasicBlock { return BasicBlock{m: ib.m, h: ib.thenBlock} }

// Else returns the block taken when the condition is false, allocating
// it (and patching the conditional branch's false target) on first call.
func (ib *IfBuilder) Else() BasicBlock {
	if ib.elseBlock == ib.mergeBlock {
		elseB := ib.f.AddBlock()
		ib.elseBlock = elseB.h
		ib.branch.SetOperand(2, NewBlockOperand(elseB.h))
	}
	return BasicBlock{m: ib.m, h: ib.elseBlock}
}

// Merge returns the block control rejoins at after Then/Else, first
// sealing any of Then/Else the caller left unterminated with an implied
// OpBranch to the merge block (spec §4.5).
func (ib *IfBuilder) Merge() BasicBlock {
	sealFallthrough(ib.Then(), ib.mergeBlock)
	if ib.elseBlock != ib.mergeBlock {
		sealFallthrough(BasicBlock{m: ib.m, h: ib.elseBlock}, ib.mergeBlock)
	}
	return BasicBlock{m: ib.m, h: ib.mergeBlock}
}

// LoopBuilder assembles a structured loop: a header block carrying
// OpLoopMerge, a body block, a continue-target block, and a merge block
// reached by breaking out.
type LoopBuilder struct {
	m             *Module
	header        BlockHandle
	body          BlockHandle
	continueBlock BlockHandle
	mergeBlock    BlockHandle
}

// Loop starts a structured loop whose header is header (already
// unterminated). Emits OpLoopMerge followed by an unconditional branch
// into the body, per spec §4.5.
func (f *Function) Loop(header BasicBlock, control LoopControl) *LoopBuilder {
	merge := f.AddBlock()
	cont := f.AddBlock()
	body := f.AddBlock()

	mergeInstr, _, _ := header.Emplace(OpLoopMerge)
	mergeInstr.AddOperandBlock(merge.h)
	mergeInstr.AddOperandBlock(cont.h)
	mergeInstr.AddOperandLiteral(uint32(control))

	branch, _, _ := header.Emplace(OpBranch)
	branch.AddOperandBlock(body.h)

	header.SetMerge(merge.h, cont.h)

	return &LoopBuilder{m: f.m, header: header.h, body: body.h, continueBlock: cont.h, mergeBlock: merge.h}
}

// Body returns the loop body block.
func (lb *LoopBuilder) Body() BasicBlock { return BasicBlock{m: lb.m, h: lb.body} }

// Continue returns the block a `continue` (or the body's fallthrough)
// should branch to before looping back to the header.
func (lb *LoopBuilder) Continue() BasicBlock { return BasicBlock{m: lb.m, h: lb.continueBlock} }

// Merge returns the block a `break` (or loop exit) should branch to,
// first sealing the body (falls through to Continue) and the continue
// block (falls through back to Header) if the caller left either
// unterminated (spec §4.5), matching the teacher's emitLoop wiring.
func (lb *LoopBuilder) Merge() BasicBlock {
	sealFallthrough(lb.Body(), lb.continueBlock)
	sealFallthrough(lb.Continue(), lb.header)
	return BasicBlock{m: lb.m, h: lb.mergeBlock}
}

// Header returns the loop's header block.
func (lb *LoopBuilder) Header() BasicBlock { return BasicBlock{m: lb.m, h: lb.header} }

// SwitchBuilder assembles an OpSwitch: unlike If/Loop, OpSwitch's
// operand list (every case literal/target pair) must be known before the
// header instruction can be emitted, so cases accumulate in Build.
type SwitchBuilder struct {
	m            *Module
	f            *Function
	selectorBlk  BasicBlock
	selector     InstructionHandle
	control      SelectionControl
	mergeBlock   BlockHandle
	defaultBlock BlockHandle
	cases        []switchCase
	built        bool
}

type switchCase struct {
	literal uint32
	target  BlockHandle
}

// Switch starts a multi-way branch over selector, an integer-typed
// instruction already emitted in selectorBlock.
func (f *Function) Switch(selectorBlock BasicBlock, selector InstructionHandle, control SelectionControl) *SwitchBuilder {
	merge := f.AddBlock()
	def := f.AddBlock()
	return &SwitchBuilder{
		m: f.m, f: f, selectorBlk: selectorBlock, selector: selector, control: control,
		mergeBlock: merge.h, defaultBlock: def.h,
	}
}

// Case allocates a new block branched to when selector equals literal.
func (sb *SwitchBuilder) Case(literal uint32) BasicBlock {
	b := sb.f.AddBlock()
	sb.cases = append(sb.cases, switchCase{literal: literal, target: b.h})
	return b
}

// Default returns the block branched to when selector matches no case.
func (sb *SwitchBuilder) Default() BasicBlock { return BasicBlock{m: sb.m, h: sb.defaultBlock} }

// Merge returns the block every case/default rejoins at.
func (sb *SwitchBuilder) Merge() BasicBlock { return BasicBlock{m: sb.m, h: sb.mergeBlock} }

// Build emits the selector block's OpSelectionMerge followed by
// OpSwitch, once every Case has been declared, then seals every case
// target and the default block the caller left unterminated with an
// implied OpBranch to the merge block (spec §4.5). Must be called after
// all cases are known and before the module is written; calls after the
// first do nothing.
func (sb *SwitchBuilder) Build() {
	if sb.built {
		return
	}
	sb.built = true

	mergeInstr, _, _ := sb.selectorBlk.Emplace(OpSelectionMerge)
	mergeInstr.AddOperandBlock(sb.mergeBlock)
	mergeInstr.AddOperandLiteral(uint32(sb.control))

	sw, _, _ := sb.selectorBlk.Emplace(OpSwitch)
	sw.AddOperandInstruction(sb.selector)
	sw.AddOperandBlock(sb.defaultBlock)
	for _, c := range sb.cases {
		sw.AddOperandLiteral(c.literal)
		sw.AddOperandBlock(c.target)
	}

	sb.selectorBlk.SetMerge(sb.mergeBlock, 0)

	for _, c := range sb.cases {
		sealFallthrough(BasicBlock{m: sb.m, h: c.target}, sb.mergeBlock)
	}
	sealFallthrough(sb.Default(), sb.mergeBlock)
}
