package spirv

// This file holds the convenience constructors spec §4.1 calls for:
// each sets an opcode and pre-populates operands (and, where derivable,
// a result type) so callers building a function body don't spell out
// SPIR-V's operand order by hand for every instruction.

// Load emits OpLoad of pointer, whose pointee type must be resultType.
func (b BasicBlock) Load(resultType TypeHandle, pointer InstructionHandle) (InstructionHandle, error) {
	instr, h, err := b.Emplace(OpLoad)
	if err != nil {
		return 0, err
	}
	instr.SetResultType(resultType)
	instr.AddOperandInstruction(pointer)
	return h, nil
}

// Store emits OpStore of value into pointer. OpStore has no result.
func (b BasicBlock) Store(pointer, value InstructionHandle) error {
	instr, _, err := b.Emplace(OpStore)
	if err != nil {
		return err
	}
	instr.AddOperandInstruction(pointer)
	instr.AddOperandInstruction(value)
	return nil
}

// AccessChain emits OpAccessChain into base, through the given index
// instructions, yielding a pointer of resultType.
func (b BasicBlock) AccessChain(resultType TypeHandle, base InstructionHandle, indices ...InstructionHandle) (InstructionHandle, error) {
	instr, h, err := b.Emplace(OpAccessChain)
	if err != nil {
		return 0, err
	}
	instr.SetResultType(resultType)
	instr.AddOperandInstruction(base)
	for _, idx := range indices {
		instr.AddOperandInstruction(idx)
	}
	return h, nil
}

// PhiEdge is one (value, predecessor-block) pair for Phi.
type PhiEdge struct {
	Value InstructionHandle
	Block BlockHandle
}

// Phi emits OpPhi selecting among edges depending on which predecessor
// block control arrived from.
func (b BasicBlock) Phi(resultType TypeHandle, edges ...PhiEdge) (InstructionHandle, error) {
	instr, h, err := b.Emplace(OpPhi)
	if err != nil {
		return 0, err
	}
	instr.SetResultType(resultType)
	for _, e := range edges {
		instr.AddOperandInstruction(e.Value)
		instr.AddOperandBlock(e.Block)
	}
	return h, nil
}

// FunctionCall emits OpFunctionCall to callee with the given arguments.
func (b BasicBlock) FunctionCall(resultType TypeHandle, callee InstructionHandle, args ...InstructionHandle) (InstructionHandle, error) {
	instr, h, err := b.Emplace(OpFunctionCall)
	if err != nil {
		return 0, err
	}
	instr.SetResultType(resultType)
	instr.AddOperandInstruction(callee)
	for _, a := range args {
		instr.AddOperandInstruction(a)
	}
	return h, nil
}

// ImageSampleExplicitLod emits OpImageSampleExplicitLod sampling
// sampledImage at coordinate, with an explicit level-of-detail operand
// (the Lod image operand, word 0x2, per the SPIR-V image operand mask).
func (b BasicBlock) ImageSampleExplicitLod(resultType TypeHandle, sampledImage, coordinate, lod InstructionHandle) (InstructionHandle, error) {
	const imageOperandLod = 0x2
	instr, h, err := b.Emplace(OpImageSampleExplicitLod)
	if err != nil {
		return 0, err
	}
	instr.SetResultType(resultType)
	instr.AddOperandInstruction(sampledImage)
	instr.AddOperandInstruction(coordinate)
	instr.AddOperandLiteral(imageOperandLod)
	instr.AddOperandInstruction(lod)
	return h, nil
}

// Binary emits a binary arithmetic/relational/bitwise instruction,
// inferring its result type from lhs via the Module's ResultTypeInferer
// when resultType is the zero handle.
func (b BasicBlock) Binary(op Op, resultType TypeHandle, lhs, rhs InstructionHandle) (InstructionHandle, error) {
	if resultType == invalidHandle {
		inferred, err := b.m.options.Inferer.InferResultType(b.m, op, []InstructionHandle{lhs, rhs})
		if err != nil {
			return 0, err
		}
		resultType = inferred
	}
	instr, h, err := b.Emplace(op)
	if err != nil {
		return 0, err
	}
	instr.SetResultType(resultType)
	instr.AddOperandInstruction(lhs)
	instr.AddOperandInstruction(rhs)
	return h, nil
}

// Unary emits a unary arithmetic/bitwise instruction, inferring its
// result type from x via the Module's ResultTypeInferer when resultType
// is the zero handle.
func (b BasicBlock) Unary(op Op, resultType TypeHandle, x InstructionHandle) (InstructionHandle, error) {
	if resultType == invalidHandle {
		inferred, err := b.m.options.Inferer.InferResultType(b.m, op, []InstructionHandle{x})
		if err != nil {
			return 0, err
		}
		resultType = inferred
	}
	instr, h, err := b.Emplace(op)
	if err != nil {
		return 0, err
	}
	instr.SetResultType(resultType)
	instr.AddOperandInstruction(x)
	return h, nil
}

// Branch emits an unconditional OpBranch to target, terminating the
// block.
func (b BasicBlock) Branch(target BlockHandle) error {
	instr, _, err := b.Emplace(OpBranch)
	if err != nil {
		return err
	}
	instr.AddOperandBlock(target)
	return nil
}

// Return emits OpReturn, terminating the block.
func (b BasicBlock) Return() error {
	_, _, err := b.Emplace(OpReturn)
	return err
}

// ReturnValue emits OpReturnValue, terminating the block.
func (b BasicBlock) ReturnValue(value InstructionHandle) error {
	instr, _, err := b.Emplace(OpReturnValue)
	if err != nil {
		return err
	}
	instr.AddOperandInstruction(value)
	return nil
}
