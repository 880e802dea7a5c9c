package spirv

// ResultTypeInferer is the IInferResultType collaborator from spec §4.1:
// given an opcode and its operand instructions, it returns the Type the
// result should carry, so convenience constructors for arithmetic and
// constructor instructions don't require callers to spell out a result
// type that's mechanically derivable from the operands.
type ResultTypeInferer interface {
	InferResultType(m *Module, op Op, operands []InstructionHandle) (TypeHandle, error)
}

// defaultInferer implements the common same-type-propagates-through
// cases: arithmetic, relational-to-bool, and bitwise ops where the result
// type equals (or is a boolean of the same shape as) the first operand's
// type. Anything it doesn't recognize is left to the caller to specify
// explicitly via Instruction.SetResultType.
type defaultInferer struct{}

// DefaultResultTypeInferer is the Module's inferer when Options.Inferer
// is nil.
var DefaultResultTypeInferer ResultTypeInferer = defaultInferer{}

func (defaultInferer) InferResultType(m *Module, op Op, operands []InstructionHandle) (TypeHandle, error) {
	if len(operands) == 0 {
		return 0, ErrUnimplementedOpcode
	}
	first := m.instructionAt(operands[0])
	switch op {
	case OpIAdd, OpISub, OpIMul, OpUDiv, OpSDiv, OpUMod, OpSRem, OpSMod,
		OpFAdd, OpFSub, OpFMul, OpFDiv, OpFRem, OpFMod,
		OpSNegate, OpFNegate, OpNot,
		OpShiftRightLogical, OpShiftRightArithmetic, OpShiftLeftLogical,
		OpBitwiseOr, OpBitwiseXor, OpBitwiseAnd:
		return first.resultType, nil

	case OpIEqual, OpINotEqual, OpUGreaterThan, OpSGreaterThan, OpUGreaterThanEqual,
		OpSGreaterThanEqual, OpULessThan, OpSLessThan, OpULessThanEqual, OpSLessThanEqual,
		OpFOrdEqual, OpFOrdNotEqual, OpFOrdLessThan, OpFOrdGreaterThan,
		OpFOrdLessThanEqual, OpFOrdGreaterThanEqual,
		OpLogicalEqual, OpLogicalNotEqual, OpLogicalOr, OpLogicalAnd, OpLogicalNot:
		operandType := m.typeAt(first.resultType)
		if operandType != nil && operandType.Op == OpTypeVector {
			return m.AddType(NewTypeVector(m.AddType(NewTypeBool()), operandType.ComponentCount)), nil
		}
		return m.AddType(NewTypeBool()), nil

	default:
		return 0, ErrUnimplementedOpcode
	}
}
