package spirv

// OperandKind discriminates the tagged union an Operand carries, per
// spec §3: a reference to another Instruction (SSA use), a raw unresolved
// id, a reference to a BasicBlock (branch target), or a literal word.
type OperandKind uint8

const (
	OperandInstruction OperandKind = iota
	OperandRawID
	OperandBlock
	OperandLiteral
)

// Operand is a tagged value carried by an Instruction. Exactly one of the
// payload fields is meaningful, selected by kind.
type Operand struct {
	kind    OperandKind
	instr   InstructionHandle
	block   BlockHandle
	rawID   uint32
	literal uint32
}

// NewInstructionOperand wraps a reference to another instruction's result
// (an SSA use).
func NewInstructionOperand(h InstructionHandle) Operand {
	return Operand{kind: OperandInstruction, instr: h}
}

// NewBlockOperand wraps a reference to a basic block (a branch target).
func NewBlockOperand(h BlockHandle) Operand {
	return Operand{kind: OperandBlock, block: h}
}

// NewIDOperand wraps a raw, not-yet-resolved SPIR-V id. Used for forward
// references where no Instruction/BlockHandle exists yet.
func NewIDOperand(id uint32) Operand {
	return Operand{kind: OperandRawID, rawID: id}
}

// NewLiteralOperand wraps a single 32-bit literal word.
func NewLiteralOperand(word uint32) Operand {
	return Operand{kind: OperandLiteral, literal: word}
}

// Kind reports the operand's tag.
func (o Operand) Kind() OperandKind { return o.kind }

// Equal compares tag and payload.
func (o Operand) Equal(other Operand) bool {
	if o.kind != other.kind {
		return false
	}
	switch o.kind {
	case OperandInstruction:
		return o.instr == other.instr
	case OperandBlock:
		return o.block == other.block
	case OperandRawID:
		return o.rawID == other.rawID
	case OperandLiteral:
		return o.literal == other.literal
	default:
		return false
	}
}

// resolve returns the numeric SPIR-V id this operand contributes to the
// word stream. Instruction/block operands must already have been
// assigned an id by the emitter's id-assignment pre-pass (spec §4.6);
// resolve returns (0, false) if not, which the writer turns into
// ErrDanglingID.
func (o Operand) resolve(m *Module) (uint32, bool) {
	switch o.kind {
	case OperandInstruction:
		id := m.instructionAt(o.instr).resultID
		return id, id != 0
	case OperandBlock:
		id := m.blockAt(o.block).labelID
		return id, id != 0
	case OperandRawID:
		return o.rawID, o.rawID != 0
	case OperandLiteral:
		return o.literal, true
	default:
		return 0, false
	}
}
