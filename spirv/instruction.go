package spirv

import "math"

// Instruction is one SPIR-V opcode plus its operand sequence and a lazily
// assigned result id, per spec §3/§4.1. Instructions live in the Module's
// arena; InstructionHandle is the stable, comparable reference to one.
//
// The first two operands, resultType and resultId, are modeled as
// dedicated fields rather than entries in operands — they're materialized
// during emission in the fixed order the SPIR-V grammar requires
// (resultType, then resultId, then the rest).
type Instruction struct {
	opcode     Op
	operands   []Operand
	resultType TypeHandle // 0 if this instruction has no result type
	resultID   uint32     // 0 = unassigned
}

// SetOpcode sets the instruction's opcode.
func (i *Instruction) SetOpcode(op Op) { i.opcode = op }

// Opcode returns the instruction's opcode.
func (i *Instruction) Opcode() Op { return i.opcode }

// AddOperandInstruction appends an operand referencing another
// instruction's result (an SSA use).
func (i *Instruction) AddOperandInstruction(h InstructionHandle) {
	i.operands = append(i.operands, NewInstructionOperand(h))
}

// AddOperandBlock appends an operand referencing a basic block (a branch
// target).
func (i *Instruction) AddOperandBlock(h BlockHandle) {
	i.operands = append(i.operands, NewBlockOperand(h))
}

// AddOperandID appends a raw, not-yet-resolved SPIR-V id operand.
func (i *Instruction) AddOperandID(id uint32) {
	i.operands = append(i.operands, NewIDOperand(id))
}

// AddOperandLiteral appends a single literal word operand.
func (i *Instruction) AddOperandLiteral(word uint32) {
	i.operands = append(i.operands, NewLiteralOperand(word))
}

// AddOperand appends an already-constructed Operand, for callers that
// built one via the New*Operand constructors directly.
func (i *Instruction) AddOperand(o Operand) {
	i.operands = append(i.operands, o)
}

// SetOperand replaces the operand at idx, used by controlflow.go to patch
// a conditional branch's false-target once an Else block is created.
func (i *Instruction) SetOperand(idx int, o Operand) {
	i.operands[idx] = o
}

// SetResultType records the Instruction whose result names this
// instruction's type (interned via Module.AddType by the caller).
func (i *Instruction) SetResultType(t TypeHandle) { i.resultType = t }

// Operands returns the instruction's operand sequence (read-only view).
func (i *Instruction) Operands() []Operand { return i.operands }

// IsTerminal reports whether this instruction ends a basic block.
func (i *Instruction) IsTerminal() bool { return i.opcode.isTerminal() }

// literalWord is the set of Go types AppendLiterals knows how to encode
// as one or more 32-bit SPIR-V literal words.
type literalWord interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 |
		int64 | uint64 | float32 | float64 | string
}

// AppendLiterals writes v as one or more consecutive 32-bit words per the
// SPIR-V literal encoding for its kind (spec §4.1): a single word for any
// scalar of 32 bits or fewer, two words low-word-first for 64-bit
// scalars, and UTF-8 little-endian-packed, NUL-terminated, word-padded
// bytes for strings.
func AppendLiterals[T literalWord](i *Instruction, v T) {
	switch val := any(v).(type) {
	case bool:
		if val {
			i.AddOperandLiteral(1)
		} else {
			i.AddOperandLiteral(0)
		}
	case int8:
		i.AddOperandLiteral(uint32(int32(val)))
	case uint8:
		i.AddOperandLiteral(uint32(val))
	case int16:
		i.AddOperandLiteral(uint32(int32(val)))
	case uint16:
		i.AddOperandLiteral(uint32(val))
	case int32:
		i.AddOperandLiteral(uint32(val))
	case uint32:
		i.AddOperandLiteral(val)
	case float32:
		i.AddOperandLiteral(math.Float32bits(val))
	case int64:
		appendU64(i, uint64(val))
	case uint64:
		appendU64(i, val)
	case float64:
		appendU64(i, math.Float64bits(val))
	case string:
		appendString(i, val)
	}
}

func appendU64(i *Instruction, v uint64) {
	i.AddOperandLiteral(uint32(v))       // low word first
	i.AddOperandLiteral(uint32(v >> 32)) // then high word
}

func appendString(i *Instruction, s string) {
	bytes := []byte(s)
	bytes = append(bytes, 0)
	for len(bytes)%4 != 0 {
		bytes = append(bytes, 0)
	}
	for o := 0; o < len(bytes); o += 4 {
		word := uint32(bytes[o]) | uint32(bytes[o+1])<<8 | uint32(bytes[o+2])<<16 | uint32(bytes[o+3])<<24
		i.AddOperandLiteral(word)
	}
}

// assignID allocates this instruction's result id from counter if it
// doesn't already have one, and returns it. Only opcodes that produce a
// result (per Op.hasResult) are assigned ids.
func (i *Instruction) assignID(counter *idCounter) uint32 {
	if !i.opcode.hasResult() {
		return 0
	}
	if i.resultID == 0 {
		i.resultID = counter.allocate()
	}
	return i.resultID
}

// wordCount returns 1 (opcode+length header) plus one word for the
// result type (if any), one for the result id (if any), plus the operand
// words, per spec §4.1.
func (i *Instruction) wordCount(m *Module) uint32 {
	count := uint32(1)
	if i.resultType != invalidHandle {
		count++
	}
	if i.opcode.hasResult() {
		count++
	}
	count += uint32(len(i.operands))
	return count
}

// write serializes the header word, then resultType, then resultId, then
// each operand word, in that strict order (spec §4.1/§6).
func (i *Instruction) write(w Writer, m *Module) error {
	header := (i.wordCount(m) << 16) | uint32(i.opcode)
	w.Put(header)

	if i.resultType != invalidHandle {
		typeInstr := m.instructionAt(i.resultType)
		if typeInstr.resultID == 0 {
			return ErrDanglingID
		}
		w.Put(typeInstr.resultID)
	}
	if i.opcode.hasResult() {
		if i.resultID == 0 {
			return ErrDanglingID
		}
		w.Put(i.resultID)
	}
	for _, op := range i.operands {
		word, ok := op.resolve(m)
		if !ok {
			return ErrDanglingID
		}
		w.Put(word)
	}
	return nil
}
