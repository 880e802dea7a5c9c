package spirv

// blockNode is the arena-resident data for one BasicBlock: an ordered
// list of instruction handles terminated by a branch/return/kill/
// unreachable instruction (spec §4.4), plus the structured-control-flow
// merge/continue targets set by If/Loop/Switch (spec §4.5).
type blockNode struct {
	instrs   []InstructionHandle
	labelID  uint32 // assigned lazily, same scheme as Instruction.resultID
	merge    BlockHandle
	continueT BlockHandle
}

// BasicBlock is the handle-plus-module view callers use to build a
// block's instruction list, mirroring the original's Instruction-list
// API but backed by the Module's arena instead of owned memory.
type BasicBlock struct {
	m *Module
	h BlockHandle
}

func (b BasicBlock) Handle() BlockHandle { return b.h }

func (b BasicBlock) node() *blockNode { return b.m.blockAt(b.h) }

// IsTerminated reports whether the block already ends in a
// branch/return/kill/unreachable instruction.
func (b BasicBlock) IsTerminated() bool {
	n := b.node()
	if len(n.instrs) == 0 {
		return false
	}
	last := b.m.instructionAt(n.instrs[len(n.instrs)-1])
	return last.IsTerminal()
}

// Terminator returns the block's terminating instruction, or nil if the
// block isn't terminated yet.
func (b BasicBlock) Terminator() *Instruction {
	n := b.node()
	if len(n.instrs) == 0 {
		return nil
	}
	last := b.m.instructionAt(n.instrs[len(n.instrs)-1])
	if !last.IsTerminal() {
		return nil
	}
	return last
}

// Emplace appends a new, empty instruction with the given opcode to the
// block and returns it for the caller to populate via AddOperand*. It is
// an error (ErrBlockAlreadyTerminated, logged and returned by the
// Module's error-reporting path) to append after the block is already
// terminated.
func (b BasicBlock) Emplace(op Op) (*Instruction, InstructionHandle, error) {
	if b.IsTerminated() {
		b.m.logf(LogLevelError, "attempted to append %v after block %d was terminated", op, b.h)
		return nil, 0, ErrBlockAlreadyTerminated
	}
	h := b.m.newInstruction(op)
	n := b.node()
	n.instrs = append(n.instrs, h)
	return b.m.instructionAt(h), h, nil
}

// SetMerge records the selection/loop merge block and (for loops) the
// continue target, set by the OpSelectionMerge/OpLoopMerge builders in
// controlflow.go.
func (b BasicBlock) SetMerge(merge, continueTarget BlockHandle) {
	n := b.node()
	n.merge = merge
	n.continueT = continueTarget
}

// Instructions returns the block's instruction handles, in order.
func (b BasicBlock) Instructions() []InstructionHandle {
	return b.node().instrs
}
