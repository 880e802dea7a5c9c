package spirv

// Function is a SPIR-V function: an OpFunction/OpFunctionParameter*/
// OpFunctionEnd triple with a body of basic blocks in between, per spec
// §4.4. EntryPoint (entrypoint.go) embeds one and adds the
// execution-model metadata OpEntryPoint needs.
type Function struct {
	m *Module

	self       InstructionHandle // the OpFunction instruction
	funcType   TypeHandle        // interned OpTypeFunction
	returnType TypeHandle
	control    FunctionControl

	params []InstructionHandle // OpFunctionParameter instructions, in order
	blocks []BlockHandle

	name string
}

// Handle identifies this function's OpFunction instruction, usable
// anywhere an InstructionHandle is expected (e.g. OpFunctionCall).
func (f *Function) Handle() InstructionHandle { return f.self }

// AddParameter declares one OpFunctionParameter of type t and returns its
// handle for use as an operand inside the function body.
func (f *Function) AddParameter(t TypeHandle) InstructionHandle {
	h := f.m.newInstruction(OpFunctionParameter)
	instr := f.m.instructionAt(h)
	instr.SetResultType(t)
	f.params = append(f.params, h)
	return h
}

// AddBlock appends a new, empty basic block to the function and returns
// it.
func (f *Function) AddBlock() BasicBlock {
	h := f.m.newBlock()
	f.blocks = append(f.blocks, h)
	return BasicBlock{m: f.m, h: h}
}

// EntryBlock returns the function's first basic block, or the zero
// BasicBlock if none has been added yet.
func (f *Function) EntryBlock() (BasicBlock, bool) {
	if len(f.blocks) == 0 {
		return BasicBlock{}, false
	}
	return BasicBlock{m: f.m, h: f.blocks[0]}, true
}

// Variable declares a function-local OpVariable in the Function storage
// class, at the head of the entry block, per the SPIR-V requirement that
// all function-local variables appear first in the entry block (spec
// §4.4).
func (f *Function) Variable(t TypeHandle) (InstructionHandle, error) {
	entry, ok := f.EntryBlock()
	if !ok {
		return 0, ErrUnterminatedBlock
	}
	h := f.m.newInstruction(OpVariable)
	instr := f.m.instructionAt(h)
	instr.SetResultType(t)
	instr.AddOperandLiteral(uint32(StorageClassFunction))
	n := entry.node()
	n.instrs = append([]InstructionHandle{h}, n.instrs...)
	return h, nil
}

// Blocks returns the function's basic block handles, in order.
func (f *Function) Blocks() []BlockHandle { return f.blocks }

// Params returns the function's OpFunctionParameter handles, in order.
func (f *Function) Params() []InstructionHandle { return f.params }

// write emits OpFunction, parameters, blocks (each OpLabel then its
// instructions), and OpFunctionEnd, in that order (spec §4.4/§4.6).
func (f *Function) write(w Writer, m *Module) error {
	self := m.instructionAt(f.self)

	// OpFunction: result type, result id, function control, function type.
	w.Put((5 << 16) | uint32(OpFunction))
	retTypeInstr := m.instructionAt(self.resultType)
	w.Put(retTypeInstr.resultID)
	w.Put(self.resultID)
	w.Put(uint32(f.control))
	w.Put(m.instructionAt(f.funcType).resultID)

	for _, ph := range f.params {
		if err := m.instructionAt(ph).write(w, m); err != nil {
			return err
		}
	}

	for _, bh := range f.blocks {
		if err := m.writeBlock(w, bh); err != nil {
			return err
		}
	}

	w.Put((1 << 16) | uint32(OpFunctionEnd))
	return nil
}
