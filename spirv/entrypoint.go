package spirv

// EntryPoint is a Function reachable from an OpEntryPoint instruction:
// a shader stage's main, plus the execution model, name, and execution
// modes SPIR-V attaches to it (spec §4.4, §4.6 item "entry points").
type EntryPoint struct {
	*Function

	model          ExecutionModel
	executionModes []executionMode
	interfaceVars  []InstructionHandle // finalized lazily, see finalizeInterface
}

type executionMode struct {
	mode    ExecutionMode
	literals []uint32
}

// SetExecutionMode records an OpExecutionMode to be emitted for this
// entry point, with any mode-specific literal operands (e.g. LocalSize's
// x/y/z).
func (e *EntryPoint) SetExecutionMode(mode ExecutionMode, literals ...uint32) {
	e.executionModes = append(e.executionModes, executionMode{mode: mode, literals: literals})
}

// finalizeInterface walks every instruction transitively reachable from
// the entry point's own body — its blocks, and (recursively, following
// OpFunctionCall) every function it calls — and collects the unique
// OpVariable operands whose storage class belongs in the OpEntryPoint
// interface list. Per the glossary's definition of "entry-point
// interface" and spec §4.6 item 6: versions before 1.4 list only
// Input/Output variables; 1.4 and later list reached variables of every
// storage class except Function. Returns ErrInterfaceVariableMissing if the walk follows
// an operand or call-graph edge to a handle the Module's arena no
// longer has a backing instruction or block for (spec §4.7).
func (e *EntryPoint) finalizeInterface(m *Module) error {
	seenVars := make(map[InstructionHandle]bool)
	seenFuncs := make(map[InstructionHandle]bool)
	var vars []InstructionHandle

	includeAll := m.options.Version.AtLeast(Version1_4)

	includeVar := func(h InstructionHandle) error {
		instr := m.instructionAt(h)
		if instr == nil {
			return ErrInterfaceVariableMissing
		}
		if instr.opcode != OpVariable || seenVars[h] {
			return nil
		}
		sc := StorageClass(0)
		if len(instr.operands) > 0 {
			if word, ok := instr.operands[0].resolve(m); ok {
				sc = StorageClass(word)
			}
		}
		if sc == StorageClassFunction {
			return nil
		}
		if !includeAll && sc != StorageClassInput && sc != StorageClassOutput {
			return nil
		}
		seenVars[h] = true
		vars = append(vars, h)
		return nil
	}

	var visit func(f *Function) error
	visit = func(f *Function) error {
		if f == nil || seenFuncs[f.self] {
			return nil
		}
		seenFuncs[f.self] = true
		for _, bh := range f.blocks {
			block := m.blockAt(bh)
			if block == nil {
				return ErrInterfaceVariableMissing
			}
			for _, ih := range block.instrs {
				instr := m.instructionAt(ih)
				if instr == nil {
					return ErrInterfaceVariableMissing
				}
				for _, op := range instr.operands {
					if op.kind != OperandInstruction {
						continue
					}
					if err := includeVar(op.instr); err != nil {
						return err
					}
				}
				if instr.opcode == OpFunctionCall && len(instr.operands) > 0 {
					if calleeOp := instr.operands[0]; calleeOp.kind == OperandInstruction {
						if callee := m.functionByHandle(calleeOp.instr); callee != nil {
							if err := visit(callee); err != nil {
								return err
							}
						}
					}
				}
			}
		}
		return nil
	}

	if err := visit(e.Function); err != nil {
		return err
	}
	e.interfaceVars = vars
	return nil
}

// writeEntryPointInstr emits this entry point's OpEntryPoint instruction
// into the debug/annotation-adjacent section of the module (spec §4.6
// item 5), after finalizing its interface.
func (e *EntryPoint) writeEntryPointInstr(w Writer, m *Module) error {
	if err := e.finalizeInterface(m); err != nil {
		return err
	}

	wordCount := uint32(3) + stringWordCount(e.name) + uint32(len(e.interfaceVars))
	w.Put((wordCount << 16) | uint32(OpEntryPoint))
	w.Put(uint32(e.model))
	w.Put(m.instructionAt(e.self).resultID)
	writeLiteralString(w, e.name)
	for _, vh := range e.interfaceVars {
		w.Put(m.instructionAt(vh).resultID)
	}
	return nil
}

func (e *EntryPoint) writeExecutionModes(w Writer, m *Module) {
	for _, em := range e.executionModes {
		wordCount := uint32(3) + uint32(len(em.literals))
		w.Put((wordCount << 16) | uint32(OpExecutionMode))
		w.Put(m.instructionAt(e.self).resultID)
		w.Put(uint32(em.mode))
		for _, lit := range em.literals {
			w.Put(lit)
		}
	}
}
