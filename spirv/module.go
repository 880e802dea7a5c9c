package spirv

import "fmt"

// Module owns every arena, intern table, and section a SPIR-V binary is
// assembled from, per spec §4.6. It is the root object callers construct
// via NewModule and drive through AddType/AddConstant/NewFunction/
// NewEntryPoint, finally serializing with Write.
type Module struct {
	options Options

	instructions []*Instruction // 1-indexed arena; handle h -> instructions[h-1]
	blocks       []*blockNode

	typeSpecs     map[TypeHandle]TypeSpec
	constantSpecs map[ConstantHandle]ConstantSpec
	types         *typeTable
	constants     *constantTable

	capabilities     []Capability
	capabilitiesSeen map[Capability]bool
	extensions       []string
	extensionsSeen   map[string]bool
	extInstSets      map[string]InstructionHandle
	extInstOrder     []string // extInstSets keys, in first-request order

	addressing AddressingModel
	memory     MemoryModel

	sourceLanguage  *Instruction
	strings         []InstructionHandle
	names           []InstructionHandle
	decorations     []InstructionHandle
	moduleProcessed []InstructionHandle

	globalVars []InstructionHandle // OpVariable at module scope, in insertion order
	typeOrder  []InstructionHandle // types/constants/globals interleaved in insertion order, per spec §4.6

	functions    []*Function
	entryPoints  []*EntryPoint

	bound     uint32
	poisoned  bool
	poisonErr error // specific failure recorded alongside poisoned, if any; nil falls back to ErrModulePoisoned
}

// NewModule constructs an empty Module with the given options
// (DefaultOptions if zero-valued fields are left unset; see
// Options.normalize).
func NewModule(opts Options) *Module {
	opts = opts.normalize()
	reserve := opts.Allocator.Reserve(64)
	failed := reserve < 0
	if failed {
		// A negative hint is this package's equivalent of the allocator
		// returning null (spec §4.7): there is no capacity to reserve, so
		// the module is poisoned up front rather than left to build on a
		// bogus negative capacity.
		reserve = 0
	}
	m := &Module{
		options:          opts,
		instructions:     make([]*Instruction, 0, reserve),
		typeSpecs:        make(map[TypeHandle]TypeSpec, reserve),
		constantSpecs:    make(map[ConstantHandle]ConstantSpec),
		types:            newTypeTable(),
		constants:        newConstantTable(),
		capabilitiesSeen: make(map[Capability]bool),
		extensionsSeen:   make(map[string]bool),
		extInstSets:      make(map[string]InstructionHandle),
		memory:           MemoryModelGLSL450,
		addressing:       AddressingModelLogical,
	}
	if failed {
		m.poisonWith(ErrAllocatorFailure, "allocator failed to reserve capacity for hint %d", 64)
	}
	return m
}

func (m *Module) logf(level LogLevel, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	m.options.Logger.Log(level, msg)
	if level == LogLevelFatal {
		m.poisoned = true
	}
}

// poisonWith is logf(LogLevelFatal, ...) plus recording a specific failure
// (per spec §4.7) that Validate/Write surface instead of the generic
// ErrModulePoisoned.
func (m *Module) poisonWith(err error, format string, args ...interface{}) {
	m.logf(LogLevelFatal, format, args...)
	m.poisonErr = err
}

// Poisoned reports whether a fatal diagnostic has been logged. A
// poisoned Module still never panics or calls os.Exit (spec §5/§7); it
// simply refuses to serialize successfully.
func (m *Module) Poisoned() bool { return m.poisoned }

func (m *Module) newInstruction(op Op) InstructionHandle {
	instr := &Instruction{opcode: op}
	m.instructions = append(m.instructions, instr)
	return InstructionHandle(len(m.instructions))
}

func (m *Module) instructionAt(h InstructionHandle) *Instruction {
	if h == invalidHandle || int(h) > len(m.instructions) {
		return nil
	}
	return m.instructions[h-1]
}

func (m *Module) typeAt(h TypeHandle) *TypeSpec {
	spec, ok := m.typeSpecs[h]
	if !ok {
		return nil
	}
	return &spec
}

func (m *Module) constantAt(h ConstantHandle) *ConstantSpec {
	spec, ok := m.constantSpecs[h]
	if !ok {
		return nil
	}
	return &spec
}

func (m *Module) newBlock() BlockHandle {
	m.blocks = append(m.blocks, &blockNode{})
	return BlockHandle(len(m.blocks))
}

func (m *Module) blockAt(h BlockHandle) *blockNode {
	if h == invalidHandle || int(h) > len(m.blocks) {
		return nil
	}
	return m.blocks[h-1]
}

// AddCapability declares cap, in insertion order, if it isn't already
// present (spec §4.6 item 2: "OpCapability* (in insertion order)").
func (m *Module) AddCapability(cap Capability) {
	if m.capabilitiesSeen[cap] {
		return
	}
	m.capabilitiesSeen[cap] = true
	m.capabilities = append(m.capabilities, cap)
}

// CheckAddCapability is the supplemented-feature from the original's
// Module::checkAddCapability (spec §7): it adds cap only if cap itself is
// not already present (no implication between capabilities is checked),
// logging an info diagnostic either way so callers can see which capability a
// feature actually required.
func (m *Module) CheckAddCapability(cap Capability, reason string) {
	if m.capabilitiesSeen[cap] {
		m.logf(LogLevelInfo, "capability %d already present (%s)", cap, reason)
		return
	}
	m.logf(LogLevelInfo, "adding capability %d (%s)", cap, reason)
	m.AddCapability(cap)
}

// Capabilities returns the declared capabilities, in insertion order.
func (m *Module) Capabilities() []Capability { return m.capabilities }

// AddExtension declares an OpExtension by name, in insertion order, if
// not already present.
func (m *Module) AddExtension(name string) {
	if m.extensionsSeen[name] {
		return
	}
	m.extensionsSeen[name] = true
	m.extensions = append(m.extensions, name)
}

// GetExtInstImport returns the handle of the OpExtInstImport for name,
// creating it (and assigning it a fresh id on first serialization) if
// this is the first request for that set. Sets are emitted in
// first-request order, matching spec §4.6 item 3.
func (m *Module) GetExtInstImport(name string) InstructionHandle {
	if h, ok := m.extInstSets[name]; ok {
		return h
	}
	h := m.newInstruction(OpExtInstImport)
	m.extInstSets[name] = h
	m.extInstOrder = append(m.extInstOrder, name)
	return h
}

// SetMemoryModel sets the module's addressing and memory model
// (OpMemoryModel); defaults to Logical/GLSL450 if never called.
func (m *Module) SetMemoryModel(addressing AddressingModel, memory MemoryModel) {
	m.addressing = addressing
	m.memory = memory
}

// AddSourceLanguage records the OpSource instruction (spec §7
// supplemented feature: source-language/version/file/text plumbing the
// distilled spec otherwise drops).
func (m *Module) AddSourceLanguage(language uint32, version uint32, file InstructionHandle, source string) {
	h := m.newInstruction(OpSource)
	instr := m.instructionAt(h)
	instr.AddOperandLiteral(language)
	instr.AddOperandLiteral(version)
	if file != invalidHandle {
		instr.AddOperandInstruction(file)
	}
	if source != "" {
		AppendLiterals(instr, source)
	}
	m.sourceLanguage = instr
}

// AddSourceString adds an OpString (used for OpSource's file operand
// and for debug-info references) and returns its handle. Every call adds
// a new OpString; equal strings are not deduplicated.
func (m *Module) AddSourceString(s string) InstructionHandle {
	h := m.newInstruction(OpString)
	instr := m.instructionAt(h)
	AppendLiterals(instr, s)
	m.strings = append(m.strings, h)
	return h
}

// AddName attaches an OpName debug name to target.
func (m *Module) AddName(target InstructionHandle, name string) {
	h := m.newInstruction(OpName)
	instr := m.instructionAt(h)
	instr.AddOperandInstruction(target)
	AppendLiterals(instr, name)
	m.names = append(m.names, h)
}

// AddMemberName attaches an OpMemberName to member of the struct type
// target.
func (m *Module) AddMemberName(target TypeHandle, member uint32, name string) {
	h := m.newInstruction(OpMemberName)
	instr := m.instructionAt(h)
	instr.AddOperandInstruction(target)
	instr.AddOperandLiteral(member)
	AppendLiterals(instr, name)
	m.names = append(m.names, h)
}

// AddDecoration attaches an OpDecorate to target.
func (m *Module) AddDecoration(target InstructionHandle, decoration Decoration, literals ...uint32) {
	h := m.newInstruction(OpDecorate)
	instr := m.instructionAt(h)
	instr.AddOperandInstruction(target)
	instr.AddOperandLiteral(uint32(decoration))
	for _, l := range literals {
		instr.AddOperandLiteral(l)
	}
	m.decorations = append(m.decorations, h)
}

// AddMemberDecoration attaches an OpMemberDecorate to member of the
// struct type target.
func (m *Module) AddMemberDecoration(target TypeHandle, member uint32, decoration Decoration, literals ...uint32) {
	h := m.newInstruction(OpMemberDecorate)
	instr := m.instructionAt(h)
	instr.AddOperandInstruction(target)
	instr.AddOperandLiteral(member)
	instr.AddOperandLiteral(uint32(decoration))
	for _, l := range literals {
		instr.AddOperandLiteral(l)
	}
	m.decorations = append(m.decorations, h)
}

// AddModuleProcessed records an OpModuleProcessed instruction, normally
// emitted by a legalization/optimization pass to note what it did.
func (m *Module) AddModuleProcessed(process string) {
	h := m.newInstruction(OpModuleProcessed)
	instr := m.instructionAt(h)
	AppendLiterals(instr, process)
	m.moduleProcessed = append(m.moduleProcessed, h)
}

// typeOperands builds the operand list for a not-yet-interned TypeSpec's
// backing instruction, per the per-opcode operand layout in spec §4.2.
func (m *Module) typeOperands(instr *Instruction, spec TypeSpec) {
	switch spec.Op {
	case OpTypeVoid, OpTypeBool:
		// no operands
	case OpTypeInt:
		instr.AddOperandLiteral(spec.Width)
		instr.AddOperandLiteral(boolWord(spec.Signed))
	case OpTypeFloat:
		instr.AddOperandLiteral(spec.Width)
	case OpTypeVector:
		instr.AddOperandInstruction(spec.ComponentType)
		instr.AddOperandLiteral(spec.ComponentCount)
	case OpTypeMatrix:
		instr.AddOperandInstruction(spec.ComponentType)
		instr.AddOperandLiteral(spec.ComponentCount)
	case OpTypeArray:
		instr.AddOperandInstruction(spec.ComponentType)
		instr.AddOperandInstruction(spec.Length)
	case OpTypeRuntimeArray:
		instr.AddOperandInstruction(spec.ComponentType)
	case OpTypeStruct:
		for _, mem := range spec.Members {
			instr.AddOperandInstruction(mem)
		}
	case OpTypePointer:
		instr.AddOperandLiteral(uint32(spec.StorageClass))
		instr.AddOperandInstruction(spec.ComponentType)
	case OpTypeForwardPointer:
		instr.AddOperandLiteral(uint32(spec.StorageClass))
	case OpTypeFunction:
		instr.AddOperandInstruction(spec.ReturnType)
		for _, p := range spec.Members {
			instr.AddOperandInstruction(p)
		}
	case OpTypeImage:
		instr.AddOperandInstruction(spec.SampledType)
		instr.AddOperandLiteral(uint32(spec.Dim))
		instr.AddOperandLiteral(spec.Depth)
		instr.AddOperandLiteral(spec.Arrayed)
		instr.AddOperandLiteral(spec.MS)
		instr.AddOperandLiteral(spec.Sampled)
		instr.AddOperandLiteral(uint32(spec.ImageFormat))
		if spec.AccessQualifier != AccessQualifierMax {
			instr.AddOperandLiteral(uint32(spec.AccessQualifier))
		}
	case OpTypeSampledImage:
		instr.AddOperandInstruction(spec.ImageType)
	}
}

func boolWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// AddType interns spec, returning its existing handle if an identical
// type was already added (structural equality, spec §4.2/§7), or
// building and appending a fresh OpType* instruction otherwise.
//
// OpTypeForwardPointer is a simplification from the original's
// id-sharing trick (see DESIGN.md): it is emitted as its own,
// independently-addressed type entry rather than reserving the id of a
// subsequent OpTypePointer, so it is useful as a diagnostic/placeholder
// but does not yet resolve genuine pointer cycles.
func (m *Module) AddType(spec TypeSpec) TypeHandle {
	if h, ok := m.types.lookup(spec, func(h TypeHandle) TypeSpec { return m.typeSpecs[h] }); ok {
		return h
	}
	if spec.Op == OpTypeForwardPointer {
		m.logf(LogLevelInfo, "emitting OpTypeForwardPointer for storage class %d ahead of its OpTypePointer", spec.StorageClass)
	}
	h := m.newInstruction(spec.Op)
	instr := m.instructionAt(h)
	m.typeOperands(instr, spec)
	m.typeSpecs[h] = spec
	m.types.insert(spec, h)
	m.typeOrder = append(m.typeOrder, h)
	return h
}

// constantOperands builds the operand list for a not-yet-interned
// ConstantSpec's backing instruction, per spec §4.3.
func (m *Module) constantOperands(instr *Instruction, spec ConstantSpec) {
	switch spec.Op {
	case OpConstantTrue, OpConstantFalse, OpConstantNull:
		// no operands beyond result type/id
	case OpConstant:
		for _, w := range spec.Words {
			instr.AddOperandLiteral(w)
		}
	case OpConstantComposite:
		for _, c := range spec.Components {
			instr.AddOperandInstruction(c)
		}
	case OpConstantSampler:
		instr.AddOperandLiteral(spec.SamplerAddressingMode)
		instr.AddOperandLiteral(spec.SamplerParam)
		instr.AddOperandLiteral(spec.SamplerFilterMode)
	}
}

// AddConstant interns spec the same way AddType does, keyed on (opcode,
// type, payload) so a zero of type int and a zero of type uint are
// distinct constants (spec §4.3/§7).
//
// OpSpecConstantOp has no encoding: AddConstant logs a fatal diagnostic,
// poisons the Module with ErrUnimplementedOpcode (which Validate and
// Write then return), and returns the invalid handle 0.
func (m *Module) AddConstant(spec ConstantSpec) ConstantHandle {
	if spec.Op == OpSpecConstantOp {
		m.poisonWith(ErrUnimplementedOpcode, "OpSpecConstantOp has no implemented encoding")
		return invalidHandle
	}
	if h, ok := m.constants.lookup(spec, func(h ConstantHandle) ConstantSpec { return m.constantSpecs[h] }); ok {
		return h
	}
	h := m.newInstruction(spec.Op)
	instr := m.instructionAt(h)
	instr.SetResultType(spec.Type)
	m.constantOperands(instr, spec)
	m.constantSpecs[h] = spec
	m.constants.insert(spec, h)
	m.typeOrder = append(m.typeOrder, h)
	return h
}

// GlobalVariables returns the module-scope OpVariable handles, in
// declaration order.
func (m *Module) GlobalVariables() []InstructionHandle { return m.globalVars }

// GetTypeInfo is the supplemented reverse-lookup from the original's
// Module::getTypeInfo (spec §7): given a handle previously returned by
// AddType, it returns the TypeSpec that produced it.
func (m *Module) GetTypeInfo(h TypeHandle) (TypeSpec, bool) {
	spec, ok := m.typeSpecs[h]
	return spec, ok
}

// CompositeType is the supplemented builder from the original's
// Module::compositeType (spec §7): given a struct/array/vector type
// handle, it returns the handle of the type at memberIndex, deriving it
// from already-interned type info instead of requiring the caller to
// re-specify it.
func (m *Module) CompositeType(h TypeHandle, memberIndex uint32) (TypeHandle, error) {
	spec, ok := m.GetTypeInfo(h)
	if !ok {
		return 0, ErrUnimplementedOpcode
	}
	switch spec.Op {
	case OpTypeVector, OpTypeMatrix, OpTypeArray, OpTypeRuntimeArray, OpTypePointer:
		return spec.ComponentType, nil
	case OpTypeStruct:
		if int(memberIndex) >= len(spec.Members) {
			return 0, ErrUnimplementedOpcode
		}
		return spec.Members[memberIndex], nil
	default:
		return 0, ErrUnimplementedOpcode
	}
}

// Variable declares a module-scope OpVariable in storageClass, with an
// optional initializer constant.
func (m *Module) Variable(t TypeHandle, storageClass StorageClass, initializer ConstantHandle) InstructionHandle {
	h := m.newInstruction(OpVariable)
	instr := m.instructionAt(h)
	instr.SetResultType(t)
	instr.AddOperandLiteral(uint32(storageClass))
	if initializer != invalidHandle {
		instr.AddOperandInstruction(initializer)
	}
	m.globalVars = append(m.globalVars, h)
	m.typeOrder = append(m.typeOrder, h)
	return h
}

// NewFunction begins a new Function with the given return and parameter
// types (interned into a deduplicated OpTypeFunction).
func (m *Module) NewFunction(returnType TypeHandle, control FunctionControl, paramTypes ...TypeHandle) *Function {
	funcType := m.AddType(NewTypeFunction(returnType, paramTypes...))
	h := m.newInstruction(OpFunction)
	instr := m.instructionAt(h)
	instr.SetResultType(returnType)

	f := &Function{m: m, self: h, funcType: funcType, returnType: returnType, control: control}
	m.functions = append(m.functions, f)
	return f
}

// NewEntryPoint begins a new EntryPoint: a Function plus the
// OpEntryPoint/OpExecutionMode metadata SPIR-V requires for a shader
// stage's main (spec §4.4).
func (m *Module) NewEntryPoint(model ExecutionModel, name string, returnType TypeHandle, control FunctionControl) *EntryPoint {
	f := m.NewFunction(returnType, control)
	ep := &EntryPoint{Function: f, model: model}
	ep.name = name
	m.entryPoints = append(m.entryPoints, ep)
	return ep
}

// Validate performs the structural checks spec §8 calls for: every
// declared function's blocks are terminated, and the module has not been
// poisoned by a fatal diagnostic.
func (m *Module) Validate() error {
	if m.poisoned {
		if m.poisonErr != nil {
			return m.poisonErr
		}
		return ErrModulePoisoned
	}
	for _, f := range m.functions {
		for _, bh := range f.blocks {
			b := BasicBlock{m: m, h: bh}
			if !b.IsTerminated() {
				return ErrUnterminatedBlock
			}
		}
	}
	return nil
}

// assignIDs walks the module in emission order and assigns a result id
// to every instruction and block label that doesn't have one yet, per
// spec §4.6's "ids assigned in first-emission order starting at 1".
func (m *Module) assignIDs() {
	counter := newIDCounter()

	for _, name := range m.extInstOrder {
		m.instructionAt(m.extInstSets[name]).assignID(counter)
	}
	for _, h := range m.strings {
		m.instructionAt(h).assignID(counter)
	}
	for _, h := range m.typeOrder {
		m.instructionAt(h).assignID(counter)
	}
	assignFunction := func(f *Function) {
		m.instructionAt(f.self).assignID(counter)
		for _, ph := range f.params {
			m.instructionAt(ph).assignID(counter)
		}
		for _, bh := range f.blocks {
			b := m.blockAt(bh)
			if b.labelID == 0 {
				b.labelID = counter.allocate()
			}
			for _, ih := range b.instrs {
				m.instructionAt(ih).assignID(counter)
			}
		}
	}
	// Same function order as Write: declarations, definitions, entry points.
	for _, f := range m.functions {
		if !isEntryPointFunction(m, f) && len(f.blocks) == 0 {
			assignFunction(f)
		}
	}
	for _, f := range m.functions {
		if !isEntryPointFunction(m, f) && len(f.blocks) != 0 {
			assignFunction(f)
		}
	}
	for _, ep := range m.entryPoints {
		assignFunction(ep.Function)
	}
	m.bound = counter.maxID() + 1
}

// Write serializes the module to w in the fixed section order spec §4.6
// mandates: header, capabilities, extensions, ext-inst imports, memory
// model, entry points, execution modes, debug/source, names,
// module-processed, decorations, types/constants/globals (interleaved in
// insertion order), function declarations, then function definitions.
func (m *Module) Write(w Writer) error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.assignIDs()

	w.Put(MagicNumber)
	w.Put(m.options.Version.Word())
	w.Put(GeneratorID)
	w.Put(m.bound)
	w.Put(0) // schema, reserved

	for _, cap := range m.capabilities {
		w.Put((2 << 16) | uint32(OpCapability))
		w.Put(uint32(cap))
	}
	for _, ext := range m.extensions {
		wordCount := 1 + stringWordCount(ext)
		w.Put((wordCount << 16) | uint32(OpExtension))
		writeLiteralString(w, ext)
	}
	for _, name := range m.extInstOrder {
		instr := m.instructionAt(m.extInstSets[name])
		wordCount := 2 + stringWordCount(name)
		w.Put((wordCount << 16) | uint32(OpExtInstImport))
		w.Put(instr.resultID)
		writeLiteralString(w, name)
	}

	w.Put((3 << 16) | uint32(OpMemoryModel))
	w.Put(uint32(m.addressing))
	w.Put(uint32(m.memory))

	for _, ep := range m.entryPoints {
		if err := ep.writeEntryPointInstr(w, m); err != nil {
			return err
		}
	}
	for _, ep := range m.entryPoints {
		ep.writeExecutionModes(w, m)
	}

	if m.sourceLanguage != nil {
		if err := m.sourceLanguage.write(w, m); err != nil {
			return err
		}
	}
	for _, h := range m.strings {
		if err := m.instructionAt(h).write(w, m); err != nil {
			return err
		}
	}
	for _, h := range m.names {
		if err := m.instructionAt(h).write(w, m); err != nil {
			return err
		}
	}
	for _, h := range m.moduleProcessed {
		if err := m.instructionAt(h).write(w, m); err != nil {
			return err
		}
	}
	for _, h := range m.decorations {
		if err := m.instructionAt(h).write(w, m); err != nil {
			return err
		}
	}

	for _, h := range m.typeOrder {
		if err := m.instructionAt(h).write(w, m); err != nil {
			return err
		}
	}

	// Declarations (no blocks) first, then definitions, then entry points.
	for _, f := range m.functions {
		if isEntryPointFunction(m, f) || len(f.blocks) != 0 {
			continue
		}
		if err := f.write(w, m); err != nil {
			return err
		}
	}
	for _, f := range m.functions {
		if isEntryPointFunction(m, f) || len(f.blocks) == 0 {
			continue
		}
		if err := f.write(w, m); err != nil {
			return err
		}
	}
	for _, ep := range m.entryPoints {
		if err := ep.write(w, m); err != nil {
			return err
		}
	}

	return nil
}

// writeBlock emits a block's OpLabel followed by its instructions.
func (m *Module) writeBlock(w Writer, h BlockHandle) error {
	b := m.blockAt(h)
	w.Put((2 << 16) | uint32(OpLabel))
	w.Put(b.labelID)
	for _, ih := range b.instrs {
		if err := m.instructionAt(ih).write(w, m); err != nil {
			return err
		}
	}
	return nil
}

// functionByHandle finds the Function whose OpFunction instruction is h,
// used by EntryPoint.finalizeInterface to follow OpFunctionCall into its
// callee when walking the entry point's call graph.
func (m *Module) functionByHandle(h InstructionHandle) *Function {
	for _, f := range m.functions {
		if f.self == h {
			return f
		}
	}
	return nil
}

func isEntryPointFunction(m *Module, f *Function) bool {
	for _, ep := range m.entryPoints {
		if ep.Function == f {
			return true
		}
	}
	return false
}
