// Package spirv is an in-memory builder and binary emitter for SPIR-V
// modules, the shader intermediate representation consumed by Vulkan,
// OpenCL, and related GPU toolchains.
//
// A Module owns every type, constant, function, and global the binary
// will contain. Types and constants are interned: building the same
// TypeSpec or ConstantSpec twice returns the same handle rather than
// emitting a duplicate OpType/OpConstant instruction.
//
//	m := spirv.NewModule(spirv.DefaultOptions())
//	m.AddCapability(spirv.CapabilityShader)
//	m.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)
//
//	floatType := m.AddType(spirv.NewTypeFloat(32))
//	vec4Type := m.AddType(spirv.NewTypeVector(floatType, 4))
//
//	w := spirv.NewSliceWriter(nil)
//	if err := m.Write(w); err != nil {
//		log.Fatal(err)
//	}
//
// # Structure
//
// Result ids are assigned lazily, in first-emission order, when Write is
// called — not when an instruction is built — so a Module can be
// assembled in whatever order is convenient and still serialize with a
// minimal, contiguous id range. Handles (InstructionHandle, TypeHandle,
// BlockHandle) are the stable references callers and the Module itself
// use instead; they never change once issued.
//
// Module.Write emits sections in the fixed order the SPIR-V binary
// format requires: header, capabilities, extensions, extended
// instruction imports, memory model, entry points, execution modes,
// debug/source, names, module-processed, decorations, types/constants/
// global variables (interleaved in insertion order), function
// declarations, then function definitions.
//
// # Collaborators
//
// Logger, Allocator, and ResultTypeInferer are pluggable via Options. A
// fatal diagnostic poisons the Module (Module.Poisoned) rather than
// terminating the process — Write on a poisoned Module returns the
// specific failure recorded with the poisoning (e.g. ErrAllocatorFailure),
// or ErrModulePoisoned if none was recorded, instead of a partial binary.
package spirv
