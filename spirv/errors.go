package spirv

import "errors"

// Sentinel errors surfaced by construction and emission per spec §7.
var (
	ErrUnterminatedBlock        = errors.New("spirv: basic block has no terminal instruction")
	ErrBlockAlreadyTerminated   = errors.New("spirv: cannot append to a block after its terminator")
	ErrDanglingID               = errors.New("spirv: operand references a result id that was never assigned")
	ErrUnimplementedOpcode      = errors.New("spirv: opcode has no implemented encoding")
	ErrAllocatorFailure         = errors.New("spirv: allocator returned a failure")
	ErrInterfaceVariableMissing = errors.New("spirv: entry point interface finalization found no matching variable")
	ErrModulePoisoned           = errors.New("spirv: module is poisoned by a prior fatal error")
)
