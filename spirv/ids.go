package spirv

// Handles are stable arena indices, per the Design Notes §9 rendering of
// Operand/Instruction references: an arena owned by the Module plus
// indices into it, instead of raw pointers. Zero is reserved as the
// "invalid handle" sentinel, symmetric with the SPIR-V result id 0
// meaning "unassigned" (spec §3, invariant iv).
type (
	InstructionHandle uint32
	BlockHandle       uint32
	FunctionHandle    uint32
	TypeHandle        = InstructionHandle
	ConstantHandle    = InstructionHandle
)

const invalidHandle = 0

// idCounter assigns sequential SPIR-V result ids starting at 1, lazily,
// on first use — spec §4.6: "Result ids are assigned in first-emission
// order starting at 1; id 0 is reserved as unassigned."
type idCounter struct {
	next uint32
}

func newIDCounter() *idCounter {
	return &idCounter{next: 1}
}

func (c *idCounter) allocate() uint32 {
	id := c.next
	c.next++
	return id
}

func (c *idCounter) maxID() uint32 {
	if c.next == 0 {
		return 0
	}
	return c.next - 1
}
