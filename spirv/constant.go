package spirv

// ConstantSpec is a value describing a SPIR-V constant to be interned,
// per spec §4.3. Like TypeSpec, it is not part of the Module until
// passed to Module.AddConstant, which deduplicates it structurally
// (including by its Type, so a 0 of type int and a 0 of type uint never
// collide) and returns a stable ConstantHandle.
type ConstantSpec struct {
	Op   Op
	Type TypeHandle

	// OpConstant scalar payload, 1 word for <=32-bit, 2 for 64-bit,
	// low-word-first (same encoding as Instruction literal operands).
	Words []uint32

	// OpConstantComposite.
	Components []ConstantHandle

	// OpConstantSampler fields.
	SamplerAddressingMode uint32
	SamplerParam          uint32
	SamplerFilterMode     uint32
}

// NewConstantBool describes OpConstantTrue/OpConstantFalse.
func NewConstantBool(t TypeHandle, v bool) ConstantSpec {
	op := OpConstantFalse
	if v {
		op = OpConstantTrue
	}
	return ConstantSpec{Op: op, Type: t}
}

// NewConstantScalar describes OpConstant from its already-encoded
// literal words (see AppendLiterals for the host-value -> words rule).
func NewConstantScalar(t TypeHandle, words ...uint32) ConstantSpec {
	return ConstantSpec{Op: OpConstant, Type: t, Words: append([]uint32(nil), words...)}
}

// NewConstantNull describes OpConstantNull: the type's zero value.
func NewConstantNull(t TypeHandle) ConstantSpec {
	return ConstantSpec{Op: OpConstantNull, Type: t}
}

// NewConstantComposite describes OpConstantComposite: an aggregate
// (vector, matrix, array, or struct) built from already-interned
// constant components.
func NewConstantComposite(t TypeHandle, components ...ConstantHandle) ConstantSpec {
	return ConstantSpec{Op: OpConstantComposite, Type: t, Components: append([]ConstantHandle(nil), components...)}
}

// NewConstantSampler describes OpConstantSampler.
func NewConstantSampler(t TypeHandle, addressingMode, param, filterMode uint32) ConstantSpec {
	return ConstantSpec{
		Op:                    OpConstantSampler,
		Type:                  t,
		SamplerAddressingMode: addressingMode,
		SamplerParam:          param,
		SamplerFilterMode:     filterMode,
	}
}

// Equal reports whether two ConstantSpecs describe the same constant,
// used as the collision-resolution check in the constant intern table.
func (c ConstantSpec) Equal(other ConstantSpec) bool {
	if c.Op != other.Op || c.Type != other.Type ||
		c.SamplerAddressingMode != other.SamplerAddressingMode ||
		c.SamplerParam != other.SamplerParam ||
		c.SamplerFilterMode != other.SamplerFilterMode {
		return false
	}
	if len(c.Words) != len(other.Words) {
		return false
	}
	for i := range c.Words {
		if c.Words[i] != other.Words[i] {
			return false
		}
	}
	if len(c.Components) != len(other.Components) {
		return false
	}
	for i := range c.Components {
		if c.Components[i] != other.Components[i] {
			return false
		}
	}
	return true
}

func (c ConstantSpec) hash(h *fnvAccumulator) {
	h.writeByte(byte(c.Op))
	h.writeUint32(uint32(c.Type))
	h.writeUint32(c.SamplerAddressingMode)
	h.writeUint32(c.SamplerParam)
	h.writeUint32(c.SamplerFilterMode)
	for _, w := range c.Words {
		h.writeUint32(w)
	}
	for _, comp := range c.Components {
		h.writeUint32(uint32(comp))
	}
}
