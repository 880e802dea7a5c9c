package spirv

// TypeSpec is a value describing a SPIR-V type to be interned, per spec
// §4.2. It is not itself part of the Module; pass one to Module.AddType,
// which structurally deduplicates it against already-interned types and
// returns a stable TypeHandle.
//
// Only the fields relevant to Op are meaningful; the rest are zero. This
// mirrors the original's single Instruction rendering of every OpType*
// opcode, flattened here into one struct so Equal/Hash can be written
// once instead of once per type kind.
type TypeSpec struct {
	Op Op

	// Scalar numeric types (OpTypeInt, OpTypeFloat).
	Width  uint32
	Signed bool

	// OpTypeVector / OpTypeMatrix: ComponentType is the element (vector)
	// or column (matrix) type, ComponentCount is the element/column count.
	ComponentType  TypeHandle
	ComponentCount uint32

	// OpTypeArray: Length is the interned constant giving the array
	// length. OpTypeRuntimeArray and OpTypePointer reuse ComponentType as
	// the element/pointee type.
	Length ConstantHandle

	// OpTypePointer / OpTypeForwardPointer.
	StorageClass StorageClass

	// OpTypeStruct member types, in order.
	Members []TypeHandle

	// OpTypeFunction: ReturnType plus Members holding parameter types.
	ReturnType TypeHandle

	// OpTypeImage.
	SampledType     TypeHandle
	Dim             Dim
	Depth           uint32
	Arrayed         uint32
	MS              uint32
	Sampled         uint32
	ImageFormat     ImageFormat
	AccessQualifier AccessQualifier

	// OpTypeSampledImage.
	ImageType TypeHandle
}

// NewTypeVoid describes OpTypeVoid.
func NewTypeVoid() TypeSpec { return TypeSpec{Op: OpTypeVoid} }

// NewTypeBool describes OpTypeBool.
func NewTypeBool() TypeSpec { return TypeSpec{Op: OpTypeBool} }

// NewTypeInt describes OpTypeInt of the given bit width and signedness.
func NewTypeInt(width uint32, signed bool) TypeSpec {
	return TypeSpec{Op: OpTypeInt, Width: width, Signed: signed}
}

// NewTypeFloat describes OpTypeFloat of the given bit width.
func NewTypeFloat(width uint32) TypeSpec {
	return TypeSpec{Op: OpTypeFloat, Width: width}
}

// NewTypeVector describes OpTypeVector with the given component type and
// count.
func NewTypeVector(component TypeHandle, count uint32) TypeSpec {
	return TypeSpec{Op: OpTypeVector, ComponentType: component, ComponentCount: count}
}

// NewTypeMatrix describes OpTypeMatrix as a sequence of columnCount
// columns of type column (itself a vector type).
func NewTypeMatrix(column TypeHandle, columnCount uint32) TypeSpec {
	return TypeSpec{Op: OpTypeMatrix, ComponentType: column, ComponentCount: columnCount}
}

// NewTypeArray describes OpTypeArray: elemType repeated, with the element
// count given by the interned constant length.
func NewTypeArray(elemType TypeHandle, length ConstantHandle) TypeSpec {
	return TypeSpec{Op: OpTypeArray, ComponentType: elemType, Length: length}
}

// NewTypeRuntimeArray describes OpTypeRuntimeArray: elemType repeated an
// unbounded number of times, length carried at runtime.
func NewTypeRuntimeArray(elemType TypeHandle) TypeSpec {
	return TypeSpec{Op: OpTypeRuntimeArray, ComponentType: elemType}
}

// NewTypeStruct describes OpTypeStruct with the given member types, in
// order.
func NewTypeStruct(members ...TypeHandle) TypeSpec {
	return TypeSpec{Op: OpTypeStruct, Members: append([]TypeHandle(nil), members...)}
}

// NewTypePointer describes OpTypePointer to pointee in storageClass.
func NewTypePointer(storageClass StorageClass, pointee TypeHandle) TypeSpec {
	return TypeSpec{Op: OpTypePointer, StorageClass: storageClass, ComponentType: pointee}
}

// NewTypeForwardPointer describes OpTypeForwardPointer (spec §4.2, §7).
// It carries only a storage class: the emitted instruction names no
// pointer type and is not tied to any OpTypePointer, so it does not break
// a pointer cycle (see Module.AddType).
func NewTypeForwardPointer(storageClass StorageClass) TypeSpec {
	return TypeSpec{Op: OpTypeForwardPointer, StorageClass: storageClass}
}

// NewTypeFunction describes OpTypeFunction: returnType plus the ordered
// parameter types.
func NewTypeFunction(returnType TypeHandle, params ...TypeHandle) TypeSpec {
	return TypeSpec{Op: OpTypeFunction, ReturnType: returnType, Members: append([]TypeHandle(nil), params...)}
}

// ImageTypeSpec groups OpTypeImage's many fixed fields. AccessQualifier
// should be AccessQualifierMax when the qualifier is absent from the
// declaration, per spec §4.2.
type ImageTypeSpec struct {
	SampledType     TypeHandle
	Dim             Dim
	Depth           uint32
	Arrayed         uint32
	MS              uint32
	Sampled         uint32
	Format          ImageFormat
	AccessQualifier AccessQualifier
}

// NewTypeImage describes OpTypeImage.
func NewTypeImage(s ImageTypeSpec) TypeSpec {
	return TypeSpec{
		Op:              OpTypeImage,
		SampledType:     s.SampledType,
		Dim:             s.Dim,
		Depth:           s.Depth,
		Arrayed:         s.Arrayed,
		MS:              s.MS,
		Sampled:         s.Sampled,
		ImageFormat:     s.Format,
		AccessQualifier: s.AccessQualifier,
	}
}

// NewTypeSampledImage describes OpTypeSampledImage over an already
// interned OpTypeImage.
func NewTypeSampledImage(image TypeHandle) TypeSpec {
	return TypeSpec{Op: OpTypeSampledImage, ImageType: image}
}

// Equal reports whether two TypeSpecs describe the same SPIR-V type,
// field by field. Used as the collision-resolution check after a hash
// match in the type intern table (spec §4.2/§7).
func (t TypeSpec) Equal(other TypeSpec) bool {
	if t.Op != other.Op ||
		t.Width != other.Width ||
		t.Signed != other.Signed ||
		t.ComponentType != other.ComponentType ||
		t.ComponentCount != other.ComponentCount ||
		t.Length != other.Length ||
		t.StorageClass != other.StorageClass ||
		t.ReturnType != other.ReturnType ||
		t.SampledType != other.SampledType ||
		t.Dim != other.Dim ||
		t.Depth != other.Depth ||
		t.Arrayed != other.Arrayed ||
		t.MS != other.MS ||
		t.Sampled != other.Sampled ||
		t.ImageFormat != other.ImageFormat ||
		t.AccessQualifier != other.AccessQualifier ||
		t.ImageType != other.ImageType {
		return false
	}
	if len(t.Members) != len(other.Members) {
		return false
	}
	for i := range t.Members {
		if t.Members[i] != other.Members[i] {
			return false
		}
	}
	return true
}

// hash feeds every field into an FNV-1a accumulator (intern.go), in a
// fixed order so structurally-identical specs always hash identically.
func (t TypeSpec) hash(h *fnvAccumulator) {
	h.writeByte(byte(t.Op))
	h.writeUint32(t.Width)
	h.writeBool(t.Signed)
	h.writeUint32(uint32(t.ComponentType))
	h.writeUint32(t.ComponentCount)
	h.writeUint32(uint32(t.Length))
	h.writeUint32(uint32(t.StorageClass))
	h.writeUint32(uint32(t.ReturnType))
	h.writeUint32(uint32(t.SampledType))
	h.writeUint32(uint32(t.Dim))
	h.writeUint32(t.Depth)
	h.writeUint32(t.Arrayed)
	h.writeUint32(t.MS)
	h.writeUint32(t.Sampled)
	h.writeUint32(uint32(t.ImageFormat))
	h.writeUint32(uint32(t.AccessQualifier))
	h.writeUint32(uint32(t.ImageType))
	for _, m := range t.Members {
		h.writeUint32(uint32(m))
	}
}
