// Package spirv is an in-memory builder and binary emitter for SPIR-V
// modules, the shader intermediate representation consumed by Vulkan,
// OpenCL, and related GPU toolchains.
package spirv

// Version represents a SPIR-V version as encoded in the module header:
// (major<<16 | minor<<8).
type Version struct {
	Major uint8
	Minor uint8
}

// Word packs the version into the header word SPIR-V expects.
func (v Version) Word() uint32 {
	return uint32(v.Major)<<16 | uint32(v.Minor)<<8
}

// AtLeast reports whether v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

// Common SPIR-V versions.
var (
	Version1_0 = Version{1, 0}
	Version1_1 = Version{1, 1}
	Version1_2 = Version{1, 2}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// SPIR-V magic number and generator constants.
const (
	MagicNumber = 0x07230203
	GeneratorID = 0x00000000 // unregistered generator magic
	InvalidID   = uint32(0)  // id 0 is reserved as "unassigned"
)

// Op represents a SPIR-V opcode.
type Op uint16

// Debug & annotation opcodes.
const (
	OpNop                 Op = 0
	OpSourceContinued     Op = 2
	OpSource              Op = 3
	OpSourceExtension     Op = 4
	OpName                Op = 5
	OpMemberName          Op = 6
	OpString              Op = 7
	OpExtension           Op = 10
	OpExtInstImport       Op = 11
	OpExtInst             Op = 12
	OpMemoryModel         Op = 14
	OpEntryPoint          Op = 15
	OpExecutionMode       Op = 16
	OpCapability          Op = 17
	OpDecorate            Op = 71
	OpMemberDecorate      Op = 72
	OpDecorationGroup     Op = 73
	OpGroupDecorate       Op = 74
	OpGroupMemberDecorate Op = 75
	OpModuleProcessed     Op = 330
)

// Type declaration opcodes.
const (
	OpTypeVoid           Op = 19
	OpTypeBool           Op = 20
	OpTypeInt            Op = 21
	OpTypeFloat          Op = 22
	OpTypeVector         Op = 23
	OpTypeMatrix         Op = 24
	OpTypeImage          Op = 25
	OpTypeSampler        Op = 26
	OpTypeSampledImage   Op = 27
	OpTypeArray          Op = 28
	OpTypeRuntimeArray   Op = 29
	OpTypeStruct         Op = 30
	OpTypeOpaque         Op = 31
	OpTypePointer        Op = 32
	OpTypeFunction       Op = 33
	OpTypeEvent          Op = 34
	OpTypeDeviceEvent    Op = 35
	OpTypeReserveId      Op = 36
	OpTypeQueue          Op = 37
	OpTypePipe           Op = 38
	OpTypeForwardPointer Op = 39
	OpTypePipeStorage    Op = 322
	OpTypeNamedBarrier   Op = 327
)

// Constant opcodes.
const (
	OpConstantTrue          Op = 41
	OpConstantFalse         Op = 42
	OpConstant              Op = 43
	OpConstantComposite     Op = 44
	OpConstantSampler       Op = 45
	OpConstantNull          Op = 46
	OpSpecConstantTrue      Op = 48
	OpSpecConstantFalse     Op = 49
	OpSpecConstant          Op = 50
	OpSpecConstantComposite Op = 51
	OpSpecConstantOp        Op = 52
)

// Function & memory opcodes.
const (
	OpUndef               Op = 1
	OpFunction            Op = 54
	OpFunctionParameter   Op = 55
	OpFunctionEnd         Op = 56
	OpFunctionCall        Op = 57
	OpVariable            Op = 59
	OpLoad                Op = 61
	OpStore               Op = 62
	OpCopyMemory          Op = 63
	OpAccessChain         Op = 65
	OpInBoundsAccessChain Op = 66
	OpPhi                 Op = 245
)

// Image opcodes.
const (
	OpImageSampleImplicitLod Op = 87
	OpImageSampleExplicitLod Op = 88
	OpImageFetch             Op = 95
	OpImageRead              Op = 98
	OpImageWrite             Op = 99
)

// Composite & conversion opcodes.
const (
	OpVectorExtractDynamic Op = 77
	OpVectorInsertDynamic  Op = 78
	OpVectorShuffle        Op = 79
	OpCompositeConstruct   Op = 80
	OpCompositeExtract     Op = 81
	OpCompositeInsert      Op = 82
	OpConvertFToU          Op = 109
	OpConvertFToS          Op = 110
	OpConvertSToF          Op = 111
	OpConvertUToF          Op = 112
	OpBitcast              Op = 124
)

// Arithmetic opcodes.
const (
	OpSNegate Op = 126
	OpFNegate Op = 127
	OpIAdd    Op = 128
	OpFAdd    Op = 129
	OpISub    Op = 130
	OpFSub    Op = 131
	OpIMul    Op = 132
	OpFMul    Op = 133
	OpUDiv    Op = 134
	OpSDiv    Op = 135
	OpFDiv    Op = 136
	OpUMod    Op = 137
	OpSRem    Op = 138
	OpSMod    Op = 139
	OpFRem    Op = 140
	OpFMod    Op = 141
)

// Relational & logical opcodes.
const (
	OpLogicalEqual         Op = 164
	OpLogicalNotEqual      Op = 165
	OpLogicalOr            Op = 166
	OpLogicalAnd           Op = 167
	OpLogicalNot           Op = 168
	OpSelect               Op = 169
	OpIEqual               Op = 170
	OpINotEqual            Op = 171
	OpUGreaterThan         Op = 172
	OpSGreaterThan         Op = 173
	OpUGreaterThanEqual    Op = 174
	OpSGreaterThanEqual    Op = 175
	OpULessThan            Op = 176
	OpSLessThan            Op = 177
	OpULessThanEqual       Op = 178
	OpSLessThanEqual       Op = 179
	OpFOrdEqual            Op = 180
	OpFOrdNotEqual         Op = 182
	OpFOrdLessThan         Op = 184
	OpFOrdGreaterThan      Op = 186
	OpFOrdLessThanEqual    Op = 188
	OpFOrdGreaterThanEqual Op = 190
)

// Bitwise opcodes.
const (
	OpShiftRightLogical    Op = 194
	OpShiftRightArithmetic Op = 195
	OpShiftLeftLogical     Op = 196
	OpBitwiseOr            Op = 197
	OpBitwiseXor           Op = 198
	OpBitwiseAnd           Op = 199
	OpNot                  Op = 200
)

// Derivative opcodes.
const (
	OpDPdx         Op = 207
	OpDPdy         Op = 208
	OpFwidth       Op = 209
	OpDPdxFine     Op = 210
	OpDPdyFine     Op = 211
	OpFwidthFine   Op = 212
	OpDPdxCoarse   Op = 213
	OpDPdyCoarse   Op = 214
	OpFwidthCoarse Op = 215
)

// Control-flow opcodes.
const (
	OpLoopMerge           Op = 246
	OpSelectionMerge      Op = 247
	OpLabel               Op = 248
	OpBranch              Op = 249
	OpBranchConditional   Op = 250
	OpSwitch              Op = 251
	OpKill                Op = 252
	OpReturn              Op = 253
	OpReturnValue         Op = 254
	OpUnreachable         Op = 255
	OpTerminateInvocation Op = 4416
)

// Atomic & barrier opcodes.
const (
	OpControlBarrier        Op = 224
	OpMemoryBarrier         Op = 225
	OpAtomicLoad            Op = 227
	OpAtomicStore           Op = 228
	OpAtomicExchange        Op = 229
	OpAtomicCompareExchange Op = 230
	OpAtomicIIncrement      Op = 232
	OpAtomicIDecrement      Op = 233
	OpAtomicIAdd            Op = 234
	OpAtomicISub            Op = 235
	OpAtomicSMin            Op = 236
	OpAtomicUMin            Op = 237
	OpAtomicSMax            Op = 238
	OpAtomicUMax            Op = 239
	OpAtomicAnd             Op = 240
	OpAtomicOr              Op = 241
	OpAtomicXor             Op = 242
)

// isTerminal reports whether op ends a basic block, per spec §3: branch,
// conditional branch, switch, return, return-value, unreachable, kill, or
// terminate-invocation.
func (op Op) isTerminal() bool {
	switch op {
	case OpBranch, OpBranchConditional, OpSwitch, OpReturn, OpReturnValue, OpUnreachable, OpKill, OpTerminateInvocation:
		return true
	default:
		return false
	}
}

// hasResult reports whether op, once emitted, allocates a result id that
// other instructions may reference as an operand.
func (op Op) hasResult() bool {
	switch op {
	case OpNop, OpSource, OpSourceContinued, OpSourceExtension, OpName, OpMemberName,
		OpExtension, OpMemoryModel, OpEntryPoint, OpExecutionMode, OpCapability,
		OpDecorate, OpMemberDecorate, OpGroupDecorate, OpGroupMemberDecorate,
		OpModuleProcessed, OpFunctionEnd, OpStore, OpCopyMemory,
		OpLoopMerge, OpSelectionMerge, OpLabel, OpBranch, OpBranchConditional,
		OpSwitch, OpKill, OpReturn, OpReturnValue, OpUnreachable, OpTerminateInvocation,
		OpControlBarrier, OpMemoryBarrier, OpAtomicStore, OpImageWrite, OpTypeForwardPointer:
		return false
	default:
		return true
	}
}

// Capability represents a SPIR-V capability.
type Capability uint32

// Common capabilities.
const (
	CapabilityMatrix                           Capability = 0
	CapabilityShader                            Capability = 1
	CapabilityGeometry                          Capability = 2
	CapabilityTessellation                      Capability = 3
	CapabilityAddresses                         Capability = 4
	CapabilityLinkage                           Capability = 5
	CapabilityKernel                            Capability = 6
	CapabilityFloat16Buffer                     Capability = 8
	CapabilityFloat16                           Capability = 9
	CapabilityFloat64                           Capability = 10
	CapabilityInt64                             Capability = 11
	CapabilityInt64Atomics                      Capability = 12
	CapabilityImageBasic                        Capability = 13
	CapabilityInt16                             Capability = 22
	CapabilityInt8                              Capability = 39
	CapabilitySampled1D                         Capability = 43
	CapabilityImage1D                           Capability = 44
	CapabilitySampledBuffer                     Capability = 46
	CapabilityImageBuffer                       Capability = 47
	CapabilityImageMSArray                      Capability = 48
	CapabilityStorageImageExtendedFormats       Capability = 49
	CapabilityImageQuery                        Capability = 50
	CapabilityDerivativeControl                 Capability = 51
	CapabilityInterpolationFunction             Capability = 52
	CapabilityStorageImageReadWithoutFormat     Capability = 55
	CapabilityStorageImageWriteWithoutFormat    Capability = 56
	CapabilitySampledImageArrayDynamicIndexing  Capability = 29
	CapabilityVulkanMemoryModel                 Capability = 5345
)

// Decoration represents a SPIR-V decoration.
type Decoration uint32

// Common decorations.
const (
	DecorationRelaxedPrecision Decoration = 0
	DecorationSpecId           Decoration = 1
	DecorationBlock            Decoration = 2
	DecorationBufferBlock      Decoration = 3
	DecorationRowMajor         Decoration = 4
	DecorationColMajor         Decoration = 5
	DecorationArrayStride      Decoration = 6
	DecorationMatrixStride     Decoration = 7
	DecorationGLSLShared       Decoration = 8
	DecorationGLSLPacked       Decoration = 9
	DecorationCPacked          Decoration = 10
	DecorationBuiltIn          Decoration = 11
	DecorationNoPerspective    Decoration = 13
	DecorationFlat             Decoration = 14
	DecorationPatch            Decoration = 15
	DecorationCentroid         Decoration = 16
	DecorationSample           Decoration = 17
	DecorationInvariant        Decoration = 18
	DecorationRestrict         Decoration = 19
	DecorationAliased          Decoration = 20
	DecorationVolatile         Decoration = 21
	DecorationConstant         Decoration = 22
	DecorationCoherent         Decoration = 23
	DecorationNonWritable      Decoration = 24
	DecorationNonReadable      Decoration = 25
	DecorationUniform          Decoration = 26
	DecorationLocation         Decoration = 30
	DecorationComponent        Decoration = 31
	DecorationIndex            Decoration = 32
	DecorationBinding          Decoration = 33
	DecorationDescriptorSet    Decoration = 34
	DecorationOffset           Decoration = 35
	DecorationNoContraction    Decoration = 42
)

// BuiltIn represents a SPIR-V built-in decoration value.
type BuiltIn uint32

// Common built-ins.
const (
	BuiltInPosition             BuiltIn = 0
	BuiltInPointSize            BuiltIn = 1
	BuiltInClipDistance         BuiltIn = 3
	BuiltInCullDistance         BuiltIn = 4
	BuiltInVertexID             BuiltIn = 5
	BuiltInInstanceID           BuiltIn = 6
	BuiltInPrimitiveID          BuiltIn = 7
	BuiltInInvocationID         BuiltIn = 8
	BuiltInLayer                BuiltIn = 9
	BuiltInViewportIndex        BuiltIn = 10
	BuiltInTessLevelOuter       BuiltIn = 11
	BuiltInTessLevelInner       BuiltIn = 12
	BuiltInTessCoord            BuiltIn = 13
	BuiltInPatchVertices        BuiltIn = 14
	BuiltInFragCoord            BuiltIn = 15
	BuiltInPointCoord           BuiltIn = 16
	BuiltInFrontFacing          BuiltIn = 17
	BuiltInSampleID             BuiltIn = 18
	BuiltInSamplePosition       BuiltIn = 19
	BuiltInSampleMask           BuiltIn = 20
	BuiltInFragDepth            BuiltIn = 22
	BuiltInHelperInvocation     BuiltIn = 23
	BuiltInNumWorkgroups        BuiltIn = 24
	BuiltInWorkgroupSize        BuiltIn = 25
	BuiltInWorkgroupID          BuiltIn = 26
	BuiltInLocalInvocationID    BuiltIn = 27
	BuiltInGlobalInvocationID   BuiltIn = 28
	BuiltInLocalInvocationIndex BuiltIn = 29
	BuiltInVertexIndex          BuiltIn = 42
	BuiltInInstanceIndex        BuiltIn = 43
)

// ExecutionModel represents a SPIR-V execution model.
type ExecutionModel uint32

// Common execution models.
const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
)

// ExecutionMode represents a SPIR-V execution mode.
type ExecutionMode uint32

// Common execution modes.
const (
	ExecutionModeInvocations        ExecutionMode = 0
	ExecutionModeSpacingEqual       ExecutionMode = 1
	ExecutionModeOriginUpperLeft    ExecutionMode = 7
	ExecutionModeOriginLowerLeft    ExecutionMode = 8
	ExecutionModeEarlyFragmentTests ExecutionMode = 9
	ExecutionModeDepthReplacing     ExecutionMode = 12
	ExecutionModeDepthGreater       ExecutionMode = 14
	ExecutionModeDepthLess          ExecutionMode = 15
	ExecutionModeDepthUnchanged     ExecutionMode = 16
	ExecutionModeLocalSize          ExecutionMode = 17
	ExecutionModeLocalSizeID        ExecutionMode = 38
)

// StorageClass represents a SPIR-V storage class.
type StorageClass uint32

// Common storage classes.
const (
	StorageClassUniformConstant StorageClass = 0
	StorageClassInput           StorageClass = 1
	StorageClassUniform         StorageClass = 2
	StorageClassOutput          StorageClass = 3
	StorageClassWorkgroup       StorageClass = 4
	StorageClassCrossWorkgroup  StorageClass = 5
	StorageClassPrivate         StorageClass = 6
	StorageClassFunction        StorageClass = 7
	StorageClassGeneric         StorageClass = 8
	StorageClassPushConstant    StorageClass = 9
	StorageClassAtomicCounter   StorageClass = 10
	StorageClassImage           StorageClass = 11
	StorageClassStorageBuffer   StorageClass = 12
)

// AddressingModel represents a SPIR-V addressing model.
type AddressingModel uint32

const (
	AddressingModelLogical    AddressingModel = 0
	AddressingModelPhysical32 AddressingModel = 1
	AddressingModelPhysical64 AddressingModel = 2
)

// MemoryModel represents a SPIR-V memory model.
type MemoryModel uint32

const (
	MemoryModelSimple  MemoryModel = 0
	MemoryModelGLSL450 MemoryModel = 1
	MemoryModelOpenCL  MemoryModel = 2
	MemoryModelVulkan  MemoryModel = 3
)

// FunctionControl is a bitmask of SPIR-V function control flags.
type FunctionControl uint32

const (
	FunctionControlNone       FunctionControl = 0x0
	FunctionControlInline     FunctionControl = 0x1
	FunctionControlDontInline FunctionControl = 0x2
	FunctionControlPure       FunctionControl = 0x4
	FunctionControlConst      FunctionControl = 0x8
)

// SelectionControl is a bitmask of flags for OpSelectionMerge.
type SelectionControl uint32

const (
	SelectionControlNone        SelectionControl = 0x0
	SelectionControlFlatten     SelectionControl = 0x1
	SelectionControlDontFlatten SelectionControl = 0x2
)

// LoopControl is a bitmask of flags for OpLoopMerge.
type LoopControl uint32

const (
	LoopControlNone       LoopControl = 0x0
	LoopControlUnroll     LoopControl = 0x1
	LoopControlDontUnroll LoopControl = 0x2
)

// Dim represents the dimensionality of an OpTypeImage.
type Dim uint32

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

// AccessQualifier represents an OpTypeImage access qualifier. Max signals
// "not present" per spec §4.2's OpTypeImage operand layout.
type AccessQualifier uint32

const (
	AccessQualifierReadOnly  AccessQualifier = 0
	AccessQualifierWriteOnly AccessQualifier = 1
	AccessQualifierReadWrite AccessQualifier = 2
	AccessQualifierMax       AccessQualifier = 0xFFFFFFFF
)

// ImageFormat represents a SPIR-V image format literal (for OpTypeImage).
type ImageFormat uint32

const (
	ImageFormatUnknown  ImageFormat = 0
	ImageFormatRgba32f  ImageFormat = 1
	ImageFormatRgba16f  ImageFormat = 2
	ImageFormatR32f     ImageFormat = 3
	ImageFormatRgba8    ImageFormat = 4
	ImageFormatRgba8Snorm ImageFormat = 5
	ImageFormatRg32f    ImageFormat = 6
	ImageFormatRg16f    ImageFormat = 7
	ImageFormatR16f     ImageFormat = 9
	ImageFormatRgba32i  ImageFormat = 21
	ImageFormatRgba32ui ImageFormat = 30
)

// GLSL.std.450 extended instruction set opcode constants.
const (
	GLSLstd450Round       uint32 = 1
	GLSLstd450RoundEven   uint32 = 2
	GLSLstd450Trunc       uint32 = 3
	GLSLstd450FAbs        uint32 = 4
	GLSLstd450SAbs        uint32 = 5
	GLSLstd450FSign       uint32 = 6
	GLSLstd450SSign       uint32 = 7
	GLSLstd450Floor       uint32 = 8
	GLSLstd450Ceil        uint32 = 9
	GLSLstd450Fract       uint32 = 10
	GLSLstd450Sin         uint32 = 13
	GLSLstd450Cos         uint32 = 14
	GLSLstd450Tan         uint32 = 15
	GLSLstd450Pow         uint32 = 26
	GLSLstd450Exp         uint32 = 27
	GLSLstd450Log         uint32 = 28
	GLSLstd450Exp2        uint32 = 29
	GLSLstd450Log2        uint32 = 30
	GLSLstd450Sqrt        uint32 = 31
	GLSLstd450InverseSqrt uint32 = 32
	GLSLstd450Determinant uint32 = 33
	GLSLstd450FMin        uint32 = 37
	GLSLstd450UMin        uint32 = 38
	GLSLstd450SMin        uint32 = 39
	GLSLstd450FMax        uint32 = 40
	GLSLstd450UMax        uint32 = 41
	GLSLstd450SMax        uint32 = 42
	GLSLstd450FClamp      uint32 = 43
	GLSLstd450UClamp      uint32 = 44
	GLSLstd450SClamp      uint32 = 45
	GLSLstd450FMix        uint32 = 46
	GLSLstd450Step        uint32 = 48
	GLSLstd450SmoothStep  uint32 = 49
	GLSLstd450Fma         uint32 = 50
	GLSLstd450Length      uint32 = 66
	GLSLstd450Distance    uint32 = 67
	GLSLstd450Cross       uint32 = 68
	GLSLstd450Normalize   uint32 = 69
	GLSLstd450Reflect     uint32 = 71
	GLSLstd450Refract     uint32 = 72
)
