package spirv

import "fmt"

// ExtInst emits an OpExtInst call into b against the imported set, per
// spec §6: set is a handle from Module.GetExtInstImport, instruction is
// the extended instruction set's opcode, and operands are its arguments
// in order.
func (b BasicBlock) ExtInst(set InstructionHandle, instruction uint32, resultType TypeHandle, operands ...InstructionHandle) (InstructionHandle, error) {
	instr, h, err := b.Emplace(OpExtInst)
	if err != nil {
		return 0, err
	}
	instr.SetResultType(resultType)
	instr.AddOperandInstruction(set)
	instr.AddOperandLiteral(instruction)
	for _, op := range operands {
		instr.AddOperandInstruction(op)
	}
	return h, nil
}

// GLSLUnaryOps, GLSLBinaryOps, and GLSLTernaryOps name the GLSL.std.450
// extended instructions by arity, so callers (and GLSLUnary/GLSLBinary/
// GLSLTernary below) look an opcode up by name instead of this package
// hand-writing a dedicated Go method per instruction.
var GLSLUnaryOps = map[string]uint32{
	"Round": GLSLstd450Round, "RoundEven": GLSLstd450RoundEven, "Trunc": GLSLstd450Trunc,
	"FAbs": GLSLstd450FAbs, "SAbs": GLSLstd450SAbs, "FSign": GLSLstd450FSign, "SSign": GLSLstd450SSign,
	"Floor": GLSLstd450Floor, "Ceil": GLSLstd450Ceil, "Fract": GLSLstd450Fract,
	"Sin": GLSLstd450Sin, "Cos": GLSLstd450Cos, "Tan": GLSLstd450Tan,
	"Exp": GLSLstd450Exp, "Log": GLSLstd450Log, "Exp2": GLSLstd450Exp2, "Log2": GLSLstd450Log2,
	"Sqrt": GLSLstd450Sqrt, "InverseSqrt": GLSLstd450InverseSqrt, "Determinant": GLSLstd450Determinant,
	"Normalize": GLSLstd450Normalize, "Length": GLSLstd450Length,
}

var GLSLBinaryOps = map[string]uint32{
	"Pow": GLSLstd450Pow, "FMin": GLSLstd450FMin, "UMin": GLSLstd450UMin, "SMin": GLSLstd450SMin,
	"FMax": GLSLstd450FMax, "UMax": GLSLstd450UMax, "SMax": GLSLstd450SMax,
	"Step": GLSLstd450Step, "Distance": GLSLstd450Distance, "Cross": GLSLstd450Cross,
	"Reflect": GLSLstd450Reflect,
}

var GLSLTernaryOps = map[string]uint32{
	"FClamp": GLSLstd450FClamp, "UClamp": GLSLstd450UClamp, "SClamp": GLSLstd450SClamp,
	"FMix": GLSLstd450FMix, "SmoothStep": GLSLstd450SmoothStep, "Fma": GLSLstd450Fma,
	"Refract": GLSLstd450Refract,
}

// GLSLUnary calls a one-argument GLSL.std.450 extended instruction by
// name (a key of GLSLUnaryOps).
func (b BasicBlock) GLSLUnary(set InstructionHandle, name string, resultType TypeHandle, x InstructionHandle) (InstructionHandle, error) {
	op, ok := GLSLUnaryOps[name]
	if !ok {
		return 0, fmt.Errorf("spirv: unknown GLSL.std.450 unary instruction %q: %w", name, ErrUnimplementedOpcode)
	}
	return b.ExtInst(set, op, resultType, x)
}

// GLSLBinary calls a two-argument GLSL.std.450 extended instruction by
// name (a key of GLSLBinaryOps).
func (b BasicBlock) GLSLBinary(set InstructionHandle, name string, resultType TypeHandle, x, y InstructionHandle) (InstructionHandle, error) {
	op, ok := GLSLBinaryOps[name]
	if !ok {
		return 0, fmt.Errorf("spirv: unknown GLSL.std.450 binary instruction %q: %w", name, ErrUnimplementedOpcode)
	}
	return b.ExtInst(set, op, resultType, x, y)
}

// GLSLTernary calls a three-argument GLSL.std.450 extended instruction by
// name (a key of GLSLTernaryOps).
func (b BasicBlock) GLSLTernary(set InstructionHandle, name string, resultType TypeHandle, x, y, z InstructionHandle) (InstructionHandle, error) {
	op, ok := GLSLTernaryOps[name]
	if !ok {
		return 0, fmt.Errorf("spirv: unknown GLSL.std.450 ternary instruction %q: %w", name, ErrUnimplementedOpcode)
	}
	return b.ExtInst(set, op, resultType, x, y, z)
}
