package spirv

import (
	"fmt"
	"io"
	"strings"
)

// Disassembler renders SPIR-V words in .spvasm text format.
//
// The optional hooks decorate opcode names and IDs, e.g. for terminal colour.
type Disassembler struct {
	Opcode func(string) string
	ID     func(string) string
}

// Disassemble renders words with a plain Disassembler.
func Disassemble(w io.Writer, words []uint32) error {
	return (&Disassembler{}).Disassemble(w, words)
}

// DisassembleString renders words to a string.
func DisassembleString(words []uint32) (string, error) {
	var sb strings.Builder
	if err := Disassemble(&sb, words); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Disassemble writes the header comment block and one line per instruction.
func (d *Disassembler) Disassemble(w io.Writer, words []uint32) error {
	module, err := NewModule(words)
	if err != nil {
		return err
	}

	version := module.Version()
	fmt.Fprintf(w, "; SPIR-V\n")
	fmt.Fprintf(w, "; Version: %d.%d\n", version.Major, version.Minor)
	fmt.Fprintf(w, "; Generator: 0x%08X\n", words[2])
	fmt.Fprintf(w, "; Bound: %d\n", module.Bound())
	fmt.Fprintf(w, "; Schema: %d\n", words[4])
	fmt.Fprintln(w)

	insts, err := module.Instructions()
	if err != nil {
		return err
	}
	for _, inst := range insts {
		d.printInstruction(w, inst)
	}
	return nil
}

func (d *Disassembler) id(n uint32) string {
	s := fmt.Sprintf("%%_%d", n)
	if d.ID != nil {
		return d.ID(s)
	}
	return s
}

func (d *Disassembler) name(op OpCode) string {
	s := op.String()
	if d.Opcode != nil {
		return d.Opcode(s)
	}
	return s
}

func (d *Disassembler) ids(words []uint32) string {
	var sb strings.Builder
	for _, word := range words {
		sb.WriteByte(' ')
		sb.WriteString(d.id(word))
	}
	return sb.String()
}

func literals(words []uint32) string {
	var sb strings.Builder
	for _, word := range words {
		fmt.Fprintf(&sb, " %d", word)
	}
	return sb.String()
}

//nolint:gocyclo,cyclop,funlen // switch cases for SPIR-V opcodes
func (d *Disassembler) printInstruction(w io.Writer, inst Instruction) {
	ops := inst.Words
	name := d.name(inst.Opcode)

	switch inst.Opcode {
	case OpCapability:
		fmt.Fprintf(w, "               %s %s\n", name, lookup(capabilityNames, ops[0]))

	case OpExtInstImport:
		str, _ := DecodeString(ops[1:])
		fmt.Fprintf(w, "         %s = %s \"%s\"\n", d.id(ops[0]), name, str)

	case OpMemoryModel:
		fmt.Fprintf(w, "               %s %s %s\n", name,
			lookup(addressingModelNames, ops[0]), lookup(memoryModelNames, ops[1]))

	case OpEntryPoint:
		str, n := DecodeString(ops[2:])
		fmt.Fprintf(w, "               %s %s %s \"%s\"%s\n", name,
			lookup(executionModelNames, ops[0]), d.id(ops[1]), str, d.ids(ops[2+n:]))

	case OpExecutionMode:
		fmt.Fprintf(w, "               %s %s %s%s\n", name, d.id(ops[0]),
			lookup(executionModeNames, ops[1]), literals(ops[2:]))

	case OpName:
		str, _ := DecodeString(ops[1:])
		fmt.Fprintf(w, "               %s %s \"%s\"\n", name, d.id(ops[0]), str)

	case OpMemberName:
		str, _ := DecodeString(ops[2:])
		fmt.Fprintf(w, "               %s %s %d \"%s\"\n", name, d.id(ops[0]), ops[1], str)

	case OpDecorate:
		dec := lookup(decorationNames, ops[1])
		if Decoration(ops[1]) == DecorationBuiltIn && len(ops) > 2 {
			fmt.Fprintf(w, "               %s %s %s %s\n", name, d.id(ops[0]), dec, lookup(builtInNames, ops[2]))
		} else {
			fmt.Fprintf(w, "               %s %s %s%s\n", name, d.id(ops[0]), dec, literals(ops[2:]))
		}

	case OpMemberDecorate:
		fmt.Fprintf(w, "               %s %s %d %s%s\n", name, d.id(ops[0]), ops[1],
			lookup(decorationNames, ops[2]), literals(ops[3:]))

	case OpTypeVoid, OpTypeBool, OpLabel:
		fmt.Fprintf(w, "         %s = %s\n", d.id(ops[0]), name)

	case OpTypeInt:
		fmt.Fprintf(w, "         %s = %s %d %d\n", d.id(ops[0]), name, ops[1], ops[2])

	case OpTypeFloat:
		fmt.Fprintf(w, "         %s = %s %d\n", d.id(ops[0]), name, ops[1])

	case OpTypeVector, OpTypeMatrix:
		fmt.Fprintf(w, "         %s = %s %s %d\n", d.id(ops[0]), name, d.id(ops[1]), ops[2])

	case OpTypeStruct:
		fmt.Fprintf(w, "         %s = %s%s\n", d.id(ops[0]), name, d.ids(ops[1:]))

	case OpTypePointer:
		fmt.Fprintf(w, "         %s = %s %s %s\n", d.id(ops[0]), name,
			lookup(storageClassNames, ops[1]), d.id(ops[2]))

	case OpTypeFunction:
		fmt.Fprintf(w, "         %s = %s%s\n", d.id(ops[0]), name, d.ids(ops[1:]))

	case OpConstant:
		fmt.Fprintf(w, "         %s = %s %s%s\n", d.id(ops[1]), name, d.id(ops[0]), literals(ops[2:]))

	case OpFunction:
		fmt.Fprintf(w, "         %s = %s %s None %s\n", d.id(ops[1]), name, d.id(ops[0]), d.id(ops[3]))

	case OpFunctionEnd, OpReturn:
		fmt.Fprintf(w, "               %s\n", name)

	case OpVariable:
		fmt.Fprintf(w, "         %s = %s %s %s\n", d.id(ops[1]), name, d.id(ops[0]),
			lookup(storageClassNames, ops[2]))

	case OpStore:
		fmt.Fprintf(w, "               %s %s %s\n", name, d.id(ops[0]), d.id(ops[1]))

	case OpReturnValue, OpBranch:
		fmt.Fprintf(w, "               %s %s\n", name, d.id(ops[0]))

	case OpCompositeExtract:
		fmt.Fprintf(w, "         %s = %s %s %s%s\n", d.id(ops[1]), name, d.id(ops[0]), d.id(ops[2]), literals(ops[3:]))

	default:
		d.printGenericInstruction(w, name, ops)
	}
}

// printGenericInstruction prints "result = Op type operands..." for
// instructions that carry a result type and ID, and raw IDs otherwise.
func (d *Disassembler) printGenericInstruction(w io.Writer, name string, ops []uint32) {
	switch {
	case len(ops) >= 2:
		fmt.Fprintf(w, "         %s = %s %s%s\n", d.id(ops[1]), name, d.id(ops[0]), d.ids(ops[2:]))
	default:
		fmt.Fprintf(w, "               %s%s\n", name, d.ids(ops))
	}
}
