package spirv

import (
	"encoding/binary"
	"fmt"
)

// HeaderWords is the number of words in the module header.
const HeaderWords = 5

// Module is a finished SPIR-V module.
type Module struct {
	words []uint32
}

// NewModule wraps an existing word stream. The header is validated.
func NewModule(words []uint32) (*Module, error) {
	if len(words) < HeaderWords {
		return nil, fmt.Errorf("spirv: module too small: %d words", len(words))
	}
	if words[0] != MagicNumber {
		return nil, fmt.Errorf("spirv: invalid magic number 0x%08X", words[0])
	}
	return &Module{words: words}, nil
}

// ModuleFromBytes decodes a little-endian SPIR-V binary.
func ModuleFromBytes(data []byte) (*Module, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("spirv: binary length %d is not a multiple of 4", len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return NewModule(words)
}

// Words returns the module as 32-bit words.
func (m *Module) Words() []uint32 {
	return m.words
}

// Bytes returns the module as a little-endian binary.
func (m *Module) Bytes() []byte {
	buffer := make([]byte, len(m.words)*4)
	for i, word := range m.words {
		binary.LittleEndian.PutUint32(buffer[i*4:], word)
	}
	return buffer
}

// Version returns the SPIR-V version from the header.
func (m *Module) Version() Version {
	return Version{Major: uint8(m.words[1] >> 16), Minor: uint8(m.words[1] >> 8)}
}

// Bound returns the ID bound from the header.
func (m *Module) Bound() uint32 {
	return m.words[3]
}

// Instructions decodes the instruction stream following the header.
func (m *Module) Instructions() ([]Instruction, error) {
	return Parse(m.words[HeaderWords:])
}

// EntryPoint describes a decoded OpEntryPoint.
type EntryPoint struct {
	Model      ExecutionModel
	Function   uint32
	Name       string
	Interfaces []uint32
}

// EntryPoints returns all OpEntryPoint instructions of the module.
func (m *Module) EntryPoints() ([]EntryPoint, error) {
	insts, err := m.Instructions()
	if err != nil {
		return nil, err
	}

	var out []EntryPoint
	for _, inst := range insts {
		if inst.Opcode != OpEntryPoint {
			continue
		}
		if len(inst.Words) < 3 {
			return nil, fmt.Errorf("spirv: truncated OpEntryPoint")
		}
		name, n := DecodeString(inst.Words[2:])
		out = append(out, EntryPoint{
			Model:      ExecutionModel(inst.Words[0]),
			Function:   inst.Words[1],
			Name:       name,
			Interfaces: inst.Words[2+n:],
		})
	}
	return out, nil
}

// Parse decodes a stream of instructions (without header).
func Parse(words []uint32) ([]Instruction, error) {
	var out []Instruction
	for offset := 0; offset < len(words); {
		word := words[offset]
		opcode := OpCode(word & 0xFFFF)
		wordCount := int(word >> 16)

		if wordCount == 0 || offset+wordCount > len(words) {
			return nil, fmt.Errorf("spirv: invalid word count %d at word %d", wordCount, offset)
		}

		out = append(out, Instruction{
			Opcode: opcode,
			Words:  words[offset+1 : offset+wordCount],
		})
		offset += wordCount
	}
	return out, nil
}

// DecodeString decodes a null-terminated literal string and returns it
// with the number of words it occupies.
func DecodeString(words []uint32) (string, int) {
	var bytes []byte
	for i, word := range words {
		for shift := 0; shift < 32; shift += 8 {
			c := byte(word >> shift)
			if c == 0 {
				return string(bytes), i + 1
			}
			bytes = append(bytes, c)
		}
	}
	return string(bytes), len(words)
}
