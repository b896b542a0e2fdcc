// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"
	"io"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
)

// InterfaceKind classifies an entry point interface variable.
type InterfaceKind uint8

const (
	InterfaceInput InterfaceKind = iota
	InterfaceOutput
	InterfaceUniform
	InterfaceBuiltIn
)

func (k InterfaceKind) String() string {
	switch k {
	case InterfaceInput:
		return "input"
	case InterfaceOutput:
		return "output"
	case InterfaceUniform:
		return "uniform"
	case InterfaceBuiltIn:
		return "builtin"
	default:
		return "unknown"
	}
}

// Interface describes how a variable is bound for the host API.
type Interface struct {
	Kind     InterfaceKind
	Name     string
	Type     Type
	Location uint32
	Set      uint32
	Binding  uint32
}

// Interfacer is implemented by nodes that can appear in an entry point
// interface list.
type Interfacer interface {
	Interface() (Interface, bool)
}

// Format is a vertex attribute format name.
type Format string

const (
	FormatR32G32SFloat       Format = "R32G32_SFLOAT"
	FormatR32G32B32SFloat    Format = "R32G32B32_SFLOAT"
	FormatR32G32B32A32SFloat Format = "R32G32B32A32_SFLOAT"
)

// FormatOf returns the attribute format of a float vector type.
func FormatOf(t Type) (Format, bool) {
	v, ok := t.(Vector)
	if !ok || !v.Component.Matches(Float{}) {
		return "", false
	}
	switch v.Count {
	case 2:
		return FormatR32G32SFloat, true
	case 3:
		return FormatR32G32B32SFloat, true
	case 4:
		return FormatR32G32B32A32SFloat, true
	}
	return "", false
}

// InterfaceEntry is an input or output attribute.
type InterfaceEntry struct {
	Name     string `msgpack:"name"`
	Location uint32 `msgpack:"location"`
	Format   Format `msgpack:"format"`
}

// Descriptor is a uniform buffer binding visible to a shader stage.
type Descriptor struct {
	Name     string   `msgpack:"name"`
	Set      uint32   `msgpack:"set"`
	Binding  uint32   `msgpack:"binding"`
	Type     string   `msgpack:"type"`
	Count    uint32   `msgpack:"count"`
	Stages   []string `msgpack:"stages"`
	ReadOnly bool     `msgpack:"readonly"`
	Size     uint32   `msgpack:"size"`
}

// EntryPointInterface is the host-facing description of an entry point.
type EntryPointInterface struct {
	Name        string           `msgpack:"name"`
	Stage       string           `msgpack:"stage"`
	Inputs      []InterfaceEntry `msgpack:"inputs"`
	Outputs     []InterfaceEntry `msgpack:"outputs"`
	Descriptors []Descriptor     `msgpack:"descriptors"`
	NumSets     uint32           `msgpack:"num_sets"`
}

// Descriptor returns the descriptor at (set, binding).
func (e *EntryPointInterface) Descriptor(set, binding uint32) (Descriptor, bool) {
	for _, d := range e.Descriptors {
		if d.Set == set && d.Binding == binding {
			return d, true
		}
	}
	return Descriptor{}, false
}

func interfaceFromOps(name string, kind ShaderKind, ops []Op) (EntryPointInterface, error) {
	out := EntryPointInterface{Name: name, Stage: kind.String()}
	bound := make(map[[2]uint32]Interface)

	for _, op := range ops {
		ifc, ok := op.(Interfacer)
		if !ok {
			return out, NewError(ErrNotInterface, "entry point "+name, "node is not a variable", op.Type().Display())
		}
		iface, ok := ifc.Interface()
		if !ok {
			return out, NewError(ErrNotInterface, "entry point "+name, "variable has no binding metadata", op.Type().Display())
		}

		switch iface.Kind {
		case InterfaceInput, InterfaceOutput:
			format, ok := FormatOf(iface.Type)
			if !ok {
				return out, NewError(ErrIllegalInterfaceType, "entry point "+name,
					fmt.Sprintf("%s %q has no attribute format", iface.Kind, iface.Name), iface.Type.Display())
			}
			entry := InterfaceEntry{Name: iface.Name, Location: iface.Location, Format: format}
			if iface.Kind == InterfaceInput {
				out.Inputs = append(out.Inputs, entry)
			} else {
				out.Outputs = append(out.Outputs, entry)
			}
		case InterfaceUniform:
			if _, ok := iface.Type.(Struct); !ok {
				return out, NewError(ErrIllegalInterfaceType, "entry point "+name,
					fmt.Sprintf("uniform %q is not a block", iface.Name), iface.Type.Display())
			}
			slot := [2]uint32{iface.Set, iface.Binding}
			if other, ok := bound[slot]; ok {
				if other.Name == iface.Name && other.Type.Matches(iface.Type) {
					continue
				}
				return out, NewError(ErrNotInterface, "entry point "+name,
					fmt.Sprintf("uniforms %q and %q share set %d binding %d", other.Name, iface.Name, iface.Set, iface.Binding))
			}
			bound[slot] = iface
			out.Descriptors = append(out.Descriptors, Descriptor{
				Name:     iface.Name,
				Set:      iface.Set,
				Binding:  iface.Binding,
				Type:     "uniform_buffer",
				Count:    1,
				Stages:   []string{kind.String()},
				ReadOnly: true,
				Size:     LayoutStd140.Size(iface.Type),
			})
			out.NumSets = max(out.NumSets, iface.Set+1)
		case InterfaceBuiltIn:
		}
	}

	sortEntries := func(a, b InterfaceEntry) int { return int(a.Location) - int(b.Location) }
	slices.SortStableFunc(out.Inputs, sortEntries)
	slices.SortStableFunc(out.Outputs, sortEntries)
	slices.SortStableFunc(out.Descriptors, func(a, b Descriptor) int {
		if a.Set != b.Set {
			return int(a.Set) - int(b.Set)
		}
		return int(a.Binding) - int(b.Binding)
	})
	return out, nil
}

// EncodeInterfaces writes entry point interfaces as MessagePack.
func EncodeInterfaces(w io.Writer, interfaces []EntryPointInterface) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(interfaces); err != nil {
		return fmt.Errorf("encode interfaces: %w", err)
	}
	return nil
}

// DecodeInterfaces reads entry point interfaces written by EncodeInterfaces.
func DecodeInterfaces(r io.Reader) ([]EntryPointInterface, error) {
	var interfaces []EntryPointInterface
	if err := msgpack.NewDecoder(r).Decode(&interfaces); err != nil {
		return nil, fmt.Errorf("decode interfaces: %w", err)
	}
	return interfaces, nil
}
