// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/gogpu/spvc/spirv"
)

// MaxStructMembers is the largest member count a Struct may have.
const MaxStructMembers = 255

// StructMember is a named, indexed field of a Struct.
type StructMember struct {
	Name  string
	Type  Type
	Index uint32
}

// Struct is a named aggregate with ordered members. Construct it with
// NewStruct or StructBuilder so member indexes are validated.
type Struct struct {
	Name    string
	Members []StructMember
}

// NewStruct validates members and returns the struct description.
// Every member's Index must equal its position.
func NewStruct(name string, members ...StructMember) (Struct, error) {
	if _, err := safecast.Conv[uint8](len(members)); err != nil {
		return Struct{}, &Error{
			Kind:   ErrTooManyMembers,
			Op:     "struct " + name,
			Reason: fmt.Sprintf("%d members, at most %d allowed", len(members), MaxStructMembers),
			Err:    err,
		}
	}
	for i, m := range members {
		if int(m.Index) != i {
			return Struct{}, NewError(ErrMemberIndex, "struct "+name,
				fmt.Sprintf("member %q has index %d at position %d", m.Name, m.Index, i))
		}
	}
	return Struct{Name: name, Members: members}, nil
}

// Member returns the member with the given name.
func (t Struct) Member(name string) (StructMember, bool) {
	for _, m := range t.Members {
		if m.Name == name {
			return m, true
		}
	}
	return StructMember{}, false
}

// Register implements Type. Member types are registered first; on a cache
// miss the struct is emitted with names, offsets, matrix layout and Block.
func (t Struct) Register(s *Shader) (uint32, error) {
	ids := make([]uint32, len(t.Members))
	for i, m := range t.Members {
		id, err := m.Type.Register(s)
		if err != nil {
			return 0, err
		}
		ids[i] = id
	}

	return s.cachedType(structKey(t.Name, ids), func(s *Shader) (uint32, error) {
		offsets := s.opts.Layout.Offsets(t)

		id := s.builder.AddTypeStruct(ids...)
		s.builder.AddName(id, t.Name)
		for i, m := range t.Members {
			s.builder.AddMemberName(id, m.Index, m.Name)
			s.builder.AddMemberDecorate(id, m.Index, spirv.DecorationOffset, offsets[i])
			if extra, ok := m.Type.(structExtra); ok {
				extra.registerStructExtra(s, id, m.Index)
			}
		}
		s.builder.AddDecorate(id, spirv.DecorationBlock)

		s.checkLayout(t, offsets)
		return id, nil
	})
}

// Width is the sum of member widths.
func (t Struct) Width() uint32 {
	var width uint32
	for _, m := range t.Members {
		width += m.Type.Width()
	}
	return width
}

// Matches implements Type.
func (t Struct) Matches(other Type) bool {
	o, ok := other.(Struct)
	if !ok || t.Name != o.Name || len(t.Members) != len(o.Members) {
		return false
	}
	for i := range t.Members {
		if !t.Members[i].Type.Matches(o.Members[i].Type) {
			return false
		}
	}
	return true
}

// Display implements Type.
func (t Struct) Display() string {
	return "struct " + t.Name
}

func (Struct) isType() {}

// StructBuilder assembles a Struct, assigning member indexes in order.
type StructBuilder struct {
	name    string
	members []StructMember
}

// NewStructBuilder starts a struct description.
func NewStructBuilder(name string) *StructBuilder {
	return &StructBuilder{name: name}
}

// Field appends a member.
func (b *StructBuilder) Field(name string, ty Type) *StructBuilder {
	b.members = append(b.members, StructMember{
		Name:  name,
		Type:  ty,
		Index: uint32(len(b.members)), //nolint:gosec // bounded by NewStruct
	})
	return b
}

// Build validates and returns the struct.
func (b *StructBuilder) Build() (Struct, error) {
	return NewStruct(b.name, b.members...)
}
