// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import "fmt"

// AccessOp is a pointer to a struct member, reached through an access
// chain from a base variable. Load it to read the member.
type AccessOp struct {
	base    Op
	indices []uint32
	result  Pointer
}

// Access returns a pointer to member of the struct behind base. Accessing
// a member of an AccessOp extends its chain instead of nesting.
func Access(base Op, member StructMember) (*AccessOp, error) {
	ptr, ok := base.Type().(Pointer)
	if !ok {
		return nil, NewError(ErrNoStorageClass, "access", "base has no storage class", base.Type().Display())
	}

	st, ok := ptr.Pointee.(Struct)
	if !ok {
		return nil, NewError(ErrArgumentMismatch, "access", "base is not a struct", ptr.Pointee.Display())
	}
	if int(member.Index) >= len(st.Members) || !st.Members[member.Index].Type.Matches(member.Type) {
		return nil, NewError(ErrArgumentMismatch, "access",
			fmt.Sprintf("member %q (index %d) not found", member.Name, member.Index), st.Display())
	}

	result := Pointer{Storage: ptr.Storage, Pointee: member.Type}

	if chain, ok := base.(*AccessOp); ok {
		indices := make([]uint32, len(chain.indices), len(chain.indices)+1)
		copy(indices, chain.indices)
		return &AccessOp{base: chain.base, indices: append(indices, member.Index), result: result}, nil
	}
	return &AccessOp{base: base, indices: []uint32{member.Index}, result: result}, nil
}

// Indices returns the access chain.
func (o *AccessOp) Indices() []uint32 { return o.indices }

// Type implements Op.
func (o *AccessOp) Type() Type { return o.result }

// Register implements Op.
func (o *AccessOp) Register(s *Shader) (RegOp, error) {
	base, err := o.base.Register(s)
	if err != nil {
		return nil, err
	}
	pointerType, err := o.result.Register(s)
	if err != nil {
		return nil, err
	}
	consts := make([]uint32, len(o.indices))
	for i, index := range o.indices {
		if consts[i], err = s.constantU32(index); err != nil {
			return nil, err
		}
	}
	return &accessReg{base: base, pointerType: pointerType, indices: consts}, nil
}

type accessReg struct {
	base        RegOp
	pointerType uint32
	indices     []uint32
}

func (r *accessReg) OpID(s *Shader) (uint32, bool, error) {
	base, err := valueID(s, "access", r.base)
	if err != nil {
		return 0, false, err
	}
	id, err := s.builder.AddAccessChain(r.pointerType, base, r.indices...)
	if err != nil {
		return 0, false, encoderError(err)
	}
	return id, true, nil
}
