// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shaders

import (
	"fmt"

	"github.com/gogpu/spvc/glslstruct"
	"github.com/gogpu/spvc/shader"
)

// Global holds the per-frame camera matrices.
type Global struct {
	Camera     [4][4]float32
	View       [4][4]float32
	Projection [4][4]float32
}

// Model holds per-draw material and transform data.
type Model struct {
	Model               [4][4]float32
	BaseColorFactor     [4]float32
	UseBaseColorTexture bool
}

// GlobalStruct returns the block description of Global.
func GlobalStruct() (shader.Struct, error) {
	return glslstruct.Of[Global]()
}

// ModelStruct returns the block description of Model.
func ModelStruct() (shader.Struct, error) {
	return glslstruct.Of[Model]()
}

// loadField reads one member of a uniform block.
func loadField(block shader.Op, st shader.Struct, name string) (*shader.LoadOp, error) {
	member, err := field(st, name)
	if err != nil {
		return nil, err
	}
	ptr, err := shader.Access(block, member)
	if err != nil {
		return nil, err
	}
	return shader.Load(ptr)
}

// field looks up a struct member by name.
func field(st shader.Struct, name string) (shader.StructMember, error) {
	member, ok := st.Member(name)
	if !ok {
		return shader.StructMember{}, fmt.Errorf("struct %s has no member %q", st.Name, name)
	}
	return member, nil
}

// mulChain multiplies ops left to right.
func mulChain(ops ...shader.Op) (shader.Op, error) {
	acc := ops[0]
	for _, op := range ops[1:] {
		product, err := shader.Mul(acc, op)
		if err != nil {
			return nil, err
		}
		acc = product
	}
	return acc, nil
}
