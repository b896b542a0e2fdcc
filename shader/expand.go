// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

// ExpandOp widens a float vector with constant trailing components.
type ExpandOp struct {
	source    Op
	from      uint32
	result    Vector
	constants []float32
}

// Vec2ToVec3 widens a vec2 to a vec3 with z as the third component.
func Vec2ToVec3(source Op, z float32) (*ExpandOp, error) {
	return expand("vec2_to_vec3", source, 2, z)
}

// Vec2ToVec4 widens a vec2 to a vec4 with z and w as trailing components.
func Vec2ToVec4(source Op, z, w float32) (*ExpandOp, error) {
	return expand("vec2_to_vec4", source, 2, z, w)
}

// Vec3ToVec4 widens a vec3 to a vec4 with w as the fourth component,
// typically 1.0 for positions.
func Vec3ToVec4(source Op, w float32) (*ExpandOp, error) {
	return expand("vec3_to_vec4", source, 3, w)
}

func expand(name string, source Op, from uint32, constants ...float32) (*ExpandOp, error) {
	v, ok := source.Type().(Vector)
	if !ok || v.Count != from || !v.Component.Matches(Float{}) {
		return nil, NewError(ErrVecMismatch, name, "unexpected source vector", source.Type().Display())
	}
	to := from + uint32(len(constants)) //nolint:gosec // at most two constants
	return &ExpandOp{
		source:    source,
		from:      from,
		result:    Vector{Component: Float{}, Count: to},
		constants: constants,
	}, nil
}

// Type implements Op.
func (o *ExpandOp) Type() Type { return o.result }

// Register implements Op.
func (o *ExpandOp) Register(s *Shader) (RegOp, error) {
	componentType, err := o.result.Component.Register(s)
	if err != nil {
		return nil, err
	}
	resultType, err := o.result.Register(s)
	if err != nil {
		return nil, err
	}
	source, err := o.source.Register(s)
	if err != nil {
		return nil, err
	}
	consts := make([]uint32, len(o.constants))
	for i, c := range o.constants {
		if consts[i], err = s.constantF32(c); err != nil {
			return nil, err
		}
	}
	return &expandReg{
		componentType: componentType,
		resultType:    resultType,
		source:        source,
		size:          o.from,
		constants:     consts,
	}, nil
}

type expandReg struct {
	componentType uint32
	resultType    uint32
	source        RegOp
	size          uint32
	constants     []uint32
}

func (r *expandReg) OpID(s *Shader) (uint32, bool, error) {
	composite, err := valueID(s, "expand", r.source)
	if err != nil {
		return 0, false, err
	}

	constituents := make([]uint32, 0, int(r.size)+len(r.constants))
	for i := range r.size {
		id, err := s.builder.AddCompositeExtract(r.componentType, composite, i)
		if err != nil {
			return 0, false, encoderError(err)
		}
		constituents = append(constituents, id)
	}
	constituents = append(constituents, r.constants...)

	id, err := s.builder.AddCompositeConstruct(r.resultType, constituents...)
	if err != nil {
		return 0, false, encoderError(err)
	}
	return id, true, nil
}
