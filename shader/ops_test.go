// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/spvc/spirv"
)

func TestMul_MatrixLaw(t *testing.T) {
	sizes := []uint32{2, 3, 4}
	for _, r1 := range sizes {
		for _, c1 := range sizes {
			for _, r2 := range sizes {
				for _, c2 := range sizes {
					name := fmt.Sprintf("%dx%d*%dx%d", r1, c1, r2, c2)
					t.Run(name, func(t *testing.T) {
						op, err := Mul(matrix(r1, c1), matrix(r2, c2))
						if c1 != r2 {
							e := requireKind(t, err, ErrMatrixMulMismatch)
							assert.Equal(t, [2]uint32{c1, r2}, e.Dims)
							return
						}
						require.NoError(t, err)
						dims, ok := matrixDims(op.Type())
						require.True(t, ok)
						assert.Equal(t, MatrixDims{Columns: c2, Rows: r1}, dims)
					})
				}
			}
		}
	}
}

func TestMul_MatrixVectorLaw(t *testing.T) {
	sizes := []uint32{2, 3, 4}
	for _, rows := range sizes {
		for _, cols := range sizes {
			for _, n := range sizes {
				op, err := Mul(matrix(rows, cols), vector(n))
				if cols != n {
					e := requireKind(t, err, ErrMatrixVectorMulMismatch)
					assert.Equal(t, [2]uint32{cols, n}, e.Dims)
					continue
				}
				require.NoError(t, err)
				assert.True(t, op.Type().Matches(Vector{Component: Float{}, Count: rows}),
					"mat%dx%d * vec%d = %s", rows, cols, n, op.Type().Display())
			}
		}
	}
}

func TestMul_ArgumentMismatch(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs Op
	}{
		{"vector lhs", vector(4), matrix(4, 4)},
		{"scalar rhs", matrix(4, 4), valueOp{t: Float{}}},
		{"bool lhs", valueOp{t: Bool{}}, vector(4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Mul(tt.lhs, tt.rhs)
			e := requireKind(t, err, ErrArgumentMismatch)
			assert.Equal(t, []string{tt.lhs.Type().Display(), tt.rhs.Type().Display()}, e.Args)
		})
	}
}

func TestTranspose(t *testing.T) {
	sizes := []uint32{2, 3, 4}
	for _, rows := range sizes {
		for _, cols := range sizes {
			m := matrix(rows, cols)
			once, err := Transpose(m)
			require.NoError(t, err)
			twice, err := Transpose(once)
			require.NoError(t, err)

			dims, _ := matrixDims(once.Type())
			assert.Equal(t, MatrixDims{Columns: rows, Rows: cols}, dims)
			assert.True(t, twice.Type().Matches(m.Type()))
		}
	}

	_, err := Transpose(vector(4))
	e := requireKind(t, err, ErrExpectedMatrix)
	assert.Equal(t, "transpose", e.Op)
	assert.Equal(t, []string{"vec4[float]"}, e.Args)
}

func TestStore_TypeCheck(t *testing.T) {
	out := NewOutputVar("color", Vec4(), 0)
	in := NewInputVar("position", Vec3(), 0)

	value, err := Load(in)
	require.NoError(t, err)

	_, err = Store(out, value)
	e := requireKind(t, err, ErrStoreMismatch)
	assert.Equal(t, []string{"vec4[float]", "vec3[float]"}, e.Args)

	expanded, err := Vec3ToVec4(value, 1.0)
	require.NoError(t, err)
	_, err = Store(out, expanded)
	assert.NoError(t, err)

	_, err = Store(value, expanded)
	requireKind(t, err, ErrExpectedPointer)
}

func TestLoad_RequiresPointer(t *testing.T) {
	_, err := Load(vector(3))
	requireKind(t, err, ErrExpectedPointer)

	op, err := Load(NewInputVar("n", Vec3(), 1))
	require.NoError(t, err)
	assert.True(t, op.Type().Matches(Vec3()))
}

func TestExpand_Validation(t *testing.T) {
	_, err := Vec3ToVec4(vector(2), 1.0)
	requireKind(t, err, ErrVecMismatch)
	_, err = Vec2ToVec4(vector(3), 0, 1)
	requireKind(t, err, ErrVecMismatch)
	_, err = Vec2ToVec3(valueOp{t: Vector{Component: UnsignedInteger{}, Count: 2}}, 0)
	requireKind(t, err, ErrVecMismatch)

	op, err := Vec2ToVec3(vector(2), 0)
	require.NoError(t, err)
	assert.True(t, op.Type().Matches(Vec3()))
	op, err = Vec2ToVec4(vector(2), 0, 1)
	require.NoError(t, err)
	assert.True(t, op.Type().Matches(Vec4()))
}

func TestExpand_Emission(t *testing.T) {
	s := New(DefaultOptions())
	in := NewInputVar("position", Vec3(), 0)
	out := NewOutputVar("position4", Vec4(), 0)

	value, err := Load(in)
	require.NoError(t, err)
	expanded, err := Vec3ToVec4(value, 1.0)
	require.NoError(t, err)
	store, err := Store(out, expanded)
	require.NoError(t, err)

	main := NewFunction("main").Add(store).ReturnsVoid()
	require.NoError(t, s.EntryPoint(Vertex, main, in, out))

	insts := instructions(t, s)
	extracts := filter(insts, spirv.OpCompositeExtract)
	require.Len(t, extracts, 3)
	for i, inst := range extracts {
		assert.Equal(t, uint32(i), inst.Words[3], "extract literal index")
	}

	constructs := filter(insts, spirv.OpCompositeConstruct)
	require.Len(t, constructs, 1)
	constituents := constructs[0].Words[2:]
	require.Len(t, constituents, 4)
	for i := range 3 {
		assert.Equal(t, extracts[i].Words[1], constituents[i])
	}

	var oneID uint32
	for _, c := range filter(insts, spirv.OpConstant) {
		if c.Words[2] == math.Float32bits(1.0) {
			oneID = c.Words[1]
		}
	}
	require.NotZero(t, oneID)
	assert.Equal(t, oneID, constituents[3])
}

func TestAccess_Chain(t *testing.T) {
	inner, err := NewStructBuilder("Light").
		Field("color", Vec4()).
		Field("transform", Mat4()).
		Build()
	require.NoError(t, err)
	outer, err := NewStructBuilder("Scene").
		Field("ambient", Vec4()).
		Field("light", inner).
		Build()
	require.NoError(t, err)

	scene := NewUniformVar("scene", outer, 0, 0)
	light, _ := outer.Member("light")
	transform, _ := inner.Member("transform")

	lightPtr, err := Access(scene, light)
	require.NoError(t, err)
	transformPtr, err := Access(lightPtr, transform)
	require.NoError(t, err)

	assert.Equal(t, []uint32{1}, lightPtr.Indices(), "extending a chain must not mutate its base")
	assert.Equal(t, []uint32{1, 1}, transformPtr.Indices())
	assert.True(t, transformPtr.Type().Matches(Pointer{Storage: StorageUniform, Pointee: Mat4()}))

	value, err := Load(transformPtr)
	require.NoError(t, err)

	s := New(DefaultOptions())
	fn := NewFunction("get_transform").Returns(value)
	require.NoError(t, s.EntryPoint(Vertex, fn, scene))

	insts := instructions(t, s)
	chains := filter(insts, spirv.OpAccessChain)
	require.Len(t, chains, 1)
	assert.Len(t, chains[0].Words, 5, "result type, result, base and two indices")
	assert.Len(t, filter(insts, spirv.OpLoad), 1)
}

func TestAccess_Errors(t *testing.T) {
	st, err := NewStructBuilder("Global").Field("camera", Mat4()).Build()
	require.NoError(t, err)
	camera, _ := st.Member("camera")

	_, err = Access(valueOp{t: st}, camera)
	requireKind(t, err, ErrNoStorageClass)

	_, err = Access(NewInputVar("p", Vec3(), 0), camera)
	requireKind(t, err, ErrArgumentMismatch)

	_, err = Access(NewUniformVar("g", st, 0, 0), StructMember{Name: "view", Type: Mat4(), Index: 1})
	requireKind(t, err, ErrArgumentMismatch)
}
