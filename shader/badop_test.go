// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeferred_ValidCompositionIsPlainOp(t *testing.T) {
	op := DeferredMul(matrix(4, 4), vector(4))
	_, ok := op.(*MulOp)
	assert.True(t, ok, "valid composition must not produce a BadOp, got %T", op)
}

func TestBadOp_RootCause(t *testing.T) {
	bad := DeferredTranspose(vector(3))
	mid := DeferredMul(bad, matrix(4, 4))
	outer := DeferredMul(mid, vector(4))

	for _, op := range []Op{bad, mid, outer} {
		_, ok := op.(*BadOp)
		require.True(t, ok, "%T", op)
		assert.IsType(t, NoType{}, op.Type())
	}

	_, err := outer.Register(New(DefaultOptions()))
	e := requireKind(t, err, ErrBadOp)
	assert.Equal(t, "transpose", e.Op, "the deepest failure must be reported")
	assert.Equal(t, "operand is not a matrix", e.Reason)
	assert.Equal(t, []string{"vec3[float]"}, e.Args)

	// The original failure stays reachable through the chain.
	assert.True(t, errors.Is(err, &Error{Kind: ErrExpectedMatrix}))
}

func TestBadOp_PoisonsFunction(t *testing.T) {
	in := NewInputVar("p", Vec3(), 0)
	out := NewOutputVar("c", Vec4(), 0)

	store := DeferredStore(out, DeferredLoad(in))
	_, ok := store.(*BadOp)
	require.True(t, ok)

	err := New(DefaultOptions()).EntryPoint(Vertex, NewFunction("main").Add(store).ReturnsVoid(), in, out)
	e := requireKind(t, err, ErrBadOp)
	assert.Equal(t, "store", e.Op)
	assert.Equal(t, []string{"*Output vec4[float]", "vec3[float]"}, e.Args)
}

func TestBadOp_Err(t *testing.T) {
	st, err := NewStructBuilder("S").Field("f", Float{}).Build()
	require.NoError(t, err)
	f, _ := st.Member("f")

	op := DeferredAccess(vector(4), f)
	bad, ok := op.(*BadOp)
	require.True(t, ok)
	requireKind(t, bad.Err(), ErrBadOp)
	assert.True(t, errors.Is(bad.Err(), &Error{Kind: ErrNoStorageClass}))

	manual := NewBadOp("custom", "not supported", vector(2))
	_, err = DeferredVec3ToVec4(manual, 1).Register(New(DefaultOptions()))
	e := requireKind(t, err, ErrBadOp)
	assert.Equal(t, "custom", e.Op)
}
