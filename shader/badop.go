// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import "errors"

// BadOp marks a deferred operation that could not be typed. It composes
// like any other node but fails when registered, reporting the deepest
// BadOp among its causes rather than the node that was registered.
type BadOp struct {
	name   string
	reason string
	causes []Op
	err    error
}

// NewBadOp creates a failure marker for op name with the operands that
// caused it.
func NewBadOp(name, reason string, causes ...Op) *BadOp {
	return &BadOp{name: name, reason: reason, causes: causes}
}

// Type implements Op.
func (b *BadOp) Type() Type { return NoType{} }

// Register implements Op. It always fails.
func (b *BadOp) Register(*Shader) (RegOp, error) {
	return nil, b.rootError()
}

// Err returns the error registration would report.
func (b *BadOp) Err() error {
	return b.rootError()
}

func (b *BadOp) rootError() error {
	current := b
	queue := []*BadOp{b}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		current = next
		for _, c := range next.causes {
			if bad, ok := c.(*BadOp); ok {
				queue = append(queue, bad)
			}
		}
	}

	args := make([]string, len(current.causes))
	for i, c := range current.causes {
		args[i] = c.Type().Display()
	}
	return &Error{
		Kind:   ErrBadOp,
		Op:     current.name,
		Reason: current.reason,
		Args:   args,
		Err:    current.err,
	}
}

func deferred(name string, op Op, err error, causes ...Op) Op {
	if err == nil {
		return op
	}
	reason := err.Error()
	var e *Error
	if errors.As(err, &e) {
		reason = e.Reason
	}
	return &BadOp{name: name, reason: reason, causes: causes, err: err}
}

// The Deferred* functions compose without failing. An invalid
// composition yields a *BadOp whose error surfaces on registration.

// DeferredLoad is the deferred form of Load.
func DeferredLoad(source Op) Op {
	op, err := Load(source)
	return deferred("load", op, err, source)
}

// DeferredStore is the deferred form of Store.
func DeferredStore(dest, source Op) Op {
	op, err := Store(dest, source)
	return deferred("store", op, err, dest, source)
}

// DeferredMul is the deferred form of Mul.
func DeferredMul(lhs, rhs Op) Op {
	op, err := Mul(lhs, rhs)
	return deferred("mul", op, err, lhs, rhs)
}

// DeferredTranspose is the deferred form of Transpose.
func DeferredTranspose(matrix Op) Op {
	op, err := Transpose(matrix)
	return deferred("transpose", op, err, matrix)
}

// DeferredAccess is the deferred form of Access.
func DeferredAccess(base Op, member StructMember) Op {
	op, err := Access(base, member)
	return deferred("access", op, err, base)
}

// DeferredVec3ToVec4 is the deferred form of Vec3ToVec4.
func DeferredVec3ToVec4(source Op, w float32) Op {
	op, err := Vec3ToVec4(source, w)
	return deferred("vec3_to_vec4", op, err, source)
}
