// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes shader construction errors.
type ErrorKind uint8

const (
	// ErrMatrixMulMismatch indicates lhs columns differ from rhs rows in a matrix product.
	ErrMatrixMulMismatch ErrorKind = iota

	// ErrMatrixVectorMulMismatch indicates matrix columns differ from the vector length.
	ErrMatrixVectorMulMismatch

	// ErrArgumentMismatch indicates operand types no operation accepts.
	ErrArgumentMismatch

	// ErrExpectedMatrix indicates a matrix-only operation received another type.
	ErrExpectedMatrix

	// ErrExpectedPointer indicates a pointer-only operation received a value.
	ErrExpectedPointer

	// ErrStoreMismatch indicates the stored value does not match the destination.
	ErrStoreMismatch

	// ErrVecMismatch indicates a vector expansion received the wrong source size.
	ErrVecMismatch

	// ErrNoStorageClass indicates an access on a node without a storage class.
	ErrNoStorageClass

	// ErrNoObjectID indicates an operand that produced no result id.
	ErrNoObjectID

	// ErrBadOp indicates a deferred composition that failed at its root.
	ErrBadOp

	// ErrTooManyMembers indicates a struct exceeding the member limit.
	ErrTooManyMembers

	// ErrMemberIndex indicates a struct member whose index differs from its position.
	ErrMemberIndex

	// ErrNotInterface indicates an entry point interface node that is not a variable.
	ErrNotInterface

	// ErrIllegalInterfaceType indicates an interface variable without a vertex format.
	ErrIllegalInterfaceType

	// ErrEncoder wraps a failure reported by the SPIR-V encoder.
	ErrEncoder
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrMatrixMulMismatch:
		return "MatrixMulMismatch"
	case ErrMatrixVectorMulMismatch:
		return "MatrixVectorMulMismatch"
	case ErrArgumentMismatch:
		return "ArgumentMismatch"
	case ErrExpectedMatrix:
		return "ExpectedMatrix"
	case ErrExpectedPointer:
		return "ExpectedPointer"
	case ErrStoreMismatch:
		return "StoreMismatch"
	case ErrVecMismatch:
		return "VecMismatch"
	case ErrNoStorageClass:
		return "NoStorageClass"
	case ErrNoObjectID:
		return "NoObjectID"
	case ErrBadOp:
		return "BadOp"
	case ErrTooManyMembers:
		return "TooManyMembers"
	case ErrMemberIndex:
		return "MemberIndex"
	case ErrNotInterface:
		return "NotInterface"
	case ErrIllegalInterfaceType:
		return "IllegalInterfaceType"
	case ErrEncoder:
		return "Encoder"
	default:
		return "Unknown"
	}
}

// Error represents a shader construction error.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Op names the operation that failed, e.g. "mul" or "store".
	Op string

	// Reason provides details about the error.
	Reason string

	// Args holds the display strings of the operand types involved.
	Args []string

	// Dims holds the mismatched dimensions for multiply errors:
	// lhs columns and rhs rows (or vector length).
	Dims [2]uint32

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("shader ")
	sb.WriteString(e.Kind.String())
	if e.Op != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Op)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if len(e.Args) > 0 {
		fmt.Fprintf(&sb, " (%s)", strings.Join(e.Args, ", "))
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, &Error{Kind: ErrStoreMismatch}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewError creates a new shader error.
func NewError(kind ErrorKind, op, reason string, args ...string) *Error {
	return &Error{
		Kind:   kind,
		Op:     op,
		Reason: reason,
		Args:   args,
	}
}

func dimsError(kind ErrorKind, op string, lhs, rhs uint32) *Error {
	return &Error{
		Kind:   kind,
		Op:     op,
		Reason: fmt.Sprintf("dimension mismatch %d != %d", lhs, rhs),
		Dims:   [2]uint32{lhs, rhs},
	}
}

func encoderError(err error) *Error {
	return &Error{
		Kind:   ErrEncoder,
		Reason: "encoder rejected instruction",
		Err:    err,
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsMismatch returns true for the type-shape mismatch kinds.
func (e *Error) IsMismatch() bool {
	switch e.Kind {
	case ErrMatrixMulMismatch, ErrMatrixVectorMulMismatch, ErrArgumentMismatch,
		ErrExpectedMatrix, ErrStoreMismatch, ErrVecMismatch:
		return true
	}
	return false
}

// IsBadOp returns true if the error is ErrBadOp.
func (e *Error) IsBadOp() bool {
	return e.Kind == ErrBadOp
}

// IsEncoder returns true if the error is ErrEncoder.
func (e *Error) IsEncoder() bool {
	return e.Kind == ErrEncoder
}
