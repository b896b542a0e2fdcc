// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"
	"strings"
)

type keyKind uint8

const (
	keyVoid keyKind = iota
	keyBool
	keyUnsignedInteger
	keyFloat
	keyVector
	keyMatrix
	keyStruct
	keyPointer
	keyFunction
	keyConstantU32
	keyConstantF32
	keyGlobalVar
)

var keyKindNames = [...]string{
	keyVoid:            "void",
	keyBool:            "bool",
	keyUnsignedInteger: "uint",
	keyFloat:           "float",
	keyVector:          "vector",
	keyMatrix:          "matrix",
	keyStruct:          "struct",
	keyPointer:         "pointer",
	keyFunction:        "function",
	keyConstantU32:     "constant_u32",
	keyConstantF32:     "constant_f32",
	keyGlobalVar:       "global_var",
}

// optional is a comparable optional literal.
type optional struct {
	value uint32
	ok    bool
}

func some(v uint32) optional {
	return optional{value: v, ok: true}
}

// TypeKey is the structural identity of a cached type, constant or
// variable. Child types appear as their already-resolved ids, so two
// independently described but identical types produce equal keys.
type TypeKey struct {
	kind keyKind
	a, b uint32
	name string
	list string

	storage  StorageClass
	set      optional
	binding  optional
	location optional
	builtIn  optional
}

// String renders the key for debug logging.
func (k TypeKey) String() string {
	var sb strings.Builder
	sb.WriteString(keyKindNames[k.kind])
	switch k.kind {
	case keyVector, keyMatrix, keyConstantU32, keyConstantF32, keyPointer:
		fmt.Fprintf(&sb, "(%d, %d)", k.a, k.b)
	case keyStruct:
		fmt.Fprintf(&sb, " %s{%s}", k.name, k.list)
	case keyFunction:
		fmt.Fprintf(&sb, "(%s)->%d", k.list, k.b)
	case keyGlobalVar:
		fmt.Fprintf(&sb, "(%s, %d)", k.storage, k.a)
	}
	return sb.String()
}

func encodeWords(words []uint32) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fmt.Sprint(w)
	}
	return strings.Join(parts, ",")
}

func scalarKey(kind keyKind) TypeKey {
	return TypeKey{kind: kind}
}

func vectorKey(component, count uint32) TypeKey {
	return TypeKey{kind: keyVector, a: component, b: count}
}

func matrixKey(column, count uint32) TypeKey {
	return TypeKey{kind: keyMatrix, a: column, b: count}
}

func structKey(name string, members []uint32) TypeKey {
	return TypeKey{kind: keyStruct, name: name, list: encodeWords(members)}
}

func pointerKey(storage StorageClass, pointee uint32) TypeKey {
	return TypeKey{kind: keyPointer, a: uint32(storage), b: pointee}
}

func functionKey(returnType uint32, params []uint32) TypeKey {
	return TypeKey{kind: keyFunction, b: returnType, list: encodeWords(params)}
}

func constantU32Key(integerType, value uint32) TypeKey {
	return TypeKey{kind: keyConstantU32, a: integerType, b: value}
}

func constantF32Key(floatType, bits uint32) TypeKey {
	return TypeKey{kind: keyConstantF32, a: floatType, b: bits}
}

func globalVarKey(v *variable, variableType uint32) TypeKey {
	key := TypeKey{
		kind:     keyGlobalVar,
		a:        variableType,
		storage:  v.storage,
		set:      v.set,
		binding:  v.binding,
		location: v.location,
	}
	if v.builtIn != nil {
		key.builtIn = some(uint32(*v.builtIn))
	}
	return key
}
