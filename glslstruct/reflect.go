// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glslstruct

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/gogpu/spvc/shader"
)

// ErrUnsupported reports a Go type or type name with no GLSL equivalent.
var ErrUnsupported = errors.New("glslstruct: unsupported type")

// Of derives the shader struct for T.
func Of[T any]() (shader.Struct, error) {
	return FromType(reflect.TypeFor[T]())
}

// FromType derives the shader struct for a Go struct type (or pointer to
// one). Unexported fields are ignored.
func FromType(t reflect.Type) (shader.Struct, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return shader.Struct{}, fmt.Errorf("%w: %s is not a struct", ErrUnsupported, t)
	}

	b := shader.NewStructBuilder(t.Name())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tag := f.Tag.Get("glsl")
		if tag == "-" {
			continue
		}
		name, typeName, _ := strings.Cut(tag, ",")
		if name == "" {
			name = snakeCase(f.Name)
		}

		var ty shader.Type
		var err error
		if typeName != "" {
			ty, err = ParseType(typeName)
		} else {
			ty, err = fieldType(f.Type)
		}
		if err != nil {
			return shader.Struct{}, fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}
		b.Field(name, ty)
	}
	return b.Build()
}

func fieldType(t reflect.Type) (shader.Type, error) {
	switch t.Kind() {
	case reflect.Float32:
		return shader.Float{}, nil
	case reflect.Uint32:
		return shader.UnsignedInteger{}, nil
	case reflect.Bool:
		return shader.Bool{}, nil
	case reflect.Struct:
		return FromType(t)
	case reflect.Array:
		return arrayType(t)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
}

// arrayType maps [N]scalar to a vector and [C][R]float32 to a matrix of
// C columns.
func arrayType(t reflect.Type) (shader.Type, error) {
	n := t.Len()
	if n < 2 || n > 4 {
		return nil, fmt.Errorf("%w: %s (length must be 2..4)", ErrUnsupported, t)
	}
	count := uint32(n)

	elem := t.Elem()
	switch elem.Kind() {
	case reflect.Float32:
		return shader.Vector{Component: shader.Float{}, Count: count}, nil
	case reflect.Uint32:
		return shader.Vector{Component: shader.UnsignedInteger{}, Count: count}, nil
	case reflect.Array:
		column, err := arrayType(elem)
		if err != nil {
			return nil, err
		}
		vec, ok := column.(shader.Vector)
		if !ok || !vec.Component.Matches(shader.Float{}) {
			return nil, fmt.Errorf("%w: %s (matrix columns must be float vectors)", ErrUnsupported, t)
		}
		return shader.Matrix{Column: vec, Count: count}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
}

// ParseType resolves a GLSL type name: float, bool, uint, vecN, uvecN,
// matN and matCxR (C columns, R rows).
func ParseType(name string) (shader.Type, error) {
	switch name {
	case "float":
		return shader.Float{}, nil
	case "bool":
		return shader.Bool{}, nil
	case "uint", "uint32_t":
		return shader.UnsignedInteger{}, nil
	}

	var size [2]uint32
	switch {
	case parseSizes(name, "uvec", size[:1]):
		return shader.Vector{Component: shader.UnsignedInteger{}, Count: size[0]}, nil
	case parseSizes(name, "vec", size[:1]):
		return shader.Vector{Component: shader.Float{}, Count: size[0]}, nil
	case parseSizes(name, "mat", size[:1]):
		return shader.Matrix{Column: shader.Vector{Component: shader.Float{}, Count: size[0]}, Count: size[0]}, nil
	case parseSizes(name, "mat", size[:]):
		return shader.Matrix{Column: shader.Vector{Component: shader.Float{}, Count: size[1]}, Count: size[0]}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
}

// parseSizes matches prefix followed by len(out) digits in 2..4 joined
// by 'x', e.g. "mat4x3".
func parseSizes(name, prefix string, out []uint32) bool {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || len(rest) != 2*len(out)-1 {
		return false
	}
	for i := range out {
		c := rest[2*i]
		if c < '2' || c > '4' {
			return false
		}
		if i > 0 && rest[2*i-1] != 'x' {
			return false
		}
		out[i] = uint32(c - '0')
	}
	return true
}

// snakeCase converts a Go identifier to snake_case, keeping acronyms
// together: BaseColorFactor -> base_color_factor, UVScale -> uv_scale.
func snakeCase(name string) string {
	runes := []rune(name)
	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
