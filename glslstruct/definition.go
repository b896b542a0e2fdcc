// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glslstruct

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/spvc/shader"
)

var (
	// ErrDuplicate reports two definitions with the same struct name.
	ErrDuplicate = errors.New("glslstruct: duplicate struct")

	// ErrCycle reports a struct that contains itself.
	ErrCycle = errors.New("glslstruct: recursive struct")
)

// Field is one member of a struct definition.
type Field struct {
	Name string `toml:"name" yaml:"name"`
	Type string `toml:"type" yaml:"type"`
}

// Definition declares a struct by name.
type Definition struct {
	Name   string  `toml:"name" yaml:"name"`
	Fields []Field `toml:"fields" yaml:"fields"`
}

// File is the top-level shape of a definition file.
type File struct {
	Structs []Definition `toml:"struct" yaml:"struct"`
}

// Set holds resolved structs in definition order.
type Set struct {
	order   []string
	structs map[string]shader.Struct
}

// Struct returns the resolved struct with the given name.
func (s *Set) Struct(name string) (shader.Struct, bool) {
	st, ok := s.structs[name]
	return st, ok
}

// Structs returns every resolved struct in definition order.
func (s *Set) Structs() []shader.Struct {
	out := make([]shader.Struct, len(s.order))
	for i, name := range s.order {
		out[i] = s.structs[name]
	}
	return out
}

// Load reads a definition file, choosing the decoder by extension
// (.toml, .yaml or .yml).
func Load(path string) (*Set, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return LoadTOML(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	}
	return nil, fmt.Errorf("%s: unknown definition format", path)
}

// LoadTOML reads and resolves a TOML definition file.
func LoadTOML(path string) (*Set, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := checkUndecoded(meta); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	set, err := Resolve(f.Structs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// DecodeTOML reads and resolves TOML definitions from r.
func DecodeTOML(r io.Reader) (*Set, error) {
	var f File
	meta, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := checkUndecoded(meta); err != nil {
		return nil, err
	}
	return Resolve(f.Structs)
}

func checkUndecoded(meta toml.MetaData) error {
	if keys := meta.Undecoded(); len(keys) > 0 {
		return fmt.Errorf("unknown key %q", keys[0].String())
	}
	return nil
}

// LoadYAML reads and resolves a YAML definition file.
func LoadYAML(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	set, err := DecodeYAML(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// DecodeYAML reads and resolves YAML definitions from r. Unknown fields
// are rejected.
func DecodeYAML(r io.Reader) (*Set, error) {
	var f File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return Resolve(f.Structs)
}

// Resolve turns definitions into shader structs. Field types may name
// structs defined anywhere in defs.
func Resolve(defs []Definition) (*Set, error) {
	byName := make(map[string]*Definition, len(defs))
	set := &Set{structs: make(map[string]shader.Struct, len(defs))}
	for i := range defs {
		d := &defs[i]
		if _, ok := byName[d.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, d.Name)
		}
		byName[d.Name] = d
		set.order = append(set.order, d.Name)
	}

	r := resolver{defs: byName, set: set, visiting: make(map[string]bool)}
	for _, name := range set.order {
		if _, err := r.resolve(name); err != nil {
			return nil, err
		}
	}
	return set, nil
}

type resolver struct {
	defs     map[string]*Definition
	set      *Set
	visiting map[string]bool
}

func (r *resolver) resolve(name string) (shader.Struct, error) {
	if st, ok := r.set.structs[name]; ok {
		return st, nil
	}
	if r.visiting[name] {
		return shader.Struct{}, fmt.Errorf("%w: %s", ErrCycle, name)
	}
	r.visiting[name] = true
	defer delete(r.visiting, name)

	d := r.defs[name]
	b := shader.NewStructBuilder(d.Name)
	for _, f := range d.Fields {
		ty, err := r.fieldType(f.Type)
		if err != nil {
			return shader.Struct{}, fmt.Errorf("struct %s field %s: %w", d.Name, f.Name, err)
		}
		b.Field(f.Name, ty)
	}
	st, err := b.Build()
	if err != nil {
		return shader.Struct{}, err
	}
	r.set.structs[name] = st
	return st, nil
}

func (r *resolver) fieldType(name string) (shader.Type, error) {
	if _, ok := r.defs[name]; ok {
		return r.resolve(name)
	}
	return ParseType(name)
}
