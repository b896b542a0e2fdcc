// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/spvc/spirv"
)

// ShaderKind is the pipeline stage of an entry point.
type ShaderKind uint8

const (
	Vertex ShaderKind = iota
	Fragment
)

// ExecutionModel maps the kind to its SPIR-V execution model.
func (k ShaderKind) ExecutionModel() spirv.ExecutionModel {
	if k == Fragment {
		return spirv.ExecutionModelFragment
	}
	return spirv.ExecutionModelVertex
}

func (k ShaderKind) String() string {
	if k == Fragment {
		return "fragment"
	}
	return "vertex"
}

// ParseShaderKind parses "vertex" or "fragment".
func ParseShaderKind(s string) (ShaderKind, bool) {
	switch s {
	case "vertex":
		return Vertex, true
	case "fragment":
		return Fragment, true
	}
	return 0, false
}

// Options configures module generation.
type Options struct {
	// Version is the SPIR-V version written into the header.
	Version spirv.Version

	// Layout selects the struct offset rule.
	Layout LayoutRule

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Version: spirv.Version1_0,
		Layout:  LayoutStd140,
	}
}

// Shader accumulates one SPIR-V module. It owns the encoder and the type
// cache that makes every type, constant and variable registration
// idempotent. A Shader is not safe for concurrent use.
type Shader struct {
	builder *spirv.ModuleBuilder
	opts    Options
	logger  *slog.Logger

	cache      map[TypeKey]uint32
	interfaces []EntryPointInterface
}

// New creates a Shader with the standard preamble: the Shader capability,
// the GLSL.std.450 import and the logical GLSL450 memory model.
func New(opts Options) *Shader {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	builder := spirv.NewModuleBuilder(opts.Version)
	builder.AddCapability(spirv.CapabilityShader)
	builder.AddExtInstImport("GLSL.std.450")
	builder.SetMemoryModel(spirv.AddressingModelLogical, spirv.MemoryModelGLSL450)

	return &Shader{
		builder: builder,
		opts:    opts,
		logger:  logger,
		cache:   make(map[TypeKey]uint32),
	}
}

// cachedType returns the id stored under key, calling insert to emit it
// on first use.
func (s *Shader) cachedType(key TypeKey, insert func(*Shader) (uint32, error)) (uint32, error) {
	if id, ok := s.cache[key]; ok {
		return id, nil
	}

	id, err := insert(s)
	if err != nil {
		return 0, err
	}
	s.cache[key] = id
	s.logger.Debug("type emitted", "key", key.String(), "id", id)
	return id, nil
}

func (s *Shader) constantU32(value uint32) (uint32, error) {
	integerType, err := UnsignedInteger{}.Register(s)
	if err != nil {
		return 0, err
	}
	return s.cachedType(constantU32Key(integerType, value), func(s *Shader) (uint32, error) {
		return s.builder.AddConstant(integerType, value), nil
	})
}

func (s *Shader) constantF32(value float32) (uint32, error) {
	floatType, err := Float{}.Register(s)
	if err != nil {
		return 0, err
	}
	bits := math.Float32bits(value)
	return s.cachedType(constantF32Key(floatType, bits), func(s *Shader) (uint32, error) {
		return s.builder.AddConstant(floatType, bits), nil
	})
}

func (s *Shader) registerPointerType(storage StorageClass, pointee uint32) (uint32, error) {
	return s.cachedType(pointerKey(storage, pointee), func(s *Shader) (uint32, error) {
		return s.builder.AddTypePointer(storage.SPIRV(), pointee), nil
	})
}

func (s *Shader) voidType() (uint32, error) {
	return s.cachedType(scalarKey(keyVoid), func(s *Shader) (uint32, error) {
		return s.builder.AddTypeVoid(), nil
	})
}

// EntryPoint validates and registers the interface variables and the
// function, then emits the OpEntryPoint naming the function with the
// interface ids. Nodes resolving to the same variable are listed once.
// The interface metadata is recorded for Interfaces.
func (s *Shader) EntryPoint(kind ShaderKind, fn *Function, iface ...Op) error {
	if _, err := interfaceFromOps(fn.name, kind, iface); err != nil {
		return err
	}

	var (
		words  = make([]uint32, 0, len(iface))
		unique = make([]Op, 0, len(iface))
		seen   = make(map[uint32]bool, len(iface))
	)
	for _, op := range iface {
		reg, err := op.Register(s)
		if err != nil {
			return err
		}
		id, ok, err := reg.OpID(s)
		if err != nil {
			return err
		}
		if !ok {
			return NewError(ErrNoObjectID, "entry point "+fn.name, "interface node has no id", op.Type().Display())
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, op)
		if s.listsInterface(op) {
			words = append(words, id)
		}
	}

	exported, err := interfaceFromOps(fn.name, kind, unique)
	if err != nil {
		return err
	}

	id, err := fn.register(s)
	if err != nil {
		return err
	}

	s.builder.AddEntryPoint(kind.ExecutionModel(), id, fn.name, words)
	if kind == Fragment {
		s.builder.AddExecutionMode(id, spirv.ExecutionModeOriginUpperLeft)
	}
	s.interfaces = append(s.interfaces, exported)

	s.logger.Debug("entry point emitted", "name", fn.name, "kind", kind.String(), "interfaces", len(words))
	return nil
}

// listsInterface reports whether op belongs in the OpEntryPoint interface.
// Before SPIR-V 1.4 only Input and Output variables may be listed.
func (s *Shader) listsInterface(op Op) bool {
	if s.opts.Version.AtLeast(spirv.Version1_4) {
		return true
	}
	v, ok := op.(interface{ StorageClass() StorageClass })
	if !ok {
		return false
	}
	return v.StorageClass() == StorageInput || v.StorageClass() == StorageOutput
}

// Interfaces returns the interface metadata of every emitted entry point.
func (s *Shader) Interfaces() []EntryPointInterface {
	return s.interfaces
}

// Module finalizes the shader into a SPIR-V module.
func (s *Shader) Module() (*spirv.Module, error) {
	module, err := s.builder.Module()
	if err != nil {
		return nil, encoderError(err)
	}
	return module, nil
}

// String summarizes the shader for debugging.
func (s *Shader) String() string {
	return fmt.Sprintf("Shader{version: %s, layout: %s, cached: %d, entry points: %d}",
		s.opts.Version, s.opts.Layout, len(s.cache), len(s.interfaces))
}
