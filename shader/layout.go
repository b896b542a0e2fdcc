// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import "slices"

// LayoutRule selects how struct member offsets are computed.
type LayoutRule uint8

const (
	// LayoutStd140 follows the GLSL std140 base alignment rules.
	LayoutStd140 LayoutRule = iota

	// LayoutPacked places each member directly after the previous one.
	// Most GPU consumers reject such blocks when members need padding.
	LayoutPacked
)

// ParseLayoutRule parses "std140" or "packed".
func ParseLayoutRule(s string) (LayoutRule, bool) {
	switch s {
	case "std140", "":
		return LayoutStd140, true
	case "packed":
		return LayoutPacked, true
	}
	return 0, false
}

func (r LayoutRule) String() string {
	switch r {
	case LayoutStd140:
		return "std140"
	case LayoutPacked:
		return "packed"
	default:
		return "unknown"
	}
}

// Offsets returns the byte offset of each member of t.
func (r LayoutRule) Offsets(t Struct) []uint32 {
	offsets := make([]uint32, len(t.Members))
	var running uint32
	for i, m := range t.Members {
		offset := roundUp(running, r.Align(m.Type))
		offsets[i] = offset
		running = offset + r.Size(m.Type)
	}
	return offsets
}

// Align returns the base alignment of t.
func (r LayoutRule) Align(t Type) uint32 {
	if r == LayoutPacked {
		return 1
	}

	switch t := t.(type) {
	case Vector:
		if t.Count == 2 {
			return 2 * r.Align(t.Component)
		}
		return 4 * r.Align(t.Component)
	case Matrix:
		return roundUp(r.Align(t.Column), 16)
	case Struct:
		var align uint32 = 1
		for _, m := range t.Members {
			align = max(align, r.Align(m.Type))
		}
		return roundUp(align, 16)
	default:
		return 4
	}
}

// Size returns the space t occupies inside a block, padding included.
func (r LayoutRule) Size(t Type) uint32 {
	if r == LayoutPacked {
		return t.Width()
	}

	switch t := t.(type) {
	case Matrix:
		return t.Count * r.MatrixStride(t)
	case Struct:
		offsets := r.Offsets(t)
		if len(offsets) == 0 {
			return 0
		}
		last := len(offsets) - 1
		return roundUp(offsets[last]+r.Size(t.Members[last].Type), r.Align(t))
	default:
		return t.Width()
	}
}

// MatrixStride returns the byte distance between matrix columns.
func (r LayoutRule) MatrixStride(m Matrix) uint32 {
	if r == LayoutPacked {
		return m.Column.Width()
	}
	return roundUp(m.Column.Width(), 16)
}

func roundUp(n, align uint32) uint32 {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}

// checkLayout warns when a packed struct would be laid out differently
// under std140.
func (s *Shader) checkLayout(t Struct, offsets []uint32) {
	if s.opts.Layout != LayoutPacked {
		return
	}
	if std := LayoutStd140.Offsets(t); !slices.Equal(std, offsets) {
		s.logger.Warn("packed struct layout differs from std140",
			"struct", t.Name, "packed", offsets, "std140", std)
	}
}
