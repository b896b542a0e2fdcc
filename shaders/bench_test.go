// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shaders

import (
	"runtime"
	"testing"

	"github.com/gogpu/spvc/shader"
)

// BenchmarkPrograms measures describe, register and encode for each
// bundled program.
func BenchmarkPrograms(b *testing.B) {
	for _, name := range Names() {
		p, _ := Lookup(name)
		b.Run(name, func(b *testing.B) {
			opts := shader.DefaultOptions()

			b.ReportAllocs()
			b.ResetTimer()

			var result []byte
			for i := 0; i < b.N; i++ {
				s, err := p.Build(opts)
				if err != nil {
					b.Fatalf("build failed: %v", err)
				}
				module, err := s.Module()
				if err != nil {
					b.Fatalf("module failed: %v", err)
				}
				result = module.Bytes()
			}
			runtime.KeepAlive(result)
		})
	}
}

// BenchmarkTypeCache measures repeated registration of cached types.
func BenchmarkTypeCache(b *testing.B) {
	global, err := GlobalStruct()
	if err != nil {
		b.Fatal(err)
	}
	s := shader.New(shader.DefaultOptions())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := global.Register(s); err != nil {
			b.Fatal(err)
		}
	}
}
