// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package shaders contains shader programs written against the shader
// package. They double as end-to-end examples and as the build targets
// of the spvc command.
package shaders
