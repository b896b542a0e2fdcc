// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shader

import "github.com/gogpu/spvc/spirv"

// StorageClass identifies the memory space of a variable.
type StorageClass uint8

const (
	StorageInput StorageClass = iota
	StorageOutput
	StorageUniform
	StorageUniformConstant
	StoragePushConstant
	StoragePrivate
	StorageFunction
	StorageStorageBuffer
)

// SPIRV maps the storage class to its SPIR-V tag.
func (c StorageClass) SPIRV() spirv.StorageClass {
	switch c {
	case StorageInput:
		return spirv.StorageClassInput
	case StorageOutput:
		return spirv.StorageClassOutput
	case StorageUniform:
		return spirv.StorageClassUniform
	case StorageUniformConstant:
		return spirv.StorageClassUniformConstant
	case StoragePushConstant:
		return spirv.StorageClassPushConstant
	case StoragePrivate:
		return spirv.StorageClassPrivate
	case StorageFunction:
		return spirv.StorageClassFunction
	case StorageStorageBuffer:
		return spirv.StorageClassStorageBuffer
	default:
		return spirv.StorageClassPrivate
	}
}

func (c StorageClass) String() string {
	return c.SPIRV().String()
}
