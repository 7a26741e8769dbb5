// Copyright 2025 the AscendC-Mish authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device exposes the engine's element types and the partitioned
// views over the host-supplied flat buffers.
//
// The operator family's working precision is half (github.com/x448/float16);
// float32 is supported for full-precision validation of the same pipeline.
package device

import internaldevice "github.com/JZBgit/AscendC-Mish/internal/device"

// Elem is the constraint for supported element types: float16.Float16 or
// float32.
type Elem = internaldevice.Elem

// Global wraps one of the host-supplied flat arrays.
type Global[T Elem] = internaldevice.Global[T]

// In is a read-only view of one unit's input partition.
type In[T Elem] = internaldevice.In[T]

// Out is a write-only view of one unit's output partition.
type Out[T Elem] = internaldevice.Out[T]

// NewGlobal wraps a host buffer without copying it.
func NewGlobal[T Elem](data []T) *Global[T] {
	return internaldevice.NewGlobal(data)
}

// FromFloat32s converts float32 data to the target element type.
func FromFloat32s[T Elem](src []float32) []T {
	return internaldevice.FromFloat32s[T](src)
}

// ToFloat32s widens element data to float32.
func ToFloat32s[T Elem](src []T) []float32 {
	return internaldevice.ToFloat32s(src)
}
