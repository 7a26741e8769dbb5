// Copyright 2025 the AscendC-Mish authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pipeline exposes the tile-pipelined executor: partition the tensor
// across units, stream each partition through double-buffered scratch, apply
// a kernel stage, write the results back.
//
// Example:
//
//	in := device.FromFloat32s[float16.Float16](data)
//	out := make([]float16.Float16, len(in))
//	p, err := pipeline.Launch(pipeline.DefaultConfig(), in, out, kernel.Mish[float16.Float16]{})
package pipeline

import (
	internaldevice "github.com/JZBgit/AscendC-Mish/internal/device"
	internalkernel "github.com/JZBgit/AscendC-Mish/internal/kernel"
	internalpipeline "github.com/JZBgit/AscendC-Mish/internal/pipeline"
	internalplan "github.com/JZBgit/AscendC-Mish/internal/plan"
)

// Config controls a Launch.
type Config = internalpipeline.Config

// Executor runs one compute unit over its partition.
type Executor[T internaldevice.Elem] = internalpipeline.Executor[T]

// ErrLengthMismatch reports input and output buffers of different lengths.
var ErrLengthMismatch = internalpipeline.ErrLengthMismatch

// DefaultConfig mirrors the reference host sizing (8 units, 8 tiles per
// unit) capped by the CPU count, with overlap enabled.
func DefaultConfig() Config {
	return internalpipeline.DefaultConfig()
}

// New builds the executor for a single unit of the given plan.
func New[T internaldevice.Elem](p internalplan.Plan, unit uint32, in, out *internaldevice.Global[T], stage internalkernel.Stage[T]) *Executor[T] {
	return internalpipeline.New(p, unit, in, out, stage)
}

// Launch plans the tiling and runs every unit to completion. Planning errors
// surface before any unit starts.
func Launch[T internaldevice.Elem](cfg Config, in, out []T, stage internalkernel.Stage[T]) (internalplan.Plan, error) {
	return internalpipeline.Launch(cfg, in, out, stage)
}
