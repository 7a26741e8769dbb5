// Copyright 2025 the AscendC-Mish authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel exposes the elementwise compute stages the pipeline can
// run.
//
// Mish is the primary stage, f(x) = x * tanh(ln(1 + exp(x))), decomposed
// exactly as the reference vector implementation decomposes it. ExpDiff is
// the reference source's divergent second variant, (exp(x) - 1/exp(x)) / 2,
// which is sinh(x) — a different function kept deliberately separate.
package kernel

import (
	internaldevice "github.com/JZBgit/AscendC-Mish/internal/device"
	internalkernel "github.com/JZBgit/AscendC-Mish/internal/kernel"
)

// Stage computes one tile of output from one tile of input.
type Stage[T internaldevice.Elem] = internalkernel.Stage[T]

// Scratch holds a stage's preallocated per-unit temporaries.
type Scratch[T internaldevice.Elem] = internalkernel.Scratch[T]

// Mish is the primary activation stage.
type Mish[T internaldevice.Elem] = internalkernel.Mish[T]

// ExpDiff is the alternate two-term variant (sinh, not Mish).
type ExpDiff[T internaldevice.Elem] = internalkernel.ExpDiff[T]

// NewScratch allocates scratch sized for one tile.
func NewScratch[T internaldevice.Elem](tileLength uint32) *Scratch[T] {
	return internalkernel.NewScratch[T](tileLength)
}

// Compile-time checks that both stages satisfy Stage.
var (
	_ Stage[float32] = Mish[float32]{}
	_ Stage[float32] = ExpDiff[float32]{}
)
