// Copyright 2025 the AscendC-Mish authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package plan exposes the tiling planner: the once-per-invocation sizing
// decision that every compute unit reads.
//
// Example:
//
//	p, err := plan.Compute(2048, 8, 8)
//	if err != nil {
//	    // zero unit count, zero tiling factor, or tiling too fine
//	}
//	_ = p.TileLength // 16
package plan

import internalplan "github.com/JZBgit/AscendC-Mish/internal/plan"

// BufferDepth is the fixed slot count per queue direction (double buffering).
const BufferDepth = internalplan.BufferDepth

// Reference host defaults.
const (
	DefaultBlockDim = internalplan.DefaultBlockDim
	DefaultTileNum  = internalplan.DefaultTileNum
)

// Plan is the immutable tiling record handed to every compute unit.
type Plan = internalplan.Plan

// Slice is one unit's contiguous partition of the global arrays.
type Slice = internalplan.Slice

// Planning errors.
var (
	ErrInvalidConfig    = internalplan.ErrInvalidConfig
	ErrDegenerateTiling = internalplan.ErrDegenerateTiling
)

// Compute derives a Plan from the total element count, unit count and
// per-unit tiling factor. Pure and deterministic.
func Compute(totalLength, units, tilesPerUnit uint32) (Plan, error) {
	return internalplan.Compute(totalLength, units, tilesPerUnit)
}
