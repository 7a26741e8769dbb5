// Package plan computes the tiling decision that drives the pipeline: how a
// flat tensor is split across compute units, and how each unit's block is
// split into double-buffered tiles.
//
// A Plan is computed once, off the compute units, and read by every unit.
// It is immutable after Compute returns.
package plan

import "fmt"

// BufferDepth is the number of reusable scratch slots per queue direction.
// The whole sizing formula is built around double buffering: TileLength
// divides BufferDepth out, and LoopCount multiplies it back in.
const BufferDepth = 2

// Defaults used by the reference host when it has no better information.
const (
	DefaultBlockDim = 8 // compute units
	DefaultTileNum  = 8 // tiles per unit
)

// Plan is the fixed-size tiling record handed to every compute unit.
type Plan struct {
	TotalLength  uint32 // elements in the global tensor
	Units        uint32 // parallel compute units
	TilesPerUnit uint32 // tiling factor within one unit's block
	BlockLength  uint32 // elements owned by one unit
	TileLength   uint32 // elements moved per pipeline iteration
}

// Slice is one unit's contiguous half-open range [Offset, Offset+Length)
// into the global arrays. Slices of distinct units are disjoint by
// construction.
type Slice struct {
	Unit   uint32
	Offset uint32
	Length uint32
}

// Compute derives a Plan from the total element count, the unit count and
// the per-unit tiling factor. It is a pure function: the same inputs always
// produce the same plan, so the planning stage and the compute units never
// need shared state beyond the record itself.
func Compute(totalLength, units, tilesPerUnit uint32) (Plan, error) {
	if units == 0 || tilesPerUnit == 0 {
		return Plan{}, fmt.Errorf("plan: units=%d tilesPerUnit=%d: %w",
			units, tilesPerUnit, ErrInvalidConfig)
	}

	blockLength := totalLength / units
	tileLength := blockLength / tilesPerUnit / BufferDepth
	if tileLength == 0 {
		return Plan{}, fmt.Errorf("plan: %d elements per unit cannot fill %d tiles: %w",
			blockLength, tilesPerUnit*BufferDepth, ErrDegenerateTiling)
	}

	return Plan{
		TotalLength:  totalLength,
		Units:        units,
		TilesPerUnit: tilesPerUnit,
		BlockLength:  blockLength,
		TileLength:   tileLength,
	}, nil
}

// LoopCount is the number of pipeline iterations one unit runs. Each logical
// tile is split across the two buffer slots, so the loop runs
// TilesPerUnit * BufferDepth times over tiles of TileLength elements.
func (p Plan) LoopCount() uint32 {
	return p.TilesPerUnit * BufferDepth
}

// Slice returns the partition owned by the given unit. The caller is
// responsible for covering [0, Units) without gaps or duplicates; the plan
// cannot observe sibling units.
func (p Plan) Slice(unit uint32) Slice {
	if unit >= p.Units {
		panic(fmt.Sprintf("plan: unit %d out of range [0, %d)", unit, p.Units))
	}
	return Slice{
		Unit:   unit,
		Offset: p.BlockLength * unit,
		Length: p.BlockLength,
	}
}

// Covered reports how many elements the plan actually processes. Integer
// division truncates twice: a remainder of TotalLength/Units is never
// assigned to any unit, and a remainder of BlockLength over the tile grid is
// never copied in. Covered equals TotalLength only when both divisions are
// exact.
func (p Plan) Covered() uint32 {
	return p.Units * p.TileLength * p.LoopCount()
}

// WorkspaceSize is the cross-tile scratch the host must allocate for this
// operator family. Elementwise stages need none; all scratch is per-tile and
// owned by the unit.
func (p Plan) WorkspaceSize() uint32 {
	return 0
}
