package kernel

import "github.com/JZBgit/AscendC-Mish/internal/device"

// Scratch holds the per-unit temporary tiles a stage computes through. Both
// buffers are allocated once when the unit is set up and reused for every
// tile of the run; stages never allocate.
type Scratch[T device.Elem] struct {
	tmp []T
	aux []T
}

// NewScratch allocates scratch sized for one tile.
func NewScratch[T device.Elem](tileLength uint32) *Scratch[T] {
	return &Scratch[T]{
		tmp: make([]T, tileLength),
		aux: make([]T, tileLength),
	}
}

// Tmp returns the primary scratch tile.
func (s *Scratch[T]) Tmp() []T { return s.tmp }

// Aux returns the secondary scratch tile.
func (s *Scratch[T]) Aux() []T { return s.aux }
