// Package device models the memory side of the engine: the flat global
// arrays supplied by the host and the per-unit partition views the pipeline
// copies tiles through.
//
// The working precision of the operator family is half precision
// (github.com/x448/float16); float32 is supported so the same pipeline can be
// validated at full precision.
package device

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/JZBgit/AscendC-Mish/internal/plan"
)

// Elem is the set of element types the engine moves and computes on.
type Elem interface {
	float16.Float16 | float32
}

// Global wraps one of the host-supplied flat arrays. It carries no ownership
// information itself; units take disjoint views of it via View.
type Global[T Elem] struct {
	data []T
}

// NewGlobal wraps a host buffer. The engine reads and writes the slice in
// place; it never reallocates or resizes it.
func NewGlobal[T Elem](data []T) *Global[T] {
	return &Global[T]{data: data}
}

// Len returns the element count of the backing buffer.
func (g *Global[T]) Len() uint32 {
	return uint32(len(g.data))
}

// View returns the input and output views for one unit's partition. The
// slice must lie within the buffer; a plan computed for this buffer's length
// guarantees that by construction.
func (g *Global[T]) View(s plan.Slice) (In[T], Out[T]) {
	if uint64(s.Offset)+uint64(s.Length) > uint64(len(g.data)) {
		panic(fmt.Sprintf("device: slice [%d, %d) exceeds buffer of %d elements",
			s.Offset, s.Offset+s.Length, len(g.data)))
	}
	block := g.data[s.Offset : s.Offset+s.Length]
	return In[T]{block: block}, Out[T]{block: block}
}

// In is a read-only view of one unit's partition of the global input.
type In[T Elem] struct {
	block []T
}

// CopyIn bulk-copies one tile from the partition into a local slot buffer.
// localOff is relative to the unit's block, not to the global array.
func (v In[T]) CopyIn(dst []T, localOff uint32) {
	copy(dst, v.block[localOff:localOff+uint32(len(dst))])
}

// Out is a write-only view of one unit's partition of the global output.
type Out[T Elem] struct {
	block []T
}

// CopyOut bulk-copies one computed tile from a local slot buffer back into
// the partition at the given block-relative offset.
func (v Out[T]) CopyOut(src []T, localOff uint32) {
	copy(v.block[localOff:localOff+uint32(len(src))], src)
}
