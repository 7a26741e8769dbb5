// Package pipeline drives the per-unit tile loop: CopyIn moves a tile from
// the unit's partition into a local slot, Compute applies the kernel stage,
// CopyOut moves the result back. Double-buffered queues let the copy of tile
// i+1 overlap the compute of tile i without any other synchronization.
package pipeline

import (
	"sync"

	"github.com/JZBgit/AscendC-Mish/internal/device"
	"github.com/JZBgit/AscendC-Mish/internal/kernel"
	"github.com/JZBgit/AscendC-Mish/internal/pipe"
	"github.com/JZBgit/AscendC-Mish/internal/plan"
)

// Executor runs one compute unit over its partition. It owns its queues and
// scratch exclusively; units never share state, so any number of executors
// built from the same plan may run in parallel.
type Executor[T device.Elem] struct {
	plan  plan.Plan
	in    device.In[T]
	out   device.Out[T]
	inQ   *pipe.Queue[T]
	outQ  *pipe.Queue[T]
	stage kernel.Stage[T]

	scratch *kernel.Scratch[T]
}

// New builds the executor for one unit. Queues and scratch are sized from
// the plan here, once; the run loop never allocates.
func New[T device.Elem](p plan.Plan, unit uint32, in, out *device.Global[T], stage kernel.Stage[T]) *Executor[T] {
	s := p.Slice(unit)
	inView, _ := in.View(s)
	_, outView := out.View(s)

	return &Executor[T]{
		plan:    p,
		in:      inView,
		out:     outView,
		inQ:     pipe.NewQueue[T](p.TileLength),
		outQ:    pipe.NewQueue[T](p.TileLength),
		stage:   stage,
		scratch: kernel.NewScratch[T](p.TileLength),
	}
}

// Run processes the unit's block one tile at a time, in increasing tile
// order: CopyIn(i), Compute(i), CopyOut(i) for every i in [0, LoopCount).
func (e *Executor[T]) Run() {
	n := e.plan.LoopCount()
	for i := uint32(0); i < n; i++ {
		e.copyIn(i)
		e.compute()
		e.copyOut(i)
	}
}

// RunPipelined processes the same tiles with each stage on its own
// goroutine, communicating only through the slot queues. Tile order within
// each stage is unchanged and the queues are FIFO, so output is identical to
// Run; the difference is overlap: while Compute works on tile i, CopyIn can
// already be filling the second slot with tile i+1.
func (e *Executor[T]) RunPipelined() {
	n := e.plan.LoopCount()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		for i := uint32(0); i < n; i++ {
			e.copyIn(i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := uint32(0); i < n; i++ {
			e.compute()
		}
	}()
	go func() {
		defer wg.Done()
		for i := uint32(0); i < n; i++ {
			e.copyOut(i)
		}
	}()

	wg.Wait()
}

func (e *Executor[T]) copyIn(i uint32) {
	s := e.inQ.Alloc()
	e.in.CopyIn(s.Data(), i*e.plan.TileLength)
	e.inQ.Enqueue(s)
}

func (e *Executor[T]) compute() {
	in := e.inQ.Dequeue()
	out := e.outQ.Alloc()
	e.stage.Compute(out.Data(), in.Data(), e.scratch)
	e.outQ.Enqueue(out)
	e.inQ.Release(in)
}

func (e *Executor[T]) copyOut(i uint32) {
	s := e.outQ.Dequeue()
	e.out.CopyOut(s.Data(), i*e.plan.TileLength)
	e.outQ.Release(s)
}
