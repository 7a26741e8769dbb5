// Package pipe implements the double-buffering primitive of the engine: a
// single-producer/single-consumer queue with exactly two reusable slots.
//
// Two slots are what permits overlap — while the consumer works on slot A the
// producer can be filling slot B — while still bounding memory and creating
// backpressure. Alloc and Dequeue block; Enqueue and Release never do.
//
// Slot buffers are allocated once at queue construction and reused for the
// whole run. Ownership of a slot moves producer → consumer on Enqueue/Dequeue
// and back to the free pool on Release; it is never shared.
package pipe

import (
	"fmt"
	"sync"

	"github.com/JZBgit/AscendC-Mish/internal/device"
)

// Depth is the slot count per queue direction. The tiling formula divides it
// out of the tile length and the pipeline loop multiplies it back in, so it
// is fixed here rather than configurable.
const Depth = 2

type slotState uint8

const (
	slotFree  slotState = iota
	slotOwned           // held by the producer after Alloc, or the consumer after Dequeue
	slotReady           // enqueued, waiting for the consumer
)

func (s slotState) String() string {
	switch s {
	case slotFree:
		return "free"
	case slotOwned:
		return "owned"
	case slotReady:
		return "ready"
	default:
		return "invalid"
	}
}

// Slot is a handle to one scratch buffer. It is valid from Alloc or Dequeue
// until the matching Release; using it outside that window is a programming
// error, not a runtime condition.
type Slot[T device.Elem] struct {
	q   *Queue[T]
	idx int
}

// Data returns the slot's backing buffer of tile-length elements.
func (s Slot[T]) Data() []T {
	return s.q.slots[s.idx]
}

// Queue is a bounded slot queue for one pipeline direction.
type Queue[T device.Elem] struct {
	slots [Depth][]T

	mu    sync.Mutex
	state [Depth]slotState

	free  chan int // indices of released slots, FIFO
	ready chan int // indices of enqueued slots, FIFO
}

// NewQueue allocates a queue whose Depth slots each hold tileLength
// elements. No further allocation happens for the lifetime of the queue.
func NewQueue[T device.Elem](tileLength uint32) *Queue[T] {
	q := &Queue[T]{
		free:  make(chan int, Depth),
		ready: make(chan int, Depth),
	}
	for i := range q.slots {
		q.slots[i] = make([]T, tileLength)
		q.free <- i
	}
	return q
}

// Alloc takes a free slot for the producer, blocking until one is released.
// At most Depth slots can be outstanding, which is the backpressure bound of
// the whole pipeline.
func (q *Queue[T]) Alloc() Slot[T] {
	idx := <-q.free
	q.transition(idx, slotFree, slotOwned, "Alloc")
	return Slot[T]{q: q, idx: idx}
}

// Enqueue hands a filled slot to the consumer. Slots are dequeued in enqueue
// order, so tile i's output can never be overtaken by tile i+1's.
func (q *Queue[T]) Enqueue(s Slot[T]) {
	q.transition(s.idx, slotOwned, slotReady, "Enqueue")
	q.ready <- s.idx
}

// Dequeue takes the next ready slot for the consumer, blocking until the
// producer enqueues one.
func (q *Queue[T]) Dequeue() Slot[T] {
	idx := <-q.ready
	q.transition(idx, slotReady, slotOwned, "Dequeue")
	return Slot[T]{q: q, idx: idx}
}

// Release returns a slot to the free pool. It must be called exactly once
// per Alloc/Dequeue pairing; a double release panics.
func (q *Queue[T]) Release(s Slot[T]) {
	q.transition(s.idx, slotOwned, slotFree, "Release")
	q.free <- s.idx
}

func (q *Queue[T]) transition(idx int, from, to slotState, op string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.state[idx] != from {
		panic(fmt.Sprintf("pipe: %s of slot %d in state %s (want %s)", op, idx, q.state[idx], from))
	}
	q.state[idx] = to
}
