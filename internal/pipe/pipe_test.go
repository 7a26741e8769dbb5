package pipe

import (
	"testing"
	"time"
)

func TestQueue_SlotsPreallocated(t *testing.T) {
	q := NewQueue[float32](16)

	a := q.Alloc()
	b := q.Alloc()

	if len(a.Data()) != 16 || len(b.Data()) != 16 {
		t.Fatalf("slot lengths = %d, %d; want 16", len(a.Data()), len(b.Data()))
	}
	if &a.Data()[0] == &b.Data()[0] {
		t.Fatal("both slots share one backing buffer")
	}
}

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue[float32](1)

	a := q.Alloc()
	a.Data()[0] = 1
	q.Enqueue(a)

	b := q.Alloc()
	b.Data()[0] = 2
	q.Enqueue(b)

	if got := q.Dequeue().Data()[0]; got != 1 {
		t.Errorf("first dequeue = %v, want 1", got)
	}
	if got := q.Dequeue().Data()[0]; got != 2 {
		t.Errorf("second dequeue = %v, want 2", got)
	}
}

func TestQueue_AllocBlocksAtDepth(t *testing.T) {
	q := NewQueue[float32](4)

	a := q.Alloc()
	q.Alloc()

	third := make(chan Slot[float32])
	go func() {
		third <- q.Alloc()
	}()

	select {
	case <-third:
		t.Fatal("third Alloc returned with both slots outstanding")
	case <-time.After(20 * time.Millisecond):
		// Blocked, as it must be.
	}

	q.Release(a)

	select {
	case s := <-third:
		if &s.Data()[0] != &a.Data()[0] {
			t.Error("unblocked Alloc did not reuse the released slot")
		}
	case <-time.After(time.Second):
		t.Fatal("third Alloc still blocked after a release")
	}
}

func TestQueue_DequeueBlocksUntilEnqueue(t *testing.T) {
	q := NewQueue[float32](4)

	got := make(chan Slot[float32])
	go func() {
		got <- q.Dequeue()
	}()

	select {
	case <-got:
		t.Fatal("Dequeue returned with nothing enqueued")
	case <-time.After(20 * time.Millisecond):
	}

	s := q.Alloc()
	s.Data()[0] = 7
	q.Enqueue(s)

	select {
	case s := <-got:
		if s.Data()[0] != 7 {
			t.Errorf("dequeued slot holds %v, want 7", s.Data()[0])
		}
	case <-time.After(time.Second):
		t.Fatal("Dequeue still blocked after an enqueue")
	}
}

func TestQueue_DoubleReleasePanics(t *testing.T) {
	q := NewQueue[float32](4)
	s := q.Alloc()
	q.Release(s)

	defer func() {
		if recover() == nil {
			t.Fatal("double release did not panic")
		}
	}()
	q.Release(s)
}

func TestQueue_EnqueueAfterReleasePanics(t *testing.T) {
	q := NewQueue[float32](4)
	s := q.Alloc()
	q.Release(s)

	defer func() {
		if recover() == nil {
			t.Fatal("enqueue of a released slot did not panic")
		}
	}()
	q.Enqueue(s)
}
