package pipeline

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/JZBgit/AscendC-Mish/internal/device"
	"github.com/JZBgit/AscendC-Mish/internal/kernel"
	"github.com/JZBgit/AscendC-Mish/internal/plan"
)

// ErrLengthMismatch reports input and output buffers of different lengths.
var ErrLengthMismatch = errors.New("input and output lengths differ")

// Config controls a Launch.
type Config struct {
	Units        uint32 // parallel compute units
	TilesPerUnit uint32 // tiling factor within each unit's block
	Pipelined    bool   // overlap copy and compute within each unit
}

// DefaultConfig mirrors the reference host's sizing: eight units and eight
// tiles per unit, capped by the CPU count so small machines are not
// oversubscribed. Overlap is on.
func DefaultConfig() Config {
	units := uint32(plan.DefaultBlockDim)
	if n := uint32(runtime.NumCPU()); n < units {
		units = n
	}
	return Config{
		Units:        units,
		TilesPerUnit: plan.DefaultTileNum,
		Pipelined:    true,
	}
}

// Launch runs the operator over the whole tensor: it computes the tiling
// plan, and if planning succeeds fans one executor per unit out over
// disjoint partitions of in and out. Planning errors are returned before any
// unit starts; once a valid plan exists the run cannot fail.
//
// Units share nothing and are not synchronized with each other; Launch
// returns when the last one drains. There is no cancellation — this is a
// batch kernel, not a service.
func Launch[T device.Elem](cfg Config, in, out []T, stage kernel.Stage[T]) (plan.Plan, error) {
	if len(in) != len(out) {
		return plan.Plan{}, fmt.Errorf("pipeline: in=%d out=%d: %w",
			len(in), len(out), ErrLengthMismatch)
	}

	p, err := plan.Compute(uint32(len(in)), cfg.Units, cfg.TilesPerUnit)
	if err != nil {
		return plan.Plan{}, err
	}

	inG := device.NewGlobal(in)
	outG := device.NewGlobal(out)

	var wg sync.WaitGroup
	for unit := uint32(0); unit < p.Units; unit++ {
		wg.Add(1)
		go func(unit uint32) {
			defer wg.Done()
			e := New(p, unit, inG, outG, stage)
			if cfg.Pipelined {
				e.RunPipelined()
			} else {
				e.Run()
			}
		}(unit)
	}
	wg.Wait()

	return p, nil
}
