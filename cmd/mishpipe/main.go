// Command mishpipe runs the tile-pipelined Mish operator over a ramp input
// and checks the result against a straight elementwise evaluation.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/x448/float16"

	"github.com/JZBgit/AscendC-Mish/device"
	"github.com/JZBgit/AscendC-Mish/kernel"
	"github.com/JZBgit/AscendC-Mish/pipeline"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("mishpipe %s\n", version)
		return
	}

	// The reference operator configuration: 2048 half-precision elements
	// over 8 units, 8 tiles per unit.
	const totalLength = 2048

	ramp := make([]float32, totalLength)
	for i := range ramp {
		ramp[i] = -8 + 16*float32(i)/totalLength
	}

	in := device.FromFloat32s[float16.Float16](ramp)
	out := make([]float16.Float16, totalLength)

	cfg := pipeline.Config{Units: 8, TilesPerUnit: 8, Pipelined: true}
	p, err := pipeline.Launch(cfg, in, out, kernel.Mish[float16.Float16]{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "mishpipe: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("plan: units=%d blockLength=%d tileLength=%d loopCount=%d\n",
		p.Units, p.BlockLength, p.TileLength, p.LoopCount())

	var maxErr float64
	got := device.ToFloat32s(out)
	for i, x := range ramp {
		want := float64(x) * math.Tanh(math.Log1p(math.Exp(float64(x))))
		if e := math.Abs(want - float64(got[i])); e > maxErr {
			maxErr = e
		}
	}
	fmt.Printf("max abs error vs closed-form Mish over %d elements: %.6f\n",
		totalLength, maxErr)
}
