package pipeline_test

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/JZBgit/AscendC-Mish/device"
	"github.com/JZBgit/AscendC-Mish/kernel"
	"github.com/JZBgit/AscendC-Mish/pipeline"
)

func Example() {
	// 16 elements over 2 units with 2 tiles per unit: each unit owns a
	// block of 8 and streams it as 4 tiles of 2 elements.
	in := device.FromFloat32s[float16.Float16](make([]float32, 16))
	out := make([]float16.Float16, len(in))

	cfg := pipeline.Config{Units: 2, TilesPerUnit: 2, Pipelined: true}
	p, err := pipeline.Launch(cfg, in, out, kernel.Mish[float16.Float16]{})
	if err != nil {
		panic(err)
	}

	fmt.Println("tile length:", p.TileLength)
	fmt.Printf("Mish(0) = %.4f\n", device.ToFloat32s(out)[0])
	// Output:
	// tile length: 2
	// Mish(0) = 0.0000
}
