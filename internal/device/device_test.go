package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/JZBgit/AscendC-Mish/internal/plan"
)

func TestView_CopyInReadsOwnPartition(t *testing.T) {
	p, err := plan.Compute(32, 2, 2)
	require.NoError(t, err)

	data := make([]float32, 32)
	for i := range data {
		data[i] = float32(i)
	}
	g := NewGlobal(data)

	// Unit 1 owns [16, 32); tile 2 of length 4 starts at local offset 8.
	in, _ := g.View(p.Slice(1))
	tile := make([]float32, 4)
	in.CopyIn(tile, 8)

	assert.Equal(t, []float32{24, 25, 26, 27}, tile)
}

func TestView_CopyOutWritesOwnPartition(t *testing.T) {
	p, err := plan.Compute(32, 2, 2)
	require.NoError(t, err)

	data := make([]float32, 32)
	g := NewGlobal(data)

	_, out := g.View(p.Slice(0))
	out.CopyOut([]float32{1, 2, 3, 4}, 4)

	assert.Equal(t, []float32{1, 2, 3, 4}, data[4:8])
	for i, v := range data {
		if i < 4 || i >= 8 {
			assert.Zerof(t, v, "element %d outside the tile must stay untouched", i)
		}
	}
}

func TestView_OutOfRangePanics(t *testing.T) {
	g := NewGlobal(make([]float32, 8))
	assert.Panics(t, func() {
		g.View(plan.Slice{Unit: 1, Offset: 8, Length: 8})
	})
}

func TestConvert_HalfRoundTrip(t *testing.T) {
	src := []float32{-10, -1, 0, 0.5, 1, 10}
	h := FromFloat32s[float16.Float16](src)
	back := ToFloat32s(h)

	for i := range src {
		// These values are exactly representable in half precision.
		assert.Equal(t, src[i], back[i])
	}
}

func TestConvert_Float32Identity(t *testing.T) {
	src := []float32{1, 2, 3}
	dst := FromFloat32s[float32](src)
	assert.Equal(t, src, dst)

	dst[0] = 99
	assert.Equal(t, float32(1), src[0], "conversion must copy, not alias")
}
