package kernel

import (
	"math"

	"github.com/x448/float16"

	"github.com/JZBgit/AscendC-Mish/internal/device"
)

// Vector primitives over one tile. Each op walks the tile once and rounds
// its result back to the element type before the next op reads it; for half
// precision that reproduces the per-instruction rounding of a vector unit,
// which matters when output must match a reference decomposition
// step for step.
//
// dst and src may alias (in-place operation on the same buffer).

func mapUnary[T device.Elem](dst, src []T, f func(float32) float32) {
	switch s := any(src).(type) {
	case []float16.Float16:
		d := any(dst).([]float16.Float16)
		for i, v := range s {
			d[i] = float16.Fromfloat32(f(v.Float32()))
		}
	case []float32:
		d := any(dst).([]float32)
		for i, v := range s {
			d[i] = f(v)
		}
	}
}

func mapBinary[T device.Elem](dst, a, b []T, f func(x, y float32) float32) {
	switch av := any(a).(type) {
	case []float16.Float16:
		bv := any(b).([]float16.Float16)
		d := any(dst).([]float16.Float16)
		for i := range av {
			d[i] = float16.Fromfloat32(f(av[i].Float32(), bv[i].Float32()))
		}
	case []float32:
		bv := any(b).([]float32)
		d := any(dst).([]float32)
		for i := range av {
			d[i] = f(av[i], bv[i])
		}
	}
}

// Exp computes dst = exp(src) elementwise.
func Exp[T device.Elem](dst, src []T) {
	mapUnary(dst, src, func(x float32) float32 {
		return float32(math.Exp(float64(x)))
	})
}

// Ln computes dst = ln(src) elementwise. Non-positive inputs yield -Inf or
// NaN per IEEE semantics; the stage does not special-case them.
func Ln[T device.Elem](dst, src []T) {
	mapUnary(dst, src, func(x float32) float32 {
		return float32(math.Log(float64(x)))
	})
}

// Adds computes dst = src + s elementwise for a scalar s.
func Adds[T device.Elem](dst, src []T, s float32) {
	mapUnary(dst, src, func(x float32) float32 { return x + s })
}

// Muls computes dst = src * s elementwise for a scalar s.
func Muls[T device.Elem](dst, src []T, s float32) {
	mapUnary(dst, src, func(x float32) float32 { return x * s })
}

// Recip computes dst = 1 / src elementwise.
func Recip[T device.Elem](dst, src []T) {
	mapUnary(dst, src, func(x float32) float32 { return 1 / x })
}

// Add computes dst = a + b elementwise.
func Add[T device.Elem](dst, a, b []T) {
	mapBinary(dst, a, b, func(x, y float32) float32 { return x + y })
}

// Sub computes dst = a - b elementwise.
func Sub[T device.Elem](dst, a, b []T) {
	mapBinary(dst, a, b, func(x, y float32) float32 { return x - y })
}

// Mul computes dst = a * b elementwise.
func Mul[T device.Elem](dst, a, b []T) {
	mapBinary(dst, a, b, func(x, y float32) float32 { return x * y })
}

// Div computes dst = a / b elementwise.
func Div[T device.Elem](dst, a, b []T) {
	mapBinary(dst, a, b, func(x, y float32) float32 { return x / y })
}
