package device

import "github.com/x448/float16"

// FromFloat32s converts a float32 slice into a freshly allocated slice of
// the target element type, rounding to nearest-even for half precision.
func FromFloat32s[T Elem](src []float32) []T {
	dst := make([]T, len(src))
	switch d := any(dst).(type) {
	case []float16.Float16:
		for i, v := range src {
			d[i] = float16.Fromfloat32(v)
		}
	case []float32:
		copy(d, src)
	}
	return dst
}

// ToFloat32s widens a slice of elements into a freshly allocated float32
// slice. Widening from half is exact.
func ToFloat32s[T Elem](src []T) []float32 {
	dst := make([]float32, len(src))
	switch s := any(src).(type) {
	case []float16.Float16:
		for i, v := range s {
			dst[i] = v.Float32()
		}
	case []float32:
		copy(dst, s)
	}
	return dst
}
