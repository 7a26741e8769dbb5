// Package kernel implements the compute stage of the pipeline: the
// elementwise activation applied to one tile of data held in scratch memory.
//
// The primary stage is Mish, f(x) = x * tanh(ln(1 + exp(x))), decomposed
// into the same ordered sub-steps as the reference vector implementation so
// that rounding behavior matches it step for step. ExpDiff is a separate,
// non-equivalent variant carried alongside it (see its doc comment).
package kernel

import "github.com/JZBgit/AscendC-Mish/internal/device"

// Stage computes one tile: dst[i] = f(src[i]) for every element. dst, src
// and the scratch tiles all have the plan's tile length. Implementations
// must not retain any of the slices past the call and must not allocate.
type Stage[T device.Elem] interface {
	Compute(dst, src []T, scratch *Scratch[T])
}

// Mish applies f(x) = x * tanh(Softplus(x)) with Softplus(x) = ln(1 + exp(x))
// and tanh expressed through exponentials:
//
//	tanh(t) = (exp(t) - exp(-t)) / (exp(t) + exp(-t))
//
// The decomposition below follows the reference ordering exactly; reordering
// the arithmetic would change rounding in the narrow dtypes.
type Mish[T device.Elem] struct{}

// Compute applies Mish to one tile. src is left untouched.
func (Mish[T]) Compute(dst, src []T, scratch *Scratch[T]) {
	t := scratch.Tmp()
	u := scratch.Aux()

	// Softplus(x) = ln(1 + exp(x))
	Exp(t, src)
	Adds(t, t, 1)
	Ln(t, t)

	// tanh(sp) = (exp(sp) - exp(-sp)) / (exp(sp) + exp(-sp)), with
	// exp(-sp) computed as the reciprocal of exp(sp).
	Exp(t, t)
	Recip(dst, t)
	Sub(u, t, dst)
	Add(dst, t, dst)
	Div(u, u, dst)

	// Mish(x) = x * tanh(Softplus(x))
	Mul(dst, src, u)
}

// ExpDiff applies y = (exp(x) - 1/exp(x)) * 0.5, which is sinh(x). The
// reference source ships this expression as a second variant of the same
// operator; it is not Mish and is kept as its own stage so the two can never
// be mistaken for one another.
type ExpDiff[T device.Elem] struct{}

// Compute applies the two-term variant to one tile. src is left untouched.
func (ExpDiff[T]) Compute(dst, src []T, scratch *Scratch[T]) {
	t := scratch.Tmp()

	Exp(t, src)
	Recip(dst, t)
	Sub(dst, t, dst)
	Muls(dst, dst, 0.5)
}
