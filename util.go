package oneorboth

import "iter"

type Pair[L, R any] struct {
	Left  L
	Right R
}

func (p Pair[L, R]) Unpack() (L, R) {
	return p.Left, p.Right
}

// Seq2 yields the pair once, for use with range-over-func.
func (p Pair[L, R]) Seq2() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		yield(p.Left, p.Right)
	}
}
