// Package either provides a two-variant result container used by the
// application layer to return expected failures without relying on the
// error channel.
package either

// Either holds exactly one of a Left (failure) or a Right (success) value.
// The zero value is not meaningful; build values with Left or Right.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left builds a failed result.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right builds a successful result.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

func (e Either[L, R]) IsLeft() bool  { return !e.isRight }
func (e Either[L, R]) IsRight() bool { return e.isRight }

// LeftValue returns the failure and true when e is a Left.
func (e Either[L, R]) LeftValue() (L, bool) {
	return e.left, !e.isRight
}

// RightValue returns the success value and true when e is a Right.
func (e Either[L, R]) RightValue() (R, bool) {
	return e.right, e.isRight
}

// Value returns whichever side is populated.
func (e Either[L, R]) Value() any {
	if e.isRight {
		return e.right
	}
	return e.left
}

// Fold applies onLeft or onRight depending on the populated side.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
