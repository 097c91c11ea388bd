package utils

func Xor(a, b bool) bool {
	return a && !b || !a && b
}

// Not negates a predicate.
func Not[T any](p func(T) bool) func(T) bool {
	return func(v T) bool {
		return !p(v)
	}
}

// EqualTo returns a predicate matching values equal to want.
func EqualTo[T comparable](want T) func(T) bool {
	return func(v T) bool {
		return v == want
	}
}
