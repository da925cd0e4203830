package utils

type (
	// Pair is a single key value entry held by a keylist. It has no identity
	// beyond its content and its position in the owning sequence.
	Pair[K, V any] struct {
		Key   K
		Value V
	}

	// EqualFn reports whether two values of the same type are equal.
	EqualFn[T any] func(a, b T) bool
)

// Swapped returns the pair with the key and value roles exchanged.
func (p Pair[K, V]) Swapped() Pair[V, K] {
	return Pair[V, K]{Key: p.Value, Value: p.Key}
}

func GetZero[T any]() T {
	var result T
	return result
}
