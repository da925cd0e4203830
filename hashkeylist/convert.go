package hashkeylist

import (
	"iter"

	"github.com/thomas9911/keylist/utils"
)

// FromSeq creates a HashKeylist from any iterator of key value pairs, in the
// iterator's order.
func FromSeq[K comparable, V any](seq iter.Seq2[K, V]) *HashKeylist[K, V] {
	hl := New[K, V]()
	for k, v := range seq {
		hl.Push(k, v)
	}
	return hl
}

// From creates a HashKeylist holding exactly the given pairs, order and
// duplicates preserved.
func From[K comparable, V any](pairs []utils.Pair[K, V]) *HashKeylist[K, V] {
	hl := WithCapacity[K, V](len(pairs))
	for _, p := range pairs {
		hl.Push(p.Key, p.Value)
	}
	return hl
}

// FromMap creates a HashKeylist holding every entry of the map. The
// resulting order is the map's iteration order and therefore unspecified.
func FromMap[K comparable, V any](m map[K]V) *HashKeylist[K, V] {
	hl := WithCapacity[K, V](len(m))
	for k, v := range m {
		hl.Push(k, v)
	}
	return hl
}

// Swapped consumes the sequence into a new HashKeylist with the key and
// value roles of every entry exchanged, order preserved. The old value type
// becomes the key type and must therefore be comparable.
func Swapped[K comparable, V comparable](hl *HashKeylist[K, V]) *HashKeylist[V, K] {
	result := WithCapacity[V, K](len(hl.entries))
	for _, p := range hl.entries {
		result.Push(p.Value, p.Key)
	}
	return result
}

// Equal reports whether both lists hold element-wise equal sequences in the
// same order. Lists built via different insertion sequences compare unequal
// until sorted the same way.
func Equal[K, V comparable](a, b *HashKeylist[K, V]) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}

	for i := range a.entries {
		if a.entries[i] != b.entries[i] {
			return false
		}
	}

	return true
}

// Contains reports whether the exact key value pair occurs in the sequence.
func Contains[K, V comparable](hl *HashKeylist[K, V], pair utils.Pair[K, V]) bool {
	positions, found := hl.index[pair.Key]
	if !found {
		return false
	}

	for _, pos := range positions {
		if hl.entries[pos] == pair {
			return true
		}
	}

	return false
}
