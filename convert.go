package keylist

import (
	"iter"

	"github.com/thomas9911/keylist/utils"
)

// FromSeq creates a Keylist from any iterator of key value pairs, in the
// iterator's order.
func FromSeq[K comparable, V any](seq iter.Seq2[K, V]) *Keylist[K, V] {
	kl := New[K, V]()
	for k, v := range seq {
		kl.Push(k, v)
	}
	return kl
}

// FromMap creates a Keylist holding every entry of the map. The resulting
// order is the map's iteration order and therefore unspecified.
func FromMap[K comparable, V any](m map[K]V) *Keylist[K, V] {
	kl := New[K, V]()
	kl.entries = make([]utils.Pair[K, V], 0, len(m))
	for k, v := range m {
		kl.entries = append(kl.entries, utils.Pair[K, V]{Key: k, Value: v})
	}
	return kl
}

// ToMap collapses the sequence into a plain map. Duplicate keys resolve to
// the last entry in sequence order and the order itself is discarded.
func ToMap[K comparable, V any](kl *Keylist[K, V]) map[K]V {
	m := make(map[K]V, len(kl.entries))
	for _, p := range kl.entries {
		m[p.Key] = p.Value
	}
	return m
}

// Swapped consumes the sequence into a new Keylist with the key and value
// roles of every entry exchanged, order preserved. The old value type becomes
// the key type and must therefore be comparable.
func Swapped[K any, V comparable](kl *Keylist[K, V]) *Keylist[V, K] {
	return kl.SwappedFunc(func(a, b V) bool { return a == b })
}

// Equal reports whether both lists hold element-wise equal sequences in the
// same order. Lists built via different insertion sequences compare unequal
// until sorted the same way.
func Equal[K, V comparable](a, b *Keylist[K, V]) bool {
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
func Contains[K, V comparable](kl *Keylist[K, V], pair utils.Pair[K, V]) bool {
	for i := range kl.entries {
		if kl.entries[i] == pair {
			return true
		}
	}

	return false
}
