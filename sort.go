package keylist

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/thomas9911/keylist/utils"
)

// SortBy reorders the sequence in place with a stable sort under the given
// comparator and returns the list for chaining. The new order becomes the
// baseline for iteration and first-match lookups.
func (kl *Keylist[K, V]) SortBy(less LessPairFn[K, V]) *Keylist[K, V] {
	sort.SliceStable(kl.entries, func(i, j int) bool {
		return less(kl.entries[i], kl.entries[j])
	})
	return kl
}

// Sort reorders the sequence by key ascending, entries with equal keys
// ordered by value.
func Sort[K constraints.Ordered, V constraints.Ordered](kl *Keylist[K, V]) {
	kl.SortBy(func(a, b utils.Pair[K, V]) bool {
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.Value < b.Value
	})
}

// SortByKey reorders the sequence by key ascending; entries with equal keys
// keep their relative order.
func SortByKey[K constraints.Ordered, V any](kl *Keylist[K, V]) {
	kl.SortBy(func(a, b utils.Pair[K, V]) bool {
		return a.Key < b.Key
	})
}

// SortByValue reorders the sequence by value ascending; entries with equal
// values keep their relative order.
func SortByValue[K any, V constraints.Ordered](kl *Keylist[K, V]) {
	kl.SortBy(func(a, b utils.Pair[K, V]) bool {
		return a.Value < b.Value
	})
}

// GetKeyValueSorted finds the first entry matching the key with a binary
// search instead of a linear scan. The sequence must currently be sorted by
// key, e.g. after Sort or SortByKey.
func GetKeyValueSorted[K constraints.Ordered, V any](kl *Keylist[K, V], key K) (utils.Pair[K, V], bool) {
	n := len(kl.entries)
	i := sort.Search(n, func(i int) bool { return kl.entries[i].Key >= key })
	if i < n && kl.entries[i].Key == key {
		return kl.entries[i], true
	}

	return utils.GetZero[utils.Pair[K, V]](), false
}

// GetSorted is GetKeyValueSorted returning only the value.
func GetSorted[K constraints.Ordered, V any](kl *Keylist[K, V], key K) (V, bool) {
	p, found := GetKeyValueSorted(kl, key)
	if !found {
		return utils.GetZero[V](), false
	}

	return p.Value, true
}
