package hashkeylist

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/thomas9911/keylist/utils"
)

// SortBy reorders the sequence in place with a stable sort under the given
// comparator, rebuilds the position index and returns the list for chaining.
func (hl *HashKeylist[K, V]) SortBy(less LessPairFn[K, V]) *HashKeylist[K, V] {
	sort.SliceStable(hl.entries, func(i, j int) bool {
		return less(hl.entries[i], hl.entries[j])
	})
	hl.reindex()
	return hl
}

// reindex rebuilds the position index from the sequence. Appending positions
// in one ascending pass keeps every key's list sorted.
func (hl *HashKeylist[K, V]) reindex() {
	hl.index = make(map[K][]int, len(hl.index))
	for i, p := range hl.entries {
		hl.index[p.Key] = append(hl.index[p.Key], i)
	}
}

// Sort reorders the sequence by key ascending, entries with equal keys
// ordered by value.
func Sort[K constraints.Ordered, V constraints.Ordered](hl *HashKeylist[K, V]) {
	hl.SortBy(func(a, b utils.Pair[K, V]) bool {
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.Value < b.Value
	})
}

// SortByKey reorders the sequence by key ascending; entries with equal keys
// keep their relative order.
func SortByKey[K constraints.Ordered, V any](hl *HashKeylist[K, V]) {
	hl.SortBy(func(a, b utils.Pair[K, V]) bool {
		return a.Key < b.Key
	})
}

// SortByValue reorders the sequence by value ascending; entries with equal
// values keep their relative order.
func SortByValue[K comparable, V constraints.Ordered](hl *HashKeylist[K, V]) {
	hl.SortBy(func(a, b utils.Pair[K, V]) bool {
		return a.Value < b.Value
	})
}
