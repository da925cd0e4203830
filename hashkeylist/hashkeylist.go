// Package hashkeylist implements the same ordered multimap contract as the
// root keylist package, augmented with a position index keyed by the entry
// key. Lookups by key run in average O(1) at the cost of requiring a
// comparable key type and of extra bookkeeping on every positional mutation.
package hashkeylist

import (
	"iter"
	"sort"

	"github.com/pkg/errors"
	"github.com/thomas9911/keylist/utils"
)

type (
	// HashKeylist is an ordered sequence of key value pairs plus an index
	// mapping every key to the ascending positions holding it. The index is
	// consistent with the sequence after every public call.
	HashKeylist[K comparable, V any] struct {
		entries []utils.Pair[K, V]
		index   map[K][]int
	}

	// LessPairFn compares two entries for the comparator based sorts.
	LessPairFn[K comparable, V any] func(a utils.Pair[K, V], b utils.Pair[K, V]) (less bool)

	// ForEachFn visits an entry together with its current position.
	ForEachFn[K comparable, V any] func(key K, value V, order int)
)

// ErrIndexOutOfRange is returned by positional operations addressing a
// position outside the valid range of the sequence.
var ErrIndexOutOfRange = errors.New("index out of range")

// New creates an empty HashKeylist.
func New[K comparable, V any]() *HashKeylist[K, V] {
	return &HashKeylist[K, V]{
		index: make(map[K][]int),
	}
}

// WithCapacity creates an empty HashKeylist with room for the given number
// of entries.
func WithCapacity[K comparable, V any](capacity int) *HashKeylist[K, V] {
	return &HashKeylist[K, V]{
		entries: make([]utils.Pair[K, V], 0, capacity),
		index:   make(map[K][]int, capacity),
	}
}

// Push appends an entry at the end of the sequence. O(1).
func (hl *HashKeylist[K, V]) Push(key K, value V) {
	hl.entries = append(hl.entries, utils.Pair[K, V]{Key: key, Value: value})
	hl.index[key] = append(hl.index[key], len(hl.entries)-1)
}

// Insert places an entry at the given position, shifting subsequent entries.
// Valid positions are 0 up to and including Len. Every recorded position at
// or after the insertion point moves up by one before the call returns.
func (hl *HashKeylist[K, V]) Insert(index int, key K, value V) error {
	if index < 0 || index > len(hl.entries) {
		return errors.Wrapf(ErrIndexOutOfRange, "cannot insert at %d with length %d", index, len(hl.entries))
	}

	hl.entries = append(hl.entries, utils.Pair[K, V]{})
	copy(hl.entries[index+1:], hl.entries[index:])
	hl.entries[index] = utils.Pair[K, V]{Key: key, Value: value}

	hl.shiftFrom(index, 1)
	hl.addPosition(key, index)
	return nil
}

// Remove deletes and returns the entry at the given position. Every recorded
// position after the removal point moves down by one before the call returns.
func (hl *HashKeylist[K, V]) Remove(index int) (utils.Pair[K, V], error) {
	if index < 0 || index >= len(hl.entries) {
		zero := utils.GetZero[utils.Pair[K, V]]()
		return zero, errors.Wrapf(ErrIndexOutOfRange, "cannot remove at %d with length %d", index, len(hl.entries))
	}

	removed := hl.entries[index]
	hl.entries = append(hl.entries[:index], hl.entries[index+1:]...)

	hl.dropPosition(removed.Key, index)
	hl.shiftFrom(index, -1)
	return removed, nil
}

// Pop removes and returns the last entry. The second return value is false
// when the list is empty.
func (hl *HashKeylist[K, V]) Pop() (utils.Pair[K, V], bool) {
	if len(hl.entries) == 0 {
		return utils.GetZero[utils.Pair[K, V]](), false
	}

	last := len(hl.entries) - 1
	p := hl.entries[last]
	hl.entries = hl.entries[:last]
	hl.dropPosition(p.Key, last)
	return p, true
}

// shiftFrom moves every recorded position at or after the given one by delta.
func (hl *HashKeylist[K, V]) shiftFrom(index int, delta int) {
	for _, positions := range hl.index {
		for i, pos := range positions {
			if pos >= index {
				positions[i] = pos + delta
			}
		}
	}
}

// addPosition splices a position into the key's list keeping ascending order.
func (hl *HashKeylist[K, V]) addPosition(key K, index int) {
	positions := hl.index[key]
	at := sort.SearchInts(positions, index)
	positions = append(positions, 0)
	copy(positions[at+1:], positions[at:])
	positions[at] = index
	hl.index[key] = positions
}

// dropPosition removes a position from the key's list, deleting the key once
// its last occurrence is gone.
func (hl *HashKeylist[K, V]) dropPosition(key K, index int) {
	positions := hl.index[key]
	at := sort.SearchInts(positions, index)
	positions = append(positions[:at], positions[at+1:]...)
	if len(positions) == 0 {
		delete(hl.index, key)
		return
	}
	hl.index[key] = positions
}

// Get returns the value of the first entry matching the key in sequence
// order. Average O(1).
func (hl *HashKeylist[K, V]) Get(key K) (V, bool) {
	positions, found := hl.index[key]
	if !found {
		return utils.GetZero[V](), false
	}

	return hl.entries[positions[0]].Value, true
}

// GetKeyValue returns the first entry matching the key rather than just its
// value.
func (hl *HashKeylist[K, V]) GetKeyValue(key K) (utils.Pair[K, V], bool) {
	positions, found := hl.index[key]
	if !found {
		return utils.GetZero[utils.Pair[K, V]](), false
	}

	return hl.entries[positions[0]], true
}

// GetAll returns the values of every entry matching the key, in sequence
// order. The result is nil when no entry matches.
func (hl *HashKeylist[K, V]) GetAll(key K) []V {
	positions, found := hl.index[key]
	if !found {
		return nil
	}

	values := make([]V, 0, len(positions))
	for _, pos := range positions {
		values = append(values, hl.entries[pos].Value)
	}
	return values
}

// GetAllKeyValue returns every entry matching the key, in sequence order.
func (hl *HashKeylist[K, V]) GetAllKeyValue(key K) []utils.Pair[K, V] {
	positions, found := hl.index[key]
	if !found {
		return nil
	}

	pairs := make([]utils.Pair[K, V], 0, len(positions))
	for _, pos := range positions {
		pairs = append(pairs, hl.entries[pos])
	}
	return pairs
}

// Has reports whether at least one entry matches the key.
func (hl *HashKeylist[K, V]) Has(key K) bool {
	_, found := hl.index[key]
	return found
}

// Extend appends all given pairs in order, equivalent to repeated Push.
func (hl *HashKeylist[K, V]) Extend(pairs []utils.Pair[K, V]) {
	for _, p := range pairs {
		hl.Push(p.Key, p.Value)
	}
}

func (hl *HashKeylist[K, V]) Len() int {
	return len(hl.entries)
}

func (hl *HashKeylist[K, V]) IsEmpty() bool {
	return len(hl.entries) == 0
}

// Pairs returns a copy of the underlying sequence.
func (hl *HashKeylist[K, V]) Pairs() []utils.Pair[K, V] {
	pairs := make([]utils.Pair[K, V], len(hl.entries))
	copy(pairs, hl.entries)
	return pairs
}

// All yields every entry in current sequence order, independent of the
// index. Each call starts a fresh traversal.
func (hl *HashKeylist[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range hl.entries {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys yields every key in current sequence order, duplicates included.
func (hl *HashKeylist[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, p := range hl.entries {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values yields every value in current sequence order.
func (hl *HashKeylist[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, p := range hl.entries {
			if !yield(p.Value) {
				return
			}
		}
	}
}

func (hl *HashKeylist[K, V]) ForEach(f ForEachFn[K, V]) {
	for i, p := range hl.entries {
		f(p.Key, p.Value, i)
	}
}

// Clone returns an independent shallow copy of entries and index.
func (hl *HashKeylist[K, V]) Clone() *HashKeylist[K, V] {
	result := WithCapacity[K, V](len(hl.entries))
	result.entries = append(result.entries, hl.entries...)
	for key, positions := range hl.index {
		result.index[key] = append([]int(nil), positions...)
	}
	return result
}

// ToMap collapses the sequence into a plain map. Duplicate keys resolve to
// the last entry in sequence order and the order itself is discarded.
func (hl *HashKeylist[K, V]) ToMap() map[K]V {
	m := make(map[K]V, len(hl.index))
	for _, p := range hl.entries {
		m[p.Key] = p.Value
	}
	return m
}

// EqualFunc reports whether both lists hold element-wise equal sequences in
// the same order under the given pair equality.
func (hl *HashKeylist[K, V]) EqualFunc(other *HashKeylist[K, V], eq utils.EqualFn[utils.Pair[K, V]]) bool {
	if len(hl.entries) != len(other.entries) {
		return false
	}

	for i := range hl.entries {
		if !eq(hl.entries[i], other.entries[i]) {
			return false
		}
	}

	return true
}
