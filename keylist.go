// Package keylist implements a map like wrapper around an ordered list of
// key value pairs, inspired by Elixir's keyword lists. The list keeps every
// entry in insertion order, keys may repeat, and key based lookups scan the
// sequence linearly. Keys only need an equality operation, so key types that
// cannot be used as Go map keys (slices, for example) work through NewFunc.
//
// For average O(1) lookups with comparable keys see the hashkeylist package.
package keylist

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/thomas9911/keylist/utils"
)

type (
	// Keylist is an ordered sequence of key value pairs behaving like a
	// multimap. It must be created via New, NewFunc, From, FromFunc or
	// FromMap; the zero value has no key equality installed.
	Keylist[K, V any] struct {
		entries []utils.Pair[K, V]
		eq      utils.EqualFn[K]
	}

	// LessPairFn compares two entries for the comparator based sorts.
	LessPairFn[K, V any] func(a utils.Pair[K, V], b utils.Pair[K, V]) (less bool)

	// ForEachFn visits an entry together with its current position.
	ForEachFn[K, V any] func(key K, value V, order int)
)

// New creates an empty Keylist comparing keys with ==.
func New[K comparable, V any]() *Keylist[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a == b })
}

// NewFunc creates an empty Keylist with a custom key equality. It is the way
// to hold keys that are not comparable in the Go sense.
func NewFunc[K, V any](eq utils.EqualFn[K]) *Keylist[K, V] {
	return &Keylist[K, V]{eq: eq}
}

// From creates a Keylist holding exactly the given pairs, order and
// duplicates preserved. The input slice is copied.
func From[K comparable, V any](pairs []utils.Pair[K, V]) *Keylist[K, V] {
	kl := New[K, V]()
	kl.entries = append(kl.entries, pairs...)
	return kl
}

// FromFunc is From with a custom key equality.
func FromFunc[K, V any](eq utils.EqualFn[K], pairs []utils.Pair[K, V]) *Keylist[K, V] {
	kl := NewFunc[K, V](eq)
	kl.entries = append(kl.entries, pairs...)
	return kl
}

// Push appends an entry at the end of the sequence.
func (kl *Keylist[K, V]) Push(key K, value V) {
	kl.entries = append(kl.entries, utils.Pair[K, V]{Key: key, Value: value})
}

// Insert places an entry at the given position, shifting subsequent entries.
// Valid positions are 0 up to and including Len.
func (kl *Keylist[K, V]) Insert(index int, key K, value V) error {
	if index < 0 || index > len(kl.entries) {
		return errors.Wrapf(ErrIndexOutOfRange, "cannot insert at %d with length %d", index, len(kl.entries))
	}

	kl.entries = append(kl.entries, utils.Pair[K, V]{})
	copy(kl.entries[index+1:], kl.entries[index:])
	kl.entries[index] = utils.Pair[K, V]{Key: key, Value: value}
	return nil
}

// Remove deletes and returns the entry at the given position.
func (kl *Keylist[K, V]) Remove(index int) (utils.Pair[K, V], error) {
	if index < 0 || index >= len(kl.entries) {
		zero := utils.GetZero[utils.Pair[K, V]]()
		return zero, errors.Wrapf(ErrIndexOutOfRange, "cannot remove at %d with length %d", index, len(kl.entries))
	}

	removed := kl.entries[index]
	kl.entries = append(kl.entries[:index], kl.entries[index+1:]...)
	return removed, nil
}

// Pop removes and returns the last entry. The second return value is false
// when the list is empty.
func (kl *Keylist[K, V]) Pop() (utils.Pair[K, V], bool) {
	if len(kl.entries) == 0 {
		return utils.GetZero[utils.Pair[K, V]](), false
	}

	last := kl.entries[len(kl.entries)-1]
	kl.entries = kl.entries[:len(kl.entries)-1]
	return last, true
}

// Get returns the value of the first entry matching the key in sequence
// order.
func (kl *Keylist[K, V]) Get(key K) (V, bool) {
	for i := range kl.entries {
		if kl.eq(kl.entries[i].Key, key) {
			return kl.entries[i].Value, true
		}
	}

	return utils.GetZero[V](), false
}

// GetKeyValue returns the first entry matching the key rather than just its
// value.
func (kl *Keylist[K, V]) GetKeyValue(key K) (utils.Pair[K, V], bool) {
	for i := range kl.entries {
		if kl.eq(kl.entries[i].Key, key) {
			return kl.entries[i], true
		}
	}

	return utils.GetZero[utils.Pair[K, V]](), false
}

// GetAll returns the values of every entry matching the key, in sequence
// order. The result is nil when no entry matches.
func (kl *Keylist[K, V]) GetAll(key K) []V {
	var values []V
	for i := range kl.entries {
		if kl.eq(kl.entries[i].Key, key) {
			values = append(values, kl.entries[i].Value)
		}
	}

	return values
}

// GetAllKeyValue returns every entry matching the key, in sequence order.
func (kl *Keylist[K, V]) GetAllKeyValue(key K) []utils.Pair[K, V] {
	var pairs []utils.Pair[K, V]
	for i := range kl.entries {
		if kl.eq(kl.entries[i].Key, key) {
			pairs = append(pairs, kl.entries[i])
		}
	}

	return pairs
}

// Has reports whether at least one entry matches the key.
func (kl *Keylist[K, V]) Has(key K) bool {
	_, found := kl.GetKeyValue(key)
	return found
}

// Extend appends all given pairs in order, equivalent to repeated Push.
func (kl *Keylist[K, V]) Extend(pairs []utils.Pair[K, V]) {
	kl.entries = append(kl.entries, pairs...)
}

func (kl *Keylist[K, V]) Len() int {
	return len(kl.entries)
}

func (kl *Keylist[K, V]) IsEmpty() bool {
	return len(kl.entries) == 0
}

// Pairs returns a copy of the underlying sequence.
func (kl *Keylist[K, V]) Pairs() []utils.Pair[K, V] {
	pairs := make([]utils.Pair[K, V], len(kl.entries))
	copy(pairs, kl.entries)
	return pairs
}

// All yields every entry in current sequence order. Each call starts a fresh
// traversal.
func (kl *Keylist[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range kl.entries {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys yields every key in current sequence order, duplicates included.
func (kl *Keylist[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, p := range kl.entries {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values yields every value in current sequence order.
func (kl *Keylist[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, p := range kl.entries {
			if !yield(p.Value) {
				return
			}
		}
	}
}

func (kl *Keylist[K, V]) ForEach(f ForEachFn[K, V]) {
	for i, p := range kl.entries {
		f(p.Key, p.Value, i)
	}
}

// Clone returns an independent shallow copy sharing the key equality.
func (kl *Keylist[K, V]) Clone() *Keylist[K, V] {
	result := NewFunc[K, V](kl.eq)
	result.entries = append(result.entries, kl.entries...)
	return result
}

// SwappedFunc consumes the sequence into a new Keylist with the key and value
// roles of every entry exchanged, order preserved. The given equality becomes
// the new list's key equality. For comparable values use the package level
// Swapped instead.
func (kl *Keylist[K, V]) SwappedFunc(eq utils.EqualFn[V]) *Keylist[V, K] {
	result := NewFunc[V, K](eq)
	result.entries = make([]utils.Pair[V, K], 0, len(kl.entries))
	for _, p := range kl.entries {
		result.entries = append(result.entries, p.Swapped())
	}
	return result
}

// EqualFunc reports whether both lists hold element-wise equal sequences in
// the same order under the given pair equality.
func (kl *Keylist[K, V]) EqualFunc(other *Keylist[K, V], eq utils.EqualFn[utils.Pair[K, V]]) bool {
	if len(kl.entries) != len(other.entries) {
		return false
	}

	for i := range kl.entries {
		if !eq(kl.entries[i], other.entries[i]) {
			return false
		}
	}

	return true
}
