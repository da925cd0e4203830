package hashkeylist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thomas9911/keylist/hashkeylist"
	"github.com/thomas9911/keylist/utils"
)

func TestFromMap(t *testing.T) {
	t.Run("round trip through a map equals the sorted original", func(t *testing.T) {
		original := hashkeylist.From([]utils.Pair[string, int]{
			pair("a", 5), pair("b", 2), pair("c", 1),
		})

		restored := hashkeylist.FromMap(original.ToMap())
		hashkeylist.Sort(restored)

		sortedOriginal := original.Clone()
		hashkeylist.Sort(sortedOriginal)

		assert.True(t, hashkeylist.Equal(sortedOriginal, restored))
	})

	t.Run("duplicate keys collapse to the last value", func(t *testing.T) {
		hl := hashkeylist.From([]utils.Pair[string, int]{
			pair("a", 1), pair("b", 2), pair("a", 3),
		})

		assert.Equal(t, map[string]int{"a": 3, "b": 2}, hl.ToMap())
	})
}

func TestFromSeq(t *testing.T) {
	t.Run("builds from any pair iterator in order", func(t *testing.T) {
		source := hashkeylist.From([]utils.Pair[string, int]{
			pair("a", 5), pair("b", 2), pair("a", 1),
		})

		hl := hashkeylist.FromSeq(source.All())

		assert.True(t, hashkeylist.Equal(source, hl))
		assert.Equal(t, []int{5, 1}, hl.GetAll("a"))
	})
}

func TestSwapped(t *testing.T) {
	t.Run("roles exchange and order is preserved", func(t *testing.T) {
		hl := hashkeylist.From([]utils.Pair[string, int]{
			pair("a", 1), pair("b", 2),
		})

		swapped := hashkeylist.Swapped(hl)

		assert.Equal(t, []utils.Pair[int, string]{
			pair(1, "a"), pair(2, "b"),
		}, swapped.Pairs())
	})

	t.Run("duplicate values group under one key after the swap", func(t *testing.T) {
		hl := hashkeylist.From([]utils.Pair[string, int]{
			pair("z", 2), pair("b", 2), pair("a", 5),
		})

		swapped := hashkeylist.Swapped(hl)

		assert.Equal(t, []string{"z", "b"}, swapped.GetAll(2))

		hashkeylist.Sort(swapped)
		assert.Equal(t, []string{"b", "z"}, swapped.GetAll(2))
	})

	t.Run("swapping twice restores the original sequence", func(t *testing.T) {
		hl := hashkeylist.From([]utils.Pair[string, int]{
			pair("a", 5), pair("b", 2), pair("a", 1),
		})

		back := hashkeylist.Swapped(hashkeylist.Swapped(hl))

		assert.True(t, hashkeylist.Equal(hl, back))
	})
}

func TestEqual(t *testing.T) {
	t.Run("equality is order sensitive", func(t *testing.T) {
		a := hashkeylist.From([]utils.Pair[string, int]{
			pair("a", 1), pair("b", 2),
		})
		b := hashkeylist.From([]utils.Pair[string, int]{
			pair("b", 2), pair("a", 1),
		})

		assert.False(t, hashkeylist.Equal(a, b))

		hashkeylist.Sort(a)
		hashkeylist.Sort(b)
		assert.True(t, hashkeylist.Equal(a, b))
	})

	t.Run("equal func with custom pair equality", func(t *testing.T) {
		a := hashkeylist.From([]utils.Pair[string, int]{pair("A", 1)})
		b := hashkeylist.From([]utils.Pair[string, int]{pair("a", 1)})

		valueOnly := func(x, y utils.Pair[string, int]) bool {
			return x.Value == y.Value
		}

		assert.True(t, a.EqualFunc(b, valueOnly))
		assert.False(t, hashkeylist.Equal(a, b))
	})
}

func TestContains(t *testing.T) {
	hl := hashkeylist.From([]utils.Pair[string, int]{
		pair("a", 1), pair("a", 2), pair("b", 3),
	})

	assert.True(t, hashkeylist.Contains(hl, pair("a", 2)))
	assert.False(t, hashkeylist.Contains(hl, pair("a", 3)))
	assert.False(t, hashkeylist.Contains(hl, pair("c", 1)))
}
