package keylist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thomas9911/keylist"
	"github.com/thomas9911/keylist/utils"
)

func TestSort(t *testing.T) {
	t.Run("orders by key", func(t *testing.T) {
		kl := keylist.From([]utils.Pair[string, int]{
			pair("a", 4), pair("c", 3), pair("b", 2), pair("d", 1),
		})

		keylist.Sort(kl)

		assert.Equal(t, []utils.Pair[string, int]{
			pair("a", 4), pair("b", 2), pair("c", 3), pair("d", 1),
		}, kl.Pairs())
	})

	t.Run("equal keys come back value ordered", func(t *testing.T) {
		kl := keylist.From([]utils.Pair[int, string]{
			pair(2, "z"), pair(3, "b"), pair(2, "b"),
		})

		keylist.Sort(kl)

		assert.Equal(t, []string{"b", "z"}, kl.GetAll(2))
	})
}

func TestSortByKey(t *testing.T) {
	t.Run("equal keys keep their relative order", func(t *testing.T) {
		kl := keylist.From([]utils.Pair[string, int]{
			pair("b", 1), pair("a", 2), pair("b", 0),
		})

		keylist.SortByKey(kl)

		assert.Equal(t, []utils.Pair[string, int]{
			pair("a", 2), pair("b", 1), pair("b", 0),
		}, kl.Pairs())
	})
}

func TestSortByValue(t *testing.T) {
	t.Run("first match moves with the sort", func(t *testing.T) {
		kl := keylist.From([]utils.Pair[string, int]{
			pair("a", 5), pair("b", 2), pair("a", 1),
		})

		before, ok := kl.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 5, before)

		keylist.SortByValue(kl)

		after, ok := kl.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, after)
		assert.Equal(t, []utils.Pair[string, int]{
			pair("a", 1), pair("b", 2), pair("a", 5),
		}, kl.Pairs())
	})
}

func TestSortBy(t *testing.T) {
	t.Run("custom comparator sorts stably in place", func(t *testing.T) {
		kl := keylist.From([]utils.Pair[string, int]{
			pair("bb", 1), pair("a", 2), pair("cc", 3), pair("d", 4),
		})

		kl.SortBy(func(a, b utils.Pair[string, int]) bool {
			return len(a.Key) < len(b.Key)
		})

		assert.Equal(t, []utils.Pair[string, int]{
			pair("a", 2), pair("d", 4), pair("bb", 1), pair("cc", 3),
		}, kl.Pairs())
	})
}

func TestGetSorted(t *testing.T) {
	t.Run("binary search on a key sorted list", func(t *testing.T) {
		kl := keylist.From([]utils.Pair[string, int]{
			pair("a", 4), pair("a", 9), pair("b", 2), pair("c", 3), pair("d", 1),
		})

		v, ok := keylist.GetSorted(kl, "b")
		assert.True(t, ok)
		assert.Equal(t, 2, v)

		_, ok = keylist.GetSorted(kl, "f")
		assert.False(t, ok)
	})

	t.Run("finds the first of duplicate keys", func(t *testing.T) {
		kl := keylist.From([]utils.Pair[string, int]{
			pair("a", 4), pair("a", 9), pair("b", 2),
		})

		p, ok := keylist.GetKeyValueSorted(kl, "a")
		assert.True(t, ok)
		assert.Equal(t, pair("a", 4), p)
	})
}
