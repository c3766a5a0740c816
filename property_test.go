package wavl

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FuzzTree replays a bounded random sequence of inserts and deletes against
// both a Tree and a plain Go map oracle, checking every WAVL invariant
// after each mutation and cross-checking contents against the oracle.
func FuzzTree(f *testing.F) {
	f.Add(1, 11, 12, 69, 4, 14, 82, 50, 77, 3, 4)
	f.Fuzz(func(t *testing.T, k1, k2, k3, k4, k5, k6, k7, k8, k9, k10, deleteUpTo int) {
		if deleteUpTo < 0 || deleteUpTo > 9 {
			return
		}

		tree := newTree[int, struct{}](Ascending[int]())
		oracle := map[int]struct{}{}

		keys := []int{k1, k2, k3, k4, k5, k6, k7, k8, k9, k10}
		for _, k := range keys {
			tree.insert(k, struct{}{})
			oracle[k] = struct{}{}
			if err := tree.IsValid(); err != nil {
				t.Fatalf("invalid tree after inserting %d: %v\n%s", k, err, tree.String())
			}
		}
		if tree.size != len(oracle) {
			t.Fatalf("size mismatch after inserts: tree=%d oracle=%d", tree.size, len(oracle))
		}

		for i := 0; i <= deleteUpTo; i++ {
			k := keys[i]
			_, wasPresent := oracle[k]
			_, existed := tree.remove(k)
			if existed != wasPresent {
				t.Fatalf("remove(%d) existed=%v, oracle had it=%v", k, existed, wasPresent)
			}
			delete(oracle, k)
			if err := tree.IsValid(); err != nil {
				t.Fatalf("invalid tree after removing %d: %v\n%s", k, err, tree.String())
			}
		}
		if tree.size != len(oracle) {
			t.Fatalf("size mismatch after deletes: tree=%d oracle=%d", tree.size, len(oracle))
		}
		for k := range oracle {
			if tree.isNil(tree.search(k)) {
				t.Fatalf("key %d missing from tree but present in oracle", k)
			}
		}
	})
}

// TestProperty_RandomBatchRoundTrips drives randomized key/value batches
// through gofuzz, checking the round-trip and ordering properties: every
// inserted key is retrievable, iteration yields ascending order, and
// ascending/descending comparators produce reverse orderings of each other.
func TestProperty_RandomBatchRoundTrips(t *testing.T) {
	fz := fuzz.New().NilChance(0).NumElements(1, 200)

	for seedRun := 0; seedRun < 20; seedRun++ {
		var rawKeys []int32
		fz.Fuzz(&rawKeys)

		unique := map[int]string{}
		for i, k := range rawKeys {
			unique[int(k)] = string(rune('a' + (i % 26)))
		}

		asc := New[int, string](Ascending[int]())
		desc := New[int, string](Descending[int]())
		for k, v := range unique {
			asc.Insert(k, v)
			desc.Insert(k, v)
		}

		require.Equal(t, len(unique), asc.Len())
		require.NoError(t, asc.tree.IsValid())
		require.NoError(t, desc.tree.IsValid())

		for k, v := range unique {
			got, ok := asc.Get(k)
			require.True(t, ok)
			assert.Equal(t, v, got)
		}

		var ascKeys, descKeys []int
		asc.ForEach(func(k int, _ string) bool { ascKeys = append(ascKeys, k); return true })
		desc.ForEach(func(k int, _ string) bool { descKeys = append(descKeys, k); return true })

		require.Len(t, descKeys, len(ascKeys))
		for i := range ascKeys {
			assert.Equal(t, ascKeys[i], descKeys[len(descKeys)-1-i])
		}
		for i := 1; i < len(ascKeys); i++ {
			assert.Less(t, ascKeys[i-1], ascKeys[i])
		}
	}
}

// TestProperty_RangeInvariant checks that every key yielded by a range view
// satisfies its bounds, for randomized bounds and randomized map contents.
func TestProperty_RangeInvariant(t *testing.T) {
	fz := fuzz.New().NilChance(0).NumElements(1, 100)

	for i := 0; i < 20; i++ {
		var rawKeys []int8
		fz.Fuzz(&rawKeys)

		m := New[int, struct{}](Ascending[int]())
		for _, k := range rawKeys {
			m.Insert(int(k), struct{}{})
		}

		var a, b int8
		fz.Fuzz(&a)
		fz.Fuzz(&b)
		lo, hi := int(a), int(b)
		if lo > hi {
			lo, hi = hi, lo
		}

		r, err := m.Range(&lo, &hi, false)
		require.NoError(t, err)
		r.ForEach(func(k int, _ struct{}) bool {
			assert.GreaterOrEqual(t, k, lo)
			assert.LessOrEqual(t, k, hi)
			return true
		})

		rExcl, err := m.Range(&lo, &hi, true)
		require.NoError(t, err)
		rExcl.ForEach(func(k int, _ struct{}) bool {
			assert.GreaterOrEqual(t, k, lo)
			assert.Less(t, k, hi)
			return true
		})
	}
}
