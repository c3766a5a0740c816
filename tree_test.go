package wavl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTree_Empty(t *testing.T) {
	tree := newTree[int, string](Ascending[int]())
	assert.True(t, tree.isNil(tree.root))
	assert.Equal(t, 0, tree.size)
	require.NoError(t, tree.IsValid())
}

func TestTree_InsertSearch(t *testing.T) {
	tree := newTree[int, string](Ascending[int]())
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.insert(k, "")
	}
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		n := tree.search(k)
		require.False(t, tree.isNil(n))
		assert.Equal(t, k, n.key)
	}
	assert.True(t, tree.isNil(tree.search(999)))
	require.NoError(t, tree.IsValid())
}

func TestTree_MinMax(t *testing.T) {
	tree := newTree[int, string](Ascending[int]())
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.insert(k, "")
	}
	assert.Equal(t, 20, tree.minOf(tree.root).key)
	assert.Equal(t, 80, tree.maxOf(tree.root).key)
}

func TestTree_PredecessorSuccessor(t *testing.T) {
	tree := newTree[int, string](Ascending[int]())
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.insert(k, "")
	}
	n40 := tree.search(40)
	assert.Equal(t, 30, tree.predecessor(n40).key)
	assert.Equal(t, 50, tree.successor(n40).key)

	n20 := tree.search(20)
	assert.True(t, tree.isNil(tree.predecessor(n20)))

	n80 := tree.search(80)
	assert.True(t, tree.isNil(tree.successor(n80)))
}

func TestTree_String_Empty(t *testing.T) {
	tree := newTree[int, string](Ascending[int]())
	assert.Equal(t, "Empty Tree", tree.String())
}
