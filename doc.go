// Package wavl provides a generic, self-balancing ordered map backed by a
// weak AVL (WAVL) tree.
//
// A WAVL tree is a binary search tree whose balance is maintained through
// per-node rank parities rather than full balance factors or node colors.
// Every update performs at most two rotations, with the remaining work done
// through O(log n) rank changes (promotions/demotions) that are amortised
// O(1) per operation. This gives WAVL trees AVL-like search performance with
// rebalancing costs closer to a red-black tree.
//
// # Key Features
//
//   - Generic Support: works with any key (K) and value (V) type.
//   - Ordered Iteration: in-order traversal yields keys in comparator order.
//   - Cursor/Entry API: navigate forwards/backwards and insert relative to an
//     existing key without a second search.
//   - Range API: select a contiguous key interval and iterate, count, delete,
//     or drain it.
//
// # Usage Example
//
//	import "github.com/waviq/wavltree"
//
//	m := wavl.New[int, string](wavl.Ascending[int]())
//	m.Insert(10, "ten")
//	m.Insert(20, "twenty")
//	v, ok := m.Get(10)
//
// # Limitations
//
//   - Not thread-safe — requires external synchronization for concurrent use.
//   - No duplicate keys — keys must be unique under the supplied comparator.
//   - No persistence — the map exists only in process memory.
package wavl
