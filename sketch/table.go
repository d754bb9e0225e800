package sketch

import "github.com/gadurek/halina/kmer"

// Table is one IBLT table (spec.md §3's Table(T)): a fixed-size array of
// XOR-aggregating cells, a modified-index set, and an indexing hash. It is
// the monomorphized generalization of fusion/kmer_index.go's sharded
// kmer->genelist map: there, a single farm-hash selects a shard and a
// bucket within it; here, a single generic tabulation hash (kmer.HashU64)
// selects the cell an item's identity hash lands in, within ONE table.
type Table[T Item[T]] struct {
	cells    []T
	neutral  T
	modified *bitSet
	indexer  *kmer.HashU64
}

// NewTable constructs a Table of m cells, all initialized to neutral, indexed
// by indexer.
func NewTable[T Item[T]](m int, neutral T, indexer *kmer.HashU64) *Table[T] {
	cells := make([]T, m)
	for i := range cells {
		cells[i] = neutral
	}
	return &Table[T]{cells: cells, neutral: neutral, modified: newBitSet(m), indexer: indexer}
}

// Len returns the number of cells in the table.
func (t *Table[T]) Len() int { return len(t.cells) }

func (t *Table[T]) indexOf(identityHash uint64) int {
	return int(t.indexer.Hash(identityHash) % uint64(len(t.cells)))
}

// Encode XORs item into its cell and marks the cell modified.
func (t *Table[T]) Encode(item T) error {
	idx := t.indexOf(item.IdentityHash())
	merged, err := t.cells[idx].XorWith(item)
	if err != nil {
		return err
	}
	t.cells[idx] = merged
	t.modified.Set(idx)
	return nil
}

// EncodeAll encodes every item in items.
func (t *Table[T]) EncodeAll(items []T) error {
	for _, item := range items {
		if err := t.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

// isPure implements spec.md §4.4's purity predicate: cell.hash != 0 AND
// (generic_tabulation_hash(cell.hash) mod M) == index.
func (t *Table[T]) isPure(idx int) bool {
	cell := t.cells[idx]
	if cell.IsNeutral() {
		return false
	}
	return t.indexOf(cell.IdentityHash()) == idx
}

// Decode performs one pass over the modified-index set, emitting every pure
// cell and resetting it to neutral, then clears the modified-index set.
// Iterative peeling across tables lives at the Sketch coordinator.
func (t *Table[T]) Decode() []T {
	var out []T
	t.modified.ForEach(func(idx int) {
		if t.isPure(idx) {
			out = append(out, t.cells[idx])
			t.cells[idx] = t.neutral
		}
	})
	t.modified.Reset()
	return out
}
