package sketch

// Item is the constraint a sketch cell payload must satisfy (spec.md §3's
// Cell(T)): XOR-closed, with an identity hash used both for the purity
// predicate and for the tabu controller's rolling cycle check.
type Item[T any] interface {
	// XorWith returns the XOR of the receiver and o.
	XorWith(o T) (T, error)
	// IdentityHash returns the u64 used to re-derive this item's table index
	// (the purity check) and, for a u64 payload, the payload's own value.
	IdentityHash() uint64
	// IsNeutral reports whether the receiver is the cell's neutral element.
	IsNeutral() bool
}

// HashItem is the u64 sketch payload (C6: "hash-only sketch"). The payload
// IS its own identity hash, per spec.md §4.4.
type HashItem uint64

func (h HashItem) XorWith(o HashItem) (HashItem, error) { return h ^ o, nil }
func (h HashItem) IdentityHash() uint64                 { return uint64(h) }
func (h HashItem) IsNeutral() bool                      { return h == 0 }
