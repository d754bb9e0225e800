package kmer

// Metadata is the integer side-channel carried alongside a KmerData's packed
// Kmer and hash (spec.md §3). Every field participates in XOR closure, which
// is what lets a sketch cell aggregate (and later un-aggregate) KmerData
// values with plain XOR.
type Metadata struct {
	Index         int
	SetID         int
	MutationIndex int
	MutationValue int
}

// Xor returns the field-wise XOR of two Metadata values.
func (m Metadata) Xor(o Metadata) Metadata {
	return Metadata{
		Index:         m.Index ^ o.Index,
		SetID:         m.SetID ^ o.SetID,
		MutationIndex: m.MutationIndex ^ o.MutationIndex,
		MutationValue: m.MutationValue ^ o.MutationValue,
	}
}

// KmerData is the tuple (Kmer, Hash, Metadata) that sketch cells aggregate.
type KmerData struct {
	Packed Kmer
	Hash   uint64
	Meta   Metadata
}

// NeutralKmerData returns the neutral element for KmerData cells of the
// given packed length: an all-zero Kmer of that length, hash 0, zero
// metadata. Cells are pre-allocated at this neutral value and never resized.
func NeutralKmerData(length int) (KmerData, error) {
	k, err := New(length)
	if err != nil {
		return KmerData{}, err
	}
	return KmerData{Packed: k}, nil
}

// IsNeutral reports whether d is the neutral element (spec.md §4.4's purity
// predicate tests Hash != 0, which is exactly "not neutral" for these cells).
func (d KmerData) IsNeutral() bool { return d.Hash == 0 }

// Xor returns the field-wise XOR of two KmerData values: the packed Kmer,
// the hash, and every metadata field. Requires equal-length packed Kmers.
func (d KmerData) Xor(o KmerData) (KmerData, error) {
	packed, err := d.Packed.Xor(o.Packed)
	if err != nil {
		return KmerData{}, err
	}
	return KmerData{
		Packed: packed,
		Hash:   d.Hash ^ o.Hash,
		Meta:   d.Meta.Xor(o.Meta),
	}, nil
}

// Equal compares (Hash, packed bytes), the stronger of the two equalities
// spec.md §9 open question (b) discusses: hash-only equality is adequate for
// dedup but collapses true hash collisions. The pump package and the
// pipelines do not call Equal: they deduplicate with maps keyed by Hash
// alone.
func (d KmerData) Equal(o KmerData) bool {
	return d.Hash == o.Hash && d.Packed.Equal(o.Packed)
}

// XorWith and IdentityHash satisfy sketch.Item, letting KmerData be used
// directly as a sketch cell payload (see sketch.Table).
func (d KmerData) XorWith(o KmerData) (KmerData, error) { return d.Xor(o) }
func (d KmerData) IdentityHash() uint64                 { return d.Hash }
