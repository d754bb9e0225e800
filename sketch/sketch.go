// Package sketch implements the Invertible Bloom Lookup Table (C4-C6):
// single-table cell XOR aggregation with peeling decode, and a multi-table
// coordinator that runs encode in parallel and decode as iterative
// cross-peeling with a tabu cycle-breaker.
//
// Grounded on github.com/grailbio/bio's fusion/kmer_index.go (sharded
// kmer->genelist map, built by a worker pool in fusion/gene_db.go) and on
// the corpus's traverse.Each fan-out idiom (encoding/converter/convert.go,
// encoding/pam/pamwriter.go).
package sketch

import (
	"github.com/gadurek/halina/herrors"
	"github.com/gadurek/halina/internal/bufpool"
	"github.com/gadurek/halina/kmer"
	"github.com/grailbio/base/traverse"
)

// MinCellsPerTable is the minimum cell count enforced per table (spec.md
// §6: "A minimum of 100 cells per table is enforced to avoid degenerate
// sketches").
const MinCellsPerTable = 100

// Sketch is an ordered list of N>=1 Tables with pairwise-independent
// indexing hashes and a shared decode controller (spec.md §3's Sketch(T)).
type Sketch[T Item[T]] struct {
	tables     []*Table[T]
	current    int
	controller Controller
}

// New constructs a Sketch of nTables tables, each sized totalCells/nTables
// (floored up to MinCellsPerTable), seeded so that each table's indexing
// hash is pairwise distinct (kmer.NewIndexerSeed, spec.md §9 open question
// (a)). The default decode controller is the tabu controller with limit 3.
func New[T Item[T]](nTables, totalCells int, neutral T, seed uint64) (*Sketch[T], error) {
	if nTables < 1 {
		return nil, herrors.E(herrors.InvalidInput, "sketch.New", nil)
	}
	perTable := totalCells / nTables
	if perTable < MinCellsPerTable {
		perTable = MinCellsPerTable
	}
	tables := make([]*Table[T], nTables)
	for i := range tables {
		indexer := kmer.NewHashU64(kmer.NewIndexerSeed(seed, i))
		tables[i] = NewTable[T](perTable, neutral, indexer)
	}
	return &Sketch[T]{tables: tables, controller: NewTabuController(3)}, nil
}

// SetController overrides the default tabu controller (e.g. with
// NewSimpleController for tests exercising the empty-step-limit path).
func (s *Sketch[T]) SetController(c Controller) { s.controller = c }

// NTables returns the number of tables.
func (s *Sketch[T]) NTables() int { return len(s.tables) }

// TotalCells returns the sum of cells across all tables.
func (s *Sketch[T]) TotalCells() int {
	total := 0
	for _, t := range s.tables {
		total += t.Len()
	}
	return total
}

// Encode fans the same items out to every table in parallel (spec.md §5's
// "encode fan-out": N independent writes to disjoint table memory).
func (s *Sketch[T]) Encode(items []T) error {
	return traverse.Each(len(s.tables), func(i int) error {
		return s.tables[i].EncodeAll(items)
	})
}

// decodeStep decodes the current table, fans the emitted items out to every
// OTHER table in parallel (spec.md §5's "cross-peel fan-out"), and advances
// the round-robin pointer.
func (s *Sketch[T]) decodeStep() ([]T, error) {
	cur := s.tables[s.current]
	emitted := cur.Decode()
	if len(emitted) > 0 {
		other := s.current
		if err := traverse.Each(len(s.tables), func(i int) error {
			if i == other {
				return nil
			}
			return s.tables[i].EncodeAll(emitted)
		}); err != nil {
			return nil, err
		}
	}
	s.current = (s.current + 1) % len(s.tables)
	return emitted, nil
}

// maxDecodeSteps bounds the decode loop defensively (spec.md §8 property 9:
// "no test run exceeds an a-priori step bound of O(total_cells)"); a
// correctly-terminating controller should never approach it.
func (s *Sketch[T]) maxDecodeSteps() int {
	return 4*s.TotalCells() + 16
}

// Decode repeatedly calls decode_step, concatenating emitted items, until
// the controller signals stop (spec.md §4.4).
func (s *Sketch[T]) Decode() ([]T, error) {
	s.controller.Reset()
	var all []T
	limit := s.maxDecodeSteps()
	for step := 0; ; step++ {
		if step >= limit {
			return all, herrors.E(herrors.Other, "sketch.Decode", nil)
		}
		emitted, err := s.decodeStep()
		if err != nil {
			return all, err
		}
		all = append(all, emitted...)
		hashes := bufpool.Acquire(len(emitted))
		for _, e := range emitted {
			hashes = append(hashes, e.IdentityHash())
		}
		stop := s.controller.Step(hashes)
		bufpool.Release(hashes)
		if stop {
			return all, nil
		}
	}
}
