// Package history maintains the append-only game log and hash-indexed
// multiset used for O(1) expected repetition counting.
package history

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/lbarnes/chessd/internal/chess"
	"github.com/lbarnes/chessd/internal/config"
	"github.com/lbarnes/chessd/internal/zobrist"
)

// Entry is one committed (operation, resulting state, hash) triple.
type Entry struct {
	Op    chess.Operation
	State chess.GameState
	Hash  uint64
}

// History is the ordered log plus its hash-keyed multiset.
type History struct {
	Table *zobrist.Table

	// DebugAudit recomputes each pushed hash from scratch and panics on
	// mismatch against the incrementally maintained one. Set from
	// config.Config; off by default because a from-scratch Table.Hash walks
	// the whole board on every push.
	DebugAudit bool

	Entries []Entry
	byHash  map[uint64][]int
}

// New constructs a history seeded with the standard opening and a freshly
// generated Zobrist table.
func New() *History {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed constructs a history like New but with an explicit table seed,
// used for reproducible tests.
func NewWithSeed(seed int64) *History {
	table := zobrist.NewTable(seed)
	opening := chess.StandardOpening()
	hash := table.Hash(opening.BoardState)

	h := &History{
		Table:  table,
		byHash: make(map[uint64][]int),
	}
	h.push(chess.Operation{Category: chess.CategoryNone}, opening, hash)
	return h
}

// NewFromConfig builds a history the way New does, but takes its table seed
// and debug audit setting from cfg. A zero seed still falls back to the
// clock, matching cfg's own zero-value semantics.
func NewFromConfig(cfg config.Config) *History {
	seed := cfg.ZobristSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h := NewWithSeed(seed)
	h.DebugAudit = cfg.DebugAudit
	return h
}

// Current returns the tail entry, or false if the history is empty (which
// should never happen once constructed via New/NewWithSeed).
func (h *History) Current() (Entry, bool) {
	if len(h.Entries) == 0 {
		return Entry{}, false
	}
	return h.Entries[len(h.Entries)-1], true
}

// CountBoardStateRepetition returns how many entries in the log have a
// structurally equal board state to bs (which must hash to hash).
func (h *History) CountBoardStateRepetition(bs chess.BoardState, hash uint64) int {
	count := 0
	for _, idx := range h.byHash[hash] {
		if h.Entries[idx].State.BoardState == bs {
			count++
		}
	}
	return count
}

// Push appends a new entry and indexes it by hash.
func (h *History) Push(op chess.Operation, state chess.GameState, hash uint64) {
	h.push(op, state, hash)
}

func (h *History) push(op chess.Operation, state chess.GameState, hash uint64) {
	if h.DebugAudit {
		if want := h.Table.Hash(state.BoardState); want != hash {
			panic(fmt.Sprintf("zobrist hash mismatch on push: incremental=%d recomputed=%d", hash, want))
		}
	}
	idx := len(h.Entries)
	h.Entries = append(h.Entries, Entry{Op: op, State: state, Hash: hash})
	h.byHash[hash] = append(h.byHash[hash], idx)
}

// HashBucketSizes returns the size of every populated hash bucket, sorted
// descending, for diagnostics.
func (h *History) HashBucketSizes() []int {
	sizes := make([]int, 0, len(h.byHash))
	for _, idxs := range h.byHash {
		sizes = append(sizes, len(idxs))
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	return sizes
}
