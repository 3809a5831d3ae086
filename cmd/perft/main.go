// perft is a node-counting driver used to cross-check the move generator
// and applier: it walks the full game tree from the standard opening to a
// fixed depth and reports how many leaf positions exist at that depth.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lbarnes/chessd/internal/chess"
	"github.com/lbarnes/chessd/internal/config"
	"github.com/lbarnes/chessd/internal/engine"
	"github.com/lbarnes/chessd/internal/worker"
	"github.com/lbarnes/chessd/internal/zobrist"
)

var (
	depth   = flag.Int("depth", 4, "ply depth to search")
	workers = flag.Int("workers", 0, "worker goroutines fanning out root moves (0 = one per root move, capped at 8)")
	seed    = flag.Int64("seed", 0, "Zobrist table seed (0 = derive from the clock)")
	audit   = flag.Bool("audit", false, "recompute each hash from scratch and panic on mismatch")
	divide  = flag.Bool("divide", false, "print the node count contributed by each root move (perft divide)")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg := config.Default()
	cfg.DebugAudit = *audit
	cfg.ZobristSeed = *seed
	cfg.Workers = *workers

	if *depth < 1 {
		fmt.Fprintln(os.Stderr, "depth must be at least 1")
		os.Exit(1)
	}

	tableSeed := cfg.ZobristSeed
	if tableSeed == 0 {
		tableSeed = time.Now().UnixNano()
	}
	table := zobrist.NewTable(tableSeed)

	opening := chess.StandardOpening()
	rootHash := table.Hash(opening.BoardState)

	total, perMove, elapsed := runPerft(table, opening, rootHash, *depth, cfg)

	if *divide {
		labels := maps.Keys(perMove)
		slices.Sort(labels)
		for _, label := range labels {
			fmt.Printf("%s: %d\n", label, perMove[label])
		}
	}
	fmt.Printf("depth %d: %d nodes (%s)\n", *depth, total, elapsed)
}

// runPerft fans the root moves out across a worker pool, recursing
// sequentially within each subtree. It returns both the grand total and a
// per-root-move breakdown (perft's traditional "divide" output) keyed by the
// move's algebraic coordinates.
func runPerft(table *zobrist.Table, root chess.GameState, rootHash uint64, depth int, cfg config.Config) (int64, map[string]int64, time.Duration) {
	start := time.Now()

	rootMoves := legalSuccessors(table, root, rootHash)
	if len(rootMoves) == 0 {
		return 0, nil, time.Since(start)
	}

	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = len(rootMoves)
		if numWorkers > 8 {
			numWorkers = 8
		}
	}

	process := func(item worker.WorkItem) worker.ProcessResult {
		nodes := perftCount(table, item.State, rootMoves[item.Index].hash, item.Depth, cfg.DebugAudit)
		return worker.ProcessResult{Index: item.Index, Nodes: nodes}
	}

	pool := worker.NewPool(numWorkers, len(rootMoves), process)
	pool.Start()

	for i, mv := range rootMoves {
		pool.Submit(worker.WorkItem{State: mv.state, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	var total int64
	perMove := make(map[string]int64, len(rootMoves))
	for result := range pool.Results() {
		if result.Error != nil {
			log.Fatalf("perft worker failed: %v", result.Error)
		}
		total += result.Nodes
		perMove[rootMoves[result.Index].label] = result.Nodes
	}

	return total, perMove, time.Since(start)
}

type successor struct {
	op    chess.Operation
	state chess.GameState
	hash  uint64
	label string
}

// squareName renders a coordinate as algebraic notation, e.g. (4,1) -> "e2".
func squareName(x, y int) string {
	return string(rune('a'+x)) + string(rune('1'+y))
}

// promotionSuffix renders a promotion target the way algebraic notation
// appends it to a move, e.g. "q" for queen; empty for a non-promotion.
func promotionSuffix(op chess.Operation) string {
	if op.Category != chess.CategoryPromote {
		return ""
	}
	switch op.Code {
	case chess.Queen:
		return "q"
	case chess.Rook:
		return "r"
	case chess.Bishop:
		return "b"
	case chess.Knight:
		return "n"
	default:
		return ""
	}
}

func moveLabel(op chess.Operation) string {
	return squareName(op.X0, op.Y0) + squareName(op.X1, op.Y1) + promotionSuffix(op)
}

// legalSuccessors expands one ply from gs, discarding operations that leave
// the mover's own king in check.
func legalSuccessors(table *zobrist.Table, gs chess.GameState, hash uint64) []successor {
	mover := gs.BoardState.Turn()
	var out []successor
	for _, op := range engine.GenerateCandidates(&gs) {
		scratch := gs
		newHash := engine.ApplyOperation(&scratch, table, hash, op)
		kx, ky := scratch.KingCoords(mover)
		if chess.PositionAttacked(&scratch.BoardState.Board, kx, ky, mover == chess.White) {
			continue
		}
		cur := zobrist.NewCursor(table, newHash)
		cur.SetTurn(&scratch.BoardState, !scratch.BoardState.BlackTurn)
		out = append(out, successor{op: op, state: scratch, hash: cur.Hash, label: moveLabel(op)})
	}
	return out
}

// perftCount recursively counts leaf positions depth plies below gs.
func perftCount(table *zobrist.Table, gs chess.GameState, hash uint64, depth int, audit bool) int64 {
	if depth <= 0 {
		return 1
	}
	successors := legalSuccessors(table, gs, hash)
	if audit {
		for _, s := range successors {
			if want := table.Hash(s.state.BoardState); want != s.hash {
				panic(fmt.Sprintf("zobrist hash mismatch: incremental=%d recomputed=%d", s.hash, want))
			}
		}
	}
	var total int64
	for _, s := range successors {
		total += perftCount(table, s.state, s.hash, depth-1, audit)
	}
	return total
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts leaf positions in the game tree from the standard opening.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
