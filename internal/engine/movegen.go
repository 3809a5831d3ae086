package engine

import "github.com/lbarnes/chessd/internal/chess"

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

var slidingDirs = map[chess.Kind][][2]int{
	chess.Bishop: {{-1, -1}, {-1, 1}, {1, -1}, {1, 1}},
	chess.Rook:   {{-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	chess.Queen: {
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	},
}

// GenerateCandidates enumerates candidate Move/Castle operations for the
// side to move, plus Promote operations for pawns one step from the back
// rank (see promotionCandidates), and returns those the validator accepts.
func GenerateCandidates(gs *chess.GameState) []chess.Operation {
	bs := &gs.BoardState
	mover := bs.Turn()

	var candidates []chess.Operation
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			p := bs.Board.At(x, y)
			if p.IsEmpty() || p.Color() != mover {
				continue
			}
			if p.Kind() == chess.Pawn {
				candidates = append(candidates, promotionCandidates(x, y, mover)...)
			}
			candidates = append(candidates, pieceCandidates(gs, x, y, p.Kind(), mover)...)
		}
	}

	var legal []chess.Operation
	for _, op := range candidates {
		if ValidateOperation(gs, op) == nil {
			legal = append(legal, op)
		}
	}
	return legal
}

func pieceCandidates(gs *chess.GameState, x, y int, kind chess.Kind, mover chess.Color) []chess.Operation {
	switch kind {
	case chess.King:
		return kingCandidates(x, y)
	case chess.Knight:
		return knightCandidates(x, y)
	case chess.Bishop, chess.Rook, chess.Queen:
		return slidingCandidates(x, y, kind)
	default:
		return pawnCandidates(x, y, mover)
	}
}

func kingCandidates(x, y int) []chess.Operation {
	var ops []chess.Operation
	for _, o := range kingOffsets {
		nx, ny := x+o[0], y+o[1]
		if chess.InBounds(nx, ny) {
			ops = append(ops, chess.Operation{Category: chess.CategoryMove, X0: x, Y0: y, X1: nx, Y1: ny})
		}
	}
	r := y
	ops = append(ops,
		chess.Operation{Category: chess.CategoryCastle, X0: x, Y0: y, X1: 6, Y1: r},
		chess.Operation{Category: chess.CategoryCastle, X0: x, Y0: y, X1: 2, Y1: r},
	)
	return ops
}

func knightCandidates(x, y int) []chess.Operation {
	var ops []chess.Operation
	for _, o := range knightOffsets {
		nx, ny := x+o[0], y+o[1]
		if chess.InBounds(nx, ny) {
			ops = append(ops, chess.Operation{Category: chess.CategoryMove, X0: x, Y0: y, X1: nx, Y1: ny})
		}
	}
	return ops
}

func slidingCandidates(x, y int, kind chess.Kind) []chess.Operation {
	var ops []chess.Operation
	for _, d := range slidingDirs[kind] {
		for step := 1; step < 8; step++ {
			nx, ny := x+d[0]*step, y+d[1]*step
			if !chess.InBounds(nx, ny) {
				break
			}
			ops = append(ops, chess.Operation{Category: chess.CategoryMove, X0: x, Y0: y, X1: nx, Y1: ny})
		}
	}
	return ops
}

var promotionKinds = [4]chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

func promotionCandidates(x, y int, mover chess.Color) []chess.Operation {
	dir := 1
	homeToRank := 6
	if mover == chess.Black {
		dir = -1
		homeToRank = 1
	}
	if y != homeToRank {
		return nil
	}
	var ops []chess.Operation
	for _, dx := range [3]int{-1, 0, 1} {
		nx, ny := x+dx, y+dir
		if !chess.InBounds(nx, ny) {
			continue
		}
		for _, k := range promotionKinds {
			ops = append(ops, chess.Operation{Category: chess.CategoryPromote, X0: x, Y0: y, X1: nx, Y1: ny, Code: k})
		}
	}
	return ops
}

func pawnCandidates(x, y int, mover chess.Color) []chess.Operation {
	dir := 1
	if mover == chess.Black {
		dir = -1
	}
	var ops []chess.Operation
	targets := [][2]int{{x, y + dir}, {x, y + 2*dir}, {x - 1, y + dir}, {x + 1, y + dir}}
	for _, t := range targets {
		if chess.InBounds(t[0], t[1]) {
			ops = append(ops, chess.Operation{Category: chess.CategoryMove, X0: x, Y0: y, X1: t[0], Y1: t[1]})
		}
	}
	return ops
}

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}
