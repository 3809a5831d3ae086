package engine

import (
	"github.com/lbarnes/chessd/internal/chess"
	"github.com/lbarnes/chessd/internal/zobrist"
)

// ApplyOperation mutates gs in place to reflect a validated operation and
// returns the updated hash. It does not check legality.
func ApplyOperation(gs *chess.GameState, table *zobrist.Table, hash uint64, op chess.Operation) uint64 {
	cur := zobrist.NewCursor(table, hash)
	bs := &gs.BoardState

	gs.DrawOffer = false
	cur.SetEnPassantColumn(bs, -1)

	var pawnMoved, captureMade bool

	switch op.Category {
	case chess.CategoryMove:
		pawnMoved, captureMade = applyMove(cur, gs, op)
	case chess.CategoryCastle:
		applyCastle(cur, gs, op)
	case chess.CategoryPromote:
		pawnMoved, captureMade = applyPromote(cur, gs, op)
	case chess.CategoryResign:
		if bs.BlackTurn {
			gs.Status = chess.WhiteWin
		} else {
			gs.Status = chess.BlackWin
		}
	case chess.CategoryDrawAccept:
		gs.Status = chess.Draw
	}

	if op.Category == chess.CategoryMove || op.Category == chess.CategoryCastle || op.Category == chess.CategoryPromote {
		if op.Code2 == chess.DrawOffer {
			gs.DrawOffer = true
		}
	}

	if pawnMoved || captureMade {
		gs.NoCaptureNoPawnMoveStreak = 0
	} else {
		gs.NoCaptureNoPawnMoveStreak++
	}

	return cur.Hash
}

func rookHomeCorner(bs *chess.BoardState, x, y int, color chess.Color) (kingside bool, ok bool) {
	r := homeRank(color)
	if y != r {
		return false, false
	}
	if x == 7 {
		return true, true
	}
	if x == 0 {
		return false, true
	}
	return false, false
}

func disableCastleRight(cur *zobrist.Cursor, bs *chess.BoardState, color chess.Color, kingside bool) {
	switch {
	case color == chess.White && kingside:
		cur.SetWhiteCastleKing(bs, false)
	case color == chess.White && !kingside:
		cur.SetWhiteCastleQueen(bs, false)
	case color == chess.Black && kingside:
		cur.SetBlackCastleKing(bs, false)
	default:
		cur.SetBlackCastleQueen(bs, false)
	}
}

func applyMove(cur *zobrist.Cursor, gs *chess.GameState, op chess.Operation) (pawnMoved, captureMade bool) {
	bs := &gs.BoardState
	mover := bs.Turn()
	piece0 := bs.Board.At(op.X0, op.Y0)
	piece1 := bs.Board.At(op.X1, op.Y1)

	if piece0.Kind() == chess.Pawn {
		pawnMoved = true
		if piece1.IsEmpty() && op.DX() != 0 {
			cur.SetBoardPiece(bs, op.X1, op.Y0, chess.Empty)
			captureMade = true
		}
		if abs(op.DY()) == 2 {
			hasEnemyPawn := func(nx, ny int) bool {
				return chess.InBounds(nx, ny) && bs.Board.At(nx, ny) == chess.MakePiece(mover.Opponent(), chess.Pawn)
			}
			if hasEnemyPawn(op.X1-1, op.Y1) || hasEnemyPawn(op.X1+1, op.Y1) {
				cur.SetEnPassantColumn(bs, op.X0)
			}
		}
	}

	if piece0.Kind() == chess.Rook {
		if kingside, ok := rookHomeCorner(bs, op.X0, op.Y0, mover); ok {
			disableCastleRight(cur, bs, mover, kingside)
		}
	}
	if piece0.Kind() == chess.King {
		cur.ClearCastleRights(bs, mover)
		gs.SetKingCoords(mover, op.X1, op.Y1)
	}
	// A rook captured while still on its home corner can never castle
	// again; clear the corner's right explicitly for hash cleanliness.
	if piece1.Kind() == chess.Rook {
		if kingside, ok := rookHomeCorner(bs, op.X1, op.Y1, mover.Opponent()); ok {
			disableCastleRight(cur, bs, mover.Opponent(), kingside)
		}
	}

	if !piece1.IsEmpty() {
		captureMade = true
	}

	cur.SetBoardPiece(bs, op.X1, op.Y1, piece0)
	cur.SetBoardPiece(bs, op.X0, op.Y0, chess.Empty)

	return pawnMoved, captureMade
}

func applyCastle(cur *zobrist.Cursor, gs *chess.GameState, op chess.Operation) {
	bs := &gs.BoardState
	mover := bs.Turn()
	r := homeRank(mover)
	kingside := op.X1 == 6

	var rookFromX, rookToX int
	if kingside {
		rookFromX, rookToX = 7, 5
	} else {
		rookFromX, rookToX = 0, 3
	}

	rook := chess.MakePiece(mover, chess.Rook)
	king := chess.MakePiece(mover, chess.King)

	cur.SetBoardPiece(bs, op.X0, op.Y0, chess.Empty)
	cur.SetBoardPiece(bs, rookFromX, r, chess.Empty)
	cur.SetBoardPiece(bs, op.X1, r, king)
	cur.SetBoardPiece(bs, rookToX, r, rook)

	gs.SetKingCoords(mover, op.X1, r)
	cur.ClearCastleRights(bs, mover)
}

func applyPromote(cur *zobrist.Cursor, gs *chess.GameState, op chess.Operation) (pawnMoved, captureMade bool) {
	bs := &gs.BoardState
	mover := bs.Turn()
	dest := bs.Board.At(op.X1, op.Y1)
	if !dest.IsEmpty() {
		captureMade = true
	}
	if dest.Kind() == chess.Rook {
		if kingside, ok := rookHomeCorner(bs, op.X1, op.Y1, mover.Opponent()); ok {
			disableCastleRight(cur, bs, mover.Opponent(), kingside)
		}
	}
	cur.SetBoardPiece(bs, op.X1, op.Y1, chess.MakePiece(mover, op.Code))
	cur.SetBoardPiece(bs, op.X0, op.Y0, chess.Empty)
	pawnMoved = true
	return pawnMoved, captureMade
}
