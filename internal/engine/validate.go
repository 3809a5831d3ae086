// Package engine implements the operation validator, applier, and move
// generator that sit on top of internal/chess's plain value types.
package engine

import (
	"github.com/lbarnes/chessd/internal/chess"
	"github.com/lbarnes/chessd/internal/errkind"
)

// ValidateOperation reports whether op is legal from gs, ignoring the "own
// king left in check" rule (that check happens after a tentative apply, in
// internal/round).
func ValidateOperation(gs *chess.GameState, op chess.Operation) error {
	switch op.Category {
	case chess.CategoryNone:
		return errkind.ErrNullOperation
	case chess.CategoryResign:
		return nil
	case chess.CategoryDrawAccept:
		if !gs.DrawOffer {
			return errkind.ErrDrawNotOffered
		}
		return nil
	}

	bs := &gs.BoardState
	mover := bs.Turn()

	if op.Category == chess.CategoryCastle {
		return validateCastle(gs, op, mover)
	}

	if !chess.InBounds(op.X0, op.Y0) {
		return errkind.ErrEmptySource
	}
	source := bs.Board.At(op.X0, op.Y0)
	if source.IsEmpty() {
		return errkind.ErrEmptySource
	}
	if source.Color() != mover {
		return errkind.ErrWrongTurn
	}
	if op.X0 == op.X1 && op.Y0 == op.Y1 {
		return errkind.ErrZeroLengthMove
	}
	if !chess.InBounds(op.X1, op.Y1) {
		return errkind.ErrDestinationOutOfRange
	}

	switch source.Kind() {
	case chess.King:
		if op.Category != chess.CategoryMove {
			return errkind.ErrInvalidKingOperation
		}
		return validateKingMove(bs, op, mover)
	case chess.Queen:
		if op.Category != chess.CategoryMove {
			return errkind.ErrInvalidQueenOperation
		}
		return validateQueenMove(bs, op, mover)
	case chess.Bishop:
		if op.Category != chess.CategoryMove {
			return errkind.ErrInvalidBishopOperation
		}
		return validateBishopMove(bs, op, mover)
	case chess.Rook:
		if op.Category != chess.CategoryMove {
			return errkind.ErrInvalidRookOperation
		}
		return validateRookMove(bs, op, mover)
	case chess.Knight:
		if op.Category != chess.CategoryMove {
			return errkind.ErrInvalidKnightOperation
		}
		return validateKnightMove(bs, op, mover)
	default:
		return validatePawnMove(bs, op, mover)
	}
}

func destNotFriendly(bs *chess.BoardState, x, y int, mover chess.Color) bool {
	dest := bs.Board.At(x, y)
	return dest.IsEmpty() || dest.Color() != mover
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func validateKingMove(bs *chess.BoardState, op chess.Operation, mover chess.Color) error {
	dx, dy := op.DX(), op.DY()
	if abs(dx) > 1 || abs(dy) > 1 {
		return errkind.ErrInvalidKingMove
	}
	if !destNotFriendly(bs, op.X1, op.Y1, mover) {
		return errkind.ErrInvalidKingMove
	}
	if chess.PositionAttacked(&bs.Board, op.X1, op.Y1, mover == chess.White) {
		return errkind.ErrInvalidKingMove
	}
	return nil
}

// homeRank returns the back rank y-coordinate for a color.
func homeRank(c chess.Color) int {
	if c == chess.White {
		return 0
	}
	return 7
}

func validateCastle(gs *chess.GameState, op chess.Operation, mover chess.Color) error {
	bs := &gs.BoardState
	r := homeRank(mover)
	kx, ky := gs.KingCoords(mover)
	if kx != 4 || ky != r {
		return errkind.ErrInvalidKingCastle
	}
	if op.X0 != 4 || op.Y0 != r || op.Y1 != r {
		return errkind.Wrapf(errkind.ErrInvalidKingCastle,
			"operation source (%d,%d)->rank %d does not match %s's home square (4,%d)", op.X0, op.Y0, op.Y1, mover, r)
	}
	kingside := op.X1 == 6
	if !kingside && op.X1 != 2 {
		return errkind.ErrInvalidKingCastle
	}
	if !bs.CastleRight(mover, kingside) {
		return errkind.ErrInvalidKingCastle
	}
	if gs.Check {
		return errkind.ErrInvalidKingCastle
	}

	var empties, safety [][2]int
	if kingside {
		empties = [][2]int{{5, r}, {6, r}}
		safety = [][2]int{{5, r}, {6, r}}
	} else {
		empties = [][2]int{{1, r}, {2, r}, {3, r}}
		safety = [][2]int{{2, r}, {3, r}}
	}
	for _, sq := range empties {
		if !bs.Board.At(sq[0], sq[1]).IsEmpty() {
			return errkind.ErrInvalidKingCastle
		}
	}
	byBlack := mover == chess.White
	for _, sq := range safety {
		if chess.PositionAttacked(&bs.Board, sq[0], sq[1], byBlack) {
			return errkind.ErrInvalidKingCastle
		}
	}
	return nil
}

func checkDiagonal(bs *chess.BoardState, op chess.Operation, mover chess.Color) bool {
	dx, dy := op.DX(), op.DY()
	if abs(dx) != abs(dy) || dx == 0 {
		return false
	}
	if !slidingPathClear(bs, op.X0, op.Y0, dx, dy) {
		return false
	}
	return destNotFriendly(bs, op.X1, op.Y1, mover)
}

func checkOrthogonal(bs *chess.BoardState, op chess.Operation, mover chess.Color) bool {
	dx, dy := op.DX(), op.DY()
	if (dx == 0) == (dy == 0) {
		return false
	}
	if !slidingPathClear(bs, op.X0, op.Y0, dx, dy) {
		return false
	}
	return destNotFriendly(bs, op.X1, op.Y1, mover)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// slidingPathClear walks from (x0,y0) in direction (dx,dy) normalized to a
// single step and checks every intermediate square (not including the
// destination) is empty. dx/dy must be the raw delta to the destination;
// the step direction is derived via sign.
func slidingPathClear(bs *chess.BoardState, x0, y0, dx, dy int) bool {
	stepX, stepY := sign(dx), sign(dy)
	x, y := x0+stepX, y0+stepY
	destX, destY := x0+dx, y0+dy
	for x != destX || y != destY {
		if !bs.Board.At(x, y).IsEmpty() {
			return false
		}
		x += stepX
		y += stepY
	}
	return true
}

func validateQueenMove(bs *chess.BoardState, op chess.Operation, mover chess.Color) error {
	if checkDiagonal(bs, op, mover) || checkOrthogonal(bs, op, mover) {
		return nil
	}
	return errkind.ErrInvalidQueenMove
}

func validateBishopMove(bs *chess.BoardState, op chess.Operation, mover chess.Color) error {
	if checkDiagonal(bs, op, mover) {
		return nil
	}
	return errkind.ErrInvalidBishopMove
}

func validateRookMove(bs *chess.BoardState, op chess.Operation, mover chess.Color) error {
	if checkOrthogonal(bs, op, mover) {
		return nil
	}
	return errkind.ErrInvalidRookMove
}

func validateKnightMove(bs *chess.BoardState, op chess.Operation, mover chess.Color) error {
	dx, dy := abs(op.DX()), abs(op.DY())
	if !((dx == 1 && dy == 2) || (dx == 2 && dy == 1)) {
		return errkind.ErrInvalidKnightMove
	}
	if !destNotFriendly(bs, op.X1, op.Y1, mover) {
		return errkind.ErrInvalidKnightMove
	}
	return nil
}

func isEnPassantCapture(bs *chess.BoardState, op chess.Operation, mover chess.Color) bool {
	fromRank, toRank := 4, 5
	if mover == chess.Black {
		fromRank, toRank = 3, 2
	}
	if op.Y0 != fromRank || op.Y1 != toRank || abs(op.DX()) != 1 {
		return false
	}
	if op.X1 != bs.EnPassantColumn {
		return false
	}
	enemyPawn := chess.MakePiece(mover.Opponent(), chess.Pawn)
	if bs.Board.At(op.X1, op.Y0) != enemyPawn {
		return false
	}
	return bs.Board.At(op.X1, op.Y1).IsEmpty()
}

func pawnMoveOK(bs *chess.BoardState, op chess.Operation, mover chess.Color) bool {
	dir := 1
	homeY := 1
	if mover == chess.Black {
		dir = -1
		homeY = 6
	}
	dx, dy := op.DX(), op.DY()

	if dx == 0 && dy == dir && bs.Board.At(op.X1, op.Y1).IsEmpty() {
		return true
	}
	if dx == 0 && dy == 2*dir && op.Y0 == homeY {
		midY := op.Y0 + dir
		if bs.Board.At(op.X0, midY).IsEmpty() && bs.Board.At(op.X1, op.Y1).IsEmpty() {
			return true
		}
	}
	if abs(dx) == 1 && dy == dir {
		dest := bs.Board.At(op.X1, op.Y1)
		if !dest.IsEmpty() && dest.Color() != mover {
			return true
		}
		if isEnPassantCapture(bs, op, mover) {
			return true
		}
	}
	return false
}

func promotionRank(mover chess.Color) int {
	if mover == chess.White {
		return 7
	}
	return 0
}

func validatePawnMove(bs *chess.BoardState, op chess.Operation, mover chess.Color) error {
	onPromotionRank := op.Y1 == promotionRank(mover)
	if onPromotionRank {
		if op.Category != chess.CategoryPromote {
			return errkind.ErrInvalidPawnPromote
		}
		if !pawnMoveOK(bs, op, mover) {
			return errkind.ErrInvalidPawnPromote
		}
		switch op.Code {
		case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		default:
			return errkind.ErrInvalidPawnPromote
		}
		return nil
	}
	if op.Category != chess.CategoryMove {
		return errkind.ErrInvalidPawnMove
	}
	if !pawnMoveOK(bs, op, mover) {
		return errkind.ErrInvalidPawnMove
	}
	return nil
}
