package chess

// Board is the fixed 8x8 grid of pieces, indexed board[y][x] with y as the
// outer coordinate (rank 1 at y=0, file a at x=0).
type Board [8][8]Piece

// At returns the piece on (x, y). Callers must check InBounds first.
func (b *Board) At(x, y int) Piece {
	return b[y][x]
}

// Set places a piece on (x, y). Callers must check InBounds first.
func (b *Board) Set(x, y int, p Piece) {
	b[y][x] = p
}

// BoardState is the comparable value type combining the grid with the
// remaining state needed to reconstruct legality and the Zobrist hash: whose
// turn it is, castling rights, and the en-passant file.
type BoardState struct {
	Board            Board
	BlackTurn        bool
	WhiteCastleQueen bool
	WhiteCastleKing  bool
	BlackCastleQueen bool
	BlackCastleKing  bool
	EnPassantColumn  int
}

// Turn returns the color to move.
func (s BoardState) Turn() Color {
	if s.BlackTurn {
		return Black
	}
	return White
}

// GameState is the full state of a game in progress: the board state plus
// the draw-offer flag, the no-progress streak, cached king coordinates, and
// the current check/terminal status.
type GameState struct {
	BoardState BoardState

	DrawOffer                 bool
	NoCaptureNoPawnMoveStreak int

	WhiteKingX, WhiteKingY int
	BlackKingX, BlackKingY int

	Check  bool
	Status Status
}

// KingCoords returns the cached coordinates of the given color's king.
func (s GameState) KingCoords(c Color) (int, int) {
	if c == White {
		return s.WhiteKingX, s.WhiteKingY
	}
	return s.BlackKingX, s.BlackKingY
}

// SetKingCoords updates the cached coordinates of the given color's king.
func (s *GameState) SetKingCoords(c Color, x, y int) {
	if c == White {
		s.WhiteKingX, s.WhiteKingY = x, y
	} else {
		s.BlackKingX, s.BlackKingY = x, y
	}
}

// CastleRight reports the current right for (color, kingside).
func (s BoardState) CastleRight(c Color, kingside bool) bool {
	switch {
	case c == White && kingside:
		return s.WhiteCastleKing
	case c == White && !kingside:
		return s.WhiteCastleQueen
	case c == Black && kingside:
		return s.BlackCastleKing
	default:
		return s.BlackCastleQueen
	}
}
