package zobrist

import "github.com/lbarnes/chessd/internal/chess"

// Cursor threads a running hash alongside a Table through a sequence of
// incremental mutations, keeping the invariant that Hash always equals a
// from-scratch recomputation of the state it mutated.
type Cursor struct {
	Table *Table
	Hash  uint64
}

// NewCursor starts a cursor at a known hash for the given table.
func NewCursor(t *Table, hash uint64) *Cursor {
	return &Cursor{Table: t, Hash: hash}
}

// SetBoardPiece XORs out the table entry for the current occupant of (x, y),
// XORs in the entry for newPiece, and writes newPiece to the board.
func (c *Cursor) SetBoardPiece(s *chess.BoardState, x, y int, newPiece chess.Piece) {
	old := s.Board.At(x, y)
	if old == newPiece {
		return
	}
	c.Hash ^= c.Table.pieceEntry(x, y, old)
	c.Hash ^= c.Table.pieceEntry(x, y, newPiece)
	s.Board.Set(x, y, newPiece)
}

// SetBool flips a boolean state field through its table entry, XORing only
// if the value actually changes.
func (c *Cursor) SetBool(field *bool, tableEntry uint64, newValue bool) {
	if *field == newValue {
		return
	}
	c.Hash ^= tableEntry
	*field = newValue
}

// SetTurn toggles whose turn it is via the black-turn table entry.
func (c *Cursor) SetTurn(s *chess.BoardState, blackTurn bool) {
	c.SetBool(&s.BlackTurn, c.Table.blackTurn, blackTurn)
}

// SetWhiteCastleQueen updates the white queenside castling right.
func (c *Cursor) SetWhiteCastleQueen(s *chess.BoardState, v bool) {
	c.SetBool(&s.WhiteCastleQueen, c.Table.whiteCastleQueen, v)
}

// SetWhiteCastleKing updates the white kingside castling right.
func (c *Cursor) SetWhiteCastleKing(s *chess.BoardState, v bool) {
	c.SetBool(&s.WhiteCastleKing, c.Table.whiteCastleKing, v)
}

// SetBlackCastleQueen updates the black queenside castling right.
func (c *Cursor) SetBlackCastleQueen(s *chess.BoardState, v bool) {
	c.SetBool(&s.BlackCastleQueen, c.Table.blackCastleQueen, v)
}

// SetBlackCastleKing updates the black kingside castling right.
func (c *Cursor) SetBlackCastleKing(s *chess.BoardState, v bool) {
	c.SetBool(&s.BlackCastleKing, c.Table.blackCastleKing, v)
}

// ClearCastleRights clears both castling rights for the given color.
func (c *Cursor) ClearCastleRights(s *chess.BoardState, color chess.Color) {
	if color == chess.White {
		c.SetWhiteCastleQueen(s, false)
		c.SetWhiteCastleKing(s, false)
	} else {
		c.SetBlackCastleQueen(s, false)
		c.SetBlackCastleKing(s, false)
	}
}

// SetEnPassantColumn XORs out the old column entry (if any), XORs in the new
// one (if any), and writes the new column.
func (c *Cursor) SetEnPassantColumn(s *chess.BoardState, newCol int) {
	if s.EnPassantColumn == newCol {
		return
	}
	if s.EnPassantColumn >= 0 {
		c.Hash ^= c.Table.enPassantColumn[s.EnPassantColumn]
	}
	if newCol >= 0 {
		c.Hash ^= c.Table.enPassantColumn[newCol]
	}
	s.EnPassantColumn = newCol
}
