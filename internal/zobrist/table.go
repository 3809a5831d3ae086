// Package zobrist provides a fixed random hash table and the pure and
// incremental hash operations used to fingerprint a chess board state.
package zobrist

import (
	"math/rand"

	"github.com/lbarnes/chessd/internal/chess"
)

// Table is the fixed random table a GameHistory generates once and holds
// for its lifetime. It is immutable after construction.
type Table struct {
	board            [64][13]uint64
	blackTurn        uint64
	whiteCastleQueen uint64
	whiteCastleKing  uint64
	blackCastleQueen uint64
	blackCastleKing  uint64
	enPassantColumn  [8]uint64
}

func squareIndex(x, y int) int {
	return y*8 + x
}

// NewTable builds a table from a seeded random source. Two tables built from
// the same seed produce identical hashes for identical states; two tables
// from different seeds are independent.
func NewTable(seed int64) *Table {
	r := rand.New(rand.NewSource(seed))
	t := &Table{}
	for sq := 0; sq < 64; sq++ {
		for piece := 0; piece < 13; piece++ {
			t.board[sq][piece] = r.Uint64()
		}
	}
	t.blackTurn = r.Uint64()
	t.whiteCastleQueen = r.Uint64()
	t.whiteCastleKing = r.Uint64()
	t.blackCastleQueen = r.Uint64()
	t.blackCastleKing = r.Uint64()
	for i := range t.enPassantColumn {
		t.enPassantColumn[i] = r.Uint64()
	}
	return t
}

func (t *Table) pieceEntry(x, y int, p chess.Piece) uint64 {
	return t.board[squareIndex(x, y)][p]
}

// Hash computes the hash of a board state from scratch: the XOR of the
// table entry for every occupied state bit.
func (t *Table) Hash(s chess.BoardState) uint64 {
	var h uint64
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			h ^= t.pieceEntry(x, y, s.Board.At(x, y))
		}
	}
	if s.BlackTurn {
		h ^= t.blackTurn
	}
	if s.WhiteCastleQueen {
		h ^= t.whiteCastleQueen
	}
	if s.WhiteCastleKing {
		h ^= t.whiteCastleKing
	}
	if s.BlackCastleQueen {
		h ^= t.blackCastleQueen
	}
	if s.BlackCastleKing {
		h ^= t.blackCastleKing
	}
	if s.EnPassantColumn >= 0 {
		h ^= t.enPassantColumn[s.EnPassantColumn]
	}
	return h
}
