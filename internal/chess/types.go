// Package chess provides the board representation, game state, and operation
// types shared by the rules engine.
package chess

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

// String returns the display name of the color.
func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Kind identifies a piece type independent of color.
type Kind uint8

const (
	NoKind Kind = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// String returns the display name of the kind.
func (k Kind) String() string {
	names := [...]string{"None", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Piece is a tagged variant over Empty and the 12 colored pieces: value 0 is
// Empty, values 1-6 are the white pieces King..Pawn, values 7-12 are the
// black pieces King..Pawn.
type Piece uint8

const (
	Empty Piece = iota
	WhiteKing
	WhiteQueen
	WhiteRook
	WhiteBishop
	WhiteKnight
	WhitePawn
	BlackKing
	BlackQueen
	BlackRook
	BlackBishop
	BlackKnight
	BlackPawn
)

// MakePiece builds the piece value for a given color and kind. Kind must not
// be NoKind.
func MakePiece(c Color, k Kind) Piece {
	if c == White {
		return Piece(k)
	}
	return Piece(uint8(k) + uint8(BlackKing) - 1)
}

// IsEmpty reports whether the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Color returns the piece's color. Calling this on Empty is a programming
// error and returns White.
func (p Piece) Color() Color {
	if p >= BlackKing {
		return Black
	}
	return White
}

// Kind returns the piece's kind, or NoKind for Empty.
func (p Piece) Kind() Kind {
	switch p {
	case Empty:
		return NoKind
	case WhiteKing, BlackKing:
		return King
	case WhiteQueen, BlackQueen:
		return Queen
	case WhiteRook, BlackRook:
		return Rook
	case WhiteBishop, BlackBishop:
		return Bishop
	case WhiteKnight, BlackKnight:
		return Knight
	default:
		return Pawn
	}
}

// String renders the piece as a single letter, uppercase for white and
// lowercase for black, '.' for empty.
func (p Piece) String() string {
	if p == Empty {
		return "."
	}
	letters := map[Kind]byte{King: 'K', Queen: 'Q', Rook: 'R', Bishop: 'B', Knight: 'N', Pawn: 'P'}
	letter := letters[p.Kind()]
	if p.Color() == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// Status is the terminal outcome of a game.
type Status uint8

const (
	Active Status = iota
	WhiteWin
	BlackWin
	Draw
)

func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	default:
		return "Draw"
	}
}

// InBounds reports whether (x, y) lies on the 8x8 board.
func InBounds(x, y int) bool {
	return x >= 0 && x < 8 && y >= 0 && y < 8
}
