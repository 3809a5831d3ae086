package chess

// StandardOpening builds the GameState for the standard chess starting
// position: white to move, both sides holding both castling rights, no
// en-passant file open, kings on their home squares, empty streak.
func StandardOpening() GameState {
	var board Board

	backRank := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x := 0; x < 8; x++ {
		board.Set(x, 0, MakePiece(White, backRank[x]))
		board.Set(x, 1, MakePiece(White, Pawn))
		board.Set(x, 6, MakePiece(Black, Pawn))
		board.Set(x, 7, MakePiece(Black, backRank[x]))
		for y := 2; y < 6; y++ {
			board.Set(x, y, Empty)
		}
	}

	return GameState{
		BoardState: BoardState{
			Board:            board,
			BlackTurn:        false,
			WhiteCastleQueen: true,
			WhiteCastleKing:  true,
			BlackCastleQueen: true,
			BlackCastleKing:  true,
			EnPassantColumn:  -1,
		},
		DrawOffer:                 false,
		NoCaptureNoPawnMoveStreak: 0,
		WhiteKingX:                4,
		WhiteKingY:                0,
		BlackKingX:                4,
		BlackKingY:                7,
		Check:                     false,
		Status:                    Active,
	}
}
