package chess

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var orthogonalDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// PositionAttacked reports whether the square (x, y) is attacked by the
// black side (if byBlack) or the white side (otherwise), ignoring en
// passant. Checks pawns, then sliding pieces, then knights, then the king,
// matching the order the board model always evaluates attacks in.
func PositionAttacked(b *Board, x, y int, byBlack bool) bool {
	attacker := White
	if byBlack {
		attacker = Black
	}

	pawnDir := -1
	if byBlack {
		pawnDir = 1
	}
	pawn := MakePiece(attacker, Pawn)
	py := y + pawnDir
	if py >= 0 && py < 8 {
		if x-1 >= 0 && b.At(x-1, py) == pawn {
			return true
		}
		if x+1 < 8 && b.At(x+1, py) == pawn {
			return true
		}
	}

	bishop := MakePiece(attacker, Bishop)
	rook := MakePiece(attacker, Rook)
	queen := MakePiece(attacker, Queen)

	for _, d := range diagonalDirs {
		cx, cy := x+d[0], y+d[1]
		for InBounds(cx, cy) {
			p := b.At(cx, cy)
			if p != Empty {
				if p == bishop || p == queen {
					return true
				}
				break
			}
			cx += d[0]
			cy += d[1]
		}
	}

	for _, d := range orthogonalDirs {
		cx, cy := x+d[0], y+d[1]
		for InBounds(cx, cy) {
			p := b.At(cx, cy)
			if p != Empty {
				if p == rook || p == queen {
					return true
				}
				break
			}
			cx += d[0]
			cy += d[1]
		}
	}

	knight := MakePiece(attacker, Knight)
	for _, o := range knightOffsets {
		cx, cy := x+o[0], y+o[1]
		if InBounds(cx, cy) && b.At(cx, cy) == knight {
			return true
		}
	}

	king := MakePiece(attacker, King)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			cx, cy := x+dx, y+dy
			if InBounds(cx, cy) && b.At(cx, cy) == king {
				return true
			}
		}
	}

	return false
}
