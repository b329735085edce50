package position

import "testing"

func TestStartposInvariants(t *testing.T) {
	p := New()
	if !p.Validate() {
		t.Fatal("Validate() false for starting position")
	}
	if p.SideToMove() != White {
		t.Fatal("expected White to move at start")
	}
	if p.Castling() != WhiteKingside|WhiteQueenside|BlackKingside|BlackQueenside {
		t.Fatal("expected all castling rights at start")
	}
	if p.EnPassantSquare() != NoSquare {
		t.Fatal("expected no en-passant target at start")
	}
	if p.HalfmoveClock() != 0 || p.FullmoveNumber() != 1 {
		t.Fatal("unexpected clock values at start")
	}
	if p.Pieces(White, Pawn).PopCount() != 8 || p.Pieces(Black, Pawn).PopCount() != 8 {
		t.Fatal("expected 8 pawns per side")
	}
}

func TestClear(t *testing.T) {
	p := New()
	p.Clear()
	if p.OccupiedAll() != 0 {
		t.Fatal("expected empty board after Clear")
	}
	if p.SideToMove() != White {
		t.Fatal("expected White to move after Clear")
	}
	if p.EnPassantSquare() != NoSquare {
		t.Fatal("expected no en-passant target after Clear")
	}
	for s := Square(0); s < 64; s++ {
		if color, _ := p.PieceAt(s); color != None {
			t.Fatalf("square %v not empty after Clear", s)
		}
	}
}

func TestMutationPrimitivesKeepOccupancyInSync(t *testing.T) {
	var p Position
	p.Clear()
	p.putPiece(White, Rook, mustSquare(t, "a1"))
	if p.Pieces(White, Rook)&sqBB(mustSquare(t, "a1")) == 0 {
		t.Fatal("putPiece did not set piece bitboard")
	}
	if p.Occupied(White)&sqBB(mustSquare(t, "a1")) == 0 {
		t.Fatal("putPiece did not set color occupancy")
	}
	if p.OccupiedAll()&sqBB(mustSquare(t, "a1")) == 0 {
		t.Fatal("putPiece did not set total occupancy")
	}

	p.movePiece(White, Rook, mustSquare(t, "a1"), mustSquare(t, "a8"))
	if color, _ := p.PieceAt(mustSquare(t, "a1")); color != None {
		t.Fatal("movePiece left a stale piece on the source square")
	}
	if color, pt := p.PieceAt(mustSquare(t, "a8")); color != White || pt != Rook {
		t.Fatal("movePiece did not place the piece on the destination square")
	}

	p.removePiece(White, Rook, mustSquare(t, "a8"))
	if p.OccupiedAll() != 0 {
		t.Fatal("expected empty board after removing the only piece")
	}
}
