package search

import (
	"testing"

	"chessgo/position"
)

// TestMateInOne checks that a two-ply search finds a back-rank mate
// supported by king opposition.
func TestMateInOne(t *testing.T) {
	var pos position.Position
	if err := pos.SetFEN("4k3/8/4K3/8/8/8/8/6R1 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN: %v", err)
	}

	best, _, ok := Search(&pos, 2)
	if !ok {
		t.Fatal("expected a move from a non-terminal position")
	}
	if best.String() != "g1g8" {
		t.Fatalf("expected g1g8, got %s", best)
	}

	rec := pos.DoMove(best)
	defer pos.UndoMove(rec)

	if pos.HasLegalMoves() {
		t.Fatal("expected no legal replies after the mating move")
	}
	if !pos.InCheck(pos.SideToMove()) {
		t.Fatal("expected the opponent's king to be in check after the mating move")
	}
}

// TestEvaluateStartpos checks that material is balanced and the mobility
// term reflects White's 20 legal opening moves.
func TestEvaluateStartpos(t *testing.T) {
	pos := position.New()
	if got := Evaluate(pos); got != 20 {
		t.Fatalf("Evaluate(startpos) = %d, want 20 (balanced material + White's 20-move mobility)", got)
	}
}

func TestSearchReturnsLegalMove(t *testing.T) {
	pos := position.New()
	best, _, ok := Search(pos, 2)
	if !ok {
		t.Fatal("expected a move from the starting position")
	}
	legal := pos.GenerateLegal(make([]position.Move, 0, 64))
	found := false
	for _, m := range legal {
		if m == best {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("Search returned %s, not in the legal move list", best)
	}
}
