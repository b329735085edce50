package position

import "testing"

func TestSetFENRoundTrip(t *testing.T) {
	cases := []string{
		FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}
	for _, fen := range cases {
		var p Position
		if err := p.SetFEN(fen); err != nil {
			t.Fatalf("SetFEN(%q) failed: %v", fen, err)
		}
		if got := p.String(); got != fen {
			t.Errorf("round trip mismatch: SetFEN(%q).String() = %q", fen, got)
		}
		if !p.Validate() {
			t.Errorf("Validate() false after SetFEN(%q)", fen)
		}
	}
}

func TestSetFENRejectsWrongFieldCount(t *testing.T) {
	var p Position
	if err := p.SetFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"); err == nil {
		t.Fatal("expected error for missing fields")
	}
}

func TestSetFENRejectsInvalidPiece(t *testing.T) {
	var p Position
	err := p.SetFEN("xnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err == nil {
		t.Fatal("expected error for invalid piece character")
	}
}

func TestSetFENLeavesPriorStateOnFailure(t *testing.T) {
	var p Position
	p.SetStartpos()
	before := p.String()
	if err := p.SetFEN("garbage"); err == nil {
		t.Fatal("expected error for malformed FEN")
	}
	if p.String() != before {
		t.Fatal("partial state was committed on a failed SetFEN")
	}
}
