package position

import "testing"

// TestPerftStartpos checks the move generator against the standard perft
// table for the starting position. Deeper counts are skipped in short mode
// to keep the default test run fast.
func TestPerftStartpos(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		{5, 4865609},
	}
	for _, c := range cases {
		if c.depth >= 4 && testing.Short() {
			continue
		}
		p := New()
		if got := p.Perft(c.depth); got != c.want {
			t.Errorf("Perft(startpos, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

// TestPerftKiwipete checks the move generator against the Kiwipete position,
// chosen for its castling, en-passant, and promotion density.
func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
		{4, 4085603},
	}
	for _, c := range cases {
		if c.depth >= 4 && testing.Short() {
			continue
		}
		var p Position
		if err := p.SetFEN(kiwipete); err != nil {
			t.Fatalf("SetFEN: %v", err)
		}
		if got := p.Perft(c.depth); got != c.want {
			t.Errorf("Perft(kiwipete, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}
