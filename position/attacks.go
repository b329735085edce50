package position

import "math/bits"

// Precomputed leaper attack tables, filled once at package init so move
// generation and attack queries never recompute knight/king/pawn geometry.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // indexed by Color, then from-square
)

// Ray tables: for each square, the full-board ray (no blocker trimming) in
// each of the four rook directions and four bishop directions. Sliders trim
// these against live occupancy at query time; see rookAttacksFrom/
// bishopAttacksFrom below.
var (
	rookRays   [64][4]Bitboard // N, S, E, W
	bishopRays [64][4]Bitboard // NE, NW, SE, SW
)

func init() {
	initLeaperAttacks()
	initRays()
}

func initLeaperAttacks() {
	knightOffsets := [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets := [8][2]int{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	for s := 0; s < 64; s++ {
		f, r := s%8, s/8
		var n, k Bitboard
		for _, o := range knightOffsets {
			nf, nr := f+o[0], r+o[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				n |= sqBB(Square(nr*8 + nf))
			}
		}
		for _, o := range kingOffsets {
			nf, nr := f+o[0], r+o[1]
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				k |= sqBB(Square(nr*8 + nf))
			}
		}
		knightAttacks[s] = n
		kingAttacks[s] = k

		var wp, bp Bitboard
		if f > 0 && r < 7 {
			wp |= sqBB(Square((r+1)*8 + f - 1))
		}
		if f < 7 && r < 7 {
			wp |= sqBB(Square((r+1)*8 + f + 1))
		}
		if f > 0 && r > 0 {
			bp |= sqBB(Square((r-1)*8 + f - 1))
		}
		if f < 7 && r > 0 {
			bp |= sqBB(Square((r-1)*8 + f + 1))
		}
		pawnAttacks[White][s] = wp
		pawnAttacks[Black][s] = bp
	}
}

func initRays() {
	for s := 0; s < 64; s++ {
		f, r := s%8, s/8
		rookRays[s][0] = rayMask(f, r, 0, 1)
		rookRays[s][1] = rayMask(f, r, 0, -1)
		rookRays[s][2] = rayMask(f, r, 1, 0)
		rookRays[s][3] = rayMask(f, r, -1, 0)
		bishopRays[s][0] = rayMask(f, r, 1, 1)
		bishopRays[s][1] = rayMask(f, r, -1, 1)
		bishopRays[s][2] = rayMask(f, r, 1, -1)
		bishopRays[s][3] = rayMask(f, r, -1, -1)
	}
}

func rayMask(f, r, df, dr int) Bitboard {
	var b Bitboard
	for {
		f += df
		r += dr
		if f < 0 || f > 7 || r < 0 || r > 7 {
			break
		}
		b |= sqBB(Square(r*8 + f))
	}
	return b
}

// slideAttacks casts a ray from s in one direction against a precomputed
// full-board ray mask, stopping immediately after the first blocker found in
// occ. ascending selects whether the nearest blocker is the lowest-indexed
// (N, E, NE, NW) or highest-indexed (S, W, SE, SW) bit on the ray.
func slideAttacks(full Bitboard, occ Bitboard, ascending bool) Bitboard {
	blockers := full & occ
	if blockers == 0 {
		return full
	}
	if ascending {
		first := blockers.LSB()
		return full &^ (^Bitboard(0) << uint(first) << 1)
	}
	last := 63 - bits.LeadingZeros64(uint64(blockers))
	return full &^ (Bitboard(1)<<uint(last) - 1)
}

// rookAttacksFrom returns rook-geometry attacks from s given occupancy occ,
// casting along each of the four rook rays to the first blocker.
func rookAttacksFrom(s Square, occ Bitboard) Bitboard {
	return slideAttacks(rookRays[s][0], occ, true) |
		slideAttacks(rookRays[s][1], occ, false) |
		slideAttacks(rookRays[s][2], occ, true) |
		slideAttacks(rookRays[s][3], occ, false)
}

// bishopAttacksFrom returns bishop-geometry attacks from s given occupancy occ.
func bishopAttacksFrom(s Square, occ Bitboard) Bitboard {
	return slideAttacks(bishopRays[s][0], occ, true) |
		slideAttacks(bishopRays[s][1], occ, true) |
		slideAttacks(bishopRays[s][2], occ, false) |
		slideAttacks(bishopRays[s][3], occ, false)
}

// queenAttacksFrom is the union of rook and bishop geometry.
func queenAttacksFrom(s Square, occ Bitboard) Bitboard {
	return rookAttacksFrom(s, occ) | bishopAttacksFrom(s, occ)
}

// SquareAttacked reports whether any piece of color by attacks square s.
// Implemented as direction-reversed attack detection: rays and leaper
// patterns are cast from the target square and matched against the attacker's
// pieces, which works because attack relations are symmetric in geometry —
// if a rook on a could reach b, a rook on b could reach a.
func (p *Position) SquareAttacked(s Square, by Color) bool {
	occ := p.occAll
	if pawnAttacks[by.Opposite()][s]&p.pcs[by][Pawn] != 0 {
		return true
	}
	if knightAttacks[s]&p.pcs[by][Knight] != 0 {
		return true
	}
	if kingAttacks[s]&p.pcs[by][King] != 0 {
		return true
	}
	bishopsQueens := p.pcs[by][Bishop] | p.pcs[by][Queen]
	if bishopsQueens != 0 && bishopAttacksFrom(s, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.pcs[by][Rook] | p.pcs[by][Queen]
	if rooksQueens != 0 && rookAttacksFrom(s, occ)&rooksQueens != 0 {
		return true
	}
	return false
}
