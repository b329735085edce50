package position

// Board squares referenced by castling, named for readability rather than
// spelled out as raw indices in the branches below.
const (
	e1 Square = 4
	g1 Square = 6
	c1 Square = 2
	a1 Square = 0
	h1 Square = 7
	f1 Square = 5
	d1 Square = 3

	e8 Square = 60
	g8 Square = 62
	c8 Square = 58
	a8 Square = 56
	h8 Square = 63
	f8 Square = 61
	d8 Square = 59
)

// GeneratePseudoLegal appends every pseudo-legal move for the side to move
// to dst and returns the extended slice. A pseudo-legal move respects piece
// geometry and occupancy but may leave the mover's king in check.
func (p *Position) GeneratePseudoLegal(dst []Move) []Move {
	us := p.side
	them := us.Opposite()
	ourOcc := p.occ[us]
	theirOcc := p.occ[them]
	empty := ^p.occAll

	dst = p.genPawnMoves(dst, us, them, empty)

	knights := p.pcs[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		dst = genLeaperMoves(dst, from, knightAttacks[from]&^ourOcc, theirOcc)
	}

	bishops := p.pcs[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		dst = genLeaperMoves(dst, from, bishopAttacksFrom(from, p.occAll)&^ourOcc, theirOcc)
	}

	rooks := p.pcs[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		dst = genLeaperMoves(dst, from, rookAttacksFrom(from, p.occAll)&^ourOcc, theirOcc)
	}

	queens := p.pcs[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		dst = genLeaperMoves(dst, from, queenAttacksFrom(from, p.occAll)&^ourOcc, theirOcc)
	}

	king := p.pcs[us][King]
	if king != 0 {
		from := king.LSB()
		dst = genLeaperMoves(dst, from, kingAttacks[from]&^ourOcc, theirOcc)
		dst = p.genCastling(dst, us)
	}

	return dst
}

// genLeaperMoves classifies each destination in targets as Quiet or Capture
// by intersecting with the opponent's occupancy (shared by knights, kings,
// and — given a precomputed attack set — sliders).
func genLeaperMoves(dst []Move, from Square, targets, theirOcc Bitboard) []Move {
	for targets != 0 {
		to := targets.PopLSB()
		flag := Quiet
		if sqBB(to)&theirOcc != 0 {
			flag = Capture
		}
		dst = append(dst, NewMove(from, to, flag))
	}
	return dst
}

func (p *Position) genPawnMoves(dst []Move, us, them Color, empty Bitboard) []Move {
	pawns := p.pcs[us][Pawn]
	theirOcc := p.occ[them]

	var push func(Bitboard) Bitboard
	var promoRank, startRankSingle Bitboard
	var capWestShift, capEastShift func(Bitboard) Bitboard
	if us == White {
		push = shiftNorth
		promoRank = rank8
		startRankSingle = rank3
		capWestShift = shiftNorthWest
		capEastShift = shiftNorthEast
	} else {
		push = shiftSouth
		promoRank = rank1
		startRankSingle = rank6
		capWestShift = shiftSouthWest
		capEastShift = shiftSouthEast
	}

	pushDelta := -pawnPushDelta(us)
	single := push(pawns) & empty
	dst = emitPawnAdvances(dst, single&^promoRank, pushDelta)
	dst = emitPawnPromotions(dst, single&promoRank, pushDelta)

	double := push(single&startRankSingle) & empty
	for double != 0 {
		to := double.PopLSB()
		dst = append(dst, NewMove(to-2*pawnPushDelta(us), to, Quiet))
	}

	westCaps := capWestShift(pawns) & theirOcc
	dst = emitPawnCaptures(dst, westCaps&^promoRank, captureDelta(us, true))
	dst = emitPawnPromoCaptures(dst, westCaps&promoRank, captureDelta(us, true))

	eastCaps := capEastShift(pawns) & theirOcc
	dst = emitPawnCaptures(dst, eastCaps&^promoRank, captureDelta(us, false))
	dst = emitPawnPromoCaptures(dst, eastCaps&promoRank, captureDelta(us, false))

	if p.epSquare != NoSquare {
		attackers := pawnAttacks[them][p.epSquare] & pawns
		for attackers != 0 {
			from := attackers.PopLSB()
			dst = append(dst, NewMove(from, p.epSquare, EnPassant))
		}
	}

	return dst
}

// pawnPushDelta is the square delta of a single pawn push for color c.
func pawnPushDelta(c Color) Square {
	if c == White {
		return 8
	}
	return -8
}

// captureDelta is the square delta of a diagonal pawn capture for color c;
// west selects the a-file-ward diagonal.
func captureDelta(c Color, west bool) Square {
	if c == White {
		if west {
			return 7
		}
		return 9
	}
	if west {
		return -9
	}
	return -7
}

func emitPawnAdvances(dst []Move, targets Bitboard, delta Square) []Move {
	for targets != 0 {
		to := targets.PopLSB()
		dst = append(dst, NewMove(to+delta, to, Quiet))
	}
	return dst
}

func emitPawnPromotions(dst []Move, targets Bitboard, delta Square) []Move {
	for targets != 0 {
		to := targets.PopLSB()
		from := to + delta
		dst = append(dst, NewMove(from, to, PromoN), NewMove(from, to, PromoB),
			NewMove(from, to, PromoR), NewMove(from, to, PromoQ))
	}
	return dst
}

func emitPawnCaptures(dst []Move, targets Bitboard, delta Square) []Move {
	for targets != 0 {
		to := targets.PopLSB()
		dst = append(dst, NewMove(to-delta, to, Capture))
	}
	return dst
}

func emitPawnPromoCaptures(dst []Move, targets Bitboard, delta Square) []Move {
	for targets != 0 {
		to := targets.PopLSB()
		from := to - delta
		dst = append(dst, NewMove(from, to, PromoN), NewMove(from, to, PromoB),
			NewMove(from, to, PromoR), NewMove(from, to, PromoQ))
	}
	return dst
}

// genCastling emits castling moves for color us when the right is present,
// the intervening squares are empty, and the king's origin/transit/
// destination squares are not attacked. Queenside castling only requires the
// b-file square to be empty, not unattacked, since the king never crosses it.
func (p *Position) genCastling(dst []Move, us Color) []Move {
	them := us.Opposite()
	if us == White {
		if p.castling&WhiteKingside != 0 &&
			p.occAll&(sqBB(f1)|sqBB(g1)) == 0 &&
			!p.SquareAttacked(e1, them) && !p.SquareAttacked(f1, them) && !p.SquareAttacked(g1, them) {
			dst = append(dst, NewMove(e1, g1, Castle))
		}
		if p.castling&WhiteQueenside != 0 &&
			p.occAll&(sqBB(d1)|sqBB(c1)|sqBB(b1White)) == 0 &&
			!p.SquareAttacked(e1, them) && !p.SquareAttacked(d1, them) && !p.SquareAttacked(c1, them) {
			dst = append(dst, NewMove(e1, c1, Castle))
		}
		return dst
	}
	if p.castling&BlackKingside != 0 &&
		p.occAll&(sqBB(f8)|sqBB(g8)) == 0 &&
		!p.SquareAttacked(e8, them) && !p.SquareAttacked(f8, them) && !p.SquareAttacked(g8, them) {
		dst = append(dst, NewMove(e8, g8, Castle))
	}
	if p.castling&BlackQueenside != 0 &&
		p.occAll&(sqBB(d8)|sqBB(c8)|sqBB(b8Black)) == 0 &&
		!p.SquareAttacked(e8, them) && !p.SquareAttacked(d8, them) && !p.SquareAttacked(c8, them) {
		dst = append(dst, NewMove(e8, c8, Castle))
	}
	return dst
}

const (
	b1White Square = 1
	b8Black Square = 57
)

// GenerateLegal returns the subset of pseudo-legal moves that do not leave
// the mover's king attacked after the move, using make/undo around each
// candidate. This is a brute-force test rather than a precomputed pin mask,
// but it subsumes pin detection, discovered check, and en-passant edge cases
// without needing to special-case any of them.
func (p *Position) GenerateLegal(dst []Move) []Move {
	pseudo := p.GeneratePseudoLegal(make([]Move, 0, 64))
	mover := p.side
	for _, m := range pseudo {
		rec := p.DoMove(m)
		if !p.SquareAttacked(p.King(mover), mover.Opposite()) {
			dst = append(dst, m)
		}
		p.UndoMove(rec)
	}
	return dst
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, without allocating the full list.
func (p *Position) HasLegalMoves() bool {
	pseudo := p.GeneratePseudoLegal(make([]Move, 0, 64))
	mover := p.side
	for _, m := range pseudo {
		rec := p.DoMove(m)
		ok := !p.SquareAttacked(p.King(mover), mover.Opposite())
		p.UndoMove(rec)
		if ok {
			return true
		}
	}
	return false
}

// Perft counts the leaf positions reachable by playing all legal move
// sequences of length depth, the standard move-generator correctness
// benchmark.
func (p *Position) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := p.GenerateLegal(make([]Move, 0, 64))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		rec := p.DoMove(m)
		nodes += p.Perft(depth - 1)
		p.UndoMove(rec)
	}
	return nodes
}

// PerftDivide returns, for each legal root move, the perft count of the
// subtree it roots — used to localize move-generator bugs against a known
// node count.
func (p *Position) PerftDivide(depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth < 1 {
		return result
	}
	moves := p.GenerateLegal(make([]Move, 0, 64))
	for _, m := range moves {
		rec := p.DoMove(m)
		result[m] = p.Perft(depth - 1)
		p.UndoMove(rec)
	}
	return result
}
