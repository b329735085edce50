package position

// UndoRecord carries enough information to restore a Position exactly after
// a paired DoMove. An explicit epCapture flag is stored rather than inferred
// by reconstructing the captured square from the restored en-passant target,
// which keeps the en-passant restore unambiguous regardless of what the
// en-passant field looked like before the move.
type UndoRecord struct {
	move Move

	prevCastling CastlingRights
	prevEPSquare Square
	prevHalfmove int

	movedPiece    PieceType
	capturedPiece PieceType
	promotedTo    PieceType
	epCapture     bool
}

// DoMove applies a pseudo-legal move to the position and returns an
// UndoRecord that restores the prior state via UndoMove. DoMove does not
// itself test legality; callers that need only legal moves use
// GenerateLegal, whose candidates are pre-filtered.
func (p *Position) DoMove(m Move) UndoRecord {
	us := p.side
	them := us.Opposite()
	from, to, flag := m.From(), m.To(), m.Flag()

	rec := UndoRecord{
		move:         m,
		prevCastling: p.castling,
		prevEPSquare: p.epSquare,
		prevHalfmove: p.halfmove,
	}

	_, movedType := p.PieceAt(from)
	rec.movedPiece = movedType

	switch {
	case flag == EnPassant:
		capSq := to - pawnPushDelta(us)
		p.removePiece(them, Pawn, capSq)
		rec.capturedPiece = Pawn
		rec.epCapture = true
		p.movePiece(us, Pawn, from, to)
		p.halfmove = 0

	default:
		if capColor, capType := p.PieceAt(to); capColor == them {
			p.removePiece(them, capType, to)
			rec.capturedPiece = capType
			p.halfmove = 0
		} else if movedType == Pawn {
			p.halfmove = 0
		} else {
			p.halfmove++
		}
		p.movePiece(us, movedType, from, to)
	}

	if flag.IsPromotion() {
		promo := flag.PromotedType()
		p.removePiece(us, Pawn, to)
		p.putPiece(us, promo, to)
		rec.promotedTo = promo
		p.halfmove = 0
	}

	if flag == Castle {
		switch to {
		case g1:
			p.movePiece(us, Rook, h1, f1)
		case c1:
			p.movePiece(us, Rook, a1, d1)
		case g8:
			p.movePiece(us, Rook, h8, f8)
		case c8:
			p.movePiece(us, Rook, a8, d8)
		}
	}

	p.updateCastlingRights(us, movedType, from, to, rec.capturedPiece)

	if movedType == Pawn && abs(int(to)-int(from)) == 16 {
		p.epSquare = (from + to) / 2
		p.halfmove = 0
	} else {
		p.epSquare = NoSquare
	}

	if us == Black {
		p.fullmove++
	}
	p.side = them

	p.stack = append(p.stack, rec)
	return rec
}

// updateCastlingRights clears rights lost to king moves, rook moves off a
// corner, or rook captures on a corner.
func (p *Position) updateCastlingRights(us Color, movedType PieceType, from, to Square, captured PieceType) {
	if movedType == King {
		if us == White {
			p.castling &^= WhiteKingside | WhiteQueenside
		} else {
			p.castling &^= BlackKingside | BlackQueenside
		}
	}
	switch from {
	case a1:
		p.castling &^= WhiteQueenside
	case h1:
		p.castling &^= WhiteKingside
	case a8:
		p.castling &^= BlackQueenside
	case h8:
		p.castling &^= BlackKingside
	}
	if captured != NoPieceType {
		switch to {
		case a1:
			p.castling &^= WhiteQueenside
		case h1:
			p.castling &^= WhiteKingside
		case a8:
			p.castling &^= BlackQueenside
		case h8:
			p.castling &^= BlackKingside
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// UndoMove reverses the most recent DoMove, restoring the Position to its
// exact prior state including the undo stack length.
func (p *Position) UndoMove(rec UndoRecord) {
	n := len(p.stack)
	if n == 0 || p.stack[n-1] != rec {
		panic("position: UndoMove called out of order or on empty stack")
	}
	p.stack = p.stack[:n-1]

	them := p.side // side to move now is the opponent of the mover
	us := them.Opposite()
	p.side = us

	from, to, flag := rec.move.From(), rec.move.To(), rec.move.Flag()

	if rec.promotedTo != NoPieceType {
		p.removePiece(us, rec.promotedTo, to)
		p.putPiece(us, Pawn, to)
	}

	if flag == Castle {
		switch to {
		case g1:
			p.movePiece(us, Rook, f1, h1)
		case c1:
			p.movePiece(us, Rook, d1, a1)
		case g8:
			p.movePiece(us, Rook, f8, h8)
		case c8:
			p.movePiece(us, Rook, d8, a8)
		}
	}

	p.movePiece(us, rec.movedPiece, to, from)

	if rec.capturedPiece != NoPieceType {
		if rec.epCapture {
			capSq := to - pawnPushDelta(us)
			p.putPiece(them, Pawn, capSq)
		} else {
			p.putPiece(them, rec.capturedPiece, to)
		}
	}

	p.castling = rec.prevCastling
	p.epSquare = rec.prevEPSquare
	p.halfmove = rec.prevHalfmove

	if us == Black {
		p.fullmove--
	}
}
