// Package search implements depth-limited negamax with alpha-beta pruning
// over the position package's move generator.
package search

import "chessgo/position"

// pieceValues are standard centipawn piece values. No piece-square tables
// and no game-phase interpolation — material plus mobility is the whole
// evaluation.
var pieceValues = [7]int{
	position.NoPieceType: 0,
	position.Pawn:        100,
	position.Knight:      320,
	position.Bishop:      330,
	position.Rook:        500,
	position.Queen:       900,
	position.King:        0,
}

// Evaluate is a pure function of pos: a material sum computed from White's
// perspective, plus a mobility term counting only the side to move's own
// legal replies (not a White-minus-Black difference), signed by color. It
// has no side effects and is order-independent of piece placement.
func Evaluate(pos *position.Position) int {
	score := 0
	for pt := position.Pawn; pt <= position.King; pt++ {
		score += pos.Pieces(position.White, pt).PopCount() * pieceValues[pt]
		score -= pos.Pieces(position.Black, pt).PopCount() * pieceValues[pt]
	}

	mobility := len(pos.GenerateLegal(make([]position.Move, 0, 64)))
	if pos.SideToMove() == position.White {
		score += mobility
	} else {
		score -= mobility
	}

	return score
}
