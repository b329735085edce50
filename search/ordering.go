package search

import "chessgo/position"

// Move-ordering score bands: captures ranked by victim value, promotions by
// piece value, then en passant, then castling, then quiets last. Searching
// captures before quiets lets alpha-beta prune far more of the tree than a
// naive left-to-right scan. No killer/history/counter-move heuristics —
// plain static ordering is enough at the depths this search reaches.
const (
	captureBase    = 10000
	promotionBase  = 5000
	enPassantScore = 4000
	castleScore    = 3000
	quietScore     = 0
)

var promotionBonus = [7]int{
	position.Knight: 100,
	position.Bishop: 100,
	position.Rook:   200,
	position.Queen:  400,
}

// scoreMove assigns a static ordering score to m.
func scoreMove(pos *position.Position, m position.Move) int {
	flag := m.Flag()
	switch {
	case flag == position.EnPassant:
		return enPassantScore
	case flag == position.Castle:
		return castleScore
	case flag.IsPromotion():
		return promotionBase + promotionBonus[flag.PromotedType()]
	case m.IsCapture(pos):
		_, victim := pos.PieceAt(m.To())
		return captureBase + pieceValues[victim]
	default:
		return quietScore
	}
}

// orderMoves sorts moves in place by descending static score using a
// selection sort: repeatedly swap the best-scoring remaining move into the
// next slot, so the search loop consumes moves best-first without a
// separate sorted copy.
func orderMoves(pos *position.Position, moves []position.Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(pos, m)
	}
	for i := 0; i < len(moves); i++ {
		best := i
		for j := i + 1; j < len(moves); j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			moves[i], moves[best] = moves[best], moves[i]
			scores[i], scores[best] = scores[best], scores[i]
		}
	}
}
