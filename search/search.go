package search

import "chessgo/position"

// Mate is a sentinel score well outside the attainable evaluation range,
// returned (negated per ply) for checkmate. A large constant is cheaper than
// tracking mate distance through the recursion.
const Mate = 1_000_000

// sideSign is +1 for White, -1 for Black.
func sideSign(c position.Color) int {
	if c == position.White {
		return 1
	}
	return -1
}

// Search runs negamax with alpha-beta pruning to depth plies from pos's
// side to move and returns the best move found. Ties go to the first-seen
// (highest-ordered) move. It returns ok=false only if the side to move has
// no legal moves (checkmate or stalemate) — that terminal case is handled
// here at the root rather than falling through into negamax, since there is
// no move to return in that case.
func Search(pos *position.Position, depth int) (best position.Move, score int, ok bool) {
	moves := pos.GenerateLegal(make([]position.Move, 0, 64))
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return 0, -Mate, false
		}
		return 0, 0, false
	}
	orderMoves(pos, moves)

	alpha, beta := -Mate, Mate
	bestScore := -Mate - 1
	for _, m := range moves {
		rec := pos.DoMove(m)
		childScore := -negamax(pos, depth-1, -beta, -alpha)
		pos.UndoMove(rec)

		if childScore > bestScore {
			bestScore = childScore
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return best, bestScore, true
}

// negamax generates legal moves (terminal detection via the empty set),
// orders them, and recurses with a negated and swapped window, pruning
// when alpha >= beta. At depth 0 it evaluates the leaf from the
// side-to-move's perspective.
func negamax(pos *position.Position, depth, alpha, beta int) int {
	if depth == 0 {
		return sideSign(pos.SideToMove()) * Evaluate(pos)
	}

	moves := pos.GenerateLegal(make([]position.Move, 0, 64))
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return -Mate
		}
		return 0
	}
	orderMoves(pos, moves)

	best := -Mate - 1
	for _, m := range moves {
		rec := pos.DoMove(m)
		score := -negamax(pos, depth-1, -beta, -alpha)
		pos.UndoMove(rec)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
