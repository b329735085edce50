package position

import (
	"fmt"
	"strings"
)

// Move encodes a move in a compact value: from (6 bits), to (6 bits), flag
// (3 bits). The eight flag values already distinguish which piece a
// promotion produces (PromoN..PromoQ), so there is no separate promotion
// field — that would just duplicate information the flag already carries.
// The moved and captured piece are not stored in the value either; DoMove
// derives them from the Position at apply time.
type Move uint16

// MoveFlag enumerates the special-move classification carried in a Move.
type MoveFlag uint8

const (
	Quiet MoveFlag = iota
	Capture
	EnPassant
	Castle
	PromoN
	PromoB
	PromoR
	PromoQ
)

// IsPromotion reports whether the flag is one of the four promotion flags.
func (f MoveFlag) IsPromotion() bool { return f >= PromoN && f <= PromoQ }

// PromotedType returns the PieceType a promotion flag produces, or
// NoPieceType for a non-promotion flag.
func (f MoveFlag) PromotedType() PieceType {
	switch f {
	case PromoN:
		return Knight
	case PromoB:
		return Bishop
	case PromoR:
		return Rook
	case PromoQ:
		return Queen
	default:
		return NoPieceType
	}
}

// NewMove packs a move's components into a Move value.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(uint32(from)&0x3F | (uint32(to)&0x3F)<<6 | uint32(flag)<<12)
}

// From returns the move's source square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the move's destination square.
func (m Move) To() Square { return Square((m >> 6) & 0x3F) }

// Flag returns the move's MoveFlag.
func (m Move) Flag() MoveFlag { return MoveFlag((m >> 12) & 0x7) }

// IsCapture reports whether the move flag denotes any kind of capture,
// including en passant and capturing promotions (a promotion flag only
// implies a capture when the target square happens to hold an opponent's
// piece).
func (m Move) IsCapture(p *Position) bool {
	f := m.Flag()
	if f == Capture || f == EnPassant {
		return true
	}
	if f.IsPromotion() {
		return p.pieceAt[m.To()].color != None
	}
	return false
}

// String renders the move in long-algebraic UCI form, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if f := m.Flag(); f.IsPromotion() {
		sb.WriteByte(f.PromotedType().Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// ParseUCIMove parses a long-algebraic move string against a legal move list
// for the current position, matching both the bare form ("e2e4") and the
// promotion-suffixed form ("e7e8q").
func ParseUCIMove(s string, legal []Move) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, fmt.Errorf("position: malformed move %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return 0, fmt.Errorf("position: malformed move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return 0, fmt.Errorf("position: malformed move %q: %w", s, err)
	}
	var wantPromo PieceType
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			wantPromo = Knight
		case 'b':
			wantPromo = Bishop
		case 'r':
			wantPromo = Rook
		case 'q':
			wantPromo = Queen
		default:
			return 0, fmt.Errorf("position: invalid promotion letter in %q", s)
		}
	}
	for _, cand := range legal {
		if cand.From() != from || cand.To() != to {
			continue
		}
		if wantPromo == NoPieceType {
			if !cand.Flag().IsPromotion() {
				return cand, nil
			}
			continue
		}
		if cand.Flag().IsPromotion() && cand.Flag().PromotedType() == wantPromo {
			return cand, nil
		}
	}
	return 0, fmt.Errorf("position: %q is not a legal move", s)
}
