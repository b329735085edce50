package position

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the standard chess starting position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieceTypes = map[byte]PieceType{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// SetFEN parses a standard six-field FEN string and replaces the position's
// state with it. No partial state is committed on failure: parsing builds
// into a scratch Position and only overwrites the receiver once every field
// has validated.
func (p *Position) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fmt.Errorf("position: FEN must have 6 fields, got %d", len(fields))
	}

	var fresh Position
	fresh.epSquare = NoSquare
	for sq := range fresh.pieceAt {
		fresh.pieceAt[sq] = emptySquarePiece
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: piece placement must have 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return fmt.Errorf("position: rank %q overflows the board", rankStr)
			}
			pt, ok := fenPieceTypes[lower(ch)]
			if !ok {
				return fmt.Errorf("position: invalid piece character %q", ch)
			}
			color := White
			if ch >= 'a' && ch <= 'z' {
				color = Black
			}
			fresh.putPiece(color, pt, Square(rank*8+file))
			file++
		}
		if file != 8 {
			return fmt.Errorf("position: rank %q does not cover 8 files", rankStr)
		}
	}

	switch fields[1] {
	case "w":
		fresh.side = White
	case "b":
		fresh.side = Black
	default:
		return fmt.Errorf("position: invalid side-to-move %q", fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				fresh.castling |= WhiteKingside
			case 'Q':
				fresh.castling |= WhiteQueenside
			case 'k':
				fresh.castling |= BlackKingside
			case 'q':
				fresh.castling |= BlackQueenside
			default:
				return fmt.Errorf("position: invalid castling character %q", ch)
			}
		}
	}

	ep, err := ParseSquare(fields[3])
	if err != nil {
		return fmt.Errorf("position: invalid en-passant field %q: %w", fields[3], err)
	}
	fresh.epSquare = ep

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		return fmt.Errorf("position: invalid halfmove clock %q", fields[4])
	}
	fresh.halfmove = half

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		return fmt.Errorf("position: invalid fullmove number %q", fields[5])
	}
	fresh.fullmove = full

	*p = fresh
	return nil
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

// String emits the position as a standard six-field FEN string. Emission
// round-trips: p.SetFEN(s); p.String() == s for any s describing a legal
// position SetFEN accepts.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			color, pt := p.PieceAt(sq)
			if color == None {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			letter := pt.Letter()
			if color == Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.epSquare.String())

	fmt.Fprintf(&sb, " %d %d", p.halfmove, p.fullmove)
	return sb.String()
}
