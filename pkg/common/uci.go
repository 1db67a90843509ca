package common

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIllegalUciMove = errors.New("illegal uci move")

// ParseUciMove resolves a UCI move string ("e2e4", "a7a8q") against the
// position: the squares are re-expressed in the side-to-move's frame, and the
// piece found on the from-square decides between the quiet, en-passant,
// castling and promotion encodings.
func ParseUciMove(p *Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrIllegalUciMove, s)
	}
	var from = ParseSquare(s[0:2])
	var to = ParseSquare(s[2:4])
	if from == SquareNone || to == SquareNone {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrIllegalUciMove, s)
	}
	if !p.WhiteToMove() {
		from = FlipSquare(from)
		to = FlipSquare(to)
	}

	var code = p.PieceCode(from)
	if code == Empty {
		return MoveEmpty, fmt.Errorf("%w: empty from-square in %q", ErrIllegalUciMove, s)
	}

	var moveType = MoveQuiet
	switch {
	case code == Pawn && to == p.EnPassantSquare():
		moveType = MoveEnPassant
	case code == Pawn && Rank(to) == Rank8 && len(s) == 5:
		var i = strings.IndexByte("nbrq", s[4])
		if i < 0 {
			return MoveEmpty, fmt.Errorf("%w: promotion in %q", ErrIllegalUciMove, s)
		}
		moveType = MovePromoteKnight + i
	case code == King && from == SquareE1 && to == SquareG1:
		moveType = MoveKingCastle
	case code == King && from == SquareE1 && to == SquareC1:
		moveType = MoveQueenCastle
	}
	if len(s) == 5 && moveType < MovePromoteKnight {
		return MoveEmpty, fmt.Errorf("%w: %q", ErrIllegalUciMove, s)
	}
	return MakeMoveType(from, to, moveType), nil
}

// MoveToUci prints a move in the external white-from-below frame.
func MoveToUci(p *Position, m Move) string {
	var from = m.From()
	var to = m.To()
	if !p.WhiteToMove() {
		from = FlipSquare(from)
		to = FlipSquare(to)
	}
	var s = SquareName(from) + SquareName(to)
	if pr := m.Promotion(); pr != Empty {
		s += string("nbrq"[pr-Knight])
	}
	return s
}
