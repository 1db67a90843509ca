package common

const (
	f1g1Mask = uint64(1)<<SquareF1 | uint64(1)<<SquareG1
	b1d1Mask = uint64(1)<<SquareB1 | uint64(1)<<SquareC1 | uint64(1)<<SquareD1
)

// isAttacked reports whether sq is attacked by the given color's pieces.
func (p *Position) isAttacked(sq int, byUs bool) bool {
	var side uint64
	if byUs {
		side = p.Us()
	} else {
		side = p.Them()
	}
	if PawnAttacks(sq, !byUs)&p.Pawns()&side != 0 {
		return true
	}
	if KnightAttacks[sq]&p.Knights()&side != 0 {
		return true
	}
	if KingAttacks[sq]&p.Kings()&side != 0 {
		return true
	}
	var occ = p.Occupied()
	if BishopAttacks(sq, occ)&p.DiagSliders()&side != 0 {
		return true
	}
	if RookAttacks(sq, occ)&p.OrthSliders()&side != 0 {
		return true
	}
	return false
}

func (p *Position) IsCheck() bool {
	return p.isAttacked(FirstOne(p.Kings()&p.Us()), false)
}

// IsLegal reports whether the side that just moved left its king safe.
// MakeMove applies anything it is given; this is the filter that turns
// pseudo-legal generation into legal generation.
func (p *Position) IsLegal() bool {
	return !p.isAttacked(FirstOne(p.Kings()&p.Them()), true)
}

func addPromotions(ml []Move, from, to int) int {
	ml[0] = MakeMoveType(from, to, MovePromoteQueen)
	ml[1] = MakeMoveType(from, to, MovePromoteRook)
	ml[2] = MakeMoveType(from, to, MovePromoteBishop)
	ml[3] = MakeMoveType(from, to, MovePromoteKnight)
	return 4
}

// GenerateMoves fills ml with the pseudo-legal moves of the side to move.
// The board is side-relative, so there is a single set of directions: pawns
// always push up, the home rank is always rank 1.
func GenerateMoves(ml []Move, p *Position) []Move {
	var count = 0
	var occ = p.Occupied()
	var us = p.Us()
	var them = occ &^ us
	var ourPawns = p.Pawns() & us
	var fromBB, toBB uint64
	var from, to int

	if ep := p.EnPassantSquare(); ep != SquareNone {
		for fromBB = PawnAttacks(ep, false) & ourPawns; fromBB != 0; fromBB &= fromBB - 1 {
			ml[count] = MakeMoveType(FirstOne(fromBB), ep, MoveEnPassant)
			count++
		}
	}

	for fromBB = ourPawns &^ Rank7Mask; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		if SquareMask[from+8]&occ == 0 {
			ml[count] = MakeMove(from, from+8)
			count++
			if Rank(from) == Rank2 && SquareMask[from+16]&occ == 0 {
				ml[count] = MakeMove(from, from+16)
				count++
			}
		}
		if File(from) > FileA && SquareMask[from+7]&them != 0 {
			ml[count] = MakeMove(from, from+7)
			count++
		}
		if File(from) < FileH && SquareMask[from+9]&them != 0 {
			ml[count] = MakeMove(from, from+9)
			count++
		}
	}

	for fromBB = ourPawns & Rank7Mask; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		if SquareMask[from+8]&occ == 0 {
			count += addPromotions(ml[count:], from, from+8)
		}
		if File(from) > FileA && SquareMask[from+7]&them != 0 {
			count += addPromotions(ml[count:], from, from+7)
		}
		if File(from) < FileH && SquareMask[from+9]&them != 0 {
			count += addPromotions(ml[count:], from, from+9)
		}
	}

	for fromBB = p.Knights() & us; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = KnightAttacks[from] &^ us; toBB != 0; toBB &= toBB - 1 {
			ml[count] = MakeMove(from, FirstOne(toBB))
			count++
		}
	}

	for fromBB = p.Bishops() & us; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = BishopAttacks(from, occ) &^ us; toBB != 0; toBB &= toBB - 1 {
			ml[count] = MakeMove(from, FirstOne(toBB))
			count++
		}
	}

	for fromBB = p.Rooks() & us; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = RookAttacks(from, occ) &^ us; toBB != 0; toBB &= toBB - 1 {
			ml[count] = MakeMove(from, FirstOne(toBB))
			count++
		}
	}

	for fromBB = p.Queens() & us; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = QueenAttacks(from, occ) &^ us; toBB != 0; toBB &= toBB - 1 {
			ml[count] = MakeMove(from, FirstOne(toBB))
			count++
		}
	}

	from = FirstOne(p.Kings() & us)
	for toBB = KingAttacks[from] &^ us; toBB != 0; toBB &= toBB - 1 {
		to = FirstOne(toBB)
		ml[count] = MakeMove(from, to)
		count++
	}

	var cr = p.CastlingRights()
	if cr&KingSide != 0 && occ&f1g1Mask == 0 &&
		!p.isAttacked(SquareE1, false) && !p.isAttacked(SquareF1, false) {
		ml[count] = MakeMoveType(SquareE1, SquareG1, MoveKingCastle)
		count++
	}
	if cr&QueenSide != 0 && occ&b1d1Mask == 0 &&
		!p.isAttacked(SquareE1, false) && !p.isAttacked(SquareD1, false) {
		ml[count] = MakeMoveType(SquareE1, SquareC1, MoveQueenCastle)
		count++
	}

	return ml[:count]
}

func GenerateLegalMoves(p *Position) []Move {
	var buffer [MaxMoves]Move
	var ml []Move
	for _, m := range GenerateMoves(buffer[:], p) {
		var child = *p
		child.MakeMove(m)
		if child.IsLegal() {
			ml = append(ml, m)
		}
	}
	return ml
}
