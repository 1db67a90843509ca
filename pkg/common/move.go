package common

// Piece codes double as the QBB bit patterns (rqk,nbk,pbq).
const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const MaxMoves = 256

// Move packs from (bits 0-5), to (bits 6-11) and the move type (bits 12-15).
type Move uint16

const MoveEmpty = Move(0)

const (
	MoveQuiet = iota
	MoveKingCastle
	MoveQueenCastle
	MoveEnPassant
	MovePromoteKnight
	MovePromoteBishop
	MovePromoteRook
	MovePromoteQueen
)

func MakeMove(from, to int) Move {
	return Move(from | to<<6)
}

func MakeMoveType(from, to, moveType int) Move {
	return Move(from | to<<6 | moveType<<12)
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) Type() int {
	return int(m >> 12)
}

// Promotion returns the promoted piece for types 4-7, Empty otherwise.
func (m Move) Promotion() int {
	var mt = m.Type()
	if mt < MovePromoteKnight {
		return Empty
	}
	return mt - 2
}

// String prints the move in the frame it was encoded in. Use MoveToUci for
// the external frame.
func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if p := m.Promotion(); p != Empty {
		sPromotion = string("nbrq"[p-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}
