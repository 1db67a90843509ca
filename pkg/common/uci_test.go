package common

import (
	"errors"
	"testing"
)

func TestParseUciMove(t *testing.T) {
	var tests = []struct {
		fen      string
		uci      string
		from, to int
		moveType int
	}{
		{InitialPositionFen, "e2e4", SquareE2, SquareE4, MoveQuiet},
		{InitialPositionFen, "g1f3", SquareG1, SquareF3, MoveQuiet},
		// black to move: squares are mirrored into the internal frame
		{"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "e7e5", SquareE2, SquareE4, MoveQuiet},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", SquareE1, SquareG1, MoveKingCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", SquareE1, SquareC1, MoveQueenCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", SquareE1, SquareG1, MoveKingCastle},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", SquareE1, SquareC1, MoveQueenCastle},
		{"8/8/8/pP6/8/8/8/k6K w - a6 0 1", "b5a6", SquareB5, SquareA6, MoveEnPassant},
		{"8/P6k/8/8/8/8/8/7K w - - 0 1", "a7a8q", SquareA7, SquareA8, MovePromoteQueen},
		{"8/P6k/8/8/8/8/8/7K w - - 0 1", "a7a8n", SquareA7, SquareA8, MovePromoteKnight},
		{"4k3/8/8/8/8/8/p7/4K3 b - - 0 1", "a2a1r", SquareA7, SquareA8, MovePromoteRook},
		// a king slide that happens to reach g1 from elsewhere stays quiet
		{"4k3/8/8/8/8/8/8/5K2 w - - 0 1", "f1g1", SquareF1, SquareG1, MoveQuiet},
	}
	for i, tt := range tests {
		var p = mustFromFen(t, tt.fen)
		var m, err = ParseUciMove(&p, tt.uci)
		if err != nil {
			t.Fatal(i, tt.uci, err)
		}
		if m.From() != tt.from || m.To() != tt.to || m.Type() != tt.moveType {
			t.Error(i, tt.uci, m.From(), m.To(), m.Type())
		}
		if got := MoveToUci(&p, m); got != tt.uci {
			t.Error(i, "round trip", got, tt.uci)
		}
	}
}

func TestParseUciMoveErrors(t *testing.T) {
	var tests = []struct {
		fen string
		uci string
	}{
		{InitialPositionFen, ""},
		{InitialPositionFen, "e2"},
		{InitialPositionFen, "e2e4qq"},
		{InitialPositionFen, "e9e4"},
		{InitialPositionFen, "i2i4"},
		{InitialPositionFen, "e4e5"},  // empty from-square
		{InitialPositionFen, "e2e4q"}, // stray promotion letter
		{"8/P6k/8/8/8/8/8/7K w - - 0 1", "a7a8x"},
	}
	for i, tt := range tests {
		var p = mustFromFen(t, tt.fen)
		var _, err = ParseUciMove(&p, tt.uci)
		if err == nil {
			t.Error(i, "accepted", tt.uci)
		} else if !errors.Is(err, ErrIllegalUciMove) {
			t.Error(i, "untagged error", err)
		}
	}
}

func TestMoveToUciOverLegalMoves(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		var p = mustFromFen(t, fen)
		for _, m := range GenerateLegalMoves(&p) {
			var back, err = ParseUciMove(&p, MoveToUci(&p, m))
			if err != nil {
				t.Fatal(fen, m, err)
			}
			if back != m {
				t.Error(fen, "codec disagreement", m, back)
			}
		}
	}
}
