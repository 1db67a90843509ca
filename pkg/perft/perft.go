// Package perft counts the legal leaf positions of a move-generation tree.
// Matching the published node counts exercises move generation and the whole
// make-move transformation at once.
package perft

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"quadgo/pkg/common"
)

func Perft(p *common.Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	var result int64
	var buffer [common.MaxMoves]common.Move
	for _, move := range common.GenerateMoves(buffer[:], p) {
		var child = *p
		child.MakeMove(move)
		if !child.IsLegal() {
			continue
		}
		if depth > 1 {
			result += Perft(&child, depth-1)
		} else {
			result++
		}
	}
	return result
}

// Divide maps each legal root move, in its external UCI form, to the node
// count of its subtree.
func Divide(p *common.Position, depth int) map[string]int64 {
	var result = make(map[string]int64)
	for _, move := range common.GenerateLegalMoves(p) {
		var child = *p
		child.MakeMove(move)
		result[common.MoveToUci(p, move)] = Perft(&child, depth-1)
	}
	return result
}

// Root splits the root moves across a bounded worker pool.
func Root(ctx context.Context, p *common.Position, depth, workers int) (int64, error) {
	if depth <= 0 {
		return 1, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var moves = common.GenerateLegalMoves(p)
	var results = make([]int64, len(moves))

	var g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, move := range moves {
		var i, move = i, move
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var child = *p
			child.MakeMove(move)
			results[i] = Perft(&child, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int64
	for _, n := range results {
		total += n
	}
	return total, nil
}
