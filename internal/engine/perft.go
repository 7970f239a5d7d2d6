package engine

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree below pos to the
// given depth. It is the standard cross-check for move generators.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		next := *pos
		MakeMove(&next, move)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// DivideResult is the perft count below one root move.
type DivideResult struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft separately below every legal root move, spreading
// the root moves over workers goroutines. Results keep generation order.
func Divide(pos *chess.Position, depth, workers int) ([]DivideResult, uint64) {
	if depth <= 0 {
		return nil, 1
	}
	moves := LegalMoves(pos)
	results := make([]DivideResult, len(moves))
	if len(moves) == 0 {
		return results, 0
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		next := item.Position
		MakeMove(&next, item.Move)
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: Perft(&next, item.Depth)}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))
	pool.Start()

	go func() {
		for i, move := range moves {
			pool.Submit(worker.WorkItem{Position: *pos, Move: move, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	var total uint64
	for r := range pool.Results() {
		results[r.Index] = DivideResult{Move: r.Move, Nodes: r.Nodes}
		total += r.Nodes
	}
	return results, total
}
