package poker

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Hand is one player's hole cards plus the shared board.
type Hand struct {
	Hole  []Card
	Board []Card
}

// EvaluateBatch evaluates hands concurrently on at most workers goroutines
// (GOMAXPROCS when workers <= 0). Results are returned in input order. The
// first failing hand cancels the rest.
func (e *Evaluator) EvaluateBatch(ctx context.Context, hands []Hand, workers int) ([]HandRank, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]HandRank, len(hands))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, hand := range hands {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rank, err := e.Evaluate(hand.Hole, hand.Board)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i, err)
			}
			out[i] = rank
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
