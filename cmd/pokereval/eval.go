package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lox/pokereval/poker"
)

// EvalCmd ranks one or more hands, optionally against a shared board.
type EvalCmd struct {
	Hands  []string `arg:"" optional:"" help:"Hands to rank, e.g. 'AsKs' or 'As Ks Qs Js Ts'"`
	Board  string   `short:"b" help:"Community cards shared by every hand"`
	Random int      `short:"r" help:"Deal this many random hands and a board instead"`
	Seed   *int64   `help:"Random seed for reproducible deals"`
}

func (c *EvalCmd) Run(ctx context.Context, g *Globals) error {
	env, err := g.setup()
	if err != nil {
		return err
	}

	var (
		board []poker.Card
		hands []poker.Hand
	)
	if c.Random > 0 {
		board, hands, err = c.deal(env)
	} else {
		board, hands, err = c.parse()
	}
	if err != nil {
		return err
	}

	ranks, err := env.evaluator.EvaluateBatch(ctx, hands, env.cfg.Workers)
	if err != nil {
		return err
	}

	best := poker.MaxHighCard + 1
	for _, r := range ranks {
		best = min(best, r)
	}

	if len(board) > 0 {
		fmt.Fprintf(env.out, "%s %s\n", headerStyle.Render("Board:"), prettyCards(board))
	}
	for i, r := range ranks {
		line := fmt.Sprintf("%-22s %5d  %s %s",
			prettyCards(hands[i].Hole),
			r,
			categoryStyle.Render(fmt.Sprintf("%-16s", r.Class())),
			dimStyle.Render(fmt.Sprintf("%6.2f%%", poker.Percentile(r)*100)))
		if len(ranks) > 1 && r == best {
			line += " " + winStyle.Render("best")
		}
		fmt.Fprintln(env.out, line)
		env.logger.Debug("Evaluated hand", "hand", poker.FormatCards(hands[i].Hole), "rank", int(r))
	}
	return nil
}

func (c *EvalCmd) parse() ([]poker.Card, []poker.Hand, error) {
	if len(c.Hands) == 0 {
		return nil, nil, errors.New("no hands given")
	}
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return nil, nil, fmt.Errorf("board: %w", err)
	}

	hands := make([]poker.Hand, len(c.Hands))
	for i, s := range c.Hands {
		hole, err := poker.ParseCards(s)
		if err != nil {
			return nil, nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		hands[i] = poker.Hand{Hole: hole, Board: board}
	}
	return board, hands, nil
}

// deal draws a board and two hole cards per hand from a shuffled deck.
func (c *EvalCmd) deal(env *env) ([]poker.Card, []poker.Hand, error) {
	if len(c.Hands) > 0 || c.Board != "" {
		return nil, nil, errors.New("--random deals its own hands and board")
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	env.logger.Debug("Dealing random hands", "hands", c.Random, "seed", seed)

	deck := poker.NewDeck(rand.New(rand.NewSource(seed)))
	board := deck.Deal(5)
	hands := make([]poker.Hand, c.Random)
	for i := range hands {
		hole := deck.Deal(2)
		if hole == nil {
			return nil, nil, fmt.Errorf("cannot deal %d hands from one deck", c.Random)
		}
		hands[i] = poker.Hand{Hole: hole, Board: board}
	}
	return board, hands, nil
}

func prettyCards(cards []poker.Card) string {
	s := ""
	for i, c := range cards {
		if i > 0 {
			s += " "
		}
		s += c.Pretty()
	}
	return handStyle.Render(s)
}
