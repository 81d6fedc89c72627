package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokereval/internal/config"
	"github.com/lox/pokereval/pot"
)

// SettleCmd resolves a showdown file and prints the payouts.
type SettleCmd struct {
	File string `arg:"" type:"existingfile" help:"Showdown HCL file"`
}

func (c *SettleCmd) Run(g *Globals) error {
	env, err := g.setup()
	if err != nil {
		return err
	}

	sf, err := config.LoadShowdown(c.File)
	if err != nil {
		return err
	}
	board, err := sf.BoardCards()
	if err != nil {
		return err
	}
	entrants, err := sf.Entrants()
	if err != nil {
		return err
	}
	ledger, err := sf.Ledger()
	if err != nil {
		return err
	}

	result, err := pot.NewShowdown(env.evaluator, env.logger).Resolve(board, entrants, ledger)
	if err != nil {
		return err
	}

	fmt.Fprintf(env.out, "%s %s\n", headerStyle.Render("Board:"), prettyCards(board))
	for _, e := range entrants {
		rank, ok := result.Ranks[e.Player]
		if !ok {
			fmt.Fprintf(env.out, "  %-12s %s\n", e.Player, dimStyle.Render("folded"))
			continue
		}
		fmt.Fprintf(env.out, "  %-12s %s  %s\n", e.Player, prettyCards(e.Hole), categoryStyle.Render(rank.String()))
	}

	fmt.Fprintln(env.out, headerStyle.Render("Pots:"))
	for i, p := range result.Pots {
		fmt.Fprintf(env.out, "  #%d %6d  %s\n", i+1, p.Total(), strings.Join(p.Contributors(), ", "))
	}

	fmt.Fprintln(env.out, headerStyle.Render("Payouts:"))
	for _, player := range result.Payout.Players() {
		fmt.Fprintf(env.out, "  %-12s %s\n", player, winStyle.Render(fmt.Sprintf("%d", result.Payout[player])))
	}
	return nil
}
