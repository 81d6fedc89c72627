package pot

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/pokereval/poker"
)

// Entrant is a player at showdown. Folded entrants are never ranked.
type Entrant struct {
	Player string
	Hole   []poker.Card
	Folded bool
}

// EvaluateEntrants scores every entrant still in the hand.
func EvaluateEntrants(e *poker.Evaluator, board []poker.Card, entrants []Entrant) (map[string]poker.HandRank, error) {
	ranks := make(map[string]poker.HandRank, len(entrants))
	seen := make(map[string]bool, len(entrants))
	for _, entrant := range entrants {
		if entrant.Player == "" {
			return nil, ErrInvalidPlayer
		}
		if seen[entrant.Player] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, entrant.Player)
		}
		seen[entrant.Player] = true
		if entrant.Folded {
			continue
		}
		rank, err := e.Evaluate(entrant.Hole, board)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", entrant.Player, err)
		}
		ranks[entrant.Player] = rank
	}
	return ranks, nil
}

// GroupByRank groups players with equal ranks, strongest group first.
// Within a group players keep the order given in seatOrder; players
// without a rank are skipped.
func GroupByRank(seatOrder []string, ranks map[string]poker.HandRank) [][]string {
	byRank := make(map[poker.HandRank][]string)
	for _, player := range seatOrder {
		if rank, ok := ranks[player]; ok {
			byRank[rank] = append(byRank[rank], player)
		}
	}

	order := make([]poker.HandRank, 0, len(byRank))
	for rank := range byRank {
		order = append(order, rank)
	}
	slices.Sort(order)

	groups := make([][]string, 0, len(order))
	for _, rank := range order {
		groups = append(groups, byRank[rank])
	}
	return groups
}

// RankGroups evaluates the entrants and groups them best first.
func RankGroups(e *poker.Evaluator, board []poker.Card, entrants []Entrant) ([][]string, error) {
	ranks, err := EvaluateEntrants(e, board, entrants)
	if err != nil {
		return nil, err
	}
	return GroupByRank(seatOrder(entrants), ranks), nil
}

func seatOrder(entrants []Entrant) []string {
	order := make([]string, len(entrants))
	for i, entrant := range entrants {
		order[i] = entrant.Player
	}
	return order
}

// Result is the outcome of a resolved showdown.
type Result struct {
	LedgerID string
	Ranks    map[string]poker.HandRank
	Groups   [][]string
	Pots     []SidePot
	Payout   Payout
}

// Showdown ranks the players left in a hand and settles the ledger.
type Showdown struct {
	evaluator *poker.Evaluator
	logger    *log.Logger
}

// NewShowdown returns a showdown resolver. A nil logger discards output.
func NewShowdown(e *poker.Evaluator, logger *log.Logger) *Showdown {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Showdown{evaluator: e, logger: logger}
}

// Resolve derives the side pots from ledger, ranks the entrants on board
// and settles every pot. It does not modify the ledger.
func (s *Showdown) Resolve(board []poker.Card, entrants []Entrant, ledger *Ledger) (*Result, error) {
	pots, err := ledger.SidePots()
	if err != nil {
		return nil, fmt.Errorf("derive side pots: %w", err)
	}
	for i, p := range pots {
		s.logger.Debug("Side pot", "ledger", ledger.ID, "pot", i, "total", p.Total(), "contributors", p.Contributors())
	}

	ranks, err := EvaluateEntrants(s.evaluator, board, entrants)
	if err != nil {
		return nil, err
	}
	groups := GroupByRank(seatOrder(entrants), ranks)
	for _, entrant := range entrants {
		if rank, ok := ranks[entrant.Player]; ok {
			s.logger.Debug("Player hand", "player", entrant.Player, "rank", int(rank), "class", rank.Class())
		}
	}

	payout, err := Settle(groups, pots)
	if err != nil {
		s.logger.Error("Settlement failed", "ledger", ledger.ID, "error", err)
		return nil, err
	}
	if payout.Total() != ledger.Total() {
		err := fmt.Errorf("%w: paid %d chips from a ledger of %d", ErrChipConservation, payout.Total(), ledger.Total())
		s.logger.Error("Settlement failed", "ledger", ledger.ID, "error", err)
		return nil, err
	}

	for _, player := range payout.Players() {
		s.logger.Debug("Payout", "ledger", ledger.ID, "player", player, "chips", payout[player])
	}
	s.logger.Info("Showdown settled", "ledger", ledger.ID, "pots", len(pots), "total", payout.Total())

	return &Result{
		LedgerID: ledger.ID,
		Ranks:    ranks,
		Groups:   groups,
		Pots:     pots,
		Payout:   payout,
	}, nil
}
