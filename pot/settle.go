package pot

import (
	"fmt"
	"slices"
)

// Payout maps each winning player to the chips they collect.
type Payout map[string]int

// Total returns the sum of all payouts.
func (p Payout) Total() int {
	total := 0
	for _, chips := range p {
		total += chips
	}
	return total
}

// Players returns the paid players in sorted order.
func (p Payout) Players() []string {
	players := make([]string, 0, len(p))
	for player := range p {
		players = append(players, player)
	}
	slices.Sort(players)
	return players
}

// Settle pays out each pot layer independently. groups lists players from
// the strongest hand to the weakest, tied players sharing a group. A layer
// goes to the strongest group holding at least one of its contributors and
// is split among only those contributors. Odd chips go one at a time to
// the layer's winners in seat order.
//
// Players who folded should be left out of groups; they can fund a layer
// but never win one. A layer none of whose contributors is ranked fails
// with ErrNoWinnerForPot.
func Settle(groups [][]string, pots []SidePot) (Payout, error) {
	strength := make(map[string]int)
	for i, group := range groups {
		for _, player := range group {
			if _, dup := strength[player]; dup {
				return nil, fmt.Errorf("%w: %s appears in more than one group", ErrDuplicatePlayer, player)
			}
			strength[player] = i
		}
	}

	payout := make(Payout)
	expected := 0
	for i, pot := range pots {
		winners := layerWinners(pot, strength)
		if len(winners) == 0 {
			return nil, fmt.Errorf("%w: pot %d holds %d chips from %v",
				ErrNoWinnerForPot, i, pot.Total(), pot.Contributors())
		}

		total := pot.Total()
		paid := 0
		for j, share := range splitPot(total, len(winners)) {
			if share > 0 {
				payout[winners[j]] += share
			}
			paid += share
		}
		if paid != total {
			return nil, fmt.Errorf("%w: pot %d paid %d of %d chips", ErrChipConservation, i, paid, total)
		}
		expected += total
	}

	if got := payout.Total(); got != expected {
		return nil, fmt.Errorf("%w: paid %d chips from pots totalling %d", ErrChipConservation, got, expected)
	}
	return payout, nil
}

// layerWinners returns the contributors of pot who belong to the
// strongest ranked group present in it, in seat order.
func layerWinners(pot SidePot, strength map[string]int) []string {
	best := -1
	for _, c := range pot.contributions {
		if s, ok := strength[c.Player]; ok && (best < 0 || s < best) {
			best = s
		}
	}
	if best < 0 {
		return nil
	}

	var winners []string
	for _, c := range pot.contributions {
		if s, ok := strength[c.Player]; ok && s == best {
			winners = append(winners, c.Player)
		}
	}
	return winners
}

// splitPot divides amount into n shares; the first amount%n shares get one
// extra chip.
func splitPot(amount, n int) []int {
	shares := make([]int, n)
	base, remainder := amount/n, amount%n
	for i := range shares {
		shares[i] = base
		if i < remainder {
			shares[i]++
		}
	}
	return shares
}
