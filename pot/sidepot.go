package pot

import (
	"fmt"
)

// SidePot is one layer of the pot: the chips each player put in at that
// level. A SidePot is immutable once built.
type SidePot struct {
	contributions []Contribution
}

// NewSidePot builds a pot layer from contributions given in seat order.
func NewSidePot(contributions ...Contribution) (SidePot, error) {
	if err := checkContributions(contributions); err != nil {
		return SidePot{}, err
	}
	return SidePot{contributions: append([]Contribution(nil), contributions...)}, nil
}

// Total returns the chips in this layer.
func (p SidePot) Total() int {
	total := 0
	for _, c := range p.contributions {
		total += c.Amount
	}
	return total
}

// Contribution returns what player put into this layer.
func (p SidePot) Contribution(player string) int {
	for _, c := range p.contributions {
		if c.Player == player {
			return c.Amount
		}
	}
	return 0
}

// Contains reports whether player contributed to this layer.
func (p SidePot) Contains(player string) bool {
	for _, c := range p.contributions {
		if c.Player == player {
			return true
		}
	}
	return false
}

// Contributors returns the players in this layer in seat order.
func (p SidePot) Contributors() []string {
	players := make([]string, len(p.contributions))
	for i, c := range p.contributions {
		players[i] = c.Player
	}
	return players
}

// Contributions returns a copy of the layer in seat order.
func (p SidePot) Contributions() []Contribution {
	return append([]Contribution(nil), p.contributions...)
}

// DeriveSidePots peels off the smallest outstanding contribution as one
// layer, charging it to every remaining contributor, until nothing is
// left. The first layer is the main pot that every all-in player can win;
// later layers hold only the players who put in more. Zero contributions
// are ignored.
func DeriveSidePots(contributions []Contribution) ([]SidePot, error) {
	if err := checkContributions(contributions); err != nil {
		return nil, err
	}

	remaining := make([]Contribution, 0, len(contributions))
	for _, c := range contributions {
		if c.Amount > 0 {
			remaining = append(remaining, c)
		}
	}

	var pots []SidePot
	for len(remaining) > 0 {
		level := remaining[0].Amount
		for _, c := range remaining[1:] {
			level = min(level, c.Amount)
		}

		layer := make([]Contribution, 0, len(remaining))
		next := remaining[:0]
		for _, c := range remaining {
			layer = append(layer, Contribution{Player: c.Player, Amount: level})
			if c.Amount -= level; c.Amount > 0 {
				next = append(next, c)
			}
		}
		pots = append(pots, SidePot{contributions: layer})
		remaining = next
	}
	return pots, nil
}

func checkContributions(contributions []Contribution) error {
	seen := make(map[string]bool, len(contributions))
	for _, c := range contributions {
		if c.Player == "" {
			return ErrInvalidPlayer
		}
		if c.Amount < 0 {
			return fmt.Errorf("%w: %s contributed %d", ErrNegativeContribution, c.Player, c.Amount)
		}
		if seen[c.Player] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, c.Player)
		}
		seen[c.Player] = true
	}
	return nil
}
