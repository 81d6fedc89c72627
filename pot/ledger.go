// Package pot splits a hand's chip contributions into side pots and pays
// them out to ranked groups of players.
package pot

import (
	"fmt"

	"github.com/google/uuid"
)

// Contribution is the number of chips one player put into a pot.
type Contribution struct {
	Player string
	Amount int
}

// Ledger records what each player wagered during one hand. Players keep
// the order in which they first contributed, which is also the order odd
// chips are handed out in. A Ledger is not safe for concurrent use.
type Ledger struct {
	ID      string
	entries []Contribution
	index   map[string]int
}

// NewLedger returns an empty ledger with a fresh ID.
func NewLedger() *Ledger {
	return &Ledger{
		ID:    uuid.NewString(),
		index: make(map[string]int),
	}
}

// Add records chips wagered by player.
func (l *Ledger) Add(player string, chips int) error {
	if player == "" {
		return ErrInvalidPlayer
	}
	if chips < 0 {
		return fmt.Errorf("%w: %s added %d", ErrNegativeContribution, player, chips)
	}
	if i, ok := l.index[player]; ok {
		l.entries[i].Amount += chips
		return nil
	}
	l.index[player] = len(l.entries)
	l.entries = append(l.entries, Contribution{Player: player, Amount: chips})
	return nil
}

// Contribution returns the chips player has wagered so far.
func (l *Ledger) Contribution(player string) int {
	if i, ok := l.index[player]; ok {
		return l.entries[i].Amount
	}
	return 0
}

// Total returns the sum of all contributions.
func (l *Ledger) Total() int {
	total := 0
	for _, c := range l.entries {
		total += c.Amount
	}
	return total
}

// Players returns the contributors in seat order.
func (l *Ledger) Players() []string {
	players := make([]string, len(l.entries))
	for i, c := range l.entries {
		players[i] = c.Player
	}
	return players
}

// Contributions returns a copy of the ledger in seat order.
func (l *Ledger) Contributions() []Contribution {
	return append([]Contribution(nil), l.entries...)
}

// SidePots layers the ledger into side pots.
func (l *Ledger) SidePots() ([]SidePot, error) {
	return DeriveSidePots(l.entries)
}

// Reset clears all contributions for the next hand and assigns a new ID.
func (l *Ledger) Reset() {
	l.ID = uuid.NewString()
	l.entries = nil
	clear(l.index)
}
