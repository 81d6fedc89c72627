package poker

import (
	"fmt"
)

// HandRank represents the strength of a five-card poker hand. Lower values
// are stronger: 1 is a royal flush, MaxHighCard is 7-5-4-3-2 unsuited.
type HandRank uint16

// Valid reports whether hr lies in 1..MaxHighCard.
func (hr HandRank) Valid() bool {
	return hr >= 1 && hr <= MaxHighCard
}

// Class returns the hand category, or 0 when hr is out of range.
func (hr HandRank) Class() HandClass {
	c, _ := ClassOf(hr)
	return c
}

// String returns a human-readable hand description.
func (hr HandRank) String() string {
	return hr.Class().String()
}

// Percentile returns rank/MaxHighCard in (0,1]; lower is better. It is a
// display aid only and plays no part in settlement.
func Percentile(hr HandRank) float64 {
	return float64(hr) / float64(MaxHighCard)
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b HandRank) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}

// Evaluator scores 5, 6 and 7 card hands against a LookupTable. It holds
// no mutable state, so one Evaluator may be used from many goroutines.
type Evaluator struct {
	table *LookupTable
}

// NewEvaluator builds a fresh lookup table and returns an evaluator over it.
func NewEvaluator() (*Evaluator, error) {
	table, err := NewLookupTable()
	if err != nil {
		return nil, err
	}
	return &Evaluator{table: table}, nil
}

// NewEvaluatorWithTable returns an evaluator sharing an existing table.
func NewEvaluatorWithTable(table *LookupTable) *Evaluator {
	return &Evaluator{table: table}
}

// Table returns the evaluator's lookup table.
func (e *Evaluator) Table() *LookupTable {
	return e.table
}

// Evaluate returns the best five-card rank from hole plus board cards.
// Together they must make 5, 6 or 7 cards.
func (e *Evaluator) Evaluate(hole, board []Card) (HandRank, error) {
	cards := make([]Card, 0, len(hole)+len(board))
	cards = append(cards, hole...)
	cards = append(cards, board...)
	return e.EvaluateCards(cards...)
}

// EvaluateCards returns the best five-card rank among 5, 6 or 7 cards. For
// more than five cards every five-card subset is scored and the minimum
// rank wins.
func (e *Evaluator) EvaluateCards(cards ...Card) (HandRank, error) {
	subsets, ok := fiveCardSubsets[len(cards)]
	if !ok {
		return 0, fmt.Errorf("%w: got %d cards, want 5, 6 or 7", ErrInvalidHandSize, len(cards))
	}
	if err := checkCards(cards); err != nil {
		return 0, err
	}

	best := MaxHighCard + 1
	var hand [5]Card
	for _, subset := range subsets {
		for i, idx := range subset {
			hand[i] = cards[idx]
		}
		rank, err := e.five(&hand)
		if err != nil {
			return 0, err
		}
		if rank < best {
			best = rank
		}
	}
	return best, nil
}

func (e *Evaluator) five(h *[5]Card) (HandRank, error) {
	// All five share a suit bit: flush or straight flush.
	if h[0]&h[1]&h[2]&h[3]&h[4]&0xF000 != 0 {
		mask := uint16((h[0] | h[1] | h[2] | h[3] | h[4]) >> 16)
		key := PrimeProductFromRankBits(mask)
		if rank, ok := e.table.Flush(key); ok {
			return rank, nil
		}
		return 0, fmt.Errorf("%w: flush key %d", ErrCorruptTable, key)
	}

	key := PrimeProduct(h[:]...)
	if rank, ok := e.table.Unsuited(key); ok {
		return rank, nil
	}
	return 0, fmt.Errorf("%w: unsuited key %d", ErrCorruptTable, key)
}

func checkCards(cards []Card) error {
	for i, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: encoding %#x", ErrInvalidCard, uint32(c))
		}
		for _, prev := range cards[:i] {
			if prev == c {
				return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
			}
		}
	}
	return nil
}

// fiveCardSubsets holds the index sets of every five-card subset, keyed by
// hand size: 1 for 5 cards, 6 for 6 cards, 21 for 7 cards.
var fiveCardSubsets = func() map[int][][5]int {
	subsets := make(map[int][][5]int, 3)
	for n := 5; n <= 7; n++ {
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				for c := b + 1; c < n; c++ {
					for d := c + 1; d < n; d++ {
						for e := d + 1; e < n; e++ {
							subsets[n] = append(subsets[n], [5]int{a, b, c, d, e})
						}
					}
				}
			}
		}
	}
	return subsets
}()
