package poker

import "fmt"

// HandClass is one of the nine poker hand categories, numbered from the
// strongest (StraightFlush) to the weakest (HighCard).
type HandClass uint8

const (
	StraightFlush HandClass = iota + 1
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	OnePair
	HighCard
)

// classBoundaries is checked in ascending order; the first bound that is
// not below the rank decides the class.
var classBoundaries = [...]struct {
	max   HandRank
	class HandClass
}{
	{MaxStraightFlush, StraightFlush},
	{MaxFourOfAKind, FourOfAKind},
	{MaxFullHouse, FullHouse},
	{MaxFlush, Flush},
	{MaxStraight, Straight},
	{MaxThreeOfAKind, ThreeOfAKind},
	{MaxTwoPair, TwoPair},
	{MaxPair, OnePair},
	{MaxHighCard, HighCard},
}

// ClassOf returns the category of a hand rank.
func ClassOf(hr HandRank) (HandClass, error) {
	if hr >= 1 {
		for _, b := range classBoundaries {
			if hr <= b.max {
				return b.class, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidHandRank, hr)
}

// String returns the display name of the class.
func (c HandClass) String() string {
	switch c {
	case StraightFlush:
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case OnePair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}
