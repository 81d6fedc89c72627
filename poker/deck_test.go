package poker

import (
	"math/rand"
	"testing"
)

func TestDeck(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))
	deck := NewDeck(rng)

	cards1 := deck.Deal(2)
	cards2 := deck.Deal(3)
	if len(cards1) != 2 || len(cards2) != 3 {
		t.Fatalf("dealt %d and %d cards", len(cards1), len(cards2))
	}
	for _, c1 := range cards1 {
		for _, c2 := range cards2 {
			if c1 == c2 {
				t.Error("Dealt same card twice")
			}
		}
	}

	if remaining := deck.Deal(47); len(remaining) != 47 {
		t.Errorf("Expected 47 remaining cards, got %d", len(remaining))
	}
	if extra := deck.Deal(1); extra != nil {
		t.Error("Should not be able to deal from empty deck")
	}

	deck.Shuffle()
	if deck.CardsRemaining() != 52 {
		t.Errorf("CardsRemaining after shuffle = %d", deck.CardsRemaining())
	}
}
