package poker

import (
	"math/rand"
	"testing"

	ref "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

// toReference converts a card to the independent evaluator's encoding,
// which numbers ranks ace=1 .. king=13.
func toReference(t testing.TB, c Card) ref.Card {
	t.Helper()
	var suit ref.Suit
	switch c.Suit() {
	case Spades:
		suit = ref.Spade
	case Hearts:
		suit = ref.Heart
	case Diamonds:
		suit = ref.Diamond
	case Clubs:
		suit = ref.Club
	}
	rank := ref.Rank(c.Rank() + 2)
	if c.Rank() == Ace {
		rank = 1
	}
	card, err := ref.MakeCard(suit, rank)
	require.NoError(t, err)
	return card
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// TestAgreesWithReferenceEvaluator checks that hand ordering matches an
// independent seven-card evaluator on random showdowns.
func TestAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2024))
	deck := NewDeck(rng)
	for i := 0; i < 5000; i++ {
		deck.Shuffle()
		board := deck.Deal(5)
		holeA := deck.Deal(2)
		holeB := deck.Deal(2)

		rankA, err := sharedEvaluator.Evaluate(holeA, board)
		require.NoError(t, err)
		rankB, err := sharedEvaluator.Evaluate(holeB, board)
		require.NoError(t, err)

		var refA, refB [7]ref.Card
		for j, c := range append(append([]Card{}, holeA...), board...) {
			refA[j] = toReference(t, c)
		}
		for j, c := range append(append([]Card{}, holeB...), board...) {
			refB[j] = toReference(t, c)
		}
		scoreA, scoreB := ref.Eval7(&refA), ref.Eval7(&refB)

		require.Equal(t, sign(int(scoreA)-int(scoreB)), CompareHands(rankA, rankB),
			"board %s: %s (%d) vs %s (%d)", FormatCards(board),
			FormatCards(holeA), rankA, FormatCards(holeB), rankB)
	}
}
