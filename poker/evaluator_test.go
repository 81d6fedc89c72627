package poker

import (
	"errors"
	"math/rand"
	"testing"
)

var sharedEvaluator = func() *Evaluator {
	e, err := NewEvaluator()
	if err != nil {
		panic(err)
	}
	return e
}()

func TestEvaluateKnownHands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		rank  HandRank
		class HandClass
	}{
		{"royal flush", "As Ks Qs Js Ts", 1, StraightFlush},
		{"nine high straight flush", "9h 8h 7h 6h 5h", 6, StraightFlush},
		{"steel wheel", "5d 4d 3d 2d Ad", 10, StraightFlush},
		{"quad aces king kicker", "As Ah Ad Ac Ks", 11, FourOfAKind},
		{"quad deuces trey kicker", "2s 2h 2d 2c 3s", 166, FourOfAKind},
		{"aces full of kings", "As Ah Ad Ks Kh", 167, FullHouse},
		{"deuces full of treys", "2s 2h 2d 3s 3h", 322, FullHouse},
		{"best flush", "As Ks Qs Js 9s", 323, Flush},
		{"worst flush", "7c 5c 4c 3c 2c", 1599, Flush},
		{"broadway", "Ad Ks Qh Jc Ts", 1600, Straight},
		{"wheel", "5d 4s 3h 2c Ac", 1609, Straight},
		{"best trips", "As Ah Ad Ks Qh", 1610, ThreeOfAKind},
		{"worst trips", "2s 2h 2d 4c 3h", 2467, ThreeOfAKind},
		{"best two pair", "As Ah Ks Kh Qd", 2468, TwoPair},
		{"worst two pair", "3s 3h 2s 2h 4d", 3325, TwoPair},
		{"best pair", "As Ah Ks Qh Jd", 3326, OnePair},
		{"worst pair", "2s 2h 5s 4h 3d", 6185, OnePair},
		{"best high card", "As Ks Qh Jd 9c", 6186, HighCard},
		{"worst hand", "7s 5h 4d 3c 2s", 7462, HighCard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rank, err := sharedEvaluator.EvaluateCards(mustParseCards(t, tc.cards)...)
			if err != nil {
				t.Fatalf("EvaluateCards: %v", err)
			}
			if rank != tc.rank {
				t.Errorf("rank = %d, want %d", rank, tc.rank)
			}
			if rank.Class() != tc.class {
				t.Errorf("class = %s, want %s", rank.Class(), tc.class)
			}
		})
	}
}

func TestEvaluateHoleAndBoard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		hole  string
		board string
		rank  HandRank
	}{
		{"flop", "As Ks", "Qs Js Ts", 1},
		{"turn", "As Ks", "Qs Js Ts 2h", 1},
		{"river", "As Ks", "Qs Js Ts 2h 3d", 1},
		{"board plays", "2c 3c", "As Ks Qs Js Ts", 1},
		{"wheel", "Ac 2d", "3h 4s 5c 9d Kh", 1609},
		{"flush over straight", "Ah 9h", "Th Jd Qh Kh 2h", 331},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rank, err := sharedEvaluator.Evaluate(mustParseCards(t, tc.hole), mustParseCards(t, tc.board))
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if rank != tc.rank {
				t.Errorf("rank = %d (%s), want %d", rank, rank, tc.rank)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()

	four := mustParseCards(t, "As Ks Qs Js")
	if _, err := sharedEvaluator.EvaluateCards(four...); !errors.Is(err, ErrInvalidHandSize) {
		t.Errorf("4 cards: %v", err)
	}
	eight := mustParseCards(t, "As Ks Qs Js Ts 9s 8s 7s")
	if _, err := sharedEvaluator.EvaluateCards(eight...); !errors.Is(err, ErrInvalidHandSize) {
		t.Errorf("8 cards: %v", err)
	}
	dup := mustParseCards(t, "As As Qs Js Ts")
	if _, err := sharedEvaluator.EvaluateCards(dup...); !errors.Is(err, ErrDuplicateCard) {
		t.Errorf("duplicate: %v", err)
	}
	bad := append(mustParseCards(t, "As Ks Qs Js"), Card(0))
	if _, err := sharedEvaluator.EvaluateCards(bad...); !errors.Is(err, ErrInvalidCard) {
		t.Errorf("zero card: %v", err)
	}
}

func TestEvaluateCorruptTable(t *testing.T) {
	t.Parallel()

	e := NewEvaluatorWithTable(&LookupTable{})
	if _, err := e.EvaluateCards(mustParseCards(t, "As Ks Qs Js Ts")...); !errors.Is(err, ErrCorruptTable) {
		t.Errorf("flush miss: %v", err)
	}
	if _, err := e.EvaluateCards(mustParseCards(t, "As Kd Qs Js Ts")...); !errors.Is(err, ErrCorruptTable) {
		t.Errorf("unsuited miss: %v", err)
	}
}

func TestEvaluateOrderInvariant(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	deck := NewDeck(rng)
	for i := 0; i < 2000; i++ {
		deck.Shuffle()
		cards := deck.Deal(7)
		want, err := sharedEvaluator.EvaluateCards(cards...)
		if err != nil {
			t.Fatal(err)
		}
		rng.Shuffle(len(cards), func(a, b int) { cards[a], cards[b] = cards[b], cards[a] })
		got, err := sharedEvaluator.EvaluateCards(cards...)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%s: reordered rank %d != %d", FormatCards(cards), got, want)
		}
	}
}

func TestSevenCardRankIsMinimumOfSubsets(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	deck := NewDeck(rng)
	for i := 0; i < 1000; i++ {
		deck.Shuffle()
		cards := deck.Deal(7)
		seven, err := sharedEvaluator.EvaluateCards(cards...)
		if err != nil {
			t.Fatal(err)
		}

		best := MaxHighCard + 1
		for _, subset := range fiveCardSubsets[7] {
			var five []Card
			for _, idx := range subset {
				five = append(five, cards[idx])
			}
			r, err := sharedEvaluator.EvaluateCards(five...)
			if err != nil {
				t.Fatal(err)
			}
			if r < seven {
				t.Fatalf("%s: subset beats seven-card rank %d with %d", FormatCards(cards), seven, r)
			}
			best = min(best, r)
		}
		if best != seven {
			t.Fatalf("%s: seven-card rank %d, best subset %d", FormatCards(cards), seven, best)
		}

		six, err := sharedEvaluator.EvaluateCards(cards[:6]...)
		if err != nil {
			t.Fatal(err)
		}
		if seven > six {
			t.Fatalf("%s: seventh card made the hand worse", FormatCards(cards))
		}
	}
}

func TestEvaluateAllFiveCardHands(t *testing.T) {
	if testing.Short() {
		t.Skip("enumerates 2,598,960 hands")
	}
	t.Parallel()

	deck := FullDeck()
	counts := make(map[HandClass]int)
	var seen [MaxHighCard + 1]bool
	var hand [5]Card
	for a := 0; a < 52; a++ {
		for b := a + 1; b < 52; b++ {
			for c := b + 1; c < 52; c++ {
				for d := c + 1; d < 52; d++ {
					for e := d + 1; e < 52; e++ {
						hand = [5]Card{deck[a], deck[b], deck[c], deck[d], deck[e]}
						rank, err := sharedEvaluator.five(&hand)
						if err != nil {
							t.Fatalf("%s: %v", FormatCards(hand[:]), err)
						}
						seen[rank] = true
						counts[rank.Class()]++
					}
				}
			}
		}
	}

	want := map[HandClass]int{
		StraightFlush: 40,
		FourOfAKind:   624,
		FullHouse:     3744,
		Flush:         5108,
		Straight:      10200,
		ThreeOfAKind:  54912,
		TwoPair:       123552,
		OnePair:       1098240,
		HighCard:      1302540,
	}
	for class, n := range want {
		if counts[class] != n {
			t.Errorf("%s: %d hands, want %d", class, counts[class], n)
		}
	}
	for rank := HandRank(1); rank <= MaxHighCard; rank++ {
		if !seen[rank] {
			t.Errorf("rank %d never produced", rank)
		}
	}
}

func TestClassOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank  HandRank
		class HandClass
		label string
	}{
		{1, StraightFlush, "Straight Flush"},
		{10, StraightFlush, "Straight Flush"},
		{11, FourOfAKind, "Four of a Kind"},
		{322, FullHouse, "Full House"},
		{323, Flush, "Flush"},
		{1600, Straight, "Straight"},
		{2467, ThreeOfAKind, "Three of a Kind"},
		{2468, TwoPair, "Two Pair"},
		{6185, OnePair, "Pair"},
		{7462, HighCard, "High Card"},
	}
	for _, tc := range tests {
		class, err := ClassOf(tc.rank)
		if err != nil {
			t.Fatalf("ClassOf(%d): %v", tc.rank, err)
		}
		if class != tc.class || class.String() != tc.label {
			t.Errorf("ClassOf(%d) = %s, want %s", tc.rank, class, tc.label)
		}
	}

	for _, bad := range []HandRank{0, 7463, 65535} {
		if _, err := ClassOf(bad); !errors.Is(err, ErrInvalidHandRank) {
			t.Errorf("ClassOf(%d) error = %v", bad, err)
		}
		if HandRank(bad).String() != "Unknown" {
			t.Errorf("HandRank(%d).String() = %q", bad, HandRank(bad).String())
		}
	}
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	if got := Percentile(MaxHighCard); got != 1 {
		t.Errorf("Percentile(worst) = %v", got)
	}
	if got := Percentile(1); got <= 0 || got > 0.001 {
		t.Errorf("Percentile(royal) = %v", got)
	}
}

func TestCompareHands(t *testing.T) {
	t.Parallel()

	if CompareHands(1, 2) != 1 || CompareHands(2, 1) != -1 || CompareHands(5, 5) != 0 {
		t.Error("CompareHands does not treat lower ranks as stronger")
	}
}

func BenchmarkEvaluate7(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	deck := NewDeck(rng)
	hands := make([][]Card, 1000)
	for i := range hands {
		deck.Shuffle()
		hands[i] = deck.Deal(7)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = sharedEvaluator.EvaluateCards(hands[i%len(hands)]...)
	}
}
