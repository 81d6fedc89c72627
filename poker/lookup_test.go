package poker

import (
	"errors"
	"testing"
)

func newTestTable(t testing.TB) *LookupTable {
	t.Helper()
	table, err := NewLookupTable()
	if err != nil {
		t.Fatalf("NewLookupTable: %v", err)
	}
	return table
}

func TestLookupTableCounts(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	if table.FlushLen() != 1287 {
		t.Errorf("flush entries = %d, want 1287", table.FlushLen())
	}
	if table.UnsuitedLen() != 6175 {
		t.Errorf("unsuited entries = %d, want 6175", table.UnsuitedLen())
	}
}

func TestLookupTableCoversEveryRank(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	counts := make(map[HandClass]int)
	seen := make(map[HandRank]bool)
	for _, m := range []map[uint32]HandRank{table.flush, table.unsuited} {
		for _, rank := range m {
			if seen[rank] {
				t.Fatalf("rank %d appears twice", rank)
			}
			seen[rank] = true
			counts[rank.Class()]++
		}
	}
	if len(seen) != int(MaxHighCard) {
		t.Fatalf("%d distinct ranks, want %d", len(seen), MaxHighCard)
	}

	want := map[HandClass]int{
		StraightFlush: 10,
		FourOfAKind:   156,
		FullHouse:     156,
		Flush:         1277,
		Straight:      10,
		ThreeOfAKind:  858,
		TwoPair:       858,
		OnePair:       2860,
		HighCard:      1277,
	}
	for class, n := range want {
		if counts[class] != n {
			t.Errorf("%s: %d ranks, want %d", class, counts[class], n)
		}
	}
}

func TestLookupTableFlushRanksStayInFlushTable(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	for _, rank := range table.flush {
		if c := rank.Class(); c != StraightFlush && c != Flush {
			t.Fatalf("flush table holds %s rank %d", c, rank)
		}
	}
	for _, rank := range table.unsuited {
		if c := rank.Class(); c == StraightFlush || c == Flush {
			t.Fatalf("unsuited table holds %s rank %d", c, rank)
		}
	}
}

func TestLookupTableValidateDetectsDamage(t *testing.T) {
	t.Parallel()

	table := newTestTable(t)
	for k := range table.unsuited {
		delete(table.unsuited, k)
		break
	}
	if err := table.validate(); !errors.Is(err, ErrTableConstruction) {
		t.Errorf("validate on damaged table = %v", err)
	}
}

func TestCombinations(t *testing.T) {
	t.Parallel()

	got := combinations([]uint8{4, 3, 2, 1}, 2)
	want := [][]uint8{{4, 3}, {4, 2}, {4, 1}, {3, 2}, {3, 1}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Errorf("combo %d = %v, want %v", i, got[i], want[i])
		}
	}
	if n := len(combinations(make([]uint8, 12), 3)); n != 220 {
		t.Errorf("C(12,3) = %d", n)
	}
	if combinations([]uint8{1}, 2) != nil {
		t.Error("k > n should produce nothing")
	}
}

func BenchmarkNewLookupTable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := NewLookupTable(); err != nil {
			b.Fatal(err)
		}
	}
}
