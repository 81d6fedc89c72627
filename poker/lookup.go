package poker

import (
	"fmt"
	"slices"
)

// Inclusive upper bound of each hand class. Rank 1 is a royal flush and
// 7462 is 7-5-4-3-2 unsuited.
const (
	MaxStraightFlush HandRank = 10
	MaxFourOfAKind   HandRank = 166
	MaxFullHouse     HandRank = 322
	MaxFlush         HandRank = 1599
	MaxStraight      HandRank = 1609
	MaxThreeOfAKind  HandRank = 2467
	MaxTwoPair       HandRank = 3325
	MaxPair          HandRank = 6185
	MaxHighCard      HandRank = 7462
)

const (
	// C(13,5): every rank mask with five distinct ranks.
	distinctRankMasks = 1287

	flushTableSize    = distinctRankMasks
	unsuitedTableSize = 6175
)

// straightMasks lists the ten straights from ace-high down to the wheel.
// The wheel (A-2-3-4-5) is numerically out of sequence and goes last.
var straightMasks = [10]uint16{
	0b1111100000000, // royal
	0b0111110000000,
	0b0011111000000,
	0b0001111100000,
	0b0000111110000,
	0b0000011111000,
	0b0000001111100,
	0b0000000111110,
	0b0000000011111,
	0b1000000001111, // five high
}

// LookupTable maps the prime product of a five-card hand to its HandRank.
// Hands of a single suit are keyed in the flush map by the product of their
// rank mask; everything else is keyed in the unsuited map by the product of
// the card primes. A table never changes after construction and can be
// shared by any number of goroutines.
type LookupTable struct {
	flush    map[uint32]HandRank
	unsuited map[uint32]HandRank
}

// NewLookupTable enumerates all 7462 distinct five-card hand values.
func NewLookupTable() (*LookupTable, error) {
	t := &LookupTable{
		flush:    make(map[uint32]HandRank, flushTableSize),
		unsuited: make(map[uint32]HandRank, unsuitedTableSize),
	}
	t.flushes()
	t.multiples()
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// FlushLen returns the number of flush table entries.
func (t *LookupTable) FlushLen() int { return len(t.flush) }

// UnsuitedLen returns the number of unsuited table entries.
func (t *LookupTable) UnsuitedLen() int { return len(t.unsuited) }

// Flush looks up a rank-mask prime product for a single-suited hand.
func (t *LookupTable) Flush(key uint32) (HandRank, bool) {
	r, ok := t.flush[key]
	return r, ok
}

// Unsuited looks up the card prime product of a hand that is not a flush.
func (t *LookupTable) Unsuited(key uint32) (HandRank, bool) {
	r, ok := t.unsuited[key]
	return r, ok
}

// Equal reports whether both tables hold identical entries.
func (t *LookupTable) Equal(other *LookupTable) bool {
	if other == nil {
		return false
	}
	return mapsEqual(t.flush, other.flush) && mapsEqual(t.unsuited, other.unsuited)
}

func mapsEqual(a, b map[uint32]HandRank) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// flushes fills straight flushes and flushes, then reuses the same rank
// masks for straights and high cards, which differ only in suit.
func (t *LookupTable) flushes() {
	// The first pattern is 0b11111 itself, a straight, so it is never needed.
	masks := make([]uint16, 0, distinctRankMasks-len(straightMasks))
	for mask := range BitPatterns(0b11111, distinctRankMasks-1) {
		if !slices.Contains(straightMasks[:], mask) {
			masks = append(masks, mask)
		}
	}
	// Generated weakest first; rank from the strongest.
	slices.Reverse(masks)

	fillFromRankBits(t.flush, 1, straightMasks[:])
	fillFromRankBits(t.flush, MaxFullHouse+1, masks)
	fillFromRankBits(t.unsuited, MaxFlush+1, straightMasks[:])
	fillFromRankBits(t.unsuited, MaxPair+1, masks)
}

func fillFromRankBits(table map[uint32]HandRank, start HandRank, masks []uint16) {
	rank := start
	for _, mask := range masks {
		table[PrimeProductFromRankBits(mask)] = rank
		rank++
	}
}

// multiples fills every hand containing a repeated rank.
func (t *LookupTable) multiples() {
	desc := make([]uint8, 0, 13)
	for r := int(Ace); r >= int(Two); r-- {
		desc = append(desc, uint8(r))
	}
	p := func(r uint8) uint32 { return primes[r] }

	rank := MaxStraightFlush + 1
	for _, quad := range desc {
		for _, kicker := range without(desc, quad) {
			t.unsuited[pow(p(quad), 4)*p(kicker)] = rank
			rank++
		}
	}

	rank = MaxFourOfAKind + 1
	for _, trip := range desc {
		for _, pair := range without(desc, trip) {
			t.unsuited[pow(p(trip), 3)*pow(p(pair), 2)] = rank
			rank++
		}
	}

	rank = MaxStraight + 1
	for _, trip := range desc {
		for _, k := range combinations(without(desc, trip), 2) {
			t.unsuited[pow(p(trip), 3)*p(k[0])*p(k[1])] = rank
			rank++
		}
	}

	rank = MaxThreeOfAKind + 1
	for _, pairs := range combinations(desc, 2) {
		for _, kicker := range without(desc, pairs...) {
			t.unsuited[pow(p(pairs[0]), 2)*pow(p(pairs[1]), 2)*p(kicker)] = rank
			rank++
		}
	}

	rank = MaxTwoPair + 1
	for _, pair := range desc {
		for _, k := range combinations(without(desc, pair), 3) {
			t.unsuited[pow(p(pair), 2)*p(k[0])*p(k[1])*p(k[2])] = rank
			rank++
		}
	}
}

// validate checks entry counts and that every rank 1..MaxHighCard is
// assigned exactly once across both tables.
func (t *LookupTable) validate() error {
	if len(t.flush) != flushTableSize {
		return fmt.Errorf("%w: flush table has %d entries, want %d",
			ErrTableConstruction, len(t.flush), flushTableSize)
	}
	if len(t.unsuited) != unsuitedTableSize {
		return fmt.Errorf("%w: unsuited table has %d entries, want %d",
			ErrTableConstruction, len(t.unsuited), unsuitedTableSize)
	}

	var seen [MaxHighCard + 1]bool
	for _, table := range []map[uint32]HandRank{t.flush, t.unsuited} {
		for key, rank := range table {
			if rank < 1 || rank > MaxHighCard {
				return fmt.Errorf("%w: key %d has rank %d", ErrTableConstruction, key, rank)
			}
			if seen[rank] {
				return fmt.Errorf("%w: rank %d assigned twice", ErrTableConstruction, rank)
			}
			seen[rank] = true
		}
	}
	for rank := HandRank(1); rank <= MaxHighCard; rank++ {
		if !seen[rank] {
			return fmt.Errorf("%w: rank %d has no hand", ErrTableConstruction, rank)
		}
	}
	return nil
}

func pow(base uint32, exp int) uint32 {
	result := uint32(1)
	for range exp {
		result *= base
	}
	return result
}

// without returns ranks with the excluded values removed, order kept.
func without(ranks []uint8, exclude ...uint8) []uint8 {
	out := make([]uint8, 0, len(ranks))
	for _, r := range ranks {
		if !slices.Contains(exclude, r) {
			out = append(out, r)
		}
	}
	return out
}

// combinations returns every k-subset of items in lexicographic index
// order. Given ranks sorted high to low, the strongest subset comes first.
func combinations(items []uint8, k int) [][]uint8 {
	var out [][]uint8
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	n := len(items)
	for k <= n {
		combo := make([]uint8, k)
		for i, j := range idx {
			combo[i] = items[j]
		}
		out = append(out, combo)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
