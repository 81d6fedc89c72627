package poker

import (
	"fmt"
	"strings"
	"unicode"
)

// Card packs a playing card into 32 bits:
//
//	+--------+--------+--------+--------+
//	|xxxbbbbb|bbbbbbbb|cdhsrrrr|xxpppppp|
//	+--------+--------+--------+--------+
//
//	b = one bit per face rank (deuce..ace)
//	cdhs = suit bit
//	r = face rank index (deuce=0 .. ace=12)
//	p = prime for the face rank (deuce=2 .. ace=41)
//
// Cards are plain values and compare equal iff rank and suit match.
type Card uint32

// Face ranks, deuce through ace.
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit is the single suit bit of a card.
type Suit uint8

const (
	Spades   Suit = 1
	Hearts   Suit = 2
	Diamonds Suit = 4
	Clubs    Suit = 8
)

// Suits lists every suit in deck order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

const rankChars = "23456789TJQKA"

var primes = [13]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// Valid reports whether s is exactly one of the four suit bits.
func (s Suit) Valid() bool {
	switch s {
	case Spades, Hearts, Diamonds, Clubs:
		return true
	}
	return false
}

// Char returns the single-letter suit name.
func (s Suit) Char() byte {
	switch s {
	case Spades:
		return 's'
	case Hearts:
		return 'h'
	case Diamonds:
		return 'd'
	case Clubs:
		return 'c'
	default:
		return '?'
	}
}

// Glyph returns the unicode suit symbol.
func (s Suit) Glyph() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// RankPrime returns the prime assigned to a face rank.
func RankPrime(rank uint8) uint32 {
	return primes[rank]
}

// NewCard encodes a face rank (Two..Ace) and suit.
func NewCard(rank uint8, suit Suit) (Card, error) {
	if rank > Ace {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	if !suit.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSuit, suit)
	}
	return makeCard(rank, suit), nil
}

func makeCard(rank uint8, suit Suit) Card {
	bitrank := uint32(1) << rank << 16
	return Card(bitrank | uint32(suit)<<12 | uint32(rank)<<8 | primes[rank])
}

// Rank returns the face rank index (0..12).
func (c Card) Rank() uint8 {
	return uint8(c>>8) & 0xF
}

// Suit returns the suit bit.
func (c Card) Suit() Suit {
	return Suit(c>>12) & 0xF
}

// RankBit returns the 13-bit rank presence mask of the card.
func (c Card) RankBit() uint16 {
	return uint16(c>>16) & 0x1FFF
}

// Prime returns the prime of the card's face rank.
func (c Card) Prime() uint32 {
	return uint32(c) & 0x3F
}

// Valid reports whether c is a well-formed encoding.
func (c Card) Valid() bool {
	rank := c.Rank()
	if rank > Ace || !c.Suit().Valid() {
		return false
	}
	return c == makeCard(rank, c.Suit())
}

// String returns the two-character form, e.g. "As".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankChars[c.Rank()], c.Suit().Char()})
}

// Pretty returns the card with a suit glyph, e.g. "A♠".
func (c Card) Pretty() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + c.Suit().Glyph()
}

// ParseCard parses a two-character card such as "As", "Td" or "2c".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rank := strings.IndexByte(rankChars, byte(unicode.ToUpper(rune(s[0]))))
	if rank < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, s)
	}
	var suit Suit
	switch s[1] {
	case 's', 'S':
		suit = Spades
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
	}
	return makeCard(uint8(rank), suit), nil
}

// ParseCards parses a run of cards such as "AsKd" or "As Kd, Qh".
func ParseCards(s string) ([]Card, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, s)
	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("%w: %q has an odd number of characters", ErrInvalidCard, s)
	}
	cards := make([]Card, 0, len(compact)/2)
	for i := 0; i < len(compact); i += 2 {
		card, err := ParseCard(compact[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// FormatCards joins cards in their two-character form.
func FormatCards(cards []Card) string {
	var b strings.Builder
	for i, c := range cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// FullDeck returns the 52 cards, suit by suit, deuce to ace.
func FullDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, makeCard(rank, suit))
		}
	}
	return cards
}

// PrimeProduct multiplies the rank primes of the given cards. It is the
// unsuited lookup key for a five-card hand; five primes fit in 32 bits.
func PrimeProduct(cards ...Card) uint32 {
	product := uint32(1)
	for _, c := range cards {
		product *= c.Prime()
	}
	return product
}

// PrimeProductFromRankBits multiplies the primes of every rank set in a
// 13-bit rank mask. Used as the key for hands of five distinct ranks.
func PrimeProductFromRankBits(mask uint16) uint32 {
	product := uint32(1)
	for rank := Two; rank <= Ace; rank++ {
		if mask&(1<<rank) != 0 {
			product *= primes[rank]
		}
	}
	return product
}
