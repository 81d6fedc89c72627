package poker

import "errors"

// Input errors. These are the caller's fault and nothing has been
// evaluated when they are returned.
var (
	ErrInvalidCard     = errors.New("invalid card")
	ErrInvalidRank     = errors.New("invalid card rank")
	ErrInvalidSuit     = errors.New("invalid card suit")
	ErrInvalidHandSize = errors.New("invalid hand size")
	ErrDuplicateCard   = errors.New("duplicate card")
	ErrInvalidHandRank = errors.New("hand rank out of range")
)

// Invariant violations. A table that produces one of these is unusable.
var (
	ErrCorruptTable      = errors.New("lookup table is missing a hand")
	ErrTableConstruction = errors.New("lookup table construction failed")
	ErrTableFormat       = errors.New("malformed lookup table data")
)
