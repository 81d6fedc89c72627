package pot

import "errors"

// Input errors.
var (
	ErrInvalidPlayer        = errors.New("invalid player id")
	ErrNegativeContribution = errors.New("negative contribution")
	ErrDuplicatePlayer      = errors.New("player listed more than once")
)

// Invariant violations. Settlement stops rather than guess a payout.
var (
	ErrNoWinnerForPot   = errors.New("no ranked player contributed to pot")
	ErrChipConservation = errors.New("chip conservation violation")
)
