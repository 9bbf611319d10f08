package engine

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/pokerenv/internal/deck"
)

// State is a live poker hand in progress. It is mutated only through the four
// action operations; every read accessor returns a snapshot that is safe to
// retain. A State is created fresh per hand and discarded when the hand ends.
//
// Coordinators should treat the engine's internal sub-phases (dealing, draw
// rounds, betting rounds, showdown) as opaque and consume only "who must act
// next" and "is it over".
type State interface {
	// ActorIndex returns the seat with a pending betting action, or None.
	ActorIndex() int
	// StanderPatOrDiscarderIndex returns the seat with a pending draw
	// decision, or None. When both a draw and a betting action could be
	// read, the draw decision takes precedence.
	StanderPatOrDiscarderIndex() int
	// CheckingOrCallingAmount is the amount the actor must put in to call.
	// Zero means a check is available.
	CheckingOrCallingAmount() int
	// CompletionBettingOrRaisingToAmounts returns the inclusive [min, max]
	// bet-or-raise-to bounds for the actor. min > max means raising is
	// closed for this seat.
	CompletionBettingOrRaisingToAmounts() (min, max int)

	Stacks() []int
	StartingStacks() []int
	Bets() []int
	PotContributions() []int
	Statuses() []bool
	DownCards(seat int) []deck.Card
	UpCards(seat int) []deck.Card
	Board() []deck.Card

	// InProgress is true until showdown or all-but-one-folded resolution.
	InProgress() bool

	Fold() error
	CheckOrCall() error
	CompleteBetOrRaiseTo(amount int) error
	StandPatOrDiscard(discards deck.CardSet) error
}

// Factory creates a fresh State for a hand. The environment depends on this
// rather than a concrete engine so it stays testable against fakes.
type Factory func(cfg Config, rng *rand.Rand, logger *log.Logger) (State, error)
