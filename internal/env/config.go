package env

import (
	"fmt"

	"github.com/lox/pokerenv/internal/deck"
	"github.com/lox/pokerenv/internal/engine"
)

// RenderMode selects the render surface
type RenderMode int

const (
	// RenderNone disables rendering
	RenderNone RenderMode = iota
	// RenderHuman prints a one-line table summary after every step
	RenderHuman
)

// DefaultIllegalPenalty is the reward assigned for a malformed or
// currently-illegal action.
const DefaultIllegalPenalty = -1

// DefaultChipLadder returns the default chip denomination ladder: powers of
// two, so the greedy amount encoding is the plain binary representation.
func DefaultChipLadder() []int {
	ladder := make([]int, 16)
	for i := range ladder {
		ladder[i] = 1 << i
	}
	return ladder
}

// Config holds the construction-time parameters of an environment. Antes,
// blinds and starting stacks may be scalar, short or full-length; they are
// broadcast to the seat count at construction.
type Config struct {
	Deck           deck.Spec
	HandType       engine.HandType
	Streets        []engine.Street
	Betting        engine.BettingStructure
	AnteTrimming   bool
	Antes          []int
	Blinds         []int
	BringIn        int
	StartingStacks []int
	Seats          int

	// ChipLadder is the ordered denomination ladder used to encode monetary
	// observation fields as fixed-width bit vectors.
	ChipLadder []int
	// SizingMenu is the ordered list of allowed bet-or-raise-to targets.
	SizingMenu []int

	Render RenderMode
	// IllegalPenalty is the (negative) reward for illegal actions. The zero
	// value selects DefaultIllegalPenalty.
	IllegalPenalty int
}

// withDefaults fills unset optional fields.
func (c Config) withDefaults() Config {
	if c.ChipLadder == nil {
		c.ChipLadder = DefaultChipLadder()
	}
	if c.IllegalPenalty == 0 {
		c.IllegalPenalty = DefaultIllegalPenalty
	}
	return c
}

// engineConfig broadcasts the raw seat-indexed values and produces the
// validated engine configuration.
func (c Config) engineConfig() (engine.Config, error) {
	antes, err := engine.Broadcast(c.Antes, c.Seats)
	if err != nil {
		return engine.Config{}, fmt.Errorf("antes: %w", err)
	}
	blinds, err := engine.Broadcast(c.Blinds, c.Seats)
	if err != nil {
		return engine.Config{}, fmt.Errorf("blinds: %w", err)
	}
	stacks, err := engine.Broadcast(c.StartingStacks, c.Seats)
	if err != nil {
		return engine.Config{}, fmt.Errorf("starting stacks: %w", err)
	}
	ec := engine.Config{
		Deck:           c.Deck,
		HandType:       c.HandType,
		Streets:        c.Streets,
		Betting:        c.Betting,
		AnteTrimming:   c.AnteTrimming,
		Antes:          antes,
		Blinds:         blinds,
		BringIn:        c.BringIn,
		StartingStacks: stacks,
		Seats:          c.Seats,
	}
	if err := ec.Validate(); err != nil {
		return engine.Config{}, err
	}
	return ec, nil
}

// validate checks the coordinator-level parameters the engine never sees.
func (c Config) validate() error {
	for i, chip := range c.ChipLadder {
		if chip <= 0 {
			return &engine.ConfigurationError{Reason: fmt.Sprintf("chip ladder entry %d is not positive", i)}
		}
		if i > 0 && chip <= c.ChipLadder[i-1] {
			return &engine.ConfigurationError{Reason: "chip ladder must be strictly increasing"}
		}
	}
	for i, amount := range c.SizingMenu {
		if amount <= 0 {
			return &engine.ConfigurationError{Reason: fmt.Sprintf("sizing menu entry %d is not positive", i)}
		}
	}
	if c.IllegalPenalty >= 0 {
		return &engine.ConfigurationError{Reason: "illegal-action penalty must be negative"}
	}
	return nil
}
