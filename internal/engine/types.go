package engine

import (
	"fmt"

	"github.com/lox/pokerenv/internal/deck"
)

// None marks the absence of a pending seat (no actor, no discarder).
const None = -1

// BettingStructure governs bet sizing
type BettingStructure int

const (
	// NoLimit allows raises up to the acting seat's entire stack
	NoLimit BettingStructure = iota
	// FixedLimit allows exactly one raise size per street
	FixedLimit
	// PotLimit caps raises at the size of the pot
	PotLimit
)

// String returns the string representation of a betting structure
func (b BettingStructure) String() string {
	switch b {
	case NoLimit:
		return "no-limit"
	case FixedLimit:
		return "fixed-limit"
	case PotLimit:
		return "pot-limit"
	default:
		return "unknown"
	}
}

// BettingStructureFromString converts a string to a BettingStructure
func BettingStructureFromString(s string) (BettingStructure, bool) {
	switch s {
	case "no-limit", "nl", "":
		return NoLimit, true
	case "fixed-limit", "fl", "limit":
		return FixedLimit, true
	case "pot-limit", "pl":
		return PotLimit, true
	default:
		return NoLimit, false
	}
}

// HandType is the ranking rule applied at showdown
type HandType int

const (
	// High awards the pot to the strongest conventional high hand
	High HandType = iota
	// DeuceToSevenLow awards the pot to the weakest conventional high hand
	DeuceToSevenLow
)

// String returns the string representation of a hand type
func (h HandType) String() string {
	switch h {
	case High:
		return "high"
	case DeuceToSevenLow:
		return "deuce-to-seven-low"
	default:
		return "unknown"
	}
}

// HandTypeFromString converts a string to a HandType
func HandTypeFromString(s string) (HandType, bool) {
	switch s {
	case "high", "":
		return High, true
	case "deuce-to-seven-low", "2-7-low":
		return DeuceToSevenLow, true
	default:
		return High, false
	}
}

// Street describes one round of the hand: what is dealt when it opens,
// whether it carries a draw sub-phase, and the fixed bet size when the
// betting structure is fixed-limit.
type Street struct {
	Label string
	// DownDeals is the number of face-down hole cards dealt to each
	// contesting seat when the street opens.
	DownDeals int
	// UpDeals is the number of face-up hole cards dealt when the street opens.
	UpDeals int
	// BoardDeals is the number of community cards dealt when the street opens.
	BoardDeals int
	// Draw marks a stand-pat/discard sub-phase before the street's betting.
	Draw bool
	// MinBet is the opening bet (and fixed-limit raise size) for the street.
	MinBet int
}

// Config describes one hand. Seat-indexed slices must have length Seats;
// use Broadcast to expand scalars before construction.
type Config struct {
	Deck           deck.Spec
	HandType       HandType
	Streets        []Street
	Betting        BettingStructure
	AnteTrimming   bool
	Antes          []int
	Blinds         []int
	BringIn        int
	StartingStacks []int
	Seats          int
}

// Broadcast expands a scalar or short seat-indexed sequence to exactly n
// entries: nil becomes all zeros, a single value repeats, and a full-length
// sequence passes through. Anything else is a ConfigurationError.
func Broadcast(raw []int, n int) ([]int, error) {
	out := make([]int, n)
	switch len(raw) {
	case 0:
	case 1:
		for i := range out {
			out[i] = raw[0]
		}
	case n:
		copy(out, raw)
	default:
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("sequence of length %d cannot broadcast to %d seats", len(raw), n),
		}
	}
	return out, nil
}

// Validate checks the configuration for seat-count mismatches, negative
// amounts and structural gaps.
func (c Config) Validate() error {
	if c.Seats < 2 {
		return &ConfigurationError{Reason: fmt.Sprintf("need at least 2 seats, got %d", c.Seats)}
	}
	if len(c.Streets) == 0 {
		return &ConfigurationError{Reason: "at least one street required"}
	}
	for name, seq := range map[string][]int{
		"antes":           c.Antes,
		"blinds":          c.Blinds,
		"starting stacks": c.StartingStacks,
	} {
		if len(seq) != c.Seats {
			return &ConfigurationError{
				Reason: fmt.Sprintf("%s has length %d, want %d", name, len(seq), c.Seats),
			}
		}
		for seat, v := range seq {
			if v < 0 {
				return &ConfigurationError{
					Reason: fmt.Sprintf("%s: negative amount %d at seat %d", name, v, seat),
				}
			}
		}
	}
	if c.BringIn < 0 {
		return &ConfigurationError{Reason: fmt.Sprintf("negative bring-in %d", c.BringIn)}
	}
	for seat, stack := range c.StartingStacks {
		if stack == 0 {
			return &ConfigurationError{Reason: fmt.Sprintf("seat %d has an empty starting stack", seat)}
		}
	}
	if c.AnteTrimming {
		for _, a := range c.Antes {
			if a != c.Antes[0] {
				return &ConfigurationError{Reason: "ante trimming requires uniform antes"}
			}
		}
	}
	for i, st := range c.Streets {
		if st.MinBet < 0 {
			return &ConfigurationError{Reason: fmt.Sprintf("street %d: negative min bet", i)}
		}
	}
	return nil
}
