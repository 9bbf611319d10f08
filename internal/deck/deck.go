package deck

import (
	rand "math/rand/v2"
)

// Spec identifies a deck composition
type Spec int

const (
	// Standard 52-card deck
	Standard Spec = iota
	// ShortDeck 36-card deck (sixes through aces)
	ShortDeck
)

// String returns the string representation of a deck spec
func (s Spec) String() string {
	switch s {
	case Standard:
		return "standard"
	case ShortDeck:
		return "short-deck"
	default:
		return "unknown"
	}
}

// SpecFromString converts a string to a deck Spec
func SpecFromString(s string) (Spec, bool) {
	switch s {
	case "standard", "":
		return Standard, true
	case "short-deck", "short":
		return ShortDeck, true
	default:
		return Standard, false
	}
}

// Cards returns the full card list for the spec in index order
func (s Spec) Cards() []Card {
	lowest := Two
	if s == ShortDeck {
		lowest = Six
	}
	cards := make([]Card, 0, 52)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := lowest; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Deck represents a shuffled deck of playing cards
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a shuffled deck of the given spec using the provided RNG
func New(spec Spec, rng *rand.Rand) *Deck {
	d := &Deck{cards: spec.Cards(), rng: rng}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Replenish shuffles the given cards and places them under the remaining
// deck, so draw games can recycle mucked discards when the stub runs dry.
func (d *Deck) Replenish(cards []Card) {
	add := append([]Card(nil), cards...)
	d.rng.Shuffle(len(add), func(i, j int) {
		add[i], add[j] = add[j], add[i]
	})
	d.cards = append(d.cards, add...)
}

// Deal removes and returns the top n cards from the deck
func (d *Deck) Deal(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	cards := d.cards[:n]
	d.cards = d.cards[n:]
	return cards
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
