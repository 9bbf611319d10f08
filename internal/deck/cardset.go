package deck

import (
	"math/bits"
	"strings"
)

// SetSize is the width of a CardSet: 52 suited cards plus two jokers.
const SetSize = 54

// CardSet is a fixed-width bit vector over the full card index space.
// It is the wire form used for discard masks and observation card fields.
type CardSet uint64

const setMask = CardSet(1)<<SetSize - 1

// NewCardSet builds a set from the given cards
func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.With(c)
	}
	return s
}

// With returns the set with c added
func (s CardSet) With(c Card) CardSet {
	return s | 1<<c.Index()
}

// Without returns the set with c removed
func (s CardSet) Without(c Card) CardSet {
	return s &^ (1 << c.Index())
}

// Contains reports whether c is in the set
func (s CardSet) Contains(c Card) bool {
	return s&(1<<c.Index()) != 0
}

// Count returns the number of cards in the set
func (s CardSet) Count() int {
	return bits.OnesCount64(uint64(s & setMask))
}

// IsEmpty reports whether the set holds no cards
func (s CardSet) IsEmpty() bool {
	return s&setMask == 0
}

// Valid reports whether no bits outside the card index space are set
func (s CardSet) Valid() bool {
	return s&^setMask == 0
}

// Cards returns the members in index order
func (s CardSet) Cards() []Card {
	cards := make([]Card, 0, s.Count())
	for v := uint64(s & setMask); v != 0; v &= v - 1 {
		cards = append(cards, CardAt(bits.TrailingZeros64(v)))
	}
	return cards
}

// String returns the members as a space-separated list (e.g. "A♠ K♥")
func (s CardSet) String() string {
	var b strings.Builder
	for i, c := range s.Cards() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
