package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
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

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
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

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card. The zero value is the two of spades;
// the two jokers sit above the 52 suited cards in index order.
type Card struct {
	Suit  Suit
	Rank  Rank
	Joker bool
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// JokerCard returns one of the two jokers (n must be 0 or 1)
func JokerCard(n int) Card {
	return Card{Suit: Suit(n), Rank: 0, Joker: true}
}

// Index returns the card's position in [0, SetSize). Suited cards occupy
// [0, 52), jokers 52 and 53.
func (c Card) Index() int {
	if c.Joker {
		return 52 + int(c.Suit)
	}
	return int(c.Suit)*13 + int(c.Rank-Two)
}

// CardAt is the inverse of Index
func CardAt(index int) Card {
	if index >= 52 {
		return JokerCard(index - 52)
	}
	return Card{Suit: Suit(index / 13), Rank: Rank(index%13) + Two}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	if c.Joker {
		return "Jo"
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return !c.Joker && c.Suit.IsRed()
}
