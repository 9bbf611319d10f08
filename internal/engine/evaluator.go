package engine

import (
	poker "github.com/paulhankin/poker"

	"github.com/lox/pokerenv/internal/deck"
)

// score ranks a seat's full card set under the configured hand type.
// Higher is better regardless of rule: lowball scores are negated so the
// showdown comparison stays uniform.
func score(cards []deck.Card, ht HandType) int64 {
	s := int64(bestFive(cards))
	if ht == DeuceToSevenLow {
		return -s
	}
	return s
}

// bestFive evaluates the strongest 5-card high hand available from cards.
func bestFive(cards []deck.Card) int16 {
	pcs := make([]poker.Card, len(cards))
	for i, c := range cards {
		pcs[i] = toLibCard(c)
	}
	switch len(pcs) {
	case 7:
		var a [7]poker.Card
		copy(a[:], pcs)
		return poker.Eval7(&a)
	case 5:
		var a [5]poker.Card
		copy(a[:], pcs)
		return poker.Eval5(&a)
	case 3:
		var a [3]poker.Card
		copy(a[:], pcs)
		return poker.Eval3(&a)
	default:
		return bestFiveSubset(pcs)
	}
}

// bestFiveSubset handles card counts the library has no direct evaluator
// for (6, or more than 7) by taking the best 5-card subset.
func bestFiveSubset(pcs []poker.Card) int16 {
	best := int16(-1)
	var five [5]poker.Card
	var pick func(start, k int)
	pick = func(start, k int) {
		if k == 5 {
			if s := poker.Eval5(&five); s > best {
				best = s
			}
			return
		}
		for i := start; i <= len(pcs)-(5-k); i++ {
			five[k] = pcs[i]
			pick(i+1, k+1)
		}
	}
	pick(0, 0)
	return best
}

// toLibCard converts our card to the evaluator's representation. The
// library ranks aces as 1; jokers never reach showdown evaluation.
func toLibCard(c deck.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}
	card, _ := poker.MakeCard(s, r)
	return card
}
