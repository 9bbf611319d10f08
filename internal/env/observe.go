package env

import (
	"github.com/lox/pokerenv/internal/deck"
	"github.com/lox/pokerenv/internal/engine"
)

// Observation is one seat's view of the hand: an immutable snapshot, rebuilt
// after every successful transition and shared with no live engine state.
//
// The observer's own down cards appear in DownCards; every other seat's
// entry is empty and only DownCardCounts reveals how many cards it holds.
// At a showdown the contesting seats' down cards become visible to everyone.
// Monetary fields are encoded against the configured chip ladder.
type Observation struct {
	Agent int

	DownCards      []deck.CardSet
	DownCardCounts []int
	UpCards        []deck.CardSet
	Board          deck.CardSet

	// Statuses marks the seats still contesting the pot.
	Statuses []bool

	Bets             [][]bool
	Stacks           [][]bool
	PotContributions [][]bool

	// StanderPatOrDiscarder and Actor are single-hot over seats; all false
	// when no seat holds the corresponding pending action.
	StanderPatOrDiscarder []bool
	Actor                 []bool
}

// encodeAmount decomposes amount greedily over the denomination ladder,
// largest rung first, one bit per rung. With the default power-of-two
// ladder this is the exact binary representation; amounts beyond the
// ladder's total capacity saturate.
func encodeAmount(amount int, ladder []int) []bool {
	v := make([]bool, len(ladder))
	for i := len(ladder) - 1; i >= 0; i-- {
		if amount >= ladder[i] {
			v[i] = true
			amount -= ladder[i]
		}
	}
	return v
}

// buildObservation assembles one seat's snapshot from the engine state.
func buildObservation(st engine.State, agent int, seats int, ladder []int) Observation {
	obs := Observation{
		Agent:                 agent,
		DownCards:             make([]deck.CardSet, seats),
		DownCardCounts:        make([]int, seats),
		UpCards:               make([]deck.CardSet, seats),
		Board:                 deck.NewCardSet(st.Board()...),
		Statuses:              st.Statuses(),
		Bets:                  make([][]bool, seats),
		Stacks:                make([][]bool, seats),
		PotContributions:      make([][]bool, seats),
		StanderPatOrDiscarder: make([]bool, seats),
		Actor:                 make([]bool, seats),
	}

	// Down cards reveal at showdown: the hand is over and more than one
	// seat is still contesting.
	contesting := 0
	for _, s := range obs.Statuses {
		if s {
			contesting++
		}
	}
	showdown := !st.InProgress() && contesting > 1

	bets := st.Bets()
	stacks := st.Stacks()
	contribs := st.PotContributions()
	for seat := 0; seat < seats; seat++ {
		down := st.DownCards(seat)
		obs.DownCardCounts[seat] = len(down)
		if seat == agent || (showdown && obs.Statuses[seat]) {
			obs.DownCards[seat] = deck.NewCardSet(down...)
		}
		obs.UpCards[seat] = deck.NewCardSet(st.UpCards(seat)...)
		obs.Bets[seat] = encodeAmount(bets[seat], ladder)
		obs.Stacks[seat] = encodeAmount(stacks[seat], ladder)
		obs.PotContributions[seat] = encodeAmount(contribs[seat], ladder)
	}

	if seat := st.StanderPatOrDiscarderIndex(); seat != engine.None {
		obs.StanderPatOrDiscarder[seat] = true
	} else if seat := st.ActorIndex(); seat != engine.None {
		obs.Actor[seat] = true
	}
	return obs
}
