package simulator

import (
	rand "math/rand/v2"

	"github.com/lox/pokerenv/internal/deck"
	"github.com/lox/pokerenv/internal/env"
)

// Policy chooses an action for the selected agent. Policies only see the
// environment's public query surface, never the engine.
type Policy interface {
	Name() string
	Act(e *env.Env, agent int, rng *rand.Rand) env.Envelope
}

// PolicyFromString converts a policy name to a Policy
func PolicyFromString(name string) (Policy, bool) {
	switch name {
	case "rand", "":
		return RandomPolicy{}, true
	case "call":
		return CallPolicy{}, true
	case "fold":
		return FoldPolicy{}, true
	default:
		return nil, false
	}
}

// RandomPolicy picks uniformly among the currently-legal actions. On a
// stand-pat/discard turn each held card is discarded with probability 1/2.
type RandomPolicy struct{}

func (RandomPolicy) Name() string { return "rand" }

func (RandomPolicy) Act(e *env.Env, agent int, rng *rand.Rand) env.Envelope {
	legal := e.LegalActions()
	if len(legal) == 0 {
		return env.CheckOrCall().Envelope()
	}
	chosen := legal[rng.IntN(len(legal))].Envelope()
	if chosen.Index == env.IndexStandPatOrDiscard {
		chosen.Discards = randomDiscards(e, agent, rng)
	}
	return chosen
}

func randomDiscards(e *env.Env, agent int, rng *rand.Rand) deck.CardSet {
	obs, err := e.Observe(agent)
	if err != nil {
		return 0
	}
	var discards deck.CardSet
	for _, c := range obs.DownCards[agent].Cards() {
		if rng.IntN(2) == 0 {
			discards = discards.With(c)
		}
	}
	return discards
}

// CallPolicy always checks or calls, and stands pat on draw turns.
type CallPolicy struct{}

func (CallPolicy) Name() string { return "call" }

func (CallPolicy) Act(e *env.Env, agent int, rng *rand.Rand) env.Envelope {
	if onDrawTurn(e) {
		return env.StandPatOrDiscard(0).Envelope()
	}
	return env.CheckOrCall().Envelope()
}

// FoldPolicy checks when free and folds otherwise, standing pat on draw
// turns. It is the weakest useful baseline.
type FoldPolicy struct{}

func (FoldPolicy) Name() string { return "fold" }

func (FoldPolicy) Act(e *env.Env, agent int, rng *rand.Rand) env.Envelope {
	if onDrawTurn(e) {
		return env.StandPatOrDiscard(0).Envelope()
	}
	if e.CheckingOrCallingAmount() == 0 {
		return env.CheckOrCall().Envelope()
	}
	return env.Fold().Envelope()
}

func onDrawTurn(e *env.Env) bool {
	for _, a := range e.LegalActions() {
		if a.Envelope().Index == env.IndexStandPatOrDiscard {
			return true
		}
	}
	return false
}
