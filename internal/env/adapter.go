package env

import (
	"github.com/lox/pokerenv/internal/aec"
	"github.com/lox/pokerenv/internal/engine"
)

// adapter owns the handle to the live engine state and translates the
// environment's action vocabulary into the engine's operation set. It holds
// no state of its own beyond the handle.
type adapter struct {
	state engine.State
}

// mover returns the seat currently required to act: the stand-pat/discarder
// when the engine is in a draw sub-phase, else the betting actor, else None.
func (ad *adapter) mover() int {
	if ad.state == nil {
		return aec.None
	}
	if seat := ad.state.StanderPatOrDiscarderIndex(); seat != engine.None {
		return seat
	}
	if seat := ad.state.ActorIndex(); seat != engine.None {
		return seat
	}
	return aec.None
}

// apply dispatches a validated action to the engine. Bet-or-raise sizes are
// resolved through the configured sizing menu. Any IllegalActionError comes
// back unwrapped for the step boundary's penalty policy.
func (ad *adapter) apply(a Action, menu []int) error {
	switch a.kind {
	case IndexStandPatOrDiscard:
		return ad.state.StandPatOrDiscard(a.discards)
	case IndexFold:
		return ad.state.Fold()
	case IndexCheckOrCall:
		return ad.state.CheckOrCall()
	default:
		if a.sizeIndex >= len(menu) {
			return &engine.IllegalActionError{Op: "bet or raise", Reason: "sizing menu index out of range"}
		}
		return ad.state.CompleteBetOrRaiseTo(menu[a.sizeIndex])
	}
}
