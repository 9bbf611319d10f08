package env

import (
	"errors"
	"fmt"

	"github.com/lox/pokerenv/internal/deck"
)

// Fixed positions of the action enumeration. Bet-or-raise-to actions occupy
// [IndexBetOrRaiseBase, IndexBetOrRaiseBase+K) where K is the sizing menu
// length.
const (
	IndexStandPatOrDiscard = 0
	IndexFold              = 1
	IndexCheckOrCall       = 2
	IndexBetOrRaiseBase    = 3
)

// ErrMalformedAction marks an envelope that fails structural validation:
// out-of-range index, a discard mask on a non-discard action, or bits
// outside the card index space. Step converts it into the illegal-action
// penalty rather than surfacing it.
var ErrMalformedAction = errors.New("env: malformed action")

// Envelope is the wire form of an action: a discrete index plus a discard
// mask that is meaningful only for the stand-pat/discard action.
type Envelope struct {
	Index    int
	Discards deck.CardSet
}

// Action is the validated tagged variant an envelope decodes to.
type Action struct {
	kind      int
	discards  deck.CardSet
	sizeIndex int
}

// StandPatOrDiscard keeps the hand, replacing the cards in discards.
func StandPatOrDiscard(discards deck.CardSet) Action {
	return Action{kind: IndexStandPatOrDiscard, discards: discards}
}

// Fold forfeits the hand.
func Fold() Action {
	return Action{kind: IndexFold}
}

// CheckOrCall matches the current bet (a check when nothing is owed).
func CheckOrCall() Action {
	return Action{kind: IndexCheckOrCall}
}

// BetOrRaiseTo bets or raises to the sizing-menu entry at sizeIndex.
func BetOrRaiseTo(sizeIndex int) Action {
	return Action{kind: IndexBetOrRaiseBase, sizeIndex: sizeIndex}
}

// Envelope returns the wire form of the action.
func (a Action) Envelope() Envelope {
	if a.kind == IndexBetOrRaiseBase {
		return Envelope{Index: IndexBetOrRaiseBase + a.sizeIndex}
	}
	return Envelope{Index: a.kind, Discards: a.discards}
}

// String names the action for logs and renders.
func (a Action) String() string {
	switch a.kind {
	case IndexStandPatOrDiscard:
		if a.discards.IsEmpty() {
			return "stand pat"
		}
		return fmt.Sprintf("discard %d", a.discards.Count())
	case IndexFold:
		return "fold"
	case IndexCheckOrCall:
		return "check or call"
	default:
		return fmt.Sprintf("bet or raise (size %d)", a.sizeIndex)
	}
}

// decodeAction validates an envelope against the sizing menu size and
// returns the tagged variant. All structural rules live here so the rest of
// the environment only ever sees well-formed actions.
func decodeAction(e Envelope, menuSize int) (Action, error) {
	if e.Index < 0 || e.Index >= IndexBetOrRaiseBase+menuSize {
		return Action{}, fmt.Errorf("%w: index %d outside [0, %d)", ErrMalformedAction, e.Index, IndexBetOrRaiseBase+menuSize)
	}
	if !e.Discards.Valid() {
		return Action{}, fmt.Errorf("%w: discard mask has bits outside the card space", ErrMalformedAction)
	}
	if e.Index != IndexStandPatOrDiscard && !e.Discards.IsEmpty() {
		return Action{}, fmt.Errorf("%w: discard mask on a non-discard action", ErrMalformedAction)
	}
	switch e.Index {
	case IndexStandPatOrDiscard:
		return StandPatOrDiscard(e.Discards), nil
	case IndexFold:
		return Fold(), nil
	case IndexCheckOrCall:
		return CheckOrCall(), nil
	default:
		return BetOrRaiseTo(e.Index - IndexBetOrRaiseBase), nil
	}
}
