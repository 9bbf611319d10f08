package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerenv/internal/deck"
)

func TestDecodeActionFixedIndices(t *testing.T) {
	a, err := decodeAction(Envelope{Index: IndexFold}, 3)
	require.NoError(t, err)
	assert.Equal(t, Fold(), a)

	a, err = decodeAction(Envelope{Index: IndexCheckOrCall}, 3)
	require.NoError(t, err)
	assert.Equal(t, CheckOrCall(), a)

	mask := deck.NewCardSet(deck.NewCard(deck.Hearts, deck.Seven))
	a, err = decodeAction(Envelope{Index: IndexStandPatOrDiscard, Discards: mask}, 3)
	require.NoError(t, err)
	assert.Equal(t, StandPatOrDiscard(mask), a)
}

func TestDecodeActionSizingMenu(t *testing.T) {
	a, err := decodeAction(Envelope{Index: IndexBetOrRaiseBase}, 3)
	require.NoError(t, err)
	assert.Equal(t, BetOrRaiseTo(0), a)

	a, err = decodeAction(Envelope{Index: IndexBetOrRaiseBase + 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, BetOrRaiseTo(2), a)

	_, err = decodeAction(Envelope{Index: IndexBetOrRaiseBase + 3}, 3)
	assert.ErrorIs(t, err, ErrMalformedAction, "index one past the menu is out of range")
}

func TestDecodeActionRejectsMalformedEnvelopes(t *testing.T) {
	_, err := decodeAction(Envelope{Index: -1}, 3)
	assert.ErrorIs(t, err, ErrMalformedAction)

	_, err = decodeAction(Envelope{Index: 999}, 3)
	assert.ErrorIs(t, err, ErrMalformedAction)

	mask := deck.NewCardSet(deck.NewCard(deck.Spades, deck.Two))
	_, err = decodeAction(Envelope{Index: IndexFold, Discards: mask}, 3)
	assert.ErrorIs(t, err, ErrMalformedAction, "discard mask only belongs on the discard action")

	bad := deck.CardSet(1) << deck.SetSize
	_, err = decodeAction(Envelope{Index: IndexStandPatOrDiscard, Discards: bad}, 3)
	assert.ErrorIs(t, err, ErrMalformedAction, "bits outside the card space are invalid")
}

func TestActionEnvelopeRoundTrip(t *testing.T) {
	mask := deck.NewCardSet(deck.NewCard(deck.Clubs, deck.Nine))
	actions := []Action{
		StandPatOrDiscard(mask),
		Fold(),
		CheckOrCall(),
		BetOrRaiseTo(2),
	}
	for _, a := range actions {
		decoded, err := decodeAction(a.Envelope(), 5)
		require.NoError(t, err)
		assert.Equal(t, a, decoded)
	}
}
