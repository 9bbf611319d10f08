package deck

import (
	"testing"

	"github.com/lox/pokerenv/internal/randutil"
)

func TestCardIndexRoundTrip(t *testing.T) {
	for i := 0; i < SetSize; i++ {
		c := CardAt(i)
		if c.Index() != i {
			t.Errorf("CardAt(%d).Index() = %d", i, c.Index())
		}
	}
	if !CardAt(52).Joker || !CardAt(53).Joker {
		t.Error("indices 52 and 53 should be jokers")
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Spades, Ace), "A♠"},
		{NewCard(Hearts, Ten), "T♥"},
		{NewCard(Diamonds, Two), "2♦"},
		{NewCard(Clubs, King), "K♣"},
		{JokerCard(0), "Jo"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.card, got, tt.want)
		}
	}
}

func TestSpecCards(t *testing.T) {
	if got := len(Standard.Cards()); got != 52 {
		t.Errorf("standard deck has %d cards, want 52", got)
	}
	if got := len(ShortDeck.Cards()); got != 36 {
		t.Errorf("short deck has %d cards, want 36", got)
	}
	for _, c := range ShortDeck.Cards() {
		if c.Rank < Six {
			t.Fatalf("short deck contains %s", c)
		}
	}
}

func TestDeckDealsWithoutRepeats(t *testing.T) {
	d := New(Standard, randutil.New(7))
	seen := CardSet(0)
	for d.Remaining() > 0 {
		for _, c := range d.Deal(5) {
			if seen.Contains(c) {
				t.Fatalf("card %s dealt twice", c)
			}
			seen = seen.With(c)
		}
	}
	if seen.Count() != 52 {
		t.Errorf("dealt %d distinct cards, want 52", seen.Count())
	}
}

func TestDeckReplenish(t *testing.T) {
	d := New(Standard, randutil.New(7))
	dealt := d.Deal(52)
	if d.Remaining() != 0 {
		t.Fatalf("deck should be empty, %d cards remain", d.Remaining())
	}

	returned := NewCardSet(dealt[:10]...)
	d.Replenish(dealt[:10])
	if d.Remaining() != 10 {
		t.Fatalf("replenished deck holds %d cards, want 10", d.Remaining())
	}
	for _, c := range d.Deal(10) {
		if !returned.Contains(c) {
			t.Errorf("dealt %s, which was never replenished", c)
		}
	}
}

func TestDeckShuffleIsSeedDeterministic(t *testing.T) {
	a := New(Standard, randutil.New(42)).Deal(52)
	b := New(Standard, randutil.New(42)).Deal(52)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different shuffles")
		}
	}
	c := New(Standard, randutil.New(43)).Deal(52)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical shuffles")
	}
}
