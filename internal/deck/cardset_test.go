package deck

import "testing"

func TestCardSetOperations(t *testing.T) {
	as := NewCard(Spades, Ace)
	kh := NewCard(Hearts, King)

	s := NewCardSet(as, kh)
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
	if !s.Contains(as) || !s.Contains(kh) {
		t.Error("set should contain both added cards")
	}

	s = s.Without(as)
	if s.Contains(as) {
		t.Error("card still present after Without")
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d after removal, want 1", s.Count())
	}
	if s.IsEmpty() {
		t.Error("non-empty set reported empty")
	}
}

func TestCardSetValid(t *testing.T) {
	full := NewCardSet(Standard.Cards()...).With(JokerCard(0)).With(JokerCard(1))
	if !full.Valid() {
		t.Error("full 54-card set should be valid")
	}
	if bad := CardSet(1) << SetSize; bad.Valid() {
		t.Error("bit outside the card space should be invalid")
	}
	if bad := full | CardSet(1)<<60; bad.Valid() {
		t.Error("stray high bit should be invalid")
	}
}

func TestCardSetCardsInIndexOrder(t *testing.T) {
	s := NewCardSet(NewCard(Clubs, Two), NewCard(Spades, Five), NewCard(Hearts, Jack))
	cards := s.Cards()
	for i := 1; i < len(cards); i++ {
		if cards[i-1].Index() >= cards[i].Index() {
			t.Fatalf("Cards() not in index order: %v", cards)
		}
	}
}
