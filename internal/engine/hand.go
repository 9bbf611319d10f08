package engine

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/pokerenv/internal/deck"
)

// hand is the concrete State implementation. One value per dealt hand.
type hand struct {
	cfg    Config
	logger *log.Logger
	deck   *deck.Deck

	stacks   []int
	starting []int
	bets     []int // current street only
	contribs []int // total chips committed to the pot, all streets
	statuses []bool

	down  [][]deck.Card
	up    [][]deck.Card
	board []deck.Card
	muck  []deck.Card // discarded cards, recyclable once the deck runs dry

	streetIdx  int
	actor      int
	discarder  int
	currentBet int
	raiseSize  int
	acted      []bool
	inProgress bool
}

// New deals a fresh hand: antes, blinds and the bring-in are posted
// automatically, the first street's cards are dealt, and the first pending
// action is established.
func New(cfg Config, rng *rand.Rand, logger *log.Logger) (State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &hand{
		cfg:        cfg,
		logger:     logger,
		deck:       deck.New(cfg.Deck, rng),
		stacks:     make([]int, cfg.Seats),
		starting:   make([]int, cfg.Seats),
		bets:       make([]int, cfg.Seats),
		contribs:   make([]int, cfg.Seats),
		statuses:   make([]bool, cfg.Seats),
		down:       make([][]deck.Card, cfg.Seats),
		up:         make([][]deck.Card, cfg.Seats),
		acted:      make([]bool, cfg.Seats),
		actor:      None,
		discarder:  None,
		inProgress: true,
	}
	copy(h.stacks, cfg.StartingStacks)
	copy(h.starting, cfg.StartingStacks)
	for i := range h.statuses {
		h.statuses[i] = true
	}

	h.postForcedBets()
	h.beginStreet()
	return h, nil
}

// postForcedBets commits antes (dead money), blinds or straddles (live bets)
// and the bring-in, each capped at the posting seat's stack.
func (h *hand) postForcedBets() {
	for seat, ante := range h.cfg.Antes {
		pay := min(ante, h.stacks[seat])
		h.stacks[seat] -= pay
		h.contribs[seat] += pay
	}
	for seat, blind := range h.cfg.Blinds {
		pay := min(blind, h.stacks[seat])
		h.stacks[seat] -= pay
		h.bets[seat] += pay
		h.contribs[seat] += pay
	}
	if h.cfg.BringIn > 0 {
		seat := h.bringInSeat()
		pay := min(h.cfg.BringIn, h.stacks[seat])
		h.stacks[seat] -= pay
		h.bets[seat] += pay
		h.contribs[seat] += pay
	}
}

func (h *hand) bringInSeat() int {
	return 0
}

// firstToAct returns the seat opening the first street's betting: after the
// bring-in poster when there is one, after the last blind otherwise.
func (h *hand) firstToAct() int {
	if h.cfg.BringIn > 0 {
		return h.nextSeat(h.bringInSeat())
	}
	last := -1
	for seat, blind := range h.cfg.Blinds {
		if blind > 0 {
			last = seat
		}
	}
	if last >= 0 {
		return h.nextSeat(last)
	}
	return 0
}

func (h *hand) nextSeat(seat int) int {
	return (seat + 1) % h.cfg.Seats
}

func (h *hand) street() Street {
	return h.cfg.Streets[h.streetIdx]
}

// effectiveMinBet is the opening bet size for the current street: the
// street's configured size, falling back to the largest blind, then 1.
func (h *hand) effectiveMinBet() int {
	if mb := h.street().MinBet; mb > 0 {
		return mb
	}
	mb := 0
	for _, blind := range h.cfg.Blinds {
		mb = max(mb, blind)
	}
	if mb == 0 {
		mb = 1
	}
	return mb
}

// beginStreet deals the street's cards and opens its draw or betting phase.
func (h *hand) beginStreet() {
	st := h.street()
	if st.BoardDeals > 0 {
		dealt := h.deck.Deal(st.BoardDeals)
		h.board = append(h.board, dealt...)
		h.logger.Debug("dealt board", "street", st.Label, "cards", deck.NewCardSet(dealt...).String())
	}
	for seat := 0; seat < h.cfg.Seats; seat++ {
		if !h.statuses[seat] {
			continue
		}
		if st.DownDeals > 0 {
			h.down[seat] = append(h.down[seat], h.deck.Deal(st.DownDeals)...)
		}
		if st.UpDeals > 0 {
			h.up[seat] = append(h.up[seat], h.deck.Deal(st.UpDeals)...)
		}
	}

	if st.Draw {
		h.discarder = h.firstDiscarder()
		if h.discarder != None {
			return
		}
	}
	h.startBetting()
}

// firstDiscarder returns the first contesting seat, which opens the draw
// round. All-in seats still draw.
func (h *hand) firstDiscarder() int {
	for seat := 0; seat < h.cfg.Seats; seat++ {
		if h.statuses[seat] {
			return seat
		}
	}
	return None
}

// startBetting opens the current street's betting round, skipping it when
// nobody can act (all-in fast-forward).
func (h *hand) startBetting() {
	h.discarder = None
	for i := range h.acted {
		h.acted[i] = false
	}
	if h.streetIdx == 0 {
		for _, b := range h.bets {
			h.currentBet = max(h.currentBet, b)
		}
	}
	h.raiseSize = h.effectiveMinBet()

	openers := 0
	for seat := 0; seat < h.cfg.Seats; seat++ {
		if h.statuses[seat] && h.stacks[seat] > 0 {
			openers++
		}
	}
	switch {
	case openers == 0:
		h.endStreet()
		return
	case openers == 1:
		// A lone seat with chips only acts when it owes a call.
		seat := h.loneOpener()
		if h.bets[seat] >= h.currentBet {
			h.endStreet()
			return
		}
		h.actor = seat
		return
	}

	start := 0
	if h.streetIdx == 0 {
		start = h.firstToAct()
	}
	h.actor = h.scanActor(start)
	if h.actor == None {
		h.endStreet()
	}
}

func (h *hand) loneOpener() int {
	for seat := 0; seat < h.cfg.Seats; seat++ {
		if h.statuses[seat] && h.stacks[seat] > 0 {
			return seat
		}
	}
	return None
}

// scanActor finds the next seat owing an action, starting at start inclusive
// and wrapping once around the table.
func (h *hand) scanActor(start int) int {
	for i := 0; i < h.cfg.Seats; i++ {
		seat := (start + i) % h.cfg.Seats
		if !h.statuses[seat] || h.stacks[seat] == 0 {
			continue
		}
		if !h.acted[seat] || h.bets[seat] < h.currentBet {
			return seat
		}
	}
	return None
}

// afterAction advances the pending action after a successful betting action.
func (h *hand) afterAction() {
	if h.contestants() <= 1 {
		h.settleByFold()
		return
	}
	next := h.scanActor(h.nextSeat(h.actor))
	if next == None {
		h.endStreet()
		return
	}
	h.actor = next
}

// endStreet sweeps street bets and advances to the next street or showdown.
func (h *hand) endStreet() {
	h.actor = None
	for i := range h.bets {
		h.bets[i] = 0
	}
	h.currentBet = 0
	h.streetIdx++
	if h.streetIdx >= len(h.cfg.Streets) {
		h.showdown()
		return
	}
	h.beginStreet()
}

func (h *hand) contestants() int {
	n := 0
	for _, s := range h.statuses {
		if s {
			n++
		}
	}
	return n
}

// settleByFold awards the entire pot to the last contesting seat.
func (h *hand) settleByFold() {
	h.actor = None
	h.discarder = None
	winner := h.firstDiscarder()
	pot := 0
	for _, c := range h.contribs {
		pot += c
	}
	h.stacks[winner] += pot
	h.inProgress = false
	h.logger.Debug("hand won by fold", "seat", winner, "pot", pot)
	h.checkConservation()
}

// showdown evaluates every contesting seat and distributes layered side pots.
func (h *hand) showdown() {
	h.actor = None
	h.discarder = None

	scores := make([]int64, h.cfg.Seats)
	for seat := 0; seat < h.cfg.Seats; seat++ {
		if !h.statuses[seat] {
			continue
		}
		cards := make([]deck.Card, 0, len(h.down[seat])+len(h.up[seat])+len(h.board))
		cards = append(cards, h.down[seat]...)
		cards = append(cards, h.up[seat]...)
		cards = append(cards, h.board...)
		scores[seat] = score(cards, h.cfg.HandType)
	}

	for _, layer := range layerPots(h.contribs, h.statuses) {
		winners := bestSeats(layer.eligible, scores)
		share := layer.amount / len(winners)
		odd := layer.amount % len(winners)
		for _, seat := range winners {
			h.stacks[seat] += share
			if odd > 0 {
				h.stacks[seat]++
				odd--
			}
		}
	}

	h.inProgress = false
	h.logger.Debug("hand resolved at showdown", "contestants", h.contestants())
	h.checkConservation()
}

// bestSeats returns the eligible seats holding the winning score.
func bestSeats(eligible []int, scores []int64) []int {
	best := scores[eligible[0]]
	for _, seat := range eligible[1:] {
		if scores[seat] > best {
			best = scores[seat]
		}
	}
	winners := make([]int, 0, len(eligible))
	for _, seat := range eligible {
		if scores[seat] == best {
			winners = append(winners, seat)
		}
	}
	return winners
}

// checkConservation verifies no chips were created or destroyed; a failure
// here is an engine bug, not a caller error.
func (h *hand) checkConservation() {
	before, after := 0, 0
	for seat := range h.stacks {
		before += h.starting[seat]
		after += h.stacks[seat]
	}
	if before != after {
		h.logger.Error("chip conservation violated", "before", before, "after", after)
	}
}

// --- read accessors ---

func (h *hand) ActorIndex() int {
	return h.actor
}

func (h *hand) StanderPatOrDiscarderIndex() int {
	return h.discarder
}

func (h *hand) CheckingOrCallingAmount() int {
	if h.actor == None {
		return 0
	}
	return min(h.currentBet-h.bets[h.actor], h.stacks[h.actor])
}

func (h *hand) CompletionBettingOrRaisingToAmounts() (int, int) {
	if h.actor == None {
		return 1, 0
	}
	a := h.actor
	allIn := h.bets[a] + h.stacks[a]
	if allIn <= h.currentBet {
		// Calling already puts the seat all in; raising is closed.
		return 1, 0
	}

	var lo, hi int
	em := h.effectiveMinBet()
	switch h.cfg.Betting {
	case FixedLimit:
		lo = h.currentBet + em
		hi = lo
	case PotLimit:
		// Maximum raise-to is the call total plus the pot as it stands
		// after the call. contribs already include the current street bets.
		pot := 0
		for _, c := range h.contribs {
			pot += c
		}
		call := h.currentBet - h.bets[a]
		lo = h.currentBet + h.raiseSize
		if h.currentBet == 0 {
			lo = em
		}
		hi = h.currentBet + pot + call
	default: // NoLimit
		lo = h.currentBet + h.raiseSize
		if h.currentBet == 0 {
			lo = em
		}
		hi = allIn
	}
	// An all-in below the minimum raise is still a legal completion.
	lo = min(lo, allIn)
	hi = min(hi, allIn)
	return lo, hi
}

func (h *hand) Stacks() []int {
	return append([]int(nil), h.stacks...)
}

func (h *hand) StartingStacks() []int {
	return append([]int(nil), h.starting...)
}

func (h *hand) Bets() []int {
	return append([]int(nil), h.bets...)
}

func (h *hand) PotContributions() []int {
	return append([]int(nil), h.contribs...)
}

func (h *hand) Statuses() []bool {
	return append([]bool(nil), h.statuses...)
}

func (h *hand) DownCards(seat int) []deck.Card {
	return append([]deck.Card(nil), h.down[seat]...)
}

func (h *hand) UpCards(seat int) []deck.Card {
	return append([]deck.Card(nil), h.up[seat]...)
}

func (h *hand) Board() []deck.Card {
	return append([]deck.Card(nil), h.board...)
}

func (h *hand) InProgress() bool {
	return h.inProgress
}

// --- action operations ---

func (h *hand) Fold() error {
	if h.actor == None {
		return illegal("fold", "no betting action pending")
	}
	h.statuses[h.actor] = false
	h.acted[h.actor] = true
	h.logger.Debug("fold", "seat", h.actor)
	h.afterAction()
	return nil
}

func (h *hand) CheckOrCall() error {
	if h.actor == None {
		return illegal("check or call", "no betting action pending")
	}
	owe := min(h.currentBet-h.bets[h.actor], h.stacks[h.actor])
	h.stacks[h.actor] -= owe
	h.bets[h.actor] += owe
	h.contribs[h.actor] += owe
	h.acted[h.actor] = true
	h.logger.Debug("check or call", "seat", h.actor, "amount", owe)
	h.afterAction()
	return nil
}

func (h *hand) CompleteBetOrRaiseTo(amount int) error {
	if h.actor == None {
		return illegal("bet or raise", "no betting action pending")
	}
	lo, hi := h.CompletionBettingOrRaisingToAmounts()
	if lo > hi {
		return illegal("bet or raise", "raising is closed for this seat")
	}
	if amount < lo || amount > hi {
		return illegal("bet or raise", "amount outside legal bounds")
	}
	if amount <= h.currentBet {
		return illegal("bet or raise", "amount does not exceed the current bet")
	}

	a := h.actor
	pay := amount - h.bets[a]
	h.stacks[a] -= pay
	h.bets[a] = amount
	h.contribs[a] += pay
	h.raiseSize = max(h.raiseSize, amount-h.currentBet)
	h.currentBet = amount
	for i := range h.acted {
		h.acted[i] = i == a
	}
	h.logger.Debug("bet or raise", "seat", a, "to", amount)
	h.afterAction()
	return nil
}

func (h *hand) StandPatOrDiscard(discards deck.CardSet) error {
	if h.discarder == None {
		return illegal("stand pat or discard", "no draw decision pending")
	}
	seat := h.discarder
	held := deck.NewCardSet(h.down[seat]...)
	for _, c := range discards.Cards() {
		if !held.Contains(c) {
			return illegal("stand pat or discard", "discarding a card the seat does not hold")
		}
	}

	if n := discards.Count(); n > 0 {
		// Late discarders can outrun the stub; earlier seats' discards go
		// back in before anyone is dealt a short hand.
		if h.deck.Remaining() < n && len(h.muck) > 0 {
			h.logger.Debug("recycling mucked discards", "count", len(h.muck))
			h.deck.Replenish(h.muck)
			h.muck = h.muck[:0]
		}
		if h.deck.Remaining() < n {
			return illegal("stand pat or discard", "not enough cards remain to replace the discards")
		}
		kept := h.down[seat][:0]
		for _, c := range h.down[seat] {
			if !discards.Contains(c) {
				kept = append(kept, c)
			}
		}
		h.down[seat] = append(kept, h.deck.Deal(n)...)
		h.muck = append(h.muck, discards.Cards()...)
		h.logger.Debug("discard", "seat", seat, "count", n)
	} else {
		h.logger.Debug("stand pat", "seat", seat)
	}

	for s := seat + 1; s < h.cfg.Seats; s++ {
		if h.statuses[s] {
			h.discarder = s
			return nil
		}
	}
	h.startBetting()
	return nil
}
