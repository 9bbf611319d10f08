// Package env exposes a poker hand as a turn-based multi-agent environment:
// seats are agents, exactly one of which may act at a time, and terminal
// rewards equal each seat's net chip change. The poker rules themselves live
// behind the engine.State interface; this package only coordinates turns,
// translates and validates actions, and encodes per-seat observations.
package env

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerenv/internal/aec"
	"github.com/lox/pokerenv/internal/engine"
	"github.com/lox/pokerenv/internal/randutil"
)

var (
	// ErrResetRequired is returned by Step and Observe before the first Reset.
	ErrResetRequired = errors.New("env: reset required")
	// ErrEpisodeComplete is returned by Step once every agent has finished.
	ErrEpisodeComplete = errors.New("env: episode complete")
	// ErrUnknownAgent is returned by Observe for a seat outside the roster.
	ErrUnknownAgent = errors.New("env: unknown agent")
)

// Env is the turn-coordinator environment. It embeds the AEC bookkeeping
// core and owns the engine state exclusively through its adapter; nothing
// else may hold or mutate the live hand.
type Env struct {
	*aec.Core

	cfg     Config
	ecfg    engine.Config
	factory engine.Factory
	logger  *log.Logger

	ad        adapter
	obs       []Observation
	started   bool
	rewarded  bool
	renderOut io.Writer
}

// New creates an environment backed by the real rules engine.
func New(cfg Config, logger *log.Logger) (*Env, error) {
	return NewWithFactory(cfg, engine.New, logger)
}

// NewWithFactory creates an environment backed by any engine factory,
// letting tests drive the coordinator against a fake engine.
func NewWithFactory(cfg Config, factory engine.Factory, logger *log.Logger) (*Env, error) {
	cfg = cfg.withDefaults()
	ecfg, err := cfg.engineConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Env{
		Core:      aec.NewCore(cfg.Seats),
		cfg:       cfg,
		ecfg:      ecfg,
		factory:   factory,
		logger:    logger,
		obs:       make([]Observation, cfg.Seats),
		renderOut: os.Stdout,
	}, nil
}

// Config returns the construction-time configuration with defaults applied.
func (e *Env) Config() Config {
	return e.cfg
}

// ActionCount is the size of the action enumeration: the three fixed
// actions plus one per sizing-menu entry.
func (e *Env) ActionCount() int {
	return IndexBetOrRaiseBase + len(e.cfg.SizingMenu)
}

// Reset discards any prior hand, deals a fresh one seeded from seed, resets
// all bookkeeping to neutral and establishes the first agent selection.
func (e *Env) Reset(seed int64) error {
	st, err := e.factory(e.ecfg, randutil.New(seed), e.logger)
	if err != nil {
		return err
	}
	e.ad.state = st
	e.Core.Reset()
	e.rewarded = false
	e.started = true
	e.settle()
	return nil
}

// Step applies the selected agent's action.
//
// A malformed envelope or a currently-illegal action never fails the
// episode: the acting seat earns the configured penalty, the engine state
// is left untouched, and the same seat keeps the turn. Only engine
// creation bugs or stepping outside an episode surface as errors.
func (e *Env) Step(raw Envelope) error {
	if !e.started {
		return ErrResetRequired
	}
	agent := e.Selection
	if agent == aec.None {
		return ErrEpisodeComplete
	}
	if e.Done(agent) {
		// Dead-step convention. The engine finishes every seat at once,
		// at which point Selection is already None, so this branch is
		// reached only when the caller truncates a seat itself.
		e.DeadStep()
		return nil
	}

	e.ClearRewards()
	act, err := decodeAction(raw, len(e.cfg.SizingMenu))
	if err == nil {
		err = e.ad.apply(act, e.cfg.SizingMenu)
	}
	switch {
	case err == nil:
		e.settle()
	case errors.Is(err, ErrMalformedAction) || engine.IsIllegalAction(err):
		e.Rewards[agent] = e.cfg.IllegalPenalty
		e.AccumulateRewards()
		e.logger.Debug("action penalized", "agent", agent, "reason", err)
	default:
		return err
	}

	if e.cfg.Render == RenderHuman {
		e.Render()
	}
	return nil
}

// settle is the shared selection-and-settlement procedure run after reset
// and after every successful transition: broadcast terminal rewards once
// when the hand has ended, recompute the agent selection, fold rewards into
// the episode totals, and refresh every seat's observation snapshot.
func (e *Env) settle() {
	if !e.ad.state.InProgress() && !e.rewarded {
		stacks := e.ad.state.Stacks()
		starting := e.ad.state.StartingStacks()
		for _, agent := range e.Agents {
			e.Rewards[agent] = stacks[agent] - starting[agent]
		}
		e.TerminateAll()
		e.rewarded = true
		e.logger.Debug("hand complete", "rewards", e.Rewards)
	}
	e.Selection = e.ad.mover()
	e.AccumulateRewards()
	for _, agent := range e.PossibleAgents {
		e.obs[agent] = buildObservation(e.ad.state, agent, e.cfg.Seats, e.cfg.ChipLadder)
	}
}

// Observe returns agent's most recent observation snapshot. Repeated calls
// with no intervening transition return identical records.
func (e *Env) Observe(agent int) (Observation, error) {
	if !e.started {
		return Observation{}, ErrResetRequired
	}
	if !e.Rostered(agent) {
		return Observation{}, ErrUnknownAgent
	}
	return e.obs[agent], nil
}

// LegalActions enumerates the actions the selected agent may currently take.
// Nil when no agent is required to act.
func (e *Env) LegalActions() []Action {
	if !e.started || e.Selection == aec.None {
		return nil
	}
	if e.ad.state.StanderPatOrDiscarderIndex() != engine.None {
		return []Action{StandPatOrDiscard(0)}
	}
	actions := []Action{Fold(), CheckOrCall()}
	lo, hi := e.ad.state.CompletionBettingOrRaisingToAmounts()
	for i, amount := range e.cfg.SizingMenu {
		if amount >= lo && amount <= hi {
			actions = append(actions, BetOrRaiseTo(i))
		}
	}
	return actions
}

// CheckingOrCallingAmount is the chips the selected agent must put in to
// call; zero when a check is available or nobody is acting.
func (e *Env) CheckingOrCallingAmount() int {
	if !e.started {
		return 0
	}
	return e.ad.state.CheckingOrCallingAmount()
}
