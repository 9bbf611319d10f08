// Package simulator drives batches of environment episodes with baseline
// policies and aggregates per-seat results.
package simulator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerenv/internal/env"
	"github.com/lox/pokerenv/internal/randutil"
)

// stepLimit bounds the steps of a single episode; exceeding it means a
// policy or the turn loop is stuck.
const stepLimit = 10_000

// Config holds configuration for running simulations
type Config struct {
	Env      env.Config
	Policies []Policy // one per seat
	Episodes int
	Seed     int64
	Workers  int
	Logger   *log.Logger
	Clock    quartz.Clock
}

// SeatResult aggregates one seat's outcomes across a batch.
type SeatResult struct {
	Policy    string
	NetChips  int
	Penalties int
}

// Result is the outcome of a batch run.
type Result struct {
	Episodes int
	Seats    []SeatResult
	Elapsed  time.Duration
}

// Simulator runs environment episodes in parallel
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Episodes <= 0 {
		return nil, fmt.Errorf("episodes must be positive, got %d", config.Episodes)
	}
	if len(config.Policies) != config.Env.Seats {
		return nil, fmt.Errorf("have %d policies for %d seats", len(config.Policies), config.Env.Seats)
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}, nil
}

// Run executes the batch and returns aggregated per-seat results. Workers
// play disjoint episodes on independent environment instances, so a given
// (seed, episode) pair replays identically at any worker count.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	start := s.config.Clock.Now()

	result := &Result{
		Episodes: s.config.Episodes,
		Seats:    make([]SeatResult, s.config.Env.Seats),
	}
	for seat := range result.Seats {
		result.Seats[seat].Policy = s.config.Policies[seat].Name()
	}

	episodes := make(chan int)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(episodes)
		for ep := 0; ep < s.config.Episodes; ep++ {
			select {
			case episodes <- ep:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < s.config.Workers; w++ {
		g.Go(func() error {
			e, err := env.New(s.config.Env, s.config.Logger)
			if err != nil {
				return err
			}
			local := make([]SeatResult, s.config.Env.Seats)
			for ep := range episodes {
				if err := s.playEpisode(e, ep, local); err != nil {
					return fmt.Errorf("episode %d: %w", ep, err)
				}
			}
			mu.Lock()
			for seat := range local {
				result.Seats[seat].NetChips += local[seat].NetChips
				result.Seats[seat].Penalties += local[seat].Penalties
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Elapsed = s.config.Clock.Since(start)
	return result, nil
}

// playEpisode runs one hand to completion and folds its rewards into local.
func (s *Simulator) playEpisode(e *env.Env, episode int, local []SeatResult) error {
	if err := e.Reset(s.config.Seed + int64(episode)); err != nil {
		return err
	}
	rng := randutil.ForEpisode(s.config.Seed, episode)

	penalties := 0
	for step := 0; ; step++ {
		if step >= stepLimit {
			return fmt.Errorf("no progress after %d steps", stepLimit)
		}
		agent := e.Selection
		if agent < 0 {
			break
		}
		raw := s.config.Policies[agent].Act(e, agent, rng)
		before := e.Cumulative[agent]
		if err := e.Step(raw); err != nil {
			return err
		}
		if e.Cumulative[agent] < before && !e.Terminations[agent] {
			local[agent].Penalties++
			penalties += e.Cumulative[agent] - before
		}
	}

	// The terminal rewards transfer chips between seats and must net to
	// zero; only penalties may push the episode total below that.
	total := 0
	for seat := range local {
		local[seat].NetChips += e.Cumulative[seat]
		total += e.Cumulative[seat]
	}
	if total != penalties {
		return fmt.Errorf("chip conservation violated: rewards sum to %d with %d from penalties", total, penalties)
	}
	return nil
}

// PrintSummary prints a per-seat summary of batch results.
func PrintSummary(r *Result) {
	fmt.Printf("episodes: %d  elapsed: %s\n", r.Episodes, r.Elapsed)
	for seat, sr := range r.Seats {
		perEpisode := float64(sr.NetChips) / float64(r.Episodes)
		fmt.Printf("seat %d (%s): net %+d chips (%+.3f/episode), %d penalties\n",
			seat, sr.Policy, sr.NetChips, perEpisode, sr.Penalties)
	}
}
