package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lox/pokerenv/cmd/pokerenv/shared"
	"github.com/lox/pokerenv/internal/config"
	"github.com/lox/pokerenv/internal/deck"
	"github.com/lox/pokerenv/internal/env"
	"github.com/lox/pokerenv/internal/randutil"
	"github.com/lox/pokerenv/internal/simulator"
)

type PlayCmd struct {
	Variant  string   `default:"nlhe" help:"Variant name from the catalogue"`
	Seats    int      `default:"2" help:"Number of seats"`
	Seed     int64    `default:"0" help:"RNG seed (0 for time-based)"`
	Human    int      `default:"-1" help:"Seat played interactively from stdin (-1 for none)"`
	Policies []string `help:"Per-seat policy names: rand, call, fold (default rand)"`
	Config   string   `help:"Variants file" type:"path" default:"variants.hcl"`
	LogLevel string   `default:"warn" enum:"debug,info,warn,error" help:"Log level"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.LogLevel)

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	cat, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	ecfg, err := cat.Resolve(c.Variant, c.Seats)
	if err != nil {
		return err
	}
	ecfg.Render = env.RenderHuman

	policies, err := resolvePolicies(c.Policies, c.Seats)
	if err != nil {
		return err
	}

	e, err := env.New(ecfg, logger)
	if err != nil {
		return err
	}
	if err := e.Reset(c.Seed); err != nil {
		return err
	}

	fmt.Printf("%s, %d seats, seed %d\n", c.Variant, c.Seats, c.Seed)
	e.Render()

	rng := randutil.New(c.Seed)
	stdin := bufio.NewScanner(os.Stdin)
	for {
		agent := e.Selection
		if agent < 0 {
			break
		}
		var raw env.Envelope
		if agent == c.Human {
			raw, err = promptAction(stdin, e, agent)
			if err != nil {
				return err
			}
		} else {
			raw = policies[agent].Act(e, agent, rng)
		}
		if err := e.Step(raw); err != nil {
			return err
		}
	}

	for seat := 0; seat < c.Seats; seat++ {
		name := policies[seat].Name()
		if seat == c.Human {
			name = "you"
		}
		fmt.Printf("seat %d (%s): %+d\n", seat, name, e.Cumulative[seat])
	}
	return nil
}

// promptAction reads the human seat's action from stdin, re-prompting until
// the input parses. The environment itself penalizes actions that turn out
// to be illegal, so only structure is checked here.
func promptAction(stdin *bufio.Scanner, e *env.Env, agent int) (env.Envelope, error) {
	obs, err := e.Observe(agent)
	if err != nil {
		return env.Envelope{}, err
	}
	hand := obs.DownCards[agent].Cards()

	for {
		fmt.Printf("your cards: %s", deck.NewCardSet(hand...))
		if owe := e.CheckingOrCallingAmount(); owe > 0 {
			fmt.Printf("  (%d to call)", owe)
		}
		fmt.Println()
		fmt.Print("action [f=fold, c=check/call, r <size>, p=stand pat, d <card...>]: ")
		if !stdin.Scan() {
			return env.Envelope{}, fmt.Errorf("stdin closed")
		}
		fields := strings.Fields(stdin.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "f":
			return env.Fold().Envelope(), nil
		case "c":
			return env.CheckOrCall().Envelope(), nil
		case "r":
			if len(fields) != 2 {
				fmt.Println("usage: r <sizing menu index>")
				continue
			}
			i, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("sizing menu index must be a number")
				continue
			}
			return env.BetOrRaiseTo(i).Envelope(), nil
		case "p":
			return env.StandPatOrDiscard(0).Envelope(), nil
		case "d":
			// Discard by position in the displayed hand, 1-based.
			var discards deck.CardSet
			ok := true
			for _, f := range fields[1:] {
				pos, err := strconv.Atoi(f)
				if err != nil || pos < 1 || pos > len(hand) {
					fmt.Printf("card positions run 1..%d\n", len(hand))
					ok = false
					break
				}
				discards = discards.With(hand[pos-1])
			}
			if !ok {
				continue
			}
			return env.StandPatOrDiscard(discards).Envelope(), nil
		default:
			fmt.Println("unrecognized action")
		}
	}
}

// resolvePolicies expands the per-seat policy names, defaulting unnamed
// seats to the random baseline.
func resolvePolicies(names []string, seats int) ([]simulator.Policy, error) {
	policies := make([]simulator.Policy, seats)
	for seat := range policies {
		name := ""
		if seat < len(names) {
			name = names[seat]
		}
		p, ok := simulator.PolicyFromString(name)
		if !ok {
			return nil, fmt.Errorf("unknown policy %q (want rand, call or fold)", name)
		}
		policies[seat] = p
	}
	return policies, nil
}
