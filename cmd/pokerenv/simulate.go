package main

import (
	"runtime"
	"time"

	"github.com/lox/pokerenv/cmd/pokerenv/shared"
	"github.com/lox/pokerenv/internal/config"
	"github.com/lox/pokerenv/internal/simulator"
)

type SimulateCmd struct {
	Variant  string   `default:"nlhe" help:"Variant name from the catalogue"`
	Seats    int      `default:"2" help:"Number of seats"`
	Episodes int      `default:"10000" help:"Number of hands to play"`
	Seed     int64    `default:"0" help:"RNG seed (0 for time-based)"`
	Workers  int      `default:"0" help:"Parallel workers (0 for GOMAXPROCS)"`
	Policies []string `help:"Per-seat policy names: rand, call, fold (default rand)"`
	Config   string   `help:"Variants file" type:"path" default:"variants.hcl"`
	LogLevel string   `default:"warn" enum:"debug,info,warn,error" help:"Log level"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.LogLevel)
	ctx := shared.SetupSignalHandler(logger)

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}

	cat, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	ecfg, err := cat.Resolve(c.Variant, c.Seats)
	if err != nil {
		return err
	}

	policies, err := resolvePolicies(c.Policies, c.Seats)
	if err != nil {
		return err
	}

	sim, err := simulator.New(simulator.Config{
		Env:      ecfg,
		Policies: policies,
		Episodes: c.Episodes,
		Seed:     c.Seed,
		Workers:  c.Workers,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	result, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	simulator.PrintSummary(result)
	return nil
}
