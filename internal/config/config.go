// Package config loads the variant catalogue: named poker variants declared
// in HCL and resolved into environment configurations.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerenv/internal/deck"
	"github.com/lox/pokerenv/internal/engine"
	"github.com/lox/pokerenv/internal/env"
)

// Catalogue is the decoded form of a variants file.
type Catalogue struct {
	Variants []Variant `hcl:"variant,block"`
}

// Variant declares one playable game variant.
type Variant struct {
	Name           string        `hcl:"name,label"`
	Deck           string        `hcl:"deck,optional"`
	HandType       string        `hcl:"hand_type,optional"`
	Betting        string        `hcl:"betting"`
	AnteTrimming   bool          `hcl:"ante_trimming,optional"`
	Antes          []int         `hcl:"antes,optional"`
	Blinds         []int         `hcl:"blinds,optional"`
	BringIn        int           `hcl:"bring_in,optional"`
	StartingStacks []int         `hcl:"starting_stacks"`
	SizingMenu     []int         `hcl:"sizing_menu,optional"`
	IllegalPenalty int           `hcl:"illegal_penalty,optional"`
	Streets        []StreetBlock `hcl:"street,block"`
}

// StreetBlock declares one street of a variant.
type StreetBlock struct {
	Name       string `hcl:"name,label"`
	DownDeals  int    `hcl:"down_deals,optional"`
	UpDeals    int    `hcl:"up_deals,optional"`
	BoardDeals int    `hcl:"board_deals,optional"`
	Draw       bool   `hcl:"draw,optional"`
	MinBet     int    `hcl:"min_bet,optional"`
}

// DefaultCatalogue returns the built-in variants used when no variants file
// is present.
func DefaultCatalogue() *Catalogue {
	return &Catalogue{
		Variants: []Variant{
			{
				Name:           "nlhe",
				Betting:        "no-limit",
				Blinds:         []int{1, 2},
				StartingStacks: []int{200},
				SizingMenu:     []int{4, 6, 8, 12, 16, 24, 32, 48, 64, 96, 128, 200},
				Streets: []StreetBlock{
					{Name: "preflop", DownDeals: 2},
					{Name: "flop", BoardDeals: 3},
					{Name: "turn", BoardDeals: 1},
					{Name: "river", BoardDeals: 1},
				},
			},
			{
				Name:           "fixed-limit-stud",
				Betting:        "fixed-limit",
				Antes:          []int{1},
				AnteTrimming:   true,
				BringIn:        1,
				StartingStacks: []int{100},
				SizingMenu:     []int{2, 3, 4, 5, 6, 7, 8, 12},
				Streets: []StreetBlock{
					{Name: "third", DownDeals: 2, UpDeals: 1, MinBet: 2},
					{Name: "fourth", UpDeals: 1, MinBet: 2},
					{Name: "fifth", UpDeals: 1, MinBet: 4},
					{Name: "sixth", UpDeals: 1, MinBet: 4},
					{Name: "seventh", DownDeals: 1, MinBet: 4},
				},
			},
			{
				Name:           "single-draw-lowball",
				HandType:       "deuce-to-seven-low",
				Betting:        "no-limit",
				Blinds:         []int{1, 2},
				StartingStacks: []int{100},
				SizingMenu:     []int{4, 8, 16, 32, 64, 100},
				Streets: []StreetBlock{
					{Name: "predraw", DownDeals: 5},
					{Name: "draw", Draw: true},
				},
			},
		},
	}
}

// Load reads a variants file. A missing file yields the default catalogue.
func Load(filename string) (*Catalogue, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultCatalogue(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cat Catalogue
	diags = gohcl.DecodeBody(file.Body, nil, &cat)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks every variant for the problems the resolver cannot express.
func (c *Catalogue) Validate() error {
	if len(c.Variants) == 0 {
		return fmt.Errorf("at least one variant must be configured")
	}
	seen := make(map[string]bool, len(c.Variants))
	for _, v := range c.Variants {
		if seen[v.Name] {
			return fmt.Errorf("variant %s: declared more than once", v.Name)
		}
		seen[v.Name] = true
		if len(v.Streets) == 0 {
			return fmt.Errorf("variant %s: at least one street is required", v.Name)
		}
		if len(v.StartingStacks) == 0 {
			return fmt.Errorf("variant %s: starting stacks are required", v.Name)
		}
		if _, ok := engine.BettingStructureFromString(v.Betting); !ok {
			return fmt.Errorf("variant %s: unknown betting structure %q", v.Name, v.Betting)
		}
		if _, ok := engine.HandTypeFromString(v.HandType); !ok {
			return fmt.Errorf("variant %s: unknown hand type %q", v.Name, v.HandType)
		}
		if _, ok := deck.SpecFromString(v.Deck); !ok {
			return fmt.Errorf("variant %s: unknown deck %q", v.Name, v.Deck)
		}
	}
	return nil
}

// Names lists the catalogue's variant names in declaration order.
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.Variants))
	for i, v := range c.Variants {
		names[i] = v.Name
	}
	return names
}

// Find returns the named variant, or nil.
func (c *Catalogue) Find(name string) *Variant {
	for i := range c.Variants {
		if c.Variants[i].Name == name {
			return &c.Variants[i]
		}
	}
	return nil
}

// Resolve builds the environment configuration for the named variant at the
// given seat count.
func (c *Catalogue) Resolve(name string, seats int) (env.Config, error) {
	v := c.Find(name)
	if v == nil {
		return env.Config{}, fmt.Errorf("unknown variant %q (have %v)", name, c.Names())
	}
	return v.Resolve(seats)
}

// Resolve builds the environment configuration for this variant.
func (v *Variant) Resolve(seats int) (env.Config, error) {
	spec, ok := deck.SpecFromString(v.Deck)
	if !ok {
		return env.Config{}, fmt.Errorf("variant %s: unknown deck %q", v.Name, v.Deck)
	}
	ht, ok := engine.HandTypeFromString(v.HandType)
	if !ok {
		return env.Config{}, fmt.Errorf("variant %s: unknown hand type %q", v.Name, v.HandType)
	}
	betting, ok := engine.BettingStructureFromString(v.Betting)
	if !ok {
		return env.Config{}, fmt.Errorf("variant %s: unknown betting structure %q", v.Name, v.Betting)
	}

	// Blind lists name the posting seats from the front of the table;
	// remaining seats post nothing.
	blinds := v.Blinds
	if len(blinds) > 1 && len(blinds) < seats {
		padded := make([]int, seats)
		copy(padded, blinds)
		blinds = padded
	}

	streets := make([]engine.Street, len(v.Streets))
	for i, s := range v.Streets {
		streets[i] = engine.Street{
			Label:      s.Name,
			DownDeals:  s.DownDeals,
			UpDeals:    s.UpDeals,
			BoardDeals: s.BoardDeals,
			Draw:       s.Draw,
			MinBet:     s.MinBet,
		}
	}

	return env.Config{
		Deck:           spec,
		HandType:       ht,
		Streets:        streets,
		Betting:        betting,
		AnteTrimming:   v.AnteTrimming,
		Antes:          v.Antes,
		Blinds:         blinds,
		BringIn:        v.BringIn,
		StartingStacks: v.StartingStacks,
		Seats:          seats,
		SizingMenu:     v.SizingMenu,
		IllegalPenalty: v.IllegalPenalty,
	}, nil
}
