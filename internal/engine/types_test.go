package engine

import (
	"reflect"
	"testing"
)

func TestBroadcast(t *testing.T) {
	tests := []struct {
		name    string
		raw     []int
		n       int
		want    []int
		wantErr bool
	}{
		{name: "nil becomes zeros", raw: nil, n: 3, want: []int{0, 0, 0}},
		{name: "scalar repeats", raw: []int{5}, n: 3, want: []int{5, 5, 5}},
		{name: "full length passes through", raw: []int{1, 2, 3}, n: 3, want: []int{1, 2, 3}},
		{name: "bad length rejected", raw: []int{1, 2}, n: 3, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Broadcast(tt.raw, tt.n)
			if tt.wantErr {
				if !IsConfiguration(err) {
					t.Fatalf("expected a configuration error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Broadcast: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Streets:        []Street{{Label: "one", DownDeals: 2}},
			Antes:          []int{0, 0},
			Blinds:         []int{1, 2},
			StartingStacks: []int{100, 100},
			Seats:          2,
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one seat", func(c *Config) { c.Seats = 1 }},
		{"no streets", func(c *Config) { c.Streets = nil }},
		{"short blinds", func(c *Config) { c.Blinds = []int{1} }},
		{"negative ante", func(c *Config) { c.Antes = []int{-1, 0} }},
		{"empty stack", func(c *Config) { c.StartingStacks = []int{100, 0} }},
		{"negative bring-in", func(c *Config) { c.BringIn = -1 }},
		{"uneven trimmed antes", func(c *Config) { c.AnteTrimming = true; c.Antes = []int{1, 2} }},
		{"negative street min bet", func(c *Config) { c.Streets[0].MinBet = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !IsConfiguration(err) {
				t.Errorf("expected a configuration error, got %v", err)
			}
		})
	}
}

func TestEnumRoundTrips(t *testing.T) {
	for _, b := range []BettingStructure{NoLimit, FixedLimit, PotLimit} {
		got, ok := BettingStructureFromString(b.String())
		if !ok || got != b {
			t.Errorf("betting structure %v did not round-trip", b)
		}
	}
	for _, h := range []HandType{High, DeuceToSevenLow} {
		got, ok := HandTypeFromString(h.String())
		if !ok || got != h {
			t.Errorf("hand type %v did not round-trip", h)
		}
	}
	if _, ok := BettingStructureFromString("bogus"); ok {
		t.Error("unknown betting structure accepted")
	}
}
