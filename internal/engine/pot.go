package engine

import "sort"

// potLayer is one slice of the pot: the chips between two contribution
// levels and the contesting seats entitled to win them.
type potLayer struct {
	amount   int
	eligible []int
}

// layerPots splits the total pot into main and side pots. Each distinct
// contribution level among contesting seats closes a layer; every seat's
// chips up to that level (folded seats' dead money included) fund it, and
// only contesting seats at or above the level may win it. A contesting
// seat's uncalled excess forms a final layer only it is eligible for, which
// returns the excess to its owner.
func layerPots(contribs []int, statuses []bool) []potLayer {
	levels := make([]int, 0, len(contribs))
	for seat, c := range contribs {
		if statuses[seat] && c > 0 {
			levels = append(levels, c)
		}
	}
	sort.Ints(levels)
	levels = dedupe(levels)

	layers := make([]potLayer, 0, len(levels))
	prev := 0
	for _, level := range levels {
		amount := 0
		for _, c := range contribs {
			amount += max(min(c, level)-prev, 0)
		}
		var eligible []int
		for seat, c := range contribs {
			if statuses[seat] && c >= level {
				eligible = append(eligible, seat)
			}
		}
		if amount > 0 {
			layers = append(layers, potLayer{amount: amount, eligible: eligible})
		}
		prev = level
	}
	return layers
}

func dedupe(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
