package main

type patternEntry struct {
	name  string
	shape []int8
	score float64
}

// Tactical motifs in the mover frame, strongest first. Scores accumulate
// additively across every window a shape appears in.
var attackPatterns = []patternEntry{
	{name: "Five", shape: []int8{1, 1, 1, 1, 1}, score: 100000},

	{name: "Open Four", shape: []int8{0, 1, 1, 1, 1, 0}, score: 50000},

	{name: "Four", shape: []int8{1, 1, 1, 1, 0}, score: 10000},
	{name: "Four", shape: []int8{0, 1, 1, 1, 1}, score: 10000},

	{name: "Open Three", shape: []int8{0, 1, 1, 1, 0}, score: 5000},
	{name: "Open Three", shape: []int8{0, 1, 0, 1, 1, 0}, score: 5000},
	{name: "Open Three", shape: []int8{0, 1, 1, 0, 1, 0}, score: 5000},

	{name: "Three", shape: []int8{1, 1, 1, 0, 0}, score: 1000},
	{name: "Three", shape: []int8{0, 0, 1, 1, 1}, score: 1000},

	{name: "Open Two", shape: []int8{0, 1, 1, 0}, score: 500},
	{name: "Open Two", shape: []int8{0, 1, 0, 1, 0}, score: 500},

	{name: "Two", shape: []int8{1, 1, 0, 0}, score: 100},
	{name: "Two", shape: []int8{0, 0, 1, 1}, score: 100},

	{name: "One", shape: []int8{0, 1, 0}, score: 10},
}

// defensePatterns is the same catalog expressed in the opponent's frame,
// derived once instead of negating shapes on every probe.
var defensePatterns = buildDefensePatterns(attackPatterns)

func buildDefensePatterns(entries []patternEntry) []patternEntry {
	out := make([]patternEntry, len(entries))
	for i, entry := range entries {
		shape := make([]int8, len(entry.shape))
		for j, v := range entry.shape {
			if v == 1 || v == -1 {
				shape[j] = -v
			} else {
				shape[j] = v
			}
		}
		out[i] = patternEntry{name: entry.name, shape: shape, score: entry.score}
	}
	return out
}

// matchShape reports whether shape occurs as a contiguous run anywhere in
// line. Exact equality, sliding window.
func matchShape(line, shape []int8) bool {
	if len(shape) > len(line) {
		return false
	}
	for start := 0; start+len(shape) <= len(line); start++ {
		match := true
		for i := range shape {
			if line[start+i] != shape[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
