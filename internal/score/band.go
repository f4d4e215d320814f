package score

import "math"

// band is one left-closed/right-open interval of the CEFR-J table.
type band struct {
	upper float64
	label string
}

// bands reproduces the fixed CEFR-J boundary table. A score below a
// boundary maps to that band; the final interval is unbounded above.
var bands = []band{
	{0.5, "preA1"},
	{0.84, "A1.1"},
	{1.17, "A1.2"},
	{1.5, "A1.3"},
	{2.0, "A2.1"},
	{2.5, "A2.2"},
	{3.0, "B1.1"},
	{3.5, "B1.2"},
	{4.0, "B2.1"},
	{4.5, "B2.2"},
	{5.5, "C1"},
	{math.Inf(1), "C2"},
}

// BandLabels lists the twelve CEFR-J bands in ascending order.
func BandLabels() []string {
	out := make([]string, len(bands))
	for i, b := range bands {
		out[i] = b.label
	}
	return out
}

// Band maps an aggregated score to its CEFR-J band label.
func Band(score float64) string {
	for _, b := range bands {
		if score < b.upper {
			return b.label
		}
	}
	return "C2"
}
