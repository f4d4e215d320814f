package score

import "sort"

// Aggregate combines converted scores into the final numeric level:
// sort ascending, drop exactly one minimum and one maximum occurrence,
// and average the rest. With two or fewer scores everything is
// averaged. The result is insensitive to input order and bounded by
// the remaining values.
func Aggregate(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)

	if len(sorted) > 2 {
		sorted = sorted[1 : len(sorted)-1]
	}

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	return sum / float64(len(sorted))
}
