// Package score converts raw metric values to the common CEFR scale,
// aggregates them with an outlier-trimmed average, and maps the result
// to one of the twelve CEFR-J bands.
package score

import "fmt"

// MaxScore caps every converted score. There is no lower cap.
const MaxScore = 7.0

// Coefficients is one fixed affine regression: converted = raw*Slope + Intercept.
type Coefficients struct {
	Slope     float64
	Intercept float64
}

// regressions holds the fixed per-metric coefficients derived from
// prior corpus analysis. These are constants, not tunables.
var regressions = map[string]Coefficients{
	"CVV1":        {1.1059, -1.208},
	"BperA":       {13.146, 0.428},
	"POStypes":    {1.768, -12.006},
	"ARI":         {0.607, -1.632},
	"AvrDiff":     {6.417, -7.184},
	"AvrFreqRank": {0.004, -0.608},
	"VperSent":    {2.203, -2.486},
	"LenNP":       {2.629, -6.697},
}

// Convert applies the metric's regression to a raw value and caps the
// result at MaxScore.
func Convert(metric string, raw float64) (float64, error) {
	c, ok := regressions[metric]
	if !ok {
		return 0, fmt.Errorf("unknown metric %q", metric)
	}
	v := raw*c.Slope + c.Intercept
	if v > MaxScore {
		v = MaxScore
	}
	return v, nil
}

// ConvertAll converts every raw metric value in the map.
func ConvertAll(raw map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for name, v := range raw {
		converted, err := Convert(name, v)
		if err != nil {
			return nil, err
		}
		out[name] = converted
	}
	return out, nil
}
