package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jeduden/cefrize/internal/analyzer"
)

// JSONFormatter outputs a report as a pretty-printed JSON object.
// Converted scores are serialized as two-decimal strings.
type JSONFormatter struct{}

// jsonReport fixes the key order: the estimated level first, then the
// per-metric scores.
type jsonReport struct {
	Level       string  `json:"CEFR-J_Level"`
	AvrDiff     string  `json:"AvrDiff_CEFR"`
	BperA       string  `json:"BperA_CEFR"`
	CVV1        string  `json:"CVV1_CEFR"`
	AvrFreqRank string  `json:"AvrFreqRank_CEFR"`
	ARI         string  `json:"ARI_CEFR"`
	VperSent    string  `json:"VperSent_CEFR"`
	POStypes    string  `json:"POStypes_CEFR"`
	LenNP       string  `json:"LenNP_CEFR"`
	Raw         map[string]float64 `json:"Raw_Metrics,omitempty"`
	Stats       *jsonStats         `json:"Text_Statistics,omitempty"`
}

type jsonStats struct {
	Words     int `json:"words"`
	Sentences int `json:"sentences"`
	Tokens    int `json:"tokens"`
}

type jsonWord struct {
	Level string `json:"CEFR_Level"`
}

// Format writes the report as JSON. A single-word report becomes a
// one-key object carrying the dictionary level of the word.
func (f *JSONFormatter) Format(w io.Writer, rep *analyzer.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if rep.SingleWord {
		return enc.Encode(jsonWord{Level: string(rep.WordLevel)})
	}

	out := jsonReport{
		Level:       rep.Level,
		AvrDiff:     score2(rep.Scores, "AvrDiff"),
		BperA:       score2(rep.Scores, "BperA"),
		CVV1:        score2(rep.Scores, "CVV1"),
		AvrFreqRank: score2(rep.Scores, "AvrFreqRank"),
		ARI:         score2(rep.Scores, "ARI"),
		VperSent:    score2(rep.Scores, "VperSent"),
		POStypes:    score2(rep.Scores, "POStypes"),
		LenNP:       score2(rep.Scores, "LenNP"),
		Raw:         rep.Raw,
	}
	if rep.Stats != nil {
		out.Stats = &jsonStats{
			Words:     rep.Stats.Words,
			Sentences: rep.Stats.Sentences,
			Tokens:    rep.Stats.Tokens,
		}
	}
	return enc.Encode(out)
}

func score2(scores map[string]float64, name string) string {
	return fmt.Sprintf("%.2f", scores[name])
}
