package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jeduden/cefrize/internal/analyzer"
	"github.com/jeduden/cefrize/internal/metrics"
)

// TextFormatter outputs a report in human-readable text format.
// When Color is true, the estimated level is printed in cyan.
type TextFormatter struct {
	Color bool
}

// Format writes the estimated level followed by one line per metric
// score, aligned in columns.
func (f *TextFormatter) Format(w io.Writer, rep *analyzer.Report) error {
	if rep.SingleWord {
		if rep.WordLevel == "" {
			_, err := fmt.Fprintln(w, "word not found in dictionary")
			return err
		}
		_, err := fmt.Fprintf(w, "CEFR level: %s\n", f.colored(string(rep.WordLevel)))
		return err
	}

	if _, err := fmt.Fprintf(w, "CEFR-J level: %s\n", f.colored(rep.Level)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range metrics.Names() {
		fmt.Fprintf(tw, "  %s\t%.2f", name, rep.Scores[name])
		if rep.Raw != nil {
			fmt.Fprintf(tw, "\t(raw %.4f)", rep.Raw[name])
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if rep.Stats != nil {
		if _, err := fmt.Fprintf(w, "  %d words, %d sentences, %d tokens\n",
			rep.Stats.Words, rep.Stats.Sentences, rep.Stats.Tokens); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) colored(s string) string {
	if !f.Color {
		return s
	}
	return "\033[36m" + s + "\033[0m"
}
