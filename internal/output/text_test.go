package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jeduden/cefrize/internal/analyzer"
	"github.com/jeduden/cefrize/internal/metrics"
)

func TestTextFormatter_LevelAndMetricLines(t *testing.T) {
	f := &TextFormatter{}
	var buf bytes.Buffer

	if err := f.Format(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "CEFR-J level: B1.1") {
		t.Errorf("missing level line:\n%s", out)
	}
	for _, name := range metrics.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("missing metric %s:\n%s", name, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("color codes present without Color set")
	}
}

func TestTextFormatter_Color(t *testing.T) {
	f := &TextFormatter{Color: true}
	var buf bytes.Buffer

	if err := f.Format(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\033[36mB1.1\033[0m") {
		t.Errorf("level not colored:\n%q", buf.String())
	}
}

func TestTextFormatter_SingleWord(t *testing.T) {
	f := &TextFormatter{}
	var buf bytes.Buffer

	rep := &analyzer.Report{SingleWord: true, WordLevel: "A1"}
	if err := f.Format(&buf, rep); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "CEFR level: A1") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if err := f.Format(&buf, &analyzer.Report{SingleWord: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "not found") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestTextFormatter_DetailedRawColumn(t *testing.T) {
	f := &TextFormatter{}
	var buf bytes.Buffer

	rep := sampleReport()
	rep.Raw = map[string]float64{"ARI": 7.4052}
	rep.Stats = &analyzer.TextStats{Words: 120, Sentences: 8, Tokens: 131}
	if err := f.Format(&buf, rep); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "raw 7.4052") {
		t.Errorf("missing raw value:\n%s", out)
	}
	if !strings.Contains(out, "120 words, 8 sentences, 131 tokens") {
		t.Errorf("missing stats line:\n%s", out)
	}
}
