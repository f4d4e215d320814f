// Command cefrize-server exposes the CEFR-J estimator as a JSON REST API.
//
// Endpoints:
//
//	POST /api/analyze   body: {"text":"...","detailed":true}
//	GET  /api/word?word=<word>
//	POST /api/unused    body: {"level":"B2","text":"..."}
//	GET  /api/words?level=<A1..C2>
package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/rs/cors"
	flag "github.com/spf13/pflag"

	"github.com/jeduden/cefrize/internal/analyzer"
	"github.com/jeduden/cefrize/internal/config"
	"github.com/jeduden/cefrize/internal/lexicon"
	vlog "github.com/jeduden/cefrize/internal/log"
	"github.com/jeduden/cefrize/internal/nlp/prose"
	"github.com/jeduden/cefrize/internal/output"
)

type wordResponse struct {
	Word  string `json:"word"`
	Level string `json:"CEFR_Level"`
}

type unusedResponse struct {
	Level string            `json:"level"`
	Words map[string]string `json:"words"`
}

type wordsResponse struct {
	Level string   `json:"level"`
	Words []string `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func handleAnalyze(a *analyzer.Analyzer) http.HandlerFunc {
	formatter := &output.JSONFormatter{}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text     string `json:"text"`
			Detailed bool   `json:"detailed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		var rep *analyzer.Report
		var err error
		if body.Detailed {
			rep, err = a.AnalyzeDetailed(body.Text)
		} else {
			rep, err = a.Analyze(body.Text)
		}
		if err != nil {
			var verr *analyzer.ValidationError
			if errors.As(err, &verr) {
				writeError(w, http.StatusUnprocessableEntity, verr.Error())
				return
			}
			log.Printf("analyze error: %v", err)
			writeError(w, http.StatusInternalServerError, "analysis failed")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := formatter.Format(w, rep); err != nil {
			log.Printf("encode error: %v", err)
		}
	}
}

func handleWord(a *analyzer.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}

		level, ok := a.WordLevel(word)
		status := http.StatusOK
		if !ok {
			status = http.StatusNotFound
		}
		writeJSON(w, status, wordResponse{Word: word, Level: string(level)})
	}
}

func handleUnused(a *analyzer.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Level string `json:"level"`
			Text  string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with non-empty 'level' and 'text' fields")
			return
		}
		level, err := lexicon.ParseLevel(body.Level)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		unused, err := a.UnusedWords(level, body.Text)
		if err != nil {
			log.Printf("unused-words error: %v", err)
			writeError(w, http.StatusInternalServerError, "analysis failed")
			return
		}
		writeJSON(w, http.StatusOK, unusedResponse{Level: string(level), Words: unused})
	}
}

func handleWords(a *analyzer.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		level, err := lexicon.ParseLevel(r.URL.Query().Get("level"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		entries := a.Lexicon.WordsByLevel(level)
		words := make([]string, 0, len(entries))
		for _, e := range entries {
			words = append(words, e.Base)
		}
		writeJSON(w, http.StatusOK, wordsResponse{Level: string(level), Words: words})
	}
}

func buildAnalyzer(cfg *config.Config) (*analyzer.Analyzer, error) {
	tiebreak := cfg.Tiebreak()

	var lx *lexicon.Lexicon
	var err error
	if cfg.Lexicon != "" {
		lx, err = lexicon.LoadLexicon(cfg.Lexicon, tiebreak)
	} else {
		lx, err = lexicon.EmbeddedLexicon(tiebreak)
	}
	if err != nil {
		return nil, err
	}

	var ft *lexicon.FrequencyTable
	if cfg.Frequencies != "" {
		ft, err = lexicon.LoadFrequencies(cfg.Frequencies)
	} else {
		ft, err = lexicon.EmbeddedFrequencies()
	}
	if err != nil {
		return nil, err
	}

	a := analyzer.New(prose.New(), lx, ft)
	a.MinWords = cfg.MinWords
	a.MaxWords = cfg.MaxWords
	return a, nil
}

func main() {
	var (
		addr       string
		configPath string
		origins    []string
		verbose    bool
	)
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVarP(&configPath, "config", "c", "", "config file path")
	flag.StringSliceVar(&origins, "allow-origin", []string{"*"}, "allowed CORS origins")
	flag.BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress")
	flag.Parse()

	cfg := config.Defaults()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	a, err := buildAnalyzer(cfg)
	if err != nil {
		log.Fatalf("loading lexical resources: %v", err)
	}
	a.Log = &vlog.Logger{Enabled: verbose, W: log.Writer()}
	log.Printf("dictionary loaded: %d entries", a.Lexicon.Len())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze", handleAnalyze(a))
	mux.HandleFunc("/api/word", handleWord(a))
	mux.HandleFunc("/api/unused", handleUnused(a))
	mux.HandleFunc("/api/words", handleWords(a))

	handler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)

	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
