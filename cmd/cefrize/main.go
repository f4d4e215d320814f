package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	flag "github.com/spf13/pflag"

	"github.com/jeduden/cefrize/internal/analyzer"
	"github.com/jeduden/cefrize/internal/config"
	"github.com/jeduden/cefrize/internal/lexicon"
	vlog "github.com/jeduden/cefrize/internal/log"
	"github.com/jeduden/cefrize/internal/metrics"
	"github.com/jeduden/cefrize/internal/nlp/prose"
	"github.com/jeduden/cefrize/internal/output"
	"github.com/jeduden/cefrize/internal/plaintext"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: cefrize <command> [flags] [files...]

Commands:
  analyze   Estimate the CEFR-J level of English text (default)
  word      Look up the CEFR level of a single word
  unused    List dictionary words of a level not used in a text
  words     List dictionary words by CEFR level
  metrics   List the readability metrics and what they measure
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'cefrize <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		// No subcommand: analyze stdin if piped, else print usage.
		if isStdinPipe() {
			return runAnalyze(nil)
		}
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "analyze":
		return runAnalyze(os.Args[2:])
	case "word":
		return runWord(os.Args[2:])
	case "unused":
		return runUnused(os.Args[2:])
	case "words":
		return runWords(os.Args[2:])
	case "metrics":
		return runMetrics(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		// Treat a path-looking first argument as implicit analyze.
		if strings.HasPrefix(first, "-") {
			fmt.Fprintf(os.Stderr, "cefrize: unknown flag %q\n\n%s", first, usageText)
			return 2
		}
		if _, err := os.Stat(first); err == nil {
			return runAnalyze(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "cefrize: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("cefrize %s\n", version)
}

// runAnalyze implements the "analyze" subcommand: estimate the CEFR-J
// level of each input text.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var (
		configPath string
		format     string
		detailed   bool
		noColor    bool
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVarP(&detailed, "detailed", "d", false, "Include raw metric values and text statistics")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show pipeline progress on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cefrize analyze [flags] [files...]\n\n"+
			"Estimate the CEFR-J difficulty level of English text.\n\n"+
			"Files can be paths or glob patterns (** matches directories).\n"+
			"Markdown files (*.md) are converted to plain text first.\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := &vlog.Logger{Enabled: verbose, W: os.Stderr}

	cfg, cfgPath, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	a, err := buildAnalyzer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}

	formatter := pickFormatter(format, noColor)

	fileArgs := fs.Args()
	if len(fileArgs) == 0 {
		if !isStdinPipe() {
			fmt.Fprintf(os.Stderr, "cefrize: no input (pass files or pipe text to stdin)\n")
			return 2
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cefrize: reading stdin: %v\n", err)
			return 2
		}
		return analyzeOne(a, formatter, string(source), detailed)
	}

	files, err := resolveFiles(fileArgs, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		return 0
	}

	exit := 0
	for _, path := range files {
		text, err := readInput(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
			exit = max(exit, 2)
			continue
		}
		if len(files) > 1 {
			fmt.Printf("%s:\n", path)
		}
		exit = max(exit, analyzeOne(a, formatter, text, detailed))
	}
	return exit
}

func analyzeOne(a *analyzer.Analyzer, formatter output.Formatter, text string, detailed bool) int {
	var rep *analyzer.Report
	var err error
	if detailed {
		rep, err = a.AnalyzeDetailed(text)
	} else {
		rep, err = a.Analyze(text)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		var verr *analyzer.ValidationError
		if errors.As(err, &verr) {
			return 1
		}
		return 2
	}
	if err := formatter.Format(os.Stdout, rep); err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: error writing output: %v\n", err)
		return 2
	}
	return 0
}

// runWord implements the "word" subcommand: dictionary lookup of one
// word, falling back to its lemma.
func runWord(args []string) int {
	fs := flag.NewFlagSet("word", flag.ContinueOnError)
	var (
		configPath string
		format     string
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cefrize word [flags] <word>\n\n"+
			"Look up the CEFR level of a single English word.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}
	a, err := buildAnalyzer(cfg, &vlog.Logger{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}

	level, _ := a.WordLevel(fs.Arg(0))
	rep := &analyzer.Report{SingleWord: true, WordLevel: level}
	if err := pickFormatter(format, true).Format(os.Stdout, rep); err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: error writing output: %v\n", err)
		return 2
	}
	if level == "" {
		return 1
	}
	return 0
}

// runUnused implements the "unused" subcommand: dictionary words of a
// level that a text does not use.
func runUnused(args []string) int {
	fs := flag.NewFlagSet("unused", flag.ContinueOnError)
	var (
		configPath string
		levelStr   string
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&levelStr, "level", "l", "", "CEFR level to query (A1..C2)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cefrize unused --level <A1..C2> [files...]\n\n"+
			"List dictionary words of the given level that the text does not use.\n"+
			"With no file arguments, reads the text from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level, err := lexicon.ParseLevel(levelStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}

	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}
	a, err := buildAnalyzer(cfg, &vlog.Logger{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}

	text, code := gatherText(fs.Args(), cfg)
	if code != 0 {
		return code
	}

	unused, err := a.UnusedWords(level, text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}

	bases := make([]string, 0, len(unused))
	for base := range unused {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	for _, base := range bases {
		fmt.Printf("%-24s %s\n", base, unused[base])
	}
	return 0
}

// runWords implements the "words" subcommand: dump the dictionary at a
// level, or per-level entry counts without one.
func runWords(args []string) int {
	fs := flag.NewFlagSet("words", flag.ContinueOnError)
	var (
		configPath string
		levelStr   string
	)
	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&levelStr, "level", "l", "", "CEFR level to list (A1..C2); omit for counts")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cefrize words [--level <A1..C2>]\n\n"+
			"List dictionary words at a CEFR level, or entry counts per level.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}
	a, err := buildAnalyzer(cfg, &vlog.Logger{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}

	if levelStr == "" {
		counts := a.Lexicon.GroupedCounts()
		for _, level := range lexicon.Levels {
			fmt.Printf("%-4s %d\n", level, counts[level])
		}
		return 0
	}

	level, err := lexicon.ParseLevel(levelStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return 2
	}
	for _, e := range a.Lexicon.WordsByLevel(level) {
		fmt.Printf("%-24s %s\n", e.Base, e.POS)
	}
	return 0
}

// runMetrics lists the metric registry.
func runMetrics(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "cefrize: metrics takes no arguments\n")
		return 2
	}
	for _, def := range metrics.All() {
		fmt.Printf("%-12s %s\n", def.Name, def.Description)
	}
	return 0
}

// pickFormatter maps a --format value to a Formatter; anything but
// "json" falls back to text.
func pickFormatter(format string, noColor bool) output.Formatter {
	if format == "json" {
		return &output.JSONFormatter{}
	}
	return &output.TextFormatter{Color: !noColor}
}

// buildAnalyzer assembles the pipeline from configuration: lexical
// resources (configured paths or the embedded defaults) and the prose
// parser.
func buildAnalyzer(cfg *config.Config, logger *vlog.Logger) (*analyzer.Analyzer, error) {
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
	a.Log = logger
	return a, nil
}

// resolveFiles expands glob patterns and applies the config's ignore
// patterns. Plain paths pass through after an existence check.
func resolveFiles(args []string, cfg *config.Config) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		if cfg.Ignored(path) || seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			if _, err := os.Stat(arg); err != nil {
				return nil, fmt.Errorf("%s: %w", arg, err)
			}
			add(arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && !info.IsDir() {
				add(m)
			}
		}
	}
	return files, nil
}

// readInput loads one input file, converting Markdown to plain text.
func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return plaintext.Extract(data), nil
	}
	return string(data), nil
}

// gatherText collects the input text for a query subcommand: the
// concatenation of the file arguments, or stdin when none are given.
func gatherText(args []string, cfg *config.Config) (string, int) {
	if len(args) == 0 {
		if !isStdinPipe() {
			fmt.Fprintf(os.Stderr, "cefrize: no input (pass files or pipe text to stdin)\n")
			return "", 2
		}
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cefrize: reading stdin: %v\n", err)
			return "", 2
		}
		return string(source), 0
	}

	files, err := resolveFiles(args, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
		return "", 2
	}
	var parts []string
	for _, path := range files {
		text, err := readInput(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cefrize: %v\n", err)
			return "", 2
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n"), 0
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadConfig loads configuration from the given path, or discovers a
// .cefrize.yml from the current directory. Returns the config, the
// path that was loaded (empty if defaults only), and any error.
func loadConfig(configPath string) (*config.Config, string, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, configPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Defaults(), "", nil
	}
	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		return config.Defaults(), "", nil
	}
	cfg, err := config.Load(discovered)
	if err != nil {
		return nil, "", err
	}
	return cfg, discovered, nil
}
