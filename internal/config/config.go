// Package config loads the optional .cefrize.yml configuration file
// and applies defaults for everything it leaves out.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/jeduden/cefrize/internal/lexicon"
)

const configFileName = ".cefrize.yml"

// Config holds all tunable settings. Paths left empty fall back to
// the embedded lexical resources.
type Config struct {
	// Lexicon is the path to a word dictionary JSON file.
	Lexicon string `yaml:"lexicon"`
	// Frequencies is the path to a word frequency-rank JSON file.
	Frequencies string `yaml:"frequencies"`
	// MinWords and MaxWords bound accepted text length.
	MinWords int `yaml:"min_words"`
	MaxWords int `yaml:"max_words"`
	// Lookup configures dictionary lookup behavior.
	Lookup LookupCfg `yaml:"lookup"`
	// Ignore lists glob patterns for files to skip in batch mode.
	Ignore []string `yaml:"ignore"`
}

// LookupCfg configures the dictionary fallback chain.
type LookupCfg struct {
	// Tiebreak picks the level when a word has entries under several
	// parts of speech: "lowest" (default) or "highest".
	Tiebreak string `yaml:"tiebreak"`
}

// Defaults returns the built-in configuration: embedded resources,
// 10..10000 word bounds, lowest-level tie-break.
func Defaults() *Config {
	return &Config{
		MinWords: 10,
		MaxWords: 10000,
		Lookup:   LookupCfg{Tiebreak: string(lexicon.TiebreakLowest)},
	}
}

// Load reads and parses a config file at the given path, filling
// unset fields from Defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field consistency.
func (c *Config) Validate() error {
	if c.MinWords < 1 {
		return fmt.Errorf("min_words must be positive, got %d", c.MinWords)
	}
	if c.MaxWords < c.MinWords {
		return fmt.Errorf("max_words (%d) must be >= min_words (%d)", c.MaxWords, c.MinWords)
	}
	if _, err := lexicon.ParseTiebreak(c.Lookup.Tiebreak); err != nil {
		return err
	}
	return nil
}

// Tiebreak returns the parsed lookup tie-break policy.
func (c *Config) Tiebreak() lexicon.Tiebreak {
	tb, err := lexicon.ParseTiebreak(c.Lookup.Tiebreak)
	if err != nil {
		return lexicon.TiebreakLowest
	}
	return tb
}

// Ignored reports whether a file path matches any configured ignore
// pattern.
func (c *Config) Ignored(path string) bool {
	cleanPath := filepath.Clean(path)
	for _, pattern := range c.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}

// Discover walks up the directory tree from startDir looking for a
// .cefrize.yml config file. It stops searching when it encounters a
// .git directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
