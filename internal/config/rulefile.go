package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultRuleFile is the default rule file name.
const DefaultRuleFile = ".datascan"

// ErrRuleFileNotFound is returned when the rule file does not exist.
var ErrRuleFileNotFound = errors.New("rule file not found")

// RuleFile represents the structure of the .datascan rule file.
// It controls how raw CSV cells are materialized before checking; the
// detection heuristics themselves (keyword lists, date patterns,
// thresholds) are fixed contract and not configurable.
type RuleFile struct {
	// NullValues are cell strings treated as the missing sentinel.
	// When empty, the ingestion defaults apply.
	NullValues []string `yaml:"nullValues,omitempty"`

	// Delimiter is the CSV field separator as a one-character string.
	Delimiter string `yaml:"delimiter,omitempty"`
}

// LoadRuleFile loads ingestion rules from a YAML file.
// If the file does not exist, it returns ErrRuleFileNotFound. Callers
// should handle this error based on whether the path was explicitly
// specified by the user.
func LoadRuleFile(path string) (*RuleFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided rule file path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRuleFileNotFound
		}
		return nil, err
	}

	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, err
	}
	return &rf, nil
}

// FindRuleFile searches for the rule file in the following order:
// 1. If path is specified, use it directly
// 2. Look for .datascan in the current directory
// 3. Look for .datascan in the user's home directory
//
// Returns the path to the rule file if found, or empty string if not found.
func FindRuleFile(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdRule := filepath.Join(cwd, DefaultRuleFile)
		if _, err := os.Stat(cwdRule); err == nil {
			return cwdRule
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeRule := filepath.Join(home, DefaultRuleFile)
		if _, err := os.Stat(homeRule); err == nil {
			return homeRule
		}
	}

	return ""
}

// Apply copies the rule file settings onto the config, leaving flags
// that were already set by the user untouched.
func (rf *RuleFile) Apply(cfg *Config) {
	if cfg == nil || rf == nil {
		return
	}
	if cfg.NullTokens == nil && len(rf.NullValues) > 0 {
		cfg.NullTokens = rf.NullValues
	}
	if cfg.Delimiter == 0 && rf.Delimiter != "" {
		cfg.Delimiter = []rune(rf.Delimiter)[0]
	}
}
