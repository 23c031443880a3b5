// Package config loads and merges .readmark.yml configuration.
package config

import (
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	// Formula selects the active readability formula by name.
	Formula string `yaml:"formula,omitempty"`
	// Thresholds overrides the per-formula difficulty threshold.
	Thresholds map[string]float64 `yaml:"thresholds,omitempty"`
	// Highlight enables per-sentence difficulty findings; when false,
	// check reports a single document-level finding.
	Highlight *bool `yaml:"highlight,omitempty"`
	// MinWords skips documents shorter than this many words.
	MinWords *int `yaml:"min-words,omitempty"`
	// Top is how many difficult sentences are retained per document.
	Top *int `yaml:"top,omitempty"`
	// Ignore lists glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty"`
	// Files lists doublestar patterns for config-driven discovery.
	Files []string `yaml:"files,omitempty"`
	// Vocabularies maps a vocabulary name to a word-list file that
	// replaces the built-in list.
	Vocabularies map[string]string `yaml:"vocabularies,omitempty"`
}

// schema is the CUE schema raw YAML documents are validated against
// before decoding.
const schema = `
formula?: string
thresholds?: {[string]: number}
highlight?: bool
"min-words"?: int & >=0
top?: int & >0
ignore?: [...string]
files?: [...string]
vocabularies?: {[string]: string}
`

// Validate checks a raw YAML config document against the CUE schema.
func Validate(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if raw == nil {
		return nil
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}

	ctx := cuecontext.New()
	schemaVal := ctx.CompileString(schema)
	if err := schemaVal.Err(); err != nil {
		return fmt.Errorf("invalid config schema: %w", err)
	}
	dataVal := ctx.CompileBytes(encoded)
	if err := dataVal.Err(); err != nil {
		return fmt.Errorf("compile config: %w", err)
	}

	merged := schemaVal.Unify(dataVal)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}
