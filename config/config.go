// Copyright 2026 Laborlink Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config holds the router's file-based configuration: artifact
// paths plus the scoring thresholds. The threshold values are tuned
// heuristics, so they live in a file rather than in code.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/laborlink/matchcore/classify"
	"github.com/laborlink/matchcore/core"
	"github.com/laborlink/matchcore/route"
)

// Thresholds are the tunable scoring constants.
type Thresholds struct {
	CandidateFloor        float64 `yaml:"candidate_floor"`
	ConfidenceGate        float64 `yaml:"confidence_gate"`
	SpecificSignalPenalty float64 `yaml:"specific_signal_penalty"`
	AliasBoost            float64 `yaml:"alias_boost"`
	MismatchBoost         float64 `yaml:"mismatch_boost"`
	GenericDemotion       float64 `yaml:"generic_demotion"`
	GenericDemotionFloor  float64 `yaml:"generic_demotion_floor"`
}

// Config is the full router configuration.
type Config struct {
	// CatalogPath points at the catalog collaborator's artifact.
	// Empty selects the built-in catalog.
	CatalogPath string `yaml:"catalog_path"`
	// LearnedPath and AutofixPath point at the offline cycle's corpus
	// artifacts. Empty skips the artifact.
	LearnedPath string `yaml:"learned_path"`
	AutofixPath string `yaml:"autofix_path"`
	// EventDBPath is the BadgerDB directory of the session event log.
	EventDBPath string `yaml:"event_db_path"`

	Thresholds Thresholds `yaml:"thresholds"`
}

// Default returns the configuration with the tuned default thresholds.
func Default() Config {
	classifier := classify.DefaultConfig()
	selector := route.DefaultConfig()

	return Config{
		EventDBPath: "data/events",
		Thresholds: Thresholds{
			CandidateFloor:        classifier.CandidateFloor,
			ConfidenceGate:        classifier.ConfidenceGate,
			SpecificSignalPenalty: selector.SpecificSignalPenalty,
			AliasBoost:            selector.AliasBoost,
			MismatchBoost:         selector.MismatchBoost,
			GenericDemotion:       selector.GenericDemotion,
			GenericDemotionFloor:  selector.GenericDemotionFloor,
		},
	}
}

// Load reads a YAML config file, filling unset thresholds from the
// defaults. A missing file is a fatal configuration error; pass an empty
// path to run on defaults alone.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", core.ErrMissingArtifact, path)
		}
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// ClassifierConfig converts the thresholds into a classifier config.
func (c Config) ClassifierConfig() classify.Config {
	return classify.Config{
		CandidateFloor: c.Thresholds.CandidateFloor,
		ConfidenceGate: c.Thresholds.ConfidenceGate,
	}
}

// SelectorConfig converts the thresholds into a selector config.
func (c Config) SelectorConfig() route.Config {
	return route.Config{
		SpecificSignalPenalty: c.Thresholds.SpecificSignalPenalty,
		AliasBoost:            c.Thresholds.AliasBoost,
		MismatchBoost:         c.Thresholds.MismatchBoost,
		GenericDemotion:       c.Thresholds.GenericDemotion,
		GenericDemotionFloor:  c.Thresholds.GenericDemotionFloor,
	}
}
