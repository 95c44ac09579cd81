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


package corpus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/laborlink/matchcore/core"
)

// LoadExamples reads an example artifact from disk.
//
// A missing or unreadable file is fatal: a broken corpus would silently
// degrade every subsequent classification. A malformed individual record is
// not: it is dropped with a debug log and loading proceeds with the rest.
func LoadExamples(path string) ([]core.Example, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrMissingArtifact, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw []core.Example
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	valid := make([]core.Example, 0, len(raw))
	for i := range raw {
		if err := core.ValidateExample(&raw[i]); err != nil {
			slog.Debug("dropping invalid example", "path", path, "index", i, "err", err)
			continue
		}
		valid = append(valid, raw[i])
	}

	slog.Debug("loaded examples", "path", path, "valid", len(valid), "dropped", len(raw)-len(valid))
	return valid, nil
}

// WriteExamples writes an example artifact to disk as indented JSON.
func WriteExamples(path string, examples []core.Example) error {
	data, err := json.MarshalIndent(examples, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding examples: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadOptions names the offline artifacts to merge with the seed examples.
// An empty path skips that artifact; a non-empty path that does not exist
// is a fatal configuration error.
type LoadOptions struct {
	LearnedPath string
	AutofixPath string
}

// Load builds the process-lifetime corpus: seed examples plus whatever
// learned and autofix artifacts the offline cycle has produced so far.
func Load(opts LoadOptions) (*Corpus, error) {
	sets := [][]core.Example{Seed()}

	if opts.LearnedPath != "" {
		learned, err := LoadExamples(opts.LearnedPath)
		if err != nil {
			return nil, err
		}
		sets = append(sets, learned)
	}

	if opts.AutofixPath != "" {
		autofix, err := LoadExamples(opts.AutofixPath)
		if err != nil {
			return nil, err
		}
		sets = append(sets, autofix)
	}

	return New(sets...), nil
}
