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


// Package catalog loads and serves the read-only service catalog.
// The catalog is owned by an external collaborator and refreshed
// independently of the example corpus.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/laborlink/matchcore/core"
)

// Catalog holds the service offerings in a fixed, deterministic order.
// All accessors preserve that order so scoring ties resolve the same way
// on every run.
type Catalog struct {
	entries []core.ServiceEntry
}

// New builds a Catalog from the given entries, preserving order.
func New(entries []core.ServiceEntry) *Catalog {
	return &Catalog{entries: entries}
}

// Load reads a catalog artifact from disk. A missing file is a fatal
// configuration error; individual malformed entries are dropped.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrMissingArtifact, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw []core.ServiceEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	valid := make([]core.ServiceEntry, 0, len(raw))
	for i := range raw {
		if err := core.ValidateServiceEntry(&raw[i]); err != nil {
			slog.Debug("dropping invalid catalog entry", "path", path, "index", i, "err", err)
			continue
		}
		valid = append(valid, raw[i])
	}

	return New(valid), nil
}

// All returns every entry in catalog order. The returned slice is shared;
// callers must treat it as read-only.
func (c *Catalog) All() []core.ServiceEntry {
	return c.entries
}

// ByAudience returns the entries for one audience, in catalog order.
func (c *Catalog) ByAudience(audience core.Audience) []core.ServiceEntry {
	subset := make([]core.ServiceEntry, 0, len(c.entries))
	for _, entry := range c.entries {
		if entry.Audience == audience {
			subset = append(subset, entry)
		}
	}
	return subset
}

// Find resolves a service name against the audience-specific subset first,
// falling back to the full catalog. Returns nil when the name is unknown.
func (c *Catalog) Find(name string, audience core.Audience) *core.ServiceEntry {
	for i := range c.entries {
		if c.entries[i].Name == name && c.entries[i].Audience == audience {
			return &c.entries[i]
		}
	}
	for i := range c.entries {
		if c.entries[i].Name == name {
			return &c.entries[i]
		}
	}
	return nil
}

// KeywordUniverse returns the deduplicated union of service names and
// keywords, in first-appearance order.
func (c *Catalog) KeywordUniverse() []string {
	seen := make(map[string]bool)
	universe := make([]string, 0, len(c.entries)*6)

	add := func(term string) {
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		universe = append(universe, term)
	}

	for _, entry := range c.entries {
		add(entry.Name)
		for _, keyword := range entry.Keywords {
			add(keyword)
		}
	}
	return universe
}
