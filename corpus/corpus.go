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
	"github.com/laborlink/matchcore/core"
)

// Corpus is the in-memory set of labeled examples used for similarity
// matching. It is built once per process start and never mutated afterwards,
// so concurrent readers need no locking. Offline jobs regenerate the learned
// and autofix artifacts; the next process start picks them up.
type Corpus struct {
	examples []core.Example
	mismatch []core.Example
}

// New builds a Corpus from the given example sets, preserving order.
// Callers must not modify the slices after handing them over.
func New(sets ...[]core.Example) *Corpus {
	total := 0
	for _, set := range sets {
		total += len(set)
	}

	examples := make([]core.Example, 0, total)
	for _, set := range sets {
		examples = append(examples, set...)
	}

	var mismatch []core.Example
	for _, example := range examples {
		if example.Provenance == core.ProvenanceMismatchAutofix {
			mismatch = append(mismatch, example)
		}
	}

	return &Corpus{examples: examples, mismatch: mismatch}
}

// Examples returns all examples in load order. The returned slice is shared;
// callers must treat it as read-only.
func (c *Corpus) Examples() []core.Example {
	return c.examples
}

// MismatchExamples returns the examples with mismatch_autofix provenance,
// in load order.
func (c *Corpus) MismatchExamples() []core.Example {
	return c.mismatch
}

// Len returns the number of examples in the corpus.
func (c *Corpus) Len() int {
	return len(c.examples)
}
