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


package matchcore

import (
	"log/slog"

	"github.com/laborlink/matchcore/catalog"
	"github.com/laborlink/matchcore/classify"
	"github.com/laborlink/matchcore/core"
	"github.com/laborlink/matchcore/corpus"
	"github.com/laborlink/matchcore/route"
)

// Router is the runtime classification facade. It builds the corpus and
// catalog once at construction; after that every Match call reads shared
// immutable state and is safe to run concurrently.
type Router struct {
	corpus     *corpus.Corpus
	catalog    *catalog.Catalog
	classifier *classify.Classifier
	selector   *route.Selector
	logger     *slog.Logger
}

// RouterOption configures a Router.
type RouterOption func(*routerOptions)

type routerOptions struct {
	catalogPath      string
	loadOpts         corpus.LoadOptions
	classifierConfig classify.Config
	selectorConfig   route.Config
}

// WithCatalogPath loads the catalog from the collaborator's artifact
// instead of the built-in set.
func WithCatalogPath(path string) RouterOption {
	return func(o *routerOptions) { o.catalogPath = path }
}

// WithLearnedExamples merges the learned-examples artifact into the corpus.
func WithLearnedExamples(path string) RouterOption {
	return func(o *routerOptions) { o.loadOpts.LearnedPath = path }
}

// WithAutofixExamples merges the mismatch-autofix artifact into the corpus.
func WithAutofixExamples(path string) RouterOption {
	return func(o *routerOptions) { o.loadOpts.AutofixPath = path }
}

// WithClassifierConfig overrides the classifier thresholds.
func WithClassifierConfig(config classify.Config) RouterOption {
	return func(o *routerOptions) { o.classifierConfig = config }
}

// WithSelectorConfig overrides the selector scoring adjustments.
func WithSelectorConfig(config route.Config) RouterOption {
	return func(o *routerOptions) { o.selectorConfig = config }
}

// NewRouter builds a Router. Artifact paths that are set but missing make
// construction fail; a broken corpus must never serve silently degraded
// answers.
func NewRouter(opts ...RouterOption) (*Router, error) {
	options := &routerOptions{
		classifierConfig: classify.DefaultConfig(),
		selectorConfig:   route.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	cat := catalog.Default()
	if options.catalogPath != "" {
		loaded, err := catalog.Load(options.catalogPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	c, err := corpus.Load(options.loadOpts)
	if err != nil {
		return nil, err
	}

	return &Router{
		corpus:     c,
		catalog:    cat,
		classifier: classify.New(c, options.classifierConfig),
		selector:   route.NewSelector(cat, c, options.selectorConfig),
		logger:     slog.Default(),
	}, nil
}

// Match classifies one free-text problem statement. It never fails for a
// well-formed string: when the classifier abstains, the audience and
// category stay empty and the selector's pick still names a service.
func (r *Router) Match(text string) core.MatchResult {
	inferred := r.classifier.Infer(text)
	selection := r.selector.Pick(text)

	result := core.MatchResult{
		Audience:      inferred.Audience,
		Category:      inferred.Category,
		TopService:    selection.Service,
		Confidence:    inferred.Confidence,
		ServiceScores: inferred.ServiceScores,
	}

	r.logger.Debug("matched",
		"audience", result.Audience,
		"category", result.Category,
		"service", result.TopService,
		"confidence", result.Confidence)
	return result
}

// Pick runs only the selector path, bypassing the similarity vote.
func (r *Router) Pick(text string) route.Selection {
	return r.selector.Pick(text)
}

// Catalog returns the catalog the router serves from.
func (r *Router) Catalog() *catalog.Catalog {
	return r.catalog
}

// Corpus returns the immutable corpus snapshot.
func (r *Router) Corpus() *corpus.Corpus {
	return r.corpus
}

// NewSelector builds a selector over the router's catalog and corpus with
// a custom config, for audit runs that must share the live snapshot.
func (r *Router) NewSelector(config route.Config) *route.Selector {
	return route.NewSelector(r.catalog, r.corpus, config)
}
