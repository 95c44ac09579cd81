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


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/laborlink/matchcore"
	"github.com/laborlink/matchcore/audit"
	"github.com/laborlink/matchcore/config"
	"github.com/laborlink/matchcore/corpus"
	"github.com/laborlink/matchcore/learn"
	"github.com/laborlink/matchcore/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "matchcore",
		Usage: "Labor-advisory service router and its offline learning cycle",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file (defaults apply when omitted)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "classify",
				Usage:     "Classify one problem statement and print the match result",
				ArgsUsage: "<text>",
				Action:    classifyCommand,
			},
			{
				Name:   "audit",
				Usage:  "Run the synthetic-question audit against the current catalog and corpus",
				Action: auditCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Path for the JSON audit report",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "summary",
						Usage: "Path for the human-readable summary (skipped when empty)",
					},
					&cli.StringFlag{
						Name:  "baseline",
						Usage: "Prior report to compare against (must exist when set)",
					},
					&cli.IntFlag{
						Name:  "questions",
						Usage: "Target question volume",
						Value: audit.DefaultTargetVolume,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size (0 selects a CPU-derived default)",
					},
				},
			},
			{
				Name:   "learn",
				Usage:  "Mine learned examples from the session event log",
				Action: learnCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Path for the learned-examples artifact",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "Number of events to fetch per page",
						Value: learn.DefaultPageSize,
					},
					&cli.IntFlag{
						Name:  "max-events",
						Usage: "Cap on events read from the log",
						Value: learn.DefaultMaxEvents,
					},
					&cli.IntFlag{
						Name:  "max-examples",
						Usage: "Cap on emitted learned examples",
						Value: learn.DefaultMaxExamples,
					},
				},
			},
			{
				Name:   "autofix",
				Usage:  "Convert an audit report's top mismatches into corrective examples",
				Action: autofixCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "report",
						Aliases:  []string{"r"},
						Usage:    "Path to the audit report to mine",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "out",
						Aliases:  []string{"o"},
						Usage:    "Path for the mismatch-autofix artifact",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newRouter builds the Router from the resolved config.
func newRouter(cfg config.Config) (*matchcore.Router, error) {
	opts := []matchcore.RouterOption{
		matchcore.WithClassifierConfig(cfg.ClassifierConfig()),
		matchcore.WithSelectorConfig(cfg.SelectorConfig()),
	}
	if cfg.CatalogPath != "" {
		opts = append(opts, matchcore.WithCatalogPath(cfg.CatalogPath))
	}
	if cfg.LearnedPath != "" {
		opts = append(opts, matchcore.WithLearnedExamples(cfg.LearnedPath))
	}
	if cfg.AutofixPath != "" {
		opts = append(opts, matchcore.WithAutofixExamples(cfg.AutofixPath))
	}
	return matchcore.NewRouter(opts...)
}

func classifyCommand(c *cli.Context) error {
	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return fmt.Errorf("text argument is required")
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	router, err := newRouter(cfg)
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	result := router.Match(text)
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func auditCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	router, err := newRouter(cfg)
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	var baseline *audit.Report
	if baselinePath := c.String("baseline"); baselinePath != "" {
		baseline, err = audit.ReadReport(baselinePath)
		if err != nil {
			return fmt.Errorf("reading baseline: %w", err)
		}
	}

	questions := audit.Generate(router.Catalog(), c.Int("questions"))
	harness := audit.NewHarness(router.NewSelector(cfg.SelectorConfig()), router.Catalog(), c.Int("pool-size"))

	report, err := harness.Run(ctx, questions)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if err := audit.WriteReport(c.String("out"), report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if summaryPath := c.String("summary"); summaryPath != "" {
		file, err := os.Create(summaryPath)
		if err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
		defer file.Close()
		if err := audit.WriteSummary(file, report); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Questions: %d\n", report.QuestionCount)
	fmt.Fprintf(os.Stderr, "Aligned:   %d (%.1f%%)\n", report.AlignedCount, report.AlignedRate)
	if baseline != nil {
		fmt.Fprintf(os.Stderr, "Baseline:  %.1f%% (%+.1f)\n",
			baseline.AlignedRate, report.AlignedRate-baseline.AlignedRate)
	}
	return nil
}

func learnCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	backend, err := badger.OpenBackend(cfg.EventDBPath, false)
	if err != nil {
		return fmt.Errorf("opening event log: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewEventRepository(backend)
	if err != nil {
		return fmt.Errorf("creating event repository: %w", err)
	}
	defer repo.Close()

	extractConfig := learn.Config{
		PageSize:       c.Int("page-size"),
		MaxEvents:      c.Int("max-events"),
		MaxExamples:    c.Int("max-examples"),
		ProgressWriter: os.Stderr,
	}
	if extractConfig.PageSize <= 0 {
		return fmt.Errorf("page-size must be greater than 0")
	}
	if extractConfig.MaxEvents <= 0 {
		return fmt.Errorf("max-events must be greater than 0")
	}

	extractor := learn.NewExtractor(repo, extractConfig)
	examples, err := extractor.Run(ctx)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := corpus.WriteExamples(c.String("out"), examples); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %d learned examples to %s\n", len(examples), c.String("out"))
	return nil
}

func autofixCommand(c *cli.Context) error {
	report, err := audit.ReadReport(c.String("report"))
	if err != nil {
		return err
	}

	examples := learn.Autofix(report)
	if err := corpus.WriteExamples(c.String("out"), examples); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %d autofix examples to %s\n", len(examples), c.String("out"))
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
