package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestAuditCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "matchcore",
		Commands: []*cli.Command{
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
					&cli.IntFlag{
						Name:  "questions",
						Usage: "Target question volume",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size (0 selects a CPU-derived default)",
					},
				},
			},
		},
	}

	t.Run("out is required", func(t *testing.T) {
		args := []string{"matchcore", "audit"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out")
	})

	t.Run("questions has default value of 1000", func(t *testing.T) {
		cmd := app.Commands[0]
		var questionsFlag *cli.IntFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "questions" {
				questionsFlag = f
				break
			}
		}
		require.NotNil(t, questionsFlag)
		assert.Equal(t, 1000, questionsFlag.Value)
	})

	t.Run("summary has no default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var summaryFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "summary" {
				summaryFlag = f
				break
			}
		}
		require.NotNil(t, summaryFlag)
		assert.Empty(t, summaryFlag.Value)
		assert.False(t, summaryFlag.Required)
	})
}

func TestAutofixCommandValidation(t *testing.T) {
	app := &cli.App{
		Name: "matchcore",
		Commands: []*cli.Command{
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

	t.Run("missing report flag fails", func(t *testing.T) {
		args := []string{"matchcore", "autofix", "--out", "/tmp/autofix.json"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "report")
	})

	t.Run("missing out flag fails", func(t *testing.T) {
		args := []string{"matchcore", "autofix", "--report", "/tmp/report.json"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out")
	})
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: tc.input,
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		testCases := []string{
			"DEBUG",
			"Info",
			"WaRn",
			"ERROR",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
		assert.Contains(t, err.Error(), "invalid")
	})

	t.Run("default log level is info", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				level := c.String("log-level")
				assert.Equal(t, "info", level)
				return nil
			},
		}

		err := app.Run([]string{"test"})
		require.NoError(t, err)
	})
}

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}
