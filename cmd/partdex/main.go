// Copyright 2025 Poiesic Systems
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/poiesic/partdex"
	"github.com/poiesic/partdex/query"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "partdex",
		Usage: "Query understanding and search for an electronics part catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parse a natural-language query and show the structured interpretation",
				ArgsUsage: "<query...>",
				Action:    parseCommand,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Confidence threshold for structured search",
						Value: query.DefaultThreshold,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the catalog",
				ArgsUsage: "<query...>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum results to return (0 = all)",
						Value: 10,
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "Results to skip",
					},
					&cli.IntFlag{
						Name:  "fuzzy-floor",
						Usage: "Token-result count below which fuzzy matching engages (0 = default)",
					},
					&cli.BoolFlag{
						Name:  "token-only",
						Usage: "Skip the fuzzy supplement",
					},
				},
			},
			{
				Name:   "rebuild",
				Usage:  "Rebuild the token index from the stored parts",
				Action: rebuildCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored parts",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum parts to list (0 = all)",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func queryFromArgs(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		return "", fmt.Errorf("a query is required")
	}
	return strings.Join(c.Args().Slice(), " "), nil
}

func parseCommand(c *cli.Context) error {
	text, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	// Parsing needs no database; build the parser directly.
	config := query.NewConfig()
	if err := config.SetThreshold(c.Float64("threshold")); err != nil {
		return err
	}
	parser, err := query.NewParser(config)
	if err != nil {
		return err
	}

	parsed := parser.Parse(text)
	fmt.Printf("Query:      %q\n", parsed.RawQuery)
	fmt.Printf("Intent:     %s\n", parsed.Intent)
	fmt.Printf("Confidence: %.2f\n", parsed.Confidence)

	if len(parsed.Entities) > 0 {
		fmt.Println("Entities:")
		kinds := make([]string, 0, len(parsed.Entities))
		byKind := make(map[string]string, len(parsed.Entities))
		for kind, value := range parsed.Entities {
			kinds = append(kinds, kind.String())
			byKind[kind.String()] = value.Text
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Printf("  %-16s %s\n", kind, byKind[kind])
		}
	}

	params := parser.SearchParams(text)
	fmt.Println("Search parameters:")
	keys := make([]string, 0, len(params.Filters))
	for key := range params.Filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("  %-16s %v\n", key, params.Filters[key])
	}
	if params.UsedFallback {
		fmt.Println("  (fallback to raw-text search)")
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	text, err := queryFromArgs(c)
	if err != nil {
		return err
	}

	catalog, err := partdex.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer catalog.Close()

	ctx := context.Background()
	limit := c.Int("limit")
	offset := c.Int("offset")

	if c.Bool("token-only") {
		parts, err := catalog.TokenSearch(ctx, text, limit, offset)
		if err != nil {
			return err
		}
		fmt.Printf("Found %d hits\n", len(parts))
		for i, part := range parts {
			fmt.Printf("%d: %s %s (%d)\n", i, part.Name, part.PartNumber, part.Id)
		}
		return nil
	}

	results, err := catalog.HybridSearch(ctx, text, limit, offset, c.Int("fuzzy-floor"))
	if err != nil {
		return err
	}
	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		marker := ""
		if hit.Fuzzy {
			marker = " ~"
		}
		fmt.Printf("%d: %s %s (%d)[%0.3f]%s\n", i, hit.Part.Name, hit.Part.PartNumber, hit.Part.Id, hit.Score, marker)
	}
	return nil
}

func rebuildCommand(c *cli.Context) error {
	catalog, err := partdex.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer catalog.Close()

	count, err := catalog.RebuildIndex(context.Background())
	if err != nil {
		return fmt.Errorf("index rebuild failed: %w", err)
	}
	fmt.Printf("Reindexed %d parts\n", count)
	return nil
}

func listCommand(c *cli.Context) error {
	catalog, err := partdex.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer catalog.Close()

	parts, err := catalog.ListParts(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}
	for _, part := range parts {
		fmt.Printf("%d: %s %s [%s %s %s]\n", part.Id, part.Name, part.PartNumber, part.ComponentType, part.Value, part.Package)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
