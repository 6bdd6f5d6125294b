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
	"strconv"
	"strings"

	"github.com/poiesic/memrank"
	"github.com/poiesic/memrank/core"
	"github.com/poiesic/memrank/ingest"
	"github.com/poiesic/memrank/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "memrank",
		Usage:  "Multi-strategy relevance search over memory records",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   "./memrank_db",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Store content as memory records",
				ArgsUsage: "CONTENT [CONTENT...]",
				Action:    addCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Record type (observation, entity, relation, preference)",
						Value:   "observation",
					},
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Tag applied to every record (repeatable)",
					},
					&cli.IntFlag{
						Name:  "importance",
						Usage: "Importance 0-10",
						Value: 5,
					},
					&cli.BoolFlag{
						Name:  "no-auto-tag",
						Usage: "Disable keyword-derived tags",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search stored memories",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: search.DefaultLimit,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Minimum score a result must reach",
						Value: search.DefaultMinScore,
					},
					&cli.BoolFlag{
						Name:  "no-fuzzy",
						Usage: "Disable the fuzzy-content strategy",
					},
					&cli.BoolFlag{
						Name:  "no-tags",
						Usage: "Disable the tag-based strategy",
					},
					&cli.BoolFlag{
						Name:  "no-semantic",
						Usage: "Disable the semantic-similarity strategy",
					},
					&cli.BoolFlag{
						Name:  "no-time-weight",
						Usage: "Disable recency/access-frequency weighting",
					},
					&cli.BoolFlag{
						Name:  "read-only",
						Usage: "Do not update access bookkeeping on results",
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored memories in creation order",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "tag",
						Usage: "Only list records carrying this tag",
					},
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete memories by ID",
				ArgsUsage: "ID [ID...]",
				Action:    deleteCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func addCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one content argument is required")
	}

	recordType, err := core.ParseRecordType(c.String("type"))
	if err != nil {
		return fmt.Errorf("invalid record type %q: %w", c.String("type"), err)
	}

	db, err := memrank.NewDatabase(c.String("db"),
		memrank.WithIngestOptions(ingest.WithAutoTag(!c.Bool("no-auto-tag"))))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	records, err := db.Ingest(context.Background(), recordType, c.Args().Slice(), &ingest.IngestOptions{
		Tags:       c.StringSlice("tag"),
		Importance: c.Int("importance"),
	})
	if err != nil {
		return fmt.Errorf("failed to store memories: %w", err)
	}

	for _, record := range records {
		fmt.Printf("%d\t%s\t[%s]\n", record.Id, record.Content, strings.Join(record.Tags, ", "))
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("a query argument is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	db, err := memrank.NewDatabase(c.String("db"),
		memrank.WithTouchOnRead(!c.Bool("read-only")))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	opts := search.Options{
		Limit:          c.Int("limit"),
		MinScore:       c.Float64("min-score"),
		Fuzzy:          !c.Bool("no-fuzzy"),
		TagSearch:      !c.Bool("no-tags"),
		SemanticSearch: !c.Bool("no-semantic"),
		TimeWeight:     !c.Bool("no-time-weight"),
	}

	outcome, err := db.Search(context.Background(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Print(search.FormatResults(outcome))
	return nil
}

func listCommand(c *cli.Context) error {
	db, err := memrank.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	var records []*core.MemoryRecord
	if tag := c.String("tag"); tag != "" {
		records, err = db.Repository().GetMemoriesByTag(ctx, tag)
	} else {
		records, err = db.Repository().GetAllMemories(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list memories: %w", err)
	}

	for _, record := range records {
		fmt.Printf("%d\t%s\t%s\t[%s]\taccessed %d\n",
			record.Id, record.Type, record.Content,
			strings.Join(record.Tags, ", "), record.AccessCount)
	}
	fmt.Printf("%d record(s)\n", len(records))
	return nil
}

func deleteCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one ID argument is required")
	}

	ids := make([]core.ID, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		raw, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", arg, err)
		}
		ids = append(ids, core.ID(raw))
	}

	db, err := memrank.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Repository().DeleteMemories(context.Background(), ids...); err != nil {
		return fmt.Errorf("failed to delete memories: %w", err)
	}
	fmt.Printf("Deleted %d record(s)\n", len(ids))
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
