package main

import (
	"bufio"
	"context"
	"flag"
	"iter"
	"log/slog"
	"os"

	"github.com/poiesic/memrank"
	"github.com/poiesic/memrank/core"
)

var observations = []string{
	"Fixed the login bug where sessions expired after five minutes.",
	"The auth service crashes when the token cache fills up.",
	"Deploy to staging failed because the config map was missing.",
	"Database migrations must run before the release is tagged.",
	"The search endpoint is slow when the corpus exceeds ten thousand records.",
	"User reported that dark mode resets after every update.",
	"Refactored the payment module to remove the circular dependency.",
	"The API rate limiter drops requests silently under heavy load.",
	"Security review flagged the password reset flow for missing expiry.",
	"Test flakiness traced to a shared fixture mutating global state.",
	"The backup job writes to the wrong bucket on Sundays.",
	"Critical issue: the billing cron double-charges on retries.",
	"Documentation for the webhook API is two versions behind.",
	"The staging database config points at production replicas.",
	"Performance regression introduced by the new JSON serializer.",
	"Error handling in the upload pipeline swallows context cancellation.",
	"The release script forgets to bump the chart version.",
	"Users prefer the compact layout on small screens.",
	"The settings page loses unsaved changes on tab switch.",
	"Slow query on the orders table needs a composite index.",
	"The deploy pipeline needs a manual approval step for production.",
	"Login via SSO fails for accounts created before March.",
	"The cache invalidation bug only reproduces under concurrent writes.",
	"Storage costs doubled after enabling verbose request logging.",
	"The test suite takes twelve minutes because of serial container startup.",
	"Crash report: nil map write in the metrics exporter.",
	"API consumers want cursor pagination instead of offsets.",
	"The style guide requires error wrapping with context.",
	"Config reload drops in-flight requests on SIGHUP.",
	"The quarterly security audit starts next Monday.",
}

var (
	seedFileName = flag.String("src", "", "file of seed data, one record per line")
	dbPath       = flag.String("db", "./memrank_db", "path to database directory")
	batchSize    = flag.Int("batch", 5, "records per ingest batch")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// linesFromFile returns an iterator over lines in a file.
func linesFromFile(filename string) (iter.Seq[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}, nil
}

// linesFromSlice returns an iterator over a slice of strings.
func linesFromSlice(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

// ingestBatched reads from a source iterator and stores records in batches.
func ingestBatched(ctx context.Context, db *memrank.Database, source iter.Seq[string], batchSize int) error {
	batch := make([]string, 0, batchSize)

	for line := range source {
		batch = append(batch, line)
		if len(batch) == batchSize {
			if _, err := db.Remember(ctx, core.RecordTypeObservation, batch...); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if _, err := db.Remember(ctx, core.RecordTypeObservation, batch...); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	db, err := memrank.NewDatabase(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	ctx := context.Background()

	var source iter.Seq[string]
	if seedFileName != nil && *seedFileName != "" {
		source, err = linesFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = linesFromSlice(observations)
	}

	if err := ingestBatched(ctx, db, source, *batchSize); err != nil {
		panic(err)
	}
}
