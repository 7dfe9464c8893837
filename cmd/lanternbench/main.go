package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"lantern/internal/entry"
	"lantern/internal/index"

	"github.com/dustin/go-humanize"
)

var nameParts = []string{
	"app", "server", "client", "config", "notes", "report", "backup",
	"photo", "invoice", "draft", "readme", "main", "test", "data",
	"log", "cache", "archive", "project", "budget", "resume",
}

var nameSuffixes = []string{"", ".txt", ".md", ".go", ".pdf", ".png", "-old", "_v2", "-final"}

func main() {
	entries := flag.Int("entries", 500000, "Synthetic index size")
	queries := flag.Int("queries", 1000, "Number of queries to run")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	if *entries <= 0 || *queries <= 0 {
		fmt.Fprintln(os.Stderr, "entries and queries must be positive")
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	fmt.Printf("Generating %s synthetic entries (seed %d)...\n", humanize.Comma(int64(*entries)), s)
	catalog := make([]entry.Entry, 0, *entries)
	for i := 0; i < *entries; i++ {
		name := nameParts[rng.Intn(len(nameParts))]
		if rng.Intn(3) == 0 {
			name += "-" + nameParts[rng.Intn(len(nameParts))]
		}
		name += nameSuffixes[rng.Intn(len(nameSuffixes))]

		parent := nameParts[rng.Intn(len(nameParts))]
		dir := "/home/bench/" + parent
		if rng.Intn(10) == 0 {
			dir = "/home/bench/projects/" + parent
		}

		catalog = append(catalog, entry.Entry{
			Name:         name,
			Path:         dir + "/" + name,
			IsDir:        rng.Intn(5) == 0,
			ParentFolder: parent,
		})
	}

	start := time.Now()
	var totalResults int
	for i := 0; i < *queries; i++ {
		q := nameParts[rng.Intn(len(nameParts))]
		totalResults += len(index.Search(q, catalog))
	}
	elapsed := time.Since(start)

	perQuery := elapsed / time.Duration(*queries)
	qps := float64(*queries) / elapsed.Seconds()
	scanned := float64(*entries) * float64(*queries) / elapsed.Seconds()

	fmt.Printf("Ran %s queries in %s\n", humanize.Comma(int64(*queries)), elapsed.Round(time.Millisecond))
	fmt.Printf("  Per query:       %s\n", perQuery.Round(time.Microsecond))
	fmt.Printf("  Queries/sec:     %.0f\n", qps)
	fmt.Printf("  Entries/sec:     %s\n", humanize.Comma(int64(scanned)))
	fmt.Printf("  Results (total): %s\n", humanize.Comma(int64(totalResults)))
}
