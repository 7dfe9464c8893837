package index

import (
	"sort"
	"strings"

	"lantern/internal/entry"
)

// MaxResults bounds how many entries a query returns.
const MaxResults = 100

// Relevance weights. The exact/prefix/word-boundary tiers are mutually
// exclusive, checked in that priority order; the remaining bonuses are
// additive on top of whichever tier applied.
const (
	scoreExact        = 1000
	scorePrefix       = 500
	scoreWordBoundary = 300
	scoreDirectory    = 200
	scoreProjectsPath = 100
	lengthPenaltyCap  = 50
)

type scoredEntry struct {
	score int
	entry entry.Entry
}

// Search filters entries to those whose name contains query
// (case-insensitive) and returns the top MaxResults by relevance.
// An empty query returns nothing. Ties keep snapshot order.
func Search(query string, entries []entry.Entry) []entry.Entry {
	if query == "" {
		return nil
	}

	queryLower := strings.ToLower(query)
	queryDash := "-" + queryLower
	queryUnderscore := "_" + queryLower

	var scored []scoredEntry
	for _, e := range entries {
		nameLower := strings.ToLower(e.Name)
		if !strings.Contains(nameLower, queryLower) {
			continue
		}

		score := 0
		switch {
		case nameLower == queryLower:
			score += scoreExact
		case strings.HasPrefix(nameLower, queryLower):
			score += scorePrefix
		case strings.Contains(nameLower, queryDash) || strings.Contains(nameLower, queryUnderscore):
			score += scoreWordBoundary
		}

		if e.IsDir {
			score += scoreDirectory
		}

		// Shorter names rank higher; the reward bottoms out at zero
		// once a name reaches the cap.
		score += lengthPenaltyCap - min(len(e.Name), lengthPenaltyCap)

		if strings.Contains(e.Path, "/projects/") {
			score += scoreProjectsPath
		}

		scored = append(scored, scoredEntry{score: score, entry: e})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > MaxResults {
		scored = scored[:MaxResults]
	}

	results := make([]entry.Entry, len(scored))
	for i, s := range scored {
		results[i] = s.entry
	}
	return results
}
