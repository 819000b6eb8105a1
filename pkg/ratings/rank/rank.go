// Package rank orders the institutions of one month by a score category.
package rank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ukaji3/ratings-go/pkg/ratings/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Entry is one ranked institution.
type Entry struct {
	Position int
	Name     string
	Score    *float64
}

// Query selects and limits the ranked institutions.
type Query struct {
	// Category is a score key from models.Categories.
	Category string
	// Name filters institutions by case-insensitive substring.
	Name string
	// Limit caps the result length; zero means no limit.
	Limit int
}

// Result holds the ranked entries and the number matched before Limit.
type Result struct {
	Entries []Entry
	Total   int
}

// Rank orders items by score, highest first. Absent scores go last and
// equal scores are ordered by name using Russian collation.
func Rank(items []models.Item, q Query) (Result, error) {
	if _, ok := (models.ScoreSet{}).Get(q.Category); !ok {
		return Result{}, fmt.Errorf("unknown category %q", q.Category)
	}

	needle := strings.ToLower(q.Name)
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		score, _ := item.Scores.Get(q.Category)
		entries = append(entries, Entry{Name: item.Name, Score: score})
	}

	coll := collate.New(language.Russian)
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Score, entries[j].Score
		switch {
		case a == nil && b == nil:
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a > *b
		}
		return coll.CompareString(entries[i].Name, entries[j].Name) < 0
	})

	total := len(entries)
	if q.Limit > 0 && q.Limit < total {
		entries = entries[:q.Limit]
	}
	for i := range entries {
		entries[i].Position = i + 1
	}

	return Result{Entries: entries, Total: total}, nil
}

var printer = message.NewPrinter(language.Russian)

// FormatScore renders a score with three decimals in Russian notation.
// Absent scores render as an em dash.
func FormatScore(score *float64) string {
	if score == nil {
		return "—"
	}
	return printer.Sprintf("%.3f", *score)
}
