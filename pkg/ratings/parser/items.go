package parser

import (
	"strconv"

	"github.com/ukaji3/ratings-go/pkg/ratings/models"
)

// RowIndex maps a normalized institution name to its source row.
type RowIndex map[string]Row

// IndexRows builds a RowIndex from sheet rows.
// Rows without a name are skipped; a later row replaces an earlier one
// with the same normalized name. The second result lists replaced names.
func IndexRows(rows []Row, nameColumn string) (RowIndex, []string) {
	index := make(RowIndex, len(rows))
	var duplicates []string
	for _, row := range rows {
		name := NormalizeName(row[nameColumn])
		if name == "" {
			continue
		}
		if _, ok := index[name]; ok {
			duplicates = append(duplicates, name)
		}
		index[name] = row
	}
	return index, duplicates
}

// ExtractScores coerces the score columns of a row.
// A nil row yields an all-absent score set.
func ExtractScores(row Row, cols Columns) models.ScoreSet {
	scores := models.ScoreSet{
		Consolidated: Number(row[cols.Consolidated]),
		SMI:          Number(row[cols.SMI]),
		Social:       Number(row[cols.Social]),
		VK:           Number(row[cols.VK]),
		Telegram:     Number(row[cols.Telegram]),
		Max:          Number(row[cols.Max]),
		Rutube:       Number(row[cols.Rutube]),
		Site:         Number(row[cols.Site]),
		Agenda:       Number(row[cols.Agenda]),
	}
	if scores.Social == nil {
		scores.Social = SocialTotal(scores.SocialParts())
	}
	return scores
}

// SocialTotal sums the present platform scores, rounded to 3 decimals.
// It returns nil when none of the parts are present.
func SocialTotal(parts []*float64) *float64 {
	var (
		sum     float64
		present bool
	)
	for _, p := range parts {
		if p == nil {
			continue
		}
		sum += *p
		present = true
	}
	if !present {
		return nil
	}
	total := round(sum, 3)
	return &total
}

// BuildItems produces one item per registry name, in registry order.
// The second result lists registry names with no row in the index.
func BuildItems(index RowIndex, registry []string, cols Columns) ([]models.Item, []string) {
	items := make([]models.Item, 0, len(registry))
	var missing []string
	for _, name := range registry {
		normalized := NormalizeName(name)
		row, ok := index[normalized]
		if !ok {
			missing = append(missing, normalized)
		}
		items = append(items, models.Item{
			Name:   normalized,
			Scores: ExtractScores(row, cols),
		})
	}
	return items, missing
}

// round rounds half to even on the exact binary value of v.
func round(v float64, places int) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return r
}
