// Package models defines data structures for the rating document.
package models

// RatingDocument is the converted rating payload for one year.
type RatingDocument struct {
	// Year is the target year of the ratings.
	Year int `json:"year"`
	// Months holds exactly twelve entries, numbered 1 through 12.
	Months []Month `json:"months"`
}

// Month represents one calendar period of the rating.
type Month struct {
	// Name is the fixed calendar label of the month.
	Name string `json:"name"`
	// Number is the 1-based position of the month.
	Number int `json:"number"`
	// Items contains one entry per registry institution, in registry order.
	Items []Item `json:"items"`
}

// Item pairs an institution with its scores for a month.
type Item struct {
	// Name is the normalized institution name.
	Name string `json:"name"`
	// Scores is the score set of the institution.
	Scores ScoreSet `json:"scores"`
}

// Month returns the month with the given 1-based number.
func (d *RatingDocument) Month(number int) (Month, bool) {
	for _, m := range d.Months {
		if m.Number == number {
			return m, true
		}
	}
	return Month{}, false
}
