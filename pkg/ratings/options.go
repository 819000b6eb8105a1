// Package ratings converts university media-rating workbooks to rating documents.
package ratings

import (
	"github.com/ukaji3/ratings-go/pkg/ratings/parser"
	"go.uber.org/zap"
)

// DefaultYear is the target year written when Options.Year is zero.
const DefaultYear = 2026

// Options configures conversion behavior.
type Options struct {
	// Year is written to the document's year field.
	Year int
	// Columns names the workbook headers read for each score.
	Columns parser.Columns
	// Logger receives conversion diagnostics. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Year:    DefaultYear,
		Columns: parser.DefaultColumns(),
	}
}

func (o Options) year() int {
	if o.Year == 0 {
		return DefaultYear
	}
	return o.Year
}

func (o Options) columns() parser.Columns {
	return parser.DefaultColumns().Merge(o.Columns)
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
