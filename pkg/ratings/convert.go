package ratings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/ratings-go/pkg/ratings/models"
	"github.com/ukaji3/ratings-go/pkg/ratings/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Convert builds a rating document from a registry file and a workbook file.
// It fails only when an input file is missing or cannot be parsed as a whole.
func Convert(registryPath, workbookPath string, opts Options) (*models.RatingDocument, error) {
	registry, err := LoadRegistry(registryPath)
	if err != nil {
		return nil, err
	}

	f, err := OpenWorkbook(workbookPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ConvertWorkbook(f, registry, opts)
}

// OpenWorkbook opens a workbook file, classifying failures as
// ErrFileNotFound or ErrInvalidFormat.
func OpenWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewConversionError(StageWorkbook, path, ErrFileNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewConversionError(StageWorkbook, path, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return f, nil
}

// ConvertWorkbook builds a rating document from an open workbook.
// Months without a sheet of the same name reuse the first sheet.
func ConvertWorkbook(f *excelize.File, registry []string, opts Options) (*models.RatingDocument, error) {
	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, NewConversionError(StageWorkbook, f.Path, fmt.Errorf("%w: no sheets", ErrInvalidFormat))
	}

	log := opts.logger()
	cols := opts.columns()
	sheets := newSheetCache(f, cols.Name, log)

	present := make(map[string]bool, len(sheetList))
	for _, name := range sheetList {
		present[name] = true
	}
	fallback := sheetList[0]

	months := make([]models.Month, 0, len(MonthNames))
	for idx, monthName := range MonthNames {
		sheetName := monthName
		if !present[sheetName] {
			log.Debug("month sheet not found, using fallback",
				zap.String("month", monthName), zap.String("sheet", fallback))
			sheetName = fallback
		}

		items, missing := parser.BuildItems(sheets.index(sheetName), registry, cols)
		if len(missing) > 0 {
			log.Debug("institutions without a row",
				zap.String("month", monthName), zap.Strings("names", missing))
		}

		months = append(months, models.Month{
			Name:   monthName,
			Number: idx + 1,
			Items:  items,
		})
	}

	log.Info("ratings converted",
		zap.Int("institutions", len(registry)),
		zap.Int("sheets", len(sheetList)),
		zap.Int("parsed_sheets", len(sheets.indexes)))

	return &models.RatingDocument{
		Year:   opts.year(),
		Months: months,
	}, nil
}

// sheetCache reads and indexes each sheet at most once.
type sheetCache struct {
	f          *excelize.File
	nameColumn string
	log        *zap.Logger
	indexes    map[string]parser.RowIndex
}

func newSheetCache(f *excelize.File, nameColumn string, log *zap.Logger) *sheetCache {
	return &sheetCache{
		f:          f,
		nameColumn: nameColumn,
		log:        log,
		indexes:    make(map[string]parser.RowIndex),
	}
}

func (c *sheetCache) index(sheetName string) parser.RowIndex {
	if idx, ok := c.indexes[sheetName]; ok {
		return idx
	}

	rows, err := parser.ReadSheet(c.f, sheetName)
	if err != nil {
		// Treat an unreadable sheet as empty
		c.log.Warn("cannot read sheet", zap.String("sheet", sheetName), zap.Error(err))
		rows = nil
	}

	idx, duplicates := parser.IndexRows(rows, c.nameColumn)
	if len(duplicates) > 0 {
		c.log.Debug("duplicate institution rows, later rows win",
			zap.String("sheet", sheetName), zap.Strings("names", duplicates))
	}
	c.indexes[sheetName] = idx
	return idx
}
