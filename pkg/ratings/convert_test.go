package ratings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/ratings-go/pkg/ratings/models"
	"github.com/ukaji3/ratings-go/pkg/ratings/output"
	"github.com/xuri/excelize/v2"
)

var header = []interface{}{
	"Вуз", "Сводный рейтинг", "СМИ", "Социальные сети", "ВКонтакте",
	"Telegram", "MAX", "Rutube", "Сайт", "Федеральная повестка",
}

// writeWorkbook saves a workbook with one sheet per entry of sheets, in order.
// Each sheet gets the standard header followed by the given rows.
func writeWorkbook(t *testing.T, dir string, names []string, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range names {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		row := header
		require.NoError(t, f.SetSheetRow(name, "A1", &row))
		for r, values := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &values))
		}
	}

	path := filepath.Join(dir, "ratings.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeRegistry(t *testing.T, dir string, names ...string) string {
	t.Helper()

	data, err := json.Marshal(names)
	require.NoError(t, err)
	path := filepath.Join(dir, "universities.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestConvertEndToEnd(t *testing.T) {
	dir := t.TempDir()
	registry := writeRegistry(t, dir, "A University", "B University")
	workbook := writeWorkbook(t, dir, []string{"Data"}, map[string][][]interface{}{
		"Data": {
			{"A University", 10, nil, nil, 1, 2},
		},
	})

	doc, err := Convert(registry, workbook, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, DefaultYear, doc.Year)
	require.Len(t, doc.Months, 12)

	first := doc.Months[0]
	assert.Equal(t, "Январь", first.Name)
	assert.Equal(t, 1, first.Number)
	require.Len(t, first.Items, 2)

	got, err := json.Marshal(first.Items)
	require.NoError(t, err)
	want := `[{"name":"A University","scores":{"consolidated":10,"smi":null,"social":3,"vk":1,"tg":2,"ok":null,"rt":null,"site":null,"agenda":null}},` +
		`{"name":"B University","scores":{"consolidated":null,"smi":null,"social":null,"vk":null,"tg":null,"ok":null,"rt":null,"site":null,"agenda":null}}]`
	assert.JSONEq(t, want, string(got))
}

func TestConvertMonthResolution(t *testing.T) {
	dir := t.TempDir()
	registry := writeRegistry(t, dir, "A University")
	workbook := writeWorkbook(t, dir, []string{"Итог", "Март", "май"}, map[string][][]interface{}{
		"Итог": {{"A University", 1}},
		"Март": {{"A University", 3}},
		"май":  {{"A University", 5}},
	})

	doc, err := Convert(registry, workbook, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, doc.Months, 12)

	for i, m := range doc.Months {
		assert.Equal(t, i+1, m.Number)
		assert.Equal(t, MonthNames[i], m.Name)
		require.Len(t, m.Items, 1)
	}

	consolidated := func(number int) float64 {
		m, ok := doc.Month(number)
		require.True(t, ok)
		require.NotNil(t, m.Items[0].Scores.Consolidated)
		return *m.Items[0].Scores.Consolidated
	}

	assert.Equal(t, 3.0, consolidated(3), "named sheet is used")
	// Sheet names match exactly: "май" does not resolve "Май"
	assert.Equal(t, 1.0, consolidated(5))
	assert.Equal(t, 1.0, consolidated(1))
	assert.Equal(t, 1.0, consolidated(12))
	assert.Equal(t, doc.Months[0].Items, doc.Months[11].Items)
}

func TestConvertWorkbookLastRowWins(t *testing.T) {
	dir := t.TempDir()
	workbook := writeWorkbook(t, dir, []string{"Январь"}, map[string][][]interface{}{
		"Январь": {
			{"A University", 1},
			{" A University ", 2},
			{"", 99},
		},
	})

	f, err := OpenWorkbook(workbook)
	require.NoError(t, err)
	defer f.Close()

	doc, err := ConvertWorkbook(f, []string{"A University"}, Options{})
	require.NoError(t, err)

	got := doc.Months[0].Items[0].Scores.Consolidated
	require.NotNil(t, got)
	assert.Equal(t, 2.0, *got)
}

func TestConvertCellCoercion(t *testing.T) {
	dir := t.TempDir()
	registry := writeRegistry(t, dir, "A University")
	workbook := writeWorkbook(t, dir, []string{"Январь"}, map[string][][]interface{}{
		"Январь": {
			{"A University", "12,5", "abc", 5.0, 100, 200, nil, nil, "", "NaN"},
		},
	})

	doc, err := Convert(registry, workbook, Options{Year: 2027})
	require.NoError(t, err)
	assert.Equal(t, 2027, doc.Year)

	scores := doc.Months[0].Items[0].Scores
	require.NotNil(t, scores.Consolidated)
	assert.Equal(t, 12.5, *scores.Consolidated)
	assert.Nil(t, scores.SMI)
	require.NotNil(t, scores.Social)
	assert.Equal(t, 5.0, *scores.Social, "present social is kept as-is")
	assert.Nil(t, scores.Max)
	assert.Nil(t, scores.Site)
	assert.Nil(t, scores.Agenda)
}

func TestConvertCustomColumns(t *testing.T) {
	dir := t.TempDir()
	registry := writeRegistry(t, dir, "A University")
	workbook := writeWorkbook(t, dir, []string{"Январь"}, map[string][][]interface{}{
		"Январь": {{"A University", 1, 2}},
	})

	opts := DefaultOptions()
	opts.Columns.Consolidated = "СМИ"

	doc, err := Convert(registry, workbook, opts)
	require.NoError(t, err)

	got := doc.Months[0].Items[0].Scores.Consolidated
	require.NotNil(t, got)
	assert.Equal(t, 2.0, *got)
}

func TestConvertDeterministic(t *testing.T) {
	dir := t.TempDir()
	registry := writeRegistry(t, dir, "Б Университет", "A University")
	workbook := writeWorkbook(t, dir, []string{"Февраль", "Январь"}, map[string][][]interface{}{
		"Февраль": {{"A University", 1.25, 3}, {"Б Университет", 2}},
		"Январь":  {{"Б Университет", nil, nil, nil, 0.1, 0.2}},
	})

	render := func() []byte {
		doc, err := Convert(registry, workbook, DefaultOptions())
		require.NoError(t, err)
		data, err := output.ToJSON(doc, true)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, render(), render())
}

func TestConvertFatalErrors(t *testing.T) {
	dir := t.TempDir()
	registry := writeRegistry(t, dir, "A University")
	workbook := writeWorkbook(t, dir, []string{"Январь"}, nil)

	t.Run("missing registry", func(t *testing.T) {
		_, err := Convert(filepath.Join(dir, "nope.json"), workbook, DefaultOptions())
		assert.ErrorIs(t, err, ErrFileNotFound)

		var convErr *ConversionError
		require.ErrorAs(t, err, &convErr)
		assert.Equal(t, StageRegistry, convErr.Stage)
	})

	t.Run("invalid registry", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"name": "A"}`), 0644))

		_, err := Convert(bad, workbook, DefaultOptions())
		assert.ErrorIs(t, err, ErrInvalidRegistry)
	})

	t.Run("missing workbook", func(t *testing.T) {
		_, err := Convert(registry, filepath.Join(dir, "nope.xlsx"), DefaultOptions())
		assert.ErrorIs(t, err, ErrFileNotFound)

		var convErr *ConversionError
		require.ErrorAs(t, err, &convErr)
		assert.Equal(t, StageWorkbook, convErr.Stage)
	})

	t.Run("unparseable workbook", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.xlsx")
		require.NoError(t, os.WriteFile(bad, []byte("not a workbook"), 0644))

		_, err := Convert(registry, bad, DefaultOptions())
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	assert.Equal(t, DefaultYear, opts.year())
	assert.Equal(t, "Вуз", opts.columns().Name)
	assert.NotNil(t, opts.logger())

	assert.Equal(t, models.CategoryConsolidated, models.Categories[0])
}
