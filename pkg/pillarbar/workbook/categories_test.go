package workbook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mkondo9/pillarbar-go/pkg/pillarbar"
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"
)

func TestBindCategories(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	header := []any{"name", "value", "key", "pillar", "bar_color", "font_color", "position", "children"}
	rows := [][]any{
		{"Revenue", 1200, "revenue", "true", "#1b5e20", "#ffffff", "", 2},
		{"Costs", -700.5, "costs", "no", "#b71c1c", "", "outsideEnd", nil},
		{"Other", 55, models.OtherCategoryKey, nil, nil, nil, nil, nil},
		{"", 999, "skipped", nil, nil, nil, nil, nil},
	}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	cats, err := BindCategories(f, sheet)
	require.NoError(t, err)
	require.Len(t, cats, 3, "row without a name is skipped")

	revenue := cats[0]
	assert.Equal(t, "Revenue", revenue.DisplayName)
	assert.Equal(t, "revenue", revenue.CategoryKey)
	assert.Equal(t, 1200.0, revenue.Value)
	require.NotNil(t, revenue.IsPillar)
	assert.True(t, *revenue.IsPillar)
	assert.Equal(t, "#1b5e20", revenue.BarColor)
	assert.Equal(t, 2, revenue.ChildCount)
	assert.Equal(t, "Sheet1!2", revenue.Identity)

	costs := cats[1]
	assert.Equal(t, -700.5, costs.Value)
	require.NotNil(t, costs.IsPillar)
	assert.False(t, *costs.IsPillar)
	require.NotNil(t, costs.LabelPosition)
	assert.Equal(t, "outsideEnd", *costs.LabelPosition)

	other := cats[2]
	assert.True(t, other.IsOther())
	assert.Empty(t, other.Identity, "sentinel bucket stays untargetable")
	assert.Nil(t, other.IsPillar)
}

func TestBindCategoriesKeyDefaultsToName(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	header := []any{"name", "value"}
	row := []any{"Margin", 3}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))

	cats, err := BindCategories(f, "Sheet1")
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Margin", cats[0].CategoryKey)
}

func TestBindCategoriesMissingNameHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	header := []any{"value", "key"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))

	_, err := BindCategories(f, "Sheet1")
	require.Error(t, err)
	assert.ErrorIs(t, err, pillarbar.ErrInvalidFormat)

	var loadErr *pillarbar.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "categories", loadErr.Component)
}

func TestBindCategoriesEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	cats, err := BindCategories(f, "Sheet1")
	require.NoError(t, err)
	assert.Empty(t, cats)
}
