package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"
)

func TestLabelsShowOffEmitsOnlyToggle(t *testing.T) {
	st := testState()
	st.Labels.Show = false
	ctx := &Context{Mode: models.ModeStatic, State: st, Categories: testCategories()}

	items := Resolve(GroupLabels, ctx)
	require.Len(t, items, 1)
	assert.Equal(t, map[string]any{"show": false}, items[0].Properties)
}

func TestLabelsDefaultBranches(t *testing.T) {
	ctx := &Context{Mode: models.ModeStatic, State: testState(), Categories: testCategories()}

	items := Resolve(GroupLabels, ctx)
	// base, default font color, font family, position toggle, default
	// position, value format, hide zero/blank
	require.Len(t, items, 7)

	assert.Equal(t, map[string]any{"defaultFontColor": "#111111"}, items[1].Properties)
	assert.Equal(t, map[string]any{"defaultPosition": "insideEnd"}, items[4].Properties)

	format := findWithProp(items, "decimalPlaces")
	require.NotNil(t, format)
	assert.Equal(t, models.Range{Min: 0, Max: 15}, format.Ranges["decimalPlaces"])

	assert.NotNil(t, findWithProp(items, "hideZeroBlank"))
}

func TestLabelsSentimentSlots(t *testing.T) {
	st := testState()
	st.Labels.UseDefaultFontColor = false
	st.Labels.UseDefaultPosition = false
	st.Orientation.UseSentimentFeatures = true
	st.Labels.SentimentFontColors = models.SentimentFontColors{
		Total: "#000000", Favorable: "#004d00", Adverse: "#4d0000", Other: "#404040",
	}
	ctx := &Context{Mode: models.ModeStatic, State: st, Categories: testCategories()}

	items := Resolve(GroupLabels, ctx)

	colors := findWithProp(items, "favorableFontColor")
	require.NotNil(t, colors)
	assert.True(t, colors.Global())
	assert.Len(t, colors.Properties, 4)

	positions := findWithProp(items, "favorablePosition")
	require.NotNil(t, positions)
	assert.True(t, positions.Global())
	assert.Len(t, positions.Properties, 4)
}

func TestLabelsSentimentSlotsOutsideFlatModes(t *testing.T) {
	st := testState()
	st.Labels.UseDefaultFontColor = false
	st.Labels.UseDefaultPosition = false
	ctx := &Context{Mode: models.ModeDrillableMatrixMultiLevel, State: st, Categories: nil}

	items := Resolve(GroupLabels, ctx)
	assert.NotNil(t, findWithProp(items, "totalFontColor"), "sentiment slots apply outside flat modes")
	assert.NotNil(t, findWithProp(items, "totalPosition"))
}

func TestLabelsPerCategoryFontColor(t *testing.T) {
	st := testState()
	st.Labels.UseDefaultFontColor = false
	ctx := &Context{Mode: models.ModeStaticCategory, State: st, Categories: testCategories()}

	items := Resolve(GroupLabels, ctx)

	revenue := findWithProp(items, "fontColor")
	require.NotNil(t, revenue)
	require.NotNil(t, revenue.Scope)
	assert.Equal(t, models.MatchScopeInstancesAndTotals, revenue.Scope.Scope)
	assert.Equal(t, "id-revenue", revenue.Scope.Identity)
	assert.Equal(t, "#ffffff", revenue.Properties["fontColor"])

	other := findWithProp(items, "otherFontColor")
	require.NotNil(t, other)
	assert.True(t, other.Global())
}

func TestLabelsPerCategoryPosition(t *testing.T) {
	pos := "outsideEnd"
	cats := []models.CategoryRecord{
		{DisplayName: "Revenue", CategoryKey: "revenue", Identity: "id-revenue", LabelPosition: &pos},
		{DisplayName: "Costs", CategoryKey: "costs", Identity: "id-costs"},
		{DisplayName: "Other", CategoryKey: models.OtherCategoryKey},
	}
	st := testState()
	st.Labels.UseDefaultPosition = false
	ctx := &Context{Mode: models.ModeStatic, State: st, Categories: cats}

	items := Resolve(GroupLabels, ctx)

	revenue := findWithProp(items, "position")
	require.NotNil(t, revenue)
	assert.Equal(t, "id-revenue", revenue.Target)
	assert.Equal(t, "outsideEnd", revenue.Properties["position"])

	other := findWithProp(items, "otherPosition")
	require.NotNil(t, other)
	assert.True(t, other.Global(), "sentinel never targeted")
	assert.Equal(t, "Other", other.DisplayName, "labeled with the sentinel display name")
}
