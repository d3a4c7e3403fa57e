package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkondo9/pillarbar-go/pkg/pillarbar"
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/resolver"
)

func adapterFixture() (*Adapter, *models.State, []models.CategoryRecord) {
	st := &models.State{
		SentimentColors: models.SentimentColorSettings{
			Total: "#333333", Favorable: "#2e7d32", Adverse: "#c62828", Other: "#9e9e9e",
		},
		Margins: models.MarginSettings{Top: 5, Bottom: 5, Left: 5, Right: 5},
	}
	cats := []models.CategoryRecord{
		{DisplayName: "Revenue", CategoryKey: "revenue", Identity: "id-revenue", BarColor: "#1b5e20"},
		{DisplayName: "Other", CategoryKey: models.OtherCategoryKey},
	}
	return NewAdapter(pillarbar.New(pillarbar.DefaultOptions())), st, cats
}

func TestAdapterGlobalItemHasNilTarget(t *testing.T) {
	adapter, st, cats := adapterFixture()

	resp, err := adapter.Enumerate(Request{Group: resolver.GroupMargins}, models.ModeStatic, st, cats)
	require.NoError(t, err)
	require.Len(t, resp.Instances, 1)
	assert.Nil(t, resp.Instances[0].Target)
	assert.Equal(t, models.Range{Min: 0, Max: 100}, resp.Instances[0].ValidRange["top"])
}

func TestAdapterScopeTagTarget(t *testing.T) {
	adapter, st, cats := adapterFixture()

	resp, err := adapter.Enumerate(Request{Group: resolver.GroupSentimentColors}, models.ModeStatic, st, cats)
	require.NoError(t, err)
	require.Len(t, resp.Instances, 2)

	scoped := resp.Instances[0]
	require.NotNil(t, scoped.Target)
	assert.Equal(t, models.MatchScopeInstancesAndTotals, *scoped.Target)
	assert.Equal(t, "id-revenue", scoped.Selector)

	global := resp.Instances[1]
	assert.Nil(t, global.Target)
	assert.Empty(t, global.Selector)
}

func TestAdapterIdentityTarget(t *testing.T) {
	adapter, st, cats := adapterFixture()

	resp, err := adapter.Enumerate(Request{Group: resolver.GroupPillars}, models.ModeStatic, st, cats)
	require.NoError(t, err)
	require.Len(t, resp.Instances, 1)
	require.NotNil(t, resp.Instances[0].Target)
	assert.Equal(t, "id-revenue", *resp.Instances[0].Target)
	assert.Equal(t, "Revenue", resp.Instances[0].DisplayName)
}

func TestAdapterUnknownGroupEmptyResponse(t *testing.T) {
	adapter, st, cats := adapterFixture()

	resp, err := adapter.Enumerate(Request{Group: "bogus"}, models.ModeStatic, st, cats)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Instances)
}

func TestAdapterSnapshotsState(t *testing.T) {
	adapter, st, cats := adapterFixture()

	first, err := adapter.Enumerate(Request{Group: resolver.GroupSentimentColors}, models.ModeStatic, st, cats)
	require.NoError(t, err)

	// Host mutation after the call must not reach into the response.
	cats[0].BarColor = "#000000"
	st.SentimentColors.Other = "#ffffff"
	assert.Equal(t, "#1b5e20", first.Instances[0].Properties["fill"])
	assert.Equal(t, "#9e9e9e", first.Instances[1].Properties["other"])
}
