package resolver

import "github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"

// resolveLegend emits the legend options only while sentiment features are
// on; without them the legend has nothing to describe.
func resolveLegend(ctx *Context) []models.PropertyInstance {
	if !ctx.State.Orientation.UseSentimentFeatures {
		return nil
	}
	lg := ctx.State.Legend
	return []models.PropertyInstance{
		models.NewInstance(GroupLegend).
			Prop("show", lg.Show).
			Prop("favorableText", lg.FavorableText).
			Prop("adverseText", lg.AdverseText).
			Prop("fontSize", lg.FontSize).
			Prop("fontColor", lg.FontColor).
			Prop("fontFamily", lg.FontFamily).
			Build(),
	}
}
