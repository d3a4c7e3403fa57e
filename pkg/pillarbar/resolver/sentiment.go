package resolver

import "github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"

// resolveSentimentColors emits bar coloring options. Flat modes switch
// between the four sentiment slots and per-category custom colors; every
// other mode always exposes the four slots regardless of the toggle.
func resolveSentimentColors(ctx *Context) []models.PropertyInstance {
	if !flatMode(ctx.Mode) {
		return []models.PropertyInstance{sentimentSlotItem(ctx)}
	}
	if sentimentActive(ctx) {
		return []models.PropertyInstance{sentimentSlotItem(ctx)}
	}
	return perCategoryColors(ctx)
}

// sentimentSlotItem builds the global item carrying all four sentiment
// color slots.
func sentimentSlotItem(ctx *Context) models.PropertyInstance {
	sc := ctx.State.SentimentColors
	return models.NewInstance(GroupSentimentColors).
		Prop("total", sc.Total).
		Prop("favorable", sc.Favorable).
		Prop("adverse", sc.Adverse).
		Prop("other", sc.Other).
		Build()
}

// perCategoryColors emits one conditional-formatting color item per
// non-sentinel category, scoped to all instances and their totals with the
// category identity as the literal fallback selector. The sentinel bucket
// gets a global item exposing only the "other" slot.
func perCategoryColors(ctx *Context) []models.PropertyInstance {
	var out []models.PropertyInstance
	for _, cat := range ctx.Categories {
		if cat.IsOther() {
			out = append(out, models.NewInstance(GroupSentimentColors).
				Prop("other", ctx.State.SentimentColors.Other).
				Build())
			continue
		}
		b := models.NewInstance(GroupSentimentColors).
			Prop("fill", cat.BarColor).
			DisplayName(cat.DisplayName)
		if cat.Identity != "" {
			b.MatchScope(models.MatchScopeInstancesAndTotals, cat.Identity)
		}
		out = append(out, b.Build())
	}
	return out
}
