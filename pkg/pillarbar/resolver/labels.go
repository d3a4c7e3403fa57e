package resolver

import "github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"

// resolveLabels emits the data label group. With the show toggle off only
// the toggle itself is editable; with it on the font color and label
// position branches fan out through their own sub-resolvers.
func resolveLabels(ctx *Context) []models.PropertyInstance {
	lb := ctx.State.Labels
	if !lb.Show {
		return []models.PropertyInstance{
			models.NewInstance(GroupLabels).
				Prop("show", lb.Show).
				Build(),
		}
	}
	out := []models.PropertyInstance{
		models.NewInstance(GroupLabels).
			Prop("show", lb.Show).
			Prop("fontSize", lb.FontSize).
			Prop("useDefaultFontColor", lb.UseDefaultFontColor).
			Build(),
	}
	out = append(out, labelFontColorItems(ctx)...)
	out = append(out, models.NewInstance(GroupLabels).
		Prop("fontFamily", lb.FontFamily).
		Build())
	out = append(out, models.NewInstance(GroupLabels).
		Prop("useDefaultPosition", lb.UseDefaultPosition).
		Build())
	out = append(out, labelPositionItems(ctx)...)
	out = append(out, models.NewInstance(GroupLabels).
		Prop("valueFormat", lb.ValueFormat).
		Prop("decimalPlaces", lb.DecimalPlaces).
		Range("decimalPlaces", 0, 15).
		Build())
	out = append(out, models.NewInstance(GroupLabels).
		Prop("hideZeroBlank", lb.HideZeroBlank).
		Build())
	return out
}

// labelFontColorItems resolves the font color branch: a single default
// color, the four sentiment slots, or per-category custom colors. The
// custom branch is only reachable in the flat modes.
func labelFontColorItems(ctx *Context) []models.PropertyInstance {
	lb := ctx.State.Labels
	if lb.UseDefaultFontColor {
		return []models.PropertyInstance{
			models.NewInstance(GroupLabels).
				Prop("defaultFontColor", lb.DefaultFontColor).
				Build(),
		}
	}
	if sentimentActive(ctx) || !flatMode(ctx.Mode) {
		fc := lb.SentimentFontColors
		return []models.PropertyInstance{
			models.NewInstance(GroupLabels).
				Prop("totalFontColor", fc.Total).
				Prop("favorableFontColor", fc.Favorable).
				Prop("adverseFontColor", fc.Adverse).
				Prop("otherFontColor", fc.Other).
				Build(),
		}
	}
	var out []models.PropertyInstance
	for _, cat := range ctx.Categories {
		if cat.IsOther() {
			out = append(out, models.NewInstance(GroupLabels).
				Prop("otherFontColor", lb.SentimentFontColors.Other).
				Build())
			continue
		}
		b := models.NewInstance(GroupLabels).
			Prop("fontColor", cat.FontColor).
			DisplayName(cat.DisplayName)
		if cat.Identity != "" {
			b.MatchScope(models.MatchScopeInstancesAndTotals, cat.Identity)
		}
		out = append(out, b.Build())
	}
	return out
}

// labelPositionItems resolves the label position branch, mirroring the font
// color split. Per-category items target the record itself; the sentinel
// bucket is exposed through the "other" slot, labeled with its display name.
func labelPositionItems(ctx *Context) []models.PropertyInstance {
	lb := ctx.State.Labels
	if lb.UseDefaultPosition {
		return []models.PropertyInstance{
			models.NewInstance(GroupLabels).
				Prop("defaultPosition", lb.DefaultPosition).
				Build(),
		}
	}
	if sentimentActive(ctx) || !flatMode(ctx.Mode) {
		sp := lb.SentimentPositions
		return []models.PropertyInstance{
			models.NewInstance(GroupLabels).
				Prop("totalPosition", sp.Total).
				Prop("favorablePosition", sp.Favorable).
				Prop("adversePosition", sp.Adverse).
				Prop("otherPosition", sp.Other).
				Build(),
		}
	}
	var out []models.PropertyInstance
	for _, cat := range ctx.Categories {
		if cat.IsOther() {
			out = append(out, models.NewInstance(GroupLabels).
				Prop("otherPosition", lb.SentimentPositions.Other).
				DisplayName(cat.DisplayName).
				Build())
			continue
		}
		pos := lb.DefaultPosition
		if cat.LabelPosition != nil {
			pos = *cat.LabelPosition
		}
		b := models.NewInstance(GroupLabels).
			Prop("position", pos).
			DisplayName(cat.DisplayName)
		if cat.Identity != "" {
			b.Target(cat.Identity)
		}
		out = append(out, b.Build())
	}
	return out
}
