package resolver

import "github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"

// resolveYAxis emits the value axis group: base toggles first, then one
// follow-up item per stroke feature that is switched on.
func resolveYAxis(ctx *Context) []models.PropertyInstance {
	ax := ctx.State.YAxis
	out := []models.PropertyInstance{
		models.NewInstance(GroupYAxis).
			Prop("show", ax.Show).
			Prop("dataPoint", ax.DataPoint).
			Prop("showValues", ax.ShowValues).
			Build(),
	}
	if ax.ShowValues {
		out = append(out, models.NewInstance(GroupYAxis).
			Prop("fontSize", ax.FontSize).
			Prop("fontColor", ax.FontColor).
			Prop("valueFormat", ax.ValueFormat).
			Prop("decimalPlaces", ax.DecimalPlaces).
			Range("decimalPlaces", 0, 15).
			Build())
	}
	out = append(out, models.NewInstance(GroupYAxis).
		Prop("showGridline", ax.ShowGridline).
		Build())
	if ax.ShowGridline {
		out = append(out, models.NewInstance(GroupYAxis).
			Prop("gridlineWidth", ax.GridlineWidth).
			Range("gridlineWidth", 1, 50).
			Prop("gridlineColor", ax.GridlineColor).
			Build())
	}
	out = append(out, models.NewInstance(GroupYAxis).
		Prop("showZeroLine", ax.ShowZeroLine).
		Build())
	if ax.ShowZeroLine {
		out = append(out, models.NewInstance(GroupYAxis).
			Prop("zeroLineWidth", ax.ZeroLineWidth).
			Range("zeroLineWidth", 1, 50).
			Prop("zeroLineColor", ax.ZeroLineColor).
			Build())
	}
	out = append(out, models.NewInstance(GroupYAxis).
		Prop("joinBars", ax.JoinBars).
		Build())
	if ax.JoinBars {
		out = append(out, models.NewInstance(GroupYAxis).
			Prop("joinBarWidth", ax.JoinBarWidth).
			Range("joinBarWidth", 1, 50).
			Prop("joinBarColor", ax.JoinBarColor).
			Build())
	}
	return out
}
