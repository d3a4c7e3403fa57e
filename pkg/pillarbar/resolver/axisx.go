package resolver

import "github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"

// resolveXAxis emits the category axis group. The angle and bar width items
// are each gated on their own toggle and carry their ranges themselves, so
// neither depends on the other's presence.
func resolveXAxis(ctx *Context) []models.PropertyInstance {
	ax := ctx.State.XAxis
	out := []models.PropertyInstance{
		models.NewInstance(GroupXAxis).
			Prop("fontSize", ax.FontSize).
			Prop("fontColor", ax.FontColor).
			Prop("fontFamily", ax.FontFamily).
			Prop("fitToWidth", ax.FitToWidth).
			Prop("labelWrap", ax.LabelWrap).
			Prop("showAngle", ax.ShowAngle).
			Build(),
	}
	if !ax.ShowAngle {
		out = append(out, models.NewInstance(GroupXAxis).
			Prop("angle", ax.Angle).
			Range("angle", -90, 90).
			Build())
	}
	if !ax.FitToWidth {
		out = append(out, models.NewInstance(GroupXAxis).
			Prop("barWidth", ax.BarWidth).
			Range("barWidth", 10, 100).
			Build())
	}
	out = append(out, models.NewInstance(GroupXAxis).
		Prop("padding", ax.Padding).
		Range("padding", 0, 20).
		Prop("showGridline", ax.ShowGridline).
		Build())
	if ax.ShowGridline {
		width := ax.GridlineWidth
		if width == 0 {
			width = ctx.DefaultGridlineWidth
		}
		out = append(out, models.NewInstance(GroupXAxis).
			Prop("gridlineWidth", width).
			Range("gridlineWidth", 1, 50).
			Prop("gridlineColor", ax.GridlineColor).
			Build())
	}
	return out
}
