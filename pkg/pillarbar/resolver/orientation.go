package resolver

import "github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"

// resolveOrientation emits the layout group. Flat modes expose sentiment
// and sorting alongside orientation; the single-level matrix drops the
// sentiment toggle but gains the breakdown limit; the remaining drill modes
// expose orientation alone.
func resolveOrientation(ctx *Context) []models.PropertyInstance {
	or := ctx.State.Orientation
	switch ctx.Mode {
	case models.ModeStatic, models.ModeStaticCategory:
		out := []models.PropertyInstance{
			models.NewInstance(GroupOrientation).
				Prop("orientation", or.Orientation).
				Prop("useSentimentFeatures", or.UseSentimentFeatures).
				Prop("sortData", or.SortData).
				Build(),
		}
		if ctx.Mode == models.ModeStaticCategory {
			out = append(out, breakdownItems(or)...)
		}
		return out
	case models.ModeDrillableMatrixSingleLevel:
		out := []models.PropertyInstance{
			models.NewInstance(GroupOrientation).
				Prop("orientation", or.Orientation).
				Prop("sortData", or.SortData).
				Build(),
		}
		return append(out, breakdownItems(or)...)
	default:
		return []models.PropertyInstance{
			models.NewInstance(GroupOrientation).
				Prop("orientation", or.Orientation).
				Build(),
		}
	}
}

// breakdownItems emits the limit toggle and, only while it is on, the
// bounded breakdown cap.
func breakdownItems(or models.OrientationSettings) []models.PropertyInstance {
	out := []models.PropertyInstance{
		models.NewInstance(GroupOrientation).
			Prop("limitBreakdown", or.LimitBreakdown).
			Build(),
	}
	if or.LimitBreakdown {
		out = append(out, models.NewInstance(GroupOrientation).
			Prop("maxBreakdown", or.MaxBreakdown).
			Range("maxBreakdown", 1, 100).
			Build())
	}
	return out
}
