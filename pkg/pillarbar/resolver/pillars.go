package resolver

import "github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"

// resolvePillars emits roll-up options. Flat modes expose one item per
// category; the drillable category mode exposes only the total pillar
// toggle; matrix modes expose nothing.
func resolvePillars(ctx *Context) []models.PropertyInstance {
	switch ctx.Mode {
	case models.ModeStatic:
		return perCategoryPillars(ctx)
	case models.ModeStaticCategory:
		var out []models.PropertyInstance
		if !ctx.State.Pillars.TotalPillar {
			out = perCategoryPillars(ctx)
		}
		if !hasExplicitPillar(ctx) {
			out = append(out, models.NewInstance(GroupPillars).
				Prop("totalPillar", ctx.State.Pillars.TotalPillar).
				Build())
		}
		return out
	case models.ModeDrillableCategory:
		return []models.PropertyInstance{
			models.NewInstance(GroupPillars).
				Prop("totalPillar", ctx.State.Pillars.TotalPillar).
				Build(),
		}
	default:
		return nil
	}
}

// perCategoryPillars emits one targeted item per non-sentinel category
// exposing its roll-up flag. A record without an identity falls back to a
// global item rather than emitting a malformed target.
func perCategoryPillars(ctx *Context) []models.PropertyInstance {
	var out []models.PropertyInstance
	for _, cat := range ctx.Categories {
		if cat.IsOther() {
			continue
		}
		b := models.NewInstance(GroupPillars).
			Prop("pillars", cat.PillarFlag()).
			DisplayName(cat.DisplayName)
		if cat.Identity != "" {
			b.Target(cat.Identity)
		}
		out = append(out, b.Build())
	}
	return out
}

// hasExplicitPillar reports whether, with the total pillar toggle off, any
// non-sentinel category except the last one is flagged as a pillar. The
// last-position exclusion is preserved observed behavior: a lone pillar in
// the final position does not qualify.
func hasExplicitPillar(ctx *Context) bool {
	if ctx.State.Pillars.TotalPillar {
		return false
	}
	var regular []models.CategoryRecord
	for _, cat := range ctx.Categories {
		if !cat.IsOther() {
			regular = append(regular, cat)
		}
	}
	for i := 0; i < len(regular)-1; i++ {
		if regular[i].PillarFlag() {
			return true
		}
	}
	return false
}
