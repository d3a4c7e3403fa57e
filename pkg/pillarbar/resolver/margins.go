package resolver

import "github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"

// resolveMargins emits exactly one global item with the four margin values,
// each bounded independently.
func resolveMargins(ctx *Context) []models.PropertyInstance {
	m := ctx.State.Margins
	return []models.PropertyInstance{
		models.NewInstance(GroupMargins).
			Prop("top", m.Top).
			Range("top", 0, 100).
			Prop("bottom", m.Bottom).
			Range("bottom", 0, 100).
			Prop("left", m.Left).
			Range("left", 0, 100).
			Prop("right", m.Right).
			Range("right", 0, 100).
			Build(),
	}
}
