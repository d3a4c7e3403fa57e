// Package resolver contains one decision table per option group, each a pure
// function producing the ordered property items the host may show.
package resolver

import (
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"
)

// Group identifiers form the closed set of enumerable option groups. Any
// other identifier resolves to an empty result.
const (
	GroupOrientation     = "orientation"
	GroupPillars         = "pillars"
	GroupLegend          = "legend"
	GroupSentimentColors = "sentimentColors"
	GroupXAxis           = "xAxisFormatting"
	GroupYAxis           = "yAxisFormatting"
	GroupLabels          = "labelFormatting"
	GroupMargins         = "margins"
)

// Context carries one enumeration call's immutable inputs. Resolvers read
// it and never mutate it; they hold no state across calls.
type Context struct {
	// Mode is the active operating mode.
	Mode models.Mode
	// State is the current option-group snapshot.
	State *models.State
	// Categories are the bound data records, sentinel bucket included.
	Categories []models.CategoryRecord
	// DefaultGridlineWidth is the caller default for the category axis
	// gridline stroke width when the state carries none.
	DefaultGridlineWidth float64
}

// Func resolves one option group into its ordered property items.
type Func func(ctx *Context) []models.PropertyInstance

var registry = map[string]Func{
	GroupOrientation:     resolveOrientation,
	GroupPillars:         resolvePillars,
	GroupLegend:          resolveLegend,
	GroupSentimentColors: resolveSentimentColors,
	GroupXAxis:           resolveXAxis,
	GroupYAxis:           resolveYAxis,
	GroupLabels:          resolveLabels,
	GroupMargins:         resolveMargins,
}

// groupOrder fixes the iteration order for whole-surface enumeration.
var groupOrder = []string{
	GroupOrientation,
	GroupPillars,
	GroupLegend,
	GroupSentimentColors,
	GroupXAxis,
	GroupYAxis,
	GroupLabels,
	GroupMargins,
}

// Groups returns the closed set of group identifiers in enumeration order.
func Groups() []string {
	out := make([]string, len(groupOrder))
	copy(out, groupOrder)
	return out
}

// Known reports whether the identifier belongs to the closed group set.
func Known(group string) bool {
	_, ok := registry[group]
	return ok
}

// Resolve dispatches one group to its resolver. Unknown identifiers return
// nil; that is the contract for "nothing to show", not an error.
func Resolve(group string, ctx *Context) []models.PropertyInstance {
	fn, ok := registry[group]
	if !ok {
		return nil
	}
	return fn(ctx)
}

// sentimentActive reports whether the sentiment feature toggle is on.
// Callers combine it with flatMode: outside the flat modes the toggle is
// ignored and sentiment slots always apply.
func sentimentActive(ctx *Context) bool {
	return ctx.State.Orientation.UseSentimentFeatures
}

// flatMode reports whether the mode is one of the two flat category lists.
func flatMode(mode models.Mode) bool {
	return mode == models.ModeStatic || mode == models.ModeStaticCategory
}
