package pillarbar

import (
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/resolver"
)

// Engine resolves option groups into ordered property items. It carries no
// state between calls; every enumeration reads only its arguments, so the
// host may call it concurrently from its event loop.
type Engine struct {
	opts Options
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Groups returns the closed set of enumerable group identifiers in their
// fixed enumeration order.
func Groups() []string {
	return resolver.Groups()
}

// KnownGroup reports whether the identifier belongs to the closed group set.
func KnownGroup(group string) bool {
	return resolver.Known(group)
}

// Enumerate resolves one option group for the given mode, state snapshot,
// and bound categories. Identical inputs always yield an identical,
// identically ordered result. An identifier outside the closed group set
// yields nil; that is the "nothing to show" contract, not an error.
func (e *Engine) Enumerate(group string, mode models.Mode, st *models.State, cats []models.CategoryRecord) []models.PropertyInstance {
	if st == nil {
		return nil
	}
	ctx := &resolver.Context{
		Mode:                 mode,
		State:                st,
		Categories:           cats,
		DefaultGridlineWidth: e.opts.DefaultGridlineWidth,
	}
	return resolver.Resolve(group, ctx)
}

// EnumerateAll resolves every group in enumeration order and returns the
// results keyed by group identifier. Groups with nothing to show are
// omitted.
func (e *Engine) EnumerateAll(mode models.Mode, st *models.State, cats []models.CategoryRecord) map[string][]models.PropertyInstance {
	out := make(map[string][]models.PropertyInstance)
	for _, group := range resolver.Groups() {
		if items := e.Enumerate(group, mode, st, cats); len(items) > 0 {
			out[group] = items
		}
	}
	return out
}
