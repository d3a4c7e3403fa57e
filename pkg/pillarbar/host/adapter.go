// Package host translates enumeration results into the host's
// request/response shape.
package host

import (
	"github.com/tiendc/go-deepcopy"

	"github.com/mkondo9/pillarbar-go/pkg/pillarbar"
	"github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"
)

// Request is one host enumeration call for a single option group.
type Request struct {
	// Group is the option group identifier.
	Group string `json:"group"`
}

// Instance is the serializable host-facing form of one property item. The
// target is the category identity, the conditional-formatting scope tag, or
// null for a global item.
type Instance struct {
	// DisplayName labels a category-targeted item.
	DisplayName string `json:"display_name,omitempty"`
	// Properties maps option name to current value.
	Properties map[string]any `json:"properties"`
	// Target is the identity or scope tag; nil means global.
	Target *string `json:"target"`
	// Selector is the auxiliary constant-value selector accompanying a
	// scope-tagged target.
	Selector string `json:"selector,omitempty"`
	// ValidRange maps numeric option names to their bounds.
	ValidRange map[string]models.Range `json:"valid_range,omitempty"`
}

// Response carries the ordered items for one request.
type Response struct {
	// Group echoes the requested group identifier.
	Group string `json:"group"`
	// Instances are the resolved items, in enumeration order.
	Instances []Instance `json:"instances"`
}

// Adapter resolves host requests against an engine. It snapshots the host
// state on every call so the host event loop can keep mutating its own copy
// while enumeration runs.
type Adapter struct {
	engine *pillarbar.Engine
}

// NewAdapter creates an Adapter around the given engine.
func NewAdapter(engine *pillarbar.Engine) *Adapter {
	return &Adapter{engine: engine}
}

// Enumerate resolves one request. The returned response is always non-nil;
// an unknown group yields an empty instance list.
func (a *Adapter) Enumerate(req Request, mode models.Mode, st *models.State, cats []models.CategoryRecord) (*Response, error) {
	snap, err := snapshot(st, cats)
	if err != nil {
		return nil, err
	}

	items := a.engine.Enumerate(req.Group, mode, snap.state, snap.categories)
	resp := &Response{Group: req.Group, Instances: make([]Instance, 0, len(items))}
	for _, item := range items {
		resp.Instances = append(resp.Instances, translate(item))
	}
	return resp, nil
}

type stateSnapshot struct {
	state      *models.State
	categories []models.CategoryRecord
}

// snapshot deep-copies the inbound state and categories.
func snapshot(st *models.State, cats []models.CategoryRecord) (stateSnapshot, error) {
	var snap stateSnapshot
	if st != nil {
		snap.state = &models.State{}
		if err := deepcopy.Copy(snap.state, st); err != nil {
			return stateSnapshot{}, err
		}
	}
	if len(cats) > 0 {
		if err := deepcopy.Copy(&snap.categories, &cats); err != nil {
			return stateSnapshot{}, err
		}
	}
	return snap, nil
}

// translate converts one engine item into the host wire shape.
func translate(item models.PropertyInstance) Instance {
	inst := Instance{
		DisplayName: item.DisplayName,
		Properties:  item.Properties,
		ValidRange:  item.Ranges,
	}
	switch {
	case item.Scope != nil:
		scope := item.Scope.Scope
		inst.Target = &scope
		inst.Selector = item.Scope.Identity
	case item.Target != "":
		target := item.Target
		inst.Target = &target
	}
	return inst
}
