package models

// MatchScopeInstancesAndTotals marks a conditional-formatting rule applied
// across all rendered instances of a category and their totals, rather than
// one fixed record.
const MatchScopeInstancesAndTotals = "instancesAndTotals"

// Range bounds a numeric property value, inclusive on both ends.
type Range struct {
	// Min is the smallest accepted value.
	Min float64 `json:"min"`
	// Max is the largest accepted value.
	Max float64 `json:"max"`
}

// MatchScope targets a property instance at a conditional-formatting rule.
type MatchScope struct {
	// Scope is the rule scope tag (MatchScopeInstancesAndTotals).
	Scope string `json:"scope"`
	// Identity is the auxiliary constant-value selector letting the host
	// fall back to a literal per-record value.
	Identity string `json:"identity,omitempty"`
}

// PropertyInstance is one emittable, host-facing configuration item. An
// instance with a non-empty Target always corresponds to exactly one
// existing CategoryRecord; the sentinel "other" category is never given a
// non-empty Target.
type PropertyInstance struct {
	// Group is the owning option group identifier.
	Group string `json:"group"`
	// DisplayName is set when the item targets one specific category.
	DisplayName string `json:"display_name,omitempty"`
	// Properties maps option name to current value.
	Properties map[string]any `json:"properties"`
	// Target is the category identity the item applies to; empty means the
	// item is global to the group.
	Target string `json:"target,omitempty"`
	// Ranges maps numeric option names to their valid ranges.
	Ranges map[string]Range `json:"valid_range,omitempty"`
	// Scope is set when the item is applied as a conditional-formatting
	// rule instead of targeting one record by identity.
	Scope *MatchScope `json:"match_scope,omitempty"`
}

// Global reports whether the item affects the whole group.
func (p PropertyInstance) Global() bool {
	return p.Target == "" && p.Scope == nil
}

// InstanceBuilder assembles a PropertyInstance. Ranges are attached at
// construction so validation metadata can never drift from the item it
// belongs to.
type InstanceBuilder struct {
	inst PropertyInstance
}

// NewInstance starts a builder for a global item in the given group.
func NewInstance(group string) *InstanceBuilder {
	return &InstanceBuilder{inst: PropertyInstance{
		Group:      group,
		Properties: make(map[string]any),
	}}
}

// Prop sets one option value.
func (b *InstanceBuilder) Prop(name string, value any) *InstanceBuilder {
	b.inst.Properties[name] = value
	return b
}

// Range bounds a numeric option set via Prop.
func (b *InstanceBuilder) Range(name string, min, max float64) *InstanceBuilder {
	if b.inst.Ranges == nil {
		b.inst.Ranges = make(map[string]Range)
	}
	b.inst.Ranges[name] = Range{Min: min, Max: max}
	return b
}

// Target points the item at one category by identity.
func (b *InstanceBuilder) Target(identity string) *InstanceBuilder {
	b.inst.Target = identity
	return b
}

// DisplayName labels the item, used for category-targeted entries.
func (b *InstanceBuilder) DisplayName(name string) *InstanceBuilder {
	b.inst.DisplayName = name
	return b
}

// MatchScope applies the item as a conditional-formatting rule with the
// given auxiliary identity selector.
func (b *InstanceBuilder) MatchScope(scope, identity string) *InstanceBuilder {
	b.inst.Scope = &MatchScope{Scope: scope, Identity: identity}
	return b
}

// Build returns the finished item. The builder must not be reused.
func (b *InstanceBuilder) Build() PropertyInstance {
	return b.inst
}
