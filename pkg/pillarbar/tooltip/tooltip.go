// Package tooltip declares the contract of the host tooltip collaborator.
// The collaborator is an independent interaction layer over the rendered
// elements; the enumeration engine never calls into it.
package tooltip

// DisplayItem is one label/value pair shown in the tooltip surface.
type DisplayItem struct {
	// Label is the item caption.
	Label string `json:"label"`
	// Value is the formatted item value.
	Value string `json:"value"`
}

// EventArgs describes the pointer or touch event the tooltip reacts to.
type EventArgs struct {
	// X is the pointer x coordinate relative to the root element.
	X float64 `json:"x"`
	// Y is the pointer y coordinate relative to the root element.
	Y float64 `json:"y"`
	// ElementID identifies the rendered element under the pointer.
	ElementID string `json:"element_id,omitempty"`
	// Touch is true for touch events.
	Touch bool `json:"touch,omitempty"`
}

// ContentDelegate produces the display items for an event, or nil to show
// nothing.
type ContentDelegate func(args EventArgs) []DisplayItem

// IdentityDelegate produces the identity keying the tooltip for an event.
// The second return is false when no identity applies.
type IdentityDelegate func(args EventArgs) (string, bool)

// Service shows, moves, and hides the host tooltip surface. Implementations
// are stateless with regard to chart configuration.
type Service interface {
	// AddTooltip wires the delegates to pointer events over the element
	// subtree rooted at rootID.
	AddTooltip(rootID string, content ContentDelegate, identity IdentityDelegate)
	// Hide dismisses any visible tooltip.
	Hide()
}
