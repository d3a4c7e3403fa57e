// Package models defines data structures for pillar bar chart configuration.
package models

// OtherCategoryKey is the reserved category key identifying the synthetic
// aggregated "other" bucket. Records carrying it are never individually
// targetable.
const OtherCategoryKey = "__other__"

// CategoryRecord represents one bound data category, or the synthetic
// sentinel bucket aggregating unclassified data. Records are rebuilt
// wholesale by the data binder on every refresh; the enumeration engine
// only reads them.
type CategoryRecord struct {
	// Value is the measure value for the category.
	Value float64 `json:"value"`
	// NumberFormat is the host format string applied to Value.
	NumberFormat string `json:"number_format,omitempty"`
	// FormattedValue is Value rendered through NumberFormat.
	FormattedValue string `json:"formatted_value,omitempty"`
	// OriginalFormattedValue is the formatted value before any host-side
	// rewriting (nil-safe display fallback).
	OriginalFormattedValue string `json:"original_formatted_value,omitempty"`
	// IsPillar is the roll-up marker (nil if the user never set it).
	IsPillar *bool `json:"is_pillar,omitempty"`
	// CategoryKey identifies the category; OtherCategoryKey marks the
	// sentinel bucket.
	CategoryKey string `json:"category_key"`
	// BarColor is the category's bar fill color.
	BarColor string `json:"bar_color,omitempty"`
	// FontColor is the category's data label font color.
	FontColor string `json:"font_color,omitempty"`
	// LabelPosition is the per-record label position override (nil if none).
	LabelPosition *string `json:"label_position,omitempty"`
	// Identity is the opaque selector targeting this one record for
	// overrides. Empty when the binder could not provide one.
	Identity string `json:"identity,omitempty"`
	// ChildCount is the number of drill children under the category.
	ChildCount int `json:"child_count,omitempty"`
	// DisplayName is the category's display name.
	DisplayName string `json:"display_name"`
}

// IsOther reports whether the record is the sentinel "other" bucket.
func (c CategoryRecord) IsOther() bool {
	return c.CategoryKey == OtherCategoryKey
}

// PillarFlag returns the roll-up marker as a plain boolean, treating an
// unset marker as false.
func (c CategoryRecord) PillarFlag() bool {
	return c.IsPillar != nil && *c.IsPillar
}
