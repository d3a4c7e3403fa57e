package models

// Mode represents the chart's structural operating variant. Exactly one
// mode is active per enumeration call; resolvers handle all five without
// assuming exclusivity is enforced elsewhere.
type Mode string

const (
	// ModeStatic is the flat category list.
	ModeStatic Mode = "static"
	// ModeStaticCategory is the flat category list with the pillar roll-up.
	ModeStaticCategory Mode = "staticCategory"
	// ModeDrillableCategory is the single-level drill hierarchy.
	ModeDrillableCategory Mode = "drillableCategory"
	// ModeDrillableMatrixSingleLevel is a drill matrix with one row level.
	ModeDrillableMatrixSingleLevel Mode = "drillableMatrixSingleLevel"
	// ModeDrillableMatrixMultiLevel is a drill matrix with nested row levels.
	ModeDrillableMatrixMultiLevel Mode = "drillableMatrixMultiLevel"
)
