// Package pillarbar resolves which configuration options of a pillar bar
// chart are editable for the current mode, state, and bound data.
package pillarbar

import "github.com/mkondo9/pillarbar-go/pkg/pillarbar/models"

// ClassifyMode derives the active mode from the host type tag and, for drill
// matrix data, the row hierarchy depth. Unrecognized tags fall through to the
// matrix branch; a depth below 1 there is treated as malformed and resolves
// to the multi-level mode rather than failing.
func ClassifyMode(typeTag string, rowDepth int) models.Mode {
	switch typeTag {
	case "static":
		return models.ModeStatic
	case "staticCategory":
		return models.ModeStaticCategory
	case "drillableCategory":
		return models.ModeDrillableCategory
	}
	if rowDepth == 1 {
		return models.ModeDrillableMatrixSingleLevel
	}
	return models.ModeDrillableMatrixMultiLevel
}
