package validation

import (
	"fmt"

	"github.com/HaploAW/Courseplay-FS22/pkg/course"
	"github.com/HaploAW/Courseplay-FS22/pkg/field"
)

// ValidateSpec checks a parsed FieldSpec for structural problems before any
// geometry runs; in particular it rejects boundaries too degenerate for a
// longest-edge direction.
func ValidateSpec(s *field.FieldSpec) *Report {
	r := New()

	validateBoundary(s, r)
	validateWidth(s, r)
	validateCenter(s, r)
	validateHeadland(s, r)
	validateIslands(s, r)

	return r
}

func validateBoundary(s *field.FieldSpec, r *Report) {
	if distinctVertexCount(s.Boundary) < 3 {
		r.Error(Finding{
			Stage:   StageGeometry,
			Path:    "boundary",
			Message: "boundary must have at least 3 distinct vertices",
			Got:     len(s.Boundary),
			Want:    ">= 3 distinct vertices",
		})
	}
}

func validateWidth(s *field.FieldSpec, r *Report) {
	if s.Width <= 0 {
		r.Error(Finding{
			Stage:   StageSpec,
			Path:    "width",
			Message: "working width must be greater than 0",
			Got:     s.Width,
			Want:    "> 0",
		})
	}
}

func validateCenter(s *field.FieldSpec, r *Report) {
	c := s.Center

	switch c.Mode {
	case course.ModeUpDown, course.ModeSpiral, course.ModeCircular, course.ModeLands:
	default:
		r.Error(Finding{
			Stage:   StageSpec,
			Path:    "center.mode",
			Message: fmt.Sprintf("unknown center mode %d", c.Mode),
			Got:     int(c.Mode),
			Want:    "1 (up/down), 2 (spiral), 3 (circular) or 4 (lands)",
		})
	}

	if c.RowsToSkip < 0 {
		r.Error(Finding{
			Stage:   StageSpec,
			Path:    "center.rows_to_skip",
			Message: "rows_to_skip must be non-negative",
			Got:     c.RowsToSkip,
			Want:    ">= 0",
		})
	}

	if c.Mode == course.ModeLands && (c.RowsPerLand < 1 || c.RowsPerLand > 24) {
		r.Error(Finding{
			Stage:   StageSpec,
			Path:    "center.rows_per_land",
			Message: fmt.Sprintf("rows_per_land %d is outside valid range (1-24)", c.RowsPerLand),
			Got:     c.RowsPerLand,
			Want:    "1-24",
		})
	}

	if c.UseBestAngle && c.UseLongestEdgeAngle {
		r.Warning(Finding{
			Stage:   StageSpec,
			Path:    "center",
			Message: "use_best_angle and use_longest_edge_angle both set; longest edge wins",
			Hint:    "set only one of the two angle strategies",
		})
	}
}

func validateHeadland(s *field.FieldSpec, r *Report) {
	if s.Headland.Passes < 0 {
		r.Error(Finding{
			Stage:   StageSpec,
			Path:    "headland.passes",
			Message: "headland passes must be non-negative",
			Got:     s.Headland.Passes,
			Want:    ">= 0",
		})
	}
}

func validateIslands(s *field.FieldSpec, r *Report) {
	seen := map[int]bool{}
	for i, is := range s.Islands {
		path := fmt.Sprintf("islands[%d]", i)
		if is.ID <= 0 {
			r.Error(Finding{
				Stage:   StageSpec,
				Path:    path + ".id",
				Message: "island id must be positive (0 is the field boundary)",
				Got:     is.ID,
				Want:    "> 0",
			})
		}
		if seen[is.ID] {
			r.Error(Finding{
				Stage:   StageSpec,
				Path:    path + ".id",
				Message: fmt.Sprintf("duplicate island id %d", is.ID),
				Got:     is.ID,
			})
		}
		seen[is.ID] = true

		if distinctVertexCount(is.Boundary) < 3 {
			r.Error(Finding{
				Stage:   StageGeometry,
				Path:    path + ".boundary",
				Message: "island boundary must have at least 3 distinct vertices",
				Got:     len(is.Boundary),
				Want:    ">= 3 distinct vertices",
			})
		}
	}
}

func distinctVertexCount(pts [][2]float64) int {
	seen := map[[2]float64]bool{}
	for _, p := range pts {
		seen[p] = true
	}
	return len(seen)
}
