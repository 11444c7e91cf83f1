package course

import "github.com/HaploAW/Courseplay-FS22/pkg/geo"

// materializeBlock samples waypoints along every row of a block, trimming
// each row at its two boundary crossings. Rows that collapse to fewer than
// two waypoints are removed from the block.
func materializeBlock(b *Block, width float64, nHeadlandPasses int) {
	kept := b.Rows[:0]
	for _, row := range b.Rows {
		materializeRow(row, width, nHeadlandPasses)
		if len(row.Waypoints) >= 2 {
			kept = append(kept, row)
		}
	}
	b.Rows = kept
}

// materializeRow trims a two-intersection row for its oblique boundary
// crossings and samples waypoints at WaypointDistance. Without headlands the
// row runs past the crossing to full cover; with them it stops short so the
// headland pass is not reworked. Either way the row end overlaps 5% of the
// working width toward the boundary.
func materializeRow(row *Row, width float64, nHeadlandPasses int) {
	row.Waypoints = nil
	if len(row.Intersections) < 2 {
		return
	}
	isL := row.Intersections[0]
	isR := row.Intersections[len(row.Intersections)-1]

	offsetL := endOffset(width, isL.Angle, nHeadlandPasses)
	offsetR := endOffset(width, isR.Angle, nHeadlandPasses)

	newFrom := isL.Point.X + offsetL - 0.05*width
	newTo := isR.Point.X - offsetR + 0.05*width
	if newTo <= newFrom {
		return
	}

	y := row.Y()
	var wps []Waypoint
	x := newFrom
	for ; x < newTo; x += WaypointDistance {
		wps = append(wps, row.newWaypoint(geo.Pt(x, y)))
	}
	last := x - WaypointDistance
	if newTo-last > MinWaypointDistance {
		wps = append(wps, row.newWaypoint(geo.Pt(newTo, y)))
	}
	if len(wps) < 2 {
		return
	}
	row.Waypoints = wps
}

// endOffset is the signed trim applied at one row end for a boundary
// crossing at angle theta.
func endOffset(width, theta float64, nHeadlandPasses int) float64 {
	if nHeadlandPasses == 0 {
		return -distanceToFullCover(width, theta)
	}
	return distanceBetweenRowEndAndHeadland(width, theta)
}

func (r *Row) newWaypoint(p geo.Point2D) Waypoint {
	return Waypoint{
		Point2D:           p,
		OriginalRowNumber: r.OriginalNumber,
		AdjacentIslands:   r.AdjacentIslands,
	}
}

// reversedWaypoints returns the row's waypoints in reverse order.
func reversedWaypoints(wps []Waypoint) []Waypoint {
	out := make([]Waypoint, len(wps))
	for i, wp := range wps {
		out[len(wps)-1-i] = wp
	}
	return out
}
