package course

import (
	"math"
	"sort"

	"github.com/HaploAW/Courseplay-FS22/pkg/geo"
)

// generateRows emits horizontal row segments spanning the rotated boundary's
// bounding box, spaced by width, the first and last rows distanceFromBoundary
// inside the box. With useSameWidth the last row keeps the nominal spacing
// and the returned offset reports how far it overshot; otherwise the last
// row is clamped onto the top limit.
func generateRows(boundary *geo.Polygon, width, distanceFromBoundary float64, useSameWidth bool) ([]*Row, float64) {
	bbMin, bbMax := boundary.BoundingBox()
	yMin := bbMin.Y + distanceFromBoundary
	yMax := bbMax.Y - distanceFromBoundary
	if yMin > yMax {
		return nil, 0
	}

	var ys []float64
	y := yMin
	for ; y < yMax; y += width {
		ys = append(ys, y)
	}
	offset := 0.0
	if useSameWidth {
		ys = append(ys, y)
		offset = distanceFromBoundary - (bbMax.Y - y)
	} else {
		ys = append(ys, yMax)
	}
	if n := len(ys); n >= 2 && ys[n-1]-ys[n-2] < 0.1 {
		ys = ys[:n-1]
	}

	rows := make([]*Row, len(ys))
	for i, ry := range ys {
		rows[i] = &Row{
			From:           geo.Pt(bbMin.X, ry),
			To:             geo.Pt(bbMax.X, ry),
			OriginalNumber: i + 1,
		}
	}
	return rows, offset
}

// findAllIntersections records boundary and island headland crossings on
// every row. The boundary pass runs first, then one pass per island.
func findAllIntersections(rows []*Row, boundary *geo.Polygon, islands []Island) {
	findIntersections(rows, boundary, HeadlandID{}, 0)
	for _, is := range islands {
		findIntersections(rows, is.Outermost(), HeadlandID{Island: is.ID, Pass: is.OutermostIx}, is.ID)
		markRowsAdjacentToIsland(rows, is.ID)
	}
}

// findIntersections intersects every edge of headland with every row and
// records the crossings, sorted by x with exact-x duplicates dropped so the
// sequencer does not see zero-length connectors.
func findIntersections(rows []*Row, headland *geo.Polygon, id HeadlandID, islandID int) {
	n := headland.Len()
	for i := 0; i < n; i++ {
		cp, np := headland.Edge(i)
		for _, row := range rows {
			pt, ok := geo.SegmentIntersection(cp, np, row.From, row.To)
			if !ok {
				continue
			}
			is := Intersection{
				Point:    pt,
				Angle:    headland.TangentAt(i),
				Headland: id,
				EdgeFrom: i,
				EdgeTo:   headland.Mod(i + 1),
				RowNum:   row.OriginalNumber,
			}
			if islandID != 0 {
				row.OnIsland = islandID
			}
			insertIntersection(row, is)
		}
	}
}

// insertIntersection keeps row.Intersections ascending in x and drops exact
// duplicates.
func insertIntersection(row *Row, is Intersection) {
	pos := sort.Search(len(row.Intersections), func(k int) bool {
		return row.Intersections[k].Point.X >= is.Point.X
	})
	if pos < len(row.Intersections) && row.Intersections[pos].Point.X == is.Point.X {
		return
	}
	row.Intersections = append(row.Intersections, Intersection{})
	copy(row.Intersections[pos+1:], row.Intersections[pos:])
	row.Intersections[pos] = is
}

// markRowsAdjacentToIsland records, on each row bordering a row that crosses
// the island, that it is adjacent to the island. Turn post-processing needs
// to know where a turn may clip an island.
func markRowsAdjacentToIsland(rows []*Row, islandID int) {
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		prevOn := prev.OnIsland == islandID
		curOn := cur.OnIsland == islandID
		if prevOn == curOn {
			continue
		}
		other := prev
		if prevOn {
			other = cur
		}
		if other.AdjacentIslands == nil {
			other.AdjacentIslands = map[int]bool{}
		}
		other.AdjacentIslands[islandID] = true
	}
}

// distanceToFullCover is how far past a boundary crossing at angle theta the
// row must run so the implement covers up to the crossing line.
func distanceToFullCover(width, theta float64) float64 {
	t := clampCrossingAngle(theta)
	return math.Abs(width / (2 * math.Tan(t)))
}

// distanceBetweenRowEndAndHeadland is how far short of the crossing the row
// must end so the implement does not rework the adjacent headland pass.
func distanceBetweenRowEndAndHeadland(width, theta float64) float64 {
	t := clampCrossingAngle(theta)
	return math.Abs(width/(2*math.Sin(t))) - distanceToFullCover(width, theta)
}

// clampCrossingAngle folds an edge tangent into (-pi/2, pi/2] and keeps it
// at least 15 degrees off parallel, where the offsets would blow up.
func clampCrossingAngle(theta float64) float64 {
	for theta > math.Pi/2 {
		theta -= math.Pi
	}
	for theta <= -math.Pi/2 {
		theta += math.Pi
	}
	if math.Abs(theta) < math.Pi/12 {
		if theta < 0 {
			return -math.Pi / 12
		}
		return math.Pi / 12
	}
	return theta
}
