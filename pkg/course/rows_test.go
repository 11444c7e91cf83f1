package course

import (
	"math"
	"testing"

	"github.com/HaploAW/Courseplay-FS22/pkg/geo"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func square40() *geo.Polygon {
	return geo.NewPolygon(geo.Pt(0, 0), geo.Pt(40, 0), geo.Pt(40, 40), geo.Pt(0, 40))
}

func TestGenerateRowsSquare(t *testing.T) {
	rows, _ := generateRows(square40(), 4, 2, false)
	if len(rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(rows))
	}
	if !approxEqual(rows[0].Y(), 2, tolerance) {
		t.Errorf("expected first row at y=2, got %f", rows[0].Y())
	}
	if !approxEqual(rows[9].Y(), 38, tolerance) {
		t.Errorf("expected last row at y=38, got %f", rows[9].Y())
	}
	for i, r := range rows {
		if r.OriginalNumber != i+1 {
			t.Errorf("row %d has original number %d", i, r.OriginalNumber)
		}
		if !approxEqual(r.From.X, 0, tolerance) || !approxEqual(r.To.X, 40, tolerance) {
			t.Errorf("row %d does not span the bounding box: %v..%v", i, r.From, r.To)
		}
	}
}

func TestGenerateRowsClampsLast(t *testing.T) {
	boundary := geo.NewPolygon(geo.Pt(0, 0), geo.Pt(40, 0), geo.Pt(40, 39), geo.Pt(0, 39))
	rows, offset := generateRows(boundary, 4, 2, false)
	if offset != 0 {
		t.Errorf("expected zero offset without useSameWidth, got %f", offset)
	}
	last := rows[len(rows)-1]
	if !approxEqual(last.Y(), 37, tolerance) {
		t.Errorf("expected clamped last row at y=37, got %f", last.Y())
	}
}

func TestGenerateRowsUseSameWidth(t *testing.T) {
	boundary := geo.NewPolygon(geo.Pt(0, 0), geo.Pt(40, 0), geo.Pt(40, 39), geo.Pt(0, 39))
	rows, offset := generateRows(boundary, 4, 2, true)
	last := rows[len(rows)-1]
	if !approxEqual(last.Y(), 38, tolerance) {
		t.Errorf("expected last row kept at y=38, got %f", last.Y())
	}
	if !approxEqual(offset, 1, tolerance) {
		t.Errorf("expected offset 1, got %f", offset)
	}
}

func TestGenerateRowsDropsNearDuplicateLast(t *testing.T) {
	boundary := geo.NewPolygon(geo.Pt(0, 0), geo.Pt(40, 0), geo.Pt(40, 36.05), geo.Pt(0, 36.05))
	rows, _ := generateRows(boundary, 4, 2, false)
	if len(rows) != 9 {
		t.Fatalf("expected near-duplicate last row dropped, got %d rows", len(rows))
	}
}

func TestGenerateRowsNoRoom(t *testing.T) {
	boundary := geo.NewPolygon(geo.Pt(0, 0), geo.Pt(3, 0), geo.Pt(3, 3), geo.Pt(0, 3))
	rows, _ := generateRows(boundary, 4, 2, false)
	if rows != nil {
		t.Fatalf("expected no rows in a 3m field at 4m width, got %d", len(rows))
	}
}

func TestFindIntersectionsSquare(t *testing.T) {
	boundary := square40()
	rows, _ := generateRows(boundary, 4, 2, false)
	findAllIntersections(rows, boundary, nil)
	for _, r := range rows {
		if len(r.Intersections) != 2 {
			t.Fatalf("row %d: expected 2 intersections, got %d", r.OriginalNumber, len(r.Intersections))
		}
		left, right := r.Intersections[0], r.Intersections[1]
		if left.Point.X >= right.Point.X {
			t.Errorf("row %d: intersections not sorted by x", r.OriginalNumber)
		}
		if !approxEqual(left.Point.X, 0, tolerance) || !approxEqual(right.Point.X, 40, tolerance) {
			t.Errorf("row %d: crossings at %f and %f", r.OriginalNumber, left.Point.X, right.Point.X)
		}
		// Left crossing is on the descending left edge, right on the
		// ascending right edge.
		if !approxEqual(left.Angle, -math.Pi/2, tolerance) {
			t.Errorf("row %d: left crossing angle %f", r.OriginalNumber, left.Angle)
		}
		if !approxEqual(right.Angle, math.Pi/2, tolerance) {
			t.Errorf("row %d: right crossing angle %f", r.OriginalNumber, right.Angle)
		}
		if !left.Headland.IsField() {
			t.Errorf("row %d: left crossing not on the field boundary", r.OriginalNumber)
		}
		if left.RowNum != r.OriginalNumber {
			t.Errorf("row %d: crossing carries row number %d", r.OriginalNumber, left.RowNum)
		}
	}
}

func TestIslandCrossingsAndAdjacency(t *testing.T) {
	boundary := square40()
	island := Island{
		ID:        1,
		Headlands: []*geo.Polygon{geo.NewPolygon(geo.Pt(16, 12), geo.Pt(24, 12), geo.Pt(24, 28), geo.Pt(16, 28))},
	}
	rows, _ := generateRows(boundary, 4, 2, false)
	findAllIntersections(rows, boundary, []Island{island})

	crossing := 0
	for _, r := range rows {
		if r.OnIsland == 1 {
			crossing++
			if len(r.Intersections) != 4 {
				t.Errorf("row %d on island: expected 4 intersections, got %d", r.OriginalNumber, len(r.Intersections))
			}
		}
	}
	// Rows at y=14..26 cross the island.
	if crossing != 4 {
		t.Errorf("expected 4 rows crossing the island, got %d", crossing)
	}
	// The rows bordering the island (y=10 and y=30) are marked adjacent.
	adjacent := 0
	for _, r := range rows {
		if r.AdjacentIslands[1] {
			adjacent++
			if r.OnIsland == 1 {
				t.Errorf("row %d both on and adjacent to island", r.OriginalNumber)
			}
		}
	}
	if adjacent != 2 {
		t.Errorf("expected 2 rows adjacent to the island, got %d", adjacent)
	}
}

func TestRowCountMonotoneInWidth(t *testing.T) {
	boundary := square40()
	prev := math.MaxInt
	for _, width := range []float64{2, 3, 4, 5, 8, 10} {
		rows, _ := generateRows(boundary, width, width/2, false)
		if len(rows) > prev {
			t.Fatalf("row count increased from %d to %d at width %f", prev, len(rows), width)
		}
		prev = len(rows)
	}
}

func TestCrossingOffsets(t *testing.T) {
	// Perpendicular crossing: the row reaches exactly the boundary.
	if d := distanceToFullCover(4, math.Pi/2); !approxEqual(d, 0, tolerance) {
		t.Errorf("expected 0 for perpendicular crossing, got %f", d)
	}
	if d := distanceBetweenRowEndAndHeadland(4, math.Pi/2); !approxEqual(d, 2, tolerance) {
		t.Errorf("expected half width for perpendicular crossing, got %f", d)
	}
	// 45 degree crossing.
	if d := distanceToFullCover(4, math.Pi/4); !approxEqual(d, 2, tolerance) {
		t.Errorf("expected 2 at 45 degrees, got %f", d)
	}
	if d := distanceBetweenRowEndAndHeadland(4, math.Pi/4); !approxEqual(d, 2*math.Sqrt2-2, tolerance) {
		t.Errorf("expected %f at 45 degrees, got %f", 2*math.Sqrt2-2, d)
	}
	// Near-parallel crossings clamp at 15 degrees.
	if distanceToFullCover(4, 0.01) != distanceToFullCover(4, math.Pi/12) {
		t.Error("expected near-parallel crossing to clamp at 15 degrees")
	}
	// Edges pointing the other way behave like their fold.
	if distanceToFullCover(4, math.Pi-math.Pi/4) != distanceToFullCover(4, -math.Pi/4) {
		t.Error("expected crossing angle folded into a half turn")
	}
}
