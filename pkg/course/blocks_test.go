package course

import (
	"testing"

	"github.com/HaploAW/Courseplay-FS22/pkg/geo"
)

func fieldCrossing(x float64) Intersection {
	return Intersection{Point: geo.Pt(x, 0)}
}

func islandCrossing(x float64, id int) Intersection {
	return Intersection{Point: geo.Pt(x, 0), Headland: HeadlandID{Island: id}}
}

func TestCleanupKeepsIslandInsideField(t *testing.T) {
	row := &Row{Intersections: []Intersection{
		fieldCrossing(0), islandCrossing(10, 1), islandCrossing(20, 1), fieldCrossing(40),
	}}
	cleanupIntersections(row)
	if len(row.Intersections) != 4 {
		t.Fatalf("expected interior island crossings kept, got %d", len(row.Intersections))
	}
}

func TestCleanupDropsIslandOutsideField(t *testing.T) {
	// An island headland poking past the field boundary leaves a crossing
	// pair left of the field; both go.
	row := &Row{Intersections: []Intersection{
		islandCrossing(-5, 1), islandCrossing(-2, 1), fieldCrossing(0), fieldCrossing(40),
	}}
	cleanupIntersections(row)
	if len(row.Intersections) != 2 {
		t.Fatalf("expected stray island pair dropped, got %d", len(row.Intersections))
	}
	for _, is := range row.Intersections {
		if !is.Headland.IsField() {
			t.Error("island crossing survived cleanup")
		}
	}
}

func TestCleanupDropsSplitIslandPair(t *testing.T) {
	// Island partially outside: its outside crossing and its partner are
	// removed together to keep the pairing intact.
	row := &Row{Intersections: []Intersection{
		islandCrossing(-5, 1), fieldCrossing(0), islandCrossing(3, 1), fieldCrossing(40),
	}}
	cleanupIntersections(row)
	if len(row.Intersections) != 2 {
		t.Fatalf("expected 2 crossings after cleanup, got %d", len(row.Intersections))
	}
}

func TestCleanupDropsOddLast(t *testing.T) {
	row := &Row{Intersections: []Intersection{
		fieldCrossing(0), fieldCrossing(20), fieldCrossing(40),
	}}
	cleanupIntersections(row)
	if len(row.Intersections) != 2 {
		t.Fatalf("expected odd crossing dropped, got %d", len(row.Intersections))
	}
	if !approxEqual(row.Intersections[1].Point.X, 20, tolerance) {
		t.Errorf("expected the last crossing dropped, kept %f", row.Intersections[1].Point.X)
	}
}

func TestSplitRowPairs(t *testing.T) {
	row := &Row{
		OriginalNumber: 3,
		Intersections: []Intersection{
			fieldCrossing(0), islandCrossing(10, 1), islandCrossing(20, 1), fieldCrossing(40),
		},
	}
	subs := splitRow(row)
	if len(subs) != 2 {
		t.Fatalf("expected 2 sub-rows, got %d", len(subs))
	}
	if !approxEqual(subs[0].From.X, 0, tolerance) || !approxEqual(subs[0].To.X, 10, tolerance) {
		t.Errorf("first sub-row spans %f..%f", subs[0].From.X, subs[0].To.X)
	}
	if !approxEqual(subs[1].From.X, 20, tolerance) || !approxEqual(subs[1].To.X, 40, tolerance) {
		t.Errorf("second sub-row spans %f..%f", subs[1].From.X, subs[1].To.X)
	}
	for _, s := range subs {
		if s.OriginalNumber != 3 {
			t.Errorf("sub-row lost original number: %d", s.OriginalNumber)
		}
		if len(s.Intersections) != 2 {
			t.Errorf("sub-row has %d intersections", len(s.Intersections))
		}
	}
}

func TestSplitUShapeIntoThreeBlocks(t *testing.T) {
	boundary := uShape()
	rows, _ := generateRows(boundary, 4, 2, false)
	findAllIntersections(rows, boundary, nil)
	blocks := splitCenterIntoBlocks(rows)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks for the U shape, got %d", len(blocks))
	}
	for _, b := range blocks {
		if b.ID == 0 {
			t.Error("block without id")
		}
		for _, r := range b.Rows {
			if len(r.Intersections) != 2 {
				t.Errorf("block %d row has %d intersections", b.ID, len(r.Intersections))
			}
		}
	}
}

func TestSplitCoverage(t *testing.T) {
	// The blocks partition exactly the sub-rows of the cleaned input.
	boundary := uShape()
	rows, _ := generateRows(boundary, 4, 2, false)
	findAllIntersections(rows, boundary, nil)
	blocks := splitCenterIntoBlocks(rows)

	want := 0
	for _, r := range rows {
		want += len(r.Intersections) / 2
	}
	got := 0
	for _, b := range blocks {
		got += len(b.Rows)
	}
	if got != want {
		t.Fatalf("blocks hold %d sub-rows, expected %d", got, want)
	}
}

func TestBlockCorners(t *testing.T) {
	boundary := square40()
	rows, _ := generateRows(boundary, 4, 2, false)
	findAllIntersections(rows, boundary, nil)
	blocks := splitCenterIntoBlocks(rows)
	if len(blocks) != 1 {
		t.Fatalf("expected a single block for a square, got %d", len(blocks))
	}
	b := blocks[0]
	bl := b.CornerIntersection(CornerBL)
	tr := b.CornerIntersection(CornerTR)
	if !approxEqual(bl.Point.X, 0, tolerance) || !approxEqual(bl.Point.Y, 2, tolerance) {
		t.Errorf("BL at (%f,%f)", bl.Point.X, bl.Point.Y)
	}
	if !approxEqual(tr.Point.X, 40, tolerance) || !approxEqual(tr.Point.Y, 38, tolerance) {
		t.Errorf("TR at (%f,%f)", tr.Point.X, tr.Point.Y)
	}
	if b.Polygon().IsEmpty() {
		t.Error("block polygon is empty")
	}
}
