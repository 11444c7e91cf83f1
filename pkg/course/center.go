package course

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/HaploAW/Courseplay-FS22/pkg/geo"
)

// Generate produces the center course for a field: parallel up/down rows
// covering the interior, grouped into blocks where the boundary or islands
// interrupt them, sequenced and linked along the innermost headland.
//
// A nil track with OK set means the center is too small for any row, which
// is not an error. OK is false when the decomposition looks implausible
// (too many blocks, or blocks averaging fewer than two rows).
func Generate(in *Input) (*Course, error) {
	innermost := in.Boundary
	if len(in.Headlands) > 0 {
		innermost = in.Headlands[len(in.Headlands)-1]
	}
	if innermost == nil || innermost.IsEmpty() {
		return nil, fmt.Errorf("generating center: boundary must have at least 3 vertices")
	}
	if in.Width <= 0 {
		return nil, fmt.Errorf("generating center: working width must be positive")
	}

	distanceFromBoundary := in.Width / 2
	if in.Headland.Passes > 0 {
		distanceFromBoundary = in.Width
	}

	// Work around the origin; transform back at the end.
	translation := innermost.Centroid()
	center := innermost.Translated(translation.Scale(-1))
	islands := make([]Island, 0, len(in.Islands))
	for _, is := range in.Islands {
		if len(is.Headlands) == 0 {
			continue
		}
		islands = append(islands, Island{
			ID:        is.ID,
			Headlands: []*geo.Polygon{is.Outermost().Translated(translation.Scale(-1))},
		})
	}

	best := findBestRowAngle(center, islands, in.Width, distanceFromBoundary, in.Center)
	rad := toRadians(best.angleDeg)
	rotated := center.Rotated(rad)
	rotatedIslands := rotateIslands(islands, rad)

	rows, _ := generateRows(rotated, in.Width, distanceFromBoundary, false)
	findAllIntersections(rows, rotated, rotatedIslands)
	blocks := splitCenterIntoBlocks(rows)

	if len(blocks) == 0 {
		logger().Debug("no room for center rows")
		return &Course{OK: true, BestAngleDeg: best.angleDeg}, nil
	}

	nTracks := 0
	for _, b := range blocks {
		nTracks += len(b.Rows)
	}
	if len(blocks) > 30 || (len(blocks) > 1 && nTracks/len(blocks) < 2) {
		logger().Debug("implausible decomposition", "blocks", len(blocks), "tracks", nTracks)
		return &Course{
			OK:              false,
			BestAngleDeg:    best.angleDeg,
			NParallelTracks: nTracks,
			Blocks:          blockPolygons(blocks, rad, translation),
		}, nil
	}

	materialized := blocks[:0]
	for _, b := range blocks {
		materializeBlock(b, in.Width, in.Headland.Passes)
		if len(b.Rows) > 0 {
			materialized = append(materialized, b)
		}
	}
	blocks = materialized
	if len(blocks) == 0 {
		return &Course{OK: true, BestAngleDeg: best.angleDeg}, nil
	}
	nTracks = 0
	for _, b := range blocks {
		nTracks += len(b.Rows)
	}

	circleStep := in.CircleStep
	if circleStep == 0 {
		circleStep = 1
	}
	polygons := map[HeadlandID]*geo.Polygon{{}: rotated}
	for _, is := range rotatedIslands {
		polygons[HeadlandID{Island: is.ID}] = is.Outermost()
	}

	seed := in.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seq := &sequencer{
		blocks:          blocks,
		innermost:       rotated,
		circleStart:     in.CircleStart,
		circleStep:      circleStep,
		nHeadlandPasses: in.Headland.Passes,
		skip:            in.Center.RowsToSkip,
		polygons:        polygons,
		rng:             rand.New(rand.NewSource(seed)),
	}
	ordered, entryDir := sequenceBlocks(seq)

	l := &linker{
		innermost:       rotated,
		circleStart:     in.CircleStart,
		settings:        in.Center,
		nHeadlandPasses: in.Headland.Passes,
		polygons:        polygons,
	}
	track, upDownStart := l.linkBlocks(ordered, entryDir)

	if in.Center.RowsToSkip == 0 {
		applyRidgeMarkers(track)
	}

	worked := 0.0
	for _, b := range blocks {
		for _, r := range b.Rows {
			worked += r.From.Distance(r.To) * in.Width
		}
	}

	// Back to world coordinates.
	for i := range track {
		track[i].Point2D = track[i].Rotate(-rad).Add(translation)
	}

	return &Course{
		Track:           track,
		BestAngleDeg:    best.angleDeg,
		NParallelTracks: nTracks,
		Blocks:          blockPolygons(ordered, rad, translation),
		OK:              true,
		UpDownRowStart:  upDownStart,
		WorkedAreaM2:    worked,
	}, nil
}

// blockPolygons returns the blocks' bounding quadrilaterals in world
// coordinates for diagnostics.
func blockPolygons(blocks []*Block, rad float64, translation geo.Point2D) []*geo.Polygon {
	out := make([]*geo.Polygon, len(blocks))
	for i, b := range blocks {
		out[i] = b.Polygon().Rotated(-rad).Translated(translation)
	}
	return out
}
