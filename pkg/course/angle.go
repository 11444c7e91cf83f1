package course

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/HaploAW/Courseplay-FS22/pkg/geo"
)

// Scoring weights of the angle search. Small blocks are heavily penalized,
// then block count, then track count, with a mild pull toward the field's
// dominant axis.
const (
	smallBlockPenalty = 50.0
	blockCountPenalty = 10.0
	anglePenalty      = 3.0
)

// angleStats is one candidate's outcome.
type angleStats struct {
	angleDeg float64
	nTracks  int
	nBlocks  int
}

// findBestRowAngle scores every candidate row angle by generating rows and
// splitting them into blocks, and returns the cheapest candidate with its
// track and block counts.
func findBestRowAngle(innermost *geo.Polygon, islands []Island, width, distanceFromBoundary float64, settings CenterSettings) angleStats {
	candidates := candidateAngles(innermost, settings)

	refDir := math.NaN()
	if innermost.HasDirection() {
		refDir = -innermost.LongestEdgeDirection()
	}

	scores := make([]float64, len(candidates))
	stats := make([]angleStats, len(candidates))
	for i, deg := range candidates {
		nTracks, blocks := rowsAtAngle(innermost, islands, width, distanceFromBoundary, deg)
		score := float64(nTracks) + blockCountPenalty*float64(len(blocks))

		if len(blocks) > 1 {
			small := 0
			for _, b := range blocks {
				if len(b.Rows) < smallBlockTrackCountLimit {
					small += smallBlockTrackCountLimit - len(b.Rows)
				}
			}
			score += smallBlockPenalty * float64(small)
		}
		if !math.IsNaN(refDir) {
			score += anglePenalty * math.Abs(math.Sin(toRadians(deg)-toRadians(refDir)))
		}

		scores[i] = score
		stats[i] = angleStats{angleDeg: deg, nTracks: nTracks, nBlocks: len(blocks)}
	}

	best := stats[floats.MinIdx(scores)]
	logger().Debug("best row angle", "angle", best.angleDeg, "tracks", best.nTracks, "blocks", best.nBlocks)
	return best
}

// candidateAngles picks the sweep: the longest edge alone, a full half-turn
// sweep, or the configured fixed angle.
func candidateAngles(innermost *geo.Polygon, settings CenterSettings) []float64 {
	switch {
	case settings.UseLongestEdgeAngle:
		return []float64{-innermost.LongestEdgeDirection()}
	case settings.UseBestAngle:
		var cs []float64
		for deg := 0.0; deg <= 180; deg += 2 {
			cs = append(cs, deg)
		}
		return cs
	default:
		return []float64{toDegrees(settings.RowAngle)}
	}
}

// rowsAtAngle rotates the geometry, generates rows and splits them into
// blocks, returning the worked track count and the blocks.
func rowsAtAngle(innermost *geo.Polygon, islands []Island, width, distanceFromBoundary, angleDeg float64) (int, []*Block) {
	rad := toRadians(angleDeg)
	rotated := innermost.Rotated(rad)
	rotatedIslands := rotateIslands(islands, rad)

	rows, _ := generateRows(rotated, width, distanceFromBoundary, false)
	findAllIntersections(rows, rotated, rotatedIslands)
	blocks := splitCenterIntoBlocks(rows)

	nTracks := 0
	for _, b := range blocks {
		nTracks += len(b.Rows)
	}
	return nTracks, blocks
}

// rotateIslands rotates each island's outermost headland; the inner island
// tracks do not take part in the center generation.
func rotateIslands(islands []Island, rad float64) []Island {
	out := make([]Island, len(islands))
	for i, is := range islands {
		out[i] = Island{
			ID:        is.ID,
			Headlands: []*geo.Polygon{is.Outermost().Rotated(rad)},
		}
	}
	return out
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
