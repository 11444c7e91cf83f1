package course

import "github.com/HaploAW/Courseplay-FS22/pkg/geo"

// applyRidgeMarkers walks the finished polyline and sets the ridge marker on
// every row waypoint from the direction of the turn that follows the row,
// so the marker always points to unworked ground. Only meaningful when no
// rows are skipped.
func applyRidgeMarkers(track []Waypoint) {
	for i := range track {
		if !track[i].TurnStart || track[i].ConnectingTrack {
			continue
		}
		marker := RidgeRight
		if deltaAngleAt(track, i) < 0 {
			marker = RidgeLeft
		}
		// Mark the row leading up to this turn, but never the first or
		// last row of a block.
		for j := i; j >= 0; j-- {
			if track[j].ConnectingTrack {
				break
			}
			if j < i && track[j].TurnStart {
				break
			}
			if track[j].FirstTrack || track[j].LastTrack {
				continue
			}
			track[j].Ridge = marker
			if track[j].TurnEnd {
				break
			}
		}
	}

	stripTrailingRidgeMarkers(track)
}

// stripTrailingRidgeMarkers clears markers where no following row will use
// the ridge: the last worked row, and the waypoint right after a turn ends.
func stripTrailingRidgeMarkers(track []Waypoint) {
	lastRow := 0
	for i := range track {
		if track[i].RowNumber > lastRow {
			lastRow = track[i].RowNumber
		}
	}
	for i := range track {
		if track[i].RowNumber == lastRow && !track[i].ConnectingTrack {
			track[i].Ridge = RidgeNone
		}
		if i > 0 && track[i-1].TurnEnd {
			track[i].Ridge = RidgeNone
		}
	}
}

// deltaAngleAt is the signed heading change at waypoint i.
func deltaAngleAt(track []Waypoint, i int) float64 {
	if i == 0 || i >= len(track)-1 {
		return 0
	}
	in := track[i-1].AngleTo(track[i].Point2D)
	out := track[i].AngleTo(track[i+1].Point2D)
	return geo.NormalizeAngle(out - in)
}
