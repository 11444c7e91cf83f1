package course

import (
	"github.com/HaploAW/Courseplay-FS22/pkg/geo"
)

// linker assembles the final polyline: per-block rows in their traversal
// order, stitched together with connecting tracks along the headland.
type linker struct {
	innermost       *geo.Polygon
	circleStart     int
	settings        CenterSettings
	nHeadlandPasses int
	polygons        map[HeadlandID]*geo.Polygon
}

// linkBlocks walks the sequenced blocks and emits the output polyline. The
// returned index is the waypoint where the up/down work begins.
func (l *linker) linkBlocks(blocks []*Block, entryDir int) ([]Waypoint, int) {
	var out []Waypoint
	upDownStart := 0
	rowCounter := 0

	for bi, b := range blocks {
		rows := orientedRows(b)
		ccw := landsCounterclockwise(b.EntryCorner, l.settings.PipeOnLeftSide)
		perm := orderForMode(l.settings, len(rows), ccw)

		connector := l.connectorFor(blocks, bi, entryDir)
		if len(connector) > 0 {
			connector[len(connector)-1].TurnStart = true
			out = append(out, connector...)
		}

		startLeft := b.EntryCorner.IsLeft()
		for j, ri := range perm {
			row := rows[ri]
			wps := append([]Waypoint(nil), row.Waypoints...)
			if (j%2 == 0) != startLeft {
				wps = reversedWaypoints(wps)
			}
			rowCounter++
			for k := range wps {
				wps[k].RowNumber = rowCounter
			}
			if j == 0 {
				for k := range wps {
					wps[k].FirstTrack = true
				}
			}
			if j == len(perm)-1 {
				for k := range wps {
					wps[k].LastTrack = true
				}
			}

			firstRowOfCourse := bi == 0 && j == 0
			if firstRowOfCourse {
				wps[0].UpDownRowStart = true
				upDownStart = len(out)
			} else {
				wps[0].TurnEnd = true
			}
			lastRowOfCourse := bi == len(blocks)-1 && j == len(perm)-1
			if !lastRowOfCourse {
				wps[len(wps)-1].TurnStart = true
			}

			out = l.appendRow(out, wps)
		}
	}
	return out, upDownStart
}

// appendRow adds a row to the polyline. When the row follows another row
// directly and the turn is longer than two waypoint spacings, a midpoint is
// inserted and the turn start moves onto it, so the turn maneuver has an
// anchor near its apex.
func (l *linker) appendRow(out []Waypoint, wps []Waypoint) []Waypoint {
	n := len(out)
	if n > 0 && wps[0].TurnEnd && out[n-1].TurnStart && !out[n-1].ConnectingTrack {
		if out[n-1].Distance(wps[0].Point2D) > 2*WaypointDistance {
			mid := out[n-1]
			mid.Point2D = geo.MidPoint(out[n-1].Point2D, wps[0].Point2D)
			mid.TurnStart = true
			out[n-1].TurnStart = false
			out = append(out, mid)
		}
	}
	return append(out, wps...)
}

// connectorFor returns the connecting track leading into block bi, tagged as
// such, or nil when the blocks join directly.
func (l *linker) connectorFor(blocks []*Block, bi int, entryDir int) []Waypoint {
	b := blocks[bi]
	entry := b.CornerIntersection(b.EntryCorner)

	if bi == 0 {
		if l.nHeadlandPasses == 0 || !entry.Headland.IsField() {
			return nil
		}
		idx := l.innermost.Indices(l.circleStart, edgeTarget(entry, entryDir), entryDir)
		return l.connectorWaypoints(l.innermost, idx)
	}

	prev := blocks[bi-1]
	exitCorner := ExitCorner(prev.EntryCorner, len(prev.Rows), l.settings.RowsToSkip)
	exit := prev.CornerIntersection(exitCorner)

	// Originally adjacent rows join without a turn along the headland.
	if abs(exit.RowNum-entry.RowNum) == 1 {
		return nil
	}
	if exit.Headland != entry.Headland {
		return nil
	}
	p, ok := l.polygons[exit.Headland]
	if !ok {
		return nil
	}
	step := prev.DirectionToNext
	var start int
	if step >= 0 {
		start = exit.EdgeTo
	} else {
		start = exit.EdgeFrom
	}
	idx := p.Indices(start, edgeTarget(entry, step), step)
	return l.connectorWaypoints(p, idx)
}

func (l *linker) connectorWaypoints(p *geo.Polygon, idx []int) []Waypoint {
	wps := make([]Waypoint, len(idx))
	for i, ix := range idx {
		wps[i] = Waypoint{Point2D: p.At(ix), ConnectingTrack: true}
	}
	return wps
}

// orientedRows returns the block's rows ordered away from the entry corner:
// bottom-up for a bottom entry, top-down for a top entry.
func orientedRows(b *Block) []*Row {
	rows := append([]*Row(nil), b.Rows...)
	if !b.EntryCorner.IsBottom() {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows
}

// landsCounterclockwise decides the spiral handedness of the lands pattern
// so the unloading pipe points to already-worked ground.
func landsCounterclockwise(entry Corner, pipeOnLeftSide bool) bool {
	return (entry.IsLeft() == entry.IsBottom()) != !pipeOnLeftSide
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
