package course

// cleanupIntersections removes spurious crossing pairs caused by an island
// headland reaching past the field boundary. Walking a row left to right,
// field crossings toggle an inside-field state; an island crossing met while
// outside the field is a stray, and it is dropped together with its partner
// crossing of the same island so the pairing of the rest stays intact.
func cleanupIntersections(row *Row) {
	insideField := false
	for i := range row.Intersections {
		is := &row.Intersections[i]
		if is.Headland.IsField() {
			insideField = !insideField
			continue
		}
		if is.deleted || insideField {
			continue
		}
		is.deleted = true
		for j := i + 1; j < len(row.Intersections); j++ {
			partner := &row.Intersections[j]
			if !partner.deleted && partner.Headland == is.Headland {
				partner.deleted = true
				break
			}
		}
	}
	kept := row.Intersections[:0]
	for _, is := range row.Intersections {
		if !is.deleted {
			kept = append(kept, is)
		}
	}
	row.Intersections = kept

	// Odd counts are degenerate geometry; drop the last crossing.
	if len(row.Intersections)%2 == 1 {
		row.Intersections = row.Intersections[:len(row.Intersections)-1]
	}
}

// splitRow cuts a row into one sub-row per intersection pair. Each sub-row
// keeps exactly its two bounding intersections as endpoints.
func splitRow(row *Row) []*Row {
	k := len(row.Intersections) / 2
	subs := make([]*Row, 0, k)
	for i := 0; i < k; i++ {
		left := row.Intersections[2*i]
		right := row.Intersections[2*i+1]
		subs = append(subs, &Row{
			From:            left.Point,
			To:              right.Point,
			Intersections:   []Intersection{left, right},
			OriginalNumber:  row.OriginalNumber,
			OnIsland:        row.OnIsland,
			AdjacentIslands: row.AdjacentIslands,
		})
	}
	return subs
}

// overlaps reports whether two sub-rows overlap in x.
func overlaps(a, b *Row) bool {
	return a.From.X < b.To.X && b.From.X < a.To.X
}

// splitCenterIntoBlocks groups rows into blocks, scanning bottom to top. A
// new group starts whenever the intersection pattern changes: different
// crossing count than the previous row, or a sub-row no longer overlapping
// the corresponding open block's top row.
func splitCenterIntoBlocks(rows []*Row) []*Block {
	var blocks []*Block
	var open []*Block
	nextID := 1
	prevCount := -1

	closeOpen := func() {
		for _, b := range open {
			b.ID = nextID
			nextID++
			blocks = append(blocks, b)
		}
		open = nil
	}

	for _, row := range rows {
		cleanupIntersections(row)
		if len(row.Intersections) < 2 {
			continue
		}
		subs := splitRow(row)

		newGroup := len(row.Intersections) != prevCount || len(subs) != len(open)
		if !newGroup {
			for i, sub := range subs {
				top := open[i].Rows[len(open[i].Rows)-1]
				if !overlaps(sub, top) {
					newGroup = true
					break
				}
			}
		}

		if newGroup {
			closeOpen()
			open = make([]*Block, len(subs))
			for i, sub := range subs {
				open[i] = &Block{Rows: []*Row{sub}}
			}
		} else {
			for i, sub := range subs {
				open[i].Rows = append(open[i].Rows, sub)
			}
		}
		prevCount = len(row.Intersections)
	}
	closeOpen()
	return blocks
}
