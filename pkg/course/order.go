package course

// Row-ordering patterns. Each returns a permutation of 0..n-1 giving the
// order rows are worked within a block. The linker walks the result as a
// zig-zag, reversing every second row.

// upDownOrder advances in strides of skip+1. When skipped rows are to be
// worked too, alternating return passes sweep them up, highest-first, until
// every row is visited.
func upDownOrder(n, skip int, leaveSkippedUnworked bool) []int {
	if n <= 0 {
		return nil
	}
	stride := skip + 1
	order := make([]int, 0, n)
	visited := make([]bool, n)
	visit := func(i int) {
		visited[i] = true
		order = append(order, i)
	}

	for i := 0; i < n; i += stride {
		visit(i)
	}
	if leaveSkippedUnworked {
		return order
	}
	for len(order) < n {
		start := -1
		for i := n - 1; i >= 0; i-- {
			if !visited[i] {
				start = i
				break
			}
		}
		for i := start; i >= 0; i -= stride {
			if !visited[i] {
				visit(i)
			}
		}
		if len(order) == n {
			break
		}
		start = -1
		for i := 0; i < n; i++ {
			if !visited[i] {
				start = i
				break
			}
		}
		for i := start; i < n; i += stride {
			if !visited[i] {
				visit(i)
			}
		}
	}
	return order
}

// spiralOrder interleaves rows outside-in: first, last, second, second to
// last, ending at the middle.
func spiralOrder(n int) []int {
	order := make([]int, 0, n)
	i, j := 0, n-1
	for i <= j {
		order = append(order, i)
		if i != j {
			order = append(order, j)
		}
		i++
		j--
	}
	return order
}

const circularStartSkip = 4

// circularOrder approximates driving the block like a closed ring: start a
// few rows in, alternately skip back and forward, shrinking the skip as the
// remaining rows thin out, then fill in contiguously once no skip fits.
func circularOrder(n int) []int {
	if n <= 0 {
		return nil
	}
	order := make([]int, 0, n)
	visited := make([]bool, n)

	nextUnvisited := func(from int) int {
		for i := from + 1; i < n; i++ {
			if !visited[i] {
				return i
			}
		}
		for i := 0; i < n; i++ {
			if !visited[i] {
				return i
			}
		}
		return -1
	}

	k := circularStartSkip
	if k >= n {
		k = (n - 1) / 2
	}
	pos := k
	skipBack := true
	fillIn := k == 0

	for {
		visited[pos] = true
		order = append(order, pos)
		if len(order) == n {
			return order
		}
		if fillIn {
			pos = nextUnvisited(pos)
			continue
		}
		var next int
		if skipBack {
			next = pos - (k + 1)
		} else {
			next = pos + k
		}
		skipBack = !skipBack
		for next < 0 || next >= n || visited[next] {
			nk := (n - len(order)) / 2
			if nk >= k {
				nk = k - 1
			}
			k = nk
			if k <= 0 {
				fillIn = true
				next = nextUnvisited(pos)
				break
			}
			if skipBack {
				next = pos - (k + 1)
			} else {
				next = pos + k
			}
		}
		pos = next
	}
}

// landsOrder works rows in consecutive lands of rowsPerLand, each land in an
// outward-from-centre sequence so the unloading pipe points to worked
// ground. A short tail land uses the table entry for its own size.
func landsOrder(n, rowsPerLand int, counterclockwise bool) []int {
	if n <= 0 {
		return nil
	}
	if rowsPerLand < 1 {
		rowsPerLand = 1
	}
	if rowsPerLand > len(landsPermutationCounterclockwise) {
		rowsPerLand = len(landsPermutationCounterclockwise)
	}
	table := landsPermutationClockwise
	if counterclockwise {
		table = landsPermutationCounterclockwise
	}
	order := make([]int, 0, n)
	for base := 0; base < n; base += rowsPerLand {
		size := rowsPerLand
		if base+size > n {
			size = n - base
		}
		for _, r := range table[size-1] {
			order = append(order, base+r-1)
		}
	}
	return order
}

// The lands permutation tables, indexed by land size 1..24. Entries are
// 1-based row numbers within the land: up from the middle row to the far
// edge, then down to the near edge, so the land is worked outward from its
// centre. The clockwise table is the reflection of the counterclockwise one.
var landsPermutationCounterclockwise = [24][]int{
	{1},
	{2, 1},
	{2, 3, 1},
	{3, 4, 2, 1},
	{3, 4, 5, 2, 1},
	{4, 5, 6, 3, 2, 1},
	{4, 5, 6, 7, 3, 2, 1},
	{5, 6, 7, 8, 4, 3, 2, 1},
	{5, 6, 7, 8, 9, 4, 3, 2, 1},
	{6, 7, 8, 9, 10, 5, 4, 3, 2, 1},
	{6, 7, 8, 9, 10, 11, 5, 4, 3, 2, 1},
	{7, 8, 9, 10, 11, 12, 6, 5, 4, 3, 2, 1},
	{7, 8, 9, 10, 11, 12, 13, 6, 5, 4, 3, 2, 1},
	{8, 9, 10, 11, 12, 13, 14, 7, 6, 5, 4, 3, 2, 1},
	{8, 9, 10, 11, 12, 13, 14, 15, 7, 6, 5, 4, 3, 2, 1},
	{9, 10, 11, 12, 13, 14, 15, 16, 8, 7, 6, 5, 4, 3, 2, 1},
	{9, 10, 11, 12, 13, 14, 15, 16, 17, 8, 7, 6, 5, 4, 3, 2, 1},
	{10, 11, 12, 13, 14, 15, 16, 17, 18, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	{11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	{12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	{12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	{13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
}

var landsPermutationClockwise = [24][]int{
	{1},
	{1, 2},
	{2, 1, 3},
	{2, 1, 3, 4},
	{3, 2, 1, 4, 5},
	{3, 2, 1, 4, 5, 6},
	{4, 3, 2, 1, 5, 6, 7},
	{4, 3, 2, 1, 5, 6, 7, 8},
	{5, 4, 3, 2, 1, 6, 7, 8, 9},
	{5, 4, 3, 2, 1, 6, 7, 8, 9, 10},
	{6, 5, 4, 3, 2, 1, 7, 8, 9, 10, 11},
	{6, 5, 4, 3, 2, 1, 7, 8, 9, 10, 11, 12},
	{7, 6, 5, 4, 3, 2, 1, 8, 9, 10, 11, 12, 13},
	{7, 6, 5, 4, 3, 2, 1, 8, 9, 10, 11, 12, 13, 14},
	{8, 7, 6, 5, 4, 3, 2, 1, 9, 10, 11, 12, 13, 14, 15},
	{8, 7, 6, 5, 4, 3, 2, 1, 9, 10, 11, 12, 13, 14, 15, 16},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 10, 11, 12, 13, 14, 15, 16, 17},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 10, 11, 12, 13, 14, 15, 16, 17, 18},
	{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 11, 12, 13, 14, 15, 16, 17, 18, 19},
	{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
	{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21},
	{11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22},
	{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23},
	{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
}

// orderForMode resolves the configured pattern to a row order for n rows.
// The counterclockwise flag only matters for lands.
func orderForMode(settings CenterSettings, n int, counterclockwise bool) []int {
	switch settings.Mode {
	case ModeSpiral:
		return spiralOrder(n)
	case ModeCircular:
		return circularOrder(n)
	case ModeLands:
		return landsOrder(n, settings.RowsPerLand, counterclockwise)
	default:
		return upDownOrder(n, settings.RowsToSkip, settings.LeaveSkippedUnworked)
	}
}
