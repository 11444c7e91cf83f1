package course

import "testing"

func assertPermutation(t *testing.T, order []int, n int) {
	t.Helper()
	if len(order) != n {
		t.Fatalf("expected %d rows, got %d: %v", n, len(order), order)
	}
	seen := make([]bool, n)
	for _, r := range order {
		if r < 0 || r >= n {
			t.Fatalf("row index %d out of range [0,%d): %v", r, n, order)
		}
		if seen[r] {
			t.Fatalf("row %d visited twice: %v", r, order)
		}
		seen[r] = true
	}
}

func TestUpDownOrderIsPermutation(t *testing.T) {
	for n := 1; n <= 25; n++ {
		for skip := 0; skip <= 3; skip++ {
			assertPermutation(t, upDownOrder(n, skip, false), n)
		}
	}
}

func TestUpDownOrderSkipOne(t *testing.T) {
	got := upDownOrder(8, 1, false)
	want := []int{0, 2, 4, 6, 7, 5, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestUpDownOrderLeaveSkipped(t *testing.T) {
	got := upDownOrder(8, 1, true)
	want := []int{0, 2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSpiralOrderIsPermutation(t *testing.T) {
	for n := 1; n <= 25; n++ {
		assertPermutation(t, spiralOrder(n), n)
	}
}

func TestSpiralOrderInterleaves(t *testing.T) {
	got := spiralOrder(6)
	want := []int{0, 5, 1, 4, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	got = spiralOrder(5)
	want = []int{0, 4, 1, 3, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCircularOrderIsPermutation(t *testing.T) {
	for n := 1; n <= 25; n++ {
		assertPermutation(t, circularOrder(n), n)
	}
}

func TestLandsOrderIsPermutation(t *testing.T) {
	for n := 1; n <= 25; n++ {
		for k := 1; k <= 24; k++ {
			assertPermutation(t, landsOrder(n, k, true), n)
			assertPermutation(t, landsOrder(n, k, false), n)
		}
	}
}

func TestLandsOrderCounterclockwise(t *testing.T) {
	got := landsOrder(12, 4, true)
	want := []int{2, 3, 1, 0, 6, 7, 5, 4, 10, 11, 9, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestLandsOrderClockwiseMirrorsCounterclockwise(t *testing.T) {
	for size := 1; size <= 24; size++ {
		ccw := landsPermutationCounterclockwise[size-1]
		cw := landsPermutationClockwise[size-1]
		for i := range ccw {
			if cw[i] != size+1-ccw[i] {
				t.Fatalf("size %d: clockwise table is not the mirror at position %d", size, i)
			}
		}
	}
}

func TestLandsOrderShortTail(t *testing.T) {
	// 10 rows in lands of 4: two full lands and a tail of 2.
	got := landsOrder(10, 4, true)
	want := []int{2, 3, 1, 0, 6, 7, 5, 4, 9, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
