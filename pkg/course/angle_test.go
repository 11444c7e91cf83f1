package course

import "testing"

func TestFindBestRowAngleSquare(t *testing.T) {
	settings := CenterSettings{Mode: ModeUpDown, UseBestAngle: true}
	best := findBestRowAngle(square40().Translated(square40().Centroid().Scale(-1)), nil, 4, 2, settings)
	if best.nTracks != 10 {
		t.Errorf("expected 10 tracks, got %d", best.nTracks)
	}
	if best.nBlocks != 1 {
		t.Errorf("expected 1 block, got %d", best.nBlocks)
	}
	if !approxEqual(best.angleDeg, 0, tolerance) && !approxEqual(best.angleDeg, 90, tolerance) && !approxEqual(best.angleDeg, 180, tolerance) {
		t.Errorf("expected an axis-aligned angle for a square, got %f", best.angleDeg)
	}
}

func TestFindBestRowAngleNarrowRectangle(t *testing.T) {
	rect := makePolygon([][2]float64{{0, 0}, {100, 0}, {100, 10}, {0, 10}})
	settings := CenterSettings{Mode: ModeUpDown, UseBestAngle: true}
	best := findBestRowAngle(rect.Translated(rect.Centroid().Scale(-1)), nil, 4, 2, settings)
	if !approxEqual(best.angleDeg, 0, 2.1) && !approxEqual(best.angleDeg, 180, 2.1) {
		t.Errorf("expected rows along the long axis, got %f", best.angleDeg)
	}
	if best.nTracks != 3 {
		t.Errorf("expected 3 tracks, got %d", best.nTracks)
	}
}

func TestLongestEdgeCandidate(t *testing.T) {
	rect := makePolygon([][2]float64{{0, 0}, {100, 0}, {100, 10}, {0, 10}})
	settings := CenterSettings{Mode: ModeUpDown, UseLongestEdgeAngle: true}
	best := findBestRowAngle(rect, nil, 4, 2, settings)
	if !approxEqual(best.angleDeg, 0, tolerance) {
		t.Errorf("expected the longest edge angle 0, got %f", best.angleDeg)
	}
	if best.nTracks != 3 {
		t.Errorf("expected 3 tracks, got %d", best.nTracks)
	}
}

func TestFixedAngleCandidate(t *testing.T) {
	rect := makePolygon([][2]float64{{0, 0}, {100, 0}, {100, 10}, {0, 10}})
	settings := CenterSettings{Mode: ModeUpDown, RowAngle: 1.5707963}
	best := findBestRowAngle(rect, nil, 4, 2, settings)
	if !approxEqual(best.angleDeg, 90, tolerance) {
		t.Errorf("expected the configured 90 degrees, got %f", best.angleDeg)
	}
	if best.nTracks <= 3 {
		t.Errorf("expected many cross rows at 90 degrees, got %d", best.nTracks)
	}
}

func TestAngleScoringSymmetricUnderHalfTurn(t *testing.T) {
	poly := square40().Translated(square40().Centroid().Scale(-1))
	for _, deg := range []float64{0, 14, 30, 45, 88} {
		t1, b1 := rowsAtAngle(poly, nil, 4, 2, deg)
		t2, b2 := rowsAtAngle(poly, nil, 4, 2, deg+180)
		if t1 != t2 || len(b1) != len(b2) {
			t.Errorf("angle %f: %d tracks/%d blocks vs %d tracks/%d blocks after half turn",
				deg, t1, len(b1), t2, len(b2))
		}
	}
}
