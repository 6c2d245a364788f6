package coursedata

import "testing"

func TestSegmentsFromPointsRejectsEmpty(t *testing.T) {
	if _, err := SegmentsFromPoints(nil); err == nil {
		t.Error("expected error for an empty point list")
	}
}

func TestSegmentsFromPointsSkipsLeadingZeroMarker(t *testing.T) {
	points := []point{
		{DistKm: 0, EleM: 100},
		{DistKm: 1, EleM: 110, GradePct: 1.0, Heading: 90},
		{DistKm: 2, EleM: 100, GradePct: -1.0, Heading: 90},
	}
	segs, err := SegmentsFromPoints(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].LengthM != 1000 {
		t.Errorf("expected first segment length 1000m, got %v", segs[0].LengthM)
	}
	if segs[0].StartEleM != 100 || segs[0].EndEleM != 110 {
		t.Errorf("expected elevation 100->110, got %v->%v", segs[0].StartEleM, segs[0].EndEleM)
	}
	if segs[0].Grade != 0.01 {
		t.Errorf("expected grade 0.01 (from 1.0%%), got %v", segs[0].Grade)
	}
}

func TestSegmentsFromPointsWithoutLeadingMarker(t *testing.T) {
	points := []point{
		{DistKm: 1, EleM: 100, GradePct: 0},
		{DistKm: 3, EleM: 120, GradePct: 1.0},
	}
	segs, err := SegmentsFromPoints(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].LengthM != 1000 {
		t.Errorf("expected first segment length 1000m, got %v", segs[0].LengthM)
	}
	if segs[1].LengthM != 2000 {
		t.Errorf("expected second segment length 2000m, got %v", segs[1].LengthM)
	}
}

func TestSegmentsFromPointsPreservesCoordinates(t *testing.T) {
	points := []point{
		{DistKm: 0, Lat: 37.0, Lon: -122.0},
		{DistKm: 1, Lat: 37.01, Lon: -122.01},
	}
	segs, err := SegmentsFromPoints(points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if segs[0].StartLat != 37.0 || segs[0].StartLon != -122.0 {
		t.Errorf("expected start coordinates preserved, got (%v,%v)", segs[0].StartLat, segs[0].StartLon)
	}
}
