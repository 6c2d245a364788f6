package model

import "testing"

func TestClampGrade(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.30, maxGrade},
		{-0.30, minGrade},
		{0.10, 0.10},
		{0, 0},
	}
	for _, c := range cases {
		if got := ClampGrade(c.in); got != c.want {
			t.Errorf("ClampGrade(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNewSegmentStreamRejectsEmpty(t *testing.T) {
	if _, err := NewSegmentStream(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestNewSegmentStreamDropsZeroLength(t *testing.T) {
	raw := []Segment{
		{LengthM: 100, Grade: 0.05},
		{LengthM: 0, Grade: 0.0}, // zero-length marker point
		{LengthM: 50, Grade: -0.02},
	}
	out, err := NewSegmentStream(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 segments after dropping zero-length, got %d", len(out))
	}
	if out[0].Index != 0 || out[1].Index != 1 {
		t.Errorf("expected reindexed segments, got indexes %d, %d", out[0].Index, out[1].Index)
	}
}

func TestNewSegmentStreamClampsGrade(t *testing.T) {
	raw := []Segment{{LengthM: 100, Grade: 0.5}}
	out, err := NewSegmentStream(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].Grade != maxGrade {
		t.Errorf("expected clamped grade %v, got %v", maxGrade, out[0].Grade)
	}
}

func TestNewSegmentStreamAllZeroLengthIsDegenerate(t *testing.T) {
	raw := []Segment{{LengthM: 0}, {LengthM: 0}}
	if _, err := NewSegmentStream(raw); err == nil {
		t.Error("expected error when all segments have zero length")
	}
}

func TestTotalLengthM(t *testing.T) {
	segs := []Segment{{LengthM: 100}, {LengthM: 250}}
	if got := TotalLengthM(segs); got != 350 {
		t.Errorf("TotalLengthM = %v, want 350", got)
	}
}

func TestCrrFor(t *testing.T) {
	s := Segment{Crr: 0}
	if got := s.CrrFor(0.005); got != 0.005 {
		t.Errorf("expected default crr 0.005, got %v", got)
	}
	s.Crr = 0.010
	if got := s.CrrFor(0.005); got != 0.010 {
		t.Errorf("expected segment crr 0.010, got %v", got)
	}
}
