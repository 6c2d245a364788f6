package course

import "testing"

func TestCorneringSpeedLimitDoesNotApplyForStraightAhead(t *testing.T) {
	if _, applies := corneringSpeedLimitMps(0.5, 100); applies {
		t.Error("expected no cornering limit for a near-straight heading change")
	}
}

func TestCorneringSpeedLimitDoesNotApplyForZeroLength(t *testing.T) {
	if _, applies := corneringSpeedLimitMps(90, 0); applies {
		t.Error("expected no cornering limit for a zero-length segment")
	}
}

func TestCorneringSpeedLimitTighterForSharperTurns(t *testing.T) {
	gentle, _ := corneringSpeedLimitMps(20, 100)
	sharp, _ := corneringSpeedLimitMps(90, 100)
	if sharp >= gentle {
		t.Errorf("expected a sharper turn to impose a tighter speed limit: sharp=%v gentle=%v", sharp, gentle)
	}
}

func TestHeadingDeltaWrapsAround(t *testing.T) {
	cases := []struct {
		prev, cur, want float64
	}{
		{0, 10, 10},
		{350, 10, 20},
		{10, 350, 20},
		{0, 180, 180},
		{0, 270, 90},
	}
	for _, c := range cases {
		if got := headingDelta(c.prev, c.cur); got != c.want {
			t.Errorf("headingDelta(%v, %v) = %v, want %v", c.prev, c.cur, got, c.want)
		}
	}
}
