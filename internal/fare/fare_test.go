package fare

import (
	"math"
	"testing"
)

func TestDistance_SamePoint_IsZero(t *testing.T) {
	t.Parallel()

	d := Distance(13.7563, 100.5018, 13.7563, 100.5018)
	if d != 0 {
		t.Errorf("expected 0 km for identical points, got %v", d)
	}
}

func TestDistance_IsSymmetric(t *testing.T) {
	t.Parallel()

	// Siriraj Hospital to Chulalongkorn Hospital, roughly.
	a := Distance(13.7594, 100.4863, 13.7308, 100.5364)
	b := Distance(13.7308, 100.5364, 13.7594, 100.4863)
	if a != b {
		t.Errorf("expected symmetric distance, got %v and %v", a, b)
	}
	if a <= 0 {
		t.Errorf("expected positive distance, got %v", a)
	}
}

func TestDistance_RoundsToOneDecimal(t *testing.T) {
	t.Parallel()

	// 0.009 degrees of latitude is about 1.0007 km along a meridian.
	d := Distance(13.7563, 100.5018, 13.7653, 100.5018)
	if d != 1.0 {
		t.Errorf("expected 1.0 km, got %v", d)
	}

	got := d * 10
	if got != math.Trunc(got) {
		t.Errorf("expected at most one decimal place, got %v km", d)
	}
}

func TestFare_RoundsUpToWholeUnit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		distanceKm float64
		want       int
	}{
		{0, 0},
		{1.0, 50},
		{2.3, 115},
		{0.1, 5},
		{10.7, 535},
	}

	for _, tc := range testCases {
		if got := Fare(tc.distanceKm); got != tc.want {
			t.Errorf("Fare(%v) = %d, want %d", tc.distanceKm, got, tc.want)
		}
	}
}

func TestEstimate_FareUsesRoundedDistance(t *testing.T) {
	t.Parallel()

	// 0.02109 degrees of latitude is about 2.3451 km raw. Rounded first the
	// distance is 2.3 km and the fare 115; charging on the raw distance
	// would give 118.
	distanceKm, amount := Estimate(13.7563, 100.5018, 13.77739, 100.5018)
	if distanceKm != 2.3 {
		t.Fatalf("expected 2.3 km, got %v", distanceKm)
	}
	if amount != 115 {
		t.Errorf("expected fare 115, got %d", amount)
	}
	if amount != Fare(distanceKm) {
		t.Errorf("expected fare derived from rounded distance, got %d vs %d", amount, Fare(distanceKm))
	}
}

func TestDistance_AntipodalPoints_Finite(t *testing.T) {
	t.Parallel()

	d := Distance(0, 0, 0, 180)
	if math.IsNaN(d) || math.IsInf(d, 0) {
		t.Fatalf("expected finite distance, got %v", d)
	}
	// Half the Earth's circumference at the chosen radius.
	if d < 20000 || d > 20100 {
		t.Errorf("expected roughly 20015 km, got %v", d)
	}
}
