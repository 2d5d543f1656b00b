package utils

import (
	"math"
	"testing"
)

func TestCalculateDistanceZeroForSamePoint(t *testing.T) {
	if d := CalculateDistance(40.7128, -74.0060, 40.7128, -74.0060); d != 0 {
		t.Errorf("expected 0 distance for identical points, got %f", d)
	}
}

func TestCalculateDistanceSymmetry(t *testing.T) {
	d1 := CalculateDistance(40.7128, -74.0060, 34.0522, -118.2437)
	d2 := CalculateDistance(34.0522, -118.2437, 40.7128, -74.0060)
	if d1 != d2 {
		t.Errorf("distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestCalculateDistanceKnownValues(t *testing.T) {
	// New York to Los Angeles, roughly 3936 km great-circle
	d := CalculateDistance(40.7128, -74.0060, 34.0522, -118.2437)
	if d < 3900 || d > 3980 {
		t.Errorf("NYC-LA distance out of range: %f", d)
	}

	// Two points in lower Manhattan, under 1.5 km apart
	d = CalculateDistance(40.7128, -74.0060, 40.7200, -74.0100)
	if d < 0.5 || d > 1.5 {
		t.Errorf("short distance out of range: %f", d)
	}
}

func TestCalculateDistanceMalformedCoordinates(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
	}{
		{"nan latitude", math.NaN(), 0, 0, 0},
		{"nan longitude", 0, math.NaN(), 0, 0},
		{"infinite latitude", math.Inf(1), 0, 0, 0},
		{"latitude out of range", 100, 0, 0, 0},
		{"longitude out of range", 0, 0, 0, -200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := CalculateDistance(tc.lat1, tc.lng1, tc.lat2, tc.lng2)
			if !math.IsInf(d, 1) {
				t.Errorf("expected +Inf for malformed input, got %f", d)
			}
		})
	}
}
