package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_Zero(t *testing.T) {
	points := []Coordinate{
		{Latitude: 23.8737, Longitude: 90.3965},
		{Latitude: 0, Longitude: 0},
		{Latitude: -45.5, Longitude: 170.2},
	}
	for _, p := range points {
		if d := DistanceKm(p, p); d != 0 {
			t.Errorf("expected 0 for identical points, got %f", d)
		}
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	uttara := Coordinate{Latitude: 23.8737, Longitude: 90.3965}
	gulshan := Coordinate{Latitude: 23.7949, Longitude: 90.4143}

	ab := DistanceKm(uttara, gulshan)
	ba := DistanceKm(gulshan, uttara)
	if ab != ba {
		t.Errorf("expected symmetric distance, got %f and %f", ab, ba)
	}
	if ab <= 0 {
		t.Errorf("expected positive distance, got %f", ab)
	}
}

func TestDistanceKm_KnownValue(t *testing.T) {
	// Uttara to Gulshan is roughly 9 km as the crow flies.
	uttara := Coordinate{Latitude: 23.8737, Longitude: 90.3965}
	gulshan := Coordinate{Latitude: 23.7949, Longitude: 90.4143}

	d := DistanceKm(uttara, gulshan)
	if d < 8 || d > 10 {
		t.Errorf("expected distance near 9 km, got %f", d)
	}
}

func TestDistanceKm_QuarterCircumference(t *testing.T) {
	equator := Coordinate{}
	pole := Coordinate{Latitude: 90}

	d := DistanceKm(equator, pole)
	want := earthRadiusKm * math.Pi / 2
	if math.Abs(d-want) > 1e-6 {
		t.Errorf("expected %f, got %f", want, d)
	}
}
