package geo

import (
	"math"
	"testing"
)

var classroom = Point{Latitude: 15.0416, Longitude: 120.6832}

func TestDistanceIdenticalPoints(t *testing.T) {
	if d := Distance(classroom, classroom); d != 0 {
		t.Fatalf("expected zero distance, got %v", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	other := Point{Latitude: 14.5995, Longitude: 120.9842}
	ab := Distance(classroom, other)
	ba := Distance(other, classroom)
	if ab != ba {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
	if ab <= 0 {
		t.Fatalf("expected positive distance, got %v", ab)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	// One degree of latitude is roughly 111.2 km on the reference sphere.
	north := Point{Latitude: classroom.Latitude + 1, Longitude: classroom.Longitude}
	d := Distance(classroom, north)
	if math.Abs(d-111.2) > 0.5 {
		t.Fatalf("expected ~111.2 km, got %v", d)
	}
}

func TestWithinRangeSamePoint(t *testing.T) {
	if !WithinRange(classroom, classroom, 0.2) {
		t.Fatal("same point should be within any positive range")
	}
}

func TestWithinRangeFiveKilometersAway(t *testing.T) {
	// ~5 km due north
	student := Point{Latitude: classroom.Latitude + 0.045, Longitude: classroom.Longitude}
	d := Distance(classroom, student)
	if d < 4.5 || d > 5.5 {
		t.Fatalf("test point should be ~5 km away, got %v", d)
	}
	if WithinRange(classroom, student, 0.2) {
		t.Fatal("5 km away should not be within 0.2 km")
	}
}
