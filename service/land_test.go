package service

import "testing"

func TestParcelInBounds(t *testing.T) {
	for _, c := range []struct {
		x, y int32
		want bool
	}{
		{0, 0, true}, {150, -150, true}, {151, 0, false}, {0, -151, false},
	} {
		if parcelInBounds(c.x, c.y) != c.want {
			t.Errorf("bounds (%v,%v)", c.x, c.y)
		}
	}
}

func TestDistanceToPlaza(t *testing.T) {
	for _, c := range []struct {
		x, y, want int32
	}{
		{0, 0, 0},
		{75, 72, 3},
		{10, -5, 10},
		{-100, 100, 28},
		{200, 0, -1},
	} {
		if d := distanceToPlaza(c.x, c.y); d != c.want {
			t.Errorf("distance (%v,%v) = %v, want %v", c.x, c.y, d, c.want)
		}
	}
}

func TestAdjacentToRoad(t *testing.T) {
	if !adjacentToRoad(5, 2) {
		t.Error("parcel next to the main spine")
	}
	if !adjacentToRoad(-72, 70) {
		t.Error("parcel next to a ring road")
	}
	if adjacentToRoad(10, 10) {
		t.Error("interior parcel")
	}
}
