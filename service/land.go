package service

import "fmt"

// playable map bounds, parcels outside are owned but not reachable
const (
	boundsMin = -150
	boundsMax = 150
)

// plaza center coordinates of the genesis map
var plazas = [][2]int32{
	{0, 0},
	{72, 72}, {72, 0}, {72, -72},
	{0, 72}, {0, -72},
	{-72, 72}, {-72, 0}, {-72, -72},
}

// road corridors of the genesis map, main spines and ring roads only
var roads = []struct{ x1, y1, x2, y2 int32 }{
	{boundsMin, -1, boundsMax, 1},
	{-1, boundsMin, 1, boundsMax},
	{boundsMin, 71, boundsMax, 73},
	{boundsMin, -73, boundsMax, -71},
	{71, boundsMin, 73, boundsMax},
	{-73, boundsMin, -71, boundsMax},
}

func parcelInBounds(x, y int32) bool {
	return x >= boundsMin && x <= boundsMax && y >= boundsMin && y <= boundsMax
}

// distanceToPlaza chessboard distance to the nearest plaza center, -1 for
// parcels outside the map
func distanceToPlaza(x, y int32) int32 {
	if !parcelInBounds(x, y) {
		return -1
	}
	min := int32(-1)
	for _, plaza := range plazas {
		d := chebyshev(x-plaza[0], y-plaza[1])
		if min < 0 || d < min {
			min = d
		}
	}
	return min
}

// adjacentToRoad whether the parcel touches a road corridor
func adjacentToRoad(x, y int32) bool {
	for _, r := range roads {
		if x >= r.x1-1 && x <= r.x2+1 && y >= r.y1-1 && y <= r.y2+1 {
			return true
		}
	}
	return false
}

func parcelImage(x, y int32) string {
	return fmt.Sprintf("https://api.decentraland.org/v1/parcels/%v/%v/map.png", x, y)
}

func chebyshev(dx, dy int32) int32 {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
