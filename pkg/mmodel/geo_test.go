package mmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "valid", lat: 48.0, lng: 9.0},
		{name: "north pole", lat: 90, lng: 0},
		{name: "antimeridian", lat: 0, lng: -180},
		{name: "lat out of range", lat: 90.5, lng: 0, wantErr: true},
		{name: "lng out of range", lat: 0, lng: 180.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewMapPoint(tt.lat, tt.lng)

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, p.IsValid())
			} else {
				assert.NoError(t, err)
				assert.True(t, p.IsValid())
			}
		})
	}
}

func TestMapPointFixedPointRoundTrip(t *testing.T) {
	p, err := NewMapPoint(48.123456, 9.654321)
	require.NoError(t, err)

	lat, lng := p.ToLatLngInt()
	restored := MapPointFromLatLngInt(lat, lng)

	assert.InDelta(t, p.Lat, restored.Lat, 1e-6)
	assert.InDelta(t, p.Lng, restored.Lng, 1e-6)
}

func TestParseMapBbox(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "-8,-5,10,7.9"},
		{name: "fewer than four numbers", input: "5,4,3", wantErr: true},
		{name: "not a number", input: "a,b,c,d", wantErr: true},
		{name: "lat out of range", input: "-95,0,10,10", wantErr: true},
		{name: "empty lat range", input: "10,0,-10,10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMapBbox(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMapBboxContains(t *testing.T) {
	bbox, err := NewMapBbox(-8, -5, 10, 7.9)
	require.NoError(t, err)

	inside, _ := NewMapPoint(0.3, 5)
	assert.True(t, bbox.Contains(inside))

	// Corners are inclusive.
	swCorner, _ := NewMapPoint(-8, -5)
	assert.True(t, bbox.Contains(swCorner))

	neCorner, _ := NewMapPoint(10, 7.9)
	assert.True(t, bbox.Contains(neCorner))

	outside, _ := NewMapPoint(12, 0)
	assert.False(t, bbox.Contains(outside))
}

func TestMapBboxWrapAround(t *testing.T) {
	// sw.lng > ne.lng selects the complement longitude range.
	bbox, err := NewMapBbox(-10, 170, 10, -170)
	require.NoError(t, err)

	nearAntimeridianEast, _ := NewMapPoint(0, 175)
	assert.True(t, bbox.Contains(nearAntimeridianEast))

	nearAntimeridianWest, _ := NewMapPoint(0, -175)
	assert.True(t, bbox.Contains(nearAntimeridianWest))

	greenwich, _ := NewMapPoint(0, 0)
	assert.False(t, bbox.Contains(greenwich))
}

func TestMapBboxInflate(t *testing.T) {
	bbox, err := NewMapBbox(0, 0, 1, 1)
	require.NoError(t, err)

	inflated := bbox.Inflate(0.02, 0.04)

	assert.InDelta(t, -0.02, inflated.SouthWest.Lat, 1e-9)
	assert.InDelta(t, -0.04, inflated.SouthWest.Lng, 1e-9)
	assert.InDelta(t, 1.02, inflated.NorthEast.Lat, 1e-9)
	assert.InDelta(t, 1.04, inflated.NorthEast.Lng, 1e-9)

	// Inflation clamps at the poles.
	polar, err := NewMapBbox(89.99, 0, 90, 1)
	require.NoError(t, err)
	assert.Equal(t, 90.0, polar.Inflate(0.02, 0.04).NorthEast.Lat)
}
