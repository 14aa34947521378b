package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waymap/internal/geom"
)

func TestNewClampsZoom(t *testing.T) {
	opts := DefaultOptions
	opts.Zoom = 40
	v := New(opts)
	assert.Equal(t, 15, v.Zoom)
}

func TestZoomStepsClamp(t *testing.T) {
	v := New(Options{Zoom: 1, MinZoom: 0, MaxZoom: 2, LabelZoom: 2})
	assert.True(t, v.ZoomIn())
	assert.False(t, v.ZoomIn())
	assert.Equal(t, 2, v.Zoom)
	assert.True(t, v.ZoomOut())
	assert.True(t, v.ZoomOut())
	assert.False(t, v.ZoomOut())
	assert.Equal(t, 0, v.Zoom)
}

func TestLabelsVisibleAtThreshold(t *testing.T) {
	v := New(DefaultOptions)
	tests := []struct {
		zoom int
		want bool
	}{
		{5, false},
		{7, false},
		{8, true},
		{12, true},
	}
	for _, tt := range tests {
		v.SetZoom(tt.zoom)
		assert.Equal(t, tt.want, v.LabelsVisible(), "zoom %d", tt.zoom)
	}
}

func TestFitSinglePointGoesToMaxZoom(t *testing.T) {
	v := New(DefaultOptions)
	e := geom.Extent{MinLat: 24.4, MinLon: 123.2, MaxLat: 24.4, MaxLon: 123.2, Valid: true}
	require.True(t, v.Fit(e, 160, 80))
	assert.Equal(t, 15, v.Zoom)
	assert.InDelta(t, 24.4, v.CenterLat, 1e-9)
	assert.InDelta(t, 123.2, v.CenterLon, 1e-9)
}

func TestFitKeepsExtentOnCanvas(t *testing.T) {
	v := New(DefaultOptions)
	e := geom.Extent{MinLat: 24.3, MinLon: 122.9, MaxLat: 45.5, MaxLon: 145.8, Valid: true}
	w, h := 160, 88
	require.True(t, v.Fit(e, w, h))

	for _, c := range [][2]float64{{e.MinLat, e.MinLon}, {e.MaxLat, e.MaxLon}, {e.MinLat, e.MaxLon}} {
		x, y := v.Project(c[0], c[1], w, h)
		assert.True(t, Visible(x, y, w, h), "corner %v projected to %d,%d", c, x, y)
	}
	// one more zoom step must no longer fit
	if v.Zoom < v.MaxZoom {
		s := Scale(v.Zoom + 1)
		p := e.Pad(v.Padding)
		assert.True(t, (p.MaxLon-p.MinLon)*s > float64(w) || (p.MaxLat-p.MinLat)*s > float64(h))
	}
}

func TestFitInvalidExtentIsNoop(t *testing.T) {
	v := New(DefaultOptions)
	assert.False(t, v.Fit(geom.Extent{}, 100, 100))
	assert.Equal(t, 5, v.Zoom)
	assert.Equal(t, 35.0, v.CenterLat)
}

func TestProjectRoundTrip(t *testing.T) {
	v := New(DefaultOptions)
	v.SetZoom(9)
	w, h := 200, 120
	lat, lon := 35.6812, 139.7671
	x, y := v.Project(lat, lon, w, h)
	gotLat, gotLon := v.Unproject(x, y, w, h)
	tol := 1 / Scale(v.Zoom)
	assert.InDelta(t, lat, gotLat, tol)
	assert.InDelta(t, lon, gotLon, tol)
}

func TestProjectCenterIsMiddle(t *testing.T) {
	v := New(DefaultOptions)
	x, y := v.Project(v.CenterLat, v.CenterLon, 100, 60)
	assert.Equal(t, 50, x)
	assert.Equal(t, 30, y)
}

func TestPan(t *testing.T) {
	v := New(DefaultOptions)
	s := Scale(v.Zoom)
	v.Pan(int(s), 0)
	assert.InDelta(t, 136, v.CenterLon, 0.05)
	v.Pan(0, int(s))
	assert.InDelta(t, 34, v.CenterLat, 0.05)

	v.Pan(0, -1<<20)
	assert.Equal(t, 90.0, v.CenterLat)
}
