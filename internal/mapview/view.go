// Package mapview holds the viewport state of the terminal map. It is owned
// by the rendering side; the load pipeline only ever hands it an extent.
package mapview

import (
	"math"

	"waymap/internal/geom"
)

// TileSize is the number of micro-pixels spanning 360 degrees of longitude
// at zoom 0.
const TileSize = 256

// Options configures a new View.
type Options struct {
	CenterLat  float64
	CenterLon  float64
	Zoom       int
	MinZoom    int
	MaxZoom    int
	LabelZoom  int
	FitPadding float64
}

// DefaultOptions is the initial view of the waypoint map.
var DefaultOptions = Options{
	CenterLat:  35,
	CenterLon:  135,
	Zoom:       5,
	MinZoom:    0,
	MaxZoom:    15,
	LabelZoom:  8,
	FitPadding: 0.1,
}

// View is an equirectangular viewport measured in braille micro-pixels
// (2x4 per terminal cell).
type View struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	MinZoom   int
	MaxZoom   int
	LabelZoom int
	Padding   float64
}

// New creates a view from opts, clamping the zoom into range.
func New(opts Options) *View {
	if opts.MaxZoom < opts.MinZoom {
		opts.MaxZoom = opts.MinZoom
	}
	v := &View{
		CenterLat: opts.CenterLat,
		CenterLon: opts.CenterLon,
		MinZoom:   opts.MinZoom,
		MaxZoom:   opts.MaxZoom,
		LabelZoom: opts.LabelZoom,
		Padding:   opts.FitPadding,
	}
	v.SetZoom(opts.Zoom)
	return v
}

// Scale returns micro-pixels per degree at zoom z.
func Scale(z int) float64 {
	return TileSize / 360.0 * math.Exp2(float64(z))
}

// LabelsVisible reports whether point labels are shown at the current zoom.
func (v *View) LabelsVisible() bool { return v.Zoom >= v.LabelZoom }

// SetZoom sets the zoom, clamped to [MinZoom, MaxZoom]. It reports whether
// the zoom changed.
func (v *View) SetZoom(z int) bool {
	z = max(v.MinZoom, min(v.MaxZoom, z))
	if z == v.Zoom {
		return false
	}
	v.Zoom = z
	return true
}

func (v *View) ZoomIn() bool  { return v.SetZoom(v.Zoom + 1) }
func (v *View) ZoomOut() bool { return v.SetZoom(v.Zoom - 1) }

// Pan moves the center by dx, dy micro-pixels (positive dy is south).
func (v *View) Pan(dx, dy int) {
	s := Scale(v.Zoom)
	v.CenterLon = clamp(v.CenterLon+float64(dx)/s, -180, 180)
	v.CenterLat = clamp(v.CenterLat-float64(dy)/s, -90, 90)
}

// Fit centers the view on e grown by the padding ratio and picks the
// largest zoom at which it fits a w by h micro-pixel canvas. A zero-size
// extent (a single point) goes to MaxZoom. It reports false for an invalid
// extent and leaves the view unchanged.
func (v *View) Fit(e geom.Extent, w, h int) bool {
	if !e.Valid {
		return false
	}
	p := e.Pad(v.Padding)
	v.CenterLat, v.CenterLon = p.Center()
	spanLat := p.MaxLat - p.MinLat
	spanLon := p.MaxLon - p.MinLon
	if spanLat == 0 && spanLon == 0 {
		v.Zoom = v.MaxZoom
		return true
	}
	z := v.MinZoom
	for c := v.MaxZoom; c >= v.MinZoom; c-- {
		s := Scale(c)
		if spanLon*s <= float64(w) && spanLat*s <= float64(h) {
			z = c
			break
		}
	}
	v.Zoom = z
	return true
}

// Project maps lat/lon to micro-pixel coordinates on a w by h canvas.
func (v *View) Project(lat, lon float64, w, h int) (x, y int) {
	s := Scale(v.Zoom)
	fx := float64(w)/2 + (lon-v.CenterLon)*s
	fy := float64(h)/2 - (lat-v.CenterLat)*s
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// Unproject maps micro-pixel coordinates back to lat/lon (pixel center).
func (v *View) Unproject(x, y, w, h int) (lat, lon float64) {
	s := Scale(v.Zoom)
	lon = v.CenterLon + (float64(x)+0.5-float64(w)/2)/s
	lat = v.CenterLat - (float64(y)+0.5-float64(h)/2)/s
	return lat, lon
}

// Visible reports whether a projected micro-pixel falls on the canvas.
func Visible(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
