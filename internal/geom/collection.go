package geom

import gogeom "github.com/twpayne/go-geom"

// Builder accumulates accepted points in encounter order and widens the
// extent as it goes.
type Builder struct {
	points []GeoPoint
	ext    Extent
}

// Add appends p. The first point initialises the extent; later points only
// widen it.
func (b *Builder) Add(p GeoPoint) {
	b.points = append(b.points, p)
	if !b.ext.Valid {
		b.ext = Extent{MinLat: p.Lat, MinLon: p.Lon, MaxLat: p.Lat, MaxLon: p.Lon, Valid: true}
		return
	}
	if p.Lat < b.ext.MinLat {
		b.ext.MinLat = p.Lat
	}
	if p.Lon < b.ext.MinLon {
		b.ext.MinLon = p.Lon
	}
	if p.Lat > b.ext.MaxLat {
		b.ext.MaxLat = p.Lat
	}
	if p.Lon > b.ext.MaxLon {
		b.ext.MaxLon = p.Lon
	}
}

// Collection returns the points gathered so far.
func (b *Builder) Collection() PointCollection {
	pts := make([]GeoPoint, len(b.points))
	copy(pts, b.points)
	return PointCollection{Points: pts, Extent: b.ext}
}

// Build collects points into a PointCollection.
func Build(points []GeoPoint) PointCollection {
	var b Builder
	for _, p := range points {
		b.Add(p)
	}
	return b.Collection()
}

// Split separates candidates into accepted points and rejections, keeping
// input order in both.
func Split(cands []Candidate) (points []GeoPoint, rejected []RejectedRecord) {
	for _, c := range cands {
		if c.Rejected != nil {
			rejected = append(rejected, *c.Rejected)
			continue
		}
		points = append(points, c.Point)
	}
	return points, rejected
}

// Bounds converts the extent to go-geom bounds (X = lon, Y = lat).
// It returns nil for an invalid extent.
func (e Extent) Bounds() *gogeom.Bounds {
	if !e.Valid {
		return nil
	}
	return gogeom.NewBounds(gogeom.XY).Set(e.MinLon, e.MinLat, e.MaxLon, e.MaxLat)
}
