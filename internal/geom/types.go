package geom

import (
	"fmt"
	"math"
)

// Role is the logical meaning of a tabular column.
type Role int

const (
	RoleName Role = iota
	RoleLat
	RoleLon
)

func (r Role) String() string {
	switch r {
	case RoleName:
		return "name"
	case RoleLat:
		return "lat"
	case RoleLon:
		return "lon"
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// GeoPoint is a validated, labeled location in decimal degrees.
type GeoPoint struct {
	Name string
	Lat  float64
	Lon  float64
}

// Labeled reports whether the point carries label text.
func (p GeoPoint) Labeled() bool { return p.Name != "" }

// Extent is the bounding rectangle of a point collection.
// It is only meaningful when Valid is true.
type Extent struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
	Valid  bool
}

// Pad grows the extent by ratio of its size on every side.
func (e Extent) Pad(ratio float64) Extent {
	if !e.Valid {
		return e
	}
	dLat := (e.MaxLat - e.MinLat) * ratio
	dLon := (e.MaxLon - e.MinLon) * ratio
	return Extent{
		MinLat: e.MinLat - dLat,
		MinLon: e.MinLon - dLon,
		MaxLat: e.MaxLat + dLat,
		MaxLon: e.MaxLon + dLon,
		Valid:  true,
	}
}

// Center returns the midpoint of the extent.
func (e Extent) Center() (lat, lon float64) {
	return (e.MinLat + e.MaxLat) / 2, (e.MinLon + e.MaxLon) / 2
}

// PointCollection is the ordered result of one load cycle.
type PointCollection struct {
	Points []GeoPoint
	Extent Extent
}

// Len returns the number of points.
func (c PointCollection) Len() int { return len(c.Points) }

// Empty reports whether the collection holds no points.
func (c PointCollection) Empty() bool { return len(c.Points) == 0 }

// Rejection reasons.
const (
	ReasonRowTooShort       = "row too short"
	ReasonInvalidCoordinate = "invalid coordinate"
	ReasonMissingGeometry   = "missing geometry"
	ReasonNotPoint          = "unsupported geometry"
	ReasonMalformedFeature  = "malformed feature"
)

// RejectedRecord describes an input record that did not become a point.
// It is kept for diagnostics only.
type RejectedRecord struct {
	Index  int
	Raw    string
	Reason string
	Detail string
}

func (r *RejectedRecord) Error() string {
	if r.Detail != "" {
		return fmt.Sprintf("record %d: %s: %s", r.Index, r.Reason, r.Detail)
	}
	return fmt.Sprintf("record %d: %s", r.Index, r.Reason)
}

// Candidate is one input record after validation: exactly one of Point or
// Rejected is meaningful.
type Candidate struct {
	Point    GeoPoint
	Rejected *RejectedRecord
}

// Accepted reports whether the candidate became a point.
func (c Candidate) Accepted() bool { return c.Rejected == nil }

// checkRange enforces finite coordinates inside [-90,90] x [-180,180].
func checkRange(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
