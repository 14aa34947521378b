package geom

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// EncodeGeoJSON renders the collection as a FeatureCollection of points with
// an optional "name" property and the collection extent as bbox.
func EncodeGeoJSON(c PointCollection) ([]byte, error) {
	fc := &geojson.FeatureCollection{
		BBox:     c.Extent.Bounds(),
		Features: make([]*geojson.Feature, 0, len(c.Points)),
	}
	for _, p := range c.Points {
		f := &geojson.Feature{
			Geometry: gogeom.NewPointFlat(gogeom.XY, []float64{p.Lon, p.Lat}),
		}
		if p.Labeled() {
			f.Properties = map[string]any{"name": p.Name}
		}
		fc.Features = append(fc.Features, f)
	}
	b, err := json.Marshal(fc)
	if err != nil {
		return nil, eris.Wrap(err, "geojson: encode collection")
	}
	return b, nil
}
