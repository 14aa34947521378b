package geom

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

type rawDocument struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

type rawFeature struct {
	Type       string            `json:"type"`
	Geometry   *geojson.Geometry `json:"geometry"`
	Properties map[string]any    `json:"properties"`
}

// ReadGeoJSON adapts a FeatureCollection (or a single Feature) into
// candidates, one per feature in collection order. Coordinates are read as
// [lon, lat]. Features without a point geometry are rejected; a feature
// without a name property becomes an unlabeled point. An error is returned
// only when the document itself cannot be read.
func ReadGeoJSON(data []byte) ([]Candidate, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "geojson: decode document")
	}
	var features []json.RawMessage
	switch doc.Type {
	case "FeatureCollection":
		features = doc.Features
	case "Feature":
		features = []json.RawMessage{data}
	default:
		return nil, eris.Errorf("geojson: unsupported document type %q", doc.Type)
	}
	cands := make([]Candidate, 0, len(features))
	for i, raw := range features {
		cands = append(cands, adaptFeature(raw, i))
	}
	return cands, nil
}

func adaptFeature(raw json.RawMessage, index int) Candidate {
	reject := func(reason, detail string) Candidate {
		return Candidate{Rejected: &RejectedRecord{Index: index, Raw: string(raw), Reason: reason, Detail: detail}}
	}
	var f rawFeature
	if err := json.Unmarshal(raw, &f); err != nil {
		return reject(ReasonMalformedFeature, err.Error())
	}
	if f.Type != "Feature" {
		return reject(ReasonMalformedFeature, fmt.Sprintf("type %q", f.Type))
	}
	if f.Geometry == nil {
		return reject(ReasonMissingGeometry, "")
	}
	g, err := f.Geometry.Decode()
	if err != nil {
		return reject(ReasonMissingGeometry, err.Error())
	}
	pt, ok := g.(*gogeom.Point)
	if !ok {
		return reject(ReasonNotPoint, f.Geometry.Type)
	}
	if len(pt.FlatCoords()) < 2 {
		return reject(ReasonMissingGeometry, "empty point")
	}
	p, rej := ValidatePoint(labelOf(f.Properties), pt.Y(), pt.X(), index, string(raw))
	if rej != nil {
		return Candidate{Rejected: rej}
	}
	return Candidate{Point: p}
}

func labelOf(props map[string]any) string {
	switch v := props["name"].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprint(v)
	}
}
