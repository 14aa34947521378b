package geom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

type kmlPlacemark struct {
	Name  string `xml:"name"`
	Point *struct {
		Coordinates string `xml:"coordinates"`
	} `xml:"Point"`
}

// ReadKML adapts every Placemark in the document, at any depth, into a
// candidate. KML coordinates are "lon,lat[,alt]"; altitude is ignored and
// both tokens go through ParseCoordinate.
func ReadKML(data []byte) ([]Candidate, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var cands []Candidate
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "kml: decode document")
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Placemark" {
			continue
		}
		var pm kmlPlacemark
		if err := dec.DecodeElement(&pm, &se); err != nil {
			return nil, eris.Wrap(err, "kml: decode placemark")
		}
		cands = append(cands, adaptPlacemark(pm, len(cands)))
	}
	return cands, nil
}

func adaptPlacemark(pm kmlPlacemark, index int) Candidate {
	name := strings.TrimSpace(pm.Name)
	if pm.Point == nil {
		return Candidate{Rejected: &RejectedRecord{Index: index, Raw: name, Reason: ReasonMissingGeometry}}
	}
	coords := strings.TrimSpace(pm.Point.Coordinates)
	// a Point holds a single tuple; take the first one
	if f := strings.Fields(coords); len(f) > 0 {
		coords = f[0]
	}
	vals := strings.Split(coords, ",")
	if len(vals) < 2 {
		return Candidate{Rejected: &RejectedRecord{Index: index, Raw: coords, Reason: ReasonMissingGeometry}}
	}
	lon, lonOK := ParseCoordinate(vals[0])
	lat, latOK := ParseCoordinate(vals[1])
	if !lonOK || !latOK {
		return Candidate{Rejected: &RejectedRecord{Index: index, Raw: coords, Reason: ReasonInvalidCoordinate}}
	}
	p, rej := ValidatePoint(name, lat, lon, index, coords)
	if rej != nil {
		return Candidate{Rejected: rej}
	}
	return Candidate{Point: p}
}
