package geom

import (
	"fmt"
	"strings"
)

// ValidateRow turns one data row into a GeoPoint. index is the zero-based
// position of the row among data rows and is used for the placeholder name
// and in the rejection.
func ValidateRow(row []string, hm HeaderMap, index int) (GeoPoint, *RejectedRecord) {
	if len(row) < hm.Width() {
		return GeoPoint{}, &RejectedRecord{
			Index:  index,
			Raw:    strings.Join(row, ","),
			Reason: ReasonRowTooShort,
			Detail: fmt.Sprintf("%d cells, need %d", len(row), hm.Width()),
		}
	}
	name := strings.TrimSpace(row[hm.Name])
	if name == "" {
		name = fmt.Sprintf("pt%d", index+1)
	}
	latTok, lonTok := row[hm.Lat], row[hm.Lon]
	lat, latOK := ParseCoordinate(latTok)
	lon, lonOK := ParseCoordinate(lonTok)
	if !latOK || !lonOK || !checkRange(lat, lon) {
		return GeoPoint{}, &RejectedRecord{
			Index:  index,
			Raw:    strings.Join(row, ","),
			Reason: ReasonInvalidCoordinate,
			Detail: fmt.Sprintf("lat=%q lon=%q", latTok, lonTok),
		}
	}
	return GeoPoint{Name: name, Lat: lat, Lon: lon}, nil
}

// ValidatePoint applies the range rules to an already numeric coordinate
// pair, as produced by structured sources.
func ValidatePoint(name string, lat, lon float64, index int, raw string) (GeoPoint, *RejectedRecord) {
	if !checkRange(lat, lon) {
		return GeoPoint{}, &RejectedRecord{
			Index:  index,
			Raw:    raw,
			Reason: ReasonInvalidCoordinate,
			Detail: fmt.Sprintf("lat=%v lon=%v", lat, lon),
		}
	}
	return GeoPoint{Name: name, Lat: lat, Lon: lon}, nil
}
