// Package ingest drives one load cycle: retrieve a source, adapt it into
// candidate records, validate them and hand the resulting point collection
// to a renderer.
package ingest

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"waymap/internal/geom"
)

// SourceType selects the adapter used for a source. It comes from
// configuration; content is never sniffed.
type SourceType string

const (
	SourceCSV     SourceType = "csv"
	SourceGeoJSON SourceType = "geojson"
	SourceKML     SourceType = "kml"
)

// ParseSourceType validates a configured source type.
func ParseSourceType(s string) (SourceType, error) {
	switch t := SourceType(strings.ToLower(strings.TrimSpace(s))); t {
	case SourceCSV, SourceGeoJSON, SourceKML:
		return t, nil
	}
	return "", eris.Errorf("unsupported source type %q (want csv, geojson or kml)", s)
}

// ExtensionTypes is the explicit mapping used when a user picks a local file.
var ExtensionTypes = map[string]SourceType{
	".csv":     SourceCSV,
	".geojson": SourceGeoJSON,
	".json":    SourceGeoJSON,
	".kml":     SourceKML,
}

// TypeForPath looks up the source type mapped to path's extension.
func TypeForPath(path string) (SourceType, bool) {
	t, ok := ExtensionTypes[strings.ToLower(filepath.Ext(path))]
	return t, ok
}

// Source is one configured input.
type Source struct {
	Location string
	Type     SourceType
	Header   geom.HeaderMode
}

// Adapt turns raw source bytes into candidates with the adapter for typ.
// An error means the document as a whole could not be read.
func Adapt(typ SourceType, data []byte, header geom.HeaderMode) ([]geom.Candidate, error) {
	switch typ {
	case SourceCSV:
		cands, _ := geom.ReadCSV(string(data), header)
		return cands, nil
	case SourceGeoJSON:
		return geom.ReadGeoJSON(data)
	case SourceKML:
		return geom.ReadKML(data)
	}
	return nil, eris.Errorf("unsupported source type %q", typ)
}
