package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waymap/internal/config"
	"waymap/internal/geom"
	"waymap/internal/ingest"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "waymap [source]", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["dump"])
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"config", "type", "header", "label-zoom"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing --%s", name)
	}
	flag := dumpCmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "geojson", flag.DefValue)
}

func TestSourceFromArgs(t *testing.T) {
	cfg = &config.Config{Source: config.SourceConfig{URL: "https://example.com/w.geojson", Type: "geojson", Header: "auto"}}
	t.Cleanup(func() { cfg = nil })

	src, err := sourceFromArgs(dumpCmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/w.geojson", src.Location)
	assert.Equal(t, ingest.SourceGeoJSON, src.Type)

	src, err = sourceFromArgs(dumpCmd, []string{"stations.kml"})
	require.NoError(t, err)
	assert.Equal(t, "stations.kml", src.Location)
	assert.Equal(t, ingest.SourceKML, src.Type)
	assert.Equal(t, geom.HeaderAuto, src.Header)
}

func readyOutcome() ingest.Outcome {
	var b geom.Builder
	b.Add(geom.GeoPoint{Name: "Tokyo", Lat: 35.68, Lon: 139.69})
	return ingest.Outcome{
		Source:     ingest.Source{Location: "p.csv", Type: ingest.SourceCSV},
		State:      ingest.StateReady,
		Collection: b.Collection(),
		Records:    2,
		Rejected:   []geom.RejectedRecord{{Index: 1, Reason: geom.ReasonInvalidCoordinate}},
	}
}

func TestWriteDumpGeoJSON(t *testing.T) {
	var out, diag bytes.Buffer
	require.NoError(t, writeDump(&out, &diag, readyOutcome(), "geojson"))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, []float64{139.69, 35.68}, fc.Features[0].Geometry.Coordinates)
	assert.Contains(t, diag.String(), "invalid coordinate")
}

func TestWriteDumpTable(t *testing.T) {
	var out, diag bytes.Buffer
	require.NoError(t, writeDump(&out, &diag, readyOutcome(), "table"))
	assert.Contains(t, out.String(), "Tokyo")
	assert.Contains(t, out.String(), "35.6800000")
}

func TestWriteDumpFailed(t *testing.T) {
	o := ingest.Outcome{
		Source:  ingest.Source{Location: "https://example.com/x"},
		State:   ingest.StateFailed,
		Failure: &ingest.Failure{Kind: ingest.FailureTransport, Reason: "transport error: HTTP 404 Not Found"},
	}
	err := writeDump(&bytes.Buffer{}, &bytes.Buffer{}, o, "geojson")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestWriteDumpUnknownFormat(t *testing.T) {
	err := writeDump(&bytes.Buffer{}, &bytes.Buffer{}, readyOutcome(), "xml")
	assert.Error(t, err)
}

func TestDumpRejectsFormatBeforeFetch(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("A,1,2\n"))
	}))
	defer srv.Close()

	cfg = &config.Config{Source: config.SourceConfig{URL: srv.URL + "/p.csv", Type: "csv", Header: "auto", TimeoutSecs: 5}}
	t.Cleanup(func() { cfg = nil })
	dumpFormat = "xml"
	t.Cleanup(func() { dumpFormat = "geojson" })

	err := dumpCmd.RunE(dumpCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
	assert.Zero(t, hits.Load())
}

func TestCheckDumpFormat(t *testing.T) {
	assert.NoError(t, checkDumpFormat("geojson"))
	assert.NoError(t, checkDumpFormat("TABLE"))
	assert.Error(t, checkDumpFormat("kml"))
}
