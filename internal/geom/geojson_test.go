package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "Tokyo"}, "geometry": {"type": "Point", "coordinates": [139.7, 35.6]}},
    {"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [135.5, 34.7]}},
    {"type": "Feature", "properties": {"name": "nowhere"}, "geometry": null},
    {"type": "Feature", "properties": {"name": "line"}, "geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]}},
    {"type": "Feature", "properties": {"name": "off"}, "geometry": {"type": "Point", "coordinates": [10, 95]}},
    {"type": "Feature", "properties": {"name": 7}, "geometry": {"type": "Point", "coordinates": [1, 2, 30]}},
    "not a feature"
  ]
}`

func TestReadGeoJSON(t *testing.T) {
	cands, err := ReadGeoJSON([]byte(sampleCollection))
	require.NoError(t, err)
	require.Len(t, cands, 7)

	assert.Equal(t, GeoPoint{Name: "Tokyo", Lat: 35.6, Lon: 139.7}, cands[0].Point)

	require.True(t, cands[1].Accepted())
	assert.False(t, cands[1].Point.Labeled())
	assert.Equal(t, 34.7, cands[1].Point.Lat)

	require.NotNil(t, cands[2].Rejected)
	assert.Equal(t, ReasonMissingGeometry, cands[2].Rejected.Reason)
	assert.Equal(t, 2, cands[2].Rejected.Index)

	require.NotNil(t, cands[3].Rejected)
	assert.Equal(t, ReasonNotPoint, cands[3].Rejected.Reason)

	require.NotNil(t, cands[4].Rejected)
	assert.Equal(t, ReasonInvalidCoordinate, cands[4].Rejected.Reason)

	require.True(t, cands[5].Accepted())
	assert.Equal(t, GeoPoint{Name: "7", Lat: 2, Lon: 1}, cands[5].Point)

	require.NotNil(t, cands[6].Rejected)
	assert.Equal(t, ReasonMalformedFeature, cands[6].Rejected.Reason)
}

func TestReadGeoJSONSingleFeature(t *testing.T) {
	cands, err := ReadGeoJSON([]byte(`{"type":"Feature","properties":{"name":"A"},"geometry":{"type":"Point","coordinates":[1,2]}}`))
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, GeoPoint{Name: "A", Lat: 2, Lon: 1}, cands[0].Point)
}

func TestReadGeoJSONDocumentErrors(t *testing.T) {
	_, err := ReadGeoJSON([]byte(`{not json`))
	assert.Error(t, err)

	_, err = ReadGeoJSON([]byte(`{"type":"Point","coordinates":[1,2]}`))
	assert.Error(t, err)
}

func TestReadGeoJSONEmptyCollection(t *testing.T) {
	cands, err := ReadGeoJSON([]byte(`{"type":"FeatureCollection","features":[]}`))
	require.NoError(t, err)
	assert.Empty(t, cands)
}

func TestEncodeGeoJSONRoundTrip(t *testing.T) {
	c := Build([]GeoPoint{{Name: "Tokyo", Lat: 35.6, Lon: 139.7}, {Lat: 34.7, Lon: 135.5}})
	b, err := EncodeGeoJSON(c)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"FeatureCollection"`)

	cands, err := ReadGeoJSON(b)
	require.NoError(t, err)
	pts, rej := Split(cands)
	assert.Empty(t, rej)
	assert.Equal(t, c.Points, pts)
}
