package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Folder>
      <Placemark><name>Tokyo</name><Point><coordinates>139.7,35.6,0</coordinates></Point></Placemark>
      <Placemark><name>DMS</name><Point><coordinates> 1231508.36E,242621.02N </coordinates></Point></Placemark>
    </Folder>
    <Placemark><name>Area</name><Polygon/></Placemark>
    <Placemark><name>Bad</name><Point><coordinates>139.7</coordinates></Point></Placemark>
    <Placemark><Point><coordinates>200,10</coordinates></Point></Placemark>
  </Document>
</kml>`

func TestReadKML(t *testing.T) {
	cands, err := ReadKML([]byte(sampleKML))
	require.NoError(t, err)
	require.Len(t, cands, 5)

	assert.Equal(t, GeoPoint{Name: "Tokyo", Lat: 35.6, Lon: 139.7}, cands[0].Point)

	require.True(t, cands[1].Accepted())
	assert.InDelta(t, 24.4391722, cands[1].Point.Lat, 1e-6)
	assert.InDelta(t, 123.2523222, cands[1].Point.Lon, 1e-6)

	require.NotNil(t, cands[2].Rejected)
	assert.Equal(t, ReasonMissingGeometry, cands[2].Rejected.Reason)

	require.NotNil(t, cands[3].Rejected)
	assert.Equal(t, ReasonMissingGeometry, cands[3].Rejected.Reason)

	require.NotNil(t, cands[4].Rejected)
	assert.Equal(t, ReasonInvalidCoordinate, cands[4].Rejected.Reason)
	assert.Equal(t, 4, cands[4].Rejected.Index)
}

func TestReadKMLMalformed(t *testing.T) {
	_, err := ReadKML([]byte(`<kml><Placemark><name>x</Placemark>`))
	assert.Error(t, err)
}
