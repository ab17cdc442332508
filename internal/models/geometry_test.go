package models

import (
	"encoding/binary"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
)

func TestGeoJSONPolygon_Value(t *testing.T) {
	polygon := &GeoJSONPolygon{
		Type:        "Polygon",
		Coordinates: [][][]float64{{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}},
	}

	value, err := polygon.Value()
	assert.NoError(t, err)

	ewkt, ok := value.(string)
	if assert.True(t, ok, "Value must produce an EWKT string") {
		assert.True(t, strings.HasPrefix(ewkt, "SRID=4326;POLYGON"), "got %q", ewkt)
	}
}

func TestGeoJSONPolygon_Value_Empty(t *testing.T) {
	var nilPolygon *GeoJSONPolygon
	value, err := nilPolygon.Value()
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = (&GeoJSONPolygon{}).Value()
	assert.NoError(t, err)
	assert.Nil(t, value)
}

func TestGeoJSONPolygon_Scan(t *testing.T) {
	source := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
	}).SetSRID(4326)

	raw, err := ewkb.Marshal(source, binary.LittleEndian)
	assert.NoError(t, err)

	var polygon GeoJSONPolygon
	assert.NoError(t, polygon.Scan(raw))

	assert.Equal(t, "Polygon", polygon.Type)
	if assert.Len(t, polygon.Coordinates, 1) {
		assert.Equal(t, [][]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}, polygon.Coordinates[0])
	}
}

func TestGeoJSONPolygon_Scan_Nil(t *testing.T) {
	var polygon GeoJSONPolygon
	assert.NoError(t, polygon.Scan(nil))
	assert.Empty(t, polygon.Type)
}

func TestGeoJSONLineString_Value(t *testing.T) {
	line := &GeoJSONLineString{
		Type:        "LineString",
		Coordinates: [][]float64{{0, 0}, {1, 2}, {3, 4}},
	}

	value, err := line.Value()
	assert.NoError(t, err)

	ewkt, ok := value.(string)
	if assert.True(t, ok, "Value must produce an EWKT string") {
		assert.True(t, strings.HasPrefix(ewkt, "SRID=4326;LINESTRING"), "got %q", ewkt)
	}
}

func TestGeoJSONLineString_Scan(t *testing.T) {
	source := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{
		{0, 0}, {1, 2}, {3, 4},
	}).SetSRID(4326)

	raw, err := ewkb.Marshal(source, binary.LittleEndian)
	assert.NoError(t, err)

	var line GeoJSONLineString
	assert.NoError(t, line.Scan(raw))

	assert.Equal(t, "LineString", line.Type)
	assert.Equal(t, [][]float64{{0, 0}, {1, 2}, {3, 4}}, line.Coordinates)
}

func TestGeoJSONLineString_Scan_WrongGeometry(t *testing.T) {
	source := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{
		{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
	}).SetSRID(4326)

	raw, err := ewkb.Marshal(source, binary.LittleEndian)
	assert.NoError(t, err)

	var line GeoJSONLineString
	assert.Error(t, line.Scan(raw))
}

func TestMission_Duration(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Second)
	mission := Mission{StartTime: &start, EndTime: &end}

	if d := mission.Duration(); assert.NotNil(t, d) {
		assert.Equal(t, 1.5, *d, "duration is fractional minutes, unrounded")
	}
}

func TestMission_Duration_MissingBounds(t *testing.T) {
	now := time.Now()

	assert.Nil(t, (&Mission{}).Duration())
	assert.Nil(t, (&Mission{StartTime: &now}).Duration())
	assert.Nil(t, (&Mission{EndTime: &now}).Duration())
}
