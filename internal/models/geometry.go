package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// GeoJSONPolygon represents a GeoJSON Polygon used for the mission survey area.
// Stored in PostGIS as GEOMETRY(Polygon, 4326).
type GeoJSONPolygon struct {
	Type        string        `json:"type" binding:"omitempty,eq=Polygon"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// Value implements driver.Valuer. Converts GeoJSON to an EWKT string
// ("SRID=4326;POLYGON((...))") that PostGIS parses on insert.
func (g *GeoJSONPolygon) Value() (driver.Value, error) {
	if g == nil || g.Type == "" {
		return nil, nil
	}

	geoJSONBytes, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GeoJSON: %w", err)
	}

	var geometry geom.T
	if err := geojson.Unmarshal(geoJSONBytes, &geometry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GeoJSON: %w", err)
	}

	polygon, ok := geometry.(*geom.Polygon)
	if !ok {
		return nil, fmt.Errorf("geometry is not a Polygon")
	}

	polygon.SetSRID(4326)

	wktString, err := wkt.Marshal(polygon)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to WKT: %w", err)
	}

	return fmt.Sprintf("SRID=%d;%s", polygon.SRID(), wktString), nil
}

// Scan implements sql.Scanner. Expects EWKB bytes (ST_AsEWKB on select).
func (g *GeoJSONPolygon) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan GeoJSONPolygon: expected []byte, got %T", value)
	}

	geometry, err := ewkb.Unmarshal(bytes)
	if err != nil {
		return fmt.Errorf("failed to unmarshal EWKB: %w", err)
	}

	polygon, ok := geometry.(*geom.Polygon)
	if !ok {
		return fmt.Errorf("scanned geometry is not a Polygon")
	}

	geoJSONBytes, err := geojson.Marshal(polygon)
	if err != nil {
		return fmt.Errorf("failed to marshal to GeoJSON: %w", err)
	}

	return json.Unmarshal(geoJSONBytes, g)
}

// GeoJSONLineString represents a GeoJSON LineString used for the planned
// flight path. Stored in PostGIS as GEOMETRY(LineString, 4326).
type GeoJSONLineString struct {
	Type        string      `json:"type" binding:"omitempty,eq=LineString"`
	Coordinates [][]float64 `json:"coordinates"`
}

// Value implements driver.Valuer. Same EWKT flow as GeoJSONPolygon.
func (g *GeoJSONLineString) Value() (driver.Value, error) {
	if g == nil || g.Type == "" {
		return nil, nil
	}

	geoJSONBytes, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GeoJSON: %w", err)
	}

	var geometry geom.T
	if err := geojson.Unmarshal(geoJSONBytes, &geometry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GeoJSON: %w", err)
	}

	line, ok := geometry.(*geom.LineString)
	if !ok {
		return nil, fmt.Errorf("geometry is not a LineString")
	}

	line.SetSRID(4326)

	wktString, err := wkt.Marshal(line)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to WKT: %w", err)
	}

	return fmt.Sprintf("SRID=%d;%s", line.SRID(), wktString), nil
}

// Scan implements sql.Scanner. Expects EWKB bytes (ST_AsEWKB on select).
func (g *GeoJSONLineString) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan GeoJSONLineString: expected []byte, got %T", value)
	}

	geometry, err := ewkb.Unmarshal(bytes)
	if err != nil {
		return fmt.Errorf("failed to unmarshal EWKB: %w", err)
	}

	line, ok := geometry.(*geom.LineString)
	if !ok {
		return fmt.Errorf("scanned geometry is not a LineString")
	}

	geoJSONBytes, err := geojson.Marshal(line)
	if err != nil {
		return fmt.Errorf("failed to marshal to GeoJSON: %w", err)
	}

	return json.Unmarshal(geoJSONBytes, g)
}
