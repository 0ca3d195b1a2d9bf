package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordUnmarshalFlat(t *testing.T) {
	data := []byte(`{
		"name": "Rise & Shine",
		"category": "Bakery",
		"city": "Bowie",
		"address_line_1": "123 Main St",
		"owner": "R&S LLC",
		"inspection_date": "2024-03-15T00:00:00.000",
		"inspection_results": "Compliant - No Health Risk",
		"geocoded_location": {"type": "Point", "coordinates": [-76.78, 38.95]}
	}`)

	var r Record
	require.NoError(t, json.Unmarshal(data, &r))

	assert.Equal(t, "Rise & Shine", r.Name)
	assert.Equal(t, "Bakery", r.Category)
	assert.Equal(t, "Bowie", r.City)
	assert.Equal(t, "123 Main St", r.AddressLine1)
	assert.Equal(t, "R&S LLC", r.Owner)
	require.NotNil(t, r.Geocoded)
	assert.Equal(t, -76.78, r.Geocoded.Longitude())
	assert.Equal(t, 38.95, r.Geocoded.Latitude())
}

func TestRecordUnmarshalFeature(t *testing.T) {
	data := []byte(`{
		"type": "Feature",
		"properties": {
			"name": "Taco Villa",
			"category": "Restaurant",
			"inspection_results": "Violations Issued"
		}
	}`)

	var r Record
	require.NoError(t, json.Unmarshal(data, &r))

	assert.Equal(t, "Taco Villa", r.Name)
	assert.Equal(t, "Restaurant", r.Category)
	assert.Equal(t, "Violations Issued", r.InspectionResults)
}

func TestRecordUnmarshalLegacyGeocodedColumn(t *testing.T) {
	data := []byte(`{
		"name": "Night Owl",
		"geocoded_column_1": {"type": "Point", "coordinates": [-76.9, 39.0]}
	}`)

	var r Record
	require.NoError(t, json.Unmarshal(data, &r))

	require.NotNil(t, r.Geocoded)
	assert.Equal(t, -76.9, r.Geocoded.Longitude())
}

func TestRecordSliceDecodesMixedShapes(t *testing.T) {
	data := []byte(`[
		{"name": "Flat"},
		{"properties": {"name": "Wrapped"}}
	]`)

	var records []Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Flat", records[0].Name)
	assert.Equal(t, "Wrapped", records[1].Name)
}

func TestFieldValue(t *testing.T) {
	r := Record{Name: "Crusty's", Category: "Bakery", City: "Laurel"}

	tests := []struct {
		field string
		want  string
	}{
		{"name", "Crusty's"},
		{"category", "Bakery"},
		{"city", "Laurel"},
		{"owner", GroupPlaceholder},
		{"address_line_1", GroupPlaceholder},
		{"not_a_field", GroupPlaceholder},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.FieldValue(tt.field), "field %q", tt.field)
	}
}

func TestDisplayAccessors(t *testing.T) {
	empty := Record{}
	assert.Equal(t, DisplayPlaceholder, empty.DisplayName())
	assert.Equal(t, DisplayPlaceholder, empty.DisplayCategory())
	assert.Equal(t, DisplayPlaceholder, empty.DisplayAddress())
	assert.Equal(t, DisplayPlaceholder, empty.DisplayOwner())
	assert.Equal(t, DisplayPlaceholder, empty.DisplayResults())
	assert.Equal(t, DisplayPlaceholder, empty.DisplayDate())

	r := Record{InspectionDate: "2024-03-15T00:00:00.000"}
	assert.Equal(t, "2024-03-15", r.DisplayDate())

	r = Record{InspectionDate: "2024-03-15"}
	assert.Equal(t, "2024-03-15", r.DisplayDate())
}

func TestMapURL(t *testing.T) {
	assert.Empty(t, Record{}.MapURL())

	r := Record{Geocoded: &GeoPoint{Coordinates: [2]float64{-76.78, 38.95}}}
	// Maps wants latitude first; the dataset stores longitude first.
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=38.95,-76.78", r.MapURL())
}
