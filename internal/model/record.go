package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record represents a single restaurant health inspection result from the
// open-data endpoint. Records are immutable after fetch.
type Record struct {
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	City              string    `json:"city"`
	AddressLine1      string    `json:"address_line_1"`
	Owner             string    `json:"owner"`
	InspectionDate    string    `json:"inspection_date"`
	InspectionResults string    `json:"inspection_results"`
	Geocoded          *GeoPoint `json:"geocoded_location,omitempty"`
}

// GeoPoint is a GeoJSON-style point. Coordinates are (longitude, latitude),
// in that order.
type GeoPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Longitude returns the first coordinate.
func (p GeoPoint) Longitude() float64 { return p.Coordinates[0] }

// Latitude returns the second coordinate.
func (p GeoPoint) Latitude() float64 { return p.Coordinates[1] }

// recordFields mirrors Record for wire decoding. The dataset has shipped the
// geocoded point under two different column names over time, so both are
// accepted.
type recordFields struct {
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	City              string    `json:"city"`
	AddressLine1      string    `json:"address_line_1"`
	Owner             string    `json:"owner"`
	InspectionDate    string    `json:"inspection_date"`
	InspectionResults string    `json:"inspection_results"`
	Geocoded          *GeoPoint `json:"geocoded_location"`
	GeocodedColumn    *GeoPoint `json:"geocoded_column_1"`
}

// UnmarshalJSON decodes a record that is either a flat object or a
// GeoJSON-style feature wrapping the same fields under "properties". This is
// the only place the wrapping is unwrapped; everything downstream reads
// Record fields directly.
func (r *Record) UnmarshalJSON(data []byte) error {
	var envelope struct {
		recordFields
		Properties *recordFields `json:"properties"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	fields := envelope.recordFields
	if envelope.Properties != nil {
		fields = *envelope.Properties
	}

	*r = Record{
		Name:              fields.Name,
		Category:          fields.Category,
		City:              fields.City,
		AddressLine1:      fields.AddressLine1,
		Owner:             fields.Owner,
		InspectionDate:    fields.InspectionDate,
		InspectionResults: fields.InspectionResults,
		Geocoded:          fields.Geocoded,
	}
	if r.Geocoded == nil {
		r.Geocoded = fields.GeocodedColumn
	}
	return nil
}

// Placeholder values for absent fields. Display reads degrade to "N/A";
// grouping reads degrade to "Unknown". A missing field is never an error.
const (
	DisplayPlaceholder = "N/A"
	GroupPlaceholder   = "Unknown"
)

// FieldValue resolves a grouping field by name, returning GroupPlaceholder
// when the field is absent, empty, or not a known field name.
func (r Record) FieldValue(name string) string {
	var v string
	switch name {
	case "name":
		v = r.Name
	case "category":
		v = r.Category
	case "city":
		v = r.City
	case "address_line_1":
		v = r.AddressLine1
	case "owner":
		v = r.Owner
	case "inspection_date":
		v = r.InspectionDate
	case "inspection_results":
		v = r.InspectionResults
	}
	if v == "" {
		return GroupPlaceholder
	}
	return v
}

// DisplayName returns the restaurant name for display.
func (r Record) DisplayName() string { return display(r.Name) }

// DisplayCategory returns the business category for display.
func (r Record) DisplayCategory() string { return display(r.Category) }

// DisplayCity returns the municipality for display.
func (r Record) DisplayCity() string { return display(r.City) }

// DisplayAddress returns the street address for display.
func (r Record) DisplayAddress() string { return display(r.AddressLine1) }

// DisplayOwner returns the owner for display.
func (r Record) DisplayOwner() string { return display(r.Owner) }

// DisplayResults returns the free-text inspection result for display.
func (r Record) DisplayResults() string { return display(r.InspectionResults) }

// DisplayDate returns the date part of the ISO-8601 inspection timestamp.
func (r Record) DisplayDate() string {
	if r.InspectionDate == "" {
		return DisplayPlaceholder
	}
	date, _, _ := strings.Cut(r.InspectionDate, "T")
	return date
}

// MapURL returns a Google Maps link for the record's geocoded location, or
// an empty string when no location is available.
func (r Record) MapURL() string {
	if r.Geocoded == nil {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v",
		r.Geocoded.Latitude(), r.Geocoded.Longitude())
}

func display(v string) string {
	if v == "" {
		return DisplayPlaceholder
	}
	return v
}
