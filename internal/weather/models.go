package weather

import (
	"time"
)

// Record is a single day's observation as read from a dataset.
// Temperatures are in Fahrenheit; Date is kept as the raw ISO-8601 string.
type Record struct {
	Date     string  `json:"date"`
	MinTempF float64 `json:"minTempF"`
	MaxTempF float64 `json:"maxTempF"`
}

// Dataset is an ordered sequence of records in source order.
// Positions are significant: FindMin/FindMax indexes refer back into it.
type Dataset []Record

// MinTemps returns the minimum temperature column, preserving record order.
func (d Dataset) MinTemps() []float64 {
	out := make([]float64, len(d))
	for i, r := range d {
		out[i] = r.MinTempF
	}
	return out
}

// MaxTemps returns the maximum temperature column, preserving record order.
func (d Dataset) MaxTemps() []float64 {
	out := make([]float64, len(d))
	for i, r := range d {
		out[i] = r.MaxTempF
	}
	return out
}

// SourceSpec names a dataset location. Location is either a file path
// or an http(s) URL.
type SourceSpec struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// Key returns the canonical key used to index this source in stores.
func (s SourceSpec) Key() string {
	return s.Name
}

// Report is a generated pair of summaries for one load of a source.
type Report struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generatedAt"` // always UTC
	Days        int       `json:"days"`
	Overview    string    `json:"overview,omitempty"`
	Daily       string    `json:"daily,omitempty"`
}
