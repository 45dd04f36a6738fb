package sources

import (
	"net/http"
	"strings"

	"github.com/i474232898/weather-report/internal/common"
	"github.com/i474232898/weather-report/internal/weather"
)

// New picks a Source implementation for spec based on its location:
// http(s) URLs are fetched remotely, anything else is read from disk.
func New(spec weather.SourceSpec, client *http.Client) weather.Source {
	if common.HasAnyPrefix(strings.ToLower(spec.Location), "http://", "https://") {
		return NewRemoteSource(spec.Name, spec.Location, client)
	}
	return NewFileSource(spec.Name, spec.Location)
}

// NewAll builds one Source per spec, sharing client across remote sources.
func NewAll(specs []weather.SourceSpec, client *http.Client) []weather.Source {
	srcs := make([]weather.Source, 0, len(specs))
	for _, spec := range specs {
		srcs = append(srcs, New(spec, client))
	}
	return srcs
}
