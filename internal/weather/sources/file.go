package sources

import (
	"context"

	"github.com/i474232898/weather-report/internal/weather"
)

// FileSource implements weather.Source for a CSV file on local disk.
type FileSource struct {
	name string
	path string
}

func NewFileSource(name, path string) *FileSource {
	return &FileSource{name: name, path: path}
}

func (s *FileSource) Name() string {
	return s.name
}

// Load reads the whole file on every call. The read itself is not cancellable;
// ctx is only checked before opening.
func (s *FileSource) Load(ctx context.Context) (weather.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return weather.LoadFile(s.path)
}
