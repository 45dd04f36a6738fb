package weather

import (
	"context"
	"time"
)

// Source abstracts where a dataset comes from (local file, remote URL).
type Source interface {
	Name() string
	Load(ctx context.Context) (Dataset, error)
}

// Store is the contract the in-memory store (and any future persistent store) must satisfy.
type Store interface {
	SaveReport(report Report)
	GetLatest(source string) (Report, error)
	GetRange(source string, from, to time.Time) ([]Report, error)
}
