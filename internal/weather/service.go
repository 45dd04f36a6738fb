package weather

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"
)

// Service orchestrates loading datasets from sources and persisting generated reports.
type Service struct {
	store   Store
	sources map[string]Source
}

// NewService creates a new Service. Sources are indexed by Name; a later
// source with the same name replaces an earlier one.
func NewService(store Store, sources []Source) *Service {
	byName := make(map[string]Source, len(sources))
	for _, src := range sources {
		byName[src.Name()] = src
	}
	return &Service{
		store:   store,
		sources: byName,
	}
}

// Sources returns the configured source names in sorted order.
func (s *Service) Sources() []string {
	names := make([]string, 0, len(s.sources))
	for name := range s.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Refresh loads the named source, generates its summaries and stores the report.
// A failed load leaves the last good report in place.
func (s *Service) Refresh(ctx context.Context, name string) (Report, error) {
	src, ok := s.sources[name]
	if !ok {
		return Report{}, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}

	log.Printf("DEBUG: Refresh called for %s", name)

	ds, err := src.Load(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load %s: %w", name, err)
	}

	report, err := BuildReport(name, ds)
	if err != nil {
		return Report{}, fmt.Errorf("report %s: %w", name, err)
	}

	s.store.SaveReport(report)
	return report, nil
}

// RefreshAll refreshes every configured source concurrently. Failures are
// logged per source; the returned count is the number of sources refreshed.
func (s *Service) RefreshAll(ctx context.Context) int {
	if len(s.sources) == 0 {
		log.Printf("ERROR: No sources configured; nothing to refresh")
		return 0
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)

	for name := range s.sources {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			if _, err := s.Refresh(ctx, name); err != nil {
				// Log and continue; one broken dataset must not block the rest.
				log.Printf("ERROR: source %s refresh failed: %v", name, err)
				return
			}

			mu.Lock()
			ok++
			mu.Unlock()
		}(name)
	}

	wg.Wait()
	return ok
}

// GetLatest returns the most recent report for a source.
func (s *Service) GetLatest(name string) (Report, error) {
	if _, ok := s.sources[name]; !ok {
		return Report{}, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
	return s.store.GetLatest(name)
}

// GetRange delegates to the underlying store.
func (s *Service) GetRange(name string, from, to time.Time) ([]Report, error) {
	if _, ok := s.sources[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
	return s.store.GetRange(name, from, to)
}
