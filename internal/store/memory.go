package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/weather-report/internal/weather"
)

var (
	// ErrNotFound is returned when no report is available for a given source.
	ErrNotFound = errors.New("no report for source")
)

// ReportHistory holds a time-ordered list of reports for a source.
type ReportHistory struct {
	Reports []weather.Report
}

// MemoryStore is a concurrency-safe in-memory implementation of a report store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: source name, value: history
	data map[string]*ReportHistory

	// retention configuration
	maxHistory int           // max number of reports per source
	maxAge     time.Duration // optional max age for reports
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*ReportHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// SaveReport appends a new report for its source and enforces retention.
func (s *MemoryStore) SaveReport(report weather.Report) {
	key := report.Source

	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[key]
	if !ok {
		history = &ReportHistory{}
		s.data[key] = history
	}

	history.Reports = append(history.Reports, report)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.Reports) > s.maxHistory {
		over := len(history.Reports) - s.maxHistory
		history.Reports = history.Reports[over:]
	}

	// Enforce retention by age. The newest report is always kept.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.Reports)-1; i++ {
			if !history.Reports[i].GeneratedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 {
			history.Reports = history.Reports[i:]
		}
	}
}

// GetLatest returns the most recent report for a source.
func (s *MemoryStore) GetLatest(source string) (weather.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[source]
	if !ok || len(history.Reports) == 0 {
		return weather.Report{}, ErrNotFound
	}
	return history.Reports[len(history.Reports)-1], nil
}

// GetRange returns all reports for a source generated between from and to (inclusive).
func (s *MemoryStore) GetRange(source string, from, to time.Time) ([]weather.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[source]
	if !ok || len(history.Reports) == 0 {
		return nil, ErrNotFound
	}

	var result []weather.Report
	for _, r := range history.Reports {
		if !r.GeneratedAt.Before(from) && !r.GeneratedAt.After(to) {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
