package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-report/internal/weather"
)

func report(id, source string, at time.Time) weather.Report {
	return weather.Report{ID: id, Source: source, GeneratedAt: at, Days: 1}
}

func TestMemoryStoreLatest(t *testing.T) {
	s := NewMemoryStore(0, 0)
	now := time.Now().UTC()

	_, err := s.GetLatest("home")
	assert.ErrorIs(t, err, ErrNotFound)

	s.SaveReport(report("1", "home", now.Add(-time.Minute)))
	s.SaveReport(report("2", "home", now))
	s.SaveReport(report("x", "away", now))

	got, err := s.GetLatest("home")
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)
}

func TestMemoryStoreMaxHistory(t *testing.T) {
	s := NewMemoryStore(2, 0)
	now := time.Now().UTC()

	for i, id := range []string{"1", "2", "3"} {
		s.SaveReport(report(id, "home", now.Add(time.Duration(i)*time.Second)))
	}

	all, err := s.GetRange("home", now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2", all[0].ID)
	assert.Equal(t, "3", all[1].ID)
}

func TestMemoryStoreMaxAge(t *testing.T) {
	s := NewMemoryStore(0, time.Hour)
	now := time.Now().UTC()

	s.SaveReport(report("old", "home", now.Add(-3*time.Hour)))
	s.SaveReport(report("older-but-kept", "home", now.Add(-30*time.Minute)))
	s.SaveReport(report("new", "home", now))

	all, err := s.GetRange("home", now.Add(-24*time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "older-but-kept", all[0].ID)
}

func TestMemoryStoreMaxAgeKeepsNewest(t *testing.T) {
	s := NewMemoryStore(0, time.Minute)
	stale := time.Now().UTC().Add(-time.Hour)

	s.SaveReport(report("stale", "home", stale))

	got, err := s.GetLatest("home")
	require.NoError(t, err)
	assert.Equal(t, "stale", got.ID)
}

func TestMemoryStoreGetRangeEmptyWindow(t *testing.T) {
	s := NewMemoryStore(0, 0)
	now := time.Now().UTC()
	s.SaveReport(report("1", "home", now))

	_, err := s.GetRange("home", now.Add(time.Hour), now.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrNotFound)
}
