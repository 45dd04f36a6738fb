package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-report/internal/weather"
)

const sampleCSV = "date,min,max\n" +
	"2021-07-05T07:00:00+00:00,59,79\n" +
	"2021-07-06T07:00:00+00:00,52.5,78.3\n"

func fastRemote(name, url string) *RemoteSource {
	s := NewRemoteSource(name, url, &http.Client{Timeout: time.Second})
	s.httpCfg.Backoff = BackoffConfig{
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
	}
	return s
}

func TestNewPicksImplementation(t *testing.T) {
	remote := New(weather.SourceSpec{Name: "r", Location: "HTTPS://example.com/w.csv"}, http.DefaultClient)
	assert.IsType(t, &RemoteSource{}, remote)
	assert.Equal(t, "r", remote.Name())

	local := New(weather.SourceSpec{Name: "l", Location: "data/w.csv"}, http.DefaultClient)
	assert.IsType(t, &FileSource{}, local)

	all := NewAll([]weather.SourceSpec{
		{Name: "a", Location: "a.csv"},
		{Name: "b", Location: "http://example.com/b.csv"},
	}, http.DefaultClient)
	assert.Len(t, all, 2)
}

func TestFileSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	ds, err := NewFileSource("home", path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds, 2)
}

func TestFileSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("home", "unused.csv").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemoteSourceRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	ds, err := fastRemote("remote", srv.URL+"/weather.csv").Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds, 2)
	assert.EqualValues(t, 2, hits.Load())
}

func TestRemoteSourceNotFound(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := fastRemote("remote", srv.URL).Load(context.Background())
	assert.ErrorIs(t, err, weather.ErrNotFound)
	assert.NotErrorIs(t, err, weather.ErrUnavailable)
	assert.EqualValues(t, 1, hits.Load())
}

func TestRemoteSourceMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("date,min,max\n2021-07-05T07:00:00+00:00,warm,79\n"))
	}))
	defer srv.Close()

	_, err := fastRemote("remote", srv.URL).Load(context.Background())
	assert.ErrorIs(t, err, weather.ErrParse)
}

func TestRemoteSourceGivesUp(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := fastRemote("remote", srv.URL).Load(context.Background())
	assert.ErrorIs(t, err, weather.ErrUnavailable)
	assert.ErrorIs(t, err, errServerError)
	assert.EqualValues(t, 3, hits.Load())
}

func TestRemoteSourceClientErrorNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := fastRemote("remote", srv.URL).Load(context.Background())
	assert.ErrorIs(t, err, weather.ErrUnavailable)
	assert.ErrorIs(t, err, errUnexpected)
	assert.EqualValues(t, 1, hits.Load())
}

func TestRemoteSourceCircuitOpens(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	src := fastRemote("remote", srv.URL)
	for i := 0; i < 2; i++ {
		_, err := src.Load(context.Background())
		require.ErrorIs(t, err, errServerError)
	}

	// six consecutive failures trip the breaker; the next load never reaches the server
	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, weather.ErrUnavailable)
	assert.ErrorIs(t, err, errCircuitOpen)
	assert.EqualValues(t, 6, hits.Load())
}
