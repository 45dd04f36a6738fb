package sources

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-report/internal/weather"
)

// RemoteSource implements weather.Source for a CSV dataset served over HTTP(S).
type RemoteSource struct {
	name    string
	url     string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewRemoteSource(name, url string, client *http.Client) *RemoteSource {
	return &RemoteSource{
		name: name,
		url:  url,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: newCircuitBreaker("remote:" + name),
	}
}

func (s *RemoteSource) Name() string {
	return s.name
}

func (s *RemoteSource) Load(ctx context.Context) (weather.Dataset, error) {
	buildRequest := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, s.url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")
		return req, nil
	}

	resp, err := doRequestWithResilience(ctx, s.httpCfg, s.circuit, buildRequest)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.name, err)
	}
	defer resp.Body.Close()

	return weather.ParseCSV(resp.Body)
}
