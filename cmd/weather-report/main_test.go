package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-report/internal/weather"
)

func TestPrintReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,min,max\n"+
		"2021-07-05T07:00:00+00:00,59,79\n"+
		"2021-07-06T07:00:00+00:00,52.5,78.3\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, printReport(&out, path))

	assert.Equal(t, "2 Day Overview\n"+
		"  The lowest temperature will be 11.4°C, and will occur on Tuesday 06 July 2021.\n"+
		"  The highest temperature will be 26.1°C, and will occur on Monday 05 July 2021.\n"+
		"  The average low this week is 13.2°C.\n"+
		"  The average high this week is 25.9°C.\n"+
		"---- Monday 05 July 2021 ----\n"+
		"  Minimum Temperature: 15.0°C\n"+
		"  Maximum Temperature: 26.1°C\n\n"+
		"---- Tuesday 06 July 2021 ----\n"+
		"  Minimum Temperature: 11.4°C\n"+
		"  Maximum Temperature: 25.7°C\n\n", out.String())
}

func TestPrintReportErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.csv")
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(bad, []byte("date,min,max\n2021-07-05T07:00:00+00:00,x,79\n"), 0o644))
	require.NoError(t, os.WriteFile(empty, []byte("date,min,max\n"), 0o644))

	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.csv"), want: weather.ErrNotFound},
		{name: "malformed row", path: bad, want: weather.ErrParse},
		{name: "no records", path: empty, want: weather.ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := printReport(&out, tt.path)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, out.String())
		})
	}
}
