package weather

import (
	"time"

	"github.com/google/uuid"
)

// BuildReport generates both summaries for ds and wraps them in a Report
// attributed to source. It fails if either summary cannot be generated.
func BuildReport(source string, ds Dataset) (Report, error) {
	overview, err := GenerateOverview(ds)
	if err != nil {
		return Report{}, err
	}

	daily, err := GenerateDaily(ds)
	if err != nil {
		return Report{}, err
	}

	return Report{
		ID:          uuid.NewString(),
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Days:        len(ds),
		Overview:    overview,
		Daily:       daily,
	}, nil
}
