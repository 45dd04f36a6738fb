package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-report/internal/store"
	"github.com/i474232898/weather-report/internal/weather"
)

var validate = validator.New()

// reportMeta is the JSON view of a stored report, without the text bodies.
type reportMeta struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generatedAt"`
	Days        int       `json:"days"`
}

func toMeta(r weather.Report) reportMeta {
	return reportMeta{
		ID:          r.ID,
		Source:      r.Source,
		GeneratedAt: r.GeneratedAt,
		Days:        r.Days,
	}
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/sources", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"sources": service.Sources(),
		})
	})

	v1.Get("/reports/overview", func(c *fiber.Ctx) error {
		report, err := latestReport(c, service)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(report.Overview)
	})

	v1.Get("/reports/daily", func(c *fiber.Ctx) error {
		report, err := latestReport(c, service)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(report.Daily)
	})

	v1.Get("/reports/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		reports, err := service.GetRange(req.Source.Name, req.From, req.To)
		if err != nil {
			return mapError(err)
		}

		metas := make([]reportMeta, 0, len(reports))
		for _, r := range reports {
			metas = append(metas, toMeta(r))
		}

		return c.JSON(fiber.Map{
			"source":  req.Source.Name,
			"from":    req.From,
			"to":      req.To,
			"reports": metas,
		})
	})

	v1.Post("/reports/refresh", func(c *fiber.Ctx) error {
		q, err := parseSourceQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		report, err := service.Refresh(c.UserContext(), q.Name)
		if err != nil {
			return mapError(err)
		}

		return c.Status(fiber.StatusCreated).JSON(toMeta(report))
	})
}

func latestReport(c *fiber.Ctx, service *weather.Service) (weather.Report, error) {
	q, err := parseSourceQuery(c)
	if err != nil {
		return weather.Report{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	report, err := service.GetLatest(q.Name)
	if err != nil {
		return weather.Report{}, mapError(err)
	}
	return report, nil
}

// mapError translates service errors into HTTP errors.
func mapError(err error) error {
	switch {
	case errors.Is(err, weather.ErrUnknownSource):
		return fiber.NewError(fiber.StatusNotFound, "unknown source")
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "no report available for requested source")
	case errors.Is(err, weather.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "dataset could not be read")
	case errors.Is(err, weather.ErrParse), errors.Is(err, weather.ErrEmptyInput):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, weather.ErrUnavailable):
		return fiber.NewError(fiber.StatusBadGateway, "upstream source unavailable")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to process report")
	}
}

// sourceQuery holds query parameters for identifying a source.
type sourceQuery struct {
	Name string `validate:"required"`
}

func parseSourceQuery(c *fiber.Ctx) (sourceQuery, error) {
	var q sourceQuery

	q.Name = c.Query("source")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// historyQuery holds query parameters for the history endpoint.
// from and to default to the last 24 hours.
type historyQuery struct {
	Source sourceQuery
	From   time.Time `validate:"required"`
	To     time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	src, err := parseSourceQuery(c)
	if err != nil {
		return err
	}
	h.Source = src

	now := time.Now().UTC()
	h.From = now.Add(-24 * time.Hour)
	h.To = now

	if s := c.Query("from"); s != "" {
		if h.From, err = parseTime(s); err != nil {
			return err
		}
	}
	if s := c.Query("to"); s != "" {
		if h.To, err = parseTime(s); err != nil {
			return err
		}
	}
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
