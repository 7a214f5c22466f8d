package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/proxy"
	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/view"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

// Backgrounds is the background-image pair resolved once at startup.
type Backgrounds struct {
	Normal string
	Dark   string
}

// Deps bundles what the route handlers need.
type Deps struct {
	Service     *weather.Service
	Prefs       *store.Prefs
	Proxy       *proxy.Proxy
	Backgrounds Backgrounds
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, deps Deps) {
	app.Get("/api/proxy", deps.Proxy.FiberHandler())

	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		req, err := parseDashboardQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var res *weather.Result
		if req.City != "" {
			res, err = deps.Service.SearchCity(c.UserContext(), req.City)
		} else {
			res, err = deps.Service.SearchCoords(c.UserContext(), *req.Lat, *req.Lon)
		}
		if err != nil {
			return searchError(err)
		}

		return c.JSON(view.BuildDashboard(res, time.Now()))
	})

	v1.Get("/prefs", func(c *fiber.Ctx) error {
		lastCity, err := deps.Prefs.LastCity()
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read preferences")
		}

		dark := deps.Prefs.DarkMode()
		return c.JSON(fiber.Map{
			"lastCity":   lastCity,
			"darkMode":   dark,
			"background": deps.Backgrounds.pick(dark),
		})
	})

	v1.Put("/prefs/darkmode", func(c *fiber.Ctx) error {
		var body struct {
			Enabled bool `json:"enabled"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		deps.Prefs.SetDarkMode(body.Enabled)
		return c.JSON(fiber.Map{
			"darkMode":   body.Enabled,
			"background": deps.Backgrounds.pick(body.Enabled),
		})
	})

	v1.Delete("/prefs/city", func(c *fiber.Ctx) error {
		deps.Prefs.ClearLastCity()
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func (b Backgrounds) pick(dark bool) string {
	if dark {
		return b.Dark
	}
	return b.Normal
}

// dashboardQuery accepts either a city name or a coordinate pair, never both.
type dashboardQuery struct {
	City string
	Lat  *float64 `validate:"omitempty,gte=-90,lte=90"`
	Lon  *float64 `validate:"omitempty,gte=-180,lte=180"`
}

func parseDashboardQuery(c *fiber.Ctx) (dashboardQuery, error) {
	var q dashboardQuery

	q.City = c.Query("city")

	rawLat, rawLon := c.Query("lat"), c.Query("lon")
	if rawLat != "" || rawLon != "" {
		lat, err := strconv.ParseFloat(rawLat, 64)
		if err != nil {
			return q, errors.New("lat must be a number")
		}
		lon, err := strconv.ParseFloat(rawLon, 64)
		if err != nil {
			return q, errors.New("lon must be a number")
		}
		q.Lat = &lat
		q.Lon = &lon
	}

	switch {
	case q.City == "" && q.Lat == nil:
		return q, errors.New("either city or lat/lon is required")
	case q.City != "" && q.Lat != nil:
		return q, errors.New("city and lat/lon are mutually exclusive")
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// searchError maps fetch-client failures onto HTTP statuses. Superseded
// requests are not errors the user should see; the caller just drops the
// stale response.
func searchError(err error) error {
	switch {
	case errors.Is(err, weather.ErrSuperseded):
		return fiber.NewError(fiber.StatusConflict, "superseded by a newer request")
	case errors.Is(err, weather.ErrInvalidAPIKey):
		return fiber.NewError(fiber.StatusUnauthorized, "weather service credential was rejected")
	case errors.Is(err, weather.ErrRateLimited):
		return fiber.NewError(fiber.StatusTooManyRequests, "weather service rate limit exceeded")
	case errors.Is(err, weather.ErrTimeout):
		return fiber.NewError(fiber.StatusGatewayTimeout, "weather service did not respond in time")
	default:
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
}
