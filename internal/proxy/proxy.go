// Package proxy implements the credential-hiding relay between the dashboard
// and the OpenWeather API. The relay core is transport-independent; fiber and
// net/http adapters expose it for the two deployment targets.
package proxy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/logger"
)

// endpointPaths maps the caller-facing endpoint selector to the upstream path.
// Anything not in this table is rejected before the upstream is contacted.
var endpointPaths = map[string]string{
	"weather":         "/data/2.5/weather",
	"forecast":        "/data/2.5/forecast",
	"air_pollution":   "/data/2.5/air_pollution",
	"geocode_reverse": "/geo/1.0/reverse",
}

// allowedParams is the full set of caller parameters forwarded upstream.
// Everything else is dropped, deliberately: the relay narrows, it does not
// pass through.
var allowedParams = []string{"q", "lat", "lon", "units", "lang", "limit"}

// Result is a fully materialized relay response.
type Result struct {
	Status      int
	ContentType string
	Body        []byte
}

type Proxy struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a relay bound to an upstream base URL and a server-held
// credential. An empty key is legal at construction; every request then
// answers 500 without touching the upstream.
func New(apiKey, upstreamBaseURL string) *Proxy {
	return &Proxy{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(upstreamBaseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Relay validates the caller's parameters, then mirrors a single upstream GET.
// It never returns an error to the transport layer: every failure mode is a
// structured Result.
func (p *Proxy) Relay(ctx context.Context, params url.Values) Result {
	endpoint := params.Get("endpoint")
	path, ok := endpointPaths[endpoint]
	if !ok {
		return messageResult(http.StatusBadRequest, "missing or invalid 'endpoint' param")
	}

	upstream := url.Values{}
	for _, k := range allowedParams {
		if params.Has(k) {
			upstream.Set(k, params.Get(k))
		}
	}

	if p.apiKey == "" {
		return messageResult(http.StatusInternalServerError, "server misconfigured: missing OPENWEATHER_KEY")
	}
	upstream.Set("appid", p.apiKey)

	if endpoint == "air_pollution" && (upstream.Get("lat") == "" || upstream.Get("lon") == "") {
		return messageResult(http.StatusBadRequest, "air_pollution requires lat and lon")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+upstream.Encode(), nil)
	if err != nil {
		return internalError(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return internalError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return internalError(err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		// Decode and re-encode so the relay only ever emits valid JSON.
		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			return internalError(err)
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			return internalError(err)
		}
		return Result{Status: resp.StatusCode, ContentType: "application/json", Body: encoded}
	}

	return Result{Status: resp.StatusCode, ContentType: contentType, Body: body}
}

// FiberHandler mounts the relay in the dashboard app.
func (p *Proxy) FiberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := url.Values{}
		for k, v := range c.Queries() {
			params.Set(k, v)
		}

		res := p.Relay(c.UserContext(), params)
		if res.ContentType != "" {
			c.Set(fiber.HeaderContentType, res.ContentType)
		}
		return c.Status(res.Status).Send(res.Body)
	}
}

// HTTPHandler is the standalone-function variant of the same relay.
func (p *Proxy) HTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := p.Relay(r.Context(), r.URL.Query())
		if res.ContentType != "" {
			w.Header().Set("Content-Type", res.ContentType)
		}
		w.WriteHeader(res.Status)
		_, _ = w.Write(res.Body)
	}
}

func messageResult(status int, message string) Result {
	body, _ := json.Marshal(map[string]string{"message": message})
	return Result{Status: status, ContentType: "application/json", Body: body}
}

// internalError hides the failure detail from the caller; the cause only goes
// to the server log.
func internalError(err error) Result {
	logger.Errorf("relay error: %v", err)
	return messageResult(http.StatusInternalServerError, "internal server error")
}
