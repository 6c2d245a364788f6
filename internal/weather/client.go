// Package weather fetches the wind vector used as an EnvironmentVector
// input (spec.md §1, §6.3). This is an I/O boundary collaborator, not part
// of the numerical core: it never runs during simulation, only before it.
// Grounded on the original bike-course-simulator's Open-Meteo client and the
// teacher's GridStatus client (timeouts, structured errors, logging shape).
package weather

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/nick-riduck/bike-course-simulator/internal/model"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Client fetches historical/forecast wind data for a point and time.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	// ScenarioMode bypasses the network and returns Scenario for every
	// call, mirroring the original WeatherClient's offline test mode.
	ScenarioMode bool
	Scenario     model.EnvironmentVector
}

// NewClient creates a Client hitting the Open-Meteo API. If baseURL is
// empty, defaults to the public endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Error represents a structured failure from the weather API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

type openMeteoResponse struct {
	Hourly struct {
		Time            []string  `json:"time"`
		WindSpeed10m    []float64 `json:"wind_speed_10m"`
		WindDirection10 []float64 `json:"wind_direction_10m"`
	} `json:"hourly"`
}

// FetchWind returns the EnvironmentVector for a point and timestamp. The
// cache (if enabled, see cache.go) is checked first.
func (c *Client) FetchWind(lat, lon float64, at time.Time) (model.EnvironmentVector, error) {
	if c.ScenarioMode {
		return c.Scenario, nil
	}

	key := CacheKey(lat, lon, at)
	if cache := GetCache(); cache != nil {
		if cached, ok := cache.Get(key); ok {
			log.Printf("[Weather] Cache hit: lat=%.4f lon=%.4f at=%s", lat, lon, at.Format(time.RFC3339))
			return cached, nil
		}
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return model.EnvironmentVector{}, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%.6f", lat))
	q.Set("longitude", fmt.Sprintf("%.6f", lon))
	q.Set("hourly", "wind_speed_10m,wind_direction_10m")
	q.Set("start_date", at.Format("2006-01-02"))
	q.Set("end_date", at.Format("2006-01-02"))
	u.RawQuery = q.Encode()

	log.Printf("[Weather] Request: GET %s (lat=%.4f, lon=%.4f)", u.Path, lat, lon)

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return model.EnvironmentVector{}, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Printf("[Weather] Request failed: %v (duration: %v)", err, duration)
		return model.EnvironmentVector{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[Weather] Response: %d %s (duration: %v)", resp.StatusCode, resp.Status, duration)

	if resp.StatusCode != http.StatusOK {
		return model.EnvironmentVector{}, &Error{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("weather API returned status %d", resp.StatusCode),
		}
	}

	var parsed openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.EnvironmentVector{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	env, err := nearestHour(parsed, at)
	if err != nil {
		return model.EnvironmentVector{}, err
	}

	if cache := GetCache(); cache != nil {
		cache.Set(key, env)
	}
	return env, nil
}

func nearestHour(resp openMeteoResponse, at time.Time) (model.EnvironmentVector, error) {
	if len(resp.Hourly.Time) == 0 {
		return model.EnvironmentVector{}, fmt.Errorf("weather response had no hourly data")
	}
	best := 0
	bestDelta := time.Duration(1<<63 - 1)
	for i, ts := range resp.Hourly.Time {
		t, err := time.Parse("2006-01-02T15:04", ts)
		if err != nil {
			continue
		}
		delta := at.Sub(t)
		if delta < 0 {
			delta = -delta
		}
		if delta < bestDelta {
			bestDelta = delta
			best = i
		}
	}
	env := model.EnvironmentVector{
		WindSpeedMps: resp.Hourly.WindSpeed10m[best],
		WindDirDeg:   resp.Hourly.WindDirection10[best],
	}
	return env, nil
}
