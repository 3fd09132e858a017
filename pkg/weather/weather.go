// Package weather is a small Open-Meteo client: city geocoding, current
// conditions and an hourly forecast. No API key required.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const (
	defaultGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL = "https://api.open-meteo.com/v1/forecast"

	requestTimeout = 10 * time.Second
	cacheDuration  = 30 * time.Minute
)

// Location is a geocoded city.
type Location struct {
	Name string // resolved name, e.g. "London, United Kingdom"
	Lat  float64
	Lon  float64
}

// Current is the present conditions at a location.
type Current struct {
	Temperature float64
	Code        int
}

// Hour is one hourly forecast entry.
type Hour struct {
	Time        time.Time
	Temperature float64
	Code        int
}

// Report is a fetched forecast.
type Report struct {
	Current Current
	Hourly  []Hour
}

// Client talks to the Open-Meteo APIs and caches the last report for 30
// minutes per coordinate pair.
type Client struct {
	HTTPClient  *http.Client
	GeocodeURL  string
	ForecastURL string

	mu        sync.Mutex
	cached    *Report
	cacheKey  string
	cacheTime time.Time
}

// NewClient returns a Client with default endpoints and timeout.
func NewClient() *Client {
	return &Client{
		HTTPClient:  &http.Client{Timeout: requestTimeout},
		GeocodeURL:  defaultGeocodeURL,
		ForecastURL: defaultForecastURL,
	}
}

// Geocode resolves a city name to a Location. Unknown cities return an
// error, not a zero Location.
func (c *Client) Geocode(ctx context.Context, city string) (Location, error) {
	q := url.Values{}
	q.Set("name", city)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")

	var resp struct {
		Results []struct {
			Name      string  `json:"name"`
			Country   string  `json:"country"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, c.GeocodeURL, q, &resp); err != nil {
		return Location{}, fmt.Errorf("geocoding %q: %w", city, err)
	}
	if len(resp.Results) == 0 {
		return Location{}, fmt.Errorf("city not found: %s", city)
	}

	r := resp.Results[0]
	name := r.Name
	if r.Country != "" {
		name = fmt.Sprintf("%s, %s", r.Name, r.Country)
	}
	return Location{Name: name, Lat: r.Latitude, Lon: r.Longitude}, nil
}

// Fetch returns current conditions and a two-day hourly forecast for the
// given coordinates, serving from cache when fresh.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*Report, error) {
	key := fmt.Sprintf("%.4f,%.4f", lat, lon)

	c.mu.Lock()
	if c.cached != nil && c.cacheKey == key && time.Since(c.cacheTime) < cacheDuration {
		report := c.cached
		c.mu.Unlock()
		return report, nil
	}
	c.mu.Unlock()

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lon))
	q.Set("current", "temperature_2m,weather_code")
	q.Set("hourly", "temperature_2m,weather_code")
	q.Set("timezone", "auto")
	q.Set("forecast_days", "2")

	var resp struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
		Hourly struct {
			Time         []string  `json:"time"`
			Temperature  []float64 `json:"temperature_2m"`
			WeatherCodes []int     `json:"weather_code"`
		} `json:"hourly"`
	}
	if err := c.getJSON(ctx, c.ForecastURL, q, &resp); err != nil {
		return nil, fmt.Errorf("fetching weather: %w", err)
	}

	report := &Report{
		Current: Current{Temperature: resp.Current.Temperature, Code: resp.Current.WeatherCode},
	}
	for i, ts := range resp.Hourly.Time {
		if i >= len(resp.Hourly.Temperature) || i >= len(resp.Hourly.WeatherCodes) {
			break
		}
		// Open-Meteo hourly timestamps look like "2025-10-29T14:00".
		t, err := time.ParseInLocation("2006-01-02T15:04", ts, time.Local)
		if err != nil {
			continue
		}
		report.Hourly = append(report.Hourly, Hour{
			Time:        t,
			Temperature: resp.Hourly.Temperature[i],
			Code:        resp.Hourly.WeatherCodes[i],
		})
	}

	c.mu.Lock()
	c.cached = report
	c.cacheKey = key
	c.cacheTime = time.Now()
	c.mu.Unlock()

	return report, nil
}

// Upcoming filters a report's hourly entries to the next n future hours.
func (r *Report) Upcoming(n int, now time.Time) []Hour {
	var out []Hour
	for _, h := range r.Hourly {
		if !h.Time.After(now) {
			continue
		}
		out = append(out, h)
		if len(out) >= n {
			break
		}
	}
	return out
}

func (c *Client) getJSON(ctx context.Context, endpoint string, q url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
