package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geocodeFixture = `{
  "results": [
    {"name": "London", "country": "United Kingdom", "latitude": 51.5074, "longitude": -0.1278}
  ]
}`

func forecastFixture(day string) string {
	return fmt.Sprintf(`{
  "current": {"temperature_2m": 18.3, "weather_code": 2},
  "hourly": {
    "time": ["%[1]sT14:00", "%[1]sT15:00", "%[1]sT16:00"],
    "temperature_2m": [18.3, 19.1, 18.7],
    "weather_code": [2, 3, 61]
  }
}`, day)
}

func testClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.HTTPClient = srv.Client()
	c.GeocodeURL = srv.URL + "/v1/search"
	c.ForecastURL = srv.URL + "/v1/forecast"
	return c, srv
}

func TestGeocode(t *testing.T) {
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "London", r.URL.Query().Get("name"))
		fmt.Fprint(w, geocodeFixture)
	}))
	defer srv.Close()

	loc, err := c.Geocode(context.Background(), "London")
	require.NoError(t, err)
	assert.Equal(t, "London, United Kingdom", loc.Name)
	assert.InDelta(t, 51.5074, loc.Lat, 0.0001)
	assert.InDelta(t, -0.1278, loc.Lon, 0.0001)
}

func TestGeocodeUnknownCity(t *testing.T) {
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": []}`)
	}))
	defer srv.Close()

	_, err := c.Geocode(context.Background(), "Nowhereville")
	assert.ErrorContains(t, err, "city not found")
}

func TestFetchParsesForecast(t *testing.T) {
	day := time.Now().Format("2006-01-02")
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		fmt.Fprint(w, forecastFixture(day))
	}))
	defer srv.Close()

	report, err := c.Fetch(context.Background(), 51.5074, -0.1278)
	require.NoError(t, err)
	assert.InDelta(t, 18.3, report.Current.Temperature, 0.001)
	assert.Equal(t, 2, report.Current.Code)
	require.Len(t, report.Hourly, 3)
	assert.Equal(t, 61, report.Hourly[2].Code)
}

func TestFetchCachesForSameCoordinates(t *testing.T) {
	day := time.Now().Format("2006-01-02")
	requests := 0
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, forecastFixture(day))
	}))
	defer srv.Close()

	_, err := c.Fetch(context.Background(), 51.5, -0.1)
	require.NoError(t, err)
	_, err = c.Fetch(context.Background(), 51.5, -0.1)
	require.NoError(t, err)
	assert.Equal(t, 1, requests)

	// Different coordinates bypass the cache.
	_, err = c.Fetch(context.Background(), 48.85, 2.35)
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
}

func TestFetchServerError(t *testing.T) {
	c, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := c.Fetch(context.Background(), 1, 2)
	assert.ErrorContains(t, err, "unexpected status")
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	r := &Report{Hourly: []Hour{
		{Time: now.Add(-time.Hour)},
		{Time: now.Add(time.Hour), Code: 1},
		{Time: now.Add(2 * time.Hour), Code: 2},
		{Time: now.Add(3 * time.Hour), Code: 3},
	}}

	next := r.Upcoming(2, now)
	require.Len(t, next, 2)
	assert.Equal(t, 1, next[0].Code)
	assert.Equal(t, 2, next[1].Code)
}

func TestDescriptionAndIcon(t *testing.T) {
	assert.Equal(t, "Clear sky", Description(0))
	assert.Equal(t, "Thunderstorm", Description(95))
	assert.Equal(t, "Unknown", Description(42))

	assert.Equal(t, "☀", Icon(0))
	assert.Equal(t, "💧", Icon(63))
	assert.Equal(t, "❄", Icon(73))
	assert.Equal(t, "⛈", Icon(99))
}
