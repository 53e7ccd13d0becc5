package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/trip-planner/api-go/types"
)

const defaultWeatherBaseURL = "https://api.open-meteo.com/v1"

// WeatherClient fetches daily forecasts from the Open-Meteo forecast API.
type WeatherClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewWeatherClient() *WeatherClient {
	return &WeatherClient{
		BaseURL:    defaultWeatherBaseURL,
		HTTPClient: &http.Client{},
	}
}

// Forecast returns daily max/min temperature and precipitation sum for the
// given coordinates as parallel arrays. An empty timezone falls back to
// "auto" so the upstream resolves it from the coordinates.
func (c *WeatherClient) Forecast(ctx context.Context, latitude, longitude float64, timezone string) (types.DailyForecast, error) {
	if timezone == "" {
		timezone = "auto"
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum")
	params.Set("timezone", timezone)

	apiURL := c.BaseURL + "/forecast?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return types.DailyForecast{}, fmt.Errorf("create forecast request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return types.DailyForecast{}, fmt.Errorf("send forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.DailyForecast{}, fmt.Errorf("forecast api error: %s", resp.Status)
	}

	var result types.OpenMeteoForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return types.DailyForecast{}, fmt.Errorf("decode forecast response: %w", err)
	}

	forecast := types.DailyForecast{
		Time:           []string{},
		TemperatureMax: []float64{},
		TemperatureMin: []float64{},
		Precipitation:  []float64{},
	}
	if result.Daily != nil {
		if result.Daily.Time != nil {
			forecast.Time = result.Daily.Time
		}
		if result.Daily.Temperature2mMax != nil {
			forecast.TemperatureMax = result.Daily.Temperature2mMax
		}
		if result.Daily.Temperature2mMin != nil {
			forecast.TemperatureMin = result.Daily.Temperature2mMin
		}
		if result.Daily.PrecipitationSum != nil {
			forecast.Precipitation = result.Daily.PrecipitationSum
		}
	}

	return forecast, nil
}
