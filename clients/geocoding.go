package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/trip-planner/api-go/types"
)

const defaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1"

// GeocodingClient resolves free-text destinations against the Open-Meteo
// geocoding search API.
type GeocodingClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewGeocodingClient() *GeocodingClient {
	return &GeocodingClient{
		BaseURL:    defaultGeocodingBaseURL,
		HTTPClient: &http.Client{},
	}
}

// Search requests the single best match for a destination string. A nil
// result with a nil error means the destination could not be resolved.
func (c *GeocodingClient) Search(ctx context.Context, destination string) (*types.GeoPlace, error) {
	params := url.Values{}
	params.Set("name", destination)
	params.Set("count", "1")
	params.Set("language", "en")

	apiURL := c.BaseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create geocoding request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding api error: %s", resp.Status)
	}

	var result types.OpenMeteoGeocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode geocoding response: %w", err)
	}

	if len(result.Results) == 0 {
		return nil, nil
	}

	best := result.Results[0]
	return &types.GeoPlace{
		Name:      best.Name,
		Country:   best.Country,
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
		Timezone:  best.Timezone,
	}, nil
}
