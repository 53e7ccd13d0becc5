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

const defaultPlacesBaseURL = "https://api.geoapify.com/v2"

// DefaultPlacesLimit caps results when the caller passes no explicit limit.
const DefaultPlacesLimit = 10

// PlacesClient searches points of interest through the Geoapify Places API.
type PlacesClient struct {
	BaseURL    string
	HTTPClient *http.Client
	apiKey     string
}

// NewPlacesClient requires a Geoapify API key. A missing key is a
// configuration error and fails immediately rather than on the first call.
func NewPlacesClient(apiKey string) *PlacesClient {
	if apiKey == "" {
		panic("GEOAPIFY_API_KEY not found in environment variables")
	}

	return &PlacesClient{
		BaseURL:    defaultPlacesBaseURL,
		HTTPClient: &http.Client{},
		apiKey:     apiKey,
	}
}

// Nearby fetches up to limit places of the given comma-separated categories
// inside a circle of radiusMeters around lon/lat, normalized to place records.
func (c *PlacesClient) Nearby(ctx context.Context, lon, lat float64, radiusMeters int, categories string, limit int) ([]types.PlaceRecord, error) {
	if limit <= 0 {
		limit = DefaultPlacesLimit
	}

	params := url.Values{}
	params.Set("categories", categories)
	params.Set("filter", fmt.Sprintf("circle:%s,%s,%d",
		strconv.FormatFloat(lon, 'f', -1, 64),
		strconv.FormatFloat(lat, 'f', -1, 64),
		radiusMeters))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("apiKey", c.apiKey)

	apiURL := c.BaseURL + "/places?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create places request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api error: %s", resp.Status)
	}

	var result types.GeoapifyPlacesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}

	records := make([]types.PlaceRecord, 0, len(result.Features))
	for _, feature := range result.Features {
		records = append(records, normalizeFeature(feature))
	}

	return records, nil
}

func normalizeFeature(feature types.GeoapifyFeature) types.PlaceRecord {
	props := feature.Properties

	name := props.Name
	if name == "" {
		name = props.AddressLine1
	}
	if name == "" {
		name = "Unknown place"
	}

	categories := props.Categories
	if categories == nil {
		categories = []string{}
	}

	return types.PlaceRecord{
		PlaceID:        props.PlaceID,
		Name:           name,
		Categories:     categories,
		AddressLine1:   props.AddressLine1,
		AddressLine2:   props.AddressLine2,
		City:           props.City,
		Country:        props.Country,
		DistanceMeters: props.Distance,
		Location:       types.LonLat{Lon: props.Lon, Lat: props.Lat},
		Website:        props.Website,
		OpeningHours:   props.OpeningHours,
	}
}
