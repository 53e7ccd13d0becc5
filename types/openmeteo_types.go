package types

type OpenMeteoGeocodingResponse struct {
	Results []OpenMeteoGeocodingResult `json:"results,omitempty"`
}

type OpenMeteoGeocodingResult struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

type OpenMeteoForecastResponse struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timezone  string          `json:"timezone"`
	Daily     *OpenMeteoDaily `json:"daily,omitempty"`
}

type OpenMeteoDaily struct {
	Time             []string  `json:"time,omitempty"`
	Temperature2mMax []float64 `json:"temperature_2m_max,omitempty"`
	Temperature2mMin []float64 `json:"temperature_2m_min,omitempty"`
	PrecipitationSum []float64 `json:"precipitation_sum,omitempty"`
}
