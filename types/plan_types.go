package types

// PlanDocument is the composite plan stored verbatim on each trip row.
type PlanDocument struct {
	Destination PlanDestination `json:"destination"`
	Trip        PlanTripInput   `json:"trip"`
	Weather     PlanWeather     `json:"weather"`
	Places      PlanPlaces      `json:"places"`
	Summary     string          `json:"summary"`
	NextIdeas   []string        `json:"nextIdeas"`
}

type PlanDestination struct {
	Query     string  `json:"query"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

type PlanTripInput struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Budget    int    `json:"budget"`
	Vibe      string `json:"vibe"`
}

type PlanWeather struct {
	Daily DailyForecast `json:"daily"`
}

// DailyForecast holds parallel arrays, one entry per forecast day.
type DailyForecast struct {
	Time           []string  `json:"time"`
	TemperatureMax []float64 `json:"temperatureMax"`
	TemperatureMin []float64 `json:"temperatureMin"`
	Precipitation  []float64 `json:"precipitation"`
}

type PlanPlaces struct {
	Restaurants []PlaceRecord `json:"restaurants"`
	Attractions []PlaceRecord `json:"attractions"`
}

// PlaceRecord is a normalized point of interest derived from an upstream
// geographic feature. It lives only inside the plan document.
type PlaceRecord struct {
	PlaceID        string   `json:"placeId"`
	Name           string   `json:"name"`
	Categories     []string `json:"categories"`
	AddressLine1   string   `json:"addressLine1"`
	AddressLine2   string   `json:"addressLine2"`
	City           string   `json:"city"`
	Country        string   `json:"country"`
	DistanceMeters *float64 `json:"distanceMeters"`
	Location       LonLat   `json:"location"`
	Website        *string  `json:"website"`
	OpeningHours   *string  `json:"openingHours"`
}

type LonLat struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// GeoPlace is a resolved destination returned by the geocoding client.
type GeoPlace struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}
