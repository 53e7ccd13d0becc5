package types

type GeoapifyPlacesResponse struct {
	Type     string            `json:"type"`
	Features []GeoapifyFeature `json:"features"`
}

type GeoapifyFeature struct {
	Type       string             `json:"type"`
	Properties GeoapifyProperties `json:"properties"`
	Geometry   GeoapifyGeometry   `json:"geometry"`
}

type GeoapifyProperties struct {
	PlaceID      string   `json:"place_id"`
	Name         string   `json:"name,omitempty"`
	Country      string   `json:"country,omitempty"`
	City         string   `json:"city,omitempty"`
	AddressLine1 string   `json:"address_line1,omitempty"`
	AddressLine2 string   `json:"address_line2,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Distance     *float64 `json:"distance,omitempty"`
	Website      *string  `json:"website,omitempty"`
	OpeningHours *string  `json:"opening_hours,omitempty"`
	Lon          float64  `json:"lon"`
	Lat          float64  `json:"lat"`
}

type GeoapifyGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}
