package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/trip-planner/api-go/clients"
	"github.com/trip-planner/api-go/models"
	"github.com/trip-planner/api-go/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	restaurantRadiusMeters = 5000
	attractionRadiusMeters = 8000
	placesPerCategory      = 12

	restaurantCategories = "catering.restaurant,catering.cafe"
	attractionCategories = "tourism.attraction,tourism.sights"
)

var validVibes = map[string]bool{
	"techno": true,
	"nature": true,
	"relax":  true,
	"food":   true,
	"mixed":  true,
}

var nextIdeas = []string{
	"Book your stay early, the good spots fill up fast",
	"Check local event calendars for your travel dates",
	"Reserve popular restaurants a few days ahead",
	"Leave one day unplanned for wandering",
}

type TripController struct {
	DB        *gorm.DB
	Geocoding *clients.GeocodingClient
	Weather   *clients.WeatherClient
	Places    *clients.PlacesClient
}

func NewTripController(db *gorm.DB, geocoding *clients.GeocodingClient, weather *clients.WeatherClient, places *clients.PlacesClient) *TripController {
	return &TripController{
		DB:        db,
		Geocoding: geocoding,
		Weather:   weather,
		Places:    places,
	}
}

type PlanTripInput struct {
	UserID      string `json:"userId"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Budget      int    `json:"budget"`
	Vibe        string `json:"vibe"`
}

// validatePlanInput checks every field before any external call is made and
// returns field-level messages for everything that is wrong at once.
func validatePlanInput(input PlanTripInput) map[string]string {
	details := map[string]string{}

	if strings.TrimSpace(input.UserID) == "" {
		details["userId"] = "userId is required"
	}
	if len(strings.TrimSpace(input.Destination)) < 2 {
		details["destination"] = "destination must be at least 2 characters"
	}
	if len(input.StartDate) < 8 {
		details["startDate"] = "startDate must be a date string"
	}
	if len(input.EndDate) < 8 {
		details["endDate"] = "endDate must be a date string"
	}
	if input.Budget <= 0 {
		details["budget"] = "budget must be a positive integer"
	}
	if !validVibes[input.Vibe] {
		details["vibe"] = "vibe must be one of: techno, nature, relax, food, mixed"
	}

	return details
}

func buildSummary(vibe, placeName string, budget int) string {
	flavor := map[string]string{
		"techno": "club nights and late starts",
		"nature": "fresh air and long walks",
		"relax":  "slow mornings and no alarms",
		"food":   "eating your way through town",
		"mixed":  "a bit of everything",
	}[vibe]

	return fmt.Sprintf("A %s trip to %s on a budget of %d: expect %s.", vibe, placeName, budget, flavor)
}

// PlanTrip validates the request, chains the geocoding, weather and places
// lookups, assembles the plan document and persists it as a new trip. The
// insert is the last step, so any earlier failure leaves no partial row.
func (tc *TripController) PlanTrip(c *gin.Context) {
	var input PlanTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if details := validatePlanInput(input); len(details) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": details})
		return
	}

	ctx := c.Request.Context()

	place, err := tc.Geocoding.Search(ctx, input.Destination)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if place == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Could not resolve destination %q", input.Destination)})
		return
	}

	forecast, err := tc.Weather.Forecast(ctx, place.Latitude, place.Longitude, place.Timezone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	restaurants, err := tc.Places.Nearby(ctx, place.Longitude, place.Latitude, restaurantRadiusMeters, restaurantCategories, placesPerCategory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	attractions, err := tc.Places.Nearby(ctx, place.Longitude, place.Latitude, attractionRadiusMeters, attractionCategories, placesPerCategory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	plan := types.PlanDocument{
		Destination: types.PlanDestination{
			Query:     input.Destination,
			Name:      place.Name,
			Country:   place.Country,
			Latitude:  place.Latitude,
			Longitude: place.Longitude,
			Timezone:  place.Timezone,
		},
		Trip: types.PlanTripInput{
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Budget:    input.Budget,
			Vibe:      input.Vibe,
		},
		Weather:   types.PlanWeather{Daily: forecast},
		Places:    types.PlanPlaces{Restaurants: restaurants, Attractions: attractions},
		Summary:   buildSummary(input.Vibe, place.Name, input.Budget),
		NextIdeas: nextIdeas,
	}

	planBytes, err := json.Marshal(plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	trip := models.Trip{
		Title:       fmt.Sprintf("Trip to %s", place.Name),
		Destination: place.Name,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
		Vibe:        input.Vibe,
		PlanJSON:    datatypes.JSON(planBytes),
		UserID:      input.UserID,
	}

	if err := tc.DB.Create(&trip).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, trip)
}

func (tc *TripController) ListTrips(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}

	var trips []models.Trip
	if err := tc.DB.Where("user_id = ?", userID).Order("created_at").Find(&trips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trips"})
		return
	}

	c.JSON(http.StatusOK, trips)
}

func (tc *TripController) GetTrip(c *gin.Context) {
	id := c.Param("id")

	var trip models.Trip
	result := tc.DB.Where("id = ?", id).First(&trip)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trip"})
		return
	}

	c.JSON(http.StatusOK, trip)
}
