package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"safepath/internal/domain"
	"safepath/internal/service"
)

// PlacesHandler handles HTTP requests for location lookups.
type PlacesHandler struct {
	placesService *service.PlacesService
}

// NewPlacesHandler creates a new PlacesHandler.
func NewPlacesHandler(placesService *service.PlacesService) *PlacesHandler {
	return &PlacesHandler{placesService: placesService}
}

// PlaceResponse is the HTTP response for a location candidate.
type PlaceResponse struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// HospitalResponse is the HTTP response for a hospital directory entry.
type HospitalResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	FullName string  `json:"full_name"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// Search handles GET /v1/places/search?q=
func (h *PlacesHandler) Search(c *gin.Context) {
	places, err := h.placesService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		response = append(response, PlaceResponse{
			Name:    p.Name,
			Address: p.Address,
			Lat:     p.Lat,
			Lng:     p.Lng,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Reverse handles GET /v1/places/reverse?lat=&lng=
func (h *PlacesHandler) Reverse(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		respondError(c, service.ErrInvalidCoordinates)
		return
	}

	address, err := h.placesService.ReverseGeocode(c.Request.Context(), domain.Coordinate{Lat: lat, Lng: lng})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": address})
}

// Hospitals handles GET /v1/hospitals
func (h *PlacesHandler) Hospitals(c *gin.Context) {
	hospitals, err := h.placesService.Hospitals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]HospitalResponse, 0, len(hospitals))
	for _, hosp := range hospitals {
		response = append(response, HospitalResponse{
			ID:       hosp.ID,
			Name:     hosp.Name,
			FullName: hosp.FullName,
			Address:  hosp.Address,
			Lat:      hosp.Lat,
			Lng:      hosp.Lng,
		})
	}
	c.JSON(http.StatusOK, response)
}
