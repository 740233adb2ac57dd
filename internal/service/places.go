package service

import (
	"context"
	"log"
	"strings"

	"safepath/internal/domain"
	"safepath/internal/repository"
)

// Geocoder resolves free-text queries and coordinates against an external
// provider. Implementations live outside the service layer.
type Geocoder interface {
	// Geocode returns zero or more candidates for a free-text query.
	Geocode(ctx context.Context, query string) ([]domain.Place, error)

	// ReverseGeocode returns a best-effort display address for a coordinate.
	ReverseGeocode(ctx context.Context, coord domain.Coordinate) (string, error)
}

// PlaceCache caches search results between requests.
type PlaceCache interface {
	GetPlaceSearch(ctx context.Context, query string) ([]domain.Place, error)
	SetPlaceSearch(ctx context.Context, query string, places []domain.Place) error
}

// PlacesService answers pickup/drop-off lookups. The hospital directory is
// consulted first because most trips in this system start or end at a
// hospital; the geocoder covers everything else.
type PlacesService struct {
	hospitalRepo repository.HospitalRepository
	geocoder     Geocoder
	cache        PlaceCache
}

// NewPlacesService creates a new PlacesService.
func NewPlacesService(hospitalRepo repository.HospitalRepository, geocoder Geocoder, cache PlaceCache) *PlacesService {
	return &PlacesService{
		hospitalRepo: hospitalRepo,
		geocoder:     geocoder,
		cache:        cache,
	}
}

// Search returns location candidates for a free-text query.
// A lookup failure never mutates any draft; the caller retries or types a
// different query.
func (s *PlacesService) Search(ctx context.Context, query string) ([]domain.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrPlaceNotFound
	}

	if s.cache != nil {
		cached, err := s.cache.GetPlaceSearch(ctx, query)
		if err != nil {
			log.Printf("places: cache lookup failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	places, err := s.searchHospitals(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(places) == 0 && s.geocoder != nil {
		places, err = s.geocoder.Geocode(ctx, query)
		if err != nil {
			return nil, err
		}
	}

	if len(places) == 0 {
		return nil, ErrPlaceNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetPlaceSearch(ctx, query, places); err != nil {
			log.Printf("places: cache store failed: %v", err)
		}
	}

	return places, nil
}

// ReverseGeocode resolves a coordinate to a display address, used to offer
// the device's current location as a pickup option.
func (s *PlacesService) ReverseGeocode(ctx context.Context, coord domain.Coordinate) (string, error) {
	if !coord.Valid() {
		return "", ErrInvalidCoordinates
	}
	if s.geocoder == nil {
		return "", ErrPlaceNotFound
	}

	address, err := s.geocoder.ReverseGeocode(ctx, coord)
	if err != nil {
		return "", err
	}
	if address == "" {
		return "", ErrPlaceNotFound
	}
	return address, nil
}

// Hospitals returns the full hospital directory.
func (s *PlacesService) Hospitals(ctx context.Context) ([]*domain.Hospital, error) {
	return s.hospitalRepo.GetAll(ctx)
}

func (s *PlacesService) searchHospitals(ctx context.Context, query string) ([]domain.Place, error) {
	hospitals, err := s.hospitalRepo.Search(ctx, query, 10)
	if err != nil {
		return nil, err
	}

	places := make([]domain.Place, 0, len(hospitals))
	for _, h := range hospitals {
		places = append(places, domain.Place{
			Name:    h.Name,
			Address: h.Address,
			Lat:     h.Lat,
			Lng:     h.Lng,
		})
	}
	return places, nil
}
