package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"safepath/internal/domain"
	"safepath/internal/service"
)

func seedHospitals(repo *MockHospitalRepository) {
	repo.AddHospital(&domain.Hospital{
		ID:       "h-1",
		Name:     "Siriraj",
		FullName: "Siriraj Hospital",
		Address:  "2 Wanglang Rd, Bangkok",
		Lat:      13.7594,
		Lng:      100.4863,
	})
	repo.AddHospital(&domain.Hospital{
		ID:       "h-2",
		Name:     "Chula",
		FullName: "King Chulalongkorn Memorial Hospital",
		Address:  "1873 Rama IV Rd, Bangkok",
		Lat:      13.7308,
		Lng:      100.5364,
	})
}

func TestPlaces_Search_HospitalDirectoryFirst(t *testing.T) {
	t.Parallel()

	hospitalRepo := NewMockHospitalRepository()
	seedHospitals(hospitalRepo)
	geocoder := NewMockGeocoder()

	svc := service.NewPlacesService(hospitalRepo, geocoder, nil)

	places, err := svc.Search(context.Background(), "siriraj")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if len(places) != 1 || places[0].Name != "Siriraj" {
		t.Errorf("expected the hospital directory hit, got %+v", places)
	}
	if got := atomic.LoadInt32(&geocoder.GeocodeCallCount); got != 0 {
		t.Errorf("expected geocoder not consulted on a directory hit, called %d times", got)
	}
}

func TestPlaces_Search_FallsBackToGeocoder(t *testing.T) {
	t.Parallel()

	hospitalRepo := NewMockHospitalRepository()
	seedHospitals(hospitalRepo)
	geocoder := NewMockGeocoder()
	geocoder.Places = []domain.Place{
		{Name: "Lumphini Park", Address: "Rama IV Rd, Bangkok", Lat: 13.7314, Lng: 100.5414},
	}

	svc := service.NewPlacesService(hospitalRepo, geocoder, nil)

	places, err := svc.Search(context.Background(), "lumphini park")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(places) != 1 || places[0].Name != "Lumphini Park" {
		t.Errorf("expected geocoder result, got %+v", places)
	}
}

func TestPlaces_Search_NoResults_Fails(t *testing.T) {
	t.Parallel()

	svc := service.NewPlacesService(NewMockHospitalRepository(), NewMockGeocoder(), nil)

	_, err := svc.Search(context.Background(), "nowhere in particular")
	if !errors.Is(err, service.ErrPlaceNotFound) {
		t.Errorf("expected ErrPlaceNotFound, got: %v", err)
	}
}

func TestPlaces_Search_EmptyQuery_Fails(t *testing.T) {
	t.Parallel()

	svc := service.NewPlacesService(NewMockHospitalRepository(), NewMockGeocoder(), nil)

	_, err := svc.Search(context.Background(), "   ")
	if !errors.Is(err, service.ErrPlaceNotFound) {
		t.Errorf("expected ErrPlaceNotFound, got: %v", err)
	}
}

func TestPlaces_Search_GeocoderFailure_SurfacesError(t *testing.T) {
	t.Parallel()

	geocoder := NewMockGeocoder()
	geocoder.GeocodeError = errors.New("upstream timeout")

	svc := service.NewPlacesService(NewMockHospitalRepository(), geocoder, nil)

	_, err := svc.Search(context.Background(), "anywhere")
	if err == nil {
		t.Fatal("expected error from geocoder failure")
	}
}

func TestPlaces_ReverseGeocode_InvalidCoordinate_Fails(t *testing.T) {
	t.Parallel()

	svc := service.NewPlacesService(NewMockHospitalRepository(), NewMockGeocoder(), nil)

	_, err := svc.ReverseGeocode(context.Background(), domain.Coordinate{Lat: 120, Lng: 0})
	if !errors.Is(err, service.ErrInvalidCoordinates) {
		t.Errorf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestPlaces_ReverseGeocode_ReturnsAddress(t *testing.T) {
	t.Parallel()

	geocoder := NewMockGeocoder()
	geocoder.ReverseAddress = "2 Wanglang Rd, Bangkok"

	svc := service.NewPlacesService(NewMockHospitalRepository(), geocoder, nil)

	address, err := svc.ReverseGeocode(context.Background(), domain.Coordinate{Lat: 13.7594, Lng: 100.4863})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if address != "2 Wanglang Rd, Bangkok" {
		t.Errorf("unexpected address: %q", address)
	}
}

func TestPlaces_Hospitals_ReturnsDirectory(t *testing.T) {
	t.Parallel()

	hospitalRepo := NewMockHospitalRepository()
	seedHospitals(hospitalRepo)

	svc := service.NewPlacesService(hospitalRepo, nil, nil)

	hospitals, err := svc.Hospitals(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(hospitals) != 2 {
		t.Errorf("expected 2 hospitals, got %d", len(hospitals))
	}
}
