package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"safepath/internal/domain"
)

// Client resolves queries against a Nominatim-compatible geocoding endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geocoding client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type searchResult struct {
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Geocode returns location candidates for a free-text query.
func (c *Client) Geocode(ctx context.Context, query string) ([]domain.Place, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&limit=10&q=%s", c.baseURL, url.QueryEscape(query))

	var results []searchResult
	if err := c.getJSON(ctx, endpoint, &results); err != nil {
		return nil, err
	}

	places := make([]domain.Place, 0, len(results))
	for _, r := range results {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lng, errLng := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLng != nil {
			continue
		}

		name := r.Name
		if name == "" {
			name = r.DisplayName
		}
		places = append(places, domain.Place{
			Name:    name,
			Address: r.DisplayName,
			Lat:     lat,
			Lng:     lng,
		})
	}
	return places, nil
}

// ReverseGeocode returns the display address closest to a coordinate.
func (c *Client) ReverseGeocode(ctx context.Context, coord domain.Coordinate) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", c.baseURL, coord.Lat, coord.Lng)

	var result searchResult
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return "", err
	}
	return result.DisplayName, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "safepath/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
