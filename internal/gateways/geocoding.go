package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// GeoCodingGateway resolves a postal address to coordinates. Used only when
// an incoming event carries an address but no position.
type GeoCodingGateway interface {
	ResolveAddressLatLng(ctx context.Context, address *mmodel.Address) *mmodel.MapPoint
}

// MapboxGeoCodingGateway resolves addresses through the Mapbox geocoding API.
type MapboxGeoCodingGateway struct {
	AccessToken string
	BaseURL     string
	Client      *http.Client
}

// NewMapboxGeoCodingGateway creates a MapboxGeoCodingGateway.
func NewMapboxGeoCodingGateway(accessToken string) *MapboxGeoCodingGateway {
	return &MapboxGeoCodingGateway{
		AccessToken: accessToken,
		BaseURL:     "https://api.mapbox.com/geocoding/v5/mapbox.places",
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type mapboxResponse struct {
	Features []struct {
		Center []float64 `json:"center"`
	} `json:"features"`
}

// ResolveAddressLatLng returns the position of the address, or nil when the
// lookup fails or yields nothing. Failures are logged, never propagated.
func (g *MapboxGeoCodingGateway) ResolveAddressLatLng(ctx context.Context, address *mmodel.Address) *mmodel.MapPoint {
	logger := pkg.NewLoggerFromContext(ctx)

	if g.AccessToken == "" || address == nil || address.IsEmpty() {
		return nil
	}

	parts := []string{address.Street, address.Zip, address.City, address.Country, address.State}
	queryParts := make([]string, 0, len(parts))

	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			queryParts = append(queryParts, strings.TrimSpace(part))
		}
	}

	endpoint := fmt.Sprintf("%s/%s.json?access_token=%s&limit=1",
		g.BaseURL, url.PathEscape(strings.Join(queryParts, ", ")), url.QueryEscape(g.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Errorf("Failed to build geocoding request: %v", err)

		return nil
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		logger.Errorf("Failed to resolve address: %v", err)

		return nil
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		logger.Errorf("Geocoding request failed with status %d", resp.StatusCode)

		return nil
	}

	var payload mapboxResponse

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Errorf("Failed to decode geocoding response: %v", err)

		return nil
	}

	if len(payload.Features) == 0 || len(payload.Features[0].Center) < 2 {
		return nil
	}

	// Mapbox returns (lng, lat).
	pos, err := mmodel.NewMapPoint(payload.Features[0].Center[1], payload.Features[0].Center[0])
	if err != nil {
		return nil
	}

	return &pos
}
