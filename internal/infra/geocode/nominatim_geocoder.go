package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"plaza/config"
	"plaza/internal/domain/entity"
	"plaza/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultNominatimEndpoint = "https://nominatim.openstreetmap.org"
	defaultGeocodeTimeout    = 10 * time.Second
)

// nominatimGeocoder resolves addresses through a Nominatim instance.
// It is the zero-key fallback behind the primary provider.
type nominatimGeocoder struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

// NewNominatimGeocoder is the constructor for nominatimGeocoder.
func NewNominatimGeocoder(cfg *config.Config) service.Geocoder {
	endpoint := defaultNominatimEndpoint
	userAgent := ""
	timeout := defaultGeocodeTimeout

	if cfg.Geocoding != nil {
		if cfg.Geocoding.NominatimEndpoint != "" {
			endpoint = cfg.Geocoding.NominatimEndpoint
		}
		userAgent = cfg.Geocoding.NominatimUserAgent
		if cfg.Geocoding.Timeout > 0 {
			timeout = cfg.Geocoding.Timeout
		}
	}

	return &nominatimGeocoder{
		endpoint:  endpoint,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// nominatimResult is the subset of the Nominatim search response we read.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves the query through the Nominatim search endpoint.
func (g *nominatimGeocoder) Geocode(ctx context.Context, query string) (*entity.Location, error) {
	searchURL := g.endpoint + "/search?" + url.Values{
		"q":      {query},
		"format": {"json"},
		"limit":  {"1"},
	}.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build nominatim request")
	}
	if g.userAgent != "" {
		// Nominatim's usage policy requires an identifying User-Agent.
		request.Header.Set("User-Agent", g.userAgent)
	}

	response, err := g.client.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, "nominatim request failed")
	}
	defer response.Body.Close()

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return nil, errors.Wrapf(service.ErrGeocodeDenied, "nominatim returned status %d", response.StatusCode)
	default:
		return nil, errors.Errorf("nominatim returned status %d", response.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(response.Body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "failed to decode nominatim response")
	}

	if len(results) == 0 {
		return nil, service.ErrGeocodeNoResults
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid latitude in nominatim response")
	}

	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid longitude in nominatim response")
	}

	return &entity.Location{Lat: lat, Lng: lng}, nil
}

// Name identifies the provider in logs and errors.
func (g *nominatimGeocoder) Name() string {
	return "nominatim"
}
