package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cosmic-courier/internal/domain/cosmic"
	"cosmic-courier/internal/domain/ephemeris"
	"cosmic-courier/internal/pkg/config"
	"cosmic-courier/internal/pkg/errs"
)

// Client fetches raw positions from the ephemeris HTTP service. It implements
// ephemeris.Source.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.EphemerisConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type positionsResponse struct {
	Timestamp time.Time               `json:"timestamp"`
	Bodies    map[string]bodyPosition `json:"bodies"`
	Moon      moonState               `json:"moon"`
}

type bodyPosition struct {
	Longitude float64 `json:"longitude"`
}

type moonState struct {
	Illumination float64 `json:"illumination"`
	PhaseAngle   float64 `json:"phaseAngle"`
}

func (c *Client) Read(ctx context.Context, at time.Time) (ephemeris.Reading, error) {
	endpoint := fmt.Sprintf("%s/positions?at=%s", c.baseURL, url.QueryEscape(at.Format(time.RFC3339)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ephemeris.Reading{}, errs.Wrap(err, "build ephemeris request")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return ephemeris.Reading{}, errs.Wrap(err, "fetch ephemeris positions")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return ephemeris.Reading{}, errs.New(fmt.Sprintf("ephemeris service returned status %d", res.StatusCode))
	}

	var body positionsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return ephemeris.Reading{}, errs.Wrap(err, "decode ephemeris response")
	}

	longitudes := make(map[cosmic.Body]float64, len(body.Bodies))
	for name, p := range body.Bodies {
		longitudes[cosmic.Body(name)] = p.Longitude
	}

	return ephemeris.Reading{
		Timestamp:               at,
		Longitudes:              longitudes,
		MoonIlluminationPercent: body.Moon.Illumination,
		MoonPhaseAngle:          body.Moon.PhaseAngle,
	}, nil
}
