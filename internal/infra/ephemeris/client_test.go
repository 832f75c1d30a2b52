//go:build unit

package ephemeris_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cosmic-courier/internal/domain/cosmic"
	infraephemeris "cosmic-courier/internal/infra/ephemeris"
	"cosmic-courier/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Read(t *testing.T) {
	at := time.Date(2026, time.April, 3, 12, 0, 0, 0, time.UTC)

	t.Run("decodes positions and moon state", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/positions", r.URL.Path)
			assert.Equal(t, at.Format(time.RFC3339), r.URL.Query().Get("at"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"timestamp": "2026-04-03T12:00:00Z",
				"bodies": {
					"Sun": {"longitude": 13.4},
					"Mercury": {"longitude": 28.1}
				},
				"moon": {"illumination": 99.8, "phaseAngle": 182.9}
			}`))
		}))
		defer server.Close()

		client := infraephemeris.NewClient(config.EphemerisConfig{BaseURL: server.URL, Timeout: time.Second})

		reading, err := client.Read(context.Background(), at)
		require.NoError(t, err)

		assert.InDelta(t, 13.4, reading.Longitudes[cosmic.Sun], 1e-9)
		assert.InDelta(t, 28.1, reading.Longitudes[cosmic.Mercury], 1e-9)
		assert.InDelta(t, 99.8, reading.MoonIlluminationPercent, 1e-9)
		assert.InDelta(t, 182.9, reading.MoonPhaseAngle, 1e-9)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := infraephemeris.NewClient(config.EphemerisConfig{BaseURL: server.URL, Timeout: time.Second})

		_, err := client.Read(context.Background(), at)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("unreachable host is an error", func(t *testing.T) {
		client := infraephemeris.NewClient(config.EphemerisConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})

		_, err := client.Read(context.Background(), at)
		assert.Error(t, err)
	})
}
