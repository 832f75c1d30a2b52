//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"cosmic-courier/internal/domain/cosmic"
	"cosmic-courier/internal/pkg/clock"
	"cosmic-courier/internal/pkg/config"
	"cosmic-courier/internal/usecase/queries"
	queriesmock "cosmic-courier/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSnapshotQueries(t *testing.T, source *queriesmock.MockSnapshotSource) queries.SnapshotQueries {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, time.September, 22, 15, 0, 0, 0, time.UTC))
	cronCfg := config.CronConfig{PreviewTopN: 5}
	notifyCfg := config.NotifyConfig{Priority8Scope: "seasonal", IngressPriority: 4, RetrogradePriority: 6}
	return queries.NewSnapshotQueries(source, clk, cronCfg, notifyCfg)
}

func TestSnapshotQueries_CosmicSnapshot(t *testing.T) {
	snapshot := cosmic.Snapshot{
		Positions: map[cosmic.Body]cosmic.Position{
			cosmic.Sun:  {Longitude: 180.3, Sign: "Libra"},
			cosmic.Moon: {Longitude: 215.0, Sign: "Scorpio"},
		},
		Moon: cosmic.ClassifyMoonPhase(10.0, 55.0, time.September),
	}

	t.Run("empty date uses the current instant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockSnapshotSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, at time.Time) (cosmic.Snapshot, error) {
				assert.Equal(t, 15, at.Hour())
				return snapshot, nil
			})

		view, err := newSnapshotQueries(t, source).CosmicSnapshot(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, "2026-09-22", view.Date)
		assert.Equal(t, "Autumn Equinox", view.PrimaryEvent.Name)
		assert.Equal(t, "seasonal", view.PrimaryEvent.Type)
		assert.Equal(t, 8, view.PrimaryEvent.Priority)
		assert.Contains(t, view.Highlights, "Autumn Equinox")
		assert.Contains(t, view.Highlights, "Sun enters Libra")
		assert.Contains(t, view.HoroscopeSnippet, "Moon in Scorpio")
		assert.Contains(t, view.HoroscopeSnippet, "transforming and intense")

		sun := view.AstronomicalData.Planets["Sun"]
		assert.Equal(t, "Libra", sun.Sign)
		assert.InDelta(t, 180.3, sun.Longitude, 1e-9)
		assert.Equal(t, "Waxing Gibbous", view.AstronomicalData.MoonPhase.Name)
		assert.InDelta(t, 10.0, view.AstronomicalData.MoonPhase.Age, 1e-9)
	})

	t.Run("explicit date reads at UTC noon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockSnapshotSource(ctrl)
		expected := time.Date(2026, time.April, 3, 12, 0, 0, 0, time.UTC)
		source.EXPECT().Snapshot(gomock.Any(), expected).Return(snapshot, nil)

		view, err := newSnapshotQueries(t, source).CosmicSnapshot(context.Background(), "2026-04-03")
		require.NoError(t, err)
		assert.Equal(t, "2026-04-03", view.Date)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockSnapshotSource(ctrl)

		_, err := newSnapshotQueries(t, source).CosmicSnapshot(context.Background(), "03-04-2026")
		assert.ErrorIs(t, err, queries.ErrInvalidSnapshotDate)
	})

	t.Run("source failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockSnapshotSource(ctrl)
		source.EXPECT().Snapshot(gomock.Any(), gomock.Any()).
			Return(cosmic.Snapshot{}, assert.AnError)

		_, err := newSnapshotQueries(t, source).CosmicSnapshot(context.Background(), "")
		assert.Error(t, err)
	})
}
