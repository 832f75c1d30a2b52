package queries

import (
	"context"
	"fmt"
	"time"

	"cosmic-courier/internal/domain/cosmic"
	"cosmic-courier/internal/pkg/clock"
	"cosmic-courier/internal/pkg/config"
	"cosmic-courier/internal/pkg/errs"
)

var ErrInvalidSnapshotDate = errs.New("invalid snapshot date")

// PlanetView is one body's state in the preview payload.
type PlanetView struct {
	Sign       string  `json:"sign"`
	Longitude  float64 `json:"longitude"`
	Retrograde bool    `json:"retrograde"`
}

type MoonPhaseView struct {
	Name         string  `json:"name"`
	Illumination float64 `json:"illumination"`
	Age          float64 `json:"age"`
}

type PrimaryEventView struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Priority int    `json:"priority"`
	Energy   string `json:"energy,omitempty"`
}

type AstronomicalDataView struct {
	Planets      map[string]PlanetView `json:"planets"`
	MoonPhase    MoonPhaseView         `json:"moonPhase"`
	PrimaryEvent PrimaryEventView      `json:"primaryEvent"`
}

// SnapshotView is the interactive preview read model.
type SnapshotView struct {
	Date             string               `json:"date"`
	PrimaryEvent     PrimaryEventView     `json:"primaryEvent"`
	Highlights       []string             `json:"highlights"`
	HoroscopeSnippet string               `json:"horoscopeSnippet"`
	AstronomicalData AstronomicalDataView `json:"astronomicalData"`
}

type SnapshotQueries interface {
	CosmicSnapshot(ctx context.Context, date string) (*SnapshotView, error)
}

// SnapshotSource mirrors the dispatch-side snapshot builder; the preview
// reads the same sky the sweep does.
type SnapshotSource interface {
	Snapshot(ctx context.Context, at time.Time) (cosmic.Snapshot, error)
}

type snapshotQueriesImpl struct {
	source    SnapshotSource
	clock     clock.Clock
	cronCfg   config.CronConfig
	notifyCfg config.NotifyConfig
}

func NewSnapshotQueries(source SnapshotSource, clk clock.Clock, cronCfg config.CronConfig, notifyCfg config.NotifyConfig) SnapshotQueries {
	return &snapshotQueriesImpl{source: source, clock: clk, cronCfg: cronCfg, notifyCfg: notifyCfg}
}

// CosmicSnapshot computes the preview for a date. An empty date means today;
// an explicit date is read at UTC noon so the result is stable across the day.
func (q *snapshotQueriesImpl) CosmicSnapshot(ctx context.Context, date string) (*SnapshotView, error) {
	at := q.clock.Now().UTC()
	if date != "" {
		parsed, err := time.Parse(time.DateOnly, date)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "parse snapshot date"), ErrInvalidSnapshotDate)
		}
		at = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 12, 0, 0, 0, time.UTC)
	}

	snapshot, err := q.source.Snapshot(ctx, at)
	if err != nil {
		return nil, errs.Wrap(err, "build cosmic snapshot")
	}

	ranked := cosmic.Aggregate(snapshot, q.notifyCfg.IngressPriority, q.notifyCfg.RetrogradePriority)
	primary := ranked.Primary

	topN := q.cronCfg.PreviewTopN
	events := ranked.All()
	if len(events) > topN {
		events = events[:topN]
	}
	highlights := make([]string, 0, len(events))
	for _, e := range events {
		highlights = append(highlights, e.Name)
	}

	planets := make(map[string]PlanetView, len(snapshot.Positions))
	for body, p := range snapshot.Positions {
		planets[string(body)] = PlanetView{
			Sign:       string(p.Sign),
			Longitude:  p.Longitude,
			Retrograde: p.Retrograde,
		}
	}

	return &SnapshotView{
		Date:             at.Format(time.DateOnly),
		PrimaryEvent:     primaryView(primary),
		Highlights:       highlights,
		HoroscopeSnippet: horoscopeSnippet(snapshot, primary),
		AstronomicalData: AstronomicalDataView{
			Planets: planets,
			MoonPhase: MoonPhaseView{
				Name:         snapshot.Moon.Name,
				Illumination: snapshot.Moon.IlluminationPercent,
				Age:          snapshot.Moon.AgeDays,
			},
			PrimaryEvent: primaryView(primary),
		},
	}, nil
}

func primaryView(e cosmic.Event) PrimaryEventView {
	return PrimaryEventView{
		Name:     e.Name,
		Type:     string(e.Type),
		Priority: e.Priority,
		Energy:   e.Energy,
	}
}

func horoscopeSnippet(s cosmic.Snapshot, primary cosmic.Event) string {
	snippet := fmt.Sprintf("%s sets the tone for the day", primary.Name)
	if moon, ok := s.Position(cosmic.Moon); ok {
		snippet = fmt.Sprintf("%s, with the Moon in %s bringing %s energy",
			snippet, moon.Sign, cosmic.SignDescription(moon.Sign))
	}
	return snippet + "."
}
