package commands

import (
	"context"
	"log/slog"
	"time"

	"cosmic-courier/internal/domain/cosmic"
	"cosmic-courier/internal/infra/push"
	"cosmic-courier/internal/infra/repository"
	"cosmic-courier/internal/pkg/clock"
	"cosmic-courier/internal/pkg/config"
	"cosmic-courier/internal/pkg/errs"
)

// SnapshotBuilder produces the classified sky state for an instant.
type SnapshotBuilder interface {
	Snapshot(ctx context.Context, at time.Time) (cosmic.Snapshot, error)
}

// SentEventsStore is the per-date idempotency ledger. Every operation is
// fail-open; the orchestrator never treats a store problem as fatal.
type SentEventsStore interface {
	GetSentEvents(ctx context.Context, date time.Time) repository.SentKeys
	TryMarkSent(ctx context.Context, date time.Time, e cosmic.Event, sentBy repository.SentBy) repository.ClaimResult
	CleanupOldDates(ctx context.Context, today time.Time, keepDays int) error
}

// PushSender broadcasts one rendered notification.
type PushSender interface {
	Send(ctx context.Context, n cosmic.Notification) (push.Result, error)
}

// SendOutcome is the per-event record in a dispatch summary.
type SendOutcome struct {
	EventName      string `json:"eventName"`
	EventKey       string `json:"eventKey"`
	Success        bool   `json:"success"`
	RecipientCount int    `json:"recipientCount"`
	Error          string `json:"error,omitempty"`
}

// EventSummary is the compact primary-event view in a dispatch summary.
type EventSummary struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Priority int    `json:"priority"`
	Energy   string `json:"energy,omitempty"`
}

// DispatchResult is the full run summary returned to the cron caller.
type DispatchResult struct {
	NotificationsSent int           `json:"notificationsSent"`
	NewEventsCount    int           `json:"newEventsCount"`
	TotalEventsToday  int           `json:"totalEventsToday"`
	AlreadySentToday  int           `json:"alreadySentToday"`
	PrimaryEvent      *EventSummary `json:"primaryEvent,omitempty"`
	Results           []SendOutcome `json:"results"`
	Suppressed        bool          `json:"suppressed,omitempty"`
	CheckTime         time.Time     `json:"checkTime"`
}

type DispatchCommands interface {
	Run(ctx context.Context, sentBy repository.SentBy, topN int) (*DispatchResult, error)
}

type dispatchUseCaseImpl struct {
	snapshots SnapshotBuilder
	store     SentEventsStore
	sender    PushSender
	clock     clock.Clock
	logger    *slog.Logger
	cronCfg   config.CronConfig
	notifyCfg config.NotifyConfig
}

func NewDispatchUseCase(
	snapshots SnapshotBuilder,
	store SentEventsStore,
	sender PushSender,
	clk clock.Clock,
	logger *slog.Logger,
	cronCfg config.CronConfig,
	notifyCfg config.NotifyConfig,
) DispatchCommands {
	return &dispatchUseCaseImpl{
		snapshots: snapshots,
		store:     store,
		sender:    sender,
		clock:     clk,
		logger:    logger,
		cronCfg:   cronCfg,
		notifyCfg: notifyCfg,
	}
}

// Run executes one full dispatch sweep: cleanup, snapshot, detection,
// dedup filtering, then claim-and-send per event. A snapshot failure aborts
// the run; a store failure never does.
func (uc *dispatchUseCaseImpl) Run(ctx context.Context, sentBy repository.SentBy, topN int) (*DispatchResult, error) {
	now := uc.clock.Now().UTC()
	result := &DispatchResult{Results: []SendOutcome{}, CheckTime: now}

	if uc.cronCfg.QuietHours && inQuietHours(now, uc.cronCfg.QuietStartHour, uc.cronCfg.QuietEndHour) {
		uc.logger.Info("dispatch suppressed during quiet hours", slog.Time("check_time", now))
		result.Suppressed = true
		return result, nil
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if err := uc.store.CleanupOldDates(ctx, today, uc.cronCfg.KeepDays); err != nil {
		uc.logger.Warn("sent events cleanup failed, continuing", slog.String("error", err.Error()))
	}

	snapshot, err := uc.snapshots.Snapshot(ctx, now)
	if err != nil {
		return nil, errs.Wrap(err, "build cosmic snapshot")
	}

	ranked := cosmic.Aggregate(snapshot, uc.notifyCfg.IngressPriority, uc.notifyCfg.RetrogradePriority)
	events := ranked.All()
	result.TotalEventsToday = len(events)
	if len(events) > 0 {
		result.PrimaryEvent = summarize(events[0])
	}

	sent := uc.store.GetSentEvents(ctx, today)
	if !sent.Available {
		uc.logger.Warn("dedup store unavailable, proceeding without duplicate protection")
	}

	policy := cosmic.WorthinessPolicy{Scope: cosmic.Priority8Scope(uc.notifyCfg.Priority8Scope)}

	// Dedup filtering happens before the cap so that already-sent events do
	// not consume a send slot.
	var candidates []cosmic.Event
	for _, e := range ranked.TopWorthy(policy, len(events)) {
		if sent.Contains(e.Key()) {
			result.AlreadySentToday++
			continue
		}
		candidates = append(candidates, e)
	}
	result.NewEventsCount = len(candidates)
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	moonSign := moonSignOf(snapshot)
	for _, e := range candidates {
		outcome := uc.dispatchOne(ctx, today, e, sentBy, moonSign)
		if outcome == nil {
			// another invocation claimed the key first
			result.AlreadySentToday++
			continue
		}
		result.Results = append(result.Results, *outcome)
		if outcome.Success {
			result.NotificationsSent++
		}
	}

	return result, nil
}

// dispatchOne claims the event key, then sends. The claim happens first so
// that of two concurrent invocations only one proceeds; nil means the key
// was already taken.
func (uc *dispatchUseCaseImpl) dispatchOne(ctx context.Context, today time.Time, e cosmic.Event, sentBy repository.SentBy, moonSign cosmic.Sign) *SendOutcome {
	claim := uc.store.TryMarkSent(ctx, today, e, sentBy)
	if claim.Available && !claim.Inserted {
		uc.logger.Info("event already claimed, skipping send", slog.String("event_key", e.Key()))
		return nil
	}

	outcome := &SendOutcome{EventName: e.Name, EventKey: e.Key()}

	res, err := uc.sender.Send(ctx, cosmic.Classify(e, moonSign))
	if err != nil {
		uc.logger.Error("push send failed",
			slog.String("event_key", e.Key()),
			slog.String("error", err.Error()))
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Success = res.Success
	outcome.RecipientCount = res.RecipientCount
	return outcome
}

func summarize(e cosmic.Event) *EventSummary {
	return &EventSummary{
		Name:     e.Name,
		Type:     string(e.Type),
		Priority: e.Priority,
		Energy:   e.Energy,
	}
}

func moonSignOf(s cosmic.Snapshot) cosmic.Sign {
	if p, ok := s.Position(cosmic.Moon); ok {
		return p.Sign
	}
	return ""
}

// inQuietHours handles windows that cross midnight, e.g. 22 to 8.
func inQuietHours(now time.Time, startHour, endHour int) bool {
	h := now.Hour()
	if startHour == endHour {
		return false
	}
	if startHour < endHour {
		return h >= startHour && h < endHour
	}
	return h >= startHour || h < endHour
}
