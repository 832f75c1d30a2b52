package repository

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cosmic-courier/internal/domain/cosmic"
	"cosmic-courier/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SentBy records which dispatch path wrote a row.
type SentBy string

const (
	SentByFourHourly SentBy = "4-hourly"
	SentByDaily      SentBy = "daily"
)

// SentKeys is the typed fail-open read result. Available=false means the
// store could not answer; the caller must treat that as "no known duplicates"
// rather than an error, since the policy prefers over-notifying to blocking
// notifications entirely.
type SentKeys struct {
	Keys      map[string]struct{}
	Available bool
}

func (s SentKeys) Contains(key string) bool {
	_, ok := s.Keys[key]
	return ok
}

// ClaimResult is the typed outcome of an insert-first dedup claim.
// Available=false means the store could not record the claim; the caller
// proceeds to send (fail-open). Inserted=false with Available=true means
// another invocation already claimed the key.
type ClaimResult struct {
	Inserted  bool
	Available bool
}

const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS notification_sent_events (
	id SERIAL PRIMARY KEY,
	date DATE NOT NULL,
	event_key TEXT NOT NULL,
	event_type TEXT NOT NULL,
	event_name TEXT NOT NULL,
	event_priority INTEGER NOT NULL,
	sent_by TEXT NOT NULL,
	sent_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (date, event_key)
);
CREATE INDEX IF NOT EXISTS idx_notification_sent_events_date ON notification_sent_events (date);
CREATE INDEX IF NOT EXISTS idx_notification_sent_events_event_key ON notification_sent_events (event_key);
CREATE INDEX IF NOT EXISTS idx_notification_sent_events_sent_at ON notification_sent_events (sent_at);
`

// SentEventsRepository is the per-date idempotency ledger behind dispatch.
// Schema creation is lazy and guarded: the first operation in the process
// lifetime runs it, and a creation failure leaves the store unavailable for
// the rest of the process rather than blocking any caller.
type SentEventsRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger

	schemaOnce  sync.Once
	schemaReady bool
}

func NewSentEventsRepository(pool *pgxpool.Pool, logger *slog.Logger) *SentEventsRepository {
	return &SentEventsRepository{pool: pool, logger: logger}
}

func (r *SentEventsRepository) ensureSchema(ctx context.Context) bool {
	r.schemaOnce.Do(func() {
		if _, err := r.pool.Exec(ctx, createSchemaSQL); err != nil {
			r.logger.Error("sent events schema creation failed, continuing without dedup store",
				slog.String("error", err.Error()))
			return
		}
		r.schemaReady = true
	})
	return r.schemaReady
}

// GetSentEvents returns the keys already recorded for a date. Never fails:
// any store problem comes back as Available=false with an empty set.
func (r *SentEventsRepository) GetSentEvents(ctx context.Context, date time.Time) SentKeys {
	unavailable := SentKeys{Keys: map[string]struct{}{}, Available: false}
	if !r.ensureSchema(ctx) {
		return unavailable
	}

	rows, err := r.pool.Query(ctx,
		`SELECT event_key FROM notification_sent_events WHERE date = $1`,
		date.Format(time.DateOnly),
	)
	if err != nil {
		r.logger.Warn("failed to read sent events, treating as none sent",
			slog.String("error", err.Error()))
		return unavailable
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			r.logger.Warn("failed to scan sent event key, treating as none sent",
				slog.String("error", err.Error()))
			return unavailable
		}
		keys[key] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		r.logger.Warn("failed to iterate sent events, treating as none sent",
			slog.String("error", err.Error()))
		return unavailable
	}

	return SentKeys{Keys: keys, Available: true}
}

// TryMarkSent claims an event key for a date before the send happens. The
// unique index on (date, event_key) is the sole concurrency control: of two
// concurrent invocations only one insert takes effect, and only that one
// proceeds to send.
func (r *SentEventsRepository) TryMarkSent(ctx context.Context, date time.Time, e cosmic.Event, sentBy SentBy) ClaimResult {
	if !r.ensureSchema(ctx) {
		return ClaimResult{Available: false}
	}

	tag, err := r.pool.Exec(ctx,
		`INSERT INTO notification_sent_events (date, event_key, event_type, event_name, event_priority, sent_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (date, event_key) DO NOTHING`,
		date.Format(time.DateOnly), e.Key(), string(e.Type), e.Name, e.Priority, string(sentBy),
	)
	if err != nil {
		r.logger.Warn("failed to mark event as sent",
			slog.String("event_key", e.Key()),
			slog.String("error", err.Error()))
		return ClaimResult{Available: false}
	}

	return ClaimResult{Inserted: tag.RowsAffected() > 0, Available: true}
}

// CleanupOldDates deletes rows older than the retention window, measured
// back from the caller's notion of today. keepDays=1 keeps today and
// yesterday; yesterday's buffer absorbs timezone and midnight edge cases.
func (r *SentEventsRepository) CleanupOldDates(ctx context.Context, today time.Time, keepDays int) error {
	if !r.ensureSchema(ctx) {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "dedup store unavailable for cleanup", nil)
	}

	cutoff := today.AddDate(0, 0, -keepDays)
	_, err := r.pool.Exec(ctx,
		`DELETE FROM notification_sent_events WHERE date < $1`,
		cutoff.Format(time.DateOnly),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to clean up old sent events", err)
	}
	return nil
}
