//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedSentEvent inserts a dedup ledger row directly, bypassing the dispatch
// path, for tests that need pre-existing sent state.
func SeedSentEvent(t *testing.T, db DBLike, date time.Time, eventKey, eventType, eventName string, priority int, sentBy string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO notification_sent_events (date, event_key, event_type, event_name, event_priority, sent_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (date, event_key) DO NOTHING`,
		date.Format(time.DateOnly), eventKey, eventType, eventName, priority, sentBy)
	require.NoError(t, err)
}

// CountSentEvents returns the ledger row count for a date.
func CountSentEvents(t *testing.T, db DBLike, date time.Time) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notification_sent_events WHERE date = $1`,
		date.Format(time.DateOnly)).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
