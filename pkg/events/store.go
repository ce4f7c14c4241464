package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// StoredEvent is one durable row from the events table.
type StoredEvent struct {
	ID        int64
	ScopeID   string
	Channel   string
	Payload   map[string]any
	CreatedAt time.Time
}

// CatchupQuerier queries durable events for gap replay and truncated
// payload recovery. Implemented by Store.
type CatchupQuerier interface {
	GetEventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]StoredEvent, error)
	GetEvent(ctx context.Context, id int64) (*StoredEvent, error)
}

// Store reads and prunes the events table. Raw SQL because events is
// not an ent entity: written inside publisher transactions, read by id
// ranges only.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over the shared database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetEventsSince returns up to limit events on a channel with id greater
// than sinceID, in id order.
func (s *Store) GetEventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]StoredEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, scope_id, channel, payload, created_at
		 FROM events WHERE channel = $1 AND id > $2 ORDER BY id ASC LIMIT $3`,
		channel, sinceID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events since %d: %w", sinceID, err)
	}
	defer rows.Close()

	var result []StoredEvent
	for rows.Next() {
		evt, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *evt)
	}
	return result, rows.Err()
}

// GetEvent returns one event by id, or nil when it does not exist.
func (s *Store) GetEvent(ctx context.Context, id int64) (*StoredEvent, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, scope_id, channel, payload, created_at FROM events WHERE id = $1`, id)

	evt, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return evt, err
}

// PruneBefore deletes events created before the cutoff and returns the
// number of rows removed. Called by the retention sweeper.
func (s *Store) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*StoredEvent, error) {
	var evt StoredEvent
	var payloadBytes []byte
	if err := row.Scan(&evt.ID, &evt.ScopeID, &evt.Channel, &payloadBytes, &evt.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan event row: %w", err)
	}
	if err := json.Unmarshal(payloadBytes, &evt.Payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event %d payload: %w", evt.ID, err)
	}
	return &evt, nil
}
