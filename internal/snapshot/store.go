// Package snapshot caches remote backend responses in the local database.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blackhillsconsortium/annualreport/internal/db"
)

// Kind names what a snapshot holds.
type Kind string

const (
	KindEntities Kind = "entities"
	KindEntity   Kind = "entity"
	KindTotals   Kind = "totals"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindEntities, KindEntity, KindTotals:
		return k, nil
	}
	return "", fmt.Errorf("unknown snapshot kind %q", s)
}

// ErrNotFound is returned when no snapshot of a kind has been stored.
var ErrNotFound = errors.New("snapshot not found")

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Snapshot is one cached backend response.
type Snapshot struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Subject   string          `json:"subject,omitempty"`
	SourceURL string          `json:"sourceUrl"`
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Store reads and writes snapshots in the local database.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Save inserts s. A missing ID or FetchedAt is filled in.
func (s *Store) Save(ctx context.Context, snap *Snapshot) error {
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = s.now()
	}
	if !json.Valid(snap.Payload) {
		return fmt.Errorf("saving %s snapshot: payload is not valid JSON", snap.Kind)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, kind, subject, source_url, payload, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		snap.ID, string(snap.Kind), snap.Subject, snap.SourceURL, string(snap.Payload),
		snap.FetchedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot of kind for subject. Subject is
// the entity slug for KindEntity and empty otherwise.
func (s *Store) Latest(ctx context.Context, kind Kind, subject string) (Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, subject, source_url, payload, fetched_at
		FROM snapshots
		WHERE kind = ? AND subject = ?
		ORDER BY fetched_at DESC, rowid DESC
		LIMIT 1`, string(kind), subject)

	snap, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%s %q: %w", kind, subject, ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("getting snapshot: %w", err)
	}
	return snap, nil
}

// Prune deletes snapshots fetched before the cutoff and reports how many
// were removed.
func (s *Store) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE fetched_at < ?", before.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("pruning snapshots: %w", err)
	}
	return res.RowsAffected()
}

func scan(row *sql.Row) (Snapshot, error) {
	var (
		snap          Snapshot
		kind, payload string
		fetched       string
	)
	if err := row.Scan(&snap.ID, &kind, &snap.Subject, &snap.SourceURL, &payload, &fetched); err != nil {
		return Snapshot{}, err
	}
	snap.Kind = Kind(kind)
	snap.Payload = json.RawMessage(payload)
	if t, err := time.Parse(timeLayout, fetched); err == nil {
		snap.FetchedAt = t
	}
	return snap, nil
}
