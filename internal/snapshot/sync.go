package snapshot

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Fetcher is the read side of the remote backend.
type Fetcher interface {
	Entities(ctx context.Context) (json.RawMessage, error)
	EntityDetail(ctx context.Context, slug string) (json.RawMessage, error)
	EcosystemTotals(ctx context.Context) (json.RawMessage, error)
	URL() string
}

// Syncer pulls the remote backend into the store.
type Syncer struct {
	Fetcher Fetcher
	Store   *Store
	Logger  *zap.Logger
}

// Result counts what one sync stored.
type Result struct {
	Entities int
	Details  int
	Totals   bool
}

// Sync stores the entity list, the totals and the detail of each slug. A
// failure stops the sync and returns the backend error unchanged.
func (s *Syncer) Sync(ctx context.Context, slugs []string) (Result, error) {
	var res Result
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	entities, err := s.Fetcher.Entities(ctx)
	if err != nil {
		return res, err
	}
	if err := s.save(ctx, KindEntities, "", entities); err != nil {
		return res, err
	}
	var list []json.RawMessage
	if json.Unmarshal(entities, &list) == nil {
		res.Entities = len(list)
	}
	logger.Info("synced entities", zap.Int("count", res.Entities))

	totals, err := s.Fetcher.EcosystemTotals(ctx)
	if err != nil {
		return res, err
	}
	if err := s.save(ctx, KindTotals, "", totals); err != nil {
		return res, err
	}
	res.Totals = true

	for _, slug := range slugs {
		detail, err := s.Fetcher.EntityDetail(ctx, slug)
		if err != nil {
			return res, err
		}
		if err := s.save(ctx, KindEntity, slug, detail); err != nil {
			return res, err
		}
		res.Details++
		logger.Debug("synced entity detail", zap.String("slug", slug))
	}
	return res, nil
}

func (s *Syncer) save(ctx context.Context, kind Kind, subject string, payload json.RawMessage) error {
	snap := &Snapshot{Kind: kind, Subject: subject, SourceURL: s.Fetcher.URL(), Payload: payload}
	if err := s.Store.Save(ctx, snap); err != nil {
		return fmt.Errorf("caching %s: %w", kind, err)
	}
	return nil
}
