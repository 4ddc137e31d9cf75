package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackhillsconsortium/annualreport/internal/db"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestSaveAndLatest(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, &Snapshot{Kind: KindTotals, Payload: json.RawMessage(`{"v":1}`), FetchedAt: base}))
	require.NoError(t, s.Save(ctx, &Snapshot{Kind: KindTotals, Payload: json.RawMessage(`{"v":2}`), FetchedAt: base.Add(time.Hour)}))
	require.NoError(t, s.Save(ctx, &Snapshot{Kind: KindEntity, Subject: "bhc", Payload: json.RawMessage(`{"slug":"bhc"}`), FetchedAt: base.Add(2 * time.Hour)}))

	got, err := s.Latest(ctx, KindTotals, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got.Payload))
	assert.Equal(t, base.Add(time.Hour), got.FetchedAt)
	assert.NotEmpty(t, got.ID)

	detail, err := s.Latest(ctx, KindEntity, "bhc")
	require.NoError(t, err)
	assert.Equal(t, "bhc", detail.Subject)
}

func TestLatestNotFound(t *testing.T) {
	s := newStore(t)
	_, err := s.Latest(context.Background(), KindEntities, "")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSaveRejectsInvalidJSON(t *testing.T) {
	s := newStore(t)
	err := s.Save(context.Background(), &Snapshot{Kind: KindTotals, Payload: json.RawMessage("{")})
	assert.Error(t, err)
}

func TestPrune(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Save(ctx, &Snapshot{Kind: KindTotals, Payload: json.RawMessage(`{}`), FetchedAt: base.AddDate(0, 0, i)}))
	}

	n, err := s.Prune(ctx, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("entities")
	require.NoError(t, err)
	assert.Equal(t, KindEntities, k)

	_, err = ParseKind("users")
	assert.Error(t, err)
}

type fakeFetcher struct {
	failDetail error
}

func (fakeFetcher) URL() string { return "https://backend.test" }
func (fakeFetcher) Entities(context.Context) (json.RawMessage, error) {
	return json.RawMessage(`[{"slug":"growwise"},{"slug":"bhc"}]`), nil
}
func (fakeFetcher) EcosystemTotals(context.Context) (json.RawMessage, error) {
	return json.RawMessage(`{"entities":13}`), nil
}
func (f fakeFetcher) EntityDetail(_ context.Context, slug string) (json.RawMessage, error) {
	if f.failDetail != nil {
		return nil, f.failDetail
	}
	return json.RawMessage(`{"slug":"` + slug + `"}`), nil
}

func TestSync(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	sy := &Syncer{Fetcher: fakeFetcher{}, Store: s}

	res, err := sy.Sync(ctx, []string{"growwise", "bhc"})
	require.NoError(t, err)
	assert.Equal(t, Result{Entities: 2, Details: 2, Totals: true}, res)

	snap, err := s.Latest(ctx, KindEntity, "growwise")
	require.NoError(t, err)
	assert.Equal(t, "https://backend.test", snap.SourceURL)
}

func TestSyncReturnsBackendError(t *testing.T) {
	backendErr := errors.New("permission denied")
	sy := &Syncer{Fetcher: fakeFetcher{failDetail: backendErr}, Store: newStore(t)}

	res, err := sy.Sync(context.Background(), []string{"bhc"})
	assert.Same(t, backendErr, err)
	assert.True(t, res.Totals)
	assert.Equal(t, 0, res.Details)
}
