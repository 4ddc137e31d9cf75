package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	path   string
	apikey string
	auth   string
	body   string
}

func backend(t *testing.T, status int, resp string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.path = r.URL.Path
		rec.apikey = r.Header.Get("apikey")
		rec.auth = r.Header.Get("Authorization")
		rec.body = string(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{URL: srv.URL + "/", AnonKey: "anon"})
	require.NoError(t, err)
	return c, rec
}

func TestEntities(t *testing.T) {
	c, rec := backend(t, http.StatusOK, `[{"slug":"growwise"}]`)

	data, err := c.Entities(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/rest/v1/rpc/get_v6_entities", rec.path)
	assert.Equal(t, "anon", rec.apikey)
	assert.Equal(t, "Bearer anon", rec.auth)
	assert.JSONEq(t, `{}`, rec.body)
	assert.JSONEq(t, `[{"slug":"growwise"}]`, string(data))
}

func TestEntityDetailSendsSlug(t *testing.T) {
	c, rec := backend(t, http.StatusOK, `{"slug":"bhc"}`)

	_, err := c.EntityDetail(context.Background(), "bhc")
	require.NoError(t, err)
	assert.Equal(t, "/rest/v1/rpc/get_v6_entity_detail", rec.path)

	var args map[string]string
	require.NoError(t, json.Unmarshal([]byte(rec.body), &args))
	assert.Equal(t, map[string]string{"p_slug": "bhc"}, args)
}

func TestEcosystemTotals(t *testing.T) {
	c, rec := backend(t, http.StatusOK, `{"entities":13}`)
	_, err := c.EcosystemTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/rest/v1/rpc/get_v6_ecosystem_totals", rec.path)
}

func TestBackendErrorPassesThrough(t *testing.T) {
	c, _ := backend(t, http.StatusNotFound,
		`{"message":"function not found","code":"PGRST202","details":"searched for get_v6_entities","hint":"check the name"}`)

	_, err := c.Entities(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "function not found", apiErr.Message)
	assert.Equal(t, "PGRST202", apiErr.Code)
	assert.Equal(t, "check the name", apiErr.Hint)
	assert.Equal(t, "function not found (code PGRST202): searched for get_v6_entities", err.Error())
}

func TestBackendErrorPlainBody(t *testing.T) {
	c, _ := backend(t, http.StatusBadGateway, "upstream down")
	_, err := c.Entities(context.Background())

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestInvalidJSON(t *testing.T) {
	c, _ := backend(t, http.StatusOK, "not json")
	_, err := c.Entities(context.Background())
	assert.Error(t, err)
}

func TestNotConfigured(t *testing.T) {
	_, err := NewClient(Config{URL: "https://example.supabase.co"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
