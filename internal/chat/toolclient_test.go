package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolServer(t *testing.T, path string, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func TestToolClientLookupFound(t *testing.T) {
	server := toolServer(t, "/api/tool/getData", http.StatusOK,
		`{"ok":true,"product":{"id":1,"name":"Phone A","price":699}}`)
	defer server.Close()

	out := NewToolClient(server.URL).Lookup(context.Background(), "phone a")

	require.Equal(t, OutcomeFound, out.Kind)
	require.NotNil(t, out.Product)
	assert.Equal(t, "Phone A", out.Product.Name)
}

func TestToolClientLookupSendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "phone a", payload["query"])
		fmt.Fprint(w, `{"ok":true,"results":[]}`)
	}))
	defer server.Close()

	NewToolClient(server.URL).Lookup(context.Background(), "phone a")
}

func TestToolClientLookupCandidates(t *testing.T) {
	server := toolServer(t, "/api/tool/getData", http.StatusOK,
		`{"ok":true,"results":[{"id":1,"name":"Phone A"},{"id":2,"name":"Phone B"}]}`)
	defer server.Close()

	out := NewToolClient(server.URL).Lookup(context.Background(), "phone")

	require.Equal(t, OutcomeCandidates, out.Kind)
	assert.Len(t, out.Candidates, 2)
}

func TestToolClientLookupEmptyResultsIsNotFound(t *testing.T) {
	server := toolServer(t, "/api/tool/getData", http.StatusOK, `{"ok":true,"results":[]}`)
	defer server.Close()

	out := NewToolClient(server.URL).Lookup(context.Background(), "nothing here")

	assert.Equal(t, OutcomeNotFound, out.Kind)
}

func TestToolClientLookupServerError(t *testing.T) {
	server := toolServer(t, "/api/tool/getData", http.StatusInternalServerError,
		`{"ok":false,"error":"search failed"}`)
	defer server.Close()

	out := NewToolClient(server.URL).Lookup(context.Background(), "phone")

	require.Equal(t, OutcomeToolError, out.Kind)
	assert.Equal(t, "search failed", out.Err)
}

func TestToolClientLookupTransportError(t *testing.T) {
	server := toolServer(t, "/api/tool/getData", http.StatusOK, `{}`)
	server.Close() // refuse connections

	out := NewToolClient(server.URL).Lookup(context.Background(), "phone")

	assert.Equal(t, OutcomeToolError, out.Kind)
	assert.NotEmpty(t, out.Err)
}

func TestToolClientCompareFoundPair(t *testing.T) {
	server := toolServer(t, "/api/tool/compare", http.StatusOK, `{
		"ok": true,
		"a": {"id":1,"name":"Phone A","price":699},
		"b": {"id":2,"name":"Phone B","price":799},
		"comparison": {
			"diffs": ["Price: Phone A $699 vs Phone B $799"],
			"recommendation": "Phone B"
		}
	}`)
	defer server.Close()

	out := NewToolClient(server.URL).Compare(context.Background(), "Phone A", "Phone B")

	require.Equal(t, OutcomeFoundPair, out.Kind)
	assert.Equal(t, "Phone A", out.A.Name)
	assert.Equal(t, "Phone B", out.B.Name)
	assert.Equal(t, "Phone B", out.Recommendation)
	assert.Len(t, out.Diffs, 1)
}

func TestToolClientCompareMissingSideIsNotFound(t *testing.T) {
	server := toolServer(t, "/api/tool/compare", http.StatusNotFound,
		`{"ok":false,"error":"Products not found"}`)
	defer server.Close()

	out := NewToolClient(server.URL).Compare(context.Background(), "Phone A", "Ghost")

	assert.Equal(t, OutcomeNotFound, out.Kind)
}

func TestToolClientCompareServerError(t *testing.T) {
	server := toolServer(t, "/api/tool/compare", http.StatusInternalServerError,
		`{"ok":false,"error":"compare failed"}`)
	defer server.Close()

	out := NewToolClient(server.URL).Compare(context.Background(), "Phone A", "Phone B")

	require.Equal(t, OutcomeToolError, out.Kind)
	assert.Equal(t, "compare failed", out.Err)
}

func TestToolClientCompareMalformedBodyIsToolError(t *testing.T) {
	server := toolServer(t, "/api/tool/compare", http.StatusOK, `{"ok":true}`)
	defer server.Close()

	out := NewToolClient(server.URL).Compare(context.Background(), "Phone A", "Phone B")

	assert.Equal(t, OutcomeToolError, out.Kind)
}
