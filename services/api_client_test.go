package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figliolo/bar-client/config"
)

func newClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return NewClient(&config.Config{APIBaseURL: baseURL})
}

func TestDoDecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("n"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"pong":true}`)
	}))
	defer server.Close()

	var out struct {
		Pong bool `json:"pong"`
	}
	err := newClient(t, server.URL).Get("ping", map[string][]string{"n": {"1"}}, &out)
	require.NoError(t, err)
	assert.True(t, out.Pong)
}

func TestDoSendsJSONBody(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := newClient(t, server.URL).Do(http.MethodPost, "/ordini", nil, map[string]int{"nTurno": 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(1), received["nTurno"])
}

func TestDoMapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	err := newClient(t, server.URL).Get("/ordini/me", nil, nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestDoReportsStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota esaurita", http.StatusConflict)
	}))
	defer server.Close()

	err := newClient(t, server.URL).Get("/ordini", nil, nil)
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "409")
	assert.Contains(t, err.Error(), "quota esaurita")
}

func TestDoIgnoresNonJSONSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	out := map[string]any{"untouched": true}
	err := newClient(t, server.URL).Get("/", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"untouched": true}, out)
}

func TestDoReportsMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"broken":`)
	}))
	defer server.Close()

	var out map[string]any
	err := newClient(t, server.URL).Get("/", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestClientKeepsSessionCookies(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "s3cret"})
		} else {
			cookie, err := r.Cookie("session")
			require.NoError(t, err)
			assert.Equal(t, "s3cret", cookie.Value)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newClient(t, server.URL)
	require.NoError(t, client.Get("/auth/check", nil, nil))
	require.NoError(t, client.Get("/auth/check", nil, nil))
	assert.Equal(t, 2, calls)
}

func TestExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/prodotti/image/7" {
			w.WriteHeader(http.StatusOK)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := newClient(t, server.URL)
	assert.True(t, client.Exists("/prodotti/image/7"))
	assert.False(t, client.Exists("/prodotti/image/8"))
}

func TestDecodeList(t *testing.T) {
	type item struct {
		ID int `json:"id"`
	}

	tests := []struct {
		name     string
		raw      string
		expected []item
	}{
		{"Array passes through", `[{"id":1},{"id":2}]`, []item{{1}, {2}}},
		{"Bare object wraps as single element", `{"id":3}`, []item{{3}}},
		{"Error-shaped object is empty", `{"error":"niente"}`, []item{}},
		{"Null is empty", `null`, []item{}},
		{"Empty input is empty", ``, []item{}},
		{"Scalar is empty", `42`, []item{}},
		{"Malformed array is empty", `[{"id":`, []item{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeList[item](json.RawMessage(tt.raw)))
		})
	}
}
