package stores

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gestioniStub fakes /gestioni with an in-memory list.
type gestioniStub struct {
	mu     sync.Mutex
	server *httptest.Server
	names  map[int]string
	nextID int
}

func newGestioniStub(t *testing.T) *gestioniStub {
	t.Helper()
	stub := &gestioniStub{names: map[int]string{1: "Bar centrale"}, nextID: 2}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		defer stub.mu.Unlock()

		switch {
		case r.URL.Path == "/gestioni" && r.Method == http.MethodGet:
			list := []map[string]any{}
			for id, nome := range stub.names {
				list = append(list, map[string]any{"idGestione": id, "nome": nome})
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(list)
		case r.URL.Path == "/gestioni" && r.Method == http.MethodPost:
			var req struct {
				Nome string `json:"nome"`
			}
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &req)
			stub.names[stub.nextID] = req.Nome
			stub.nextID++
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{"created":true}`)
		case strings.HasPrefix(r.URL.Path, "/gestioni/") && r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case r.URL.Path == "/gestioni/1/utenti" && r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `[{"idUtente":42,"mail":"anna@example.test","ruolo":"paninaro"}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	return stub
}

func TestGestioniFetchAndCreateRefreshesList(t *testing.T) {
	stub := newGestioniStub(t)
	defer stub.server.Close()

	store := NewGestioniStore(newTestClient(t, stub.server.URL))
	require.True(t, store.Fetch())
	assert.Len(t, store.Gestioni(), 1)

	require.True(t, store.Create("Bar succursale", nil))
	assert.Len(t, store.Gestioni(), 2, "A successful create refreshes the cached list")
}

func TestGestioniUsers(t *testing.T) {
	stub := newGestioniStub(t)
	defer stub.server.Close()

	store := NewGestioniStore(newTestClient(t, stub.server.URL))
	users, found := store.FetchUsers(1)
	require.True(t, found)
	require.Len(t, users, 1)
	assert.Equal(t, 42, users[0].IDUtente)
	assert.Equal(t, "paninaro", users[0].Ruolo)
}

func TestGestioniFailureRecordsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	store := NewGestioniStore(newTestClient(t, server.URL))
	assert.False(t, store.Fetch())
	assert.Equal(t, "failed to load gestioni", store.Error())
}
