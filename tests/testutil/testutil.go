// Package testutil holds helpers shared by the integration and
// acceptance suites: environment safety checks and a configurable fake
// of the remote ordering service.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/utils"
)

// RequireTestEnvironment fails the test unless GO_ENV is "test", so a
// suite can never run against a developer's real local store file.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("Tests must run with GO_ENV=test. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// MustSetTestEnvironment sets GO_ENV to test. Use this in TestMain or
// suite setup functions.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}
}

// OrderingService is a fake of the remote ordering API. The session
// role is mutable so a test can walk through login, role changes and
// session expiry.
type OrderingService struct {
	Server *httptest.Server

	mu   sync.Mutex
	role string
}

// NewOrderingService starts the fake with two shifts scheduled for
// today and a student session.
func NewOrderingService(t *testing.T) *OrderingService {
	t.Helper()

	svc := &OrderingService{role: "studente"}

	mux := http.NewServeMux()
	mux.HandleFunc("/turni", func(w http.ResponseWriter, r *http.Request) {
		today := utils.GiornoAbbrev(time.Now())
		writeJSON(w, `[{"n":1,"nome":"Primo intervallo","giorno":"`+today+`"},`+
			`{"n":2,"nome":"Turno prof","giorno":"`+today+`"}]`)
	})
	mux.HandleFunc("/auth/check", func(w http.ResponseWriter, r *http.Request) {
		role := svc.Role()
		if role == "" {
			http.Error(w, "unauthenticated", http.StatusUnauthorized)
			return
		}
		writeJSON(w, `{"nome":"Mario","foto_url":"","ruolo":"`+role+`"}`)
	})
	mux.HandleFunc("/prodotti", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[{"idProdotto":7,"nome":"Panino","prezzo":"2.50","attivo":1,"bevanda":0},`+
			`{"idProdotto":8,"nome":"Acqua","prezzo":"1.00","attivo":1,"bevanda":1}]`)
	})
	mux.HandleFunc("/ordini", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{}`)
	})
	mux.HandleFunc("/ordini/classi", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `[{"idOrdine":10,"nTurno":1,"classe":"5A","confermato":true,"prodotti":[`+
			`{"idProdotto":7,"nome":"Panino","quantita":2,"prezzo":2.5,"preparato":false}]}]`)
	})
	mux.HandleFunc("/ordini/classi/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{}`)
	})

	svc.Server = httptest.NewServer(mux)
	t.Cleanup(svc.Server.Close)
	return svc
}

// SetRole changes the role the session endpoint reports. An empty role
// makes the session unauthenticated.
func (s *OrderingService) SetRole(role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
}

// Role returns the current session role.
func (s *OrderingService) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, body)
}

// OpenLocalStore opens an in-memory local store with the client schema
// migrated.
func OpenLocalStore(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CartLine{}, &models.Preference{}))
	return db
}
