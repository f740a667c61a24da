package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/figliolo/bar-client/config"
	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/services"
	"github.com/figliolo/bar-client/stores"
	"github.com/figliolo/bar-client/utils"
)

// upstreamFixture is a stand-in for the remote ordering service. Handlers
// are registered per path; unregistered paths return 404 like the real
// service does for empty resources.
func upstreamFixture(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/turni", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		payload := `[{"n":1,"nome":"Primo intervallo","giorno":"` + utils.GiornoAbbrev(time.Now()) + `"},` +
			`{"n":2,"nome":"Turno prof","giorno":"` + utils.GiornoAbbrev(time.Now()) + `"}]`
		w.Write([]byte(payload))
	})
	for path, handler := range handlers {
		mux.HandleFunc(path, handler)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestStores(t *testing.T, upstream *httptest.Server) (*stores.TurnoStore, *stores.CartStore) {
	t.Helper()

	client := services.NewClient(&config.Config{APIBaseURL: upstream.URL})
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CartLine{}, &models.Preference{}))

	turni := stores.NewTurnoStore(client, db)
	require.True(t, turni.FetchTurni())
	return turni, stores.NewCartStore(client, db, turni)
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func init() {
	gin.SetMode(gin.TestMode)
}
