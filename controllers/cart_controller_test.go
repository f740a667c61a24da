package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartUpstream struct {
	orderCalls atomic.Int64
	lastBody   atomic.Value
}

func newCartRouter(t *testing.T) (*gin.Engine, *cartUpstream) {
	upstream := &cartUpstream{}
	server := upstreamFixture(t, map[string]http.HandlerFunc{
		"/ordini": func(w http.ResponseWriter, r *http.Request) {
			upstream.orderCalls.Add(1)
			body, _ := io.ReadAll(r.Body)
			upstream.lastBody.Store(body)
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{}`)
		},
		"/ordini/me": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `[{"idOrdine":55,"nTurno":1,"prodotti":[{"idProdotto":3,"quantita":4}]}]`)
		},
	})

	turni, carts := newTestStores(t, server)
	require.True(t, turni.SelectTurno(1))

	controller := &CartController{Carts: carts}
	router := gin.New()
	router.GET("/api/carrello", controller.Show)
	router.POST("/api/carrello/items", controller.AddItem)
	router.DELETE("/api/carrello/items/:id", controller.RemoveItem)
	router.DELETE("/api/carrello", controller.Clear)
	router.POST("/api/carrello/conferma", controller.Confirm)
	router.POST("/api/carrello/sync", controller.Sync)
	return router, upstream
}

func cartItems(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	response := decodeEnvelope(t, w)
	require.True(t, response["success"].(bool))
	return response["data"].([]interface{})
}

func TestAddAndRemoveCartItems(t *testing.T) {
	router, _ := newCartRouter(t)

	w := performRequest(router, http.MethodPost, "/api/carrello/items", `{"idProdotto": 7, "quantita": 2}`)
	assert.Equal(t, http.StatusOK, w.Code)
	items := cartItems(t, w)
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.Equal(t, float64(7), line["idProdotto"])
	assert.Equal(t, float64(2), line["quantita"])

	// Same product again increments the existing line
	w = performRequest(router, http.MethodPost, "/api/carrello/items", `{"idProdotto": 7, "quantita": 1}`)
	items = cartItems(t, w)
	require.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0].(map[string]interface{})["quantita"])

	w = performRequest(router, http.MethodDelete, "/api/carrello/items/7", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartItems(t, w))
}

func TestAddCartItemValidation(t *testing.T) {
	router, _ := newCartRouter(t)

	w := performRequest(router, http.MethodPost, "/api/carrello/items", `{"idProdotto": 7}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.False(t, response["success"].(bool))
}

func TestClearCart(t *testing.T) {
	router, _ := newCartRouter(t)

	performRequest(router, http.MethodPost, "/api/carrello/items", `{"idProdotto": 7, "quantita": 2}`)
	w := performRequest(router, http.MethodDelete, "/api/carrello", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartItems(t, w))
}

func TestConfirmEmptyCart(t *testing.T) {
	router, upstream := newCartRouter(t)

	w := performRequest(router, http.MethodPost, "/api/carrello/conferma", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeEnvelope(t, w)
	assert.False(t, response["success"].(bool))
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "EMPTY_CART", errObj["code"])
	assert.Equal(t, int64(0), upstream.orderCalls.Load(), "Empty cart never reaches the ordering service")
}

func TestConfirmCart(t *testing.T) {
	router, upstream := newCartRouter(t)

	performRequest(router, http.MethodPost, "/api/carrello/items", `{"idProdotto": 7, "quantita": 2}`)
	w := performRequest(router, http.MethodPost, "/api/carrello/conferma", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), upstream.orderCalls.Load())

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(upstream.lastBody.Load().([]byte), &sent))
	assert.Equal(t, float64(1), sent["nTurno"])
	prodotti := sent["prodotti"].([]interface{})
	require.Len(t, prodotti, 1)
	assert.Equal(t, float64(7), prodotti[0].(map[string]interface{})["idProdotto"])

	// Confirmation empties the cart
	w = performRequest(router, http.MethodGet, "/api/carrello", "")
	assert.Empty(t, cartItems(t, w))
}

func TestSyncCartFromServer(t *testing.T) {
	router, _ := newCartRouter(t)

	performRequest(router, http.MethodPost, "/api/carrello/items", `{"idProdotto": 7, "quantita": 2}`)
	w := performRequest(router, http.MethodPost, "/api/carrello/sync", "")

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeEnvelope(t, w)
	data := response["data"].(map[string]interface{})
	assert.True(t, data["found"].(bool))

	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.Equal(t, float64(3), line["idProdotto"])
	assert.Equal(t, float64(4), line["quantita"])
}
