package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/figliolo/bar-client/stores"
)

// OrderController exposes the staff-facing order collections.
type OrderController struct {
	Orders *stores.OrdersStore
}

// SetDateRequest represents the request body for changing the query date
type SetDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// ClassOrders handles GET /api/ordinazioni?nTurno= - reloads and
// returns the class-scoped orders for the selected date and shift.
func (oc *OrderController) ClassOrders(c *gin.Context) {
	turno, err := strconv.Atoi(c.Query("nTurno"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "nTurno must be an integer")
		return
	}

	if !oc.Orders.FetchClassOrders(turno) {
		respondError(c, http.StatusBadGateway, "UPSTREAM_ERROR", oc.Orders.Error())
		return
	}
	respondData(c, http.StatusOK, oc.Orders.ClassOrders())
}

// ProfOrders handles GET /api/ordinazioni/prof - reloads and returns
// the professor orders for the selected date.
func (oc *OrderController) ProfOrders(c *gin.Context) {
	if !oc.Orders.FetchProfOrders() {
		respondError(c, http.StatusBadGateway, "UPSTREAM_ERROR", oc.Orders.Error())
		return
	}
	respondData(c, http.StatusOK, oc.Orders.ProfOrders())
}

// SetDate handles POST /api/ordinazioni/data - changes the date the
// order fetches query for.
func (oc *OrderController) SetDate(c *gin.Context) {
	var req SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	oc.Orders.SetSelectedDate(req.Date)
	respondData(c, http.StatusOK, gin.H{"selectedDate": oc.Orders.SelectedDate()})
}

// User handles GET /api/utenti/:id - resolves a user profile through
// the store's lifetime cache.
func (oc *OrderController) User(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "User id must be an integer")
		return
	}

	user := oc.Orders.UserByID(id)
	if user == nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "No user with that id")
		return
	}
	respondData(c, http.StatusOK, user)
}

// PrepareOrder handles PUT /api/ordinazioni/classi/:classe/turno/:n/prepara -
// marks a whole class order as prepared.
func (oc *OrderController) PrepareOrder(c *gin.Context) {
	turno, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Shift number must be an integer")
		return
	}

	if !oc.Orders.MarkOrderPrepared(c.Param("classe"), turno) {
		respondError(c, http.StatusBadGateway, "PREPARE_FAILED", "Failed to mark order as prepared")
		return
	}
	respondData(c, http.StatusOK, gin.H{"preparato": true})
}

// PrepareProduct handles PUT /api/ordinazioni/prodotti/:id/prepara?nTurno= -
// marks one product line as prepared.
func (oc *OrderController) PrepareProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Product id must be an integer")
		return
	}
	turno, err := strconv.Atoi(c.Query("nTurno"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "nTurno must be an integer")
		return
	}

	if !oc.Orders.MarkProductPrepared(id, turno) {
		respondError(c, http.StatusBadGateway, "PREPARE_FAILED", "Failed to mark product as prepared")
		return
	}
	respondData(c, http.StatusOK, gin.H{"preparato": true})
}
