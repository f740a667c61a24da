package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/figliolo/bar-client/stores"
)

// ClassCartController exposes the class-representative flow.
type ClassCartController struct {
	ClassCarts *stores.ClassCartStore
}

// ConfirmMemberRequest represents the request body for confirming a
// member order
type ConfirmMemberRequest struct {
	Confermato *bool `json:"confermato" binding:"required"`
}

// Today handles GET /api/classe/ordine - the class's aggregated order
// for the active shift.
func (cc *ClassCartController) Today(c *gin.Context) {
	ordine, found := cc.ClassCarts.FetchToday()
	if !found {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "No class order for the active shift")
		return
	}
	respondData(c, http.StatusOK, ordine)
}

// ConfirmMember handles PATCH /api/classe/conferma/:id - sets the
// confirmation flag of one member order.
func (cc *ClassCartController) ConfirmMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Order id must be an integer")
		return
	}

	var req ConfirmMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !cc.ClassCarts.ConfirmMember(id, *req.Confermato) {
		respondError(c, http.StatusBadGateway, "CONFIRM_FAILED", "Failed to update member order")
		return
	}
	respondData(c, http.StatusOK, gin.H{"confermato": *req.Confermato})
}

// ConfirmClass handles PUT /api/classe/conferma - finalizes the whole
// class order for the active shift.
func (cc *ClassCartController) ConfirmClass(c *gin.Context) {
	if !cc.ClassCarts.ConfirmClass() {
		respondError(c, http.StatusBadGateway, "CONFIRM_FAILED", "Failed to confirm class order")
		return
	}
	respondData(c, http.StatusOK, gin.H{"confermato": true})
}
