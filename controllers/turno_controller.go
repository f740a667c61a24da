package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/figliolo/bar-client/stores"
)

// TurnoController exposes the shift registry to the local UI.
type TurnoController struct {
	Turni *stores.TurnoStore
}

// SelectTurnoRequest represents the request body for selecting a shift
type SelectTurnoRequest struct {
	N *int `json:"n" binding:"required"`
}

// List handles GET /api/turni - returns today's shifts and the current
// selection. Pass ?refresh=true to refetch from the ordering service.
func (tc *TurnoController) List(c *gin.Context) {
	if c.Query("refresh") == "true" {
		tc.Turni.FetchTurni()
		tc.Turni.RevalidateSelection()
	}

	respondData(c, http.StatusOK, gin.H{
		"turni":            tc.Turni.Turni(),
		"turnoSelezionato": tc.Turni.Selected(),
		"error":            tc.Turni.Error(),
	})
}

// Select handles POST /api/turni/select - records the user's shift
// choice. Selecting a shift outside today's list fails and leaves the
// current selection untouched.
func (tc *TurnoController) Select(c *gin.Context) {
	var req SelectTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !tc.Turni.SelectTurno(*req.N) {
		respondError(c, http.StatusUnprocessableEntity, "TURNO_NOT_FOUND", tc.Turni.Error())
		return
	}

	respondData(c, http.StatusOK, gin.H{"turnoSelezionato": tc.Turni.Selected()})
}
