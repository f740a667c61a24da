package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/figliolo/bar-client/stores"
)

// GestioneController exposes the administrative units to the admin UI.
type GestioneController struct {
	Gestioni *stores.GestioniStore
}

// GestioneRequest represents the request body for creating or renaming
// a gestione
type GestioneRequest struct {
	Nome     string `json:"nome" binding:"required"`
	UtenteID *int   `json:"utenteId"`
}

// MembershipRequest represents the request body for adding a user to a
// gestione
type MembershipRequest struct {
	UtenteID int `json:"utenteId" binding:"required"`
}

// List handles GET /api/gestioni
func (gc *GestioneController) List(c *gin.Context) {
	if !gc.Gestioni.Fetch() {
		respondError(c, http.StatusBadGateway, "UPSTREAM_ERROR", gc.Gestioni.Error())
		return
	}
	respondData(c, http.StatusOK, gc.Gestioni.Gestioni())
}

// Get handles GET /api/gestioni/:id
func (gc *GestioneController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Gestione id must be an integer")
		return
	}

	gestione, found := gc.Gestioni.FetchByID(id)
	if !found {
		respondError(c, http.StatusNotFound, "GESTIONE_NOT_FOUND", "No gestione with that id")
		return
	}
	respondData(c, http.StatusOK, gestione)
}

// Create handles POST /api/gestioni
func (gc *GestioneController) Create(c *gin.Context) {
	var req GestioneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !gc.Gestioni.Create(req.Nome, req.UtenteID) {
		respondError(c, http.StatusBadGateway, "CREATE_FAILED", gc.Gestioni.Error())
		return
	}
	respondData(c, http.StatusCreated, gc.Gestioni.Gestioni())
}

// Update handles PUT /api/gestioni/:id
func (gc *GestioneController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Gestione id must be an integer")
		return
	}

	var req GestioneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !gc.Gestioni.Update(id, req.Nome) {
		respondError(c, http.StatusBadGateway, "UPDATE_FAILED", gc.Gestioni.Error())
		return
	}
	respondData(c, http.StatusOK, gc.Gestioni.Gestioni())
}

// Delete handles DELETE /api/gestioni/:id
func (gc *GestioneController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Gestione id must be an integer")
		return
	}

	if !gc.Gestioni.Delete(id) {
		respondError(c, http.StatusBadGateway, "DELETE_FAILED", gc.Gestioni.Error())
		return
	}
	respondData(c, http.StatusOK, gc.Gestioni.Gestioni())
}

// Users handles GET /api/gestioni/:id/utenti
func (gc *GestioneController) Users(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Gestione id must be an integer")
		return
	}

	users, found := gc.Gestioni.FetchUsers(id)
	if !found {
		respondError(c, http.StatusBadGateway, "UPSTREAM_ERROR", gc.Gestioni.Error())
		return
	}
	respondData(c, http.StatusOK, users)
}

// AddUser handles POST /api/gestioni/:id/utenti
func (gc *GestioneController) AddUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Gestione id must be an integer")
		return
	}

	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	if !gc.Gestioni.AddUser(id, req.UtenteID) {
		respondError(c, http.StatusBadGateway, "MEMBERSHIP_FAILED", gc.Gestioni.Error())
		return
	}
	respondData(c, http.StatusCreated, gin.H{"added": req.UtenteID})
}

// RemoveUser handles DELETE /api/gestioni/:id/utenti/:utenteId
func (gc *GestioneController) RemoveUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Gestione id must be an integer")
		return
	}
	utenteID, err := strconv.Atoi(c.Param("utenteId"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "User id must be an integer")
		return
	}

	if !gc.Gestioni.RemoveUser(id, utenteID) {
		respondError(c, http.StatusBadGateway, "MEMBERSHIP_FAILED", gc.Gestioni.Error())
		return
	}
	respondData(c, http.StatusOK, gin.H{"removed": utenteID})
}
