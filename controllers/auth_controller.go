package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/figliolo/bar-client/stores"
)

// AuthController exposes the session to the local UI.
type AuthController struct {
	Auth  *stores.AuthStore
	Carts *stores.CartStore
	Turni *stores.TurnoStore
}

// Home handles GET / - the landing view: session snapshot plus the
// shift picker state.
func (ac *AuthController) Home(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{
		"user":             ac.Auth.User(),
		"turni":            ac.Turni.Turni(),
		"turnoSelezionato": ac.Turni.Selected(),
	})
}

// Login handles GET /login - the destination unauthenticated
// navigation is redirected to.
func (ac *AuthController) Login(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{
		"message": "Authenticate against the ordering service to continue",
	})
}

// Session handles GET /api/session - runs a fresh session check and
// returns the user. A successful login claims the locally drafted cart.
func (ac *AuthController) Session(c *gin.Context) {
	if !ac.Auth.CheckAuth() {
		respondError(c, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Session check failed")
		return
	}

	user := ac.Auth.User()
	if user.Nome != "" {
		// The session check exposes no user id, so the persistence
		// namespace is keyed on the display name. Accounts sharing a
		// name share a persisted cart.
		ac.Carts.SetOwner(user.Nome)
	}
	respondData(c, http.StatusOK, user)
}

// Logout handles POST /api/logout - clears the local session and tells
// the UI where to navigate.
func (ac *AuthController) Logout(c *gin.Context) {
	target := ac.Auth.Logout()
	respondData(c, http.StatusOK, gin.H{"redirect": target})
}
