package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/figliolo/bar-client/stores"
)

// QRController exposes the pickup tokens for the active shift.
type QRController struct {
	QRs *stores.QRStore
}

// Get handles GET /api/qr - the caller's pickup tokens.
func (qc *QRController) Get(c *gin.Context) {
	codes, found := qc.QRs.Fetch()
	if !found {
		respondError(c, http.StatusNotFound, "QR_NOT_FOUND", "No pickup tokens for the active shift")
		return
	}
	respondData(c, http.StatusOK, codes)
}
