package stores

import (
	"net/url"
	"strconv"

	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/services"
)

// QRStore fetches the pickup tokens for the active shift.
type QRStore struct {
	client *services.Client
	turni  *TurnoStore
}

// NewQRStore creates a new QR store instance
func NewQRStore(client *services.Client, turni *TurnoStore) *QRStore {
	return &QRStore{client: client, turni: turni}
}

// Fetch returns the caller's pickup tokens for the active shift, or
// (nil, false) on any failure.
func (s *QRStore) Fetch() ([]models.QRCode, bool) {
	query := url.Values{"nTurno": {strconv.Itoa(s.turni.Selected())}}

	var codes []models.QRCode
	if err := s.client.Get("/qr/me", query, &codes); err != nil {
		return nil, false
	}
	return codes, true
}
