package stores

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/services"
)

// ClassCartStore covers the class-representative flow: reviewing the
// class's aggregated order of the day and confirming member orders or
// the whole class order.
type ClassCartStore struct {
	client *services.Client
	turni  *TurnoStore
}

// NewClassCartStore creates a new class cart store instance
func NewClassCartStore(client *services.Client, turni *TurnoStore) *ClassCartStore {
	return &ClassCartStore{client: client, turni: turni}
}

// FetchToday loads the class order for the active shift. Reports false
// when there is none or the call fails.
func (s *ClassCartStore) FetchToday() (*models.OrdineClasse, bool) {
	turno := s.turni.Selected()
	query := url.Values{"nTurno": {strconv.Itoa(turno)}}

	var wire struct {
		Confermato bool                 `json:"confermato"`
		Totale     float64              `json:"totale"`
		Ordini     []models.MemberOrder `json:"ordini"`
	}
	if err := s.client.Get("/ordini/classi/me/oggi", query, &wire); err != nil {
		return nil, false
	}

	return &models.OrdineClasse{
		NTurno:     turno,
		Totale:     wire.Totale,
		Confermato: wire.Confermato,
		Ordini:     wire.Ordini,
	}, true
}

// ConfirmMember sets the confirmation flag of one member order.
func (s *ClassCartStore) ConfirmMember(orderID int, confirmed bool) bool {
	body := map[string]any{
		"nTurno":     s.turni.Selected(),
		"confermato": confirmed,
	}
	path := "/ordini/classi/me/conferma/" + strconv.Itoa(orderID)
	return s.client.Do(http.MethodPatch, path, nil, body, nil) == nil
}

// ConfirmClass finalizes the whole class order for the active shift.
func (s *ClassCartStore) ConfirmClass() bool {
	body := map[string]any{"nTurno": s.turni.Selected()}
	return s.client.Do(http.MethodPut, "/ordini/classi/me/conferma", nil, body, nil) == nil
}
