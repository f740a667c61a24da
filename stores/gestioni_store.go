package stores

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/services"
)

// GestioniStore manages the administrative units that own products and
// users. Every successful mutation refreshes the cached list.
type GestioniStore struct {
	mu       sync.Mutex
	client   *services.Client
	gestioni []models.Gestione
	lastErr  string
}

// NewGestioniStore creates a new gestioni store instance
func NewGestioniStore(client *services.Client) *GestioniStore {
	return &GestioniStore{client: client}
}

// Fetch reloads the full list of gestioni.
func (s *GestioniStore) Fetch() bool {
	var list []models.Gestione
	err := s.client.Get("/gestioni", nil, &list)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = "failed to load gestioni"
		return false
	}
	s.gestioni = list
	s.lastErr = ""
	return true
}

// FetchByID loads one gestione's details.
func (s *GestioniStore) FetchByID(id int) (*models.Gestione, bool) {
	var g models.Gestione
	if err := s.client.Get(fmt.Sprintf("/gestioni/%d", id), nil, &g); err != nil {
		s.recordError("failed to load gestione details")
		return nil, false
	}
	return &g, true
}

// Create adds a gestione, optionally assigning an initial user.
func (s *GestioniStore) Create(nome string, utenteID *int) bool {
	body := map[string]any{"nome": nome}
	if utenteID != nil {
		body["utenteId"] = *utenteID
	}
	if err := s.client.Do(http.MethodPost, "/gestioni", nil, body, nil); err != nil {
		s.recordError("failed to create gestione")
		return false
	}
	return s.Fetch()
}

// Update renames a gestione.
func (s *GestioniStore) Update(id int, nome string) bool {
	body := map[string]any{"nome": nome}
	if err := s.client.Do(http.MethodPut, fmt.Sprintf("/gestioni/%d", id), nil, body, nil); err != nil {
		s.recordError("failed to update gestione")
		return false
	}
	return s.Fetch()
}

// Delete removes a gestione.
func (s *GestioniStore) Delete(id int) bool {
	if err := s.client.Do(http.MethodDelete, fmt.Sprintf("/gestioni/%d", id), nil, nil, nil); err != nil {
		s.recordError("failed to delete gestione")
		return false
	}
	return s.Fetch()
}

// AddUser associates a user with a gestione.
func (s *GestioniStore) AddUser(gestioneID, utenteID int) bool {
	body := map[string]any{"utenteId": utenteID}
	path := fmt.Sprintf("/gestioni/%d/utenti", gestioneID)
	if err := s.client.Do(http.MethodPost, path, nil, body, nil); err != nil {
		s.recordError("failed to add user to gestione")
		return false
	}
	return true
}

// RemoveUser removes a user from a gestione.
func (s *GestioniStore) RemoveUser(gestioneID, utenteID int) bool {
	path := fmt.Sprintf("/gestioni/%d/utenti/%d", gestioneID, utenteID)
	if err := s.client.Do(http.MethodDelete, path, nil, nil, nil); err != nil {
		s.recordError("failed to remove user from gestione")
		return false
	}
	return true
}

// FetchUsers lists the users associated with a gestione.
func (s *GestioniStore) FetchUsers(gestioneID int) ([]models.GestioneUser, bool) {
	var users []models.GestioneUser
	path := fmt.Sprintf("/gestioni/%d/utenti", gestioneID)
	if err := s.client.Get(path, nil, &users); err != nil {
		s.recordError("failed to load gestione users")
		return nil, false
	}
	return users, true
}

// Gestioni returns a copy of the cached list.
func (s *GestioniStore) Gestioni() []models.Gestione {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Gestione, len(s.gestioni))
	copy(out, s.gestioni)
	return out
}

// Error returns the last recorded error message, if any.
func (s *GestioniStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *GestioniStore) recordError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}
