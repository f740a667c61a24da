package stores

import (
	"log"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/services"
	"github.com/figliolo/bar-client/utils"
)

const selectedTurnoKey = "selected_turno"

// TurnoStore holds today's shift windows and the user's selection.
// Shift contents are refetched each session; only the selection is
// persisted and it survives a restart.
type TurnoStore struct {
	mu       sync.Mutex
	client   *services.Client
	db       *gorm.DB
	turni    []models.Turno
	selected int
	lastErr  string

	// now is swappable so the weekday filter is testable.
	now func() time.Time
}

// NewTurnoStore creates the store and restores the persisted selection.
func NewTurnoStore(client *services.Client, db *gorm.DB) *TurnoStore {
	s := &TurnoStore{
		client:   client,
		db:       db,
		selected: models.NoTurno,
		now:      time.Now,
	}

	var pref models.Preference
	if err := db.First(&pref, "key = ?", selectedTurnoKey).Error; err == nil {
		if n, convErr := strconv.Atoi(pref.Value); convErr == nil {
			s.selected = n
		}
	}
	return s
}

// FetchTurni loads the shift windows valid for today's weekday. On any
// failure the list is left empty and the error message recorded; the
// error never propagates past this boundary.
func (s *TurnoStore) FetchTurni() bool {
	s.mu.Lock()
	now := s.now
	s.mu.Unlock()
	giorno := utils.GiornoAbbrev(now())

	var raw []models.Turno
	err := s.client.Get("/turni", url.Values{"giorno": {giorno}}, &raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""

	if err != nil {
		if services.IsNotFound(err) {
			s.lastErr = "no shifts found for today"
		} else {
			s.lastErr = err.Error()
		}
		s.turni = []models.Turno{}
		return false
	}

	filtered := make([]models.Turno, 0, len(raw))
	for _, t := range raw {
		if strings.ToLower(t.Giorno) == giorno {
			filtered = append(filtered, t)
		}
	}
	s.turni = filtered
	return true
}

// SelectTurno records the user's shift choice. Selecting a shift that
// is not in the loaded list sets an error and leaves the selection
// untouched.
func (s *TurnoStore) SelectTurno(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, t := range s.turni {
		if t.N == n {
			found = true
			break
		}
	}
	if !found {
		s.lastErr = "shift not found"
		return false
	}

	s.selected = n
	s.lastErr = ""
	s.persistSelection(n)
	return true
}

// RevalidateSelection resets the persisted selection when it no longer
// maps to a loaded shift, e.g. after the daily registry refresh.
func (s *TurnoStore) RevalidateSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == models.NoTurno {
		return
	}
	for _, t := range s.turni {
		if t.N == s.selected {
			return
		}
	}
	s.selected = models.NoTurno
	s.persistSelection(models.NoTurno)
}

// Turni returns a copy of the loaded shift list.
func (s *TurnoStore) Turni() []models.Turno {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Turno, len(s.turni))
	copy(out, s.turni)
	return out
}

// Selected returns the selected shift number, or models.NoTurno.
func (s *TurnoStore) Selected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Error returns the last recorded error message, if any.
func (s *TurnoStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *TurnoStore) persistSelection(n int) {
	pref := models.Preference{Key: selectedTurnoKey, Value: strconv.Itoa(n)}
	if err := s.db.Save(&pref).Error; err != nil {
		log.Printf("Failed to persist shift selection: %v", err)
	}
}

// SetNow overrides the store's clock. Test hook.
func (s *TurnoStore) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
