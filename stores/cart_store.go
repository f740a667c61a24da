package stores

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"gorm.io/gorm"

	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/services"
)

// DefaultCartOwner scopes persisted cart lines before anyone logs in.
const DefaultCartOwner = "local"

// CartStore keeps one draft cart per shift. Carts are persisted to the
// local store so they survive a restart and are cleared only on a
// successful order confirmation or an explicit clear.
type CartStore struct {
	mu     sync.Mutex
	client *services.Client
	db     *gorm.DB
	turni  *TurnoStore
	owner  string
	items  map[int][]models.CartItem
}

type confirmRequest struct {
	NTurno   int               `json:"nTurno"`
	Prodotti []models.CartItem `json:"prodotti"`
}

// confirmResponse captures an application-level error embedded in an
// otherwise successful confirmation reply.
type confirmResponse struct {
	Error string `json:"error"`
}

// NewCartStore creates the store, initializes an empty cart for every
// known shift, and reloads any persisted lines for the default owner.
func NewCartStore(client *services.Client, db *gorm.DB, turni *TurnoStore) *CartStore {
	s := &CartStore{
		client: client,
		db:     db,
		turni:  turni,
		owner:  DefaultCartOwner,
		items:  make(map[int][]models.CartItem),
	}
	for _, t := range turni.Turni() {
		s.items[t.N] = []models.CartItem{}
	}
	s.reload()
	return s
}

// SetOwner switches the persistence namespace to the logged-in user.
// Lines drafted before login are claimed by the new owner unless they
// already have a cart of their own.
func (s *CartStore) SetOwner(owner string) {
	if owner == "" {
		owner = DefaultCartOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if owner == s.owner {
		return
	}

	// Only the anonymous draft may be claimed; switching between two
	// logged-in accounts must never leak one cart into the other.
	var existing int64
	s.db.Model(&models.CartLine{}).Where("owner = ?", owner).Count(&existing)
	if existing == 0 && s.owner == DefaultCartOwner {
		if err := s.db.Model(&models.CartLine{}).
			Where("owner = ?", s.owner).
			Update("owner", owner).Error; err != nil {
			log.Printf("Failed to claim cart lines for %s: %v", owner, err)
		}
	}
	s.owner = owner
	s.reloadLocked()
}

// AddOrIncrement raises the quantity of a product in the active shift's
// cart by delta, appending a new line when the product is not there yet.
// No upper bound is enforced client-side; the server owns stock.
func (s *CartStore) AddOrIncrement(productID, delta int) {
	turno := s.turni.Selected()

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.items[turno]
	updated := false
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity += delta
			updated = true
			break
		}
	}
	if !updated {
		cart = append(cart, models.CartItem{ProductID: productID, Quantity: delta})
	}
	s.items[turno] = cart
	s.persist(turno)
}

// Remove drops the line for productID from the active shift's cart.
// Removing an absent product is a no-op.
func (s *CartStore) Remove(productID int) {
	turno := s.turni.Selected()

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.items[turno]
	kept := cart[:0]
	for _, item := range cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items[turno] = kept
	s.persist(turno)
}

// ClearActive empties the active shift's cart.
func (s *CartStore) ClearActive() {
	turno := s.turni.Selected()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[turno] = []models.CartItem{}
	s.persist(turno)
}

// ClearAll resets every shift's cart to empty.
func (s *CartStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for turno := range s.items {
		s.items[turno] = []models.CartItem{}
	}
	if err := s.db.Where("owner = ?", s.owner).Delete(&models.CartLine{}).Error; err != nil {
		log.Printf("Failed to clear persisted carts: %v", err)
	}
}

// Items returns a copy of the active shift's cart lines.
func (s *CartStore) Items() []models.CartItem {
	turno := s.turni.Selected()

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.items[turno]
	out := make([]models.CartItem, len(cart))
	copy(out, cart)
	return out
}

// Confirm submits the active shift's cart as a new order. An empty cart
// fails without a network call. The cart is cleared only after the
// server accepts the order; any failure leaves it untouched. This is a
// single-attempt submission with no retry.
func (s *CartStore) Confirm() (string, bool) {
	turno := s.turni.Selected()

	s.mu.Lock()
	cart := make([]models.CartItem, len(s.items[turno]))
	copy(cart, s.items[turno])
	s.mu.Unlock()

	if len(cart) == 0 {
		return "cart is empty", false
	}

	body := confirmRequest{NTurno: turno, Prodotti: cart}
	var reply confirmResponse
	if err := s.client.Do(http.MethodPost, "/ordini", nil, body, &reply); err != nil {
		return err.Error(), false
	}
	if reply.Error != "" {
		return reply.Error, false
	}

	s.mu.Lock()
	s.items[turno] = []models.CartItem{}
	s.persist(turno)
	s.mu.Unlock()
	return "order confirmed", true
}

// SyncFromServer pulls today's already-placed order for the active
// shift and overwrites the local lines to mirror it, so an in-progress
// order can be resumed on another device. Reports whether an existing
// order was found.
func (s *CartStore) SyncFromServer() bool {
	turno := s.turni.Selected()

	var orders []models.OwnOrder
	query := url.Values{"nTurno": {strconv.Itoa(turno)}}
	if err := s.client.Get("/ordini/me", query, &orders); err != nil {
		return false
	}
	if len(orders) == 0 || len(orders[0].Prodotti) == 0 {
		return false
	}

	lines := make([]models.CartItem, 0, len(orders[0].Prodotti))
	for _, p := range orders[0].Prodotti {
		lines = append(lines, models.CartItem{ProductID: p.IDProdotto, Quantity: p.Quantita})
	}

	s.mu.Lock()
	s.items[turno] = lines
	s.persist(turno)
	s.mu.Unlock()
	return true
}

// reload replaces in-memory carts with the persisted lines.
func (s *CartStore) reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadLocked()
}

func (s *CartStore) reloadLocked() {
	for turno := range s.items {
		s.items[turno] = []models.CartItem{}
	}

	var lines []models.CartLine
	if err := s.db.Where("owner = ?", s.owner).Find(&lines).Error; err != nil {
		log.Printf("Failed to load persisted carts: %v", err)
		return
	}
	for _, line := range lines {
		s.items[line.Turno] = append(s.items[line.Turno], models.CartItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
}

// persist rewrites the stored lines for one shift. Callers hold the lock.
func (s *CartStore) persist(turno int) {
	if err := s.db.Where("owner = ? AND turno = ?", s.owner, turno).
		Delete(&models.CartLine{}).Error; err != nil {
		log.Printf("Failed to clear persisted cart for shift %d: %v", turno, err)
		return
	}
	for _, item := range s.items[turno] {
		line := models.CartLine{
			Owner:     s.owner,
			Turno:     turno,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if err := s.db.Create(&line).Error; err != nil {
			log.Printf("Failed to persist cart line: %v", err)
		}
	}
}
