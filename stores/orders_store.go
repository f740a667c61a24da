package stores

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/services"
	"github.com/figliolo/bar-client/utils"
)

// OrdersStore holds the two staff-facing collections: orders grouped by
// class and professor orders, both reloadable by (date, shift).
// "Mark prepared" mutations are applied optimistically and reconciled
// by a follow-up refetch; the server wins on conflict.
type OrdersStore struct {
	mu          sync.Mutex
	client      *services.Client
	profTurno   int
	classOrders []models.Ordine
	profOrders  []models.Ordine
	selected    string
	userCache   map[int]*models.Utente
	lastErr     string
}

// NewOrdersStore creates the store with today as the selected date.
// profTurno is the shift number reserved for professor orders.
func NewOrdersStore(client *services.Client, profTurno int) *OrdersStore {
	return &OrdersStore{
		client:    client,
		profTurno: profTurno,
		selected:  utils.FormatDate(time.Now()),
		userCache: make(map[int]*models.Utente),
	}
}

// SetSelectedDate changes the date both fetches query for.
func (s *OrdersStore) SetSelectedDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = date
}

// SelectedDate returns the date the fetches query for.
func (s *OrdersStore) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// FetchClassOrders reloads the class-scoped collection for one shift.
func (s *OrdersStore) FetchClassOrders(turno int) bool {
	orders, err := s.fetchOrders(turno)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = "failed to load class orders"
		s.classOrders = []models.Ordine{}
		return false
	}
	s.classOrders = orders
	return true
}

// FetchProfOrders reloads the professor collection. Only orders with a
// pickup time set are surfaced; the rest are drafts the kitchen cannot
// act on yet.
func (s *OrdersStore) FetchProfOrders() bool {
	orders, err := s.fetchOrders(s.profTurno)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.lastErr = "failed to load professor orders"
		s.profOrders = []models.Ordine{}
		return false
	}

	surfaced := make([]models.Ordine, 0, len(orders))
	for _, o := range orders {
		if o.OraRitiro == nil {
			continue
		}
		o.UserRole = "prof"
		if o.User != 0 {
			o.UserData = s.UserByID(o.User)
		}
		surfaced = append(surfaced, o)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profOrders = surfaced
	return true
}

// fetchOrders queries /ordini/classi for the selected date and shift,
// tolerating the API's three response shapes and malformed product
// sub-lists.
func (s *OrdersStore) fetchOrders(turno int) ([]models.Ordine, error) {
	s.mu.Lock()
	date := s.selected
	s.mu.Unlock()

	query := url.Values{
		"startDate": {date},
		"endDate":   {date},
		"nTurno":    {strconv.Itoa(turno)},
	}

	var raw json.RawMessage
	if err := s.client.Get("/ordini/classi", query, &raw); err != nil {
		if services.IsNotFound(err) {
			return []models.Ordine{}, nil
		}
		return nil, err
	}

	wires := services.DecodeList[models.OrdineWire](raw)
	orders := make([]models.Ordine, 0, len(wires))
	for _, w := range wires {
		orders = append(orders, models.Ordine{
			IDOrdine:   w.IDOrdine,
			Data:       w.Data,
			NTurno:     w.NTurno,
			Giorno:     w.Giorno,
			User:       w.User,
			Classe:     w.Classe,
			Confermato: w.Confermato,
			Preparato:  w.Preparato,
			OraRitiro:  w.OraRitiro,
			Prodotti:   services.DecodeList[models.OrderProduct](w.Prodotti),
		})
	}
	return orders, nil
}

// MarkOrderPrepared flips preparato for every held order of the given
// class immediately, then tells the server and refetches the affected
// collection. A failed server call reports false but does not roll the
// local flip back; the next refetch reconciles.
func (s *OrdersStore) MarkOrderPrepared(classe string, turno int) bool {
	s.mu.Lock()
	for i := range s.classOrders {
		if s.classOrders[i].Classe == classe {
			s.classOrders[i].Preparato = true
		}
	}
	if turno == s.profTurno {
		for i := range s.profOrders {
			if s.profOrders[i].Classe == classe {
				s.profOrders[i].Preparato = true
			}
		}
	}
	s.mu.Unlock()

	path := fmt.Sprintf("/ordini/classi/%s/turno/%d/prepara", url.PathEscape(classe), turno)
	if err := s.client.Do(http.MethodPut, path, nil, nil, nil); err != nil {
		log.Printf("Failed to mark order prepared for class %s: %v", classe, err)
		return false
	}

	s.refetchAfterPrepare(turno)
	return true
}

// MarkProductPrepared flips preparato on every held line for the given
// product immediately, then tells the server and refetches. Same
// no-rollback contract as MarkOrderPrepared.
func (s *OrdersStore) MarkProductPrepared(productID, turno int) bool {
	s.mu.Lock()
	flagProduct(s.classOrders, productID)
	flagProduct(s.profOrders, productID)
	s.mu.Unlock()

	path := fmt.Sprintf("/ordini/prodotti/%d/prepara", productID)
	query := url.Values{"nTurno": {strconv.Itoa(turno)}}
	if err := s.client.Do(http.MethodPut, path, query, nil, nil); err != nil {
		log.Printf("Failed to mark product %d prepared: %v", productID, err)
		return false
	}

	s.refetchAfterPrepare(turno)
	return true
}

// refetchAfterPrepare reconciles the collection a prepare mutation
// touched: the professor collection for the professor shift, the class
// collection for every other shift.
func (s *OrdersStore) refetchAfterPrepare(turno int) {
	if turno == s.profTurno {
		s.FetchProfOrders()
		return
	}
	s.FetchClassOrders(turno)
}

func flagProduct(orders []models.Ordine, productID int) {
	for i := range orders {
		for j := range orders[i].Prodotti {
			if orders[i].Prodotti[j].IDProdotto == productID {
				orders[i].Prodotti[j].Preparato = true
			}
		}
	}
}

// UserByID resolves a user profile, serving repeats from a cache that
// lives as long as the store. No expiry, no invalidation.
func (s *OrdersStore) UserByID(id int) *models.Utente {
	s.mu.Lock()
	if cached, ok := s.userCache[id]; ok {
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	var user models.Utente
	if err := s.client.Get(fmt.Sprintf("/utenti/%d", id), nil, &user); err != nil {
		log.Printf("Failed to fetch user %d: %v", id, err)
		return nil
	}

	s.mu.Lock()
	s.userCache[id] = &user
	s.mu.Unlock()
	return &user
}

// ClassOrders returns a snapshot of the class-scoped collection.
func (s *OrdersStore) ClassOrders() []models.Ordine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.classOrders)
}

// ProfOrders returns a snapshot of the professor collection.
func (s *OrdersStore) ProfOrders() []models.Ordine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrders(s.profOrders)
}

// cloneOrders copies the orders and their product lines. The product
// slices must not be shared with callers: flagProduct mutates them in
// place under the lock.
func cloneOrders(orders []models.Ordine) []models.Ordine {
	out := make([]models.Ordine, len(orders))
	copy(out, orders)
	for i := range out {
		prodotti := make([]models.OrderProduct, len(orders[i].Prodotti))
		copy(prodotti, orders[i].Prodotti)
		out[i].Prodotti = prodotti
	}
	return out
}

// Error returns the last recorded error message, if any.
func (s *OrdersStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ResetError clears the recorded error message.
func (s *OrdersStore) ResetError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// OrderTotal sums price times quantity over an order's product lines.
func OrderTotal(o models.Ordine) float64 {
	total := 0.0
	for _, p := range o.Prodotti {
		total += p.Prezzo * float64(p.Quantita)
	}
	return total
}

// OrderUserName renders a display name for the ordering user.
func OrderUserName(o models.Ordine) string {
	if o.UserData != nil && (o.UserData.Nome != "" || o.UserData.Cognome != "") {
		name := o.UserData.Cognome
		if name != "" && o.UserData.Nome != "" {
			name += " "
		}
		return name + o.UserData.Nome
	}
	return fmt.Sprintf("Utente #%d", o.User)
}
