package stores

import (
	"fmt"
	"sort"
	"sync"

	"github.com/figliolo/bar-client/models"
	"github.com/figliolo/bar-client/services"
)

// Fallback icons served by the local UI when a product has no image.
const (
	fallbackFoodImage  = "/cibo.svg"
	fallbackDrinkImage = "/bevanda.svg"
)

// ProductsStore holds the product catalog mapped into UI form.
type ProductsStore struct {
	mu       sync.Mutex
	client   *services.Client
	products []models.Product
	lastErr  string
}

// NewProductsStore creates a new products store instance
func NewProductsStore(client *services.Client) *ProductsStore {
	return &ProductsStore{client: client}
}

// Fetch reloads the catalog. Each product's image endpoint is probed
// first; products without one fall back to the category icon.
func (s *ProductsStore) Fetch() bool {
	var raw []models.ProdottoWire
	if err := s.client.Get("/prodotti", nil, &raw); err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.lastErr = err.Error()
		return false
	}

	products := make([]models.Product, 0, len(raw))
	for _, item := range raw {
		imagePath := fmt.Sprintf("/prodotti/image/%d", item.IDProdotto)
		imageSrc := s.client.URL(imagePath)
		if !s.client.Exists(imagePath) {
			if item.Bevanda == 1 {
				imageSrc = fallbackDrinkImage
			} else {
				imageSrc = fallbackFoodImage
			}
		}

		price, _ := item.Prezzo.Float64()
		products = append(products, models.Product{
			ID:            item.IDProdotto,
			Title:         item.Nome,
			Description:   item.Descrizione,
			Ingredients:   item.Ingredienti,
			ImageSrc:      imageSrc,
			Price:         price,
			Quantity:      item.Quantita,
			Disponibility: item.Disponibilita,
			Tags:          item.Tags,
			IsActive:      item.Attivo == 1,
			Bevanda:       item.Bevanda == 1,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.lastErr = ""
	return true
}

// Products returns a copy of the catalog.
func (s *ProductsStore) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID returns the product with the given id, or nil.
func (s *ProductsStore) GetByID(id int) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p
		}
	}
	return nil
}

// AllIngredients returns the sorted set of ingredients across the catalog.
func (s *ProductsStore) AllIngredients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s.products, func(p models.Product) []string { return p.Ingredients })
}

// AllTags returns the sorted set of tags across the catalog.
func (s *ProductsStore) AllTags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s.products, func(p models.Product) []string { return p.Tags })
}

// Error returns the last recorded error message, if any.
func (s *ProductsStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func collect(products []models.Product, pick func(models.Product) []string) []string {
	seen := make(map[string]struct{})
	for _, p := range products {
		for _, v := range pick(p) {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
