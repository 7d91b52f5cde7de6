package stores

import (
	"time"

	"github.com/jfcardenas/panapp/app/models"
	"github.com/jfcardenas/panapp/app/repositories"
	"github.com/jfcardenas/panapp/pkg/event"
)

// ProductsStore mirrors the product catalogue in memory.
type ProductsStore struct {
	repo      *repositories.ProductRepository
	bus       *event.Bus
	products  []models.Product
	isLoading bool
}

func NewProductsStore(repo *repositories.ProductRepository, bus *event.Bus) *ProductsStore {
	s := &ProductsStore{repo: repo, bus: bus, isLoading: true}
	s.products = repo.List()
	s.isLoading = false
	return s
}

func (s *ProductsStore) Loading() bool { return s.isLoading }

// All returns a copy of the in-memory catalogue, insertion-ordered.
func (s *ProductsStore) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *ProductsStore) FindByID(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Add persists a new product, then appends it to memory.
func (s *ProductsStore) Add(input models.ProductInput) models.Product {
	product := s.repo.Create(input)
	s.products = append(s.products, product)
	s.bus.Fire(EventProductAdded, product)
	return product
}

// Edit persists a partial update, then reflects it in memory. The
// in-memory collection is authoritative for the reflect step: when the
// durable read misses a record memory still holds (persistence is
// fail-soft), the merge is applied in memory anyway so the session keeps
// working. Ids unknown to memory are a no-op.
func (s *ProductsStore) Edit(id string, updates models.ProductUpdate) bool {
	persisted, ok := s.repo.Update(id, updates)
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if ok {
			s.products[i] = persisted
		} else {
			updates.Apply(&s.products[i])
			s.products[i].UpdatedAt = time.Now()
		}
		s.bus.Fire(EventProductUpdated, s.products[i])
		return true
	}
	return false
}

// Remove deletes the product durably and from memory. Idempotent.
func (s *ProductsStore) Remove(id string) {
	s.repo.Remove(id)
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.bus.Fire(EventProductRemoved, id)
}
