package repositories

import (
	"time"

	"github.com/google/uuid"

	"github.com/jfcardenas/panapp/app/models"
	"github.com/jfcardenas/panapp/pkg/kvstore"
)

// ProductRepository persists the product catalogue.
type ProductRepository struct {
	store *kvstore.Adapter
}

func NewProductRepository(store *kvstore.Adapter) *ProductRepository {
	return &ProductRepository{store: store}
}

// List returns all persisted products in stored (insertion) order.
func (r *ProductRepository) List() []models.Product {
	var products []models.Product
	r.store.ReadInto(KeyProducts, &products)
	return products
}

// Create assigns a fresh id and timestamps, persists the table and returns
// the new record.
func (r *ProductRepository) Create(input models.ProductInput) models.Product {
	now := time.Now()
	product := models.Product{
		ID:        uuid.NewString(),
		Name:      input.Name,
		PriceCOP:  input.PriceCOP,
		Image:     input.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	products := append(r.List(), product)
	r.store.Write(KeyProducts, products)
	return product
}

// Update merges the non-nil fields into the record with that id, bumps
// UpdatedAt and persists. Unknown ids are a silent no-op.
func (r *ProductRepository) Update(id string, updates models.ProductUpdate) (models.Product, bool) {
	products := r.List()
	for i := range products {
		if products[i].ID != id {
			continue
		}

		updates.Apply(&products[i])
		products[i].UpdatedAt = time.Now()

		r.store.Write(KeyProducts, products)
		return products[i], true
	}
	return models.Product{}, false
}

// Remove deletes the record with that id if present. Idempotent.
func (r *ProductRepository) Remove(id string) {
	products := r.List()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.store.Write(KeyProducts, kept)
}
