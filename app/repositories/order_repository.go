package repositories

import (
	"time"

	"github.com/google/uuid"

	"github.com/jfcardenas/panapp/app/models"
	"github.com/jfcardenas/panapp/pkg/kvstore"
)

// OrderRepository persists the order table.
type OrderRepository struct {
	store *kvstore.Adapter
}

func NewOrderRepository(store *kvstore.Adapter) *OrderRepository {
	return &OrderRepository{store: store}
}

// List returns all persisted orders in stored (insertion) order.
func (r *OrderRepository) List() []models.Order {
	var orders []models.Order
	r.store.ReadInto(KeyOrders, &orders)
	return orders
}

// Create assigns a fresh id and timestamps, persists the table and returns
// the new record. An empty status defaults to pending.
func (r *OrderRepository) Create(input models.OrderInput) models.Order {
	status := input.Status
	if status == "" {
		status = models.StatusPending
	}

	now := time.Now()
	order := models.Order{
		ID:           uuid.NewString(),
		CustomerName: input.CustomerName,
		Details:      input.Details,
		Quantity:     input.Quantity,
		DeliveryDate: input.DeliveryDate,
		DeliveryTime: input.DeliveryTime,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	orders := append(r.List(), order)
	r.store.Write(KeyOrders, orders)
	return order
}

// Update merges the non-nil fields into the record with that id, bumps
// UpdatedAt and persists. Unknown ids are a silent no-op.
func (r *OrderRepository) Update(id string, updates models.OrderUpdate) (models.Order, bool) {
	orders := r.List()
	for i := range orders {
		if orders[i].ID != id {
			continue
		}

		updates.Apply(&orders[i])
		orders[i].UpdatedAt = time.Now()

		r.store.Write(KeyOrders, orders)
		return orders[i], true
	}
	return models.Order{}, false
}

// Remove deletes the record with that id if present. Idempotent.
func (r *OrderRepository) Remove(id string) {
	orders := r.List()
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	r.store.Write(KeyOrders, kept)
}
