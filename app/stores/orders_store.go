package stores

import (
	"time"

	"github.com/jfcardenas/panapp/app/models"
	"github.com/jfcardenas/panapp/app/repositories"
	"github.com/jfcardenas/panapp/pkg/event"
)

// OrdersStore mirrors the order table in memory and derives the dashboard
// views (per-status counts, filtered lists).
type OrdersStore struct {
	repo      *repositories.OrderRepository
	bus       *event.Bus
	orders    []models.Order
	isLoading bool
}

func NewOrdersStore(repo *repositories.OrderRepository, bus *event.Bus) *OrdersStore {
	s := &OrdersStore{repo: repo, bus: bus, isLoading: true}
	s.orders = repo.List()
	s.isLoading = false
	return s
}

func (s *OrdersStore) Loading() bool { return s.isLoading }

// All returns a copy of the in-memory collection, insertion-ordered.
func (s *OrdersStore) All() []models.Order {
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrdersStore) FindByID(id string) (models.Order, bool) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// Add persists a new order, then appends it to memory.
func (s *OrdersStore) Add(input models.OrderInput) models.Order {
	order := s.repo.Create(input)
	s.orders = append(s.orders, order)
	s.bus.Fire(EventOrderAdded, order)
	return order
}

// Edit persists a partial update, then reflects it in memory. The
// in-memory collection is authoritative for the reflect step: when the
// durable read misses a record memory still holds (persistence is
// fail-soft), the merge is applied in memory anyway so the session keeps
// working. Ids unknown to memory are a no-op.
func (s *OrdersStore) Edit(id string, updates models.OrderUpdate) bool {
	persisted, ok := s.repo.Update(id, updates)
	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if ok {
			s.orders[i] = persisted
		} else {
			updates.Apply(&s.orders[i])
			s.orders[i].UpdatedAt = time.Now()
		}
		s.bus.Fire(EventOrderUpdated, s.orders[i])
		return true
	}
	return false
}

// Remove deletes the order durably and from memory. Idempotent.
func (s *OrdersStore) Remove(id string) {
	s.repo.Remove(id)
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	s.bus.Fire(EventOrderRemoved, id)
}

// SetStatus is Edit restricted to the status field. The store does not
// judge the transition; callers that want the lifecycle respected use
// Advance instead.
func (s *OrdersStore) SetStatus(id string, status models.OrderStatus) bool {
	return s.Edit(id, models.OrderUpdate{Status: &status})
}

// Advance moves the order to its single legal next status
// (pending → in-progress → completed) and returns the new status.
// Completed is terminal: Advance returns false and changes nothing.
func (s *OrdersStore) Advance(id string) (models.OrderStatus, bool) {
	order, ok := s.FindByID(id)
	if !ok {
		return "", false
	}
	next, ok := order.Status.Next()
	if !ok {
		return order.Status, false
	}
	if !s.SetStatus(id, next) {
		return order.Status, false
	}
	return next, true
}

// Stats folds the in-memory collection into per-status counts. Computed
// fresh on every call, so it can never go stale.
func (s *OrdersStore) Stats() models.OrderStats {
	var stats models.OrderStats
	for _, o := range s.orders {
		stats.Total++
		switch o.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

// Filtered returns orders matching status, or all orders when status is
// empty. Insertion order is preserved.
func (s *OrdersStore) Filtered(status models.OrderStatus) []models.Order {
	if status == "" {
		return s.All()
	}
	var out []models.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}
