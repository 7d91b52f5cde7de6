package stores

import (
	"time"

	"github.com/jfcardenas/panapp/app/models"
	"github.com/jfcardenas/panapp/app/repositories"
	"github.com/jfcardenas/panapp/pkg/event"
)

// ClientsStore mirrors the client table in memory.
type ClientsStore struct {
	repo      *repositories.ClientRepository
	bus       *event.Bus
	clients   []models.Client
	isLoading bool
}

// NewClientsStore loads the persisted table into memory. An absent or
// unreadable table degrades to an empty collection.
func NewClientsStore(repo *repositories.ClientRepository, bus *event.Bus) *ClientsStore {
	s := &ClientsStore{repo: repo, bus: bus, isLoading: true}
	s.clients = repo.List()
	s.isLoading = false
	return s
}

// Loading reports whether the initial load is still in progress.
func (s *ClientsStore) Loading() bool { return s.isLoading }

// All returns a copy of the in-memory collection, insertion-ordered.
func (s *ClientsStore) All() []models.Client {
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// FindByID returns the client with that id from memory.
func (s *ClientsStore) FindByID(id string) (models.Client, bool) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

// Add persists a new client, then appends it to memory.
func (s *ClientsStore) Add(input models.ClientInput) models.Client {
	client := s.repo.Create(input)
	s.clients = append(s.clients, client)
	s.bus.Fire(EventClientAdded, client)
	return client
}

// Edit persists a partial update, then reflects it in memory. The
// in-memory collection is authoritative for the reflect step: when the
// durable read misses a record memory still holds (persistence is
// fail-soft), the merge is applied in memory anyway so the session keeps
// working. Ids unknown to memory are a no-op.
func (s *ClientsStore) Edit(id string, updates models.ClientUpdate) bool {
	persisted, ok := s.repo.Update(id, updates)
	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}
		if ok {
			s.clients[i] = persisted
		} else {
			updates.Apply(&s.clients[i])
			s.clients[i].UpdatedAt = time.Now()
		}
		s.bus.Fire(EventClientUpdated, s.clients[i])
		return true
	}
	return false
}

// Remove deletes the client durably and from memory. Idempotent.
func (s *ClientsStore) Remove(id string) {
	s.repo.Remove(id)
	kept := s.clients[:0]
	for _, c := range s.clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.clients = kept
	s.bus.Fire(EventClientRemoved, id)
}
