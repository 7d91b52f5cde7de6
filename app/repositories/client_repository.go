package repositories

import (
	"time"

	"github.com/google/uuid"

	"github.com/jfcardenas/panapp/app/models"
	"github.com/jfcardenas/panapp/pkg/kvstore"
)

// ClientRepository persists the client table.
type ClientRepository struct {
	store *kvstore.Adapter
}

func NewClientRepository(store *kvstore.Adapter) *ClientRepository {
	return &ClientRepository{store: store}
}

// List returns all persisted clients in stored (insertion) order.
func (r *ClientRepository) List() []models.Client {
	var clients []models.Client
	r.store.ReadInto(KeyClients, &clients)
	return clients
}

// Create assigns a fresh id and timestamps, persists the table and returns
// the new record.
func (r *ClientRepository) Create(input models.ClientInput) models.Client {
	now := time.Now()
	client := models.Client{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	clients := append(r.List(), client)
	r.store.Write(KeyClients, clients)
	return client
}

// Update merges the non-nil fields into the record with that id, bumps
// UpdatedAt and persists. Unknown ids are a silent no-op.
func (r *ClientRepository) Update(id string, updates models.ClientUpdate) (models.Client, bool) {
	clients := r.List()
	for i := range clients {
		if clients[i].ID != id {
			continue
		}

		updates.Apply(&clients[i])
		clients[i].UpdatedAt = time.Now()

		r.store.Write(KeyClients, clients)
		return clients[i], true
	}
	return models.Client{}, false
}

// Remove deletes the record with that id if present. Idempotent.
func (r *ClientRepository) Remove(id string) {
	clients := r.List()
	kept := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.store.Write(KeyClients, kept)
}
