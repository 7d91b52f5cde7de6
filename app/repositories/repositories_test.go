package repositories_test

import (
	"testing"

	"github.com/jfcardenas/panapp/app/models"
	"github.com/jfcardenas/panapp/app/repositories"
	"github.com/jfcardenas/panapp/pkg/kvstore"
)

func newClientRepo() *repositories.ClientRepository {
	return repositories.NewClientRepository(kvstore.NewAdapter(kvstore.NewMemoryDriver()))
}

func newOrderRepo() *repositories.OrderRepository {
	return repositories.NewOrderRepository(kvstore.NewAdapter(kvstore.NewMemoryDriver()))
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	repo := newClientRepo()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		c := repo.Create(models.ClientInput{Name: "Ana"})
		if c.ID == "" {
			t.Fatal("expected a non-empty id")
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id after %d creates: %s", i, c.ID)
		}
		seen[c.ID] = true
	}
}

func TestWriteThroughConsistency(t *testing.T) {
	repo := newClientRepo()

	created := repo.Create(models.ClientInput{Name: "Ana", Phone: "301", Address: "Calle 1"})

	list := repo.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 client, got %d", len(list))
	}
	got := list[0]
	if got.ID != created.ID || got.Name != "Ana" || got.Phone != "301" || got.Address != "Calle 1" {
		t.Errorf("listed record differs from created: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("CreatedAt changed across the round trip: %v vs %v", got.CreatedAt, created.CreatedAt)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := newClientRepo()
	a := repo.Create(models.ClientInput{Name: "A"})
	b := repo.Create(models.ClientInput{Name: "B"})
	c := repo.Create(models.ClientInput{Name: "C"})

	list := repo.List()
	if len(list) != 3 || list[0].ID != a.ID || list[1].ID != b.ID || list[2].ID != c.ID {
		t.Errorf("expected insertion order, got %v", list)
	}
}

func TestEmptyUpdateTouchesOnlyUpdatedAt(t *testing.T) {
	repo := newClientRepo()
	created := repo.Create(models.ClientInput{Name: "Ana", Phone: "301", Address: "Calle 1"})

	updated, ok := repo.Update(created.ID, models.ClientUpdate{})
	if !ok {
		t.Fatal("expected update to find the record")
	}
	if updated.Name != "Ana" || updated.Phone != "301" || updated.Address != "Calle 1" {
		t.Errorf("empty update changed fields: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("empty update must not change CreatedAt")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("UpdatedAt went backwards")
	}
}

func TestUpdateMergesFields(t *testing.T) {
	repo := newClientRepo()
	created := repo.Create(models.ClientInput{Name: "Ana", Phone: "301"})

	phone := "312"
	updated, ok := repo.Update(created.ID, models.ClientUpdate{Phone: &phone})
	if !ok {
		t.Fatal("expected update to find the record")
	}
	if updated.Phone != "312" {
		t.Errorf("expected phone 312, got %s", updated.Phone)
	}
	if updated.Name != "Ana" {
		t.Errorf("untouched field changed: %s", updated.Name)
	}
}

func TestUpdateMissingIDIsSilentNoop(t *testing.T) {
	repo := newClientRepo()
	repo.Create(models.ClientInput{Name: "Ana"})

	name := "Ghost"
	if _, ok := repo.Update("no-such-id", models.ClientUpdate{Name: &name}); ok {
		t.Error("expected update on missing id to report not found")
	}
	if len(repo.List()) != 1 {
		t.Error("no-op update must not change the table")
	}
}

func TestTimestampMonotonicity(t *testing.T) {
	repo := newClientRepo()
	created := repo.Create(models.ClientInput{Name: "Ana"})

	prev := created.UpdatedAt
	for i := 0; i < 5; i++ {
		name := "Ana"
		updated, ok := repo.Update(created.ID, models.ClientUpdate{Name: &name})
		if !ok {
			t.Fatal("expected update to find the record")
		}
		if updated.UpdatedAt.Before(prev) {
			t.Fatalf("UpdatedAt went backwards on mutation %d", i)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Fatalf("CreatedAt changed on mutation %d", i)
		}
		prev = updated.UpdatedAt
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	repo := newClientRepo()
	created := repo.Create(models.ClientInput{Name: "Ana"})
	keep := repo.Create(models.ClientInput{Name: "Bea"})

	repo.Remove(created.ID)
	repo.Remove(created.ID) // second remove must not error or disturb anything

	list := repo.List()
	if len(list) != 1 || list[0].ID != keep.ID {
		t.Errorf("expected only %s to remain, got %v", keep.ID, list)
	}
}

func TestOrderCreateDefaultsToPending(t *testing.T) {
	repo := newOrderRepo()
	order := repo.Create(models.OrderInput{CustomerName: "Ana", Quantity: 2})
	if order.Status != models.StatusPending {
		t.Errorf("expected pending, got %s", order.Status)
	}
}

func TestRepositoriesShareOneStoreWithoutClashing(t *testing.T) {
	adapter := kvstore.NewAdapter(kvstore.NewMemoryDriver())
	clients := repositories.NewClientRepository(adapter)
	orders := repositories.NewOrderRepository(adapter)

	clients.Create(models.ClientInput{Name: "Ana"})
	orders.Create(models.OrderInput{CustomerName: "Ana", Quantity: 1})

	if len(clients.List()) != 1 {
		t.Error("client table polluted")
	}
	if len(orders.List()) != 1 {
		t.Error("order table polluted")
	}
}
