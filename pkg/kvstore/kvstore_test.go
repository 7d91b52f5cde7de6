package kvstore_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jfcardenas/panapp/pkg/kvstore"
)

// brokenDriver fails every operation, simulating a dead backing store.
type brokenDriver struct{}

func (brokenDriver) Get(key string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (brokenDriver) Put(key string, v []byte) error { return errors.New("disk on fire") }
func (brokenDriver) Delete(key string) error { return errors.New("disk on fire") }

func TestAdapterRoundTrip(t *testing.T) {
	adapter := kvstore.NewAdapter(kvstore.NewMemoryDriver())

	adapter.Write("orders.table", []string{"a", "b"})

	var got []string
	if !adapter.ReadInto("orders.table", &got) {
		t.Fatal("expected key to be present")
	}
	if len(got) != 2 || got[0] != "a" {
		t.Errorf("unexpected value: %v", got)
	}
}

func TestAdapterReadMissingKey(t *testing.T) {
	adapter := kvstore.NewAdapter(kvstore.NewMemoryDriver())

	if _, ok := adapter.Read("nope"); ok {
		t.Error("expected missing key to report absent")
	}
}

func TestAdapterRemove(t *testing.T) {
	adapter := kvstore.NewAdapter(kvstore.NewMemoryDriver())

	adapter.Write("k", "v")
	adapter.Remove("k")
	if _, ok := adapter.Read("k"); ok {
		t.Error("expected key to be gone after Remove")
	}

	// Removing again is a no-op, not an error.
	adapter.Remove("k")
}

func TestAdapterFailSoft(t *testing.T) {
	adapter := kvstore.NewAdapter(brokenDriver{})

	// None of these may panic or surface an error.
	adapter.Write("k", map[string]string{"a": "b"})
	adapter.Remove("k")
	if _, ok := adapter.Read("k"); ok {
		t.Error("expected broken driver reads to report absent")
	}

	var dest map[string]string
	if adapter.ReadInto("k", &dest) {
		t.Error("expected ReadInto on broken driver to report absent")
	}
}

// wrappingDriver reports missing keys with ErrNotFound wrapped in context,
// the way a remote or layered driver would.
type wrappingDriver struct{}

func (wrappingDriver) Get(key string) ([]byte, error) {
	return nil, fmt.Errorf("lookup %q: %w", key, kvstore.ErrNotFound)
}
func (wrappingDriver) Put(key string, v []byte) error { return nil }
func (wrappingDriver) Delete(key string) error { return nil }

func TestAdapterWrappedNotFound(t *testing.T) {
	adapter := kvstore.NewAdapter(wrappingDriver{})
	if _, ok := adapter.Read("k"); ok {
		t.Error("expected wrapped ErrNotFound to report absent")
	}
}

func TestAdapterCorruptValue(t *testing.T) {
	driver := kvstore.NewMemoryDriver()
	if err := driver.Put("k", []byte("{not json")); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	adapter := kvstore.NewAdapter(driver)
	if _, ok := adapter.Read("k"); ok {
		t.Error("expected corrupt value to degrade to absent")
	}
}

func TestAdapterUnmarshalableValue(t *testing.T) {
	adapter := kvstore.NewAdapter(kvstore.NewMemoryDriver())
	adapter.Write("k", "a string")

	var dest []int
	if adapter.ReadInto("k", &dest) {
		t.Error("expected type mismatch to degrade to absent")
	}
}

func TestMemoryDriverMissingKey(t *testing.T) {
	driver := kvstore.NewMemoryDriver()
	if _, err := driver.Get("nope"); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileDriverRoundTrip(t *testing.T) {
	driver := kvstore.NewFileDriver(t.TempDir())

	if err := driver.Put("clients.table", []byte(`[]`)); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := driver.Get("clients.table")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("unexpected value: %s", got)
	}

	if err := driver.Delete("clients.table"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := driver.Get("clients.table"); !errors.Is(err, kvstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFileDriverDeleteMissing(t *testing.T) {
	driver := kvstore.NewFileDriver(t.TempDir())
	if err := driver.Delete("never-existed"); err != nil {
		t.Errorf("expected delete of missing key to be a no-op, got %v", err)
	}
}

func TestFileDriverKeyLayout(t *testing.T) {
	root := t.TempDir()
	driver := kvstore.NewFileDriver(root)

	if err := driver.Put("user.session", []byte(`{}`)); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "user.session.json")); err != nil {
		t.Errorf("expected one document per key on disk: %v", err)
	}
}
