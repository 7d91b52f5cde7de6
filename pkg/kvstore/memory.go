package kvstore

import "sync"

// MemoryDriver is an in-process, map-backed driver.
// Perfect for development and testing; not durable across restarts.
type MemoryDriver struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryDriver creates an empty in-memory store.
func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{data: map[string][]byte{}}
}

func (d *MemoryDriver) Get(key string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	value, ok := d.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (d *MemoryDriver) Put(key string, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	d.data[key] = stored
	return nil
}

func (d *MemoryDriver) Delete(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.data, key)
	return nil
}
