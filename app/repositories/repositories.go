// Package repositories translates entity CRUD operations into durable-store
// reads and writes.
//
// Every repository follows the same pattern: the whole collection lives
// under a single store key and is rewritten on every mutation. Collections
// are small and mutations interactive, so whole-table writes are cheaper
// than they look and keep the stored document trivially inspectable.
//
// Ids are random UUIDs. Update and Remove on a missing id are silent
// no-ops: the caller selects ids from a collection it has already loaded.
package repositories

// Store keys, one per logical table.
const (
	KeyClients     = "clients.table"
	KeyProducts    = "products.table"
	KeyOrders      = "orders.table"
	KeyCredentials = "user.credentials"
	KeySession     = "user.session"
)
