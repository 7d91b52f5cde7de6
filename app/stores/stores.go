// Package stores holds the in-memory reactive state containers that mirror
// the repositories.
//
// Every mutation is write-through: the repository persists first, then the
// in-memory collection is updated, then a change event fires on the
// application bus. Persistence is fail-soft, so when the durable store is
// unavailable the in-memory collections stay authoritative and mutations
// still complete there; only durability is lost, never the session.
package stores

import (
	"github.com/jfcardenas/panapp/app/models"
	"github.com/jfcardenas/panapp/app/repositories"
	"github.com/jfcardenas/panapp/app/services"
	"github.com/jfcardenas/panapp/pkg/event"
	"github.com/jfcardenas/panapp/pkg/kvstore"
)

// Event names fired on App.Bus. Payload is the affected record, except for
// *.removed where it is the id.
const (
	EventClientAdded   = "clients.added"
	EventClientUpdated = "clients.updated"
	EventClientRemoved = "clients.removed"

	EventProductAdded   = "products.added"
	EventProductUpdated = "products.updated"
	EventProductRemoved = "products.removed"

	EventOrderAdded   = "orders.added"
	EventOrderUpdated = "orders.updated"
	EventOrderRemoved = "orders.removed"

	EventLogin       = "auth.login"
	EventLogout      = "auth.logout"
	EventUserUpdated = "auth.updated"
)

// App is the explicit application-state handle: the auth service, the three
// reactive stores and the event bus the UI subscribes to. Constructed once
// at process start; Logout clears in-memory login state but keeps the
// durable tables.
type App struct {
	Bus      *event.Bus
	Auth     *services.AuthService
	Clients  *ClientsStore
	Products *ProductsStore
	Orders   *OrdersStore

	user     models.User
	loggedIn bool
}

// NewApp wires repositories and stores over the given adapter and restores
// the persisted session, if any.
func NewApp(store *kvstore.Adapter) *App {
	bus := event.NewBus()
	app := &App{
		Bus:      bus,
		Auth:     services.NewAuthService(store),
		Clients:  NewClientsStore(repositories.NewClientRepository(store), bus),
		Products: NewProductsStore(repositories.NewProductRepository(store), bus),
		Orders:   NewOrdersStore(repositories.NewOrderRepository(store), bus),
	}
	app.user, app.loggedIn = app.Auth.CurrentUser()
	return app
}

// CurrentUser returns the logged-in user, if any.
func (a *App) CurrentUser() (models.User, bool) {
	return a.user, a.loggedIn
}

// Login authenticates and, on success, persists the session and reflects
// the user in memory.
func (a *App) Login(username, password string) bool {
	user, ok := a.Auth.Authenticate(username, password)
	if !ok {
		return false
	}
	a.Auth.SaveSession(user)
	a.user, a.loggedIn = user, true
	a.Bus.Fire(EventLogin, user)
	return true
}

// Logout clears the persisted session and the in-memory login state.
func (a *App) Logout() {
	a.Auth.ClearSession()
	a.user, a.loggedIn = models.User{}, false
	a.Bus.Fire(EventLogout, nil)
}

// UpdateUser merges profile fields into the credential record and the
// persisted session, then reflects them in memory.
func (a *App) UpdateUser(updates services.ProfileUpdate) bool {
	if !a.loggedIn {
		return false
	}
	user, ok := a.Auth.UpdateProfile(a.user.ID, updates)
	if !ok {
		return false
	}
	a.Auth.SaveSession(user)
	a.user = user
	a.Bus.Fire(EventUserUpdated, user)
	return true
}
