package main

import (
	"errors"
	"fmt"

	"github.com/jfcardenas/panapp/app/models"
	"github.com/jfcardenas/panapp/app/stores"
	"github.com/jfcardenas/panapp/config"
	"github.com/jfcardenas/panapp/pkg/kvstore"
)

// bootApp loads config, opens the configured store driver and builds the
// application-state handle.
func bootApp() (*stores.App, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	driver, err := kvstore.Open()
	if err != nil {
		return nil, err
	}
	return stores.NewApp(kvstore.NewAdapter(driver)), nil
}

var errNotLoggedIn = errors.New("not logged in — run `panapp login` first")

// requireLogin boots the app and refuses to proceed without a session,
// the CLI equivalent of the login redirect.
func requireLogin() (*stores.App, models.User, error) {
	app, err := bootApp()
	if err != nil {
		return nil, models.User{}, err
	}
	user, ok := app.CurrentUser()
	if !ok {
		return nil, models.User{}, errNotLoggedIn
	}
	return app, user, nil
}

func printOrder(o models.Order) {
	fmt.Printf("%s  %-12s  %-20s  x%-3d  %s %s  %s\n",
		o.ID, o.Status, o.CustomerName, o.Quantity, o.DeliveryDate, o.DeliveryTime, o.Details)
}
