package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfcardenas/panapp/app/models"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var (
	clientName    string
	clientPhone   string
	clientAddress string
)

// panapp client add
var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		client := app.Clients.Add(models.ClientInput{
			Name:    clientName,
			Phone:   clientPhone,
			Address: clientAddress,
		})
		fmt.Printf("Added client %s (%s)\n", client.Name, client.ID)
		return nil
	},
}

// panapp client list
var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		for _, c := range app.Clients.All() {
			fmt.Printf("%s  %-20s  %-15s  %s\n", c.ID, c.Name, c.Phone, c.Address)
		}
		return nil
	},
}

// panapp client edit <id>
var clientEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		var updates models.ClientUpdate
		if cmd.Flags().Changed("name") {
			updates.Name = &clientName
		}
		if cmd.Flags().Changed("phone") {
			updates.Phone = &clientPhone
		}
		if cmd.Flags().Changed("address") {
			updates.Address = &clientAddress
		}

		if !app.Clients.Edit(args[0], updates) {
			return fmt.Errorf("no client with id %s", args[0])
		}
		fmt.Println("Client updated")
		return nil
	},
}

// panapp client rm <id>
var clientRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := requireLogin()
		if err != nil {
			return err
		}
		app.Clients.Remove(args[0])
		fmt.Println("Client removed")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{clientAddCmd, clientEditCmd} {
		c.Flags().StringVar(&clientName, "name", "", "client name")
		c.Flags().StringVar(&clientPhone, "phone", "", "phone number")
		c.Flags().StringVar(&clientAddress, "address", "", "address")
	}
	clientAddCmd.MarkFlagRequired("name") //nolint:errcheck

	clientCmd.AddCommand(clientAddCmd, clientListCmd, clientEditCmd, clientRmCmd)
}
