package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfcardenas/panapp/app/models"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage orders",
}

var (
	orderClientID string
	orderCustomer string
	orderDetails  string
	orderQuantity int
	orderDate     string
	orderTime     string
	orderStatus   string
)

// panapp order add
var orderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an order",
	RunE: func(cmd *cobra.Command, args []string) error {
		if orderQuantity <= 0 {
			return fmt.Errorf("quantity must be a positive integer")
		}

		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		// --client copies the name from the client record at creation
		// time; the order keeps no foreign key.
		customer := orderCustomer
		if orderClientID != "" {
			client, ok := app.Clients.FindByID(orderClientID)
			if !ok {
				return fmt.Errorf("no client with id %s", orderClientID)
			}
			customer = client.Name
		}
		if customer == "" {
			return fmt.Errorf("either --customer or --client is required")
		}

		order := app.Orders.Add(models.OrderInput{
			CustomerName: customer,
			Details:      orderDetails,
			Quantity:     orderQuantity,
			DeliveryDate: orderDate,
			DeliveryTime: orderTime,
		})
		fmt.Printf("Added order %s for %s\n", order.ID, order.CustomerName)
		return nil
	},
}

// panapp order list [--status s]
var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, optionally filtered by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		status := models.OrderStatus(orderStatus)
		if orderStatus != "" && !status.Valid() {
			return fmt.Errorf("unknown status %q (pending, in-progress, completed)", orderStatus)
		}

		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		for _, o := range app.Orders.Filtered(status) {
			printOrder(o)
		}
		return nil
	},
}

// panapp order edit <id>
var orderEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		var updates models.OrderUpdate
		if cmd.Flags().Changed("customer") {
			updates.CustomerName = &orderCustomer
		}
		if cmd.Flags().Changed("details") {
			updates.Details = &orderDetails
		}
		if cmd.Flags().Changed("quantity") {
			if orderQuantity <= 0 {
				return fmt.Errorf("quantity must be a positive integer")
			}
			updates.Quantity = &orderQuantity
		}
		if cmd.Flags().Changed("date") {
			updates.DeliveryDate = &orderDate
		}
		if cmd.Flags().Changed("time") {
			updates.DeliveryTime = &orderTime
		}
		if cmd.Flags().Changed("status") {
			status := models.OrderStatus(orderStatus)
			if !status.Valid() {
				return fmt.Errorf("unknown status %q (pending, in-progress, completed)", orderStatus)
			}
			updates.Status = &status
		}

		if !app.Orders.Edit(args[0], updates) {
			return fmt.Errorf("no order with id %s", args[0])
		}
		fmt.Println("Order updated")
		return nil
	},
}

// panapp order advance <id> — the one legal "next status" transition.
var orderAdvanceCmd = &cobra.Command{
	Use:   "advance <id>",
	Short: "Move an order to its next status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		next, ok := app.Orders.Advance(args[0])
		if !ok {
			if _, found := app.Orders.FindByID(args[0]); !found {
				return fmt.Errorf("no order with id %s", args[0])
			}
			return fmt.Errorf("order is already completed")
		}
		fmt.Printf("Order is now %s\n", next)
		return nil
	},
}

// panapp order rm <id>
var orderRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := requireLogin()
		if err != nil {
			return err
		}
		app.Orders.Remove(args[0])
		fmt.Println("Order removed")
		return nil
	},
}

// panapp order stats
var orderStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show order counts per status",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		stats := app.Orders.Stats()
		fmt.Printf("pending:     %d\n", stats.Pending)
		fmt.Printf("in-progress: %d\n", stats.InProgress)
		fmt.Printf("completed:   %d\n", stats.Completed)
		fmt.Printf("total:       %d\n", stats.Total)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{orderAddCmd, orderEditCmd} {
		c.Flags().StringVar(&orderCustomer, "customer", "", "customer name (free text)")
		c.Flags().StringVar(&orderDetails, "details", "", "order details")
		c.Flags().IntVar(&orderQuantity, "quantity", 1, "total units")
		c.Flags().StringVar(&orderDate, "date", "", "delivery date (YYYY-MM-DD)")
		c.Flags().StringVar(&orderTime, "time", "", "delivery time (HH:MM)")
	}
	orderAddCmd.Flags().StringVar(&orderClientID, "client", "", "copy the customer name from this client id")
	orderEditCmd.Flags().StringVar(&orderStatus, "status", "", "order status")
	orderListCmd.Flags().StringVar(&orderStatus, "status", "", "filter by status")

	orderCmd.AddCommand(orderAddCmd, orderListCmd, orderEditCmd, orderAdvanceCmd, orderRmCmd, orderStatsCmd)
}
