package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfcardenas/panapp/app/models"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalogue",
}

var (
	productName  string
	productPrice float64
	productImage string
)

// panapp product add
var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		if productPrice < 0 {
			return fmt.Errorf("price must be non-negative")
		}

		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		product := app.Products.Add(models.ProductInput{
			Name:     productName,
			PriceCOP: productPrice,
			Image:    productImage,
		})
		fmt.Printf("Added product %s (%s)\n", product.Name, product.ID)
		return nil
	},
}

// panapp product list
var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		for _, p := range app.Products.All() {
			fmt.Printf("%s  %-25s  $%.0f COP\n", p.ID, p.Name, p.PriceCOP)
		}
		return nil
	},
}

// panapp product edit <id>
var productEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("price") && productPrice < 0 {
			return fmt.Errorf("price must be non-negative")
		}

		app, _, err := requireLogin()
		if err != nil {
			return err
		}

		var updates models.ProductUpdate
		if cmd.Flags().Changed("name") {
			updates.Name = &productName
		}
		if cmd.Flags().Changed("price") {
			updates.PriceCOP = &productPrice
		}
		if cmd.Flags().Changed("image") {
			updates.Image = &productImage
		}

		if !app.Products.Edit(args[0], updates) {
			return fmt.Errorf("no product with id %s", args[0])
		}
		fmt.Println("Product updated")
		return nil
	},
}

// panapp product rm <id>
var productRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := requireLogin()
		if err != nil {
			return err
		}
		app.Products.Remove(args[0])
		fmt.Println("Product removed")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{productAddCmd, productEditCmd} {
		c.Flags().StringVar(&productName, "name", "", "product name")
		c.Flags().Float64Var(&productPrice, "price", 0, "price in COP")
		c.Flags().StringVar(&productImage, "image", "", "image URL or data URI (optional)")
	}
	productAddCmd.MarkFlagRequired("name") //nolint:errcheck

	productCmd.AddCommand(productAddCmd, productListCmd, productEditCmd, productRmCmd)
}
