package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "panapp",
	Short: "panapp — bakery order tracking",
	Long:  "panapp manages a bakery's clients, product catalogue and orders against a local durable store.",
}

func init() {
	// Account
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(passwdCmd)

	// Entities
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(orderCmd)
}
