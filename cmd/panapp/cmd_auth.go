package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfcardenas/panapp/app/services"
)

var (
	regUsername string
	regPassword string
	regName     string
	regEmail    string
)

// panapp register
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(regPassword) < services.MinPasswordLen {
			return fmt.Errorf("password must be at least %d characters", services.MinPasswordLen)
		}

		app, err := bootApp()
		if err != nil {
			return err
		}

		user, err := app.Auth.Register(regUsername, regPassword, regName, regEmail)
		if err != nil {
			return err
		}
		fmt.Printf("Registered %s (%s)\n", user.Username, user.ID)
		return nil
	},
}

// panapp login <username> <password>
var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in and persist the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootApp()
		if err != nil {
			return err
		}

		if !app.Login(args[0], args[1]) {
			return fmt.Errorf("invalid username or password")
		}
		user, _ := app.CurrentUser()
		fmt.Printf("Logged in as %s\n", user.Name)
		return nil
	},
}

// panapp logout
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootApp()
		if err != nil {
			return err
		}
		app.Logout()
		fmt.Println("Logged out")
		return nil
	},
}

// panapp whoami
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, user, err := requireLogin()
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)", user.Name, user.Username)
		if user.Email != "" {
			fmt.Printf(" <%s>", user.Email)
		}
		fmt.Println()
		return nil
	},
}

var (
	passwdCurrent string
	passwdNew     string
)

// panapp passwd
var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(passwdNew) < services.MinPasswordLen {
			return fmt.Errorf("new password must be at least %d characters", services.MinPasswordLen)
		}

		app, user, err := requireLogin()
		if err != nil {
			return err
		}
		if err := app.Auth.ChangePassword(user.ID, passwdCurrent, passwdNew); err != nil {
			return err
		}
		fmt.Println("Password changed")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&regUsername, "username", "", "unique username")
	registerCmd.Flags().StringVar(&regPassword, "password", "", "password (min 6 chars)")
	registerCmd.Flags().StringVar(&regName, "name", "", "display name")
	registerCmd.Flags().StringVar(&regEmail, "email", "", "email address (optional)")
	registerCmd.MarkFlagRequired("username") //nolint:errcheck
	registerCmd.MarkFlagRequired("password") //nolint:errcheck
	registerCmd.MarkFlagRequired("name")     //nolint:errcheck

	passwdCmd.Flags().StringVar(&passwdCurrent, "current", "", "current password")
	passwdCmd.Flags().StringVar(&passwdNew, "new", "", "new password (min 6 chars)")
	passwdCmd.MarkFlagRequired("current") //nolint:errcheck
	passwdCmd.MarkFlagRequired("new")     //nolint:errcheck
}
