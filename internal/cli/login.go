package cli

import (
	"errors"
	"fmt"

	"github.com/mhealy/healthtrack/internal/core/service"
	"github.com/spf13/cobra"
)

var loginRemember bool

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in to an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		password, err := promptPassword("Enter password: ")
		if err != nil {
			return err
		}

		if _, err := services.Accounts.Authenticate(cmd.Context(), username, password); err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return fmt.Errorf("invalid username or password")
			}
			return err
		}

		// After a login exactly one outcome holds: this account is
		// remembered, or nobody is.
		if loginRemember {
			if err := services.Accounts.SetRemembered(cmd.Context(), username, true); err != nil {
				return err
			}
		} else if remembered, err := services.Accounts.FindRemembered(cmd.Context()); err != nil {
			return err
		} else if remembered != nil {
			if err := services.Accounts.SetRemembered(cmd.Context(), remembered.Username, false); err != nil {
				return err
			}
		}

		successf("Welcome back, %s!", username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the remembered account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		sess, err := currentSession(cmd, services.Accounts)
		if err != nil {
			return err
		}
		if !sess.LoggedIn {
			warnf("not logged in")
			return nil
		}

		if err := services.Accounts.SetRemembered(cmd.Context(), sess.Username, false); err != nil {
			return err
		}
		sess.Logout()

		successf("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		sess, err := currentSession(cmd, services.Accounts)
		if err != nil {
			return err
		}
		if !sess.LoggedIn {
			fmt.Println("Not logged in")
			return nil
		}

		fmt.Printf("Logged in as %s\n", sess.Username)
		return nil
	},
}

func init() {
	loginCmd.Flags().BoolVar(&loginRemember, "remember", false, "stay logged in across runs")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
