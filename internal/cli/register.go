package cli

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/mhealy/healthtrack/internal/core/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a new account",
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
		confirmPassword, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirmPassword {
			return fmt.Errorf("passwords do not match")
		}

		_, err = services.Accounts.Register(cmd.Context(), username, password)
		switch {
		case errors.Is(err, service.ErrDuplicateUsername):
			return fmt.Errorf("username already exists, pick another")
		case errors.Is(err, service.ErrInvalidInput):
			warnf("username and password cannot be empty")
			return nil
		case err != nil:
			return err
		}

		successf("Account created. You can now log in.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
