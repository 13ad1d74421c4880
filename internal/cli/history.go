package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mhealy/healthtrack/internal/core/service"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your progress history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		username, err := requireLogin(cmd, services.Accounts)
		if err != nil {
			if errors.Is(err, service.ErrNotLoggedIn) {
				warnf("please log in first: healthtrack login <username> --remember")
				return nil
			}
			return err
		}

		entries, err := services.Health.History(cmd.Context(), username)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No history yet")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tBMI\tCALORIES\tWATER\tEXERCISE")
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%.2f\t%d\t%d\t%d\n",
				entry.Date,
				entry.BMI,
				entry.Calories,
				entry.Water,
				entry.Exercise,
			)
		}
		w.Flush()

		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your current profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		username, err := requireLogin(cmd, services.Accounts)
		if err != nil {
			if errors.Is(err, service.ErrNotLoggedIn) {
				warnf("please log in first: healthtrack login <username> --remember")
				return nil
			}
			return err
		}

		account, err := services.Accounts.Get(cmd.Context(), username)
		if err != nil {
			return err
		}

		fmt.Printf("Weight: %.1f kg\n", account.Profile.Weight)
		fmt.Printf("Height: %d cm\n", account.Profile.Height)
		fmt.Printf("Calories: %d kcal\n", account.Profile.Calories)
		fmt.Printf("Water intake: %d glasses\n", account.Profile.Water)
		fmt.Printf("Exercise: %d mins\n", account.Profile.Exercise)

		if bmi, err := services.Health.ComputeBMI(account.Profile.Weight, account.Profile.Height); err == nil {
			fmt.Printf("BMI: %.2f (%s)\n", bmi, services.Health.Classify(bmi))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profileCmd)
}
