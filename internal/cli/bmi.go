package cli

import (
	"errors"
	"fmt"

	"github.com/mhealy/healthtrack/internal/core/domain"
	"github.com/mhealy/healthtrack/internal/core/service"
	"github.com/spf13/cobra"
)

var (
	bmiWeight float64
	bmiHeight int
)

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Calculate BMI and update your weight and height",
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

		bmi, err := services.Health.ComputeBMI(bmiWeight, bmiHeight)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidHeight) {
				return fmt.Errorf("height must be greater than 0 to calculate BMI")
			}
			return err
		}

		successf("Your BMI is %.2f", bmi)
		fmt.Println(adviceFor(services.Health.Classify(bmi)))

		// Weight and height are only stored when the calculation succeeded.
		if _, err := services.Health.UpdateProfile(cmd.Context(), username, bmiWeight, bmiHeight); err != nil {
			return err
		}
		return nil
	},
}

func adviceFor(category domain.Category) string {
	switch category {
	case domain.CategoryUnderweight:
		return "Underweight: you might need more nutrition."
	case domain.CategoryNormal:
		return "Normal: keep it up!"
	case domain.CategoryOverweight:
		return "Overweight: consider some lifestyle changes."
	default:
		return "Obese: consult a doctor or nutritionist."
	}
}

func init() {
	bmiCmd.Flags().Float64Var(&bmiWeight, "weight", 0, "weight in kg")
	bmiCmd.Flags().IntVar(&bmiHeight, "height", 0, "height in cm")
	bmiCmd.MarkFlagRequired("weight")
	bmiCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(bmiCmd)
}
