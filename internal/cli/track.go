package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/mhealy/healthtrack/internal/core/domain"
	"github.com/mhealy/healthtrack/internal/core/service"
	"github.com/spf13/cobra"
)

var (
	trackCalories int
	trackWater    int
	trackExercise int
	trackDate     string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Save today's progress to your history",
	Long: `Save a progress snapshot: calories consumed, glasses of water and
minutes of exercise. The BMI recorded with the snapshot is recomputed from
your stored weight and height. Values you do not pass keep their current
profile value.`,
	Args: cobra.NoArgs,
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

		date := trackDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("date must be in YYYY-MM-DD form")
		}

		account, err := services.Accounts.Get(cmd.Context(), username)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("calories") {
			trackCalories = account.Profile.Calories
		}
		if !cmd.Flags().Changed("water") {
			trackWater = account.Profile.Water
		}
		if !cmd.Flags().Changed("exercise") {
			trackExercise = account.Profile.Exercise
		}

		entry, err := services.Health.RecordProgress(cmd.Context(), username, trackCalories, trackWater, trackExercise, date)
		switch {
		case errors.Is(err, domain.ErrInvalidHeight):
			warnf("no height on record yet; run 'healthtrack bmi --weight <kg> --height <cm>' first")
			return nil
		case err != nil:
			return err
		}

		fmt.Printf("Calories: %d kcal\n", entry.Calories)
		fmt.Printf("Water intake: %d glasses\n", entry.Water)
		fmt.Printf("Exercise: %d mins\n", entry.Exercise)
		successf("Progress saved for %s (BMI %.2f).", entry.Date, entry.BMI)
		return nil
	},
}

func init() {
	trackCmd.Flags().IntVar(&trackCalories, "calories", 0, "calories consumed today (0-5000)")
	trackCmd.Flags().IntVar(&trackWater, "water", 0, "glasses of water today (0-20)")
	trackCmd.Flags().IntVar(&trackExercise, "exercise", 0, "minutes of exercise today (0-300)")
	trackCmd.Flags().StringVar(&trackDate, "date", "", "date of the snapshot (default today)")
	rootCmd.AddCommand(trackCmd)
}
