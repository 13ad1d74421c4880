package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mhealy/healthtrack/internal/core/repository"
	"github.com/mhealy/healthtrack/internal/core/service"
	"github.com/mhealy/healthtrack/internal/infrastructure/jsonfile"
	"github.com/mhealy/healthtrack/internal/infrastructure/sqlite"
	"github.com/mhealy/healthtrack/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "healthtrack",
	Short: "HealthTrack - personal health and wellness tracking",
	Long: `HealthTrack is a personal health and wellness tracker.

It provides:
- Local accounts with a remembered auto-login user
- BMI calculation and classification
- Daily tracking of calories, water and exercise
- An append-only progress history for charting
- A flat JSON file or embedded SQLite database as the store`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.healthtrack/config.yml)")
}

func newLogger() *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// initServices initializes the store backend and the services on top of it
func initServices() (*Services, error) {
	log := newLogger()

	var repo repository.AccountRepository
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		db, err := sqlite.New(cfg.StorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		repo = sqlite.NewAccountRepository(db, log)
	default:
		repo = jsonfile.New(cfg.StorePath, log)
	}

	return &Services{
		Repo:     repo,
		Accounts: service.NewAccountService(repo),
		Health:   service.NewHealthService(repo),
	}, nil
}

// Services holds all initialized services
type Services struct {
	Repo     repository.AccountRepository
	Accounts *service.AccountService
	Health   *service.HealthService
}

// Close closes all resources
func (s *Services) Close() {
	if s.Repo != nil {
		s.Repo.Close()
	}
}

// currentSession resolves sign-in state at startup: the remembered account,
// if any, is auto logged in.
func currentSession(cmd *cobra.Command, accounts *service.AccountService) (*service.Session, error) {
	sess := &service.Session{}
	account, err := accounts.FindRemembered(cmd.Context())
	if err != nil {
		return nil, err
	}
	if account != nil {
		sess.Login(account.Username)
	}
	return sess, nil
}

func requireLogin(cmd *cobra.Command, accounts *service.AccountService) (string, error) {
	sess, err := currentSession(cmd, accounts)
	if err != nil {
		return "", err
	}
	if !sess.LoggedIn {
		return "", service.ErrNotLoggedIn
	}
	return sess.Username, nil
}
