package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mhealy/healthtrack/internal/core/domain"
	"github.com/mhealy/healthtrack/internal/core/repository"
	"github.com/mhealy/healthtrack/internal/core/service"
	"github.com/mhealy/healthtrack/internal/infrastructure/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// health service tests run against the sqlite backend so both store
// implementations are exercised through the services
func newSQLiteRepo(t *testing.T) repository.AccountRepository {
	t.Helper()
	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := sqlite.NewAccountRepository(db, log)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestUpdateProfileLeavesTrackedValues(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	accounts := service.NewAccountService(repo)
	health := service.NewHealthService(repo)

	_, err := accounts.Register(ctx, "alice", "pw123")
	require.NoError(t, err)

	account, err := health.UpdateProfile(ctx, "alice", 80, 160)
	require.NoError(t, err)

	assert.Equal(t, 80.0, account.Profile.Weight)
	assert.Equal(t, 160, account.Profile.Height)
	assert.Equal(t, domain.DefaultCalories, account.Profile.Calories)
	assert.Equal(t, domain.DefaultWater, account.Profile.Water)
	assert.Equal(t, domain.DefaultExercise, account.Profile.Exercise)
}

func TestRecordProgress(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	accounts := service.NewAccountService(repo)
	health := service.NewHealthService(repo)

	_, err := accounts.Register(ctx, "alice", "pw123")
	require.NoError(t, err)
	_, err = health.UpdateProfile(ctx, "alice", 80, 160)
	require.NoError(t, err)

	entry, err := health.RecordProgress(ctx, "alice", 2200, 6, 45, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, domain.HistoryEntry{
		Date:     "2024-01-01",
		BMI:      31.25,
		Calories: 2200,
		Water:    6,
		Exercise: 45,
	}, *entry)

	// profile counters follow the snapshot
	account, err := accounts.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2200, account.Profile.Calories)
	assert.Equal(t, 6, account.Profile.Water)
	assert.Equal(t, 45, account.Profile.Exercise)

	history, err := health.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, *entry, history[0])
}

func TestRecordProgressSameDateAppends(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	accounts := service.NewAccountService(repo)
	health := service.NewHealthService(repo)

	_, err := accounts.Register(ctx, "alice", "pw123")
	require.NoError(t, err)
	_, err = health.UpdateProfile(ctx, "alice", 80, 160)
	require.NoError(t, err)

	_, err = health.RecordProgress(ctx, "alice", 2000, 8, 30, "2024-01-01")
	require.NoError(t, err)
	_, err = health.RecordProgress(ctx, "alice", 2500, 4, 60, "2024-01-01")
	require.NoError(t, err)

	history, err := health.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 2000, history[0].Calories)
	assert.Equal(t, 2500, history[1].Calories)
}

func TestRecordProgressWithoutHeightFails(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	accounts := service.NewAccountService(repo)
	health := service.NewHealthService(repo)

	_, err := accounts.Register(ctx, "alice", "pw123")
	require.NoError(t, err)

	_, err = health.RecordProgress(ctx, "alice", 2000, 8, 30, "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidHeight)

	history, err := health.History(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestRecordProgressBounds(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	accounts := service.NewAccountService(repo)
	health := service.NewHealthService(repo)

	_, err := accounts.Register(ctx, "alice", "pw123")
	require.NoError(t, err)
	_, err = health.UpdateProfile(ctx, "alice", 80, 160)
	require.NoError(t, err)

	tests := []struct {
		name     string
		calories int
		water    int
		exercise int
		field    string
	}{
		{name: "calories too high", calories: 5001, water: 8, exercise: 30, field: "calories"},
		{name: "calories negative", calories: -1, water: 8, exercise: 30, field: "calories"},
		{name: "water too high", calories: 2000, water: 21, exercise: 30, field: "water"},
		{name: "water negative", calories: 2000, water: -1, exercise: 30, field: "water"},
		{name: "exercise too high", calories: 2000, water: 8, exercise: 301, field: "exercise"},
		{name: "exercise negative", calories: 2000, water: 8, exercise: -1, field: "exercise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := health.RecordProgress(ctx, "alice", tt.calories, tt.water, tt.exercise, "2024-01-01")
			require.ErrorIs(t, err, service.ErrInvalidInput)

			// the message must name the offending field, not credentials
			assert.Contains(t, err.Error(), tt.field)
			assert.NotContains(t, err.Error(), "username")
			assert.NotContains(t, err.Error(), "password")
		})
	}
}

func TestUnknownAccount(t *testing.T) {
	ctx := context.Background()
	health := service.NewHealthService(newSQLiteRepo(t))

	_, err := health.UpdateProfile(ctx, "ghost", 80, 160)
	assert.ErrorIs(t, err, service.ErrUnknownAccount)

	_, err = health.RecordProgress(ctx, "ghost", 2000, 8, 30, "2024-01-01")
	assert.ErrorIs(t, err, service.ErrUnknownAccount)

	_, err = health.History(ctx, "ghost")
	assert.ErrorIs(t, err, service.ErrUnknownAccount)
}

// The full path a session takes: sign up, log in, calculate, save, chart.
func TestEndToEndScenario(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	accounts := service.NewAccountService(repo)
	health := service.NewHealthService(repo)

	_, err := accounts.Register(ctx, "alice", "pw123")
	require.NoError(t, err)

	_, err = accounts.Authenticate(ctx, "alice", "pw123")
	require.NoError(t, err)

	bmi, err := health.ComputeBMI(80, 160)
	require.NoError(t, err)
	assert.Equal(t, 31.25, domain.Round2(bmi))
	assert.Equal(t, domain.CategoryObese, health.Classify(31.25))

	_, err = health.UpdateProfile(ctx, "alice", 80, 160)
	require.NoError(t, err)

	entry, err := health.RecordProgress(ctx, "alice", 2200, 6, 45, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, domain.HistoryEntry{Date: "2024-01-01", BMI: 31.25, Calories: 2200, Water: 6, Exercise: 45}, *entry)

	history, err := health.History(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
