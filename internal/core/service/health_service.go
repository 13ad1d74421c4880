package service

import (
	"context"
	"fmt"

	"github.com/mhealy/healthtrack/internal/core/domain"
	"github.com/mhealy/healthtrack/internal/core/repository"
)

// Bounds for tracked daily values.
const (
	MaxCalories = 5000
	MaxWater    = 20
	MaxExercise = 300
)

// HealthService computes derived health signals and manages the
// profile/history transition for one account at a time.
type HealthService struct {
	repo repository.AccountRepository
}

func NewHealthService(repo repository.AccountRepository) *HealthService {
	return &HealthService{repo: repo}
}

// ComputeBMI computes weight(kg) / height(m)^2. Fails for non-positive
// heights.
func (s *HealthService) ComputeBMI(weight float64, heightCm int) (float64, error) {
	return domain.ComputeBMI(weight, heightCm)
}

// Classify maps a BMI to its category.
func (s *HealthService) Classify(bmi float64) domain.Category {
	return domain.Classify(bmi)
}

// UpdateProfile overwrites the account's current weight and height,
// leaving the tracked daily values untouched.
func (s *HealthService) UpdateProfile(ctx context.Context, username string, weight float64, height int) (*domain.Account, error) {
	accounts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	account, ok := accounts[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, username)
	}

	account.Profile.Weight = weight
	account.Profile.Height = height

	if err := s.repo.Save(ctx, accounts); err != nil {
		return nil, err
	}
	return account, nil
}

// RecordProgress snapshots the current profile into a new history entry.
// The BMI is recomputed from the profile's stored weight and height and
// rounded to two decimals; the tracked daily values are overwritten with
// the supplied ones. Entries for the same date are appended, never merged.
func (s *HealthService) RecordProgress(ctx context.Context, username string, calories, water, exercise int, date string) (*domain.HistoryEntry, error) {
	if calories < 0 || calories > MaxCalories {
		return nil, fmt.Errorf("%w: calories must be between 0 and %d", ErrInvalidInput, MaxCalories)
	}
	if water < 0 || water > MaxWater {
		return nil, fmt.Errorf("%w: water must be between 0 and %d", ErrInvalidInput, MaxWater)
	}
	if exercise < 0 || exercise > MaxExercise {
		return nil, fmt.Errorf("%w: exercise must be between 0 and %d", ErrInvalidInput, MaxExercise)
	}

	accounts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	account, ok := accounts[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, username)
	}

	bmi, err := domain.ComputeBMI(account.Profile.Weight, account.Profile.Height)
	if err != nil {
		return nil, err
	}

	account.Profile.Calories = calories
	account.Profile.Water = water
	account.Profile.Exercise = exercise

	entry := domain.HistoryEntry{
		Date:     date,
		BMI:      domain.Round2(bmi),
		Calories: calories,
		Water:    water,
		Exercise: exercise,
	}
	account.History = append(account.History, entry)

	if err := s.repo.Save(ctx, accounts); err != nil {
		return nil, err
	}
	return &entry, nil
}

// History returns the account's history entries in insertion order.
func (s *HealthService) History(ctx context.Context, username string) ([]domain.HistoryEntry, error) {
	accounts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	account, ok := accounts[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, username)
	}
	return account.History, nil
}
