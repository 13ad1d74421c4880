package domain

import (
	"errors"
	"math"
)

// ErrInvalidHeight is returned when a BMI is requested for a non-positive
// height.
var ErrInvalidHeight = errors.New("height must be greater than 0")

type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// ComputeBMI returns weight(kg) / height(m)^2 for a height given in
// centimeters.
func ComputeBMI(weight float64, heightCm int) (float64, error) {
	if heightCm <= 0 {
		return 0, ErrInvalidHeight
	}
	m := float64(heightCm) / 100
	return weight / (m * m), nil
}

// Round2 rounds a BMI to two decimal places, the precision history entries
// are stored with.
func Round2(bmi float64) float64 {
	return math.Round(bmi*100) / 100
}

// Classify maps a BMI to its category. The thresholds are evaluated in
// order, first match wins. Note that [24.9, 25) and anything >= 29.9 fall
// through to Obese; these boundaries are load-bearing and must not be
// "fixed".
func Classify(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi >= 18.5 && bmi < 24.9:
		return CategoryNormal
	case bmi >= 25 && bmi < 29.9:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}
