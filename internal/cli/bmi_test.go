package cli

import (
	"testing"

	"github.com/mhealy/healthtrack/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAdviceAtBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{bmi: 18.49, want: "Underweight: you might need more nutrition."},
		{bmi: 18.5, want: "Normal: keep it up!"},
		{bmi: 24.8, want: "Normal: keep it up!"},
		{bmi: 24.9, want: "Obese: consult a doctor or nutritionist."},
		{bmi: 25.0, want: "Overweight: consider some lifestyle changes."},
		{bmi: 29.8, want: "Overweight: consider some lifestyle changes."},
		{bmi: 29.9, want: "Obese: consult a doctor or nutritionist."},
		{bmi: 30.0, want: "Obese: consult a doctor or nutritionist."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, adviceFor(domain.Classify(tt.bmi)), "bmi %.2f", tt.bmi)
	}
}
