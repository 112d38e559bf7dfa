// Package budget contains budget-related use cases.
package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func TestPercentageUsed(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		spent  string
		want   float64
	}{
		{"partial spend", "500", "100", 20},
		{"full spend", "500", "500", 100},
		{"overspend", "500", "600", 120},
		{"no spend", "500", "0", 0},
		{"zero amount reports zero", "0", "100", 0},
		{"negative amount reports zero", "-10", "100", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &entity.Budget{
				Amount: decimal.RequireFromString(tc.amount),
			}
			got := percentageUsed(b, decimal.RequireFromString(tc.spent))
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestThresholdReached(t *testing.T) {
	cases := []struct {
		name      string
		amount    string
		threshold float64
		spent     string
		want      bool
	}{
		{"below threshold", "500", 0.8, "399", false},
		{"exactly at threshold", "500", 0.8, "400", true},
		{"above threshold", "500", 0.8, "450", true},
		{"zero threshold always fires", "500", 0, "0", true},
		{"full threshold needs full spend", "500", 1, "499.99", false},
		{"zero amount fires on any spend", "0", 0.8, "1", true},
		{"zero amount stays quiet without spend", "0", 0.8, "0", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &entity.Budget{
				Amount:                decimal.RequireFromString(tc.amount),
				NotificationThreshold: tc.threshold,
			}
			got := thresholdReached(b, decimal.RequireFromString(tc.spent))
			if got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDefaultAsOf(t *testing.T) {
	t.Run("zero value defaults to now", func(t *testing.T) {
		before := time.Now().UTC()
		got := defaultAsOf(time.Time{})
		after := time.Now().UTC()

		if got.Before(before) || got.After(after) {
			t.Errorf("expected a current timestamp, got %v", got)
		}
	})

	t.Run("non-zero value is preserved", func(t *testing.T) {
		asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		if got := defaultAsOf(asOf); !got.Equal(asOf) {
			t.Errorf("expected %v, got %v", asOf, got)
		}
	})
}
