package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/paisera/paisera/internal/model"
)

func TestRenderBudgetBar(t *testing.T) {
	tests := []struct {
		name       string
		pct        int
		wantFilled int
	}{
		{name: "empty", pct: 0, wantFilled: 0},
		{name: "half", pct: 50, wantFilled: 10},
		{name: "full", pct: 100, wantFilled: 20},
		{name: "over limit clamps", pct: 150, wantFilled: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderBudgetBar(tt.pct)
			assert.Len(t, []rune(bar), 20)

			filled := 0
			for _, r := range bar {
				if r == '█' {
					filled++
				}
			}
			assert.Equal(t, tt.wantFilled, filled)
		})
	}
}

func TestFormatBudgetRow(t *testing.T) {
	row := formatBudgetRow(model.Budget{
		Category:    "Food",
		LimitAmount: decimal.NewFromInt(10000),
		SpentAmount: decimal.NewFromInt(7500),
	})

	assert.Contains(t, row, "Food")
	assert.Contains(t, row, "75%")
	assert.Contains(t, row, "₹7,500")
	assert.Contains(t, row, "₹10,000")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactlyten", truncate("exactlyten", 10))
	assert.Equal(t, "longer th…", truncate("longer than ten", 10))
}
